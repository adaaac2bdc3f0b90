package pages_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/pages"
	"github.com/justcodeworks/go-pagebuilder/templates"
)

func testComposer() *pages.Composer {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return pages.NewComposer(pages.WithClock(func() time.Time { return clock }))
}

func heroTemplate() *templates.SectionTemplate {
	return &templates.SectionTemplate{
		ID:           uuid.MustParse("00000000-0000-0000-0000-0000000000aa"),
		TemplateCode: "jcw-rest-00",
		BusinessType: "restaurant",
		SectionType:  "hero",
		DisplayName:  templates.LocaleStrings{"en": "Restaurant Hero", "es": "Héroe de Restaurante"},
		DefaultContent: templates.LocaleContent{
			"en": templates.Content{"heading": "Welcome to Our Restaurant", "subheading": "Fine dining experience"},
		},
		BusinessTypeMapping: map[string]templates.VerticalOverride{
			"cafe": {
				DisplayName:        templates.LocaleStrings{"en": "Cafe Hero"},
				ContentAdjustments: templates.LocaleContent{"en": templates.Content{"heading": "Welcome to Our Cafe"}},
			},
		},
	}
}

func emptyPage() *pages.EditablePage {
	return &pages.EditablePage{
		ID:   uuid.MustParse("00000000-0000-0000-0000-0000000000ff"),
		Slug: "home",
		Name: "Homepage",
	}
}

func assertOrderInvariant(t *testing.T, page *pages.EditablePage) {
	t.Helper()
	sorted := pages.SortedSections(page)
	for idx, section := range sorted {
		if section.Order != idx {
			t.Fatalf("order invariant broken: index %d has order %d", idx, section.Order)
		}
	}
}

func TestComposerAddSectionDoesNotMutateInput(t *testing.T) {
	composer := testComposer()
	page := emptyPage()

	updated, err := composer.AddSection(page, heroTemplate(), "", "en")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if len(page.Sections) != 0 {
		t.Fatalf("input page mutated: %d sections", len(page.Sections))
	}
	if len(updated.Sections) != 1 {
		t.Fatalf("expected 1 section got %d", len(updated.Sections))
	}
	if updated.Sections[0].Title != "Restaurant Hero" {
		t.Fatalf("unexpected title %q", updated.Sections[0].Title)
	}
}

func TestComposerSiblingSectionsNeverShareContent(t *testing.T) {
	composer := testComposer()
	template := heroTemplate()

	page, err := composer.AddSection(emptyPage(), template, "", "en")
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	page, err = composer.AddSection(page, template, "", "en")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	page, err = composer.SetSectionContent(page, page.Sections[0].ID, "en", templates.Content{"heading": "Edited"})
	if err != nil {
		t.Fatalf("set content: %v", err)
	}

	if page.Sections[1].Content["en"]["heading"] != "Welcome to Our Restaurant" {
		t.Fatalf("sibling content aliased: %v", page.Sections[1].Content["en"]["heading"])
	}
	if template.DefaultContent["en"]["heading"] != "Welcome to Our Restaurant" {
		t.Fatalf("template content aliased: %v", template.DefaultContent["en"]["heading"])
	}
}

func TestComposerAddThenMoveUpIsNoOp(t *testing.T) {
	composer := testComposer()

	page, err := composer.AddSection(emptyPage(), heroTemplate(), "", "en")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	moved, err := composer.MoveSectionUp(page, page.Sections[0].ID)
	if err != nil {
		t.Fatalf("move up: %v", err)
	}
	if moved.Sections[0].Order != 0 {
		t.Fatalf("expected order 0 got %d", moved.Sections[0].Order)
	}
	assertOrderInvariant(t, moved)
}

func TestComposerDeleteFirstRenumbers(t *testing.T) {
	composer := testComposer()
	template := heroTemplate()

	page, err := composer.AddSection(emptyPage(), template, "", "en")
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	page, err = composer.AddSection(page, template, "", "en")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	survivor := page.Sections[1].ID

	page, err = composer.DeleteSection(page, page.Sections[0].ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(page.Sections) != 1 {
		t.Fatalf("expected 1 section got %d", len(page.Sections))
	}
	if page.Sections[0].ID != survivor || page.Sections[0].Order != 0 {
		t.Fatalf("expected survivor renumbered to 0, got order %d", page.Sections[0].Order)
	}
}

func TestComposerMoveSwapsOrdersOnly(t *testing.T) {
	composer := testComposer()
	template := heroTemplate()

	page, err := composer.AddSection(emptyPage(), template, "", "en")
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	page, err = composer.AddSection(page, template, "", "en")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	first, second := page.Sections[0].ID, page.Sections[1].ID

	page, err = composer.MoveSectionDown(page, first)
	if err != nil {
		t.Fatalf("move down: %v", err)
	}
	sorted := pages.SortedSections(page)
	if sorted[0].ID != second || sorted[1].ID != first {
		t.Fatal("expected sections swapped")
	}
	assertOrderInvariant(t, page)
}

func TestComposerMissingSection(t *testing.T) {
	composer := testComposer()
	page, err := composer.AddSection(emptyPage(), heroTemplate(), "", "en")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, op := range []func() error{
		func() error { _, err := composer.UpdateSection(page, uuid.New(), pages.SectionPatch{}); return err },
		func() error { _, err := composer.DeleteSection(page, uuid.New()); return err },
		func() error { _, err := composer.MoveSectionUp(page, uuid.New()); return err },
		func() error {
			_, err := composer.SetSectionContent(page, uuid.New(), "en", templates.Content{})
			return err
		},
	} {
		if err := op(); !errors.Is(err, pages.ErrSectionNotFound) {
			t.Fatalf("expected ErrSectionNotFound got %v", err)
		}
	}
}

func TestComposerUpdateSectionPatch(t *testing.T) {
	composer := testComposer()
	page, err := composer.AddSection(emptyPage(), heroTemplate(), "", "en")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	title := "Custom Hero"
	hidden := false
	updated, err := composer.UpdateSection(page, page.Sections[0].ID, pages.SectionPatch{
		Title:     &title,
		IsVisible: &hidden,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	section := updated.Sections[0]
	if section.Title != "Custom Hero" || section.IsVisible {
		t.Fatalf("patch not applied: title=%q visible=%v", section.Title, section.IsVisible)
	}
	if page.Sections[0].Title != "Restaurant Hero" {
		t.Fatal("input page mutated by update")
	}
}

// Randomized operation sequences must keep section orders contiguous.
func TestComposerOrderInvariantUnderRandomOps(t *testing.T) {
	composer := testComposer()
	template := heroTemplate()
	rng := rand.New(rand.NewSource(42))

	page := emptyPage()
	var err error
	for i := 0; i < 200; i++ {
		switch op := rng.Intn(4); {
		case op == 0 || len(page.Sections) == 0:
			page, err = composer.AddSection(page, template, "", "en")
		case op == 1:
			target := page.Sections[rng.Intn(len(page.Sections))].ID
			page, err = composer.DeleteSection(page, target)
		case op == 2:
			target := page.Sections[rng.Intn(len(page.Sections))].ID
			page, err = composer.MoveSectionUp(page, target)
		default:
			target := page.Sections[rng.Intn(len(page.Sections))].ID
			page, err = composer.MoveSectionDown(page, target)
		}
		if err != nil {
			t.Fatalf("op %d failed: %v", i, err)
		}
		assertOrderInvariant(t, page)
	}
}
