package library_test

import (
	"strings"
	"testing"

	"github.com/justcodeworks/go-pagebuilder/library"
)

func TestArchetypeForPrecedence(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Hero Banner", library.ArchetypeHero},
		{"hero-section", library.ArchetypeHero},
		{"Services Grid", library.ArchetypeServices},
		{"About Us", library.ArchetypeAbout},
		{"Pricing Table", library.ArchetypePricing},
		{"Footer Links", library.ArchetypeFooter},
		{"Featured Solutions", library.ArchetypeFeatured},
		{"xyz123", library.ArchetypeGeneric},
		{"", library.ArchetypeGeneric},
		// "hero" wins over "service" because precedence is fixed.
		{"Hero Service Combo", library.ArchetypeHero},
	}
	for _, tc := range cases {
		if got := library.ArchetypeFor(tc.name); got != tc.want {
			t.Errorf("ArchetypeFor(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderIsTotal(t *testing.T) {
	for _, name := range []string{"", "xyz123", "Hero Banner", "???", "footer_links"} {
		fragment := library.Render(name)
		if fragment.Archetype == "" {
			t.Fatalf("Render(%q) produced empty archetype", name)
		}
		if fragment.Heading == "" && fragment.Body == "" && len(fragment.Cards) == 0 {
			t.Fatalf("Render(%q) produced an empty fragment", name)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	first := library.Render("Pricing Table")
	second := library.Render("Pricing Table")
	if first.Heading != second.Heading || len(first.Cards) != len(second.Cards) {
		t.Fatal("expected identical fragments for identical input")
	}
	if len(first.Cards) != 3 {
		t.Fatalf("expected 3 pricing cards got %d", len(first.Cards))
	}
	if !first.Cards[1].Highlighted {
		t.Fatal("expected middle pricing tier highlighted")
	}
}

func TestRenderGenericEchoesName(t *testing.T) {
	fragment := library.Render("custom-promo_block")
	if fragment.Archetype != library.ArchetypeGeneric {
		t.Fatalf("expected generic archetype got %q", fragment.Archetype)
	}
	if fragment.Heading != "Custom Promo Block" {
		t.Fatalf("expected humanized heading, got %q", fragment.Heading)
	}
	if !strings.Contains(fragment.Body, "custom-promo_block") {
		t.Fatalf("expected body to echo raw name, got %q", fragment.Body)
	}
}

func TestRenderServicesCards(t *testing.T) {
	fragment := library.Render("Services Overview")
	if len(fragment.Cards) != 8 {
		t.Fatalf("expected 8 service cards got %d", len(fragment.Cards))
	}
	for _, card := range fragment.Cards {
		if card.Title == "" || card.Description == "" {
			t.Fatalf("service card missing copy: %+v", card)
		}
	}
}

func TestRenderBodyHTML(t *testing.T) {
	fragment := library.Render("About Our Story")
	if fragment.BodyHTML == "" {
		t.Fatal("expected rendered HTML body")
	}
	if !strings.Contains(fragment.BodyHTML, "<p>") {
		t.Fatalf("expected paragraph markup, got %q", fragment.BodyHTML)
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"hero-section":   "Hero Section",
		"my_cool_block":  "My Cool Block",
		"already Titled": "Already Titled",
		"":               "",
	}
	for input, want := range cases {
		if got := library.Humanize(input); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", input, got, want)
		}
	}
}
