package templates_test

import (
	"testing"

	"github.com/justcodeworks/go-pagebuilder/templates"
)

func menuTemplate() *templates.SectionTemplate {
	return &templates.SectionTemplate{
		TemplateCode: "jcw-rest-00",
		BusinessType: "restaurant",
		SectionType:  "menu",
		DisplayName:  templates.LocaleStrings{"en": "Our Menu", "es": "Nuestro Menú"},
		DefaultContent: templates.LocaleContent{
			"en": templates.Content{"heading": "Our Menu", "subheading": "Fresh ingredients daily"},
			"es": templates.Content{"heading": "Nuestro Menú", "subheading": "Ingredientes frescos cada día"},
		},
		BusinessTypeMapping: map[string]templates.VerticalOverride{
			"bakery": {
				DisplayName:        templates.LocaleStrings{"en": "Our Baked Goods"},
				ContentAdjustments: templates.LocaleContent{"en": templates.Content{"heading": "Fresh From the Oven"}},
			},
		},
	}
}

func TestResolveForBusinessTypeOverride(t *testing.T) {
	resolved := menuTemplate().ResolveForBusinessType("bakery")

	if got := resolved.DisplayName["en"]; got != "Our Baked Goods" {
		t.Fatalf("expected override display name, got %q", got)
	}
	content := resolved.DefaultContent["en"]
	if content["heading"] != "Fresh From the Oven" {
		t.Fatalf("override heading not applied: %v", content["heading"])
	}
	if content["subheading"] != "Fresh ingredients daily" {
		t.Fatalf("base subheading lost: %v", content["subheading"])
	}
	// Locales the override does not touch stay intact.
	if resolved.DefaultContent["es"]["heading"] != "Nuestro Menú" {
		t.Fatalf("untouched locale changed: %v", resolved.DefaultContent["es"]["heading"])
	}
}

func TestResolveForBusinessTypeOwnVertical(t *testing.T) {
	template := menuTemplate()
	resolved := template.ResolveForBusinessType("restaurant")
	if resolved.DisplayName["en"] != "Our Menu" {
		t.Fatalf("own vertical should be unchanged, got %q", resolved.DisplayName["en"])
	}
}

func TestResolveForBusinessTypeUnknownVertical(t *testing.T) {
	resolved := menuTemplate().ResolveForBusinessType("dentist")
	if resolved.DisplayName["en"] != "Our Menu" {
		t.Fatalf("unknown vertical should fall back silently, got %q", resolved.DisplayName["en"])
	}
}

func TestResolveForBusinessTypeDoesNotMutateBase(t *testing.T) {
	template := menuTemplate()
	_ = template.ResolveForBusinessType("bakery")

	if template.DefaultContent["en"]["heading"] != "Our Menu" {
		t.Fatalf("base template mutated: %v", template.DefaultContent["en"]["heading"])
	}
	if template.DisplayName["en"] != "Our Menu" {
		t.Fatalf("base display name mutated: %q", template.DisplayName["en"])
	}
}

func TestContentMergeShallow(t *testing.T) {
	base := templates.Content{"heading": "A", "subheading": "B"}
	merged := base.Merge(templates.Content{"heading": "C"})

	if merged["heading"] != "C" || merged["subheading"] != "B" {
		t.Fatalf("unexpected merge result: %v", merged)
	}
	if base["heading"] != "A" {
		t.Fatalf("merge mutated receiver: %v", base["heading"])
	}
}

func TestDisplayNameForLocaleFallback(t *testing.T) {
	template := menuTemplate()

	if got := template.DisplayNameFor("", "fr"); got != "Our Menu" {
		t.Fatalf("expected en fallback, got %q", got)
	}
	if got := template.DisplayNameFor("bakery", "es"); got != "Our Baked Goods" {
		t.Fatalf("expected override fallback through en, got %q", got)
	}
}

func TestContentForMissingEverything(t *testing.T) {
	template := &templates.SectionTemplate{SectionType: "hero"}
	content := template.ContentFor("", "en")
	if len(content) != 0 {
		t.Fatalf("expected empty content, got %v", content)
	}
}
