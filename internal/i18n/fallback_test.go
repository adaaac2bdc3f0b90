package i18n_test

import (
	"testing"

	"github.com/justcodeworks/go-pagebuilder/internal/i18n"
)

func TestResolveLocaleChain(t *testing.T) {
	values := map[string]string{"en": "Hello", "es": "Hola", "fr": "Bonjour"}

	if key, _ := i18n.ResolveLocale(values, "es"); key != "es" {
		t.Fatalf("expected requested locale, got %q", key)
	}
	if key, _ := i18n.ResolveLocale(values, "de"); key != "en" {
		t.Fatalf("expected en fallback, got %q", key)
	}
	if key, _ := i18n.ResolveLocale(values, "ES "); key != "es" {
		t.Fatalf("expected locale normalization, got %q", key)
	}
}

func TestResolveLocaleFirstAvailable(t *testing.T) {
	values := map[string]string{"nl": "Hallo", "pt": "Olá"}

	key, ok := i18n.ResolveLocale(values, "fr")
	if !ok {
		t.Fatal("expected a resolution")
	}
	if key != "nl" {
		t.Fatalf("expected lexically first locale nl, got %q", key)
	}

	// Repeated reads must stay deterministic.
	for i := 0; i < 10; i++ {
		if again, _ := i18n.ResolveLocale(values, "fr"); again != key {
			t.Fatalf("non-deterministic fallback: %q vs %q", again, key)
		}
	}
}

func TestResolveEmptyMap(t *testing.T) {
	if _, ok := i18n.ResolveLocale(map[string]string{}, "en"); ok {
		t.Fatal("expected no resolution for empty map")
	}
	if got := i18n.ResolveString(nil, "en"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestResolveGenericValues(t *testing.T) {
	values := map[string]int{"en": 1, "es": 2}
	value, ok := i18n.Resolve(values, "fr")
	if !ok || value != 1 {
		t.Fatalf("expected en value 1, got %d (ok=%v)", value, ok)
	}
}

func TestFromModuleConfigNormalizes(t *testing.T) {
	cfg := i18n.FromModuleConfig(" EN ", []string{"EN", "es", "es", "", "Fr"})
	if cfg.DefaultLocale != "en" {
		t.Fatalf("expected normalized default, got %q", cfg.DefaultLocale)
	}
	if len(cfg.Locales) != 3 {
		t.Fatalf("expected deduplicated locales, got %v", cfg.Locales)
	}
}
