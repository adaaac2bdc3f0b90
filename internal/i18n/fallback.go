package i18n

import (
	"sort"
	"strings"
)

// FallbackLocale is the pivot locale every lookup falls back to before the
// first-available rule applies.
const FallbackLocale = "en"

// Config carries the locale settings shared across modules.
type Config struct {
	DefaultLocale string
	Locales       []string
}

// FromModuleConfig normalizes module-level locale configuration.
func FromModuleConfig(defaultLocale string, locales []string) Config {
	return Config{
		DefaultLocale: NormalizeLocale(defaultLocale),
		Locales:       normalizeLocales(locales),
	}
}

// NormalizeLocale lowercases and trims a locale code.
func NormalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

func normalizeLocales(locales []string) []string {
	out := make([]string, 0, len(locales))
	seen := map[string]struct{}{}
	for _, locale := range locales {
		normalized := NormalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// ResolveLocale reports which key of the locale map satisfies a lookup for
// the requested locale: the locale itself, then "en", then the first
// available key in lexical order so repeated reads stay deterministic.
// The second return is false only when the map is empty.
func ResolveLocale[T any](values map[string]T, locale string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}

	requested := NormalizeLocale(locale)
	if requested != "" {
		if _, ok := values[requested]; ok {
			return requested, true
		}
	}

	if _, ok := values[FallbackLocale]; ok {
		return FallbackLocale, true
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys[0], true
}

// Resolve returns the value for the requested locale after applying the
// fallback chain. The zero value and false are returned only for empty maps;
// a missing locale never errors.
func Resolve[T any](values map[string]T, locale string) (T, bool) {
	key, ok := ResolveLocale(values, locale)
	if !ok {
		var zero T
		return zero, false
	}
	return values[key], true
}

// ResolveString is Resolve specialised for display-string maps, returning ""
// when no locale data exists at all.
func ResolveString(values map[string]string, locale string) string {
	value, _ := Resolve(values, locale)
	return value
}
