package templates

import (
	"strings"

	"github.com/justcodeworks/go-pagebuilder/internal/i18n"
)

// ResolveForBusinessType returns a copy of the template adapted for the given
// business vertical. When the vertical matches the authoring vertical, or no
// override entry exists for it, the base entry is returned unchanged; a
// missing override is never an error.
func (t *SectionTemplate) ResolveForBusinessType(businessType string) *SectionTemplate {
	resolved := t.Clone()

	vertical := strings.ToLower(strings.TrimSpace(businessType))
	if vertical == "" || strings.EqualFold(vertical, t.BusinessType) {
		return resolved
	}

	override, ok := t.BusinessTypeMapping[vertical]
	if !ok {
		return resolved
	}

	if len(override.DisplayName) > 0 {
		resolved.DisplayName = override.DisplayName.Clone()
	}
	for locale, fragment := range override.ContentAdjustments {
		resolved.DefaultContent[locale] = t.DefaultContent[locale].Merge(fragment)
	}

	return resolved
}

// DisplayNameFor resolves the editor-facing display name for a vertical and
// locale through the standard fallback chain.
func (t *SectionTemplate) DisplayNameFor(businessType, locale string) string {
	return i18n.ResolveString(t.ResolveForBusinessType(businessType).DisplayName, locale)
}

// DescriptionFor resolves the editor-facing description for a locale.
func (t *SectionTemplate) DescriptionFor(locale string) string {
	return i18n.ResolveString(t.Description, locale)
}

// ContentFor resolves the default content a new section instance starts from,
// applying the vertical override then the locale fallback chain.
func (t *SectionTemplate) ContentFor(businessType, locale string) Content {
	resolved := t.ResolveForBusinessType(businessType)
	content, ok := i18n.Resolve(map[string]Content(resolved.DefaultContent), locale)
	if !ok {
		return Content{}
	}
	return content.Clone()
}

// Clone deep-copies the catalog entry so resolved variants never alias the
// base entry's maps.
func (t *SectionTemplate) Clone() *SectionTemplate {
	if t == nil {
		return nil
	}
	copied := *t
	copied.DisplayName = t.DisplayName.Clone()
	copied.Description = t.Description.Clone()
	copied.DefaultContent = t.DefaultContent.Clone()
	if copied.DefaultContent == nil {
		copied.DefaultContent = LocaleContent{}
	}
	if len(t.BusinessTypeMapping) > 0 {
		mapping := make(map[string]VerticalOverride, len(t.BusinessTypeMapping))
		for vertical, override := range t.BusinessTypeMapping {
			mapping[vertical] = VerticalOverride{
				DisplayName:        override.DisplayName.Clone(),
				ContentAdjustments: override.ContentAdjustments.Clone(),
			}
		}
		copied.BusinessTypeMapping = mapping
	}
	return &copied
}
