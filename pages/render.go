package pages

import (
	"github.com/justcodeworks/go-pagebuilder/internal/i18n"
	"github.com/justcodeworks/go-pagebuilder/templates"
)

// ResolveSectionContent produces the content a renderer should display for a
// section in the given locale. The section's own content is resolved through
// the locale fallback chain (requested locale, "en", first available); any
// top-level field still absent falls back to the owning template's default
// content resolved the same way. Fields absent from both render as absent; no
// placeholder is invented. The template argument may be nil when provenance
// is unavailable, in which case only the section's own content applies.
func ResolveSectionContent(section *PageSection, template *templates.SectionTemplate, businessType, locale string) templates.Content {
	if section == nil {
		return templates.Content{}
	}

	own, _ := i18n.Resolve(map[string]templates.Content(section.Content), locale)

	var base templates.Content
	if template != nil {
		base = template.ContentFor(businessType, locale)
	}

	merged := base.Merge(own)
	if merged == nil {
		return templates.Content{}
	}
	return merged
}

// ResolvePageTitle resolves the page title for a locale, falling back to the
// page name when no localized title exists.
func ResolvePageTitle(page *EditablePage, locale string) string {
	if page == nil {
		return ""
	}
	if title := i18n.ResolveString(page.Title, locale); title != "" {
		return title
	}
	return page.Name
}
