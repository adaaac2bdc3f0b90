package templates

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Section types recognised by the catalog. The list mirrors the section
// families shipped with the default template data.
const (
	SectionHeader       = "header"
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionServices     = "services"
	SectionMenu         = "menu"
	SectionPricing      = "pricing"
	SectionTestimonials = "testimonials"
	SectionContact      = "contact"
	SectionFooter       = "footer"
)

// Content is the structured content object stored per locale. Fields are
// optional and archetype-dependent (heading, subheading, text, buttonText,
// buttonLink, items); the permissive shape matches what the persistence and
// rendering collaborators exchange.
type Content map[string]any

// LocaleContent maps locale codes to content objects.
type LocaleContent map[string]Content

// LocaleStrings maps locale codes to plain display strings.
type LocaleStrings map[string]string

// Settings captures the enumerated layout/style configuration attached to a
// section. It is configuration data, not styling logic.
type Settings struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Padding         string `json:"padding,omitempty"`
	Margin          string `json:"margin,omitempty"`
	Layout          string `json:"layout,omitempty"`
	Columns         int    `json:"columns,omitempty"`
	ShowImage       bool   `json:"showImage,omitempty"`
	ImagePosition   string `json:"imagePosition,omitempty"`
	Animation       string `json:"animation,omitempty"`
	Effect          string `json:"effect,omitempty"`
	CustomCSS       string `json:"customCSS,omitempty"`
}

// VerticalOverride carries the partial override applied when a template is
// resolved for a business vertical other than the one it was authored for.
type VerticalOverride struct {
	DisplayName        LocaleStrings `json:"display_name,omitempty"`
	ContentAdjustments LocaleContent `json:"content_adjustments,omitempty"`
}

// SectionTemplate is a catalog entry: a reusable, localized, vertical-aware
// blueprint for one page section. Entries are immutable at runtime.
type SectionTemplate struct {
	bun.BaseModel `bun:"table:section_templates,alias:st"`

	ID                  uuid.UUID                   `bun:",pk,type:uuid" json:"id"`
	TemplateCode        string                      `bun:"template_code,notnull" json:"template_code"`
	BusinessType        string                      `bun:"business_type,notnull" json:"business_type"`
	SectionType         string                      `bun:"section_type,notnull" json:"section_type"`
	DisplayName         LocaleStrings               `bun:"display_name,type:jsonb,notnull" json:"display_name"`
	Description         LocaleStrings               `bun:"description,type:jsonb" json:"description,omitempty"`
	DefaultContent      LocaleContent               `bun:"default_content,type:jsonb,notnull" json:"default_content"`
	DefaultSettings     Settings                    `bun:"default_settings,type:jsonb" json:"default_settings"`
	BusinessTypeMapping map[string]VerticalOverride `bun:"business_type_mapping,type:jsonb" json:"business_type_mapping,omitempty"`
	CreatedAt           time.Time                   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt           time.Time                   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Clone returns a deep copy of the content object so instantiated sections
// never share storage with their template.
func (c Content) Clone() Content {
	if c == nil {
		return nil
	}
	out := make(Content, len(c))
	for key, value := range c {
		out[key] = cloneValue(value)
	}
	return out
}

// Merge shallow-merges the override onto the receiver: override fields win
// per top-level key, fields absent from the override are retained.
func (c Content) Merge(override Content) Content {
	if len(override) == 0 {
		return c.Clone()
	}
	out := c.Clone()
	if out == nil {
		out = make(Content, len(override))
	}
	for key, value := range override {
		out[key] = cloneValue(value)
	}
	return out
}

// Clone deep-copies the per-locale content map.
func (lc LocaleContent) Clone() LocaleContent {
	if lc == nil {
		return nil
	}
	out := make(LocaleContent, len(lc))
	for locale, content := range lc {
		out[locale] = content.Clone()
	}
	return out
}

// Clone copies the display-string map.
func (ls LocaleStrings) Clone() LocaleStrings {
	if ls == nil {
		return nil
	}
	out := make(LocaleStrings, len(ls))
	for locale, value := range ls {
		out[locale] = value
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, nested := range typed {
			out[key] = cloneValue(nested)
		}
		return out
	case Content:
		return map[string]any(typed.Clone())
	case []any:
		out := make([]any, len(typed))
		for i, nested := range typed {
			out[i] = cloneValue(nested)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, nested := range typed {
			out[i] = cloneValue(nested)
		}
		return out
	default:
		return typed
	}
}
