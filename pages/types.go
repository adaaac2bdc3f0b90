package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/justcodeworks/go-pagebuilder/templates"
)

// SEOSettings carries per-locale page metadata.
type SEOSettings struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// PageSection is a concrete, independently editable copy of a section
// template within one page. TemplateID is provenance only: it is never
// dereferenced for rendering after instantiation and content diverges
// permanently from the source template once created.
type PageSection struct {
	bun.BaseModel `bun:"table:page_sections,alias:ps"`

	ID          uuid.UUID               `bun:",pk,type:uuid" json:"id"`
	PageID      uuid.UUID               `bun:"page_id,notnull,type:uuid" json:"page_id"`
	TemplateID  uuid.UUID               `bun:"template_id,type:uuid" json:"template_id"`
	SectionType string                  `bun:"section_type,notnull" json:"section_type"`
	Title       string                  `bun:"title" json:"title"`
	Content     templates.LocaleContent `bun:"content,type:jsonb,notnull" json:"content"`
	Settings    templates.Settings      `bun:"settings,type:jsonb" json:"settings"`
	Order       int                     `bun:"position,notnull,default:0" json:"order"`
	IsVisible   bool                    `bun:"is_visible,notnull,default:true" json:"is_visible"`
	IsEditable  bool                    `bun:"is_editable,notnull,default:true" json:"is_editable"`
	CreatedAt   time.Time               `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time               `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// EditablePage is the unit of composition a user edits. Sections always
// serialize as an ordered array, never as an object keyed by id; both the
// persistence and rendering collaborators depend on that shape.
type EditablePage struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID          uuid.UUID               `bun:",pk,type:uuid" json:"id"`
	Slug        string                  `bun:"slug,notnull,unique" json:"slug"`
	Name        string                  `bun:"name,notnull" json:"name"`
	Title       templates.LocaleStrings `bun:"title,type:jsonb" json:"title"`
	Description templates.LocaleStrings `bun:"description,type:jsonb" json:"description,omitempty"`
	Sections    []*PageSection          `bun:"rel:has-many,join:id=page_id" json:"sections"`
	IsPublished bool                    `bun:"is_published,notnull,default:false" json:"is_published"`
	SEOSettings map[string]SEOSettings  `bun:"seo_settings,type:jsonb" json:"seo_settings,omitempty"`
	CreatedAt   time.Time               `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time               `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// SectionPatch captures a partial update for a page section. Nil fields are
// left untouched by UpdateSection.
type SectionPatch struct {
	Title      *string                 `json:"title,omitempty"`
	Content    templates.LocaleContent `json:"content,omitempty"`
	Settings   *templates.Settings     `json:"settings,omitempty"`
	IsVisible  *bool                   `json:"is_visible,omitempty"`
	IsEditable *bool                   `json:"is_editable,omitempty"`
}

// WebsiteTemplate is the persistence-shaped export record the template
// persistence collaborator accepts for a composed page.
type WebsiteTemplate struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category,omitempty"`
	Sections     []*PageSection `json:"sections"`
	PreviewImage string         `json:"preview_image,omitempty"`
}

// Clone deep-copies a section so composition operations never alias content
// between page values.
func (s *PageSection) Clone() *PageSection {
	if s == nil {
		return nil
	}
	copied := *s
	copied.Content = s.Content.Clone()
	return &copied
}

// Clone deep-copies the page, sections included.
func (p *EditablePage) Clone() *EditablePage {
	if p == nil {
		return nil
	}
	copied := *p
	copied.Title = p.Title.Clone()
	copied.Description = p.Description.Clone()
	if p.SEOSettings != nil {
		seo := make(map[string]SEOSettings, len(p.SEOSettings))
		for locale, settings := range p.SEOSettings {
			entry := settings
			if settings.Keywords != nil {
				entry.Keywords = append([]string(nil), settings.Keywords...)
			}
			seo[locale] = entry
		}
		copied.SEOSettings = seo
	}
	if p.Sections != nil {
		copied.Sections = make([]*PageSection, len(p.Sections))
		for i, section := range p.Sections {
			copied.Sections[i] = section.Clone()
		}
	}
	return &copied
}

// Section returns the section with the given id, or nil.
func (p *EditablePage) Section(sectionID uuid.UUID) *PageSection {
	if p == nil {
		return nil
	}
	for _, section := range p.Sections {
		if section != nil && section.ID == sectionID {
			return section
		}
	}
	return nil
}
