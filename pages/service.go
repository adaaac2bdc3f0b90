package pages

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/templates"
)

// Service describes the persistence-backed page editing surface. The
// composition semantics are those of Composer; the service loads the page,
// applies the pure operation, and stores the result.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*EditablePage, error)
	Get(ctx context.Context, id uuid.UUID) (*EditablePage, error)
	GetBySlug(ctx context.Context, slug string) (*EditablePage, error)
	List(ctx context.Context) ([]*EditablePage, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddSection(ctx context.Context, req AddSectionRequest) (*EditablePage, error)
	UpdateSection(ctx context.Context, req UpdateSectionRequest) (*EditablePage, error)
	DeleteSection(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error)
	MoveSectionUp(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error)
	MoveSectionDown(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error)
	SetSectionContent(ctx context.Context, req SetSectionContentRequest) (*EditablePage, error)

	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*EditablePage, error)
	Export(ctx context.Context, req ExportWebsiteTemplateRequest) (*WebsiteTemplate, error)
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	Slug        string                  `json:"slug"`
	Name        string                  `json:"name"`
	Locale      string                  `json:"locale"`
	Title       templates.LocaleStrings `json:"title,omitempty"`
	Description templates.LocaleStrings `json:"description,omitempty"`
	SEOSettings map[string]SEOSettings  `json:"seo_settings,omitempty"`
}

// Validate ensures the page carries a slug and a name.
func (r CreatePageRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Slug) == "" {
		errs["slug"] = ErrSlugRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = ErrNameRequired
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddSectionRequest instantiates a resolved template onto a page.
type AddSectionRequest struct {
	PageID       uuid.UUID `json:"page_id"`
	TemplateID   uuid.UUID `json:"template_id"`
	BusinessType string    `json:"business_type,omitempty"`
	Locale       string    `json:"locale,omitempty"`
}

// Validate ensures both page and template identifiers are present.
func (r AddSectionRequest) Validate() error {
	errs := validation.Errors{}
	if r.PageID == uuid.Nil {
		errs["page_id"] = ErrPageRequired
	}
	if r.TemplateID == uuid.Nil {
		errs["template_id"] = ErrTemplateRequired
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSectionRequest merges a patch onto an existing section.
type UpdateSectionRequest struct {
	PageID    uuid.UUID    `json:"page_id"`
	SectionID uuid.UUID    `json:"section_id"`
	Patch     SectionPatch `json:"patch"`
}

// Validate ensures identifiers are present.
func (r UpdateSectionRequest) Validate() error {
	errs := validation.Errors{}
	if r.PageID == uuid.Nil {
		errs["page_id"] = ErrPageRequired
	}
	if r.SectionID == uuid.Nil {
		errs["section_id"] = ErrSectionNotFound
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetSectionContentRequest replaces the content of one locale of one section.
type SetSectionContentRequest struct {
	PageID    uuid.UUID         `json:"page_id"`
	SectionID uuid.UUID         `json:"section_id"`
	Locale    string            `json:"locale"`
	Content   templates.Content `json:"content"`
}

// Validate ensures identifiers and locale are present.
func (r SetSectionContentRequest) Validate() error {
	errs := validation.Errors{}
	if r.PageID == uuid.Nil {
		errs["page_id"] = ErrPageRequired
	}
	if r.SectionID == uuid.Nil {
		errs["section_id"] = ErrSectionNotFound
	}
	if strings.TrimSpace(r.Locale) == "" {
		errs["locale"] = ErrLocaleRequired
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportWebsiteTemplateRequest shapes a page into the collaborator record.
type ExportWebsiteTemplateRequest struct {
	PageID       uuid.UUID `json:"page_id"`
	Locale       string    `json:"locale,omitempty"`
	Category     string    `json:"category,omitempty"`
	PreviewImage string    `json:"preview_image,omitempty"`
}

// Validate ensures the page identifier is present.
func (r ExportWebsiteTemplateRequest) Validate() error {
	if r.PageID == uuid.Nil {
		return validation.Errors{"page_id": ErrPageRequired}
	}
	return nil
}
