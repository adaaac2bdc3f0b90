package templates

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Service describes template catalog capabilities. The catalog is loaded once
// at startup and treated as immutable afterwards; Register exists for
// bootstrap and catalog loaders, not for runtime mutation of live entries.
type Service interface {
	Register(ctx context.Context, input RegisterTemplateInput) (*SectionTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*SectionTemplate, error)
	List(ctx context.Context) ([]*SectionTemplate, error)
	ListByCode(ctx context.Context, templateCode string) ([]*SectionTemplate, error)
	Resolve(ctx context.Context, templateCode, businessType, locale string) ([]*SectionTemplate, error)
}

// RegisterTemplateInput captures the payload required to add a catalog entry.
type RegisterTemplateInput struct {
	TemplateCode        string                      `json:"template_code"`
	BusinessType        string                      `json:"business_type"`
	SectionType         string                      `json:"section_type"`
	DisplayName         LocaleStrings               `json:"display_name"`
	Description         LocaleStrings               `json:"description,omitempty"`
	DefaultContent      LocaleContent               `json:"default_content"`
	DefaultSettings     Settings                    `json:"default_settings"`
	BusinessTypeMapping map[string]VerticalOverride `json:"business_type_mapping,omitempty"`
}

// Validate ensures the catalog entry carries the minimum localized payload.
func (i RegisterTemplateInput) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(i.TemplateCode) == "" {
		errs["template_code"] = ErrTemplateCodeRequired
	}
	if strings.TrimSpace(i.BusinessType) == "" {
		errs["business_type"] = ErrBusinessTypeRequired
	}
	if strings.TrimSpace(i.SectionType) == "" {
		errs["section_type"] = ErrSectionTypeRequired
	}
	if len(i.DisplayName) == 0 {
		errs["display_name"] = ErrDisplayNameRequired
	}
	if len(i.DefaultContent) == 0 {
		errs["default_content"] = ErrContentRequired
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
