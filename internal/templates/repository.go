package templates

import (
	"context"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists catalog entries.
type Repository interface {
	Create(ctx context.Context, record *SectionTemplate) (*SectionTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SectionTemplate, error)
	GetByKey(ctx context.Context, templateCode, businessType, sectionType string) (*SectionTemplate, error)
	List(ctx context.Context) ([]*SectionTemplate, error)
	ListByCode(ctx context.Context, templateCode string) ([]*SectionTemplate, error)
}

// NewSectionTemplateRepository creates a repository for SectionTemplate entities.
func NewSectionTemplateRepository(db *bun.DB) repository.Repository[*SectionTemplate] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SectionTemplate]{
		NewRecord: func() *SectionTemplate { return &SectionTemplate{} },
		GetID: func(record *SectionTemplate) uuid.UUID {
			return record.ID
		},
		SetID: func(record *SectionTemplate, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *SectionTemplate) string {
			return record.ID.String()
		},
	})
}

func lowered(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func catalogKey(templateCode, businessType, sectionType string) string {
	return lowered(templateCode) + "|" + lowered(businessType) + "|" + lowered(sectionType)
}
