package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists editable pages. Sections are stored with the page and
// round-trip as an ordered array.
type Repository interface {
	Create(ctx context.Context, page *EditablePage) (*EditablePage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EditablePage, error)
	GetBySlug(ctx context.Context, slug string) (*EditablePage, error)
	List(ctx context.Context) ([]*EditablePage, error)
	Update(ctx context.Context, page *EditablePage) (*EditablePage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewPageRepository creates a repository for EditablePage entities.
func NewPageRepository(db *bun.DB) repository.Repository[*EditablePage] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*EditablePage]{
		NewRecord: func() *EditablePage { return &EditablePage{} },
		GetID: func(page *EditablePage) uuid.UUID {
			return page.ID
		},
		SetID: func(page *EditablePage, id uuid.UUID) {
			page.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(page *EditablePage) string {
			return page.Slug
		},
	})
}

// NewPageSectionRepository creates a repository for PageSection entities.
func NewPageSectionRepository(db *bun.DB) repository.Repository[*PageSection] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageSection]{
		NewRecord: func() *PageSection { return &PageSection{} },
		GetID: func(section *PageSection) uuid.UUID {
			return section.ID
		},
		SetID: func(section *PageSection, id uuid.UUID) {
			section.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(section *PageSection) string {
			return section.ID.String()
		},
	})
}
