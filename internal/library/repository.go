package library

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists library items.
type Repository interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]*Item, error)
}

// NewItemRepository creates a repository for library Item entities.
func NewItemRepository(db *bun.DB) repository.Repository[*Item] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Item]{
		NewRecord: func() *Item { return &Item{} },
		GetID: func(item *Item) uuid.UUID {
			return item.ID
		},
		SetID: func(item *Item, id uuid.UUID) {
			item.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(item *Item) string {
			return item.ID.String()
		},
	})
}

func cloneItem(item *Item) *Item {
	if item == nil {
		return nil
	}
	copied := *item
	return &copied
}
