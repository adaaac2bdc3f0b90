package library

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunItemRepository implements Repository with optional caching.
type BunItemRepository struct {
	repo         repository.Repository[*Item]
	cacheService cache.CacheService
	cachePrefix  string
}

const itemNamespace = "library_item"

// NewBunItemRepository creates a library repository without caching.
func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return NewBunItemRepositoryWithCache(db, nil, nil)
}

// NewBunItemRepositoryWithCache creates a library repository with caching services.
func NewBunItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunItemRepository {
	base := NewItemRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = itemNamespace + cache.KeySeparator
	}
	return &BunItemRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunItemRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	created, err := r.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("library_item repository error: %w", err)
	}
	return created, nil
}

func (r *BunItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunItemRepository) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if filter.Target != "" {
				q = q.Where("upper(?TableAlias.target) = ?", strings.ToUpper(filter.Target))
			}
			if filter.Category != "" {
				q = q.Where("lower(?TableAlias.category) = ?", strings.ToLower(filter.Category))
			}
			if filter.Subcategory != "" {
				q = q.Where("lower(?TableAlias.subcategory) = ?", strings.ToLower(filter.Subcategory))
			}
			return q.OrderExpr("?TableAlias.created_at ASC").
				OrderExpr("?TableAlias.name ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("library_item repository error: %w", err)
	}
	return records, nil
}

// InvalidateCache clears cached listings after new uploads land.
func (r *BunItemRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &ItemNotFoundError{Key: key}
	}
	return fmt.Errorf("library_item repository error: %w", err)
}
