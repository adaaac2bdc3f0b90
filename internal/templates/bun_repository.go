package templates

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTemplateRepository implements Repository with optional caching.
type BunTemplateRepository struct {
	repo         repository.Repository[*SectionTemplate]
	cacheService cache.CacheService
	cachePrefix  string
}

const templateNamespace = "section_template"

// NewBunTemplateRepository creates a catalog repository without caching.
func NewBunTemplateRepository(db *bun.DB) *BunTemplateRepository {
	return NewBunTemplateRepositoryWithCache(db, nil, nil)
}

// NewBunTemplateRepositoryWithCache creates a catalog repository with caching services.
func NewBunTemplateRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTemplateRepository {
	base := NewSectionTemplateRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = templateNamespace + cache.KeySeparator
	}
	return &BunTemplateRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunTemplateRepository) Create(ctx context.Context, record *SectionTemplate) (*SectionTemplate, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("section_template repository error: %w", err)
	}
	return created, nil
}

func (r *BunTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*SectionTemplate, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunTemplateRepository) GetByKey(ctx context.Context, templateCode, businessType, sectionType string) (*SectionTemplate, error) {
	key := catalogKey(templateCode, businessType, sectionType)
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(?TableAlias.template_code) = ?", lowered(templateCode)).
				Where("lower(?TableAlias.business_type) = ?", lowered(businessType)).
				Where("lower(?TableAlias.section_type) = ?", lowered(sectionType))
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, key)
	}
	if len(records) == 0 {
		return nil, &TemplateNotFoundError{Key: key}
	}
	return records[0], nil
}

func (r *BunTemplateRepository) List(ctx context.Context) ([]*SectionTemplate, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.template_code ASC").
				OrderExpr("?TableAlias.section_type ASC").
				OrderExpr("?TableAlias.business_type ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("section_template repository error: %w", err)
	}
	return records, nil
}

func (r *BunTemplateRepository) ListByCode(ctx context.Context, templateCode string) ([]*SectionTemplate, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(?TableAlias.template_code) = ?", lowered(templateCode)).
				OrderExpr("?TableAlias.section_type ASC").
				OrderExpr("?TableAlias.business_type ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("section_template repository error: %w", err)
	}
	return records, nil
}

// InvalidateCache clears cached catalog reads after a reseed.
func (r *BunTemplateRepository) InvalidateCache(ctx context.Context) error {
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
		return &TemplateNotFoundError{Key: key}
	}
	return fmt.Errorf("section_template repository error: %w", err)
}
