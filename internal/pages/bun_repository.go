package pages

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

// BunPageRepository implements Repository with optional caching. Sections are
// loaded eagerly with the page so composition always sees the full array.
type BunPageRepository struct {
	db           *bun.DB
	repo         repository.Repository[*EditablePage]
	sections     repository.Repository[*PageSection]
	cacheService cache.CacheService
	cachePrefix  string
}

const pageNamespace = "page"

// NewBunPageRepository creates a page repository without caching.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache creates a page repository with caching services.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPageRepository {
	base := NewPageRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = pageNamespace + cache.KeySeparator
	}
	return &BunPageRepository{
		db:           db,
		repo:         base,
		sections:     NewPageSectionRepository(db),
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunPageRepository) Create(ctx context.Context, page *EditablePage) (*EditablePage, error) {
	created, err := r.repo.Create(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	if err := r.replaceSections(ctx, created.ID, page.Sections); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, created.ID)
}

func (r *BunPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*EditablePage, error) {
	record, err := r.repo.GetByID(ctx, id.String(), withSections())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunPageRepository) GetBySlug(ctx context.Context, slug string) (*EditablePage, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug, withSections())
	if err != nil {
		return nil, mapRepositoryError(err, slug)
	}
	return record, nil
}

func (r *BunPageRepository) List(ctx context.Context) ([]*EditablePage, error) {
	records, _, err := r.repo.List(ctx,
		withSections(),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.slug ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) Update(ctx context.Context, page *EditablePage) (*EditablePage, error) {
	if _, err := r.repo.Update(ctx, page); err != nil {
		return nil, mapRepositoryError(err, page.ID.String())
	}
	if err := r.replaceSections(ctx, page.ID, page.Sections); err != nil {
		return nil, err
	}
	if err := r.invalidate(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, page.ID)
}

func (r *BunPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*PageSection)(nil)).
		Where("page_id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("page repository error: %w", err)
	}
	if err := r.repo.Delete(ctx, &EditablePage{ID: id}); err != nil {
		return mapRepositoryError(err, id.String())
	}
	return r.invalidate(ctx)
}

// replaceSections rewrites the page's section rows to match the in-memory
// array. Page updates always carry the complete section set, so replacement
// is simpler and safer than diffing.
func (r *BunPageRepository) replaceSections(ctx context.Context, pageID uuid.UUID, sections []*PageSection) error {
	if _, err := r.db.NewDelete().
		Model((*PageSection)(nil)).
		Where("page_id = ?", pageID).
		Exec(ctx); err != nil {
		return fmt.Errorf("page_section repository error: %w", err)
	}
	for _, section := range sections {
		if section == nil {
			continue
		}
		section.PageID = pageID
		if _, err := r.sections.Create(ctx, section); err != nil {
			return fmt.Errorf("page_section repository error: %w", err)
		}
	}
	return nil
}

func (r *BunPageRepository) invalidate(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func withSections() repository.SelectCriteria {
	return repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Sections", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.OrderExpr("position ASC")
		})
	})
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &PageNotFoundError{Key: key}
	}
	return fmt.Errorf("page repository error: %w", err)
}
