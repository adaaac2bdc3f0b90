package pages

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*EditablePage
	bySlug map[string]uuid.UUID
}

// NewMemoryRepository constructs an in-memory repository for pages.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*EditablePage),
		bySlug: make(map[string]uuid.UUID),
	}
}

func (m *memoryRepository) Create(_ context.Context, page *EditablePage) (*EditablePage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := page.Clone()
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return cloned.Clone(), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*EditablePage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &PageNotFoundError{Key: id.String()}
	}
	return record.Clone(), nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*EditablePage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, &PageNotFoundError{Key: slug}
	}
	return m.byID[id].Clone(), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*EditablePage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*EditablePage, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, record.Clone())
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Slug < records[j].Slug
	})
	return records, nil
}

func (m *memoryRepository) Update(_ context.Context, page *EditablePage) (*EditablePage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[page.ID]
	if !ok {
		return nil, &PageNotFoundError{Key: page.ID.String()}
	}

	oldSlug := existing.Slug
	cloned := page.Clone()
	m.byID[cloned.ID] = cloned

	if oldSlug != "" && oldSlug != cloned.Slug {
		delete(m.bySlug, oldSlug)
	}
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return cloned.Clone(), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[id]
	if !ok {
		return &PageNotFoundError{Key: id.String()}
	}
	if existing.Slug != "" {
		delete(m.bySlug, existing.Slug)
	}
	delete(m.byID, id)
	return nil
}
