package library

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Item
}

// NewMemoryRepository constructs an in-memory repository for library items.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Item)}
}

func (m *memoryRepository) Create(_ context.Context, item *Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneItem(item)
	m.byID[cloned.ID] = cloned
	return cloneItem(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.byID[id]
	if !ok {
		return nil, &ItemNotFoundError{Key: id.String()}
	}
	return cloneItem(item), nil
}

func (m *memoryRepository) List(_ context.Context, filter ListFilter) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Item, 0, len(m.byID))
	for _, item := range m.byID {
		if !matchesFilter(item, filter) {
			continue
		}
		items = append(items, cloneItem(item))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func matchesFilter(item *Item, filter ListFilter) bool {
	if filter.Target != "" && !strings.EqualFold(item.Target, filter.Target) {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(item.Category, filter.Category) {
		return false
	}
	if filter.Subcategory != "" && !strings.EqualFold(item.Subcategory, filter.Subcategory) {
		return false
	}
	return true
}
