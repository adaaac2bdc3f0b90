package templates

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*SectionTemplate
	byKey map[string]uuid.UUID
}

// NewMemoryRepository constructs an in-memory repository for catalog entries.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:  make(map[uuid.UUID]*SectionTemplate),
		byKey: make(map[string]uuid.UUID),
	}
}

func (m *memoryRepository) Create(_ context.Context, record *SectionTemplate) (*SectionTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := record.Clone()
	m.byID[cloned.ID] = cloned
	m.byKey[catalogKey(cloned.TemplateCode, cloned.BusinessType, cloned.SectionType)] = cloned.ID
	return cloned.Clone(), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*SectionTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &TemplateNotFoundError{Key: id.String()}
	}
	return record.Clone(), nil
}

func (m *memoryRepository) GetByKey(_ context.Context, templateCode, businessType, sectionType string) (*SectionTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := catalogKey(templateCode, businessType, sectionType)
	id, ok := m.byKey[key]
	if !ok {
		return nil, &TemplateNotFoundError{Key: key}
	}
	return m.byID[id].Clone(), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*SectionTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*SectionTemplate, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, record.Clone())
	}
	sortTemplates(records)
	return records, nil
}

func (m *memoryRepository) ListByCode(_ context.Context, templateCode string) ([]*SectionTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code := strings.ToLower(strings.TrimSpace(templateCode))
	records := make([]*SectionTemplate, 0)
	for _, record := range m.byID {
		if strings.EqualFold(record.TemplateCode, code) {
			records = append(records, record.Clone())
		}
	}
	sortTemplates(records)
	return records, nil
}

// sortTemplates keeps listings deterministic regardless of map iteration.
func sortTemplates(records []*SectionTemplate) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TemplateCode != records[j].TemplateCode {
			return records[i].TemplateCode < records[j].TemplateCode
		}
		if records[i].SectionType != records[j].SectionType {
			return records[i].SectionType < records[j].SectionType
		}
		return records[i].BusinessType < records[j].BusinessType
	})
}
