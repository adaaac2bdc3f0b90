package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/internal/i18n"
	"github.com/justcodeworks/go-pagebuilder/internal/identity"
	"github.com/justcodeworks/go-pagebuilder/internal/logging"
	pbpages "github.com/justcodeworks/go-pagebuilder/pages"
	pbtemplates "github.com/justcodeworks/go-pagebuilder/templates"
	"github.com/justcodeworks/go-pagebuilder/pkg/interfaces"
)

// ServiceOption configures optional service collaborators.
type ServiceOption func(*service)

// WithClock overrides the time source used for page timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
			s.composer = pbpages.NewComposer(pbpages.WithClock(clock), pbpages.WithIDGenerator(s.sectionID))
		}
	}
}

// WithSectionIDGenerator overrides section id generation.
func WithSectionIDGenerator(generator pbpages.IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.sectionID = generator
			s.composer = pbpages.NewComposer(pbpages.WithClock(s.now), pbpages.WithIDGenerator(generator))
		}
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo      Repository
	catalog   pbtemplates.Service
	composer  *pbpages.Composer
	logger    interfaces.Logger
	now       func() time.Time
	sectionID pbpages.IDGenerator
}

// NewService constructs the page service. The catalog is consulted only when
// instantiating sections; composition itself never dereferences templates.
func NewService(repo Repository, catalog pbtemplates.Service, opts ...ServiceOption) Service {
	s := &service{
		repo:      repo,
		catalog:   catalog,
		logger:    logging.NoOp(),
		now:       time.Now,
		sectionID: uuid.New,
	}
	s.composer = pbpages.NewComposer(pbpages.WithClock(s.now), pbpages.WithIDGenerator(s.sectionID))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*EditablePage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySlug(ctx, normalized); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugExists, normalized)
	} else if !errors.Is(err, ErrPageNotFound) {
		return nil, err
	}

	locale := i18n.NormalizeLocale(req.Locale)
	title := req.Title.Clone()
	if len(title) == 0 {
		title = pbtemplates.LocaleStrings{locale: req.Name}
	}

	now := s.now().UTC()
	page := &EditablePage{
		ID:          identity.PageUUID(normalized),
		Slug:        normalized,
		Name:        strings.TrimSpace(req.Name),
		Title:       title,
		Description: req.Description.Clone(),
		Sections:    []*pbpages.PageSection{},
		SEOSettings: cloneSEOSettings(req.SEOSettings),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("created page", "slug", normalized, "page_id", created.ID)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*EditablePage, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slugValue string) (*EditablePage, error) {
	normalized, err := normalizeSlug(slugValue)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, normalized)
}

func (s *service) List(ctx context.Context) ([]*EditablePage, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("deleted page", "page_id", id)
	return nil
}

func (s *service) AddSection(ctx context.Context, req AddSectionRequest) (*EditablePage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}
	template, err := s.catalog.Get(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	composed, err := s.composer.AddSection(page, template, req.BusinessType, req.Locale)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, composed)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("added section",
		"page_id", page.ID,
		"template_id", template.ID,
		"section_type", template.SectionType,
		"sections", len(updated.Sections),
	)
	return updated, nil
}

func (s *service) UpdateSection(ctx context.Context, req UpdateSectionRequest) (*EditablePage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.apply(ctx, req.PageID, func(page *EditablePage) (*EditablePage, error) {
		return s.composer.UpdateSection(page, req.SectionID, req.Patch)
	})
}

func (s *service) DeleteSection(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error) {
	return s.apply(ctx, pageID, func(page *EditablePage) (*EditablePage, error) {
		return s.composer.DeleteSection(page, sectionID)
	})
}

func (s *service) MoveSectionUp(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error) {
	return s.apply(ctx, pageID, func(page *EditablePage) (*EditablePage, error) {
		return s.composer.MoveSectionUp(page, sectionID)
	})
}

func (s *service) MoveSectionDown(ctx context.Context, pageID, sectionID uuid.UUID) (*EditablePage, error) {
	return s.apply(ctx, pageID, func(page *EditablePage) (*EditablePage, error) {
		return s.composer.MoveSectionDown(page, sectionID)
	})
}

func (s *service) SetSectionContent(ctx context.Context, req SetSectionContentRequest) (*EditablePage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	locale := i18n.NormalizeLocale(req.Locale)
	return s.apply(ctx, req.PageID, func(page *EditablePage) (*EditablePage, error) {
		return s.composer.SetSectionContent(page, req.SectionID, locale, req.Content)
	})
}

func (s *service) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*EditablePage, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := page.Clone()
	updated.IsPublished = published
	updated.UpdatedAt = s.now().UTC()

	stored, err := s.repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page publish state changed", "page_id", id, "published", published)
	return stored, nil
}

func (s *service) Export(ctx context.Context, req ExportWebsiteTemplateRequest) (*WebsiteTemplate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	locale := i18n.NormalizeLocale(req.Locale)
	sections := pbpages.SortedSections(page)
	exported := make([]*pbpages.PageSection, len(sections))
	for i, section := range sections {
		exported[i] = section.Clone()
	}

	record := &WebsiteTemplate{
		ID:           page.ID,
		Name:         page.Name,
		Description:  i18n.ResolveString(page.Description, locale),
		Category:     strings.TrimSpace(req.Category),
		Sections:     exported,
		PreviewImage: strings.TrimSpace(req.PreviewImage),
	}

	s.logger.Debug("exported website template", "page_id", page.ID, "sections", len(exported))
	return record, nil
}

// apply loads a page, runs one pure composition step, and stores the result.
func (s *service) apply(ctx context.Context, pageID uuid.UUID, op func(*EditablePage) (*EditablePage, error)) (*EditablePage, error) {
	if pageID == uuid.Nil {
		return nil, ErrPageRequired
	}

	page, err := s.repo.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}

	composed, err := op(page)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, composed)
}

func normalizeSlug(value string) (string, error) {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return "", ErrSlugRequired
	}
	normalized, err := slug.Default().Normalize(candidate)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %s", ErrSlugInvalid, candidate)
	}
	return normalized, nil
}

func cloneSEOSettings(settings map[string]SEOSettings) map[string]SEOSettings {
	if settings == nil {
		return nil
	}
	out := make(map[string]SEOSettings, len(settings))
	for locale, entry := range settings {
		copied := entry
		if entry.Keywords != nil {
			copied.Keywords = append([]string(nil), entry.Keywords...)
		}
		out[locale] = copied
	}
	return out
}
