package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/internal/i18n"
	"github.com/justcodeworks/go-pagebuilder/internal/identity"
	"github.com/justcodeworks/go-pagebuilder/internal/logging"
	"github.com/justcodeworks/go-pagebuilder/internal/validation"
	"github.com/justcodeworks/go-pagebuilder/pkg/interfaces"
)

// ServiceOption configures optional service collaborators.
type ServiceOption func(*service)

// WithClock overrides the time source used for catalog timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides catalog entry ID derivation.
func WithIDGenerator(generator func(templateCode, businessType, sectionType string) uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
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

// WithContentValidator enables schema validation of default content at
// registration time.
func WithContentValidator(validator *validation.ContentValidator) ServiceOption {
	return func(s *service) {
		s.validator = validator
	}
}

type service struct {
	repo      Repository
	validator *validation.ContentValidator
	logger    interfaces.Logger
	now       func() time.Time
	id        func(templateCode, businessType, sectionType string) uuid.UUID
}

// NewService constructs the catalog service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
		id:     identity.SectionTemplateUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Register(ctx context.Context, input RegisterTemplateInput) (*SectionTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code := lowered(input.TemplateCode)
	businessType := lowered(input.BusinessType)
	sectionType := lowered(input.SectionType)

	if s.validator != nil {
		for locale, content := range input.DefaultContent {
			if err := s.validator.Validate(sectionType, content); err != nil {
				return nil, fmt.Errorf("templates: register %s locale %q: %w", catalogKey(code, businessType, sectionType), locale, err)
			}
		}
	}

	if _, err := s.repo.GetByKey(ctx, code, businessType, sectionType); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateExists, catalogKey(code, businessType, sectionType))
	} else if !errors.Is(err, ErrTemplateNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	record := &SectionTemplate{
		ID:                  s.id(code, businessType, sectionType),
		TemplateCode:        code,
		BusinessType:        businessType,
		SectionType:         sectionType,
		DisplayName:         input.DisplayName.Clone(),
		Description:         input.Description.Clone(),
		DefaultContent:      input.DefaultContent.Clone(),
		DefaultSettings:     input.DefaultSettings,
		BusinessTypeMapping: cloneMapping(input.BusinessTypeMapping),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("registered section template",
		"template_code", code,
		"business_type", businessType,
		"section_type", sectionType,
	)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*SectionTemplate, error) {
	if id == uuid.Nil {
		return nil, &TemplateNotFoundError{Key: id.String()}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*SectionTemplate, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByCode(ctx context.Context, templateCode string) ([]*SectionTemplate, error) {
	code := lowered(templateCode)
	if code == "" {
		return nil, ErrTemplateCodeRequired
	}
	return s.repo.ListByCode(ctx, code)
}

func (s *service) Resolve(ctx context.Context, templateCode, businessType, locale string) ([]*SectionTemplate, error) {
	entries, err := s.ListByCode(ctx, templateCode)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &TemplateNotFoundError{Key: lowered(templateCode)}
	}

	resolved := make([]*SectionTemplate, 0, len(entries))
	for _, entry := range entries {
		resolved = append(resolved, entry.ResolveForBusinessType(businessType))
	}

	s.logger.Debug("resolved template family",
		"template_code", lowered(templateCode),
		"business_type", lowered(businessType),
		"locale", i18n.NormalizeLocale(locale),
		"sections", len(resolved),
	)
	return resolved, nil
}

func cloneMapping(mapping map[string]VerticalOverride) map[string]VerticalOverride {
	if len(mapping) == 0 {
		return nil
	}
	out := make(map[string]VerticalOverride, len(mapping))
	for vertical, override := range mapping {
		out[lowered(vertical)] = VerticalOverride{
			DisplayName:        override.DisplayName.Clone(),
			ContentAdjustments: override.ContentAdjustments.Clone(),
		}
	}
	return out
}
