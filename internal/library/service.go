package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/internal/identity"
	"github.com/justcodeworks/go-pagebuilder/internal/logging"
	pblibrary "github.com/justcodeworks/go-pagebuilder/library"
	"github.com/justcodeworks/go-pagebuilder/pkg/interfaces"
)

// ServiceOption configures optional service collaborators.
type ServiceOption func(*service)

// WithClock overrides the time source stamped on ingested items.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
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
	repo   Repository
	logger interfaces.Logger
	now    func() time.Time
}

// NewService constructs the library service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Add(ctx context.Context, input AddItemInput) (*Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	target := strings.ToUpper(strings.TrimSpace(input.Target))
	id := identity.LibraryItemUUID(name, target)

	if _, err := s.repo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrItemExists, target, name)
	} else if !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}

	item := &Item{
		ID:           id,
		Name:         name,
		Target:       target,
		Category:     strings.TrimSpace(input.Category),
		Subcategory:  strings.TrimSpace(input.Subcategory),
		Description:  strings.TrimSpace(input.Description),
		Tags:         strings.TrimSpace(input.Tags),
		PreviewImage: strings.TrimSpace(input.PreviewImage),
		FilePath:     strings.TrimSpace(input.FilePath),
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("added library item", "name", name, "target", target, "priority", pblibrary.ClassifyItem(created))
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	if id == uuid.Nil {
		return nil, &ItemNotFoundError{Key: id.String()}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.List(ctx, filter)
}

// RenderHomepage runs the pipeline: filter by target and scope, classify and
// sort, dispatch archetypes. The result is an ordered fragment list ready for
// the presentation layer.
func (s *service) RenderHomepage(ctx context.Context, req RenderHomepageRequest) ([]Fragment, error) {
	target := strings.ToUpper(strings.TrimSpace(req.Target))
	if target == "" {
		target = pblibrary.TargetNextJS
	}

	items, err := s.repo.List(ctx, ListFilter{
		Target:      target,
		Category:    strings.TrimSpace(req.Category),
		Subcategory: strings.TrimSpace(req.Subcategory),
	})
	if err != nil {
		return nil, err
	}

	sorted := pblibrary.SortItems(items, target)
	fragments := pblibrary.RenderItems(sorted)

	s.logger.Debug("rendered homepage",
		"target", target,
		"items", len(items),
		"fragments", len(fragments),
	)
	return fragments, nil
}
