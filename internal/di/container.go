package di

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/justcodeworks/go-pagebuilder/internal/library"
	"github.com/justcodeworks/go-pagebuilder/internal/logging"
	"github.com/justcodeworks/go-pagebuilder/internal/logging/gologger"
	"github.com/justcodeworks/go-pagebuilder/internal/pages"
	"github.com/justcodeworks/go-pagebuilder/internal/runtimeconfig"
	"github.com/justcodeworks/go-pagebuilder/internal/templates"
	"github.com/justcodeworks/go-pagebuilder/internal/validation"
	"github.com/justcodeworks/go-pagebuilder/pkg/interfaces"
)

// ErrBunDatabaseRequired signals that the configuration selected the bun
// storage provider without a database connection being injected.
var ErrBunDatabaseRequired = errors.New("pagebuilder di: bun storage provider requires a *bun.DB")

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	catalogFS      fs.FS

	contentValidator *validation.ContentValidator

	templateRepo templates.Repository
	pageRepo     pages.Repository
	libraryRepo  library.Repository

	templateSvc templates.Service
	pageSvc     pages.Service
	librarySvc  library.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB injects the database connection used by the bun storage provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache service and serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCatalogFS overrides the filesystem read by the markdown catalog loader.
// When unset the loader walks Config.Catalog.ContentDir on the host filesystem.
func WithCatalogFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.catalogFS = filesystem
	}
}

// WithTemplateService overrides the default template service binding.
func WithTemplateService(svc templates.Service) Option {
	return func(c *Container) {
		c.templateSvc = svc
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// WithLibraryService overrides the default library service binding.
func WithLibraryService(svc library.Service) Option {
	return func(c *Container) {
		c.librarySvc = svc
	}
}

// NewContainer creates a container with the provided configuration and boots
// the catalog, page, and library services against the configured storage.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:       cfg,
		cacheTTL:     cacheTTL,
		templateRepo: templates.NewMemoryRepository(),
		pageRepo:     pages.NewMemoryRepository(),
		libraryRepo:  library.NewMemoryRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}

	c.configureCacheDefaults()

	if err := c.configureRepositories(); err != nil {
		return nil, err
	}

	if err := c.configureValidation(); err != nil {
		return nil, err
	}

	if c.templateSvc == nil {
		templateOpts := []templates.ServiceOption{
			templates.WithLogger(logging.TemplatesLogger(c.loggerProvider)),
		}
		if c.contentValidator != nil {
			templateOpts = append(templateOpts, templates.WithContentValidator(c.contentValidator))
		}
		c.templateSvc = templates.NewService(c.templateRepo, templateOpts...)
	}

	if c.pageSvc == nil {
		c.pageSvc = pages.NewService(
			c.pageRepo,
			c.templateSvc,
			pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		)
	}

	if c.librarySvc == nil {
		c.librarySvc = library.NewService(
			c.libraryRepo,
			library.WithLogger(logging.LibraryLogger(c.loggerProvider)),
		)
	}

	if err := c.populateCatalog(context.Background()); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	case "noop":
		// services fall back to the no-op logger
	}

	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() error {
	provider := strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider))
	if provider != "bun" {
		return nil
	}

	if c.bunDB == nil {
		return ErrBunDatabaseRequired
	}

	c.templateRepo = templates.NewBunTemplateRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.pageRepo = pages.NewBunPageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.libraryRepo = library.NewBunItemRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)

	return nil
}

func (c *Container) configureValidation() error {
	if !c.Config.Features.ContentValidation {
		return nil
	}

	validator, err := validation.NewContentValidator()
	if err != nil {
		return fmt.Errorf("pagebuilder di: content validator: %w", err)
	}
	c.contentValidator = validator
	return nil
}

func (c *Container) populateCatalog(ctx context.Context) error {
	if c.Config.Catalog.SeedDefaults {
		if err := templates.SeedDefaultCatalog(ctx, c.templateSvc); err != nil {
			return err
		}
	}

	if !c.Config.Features.MarkdownCatalog {
		return nil
	}

	filesystem := c.catalogFS
	if filesystem == nil {
		filesystem = os.DirFS(c.Config.Catalog.ContentDir)
	}

	loader := templates.NewLoader(filesystem, c.templateSvc, logging.TemplatesLogger(c.loggerProvider))
	if _, err := loader.Load(ctx); err != nil {
		return fmt.Errorf("pagebuilder di: markdown catalog: %w", err)
	}

	return nil
}

// TemplateService returns the configured section template service.
func (c *Container) TemplateService() templates.Service {
	return c.templateSvc
}

// PageService returns the configured page composition service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// LibraryService returns the configured component library service.
func (c *Container) LibraryService() library.Service {
	return c.librarySvc
}

// LoggerProvider exposes the configured logger provider, if any.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// CacheService exposes the configured repository cache service, if any.
func (c *Container) CacheService() repocache.CacheService {
	return c.cacheService
}
