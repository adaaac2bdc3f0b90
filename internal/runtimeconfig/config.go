package runtimeconfig

import (
	"errors"
	"strings"
	"time"
)

var ErrDefaultLocaleRequired = errors.New("pagebuilder config: default locale is required")
var ErrStorageProviderUnknown = errors.New("pagebuilder config: storage provider is invalid")
var ErrAdvancedCacheRequiresEnabledCache = errors.New("pagebuilder config: advanced cache feature requires cache to be enabled")
var ErrCatalogContentDirRequired = errors.New("pagebuilder config: catalog content directory is required when markdown catalog is enabled")
var ErrLoggingProviderRequired = errors.New("pagebuilder config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("pagebuilder config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("pagebuilder config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("pagebuilder config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the page builder
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Storage       StorageConfig
	Cache         CacheConfig
	Catalog       CatalogConfig
	Library       LibraryConfig
	Features      Features
	Logging       LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures repository read-cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CatalogConfig controls how the section template catalog is populated.
type CatalogConfig struct {
	// ContentDir points at a directory of markdown template definitions
	// consumed when the MarkdownCatalog feature is enabled.
	ContentDir string
	// SeedDefaults loads the built-in template families at startup.
	SeedDefaults bool
}

// LibraryConfig scopes which library items feed the homepage renderer.
type LibraryConfig struct {
	Target      string
	Category    string
	Subcategory string
}

// Features toggles module functionality.
type Features struct {
	MarkdownCatalog   bool
	ContentValidation bool
	AdvancedCache     bool
	Logger            bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration used by the module facade.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en", "es", "fr", "de", "pt", "nl"},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: 5 * time.Minute,
		},
		Catalog: CatalogConfig{
			SeedDefaults: true,
		},
		Library: LibraryConfig{
			Target:      "NEXTJS",
			Category:    "main-website",
			Subcategory: "homepage",
		},
		Features: Features{
			ContentValidation: true,
		},
	}
}

// Validate checks cross-field consistency before the container boots.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Provider)) {
	case "", "memory", "bun":
	default:
		return ErrStorageProviderUnknown
	}

	if c.Features.AdvancedCache && !c.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}

	if c.Features.MarkdownCatalog && strings.TrimSpace(c.Catalog.ContentDir) == "" {
		return ErrCatalogContentDirRequired
	}

	if c.Features.Logger {
		if err := c.Logging.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (l LoggingConfig) validate() error {
	provider := strings.ToLower(strings.TrimSpace(l.Provider))
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	switch provider {
	case "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
