package pagebuilder

import "github.com/justcodeworks/go-pagebuilder/internal/runtimeconfig"

// Config aggregates feature flags and adapter bindings for the module.
type Config = runtimeconfig.Config

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig = runtimeconfig.StorageConfig

// CacheConfig captures repository read-cache behaviour toggles.
type CacheConfig = runtimeconfig.CacheConfig

// CatalogConfig controls how the section template catalog is populated.
type CatalogConfig = runtimeconfig.CatalogConfig

// LibraryConfig scopes which library items feed the homepage renderer.
type LibraryConfig = runtimeconfig.LibraryConfig

// Features toggles module functionality.
type Features = runtimeconfig.Features

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig = runtimeconfig.LoggingConfig

// Configuration validation errors surfaced by Config.Validate.
var (
	ErrDefaultLocaleRequired             = runtimeconfig.ErrDefaultLocaleRequired
	ErrStorageProviderUnknown            = runtimeconfig.ErrStorageProviderUnknown
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrCatalogContentDirRequired         = runtimeconfig.ErrCatalogContentDirRequired
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

// DefaultConfig returns the baseline configuration used by New.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
