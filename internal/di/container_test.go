package di_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/justcodeworks/go-pagebuilder/internal/di"
	"github.com/justcodeworks/go-pagebuilder/internal/runtimeconfig"
)

const customCatalogFile = `---
template_code: jcw-fit-01
business_type: gym
section_type: hero
display_name:
  en: Gym Hero
default_content:
  en:
    heading: Train Harder
---
Hero banner for fitness studios.
`

func TestNewContainerSeedsDefaultCatalog(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	entries, err := container.TemplateService().ListByCode(context.Background(), "jcw-rest-00")
	if err != nil {
		t.Fatalf("list seeded catalog: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 seeded entries, got %d", len(entries))
	}

	if container.PageService() == nil || container.LibraryService() == nil {
		t.Fatal("expected page and library services to be wired")
	}
}

func TestNewContainerLoadsMarkdownCatalog(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.SeedDefaults = false
	cfg.Catalog.ContentDir = "catalog"
	cfg.Features.MarkdownCatalog = true

	container, err := di.NewContainer(cfg, di.WithCatalogFS(fstest.MapFS{
		"hero.md": &fstest.MapFile{Data: []byte(customCatalogFile)},
	}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	entries, err := container.TemplateService().ListByCode(context.Background(), "jcw-fit-01")
	if err != nil {
		t.Fatalf("list markdown catalog: %v", err)
	}
	if len(entries) != 1 || entries[0].DisplayName["en"] != "Gym Hero" {
		t.Fatalf("unexpected catalog entries %#v", entries)
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = " "

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestNewContainerBunProviderRequiresDB(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "bun"

	if _, err := di.NewContainer(cfg); !errors.Is(err, di.ErrBunDatabaseRequired) {
		t.Fatalf("expected ErrBunDatabaseRequired, got %v", err)
	}
}
