package pagebuilder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uptrace/bun"

	pagebuilder "github.com/justcodeworks/go-pagebuilder"
	"github.com/justcodeworks/go-pagebuilder/internal/di"
	"github.com/justcodeworks/go-pagebuilder/library"
	"github.com/justcodeworks/go-pagebuilder/pages"
	"github.com/justcodeworks/go-pagebuilder/pkg/database"
	"github.com/justcodeworks/go-pagebuilder/pkg/testsupport"
	"github.com/justcodeworks/go-pagebuilder/templates"
)

func TestModule_MemoryComposition(t *testing.T) {
	ctx := context.Background()

	module, err := pagebuilder.New(pagebuilder.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	resolved, err := module.Templates().Resolve(ctx, "jcw-rest-00", "cafe", "en")
	if err != nil {
		t.Fatalf("resolve seeded catalog: %v", err)
	}
	if len(resolved) != 4 {
		t.Fatalf("expected 4 seeded sections, got %d", len(resolved))
	}

	var hero *templates.SectionTemplate
	for _, tpl := range resolved {
		if tpl.SectionType == "hero" {
			hero = tpl
		}
	}
	if hero == nil {
		t.Fatal("expected hero section in seeded catalog")
	}
	if hero.DisplayName["en"] != "Cafe Hero" {
		t.Fatalf("expected cafe override, got %q", hero.DisplayName["en"])
	}

	page, err := module.Pages().Create(ctx, pages.CreatePageRequest{
		Slug:   "corner-cafe",
		Name:   "Corner Cafe",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	composed, err := module.Pages().AddSection(ctx, pages.AddSectionRequest{
		PageID:       page.ID,
		TemplateID:   hero.ID,
		BusinessType: "cafe",
		Locale:       "en",
	})
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if len(composed.Sections) != 1 || composed.Sections[0].Order != 0 {
		t.Fatalf("unexpected sections %#v", composed.Sections)
	}

	exported, err := module.Pages().Export(ctx, pages.ExportWebsiteTemplateRequest{
		PageID:   page.ID,
		Locale:   "en",
		Category: "restaurant",
	})
	if err != nil {
		t.Fatalf("export website template: %v", err)
	}
	if exported.Name != "Corner Cafe" || len(exported.Sections) != 1 {
		t.Fatalf("unexpected export %#v", exported)
	}

	for _, name := range []string{"Footer Links", "Main Header", "Services Grid"} {
		if _, err := module.Library().Add(ctx, library.AddItemInput{
			Name:        name,
			Target:      library.TargetNextJS,
			Category:    "main-website",
			Subcategory: "homepage",
		}); err != nil {
			t.Fatalf("add library item %s: %v", name, err)
		}
	}

	fragments, err := module.Library().RenderHomepage(ctx, library.RenderHomepageRequest{})
	if err != nil {
		t.Fatalf("render homepage: %v", err)
	}
	if len(fragments) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(fragments))
	}
	if fragments[0].Name != "Main Header" || fragments[2].Name != "Footer Links" {
		t.Fatalf("unexpected fragment order %#v", fragments)
	}
	if fragments[1].Archetype != library.ArchetypeServices {
		t.Fatalf("expected services archetype, got %q", fragments[1].Archetype)
	}
}

func TestModule_WithBunAndCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB, err := database.NewBunDB(sqlDB, "sqlite3")
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	bunDB.SetMaxOpenConns(1)
	registerModuleModels(t, bunDB)

	cfg := pagebuilder.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Cache.Enabled = true
	cfg.Cache.DefaultTTL = 50 * time.Millisecond

	module, err := pagebuilder.New(cfg, di.WithBunDB(bunDB))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	entries, err := module.Templates().ListByCode(ctx, "jcw-rest-00")
	if err != nil {
		t.Fatalf("list seeded catalog: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 seeded sections, got %d", len(entries))
	}

	page, err := module.Pages().Create(ctx, pages.CreatePageRequest{
		Slug:   "harbor-bakery",
		Name:   "Harbor Bakery",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	if _, err := module.Pages().AddSection(ctx, pages.AddSectionRequest{
		PageID:       page.ID,
		TemplateID:   entries[1].ID,
		BusinessType: "bakery",
		Locale:       "en",
	}); err != nil {
		t.Fatalf("add section: %v", err)
	}

	reloaded, err := module.Pages().GetBySlug(ctx, "harbor-bakery")
	if err != nil {
		t.Fatalf("reload page: %v", err)
	}
	if len(reloaded.Sections) != 1 || reloaded.Sections[0].Title != "Bakery Hero" {
		t.Fatalf("unexpected persisted sections %#v", reloaded.Sections)
	}
}

func TestModule_BunProviderRequiresDatabase(t *testing.T) {
	cfg := pagebuilder.DefaultConfig()
	cfg.Storage.Provider = "bun"

	if _, err := pagebuilder.New(cfg); !errors.Is(err, di.ErrBunDatabaseRequired) {
		t.Fatalf("expected ErrBunDatabaseRequired, got %v", err)
	}
}

func registerModuleModels(t *testing.T, db *bun.DB) {
	t.Helper()

	ctx := context.Background()
	models := []any{
		(*templates.SectionTemplate)(nil),
		(*pages.EditablePage)(nil),
		(*pages.PageSection)(nil),
		(*library.Item)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table %T: %v", model, err)
		}
	}
}
