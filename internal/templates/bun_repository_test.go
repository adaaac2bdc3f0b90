package templates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/justcodeworks/go-pagebuilder/internal/templates"
	"github.com/justcodeworks/go-pagebuilder/pkg/testsupport"
)

func TestTemplateRepository_WithBunAndCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)
	registerTemplateModels(t, bunDB)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}

	repo := templates.NewBunTemplateRepositoryWithCache(bunDB, cacheSvc, repocache.NewDefaultKeySerializer())
	svc := templates.NewService(repo)

	if err := templates.SeedDefaultCatalog(ctx, svc); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	entries, err := svc.ListByCode(ctx, "jcw-rest-00")
	if err != nil {
		t.Fatalf("list by code: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 catalog entries, got %d", len(entries))
	}

	// entries are ordered by section type within a code
	if entries[0].SectionType != "about" {
		t.Fatalf("expected about first, got %q", entries[0].SectionType)
	}

	got, err := svc.Get(ctx, entries[1].ID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, err := svc.Get(ctx, got.ID); err != nil {
		t.Fatalf("cached get: %v", err)
	}

	resolved, err := svc.Resolve(ctx, "jcw-rest-00", "cafe", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var sawCafeHero bool
	for _, tpl := range resolved {
		if tpl.SectionType == "hero" && tpl.DisplayName["en"] == "Cafe Hero" {
			sawCafeHero = true
		}
	}
	if !sawCafeHero {
		t.Fatalf("expected cafe hero override after resolve, got %#v", resolved)
	}

	// seeding again must be a no-op, not a duplicate-key failure
	if err := templates.SeedDefaultCatalog(ctx, svc); err != nil {
		t.Fatalf("reseed catalog: %v", err)
	}

	if _, err := svc.Resolve(ctx, "jcw-unknown-99", "restaurant", "en"); err == nil {
		t.Fatal("expected resolve of unknown code to fail")
	} else if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func registerTemplateModels(t *testing.T, db *bun.DB) {
	t.Helper()

	ctx := context.Background()
	if _, err := db.NewCreateTable().Model((*templates.SectionTemplate)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
}
