package templates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/justcodeworks/go-pagebuilder/internal/templates"
	"github.com/justcodeworks/go-pagebuilder/internal/validation"
)

func newCatalogService(t *testing.T) templates.Service {
	t.Helper()
	validator, err := validation.NewContentValidator()
	if err != nil {
		t.Fatalf("content validator: %v", err)
	}
	return templates.NewService(templates.NewMemoryRepository(), templates.WithContentValidator(validator))
}

func heroInput() templates.RegisterTemplateInput {
	return templates.RegisterTemplateInput{
		TemplateCode: "jcw-rest-00",
		BusinessType: "restaurant",
		SectionType:  "hero",
		DisplayName:  templates.LocaleStrings{"en": "Restaurant Hero", "es": "Héroe de Restaurante"},
		DefaultContent: templates.LocaleContent{
			"en": templates.Content{"heading": "Welcome to Our Restaurant", "subheading": "Fine dining experience"},
			"es": templates.Content{"heading": "Bienvenido a Nuestro Restaurante", "subheading": "Experiencia gastronómica"},
		},
		BusinessTypeMapping: map[string]templates.VerticalOverride{
			"cafe": {
				DisplayName:        templates.LocaleStrings{"en": "Cafe Hero"},
				ContentAdjustments: templates.LocaleContent{"en": templates.Content{"heading": "Welcome to Our Cafe"}},
			},
		},
	}
}

func TestServiceRegister(t *testing.T) {
	svc := newCatalogService(t)

	record, err := svc.Register(context.Background(), heroInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if record.TemplateCode != "jcw-rest-00" || record.SectionType != "hero" {
		t.Fatalf("unexpected record key %s/%s", record.TemplateCode, record.SectionType)
	}
	if record.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected deterministic non-nil ID")
	}

	if _, err := svc.Register(context.Background(), heroInput()); !errors.Is(err, templates.ErrTemplateExists) {
		t.Fatalf("expected ErrTemplateExists got %v", err)
	}
}

func TestServiceRegisterDeterministicID(t *testing.T) {
	first, err := newCatalogService(t).Register(context.Background(), heroInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := newCatalogService(t).Register(context.Background(), heroInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable IDs across catalogs, got %s and %s", first.ID, second.ID)
	}
}

func TestServiceRegisterValidation(t *testing.T) {
	svc := newCatalogService(t)

	input := heroInput()
	input.DisplayName = nil
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, templates.ErrDisplayNameRequired) {
		t.Fatalf("expected ErrDisplayNameRequired got %v", err)
	}

	input = heroInput()
	input.DefaultContent = templates.LocaleContent{"en": templates.Content{"subheading": "no heading"}}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, validation.ErrContentInvalid) {
		t.Fatalf("expected schema rejection got %v", err)
	}
}

func TestServiceResolveAppliesVerticalOverride(t *testing.T) {
	svc := newCatalogService(t)
	if _, err := svc.Register(context.Background(), heroInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), "jcw-rest-00", "cafe", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 entry got %d", len(resolved))
	}

	hero := resolved[0]
	if got := hero.DisplayName["en"]; got != "Cafe Hero" {
		t.Fatalf("expected override display name, got %q", got)
	}
	content := hero.DefaultContent["en"]
	if content["heading"] != "Welcome to Our Cafe" {
		t.Fatalf("expected override heading, got %v", content["heading"])
	}
	if content["subheading"] != "Fine dining experience" {
		t.Fatalf("expected base subheading retained, got %v", content["subheading"])
	}
}

func TestServiceResolveUnknownVerticalFallsBack(t *testing.T) {
	svc := newCatalogService(t)
	if _, err := svc.Register(context.Background(), heroInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), "jcw-rest-00", "dentist", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := resolved[0].DisplayName["en"]; got != "Restaurant Hero" {
		t.Fatalf("expected base display name, got %q", got)
	}
}

func TestServiceResolveUnknownCode(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Resolve(context.Background(), "jcw-missing-99", "restaurant", "en")
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound got %v", err)
	}

	var notFound *templates.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TemplateNotFoundError got %T", err)
	}
}

func TestServiceResolveDoesNotMutateCatalog(t *testing.T) {
	svc := newCatalogService(t)
	if _, err := svc.Register(context.Background(), heroInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "jcw-rest-00", "cafe", "en"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	base, err := svc.Resolve(context.Background(), "jcw-rest-00", "restaurant", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := base[0].DefaultContent["en"]["heading"]; got != "Welcome to Our Restaurant" {
		t.Fatalf("catalog entry mutated by earlier resolve: %v", got)
	}
}
