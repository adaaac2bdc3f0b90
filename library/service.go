package library

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Service describes the read-mostly component library surface. Items arrive
// from an external upload pipeline; the core ingests, lists, and renders
// them, and never edits an item in place.
type Service interface {
	Add(ctx context.Context, input AddItemInput) (*Item, error)
	Get(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]*Item, error)
	RenderHomepage(ctx context.Context, req RenderHomepageRequest) ([]Fragment, error)
}

// AddItemInput captures an uploaded library entry.
type AddItemInput struct {
	Name         string `json:"name"`
	Target       string `json:"target"`
	Category     string `json:"category,omitempty"`
	Subcategory  string `json:"subcategory,omitempty"`
	Description  string `json:"description,omitempty"`
	Tags         string `json:"tags,omitempty"`
	PreviewImage string `json:"preview_image,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// Validate ensures the entry carries a name and a render target.
func (i AddItemInput) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = ErrItemNameRequired
	}
	if strings.TrimSpace(i.Target) == "" {
		errs["target"] = ErrTargetRequired
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows library listings. Empty fields match everything.
type ListFilter struct {
	Target      string `json:"target,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// RenderHomepageRequest selects the item population the homepage pipeline
// runs over: filter, classify, sort, dispatch.
type RenderHomepageRequest struct {
	Target      string `json:"target,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}
