package library

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Render targets stamped on library items by the upload pipeline. Only
// TargetNextJS items are consumable by the homepage renderer.
const (
	TargetNextJS = "NEXTJS"
	TargetDjango = "DJANGO"
)

// Archetypes produced by the dispatcher.
const (
	ArchetypeHero     = "hero"
	ArchetypeServices = "services"
	ArchetypeAbout    = "about"
	ArchetypePricing  = "pricing"
	ArchetypeFooter   = "footer"
	ArchetypeFeatured = "featured"
	ArchetypeGeneric  = "generic"
)

// Item is an externally authored library entry: a freeform-named section
// uploaded without structured template metadata. The core consumes items
// read-only and never mutates them.
type Item struct {
	bun.BaseModel `bun:"table:library_items,alias:li"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	Target       string    `bun:"target,notnull" json:"target"`
	Category     string    `bun:"category" json:"category,omitempty"`
	Subcategory  string    `bun:"subcategory" json:"subcategory,omitempty"`
	Description  string    `bun:"description" json:"description,omitempty"`
	Tags         string    `bun:"tags" json:"tags,omitempty"`
	PreviewImage string    `bun:"preview_image" json:"preview_image,omitempty"`
	FilePath     string    `bun:"file_path" json:"file_path,omitempty"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Card is one entry in a fragment's card grid.
type Card struct {
	Icon        string   `json:"icon,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	Features    []string `json:"features,omitempty"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

// Fragment is the deterministic structured content the dispatcher produces
// for a library item. BodyHTML carries the markdown-rendered body so the
// presentation layer can embed it directly.
type Fragment struct {
	Archetype  string `json:"archetype"`
	Name       string `json:"name"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	Body       string `json:"body,omitempty"`
	BodyHTML   string `json:"body_html,omitempty"`
	Cards      []Card `json:"cards,omitempty"`
}
