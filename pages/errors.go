package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrSlugRequired     = errors.New("pages: slug is required")
	ErrSlugInvalid      = errors.New("pages: slug contains invalid characters")
	ErrSlugExists       = errors.New("pages: slug already exists")
	ErrNameRequired     = errors.New("pages: name is required")
	ErrPageRequired     = errors.New("pages: page id required")
	ErrTemplateRequired = errors.New("pages: template is required")
	ErrLocaleRequired   = errors.New("pages: locale is required")
	ErrPageNotFound     = errors.New("pages: page not found")
	ErrSectionNotFound  = errors.New("pages: section not found")
)

// PageNotFoundError captures missing page lookups by id or slug.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: key=%s", ErrPageNotFound.Error(), key)
	}
	return ErrPageNotFound.Error()
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}

// SectionNotFoundError captures mutations aimed at a section id absent from
// the page. Boundary moves are no-ops and never produce this error.
type SectionNotFoundError struct {
	PageID    uuid.UUID
	SectionID uuid.UUID
}

func (e *SectionNotFoundError) Error() string {
	if e == nil {
		return ErrSectionNotFound.Error()
	}
	if e.SectionID != uuid.Nil {
		return fmt.Sprintf("%s: section=%s", ErrSectionNotFound.Error(), e.SectionID.String())
	}
	return ErrSectionNotFound.Error()
}

func (e *SectionNotFoundError) Unwrap() error {
	return ErrSectionNotFound
}
