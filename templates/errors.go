package templates

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTemplateCodeRequired = errors.New("templates: template code is required")
	ErrSectionTypeRequired  = errors.New("templates: section type is required")
	ErrBusinessTypeRequired = errors.New("templates: business type is required")
	ErrDisplayNameRequired  = errors.New("templates: display name requires at least one locale")
	ErrContentRequired      = errors.New("templates: default content requires at least one locale")
	ErrTemplateExists       = errors.New("templates: template already exists")
	ErrTemplateNotFound     = errors.New("templates: template not found")
)

// TemplateNotFoundError captures catalog lookup misses with their lookup key.
type TemplateNotFoundError struct {
	Key string
}

func (e *TemplateNotFoundError) Error() string {
	if e == nil {
		return ErrTemplateNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: key=%s", ErrTemplateNotFound.Error(), key)
	}
	return ErrTemplateNotFound.Error()
}

func (e *TemplateNotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}
