package library

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItemNameRequired = errors.New("library: item name is required")
	ErrTargetRequired   = errors.New("library: render target is required")
	ErrItemExists       = errors.New("library: item already exists")
	ErrItemNotFound     = errors.New("library: item not found")
)

// ItemNotFoundError captures library lookup misses with their lookup key.
type ItemNotFoundError struct {
	Key string
}

func (e *ItemNotFoundError) Error() string {
	if e == nil {
		return ErrItemNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: key=%s", ErrItemNotFound.Error(), key)
	}
	return ErrItemNotFound.Error()
}

func (e *ItemNotFoundError) Unwrap() error {
	return ErrItemNotFound
}
