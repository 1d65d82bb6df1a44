package raster

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFontNotFound indicates the font file is not installed
	ErrFontNotFound = errors.New("font not found")

	// ErrNoFaces indicates every font provider failed
	ErrNoFaces = errors.New("no font available")
)

// FontError reports why a font provider could not supply faces
type FontError struct {
	Provider string
	Err      error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("font provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error
func (e *FontError) Unwrap() error {
	return e.Err
}

// NewFontError creates a new font error
func NewFontError(provider string, err error) *FontError {
	return &FontError{
		Provider: provider,
		Err:      err,
	}
}
