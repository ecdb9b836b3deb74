package glyphgrad

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is wrapped by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTemplate is returned when a markup template lacks a placeholder.
	ErrInvalidTemplate = errors.New("invalid markup template")

	// ErrGlyphNotFound is returned when a glyph ID is absent from a collection.
	ErrGlyphNotFound = errors.New("glyph not found")
)

// ConfigError describes a single invalid configuration value.
type ConfigError struct {
	Field  string // Name of the offending field, e.g. "cycles"
	Value  any    // The rejected value
	Reason string // What a valid value looks like
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidConfig so callers can match with errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// NotFoundError reports a glyph ID that a collection does not hold.
type NotFoundError struct {
	ID int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("glyph %d: %v", e.ID, ErrGlyphNotFound)
}

// Unwrap returns ErrGlyphNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrGlyphNotFound
}
