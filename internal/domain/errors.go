package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a location string that matched a grammar but was
	// missing a structurally required part. The grammars make this
	// unreachable today; it stays a distinct error rather than a panic.
	ErrMalformed = errors.New("malformed location")

	// ErrUnresolvable reports a named location for which the geocoding
	// provider returned no results.
	ErrUnresolvable = errors.New("location cannot be resolved")

	// ErrUnknownCompassDirection reports a compass token outside N/S/E/W
	// and their full-word forms.
	ErrUnknownCompassDirection = errors.New("unknown compass direction")
)

// ConversionError reports a captured numeric field that failed to parse as a
// float. It wraps the underlying strconv error.
type ConversionError struct {
	Field string // which capture failed, e.g. "lat" or "long minutes"
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
