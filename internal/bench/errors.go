package bench

import (
	"errors"
	"fmt"
)

// Common errors returned by configuration-space operations.
//
// These errors can be checked using errors.Is() for proper error handling:
//
//	if errors.Is(err, bench.ErrEmptyAxis) {
//	    // Handle a matrix with a missing axis value list
//	}
var (
	// ErrEmptyAxis is returned when an axis value list is empty in a
	// context that requires at least one value (matrix validation,
	// matrix file loading).
	ErrEmptyAxis = errors.New("axis value list is empty")

	// ErrInvalidAxisValue is returned when an axis value is outside its
	// allowed range (non-positive count, fraction outside [0, 1]).
	ErrInvalidAxisValue = errors.New("axis value out of range")

	// ErrNonPositiveParallelism is returned when a dispatcher is requested
	// with a parallelism degree below 1.
	ErrNonPositiveParallelism = errors.New("parallelism must be positive")
)

// ParseError describes a flat-record field that could not be decoded.
// It is returned by ParseRecord and by the variant parse functions when
// text does not match the closed variant sets.
type ParseError struct {
	// Field is the canonical field name, matching the CSV header
	// (e.g. "threads", "channelType").
	Field string

	// Value is the offending input token.
	Value string

	// Reason explains why the token was rejected.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %q: %s", e.Field, e.Value, e.Reason)
}
