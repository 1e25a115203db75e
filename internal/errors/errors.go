// Package errors provides sentinel errors and error types for the chess
// board core. It defines the closed set of error conditions coordinate
// construction can report, as structured types that preserve the
// offending inputs while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure conditions in this core.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBoundsAxis indicates a rank or file at or beyond the board
	// edge supplied to pair-based coordinate construction.
	ErrOutOfBoundsAxis = errors.New("rank or file out of bounds")

	// ErrOutOfBoundsIndex indicates a linear tile index at or beyond the
	// number of tiles supplied to index-based coordinate construction.
	ErrOutOfBoundsIndex = errors.New("tile index out of bounds")
)

// BoundsError wraps a bounds sentinel with the offending input values.
// For ErrOutOfBoundsAxis the Rank and File fields hold the rejected
// pair; for ErrOutOfBoundsIndex the Index field holds the rejected
// index. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type BoundsError struct {
	Err   error // The underlying sentinel
	Rank  uint8 // Rejected rank (axis errors)
	File  uint8 // Rejected file (axis errors)
	Index uint8 // Rejected linear index (index errors)
}

// Error returns a formatted error message including the rejected input.
func (e *BoundsError) Error() string {
	switch {
	case errors.Is(e.Err, ErrOutOfBoundsAxis):
		return fmt.Sprintf("rank %d, file %d: %v", e.Rank, e.File, e.Err)
	case errors.Is(e.Err, ErrOutOfBoundsIndex):
		return fmt.Sprintf("index %d: %v", e.Index, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "bounds error"
	}
}

// Unwrap returns the underlying sentinel, enabling errors.Is() and
// errors.As() to work through the BoundsError wrapper.
func (e *BoundsError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
