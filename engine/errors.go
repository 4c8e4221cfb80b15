/*
errors.go - Centralized error types for the reconciliation engine

PURPOSE:
  All error types originating in this package, in one place. The engine
  never swallows errors: it returns a typed failure and lets the caller
  decide display/skip/abort policy. Nothing here is retryable; every
  error indicates invalid input, not a transient condition.

USAGE:
  Callers branch with errors.Is and unwrap the structured types for
  detail:

    rows, err := engine.ResolveGaps(...)
    if errors.Is(err, engine.ErrInvalidRange) {
        // 400, not 500
    }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a date range has start after end.
	ErrInvalidRange = errors.New("invalid range: start after end")

	// ErrInvalidDurationFormat is returned when a worked-hours string does
	// not match the H:MM:SS pattern.
	ErrInvalidDurationFormat = errors.New("invalid duration format")

	// ErrInvalidCadence is returned when a renewal cadence has an unknown
	// unit or a non-positive count.
	ErrInvalidCadence = errors.New("invalid renewal cadence")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RangeError reports the offending endpoints of an inverted range.
type RangeError struct {
	Start Day
	End   Day
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s after end %s", e.Start, e.End)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// DurationError reports a worked-hours string that failed to parse.
type DurationError struct {
	Raw string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid duration format: %q (want H:MM:SS)", e.Raw)
}

func (e *DurationError) Unwrap() error { return ErrInvalidDurationFormat }
