/*
period.go - Leave-balance renewal windows

PURPOSE:
  A leave type renews on a cadence: every N days, weeks, months, or
  years, anchored at a reference date (typically the balance record's
  creation date). Balance is always computed for a window, not at a
  point in time; this file locates the window that contains "now".

ANCHORING:
  Window k starts at the reference advanced by k whole cadences. Each
  candidate start is computed FROM the anchor (reference + k*cadence),
  never by stepping the previous start forward, so a month-end anchor
  like Jan 31 does not drift as short months go by. Month and year
  cadences use calendar arithmetic, not fixed day counts.
*/
package engine

import "fmt"

// =============================================================================
// CADENCE - Renewal rule: unit + repeat count
// =============================================================================

type CadenceUnit string

const (
	CadenceDay   CadenceUnit = "day"
	CadenceWeek  CadenceUnit = "week"
	CadenceMonth CadenceUnit = "month"
	CadenceYear  CadenceUnit = "year"
)

// Cadence is a leave type's renewal rule.
type Cadence struct {
	Unit  CadenceUnit
	Count int
}

func (c Cadence) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidCadence, c.Count)
	}
	switch c.Unit {
	case CadenceDay, CadenceWeek, CadenceMonth, CadenceYear:
		return nil
	default:
		return fmt.Errorf("%w: unit %q", ErrInvalidCadence, c.Unit)
	}
}

// Label renders the cadence for display, pluralizing the unit when the
// count exceeds one ("month", "2 months"). Presentation only.
func (c Cadence) Label() string {
	if c.Count > 1 {
		return fmt.Sprintf("%d %ss", c.Count, c.Unit)
	}
	return string(c.Unit)
}

// advanceFrom returns the anchor advanced by k whole cadences.
func (c Cadence) advanceFrom(anchor Day, k int) Day {
	n := k * c.Count
	switch c.Unit {
	case CadenceWeek:
		return anchor.AddDays(7 * n)
	case CadenceMonth:
		return anchor.AddMonths(n)
	case CadenceYear:
		return anchor.AddYears(n)
	default: // CadenceDay
		return anchor.AddDays(n)
	}
}

// =============================================================================
// PERIOD - A renewal window [Start, End]
// =============================================================================

type Period struct {
	Start Day
	End   Day
}

// Contains reports whether d falls within [Start, End].
func (p Period) Contains(d Day) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns every day of the period, ascending.
func (p Period) Days() ([]Day, error) {
	return DaysBetween(p.Start, p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// WINDOW LOOKUP
// =============================================================================

// CurrentBalancePeriod returns the cadence window containing now,
// anchored at reference. When now precedes the reference the first
// window is returned. Fails only on an invalid cadence.
func CurrentBalancePeriod(c Cadence, reference, now Day) (Period, error) {
	if err := c.Validate(); err != nil {
		return Period{}, err
	}

	k := 0
	for c.advanceFrom(reference, k+1).BeforeOrEqual(now) {
		k++
	}

	start := c.advanceFrom(reference, k)
	end := c.advanceFrom(reference, k+1).AddDays(-1)
	return Period{Start: start, End: end}, nil
}

// PreviousBalancePeriod returns the window immediately before the one
// containing now, or false when the containing window is the first.
// Used for carry-over: the unused allowance of the prior window.
func PreviousBalancePeriod(c Cadence, reference, now Day) (Period, bool, error) {
	if err := c.Validate(); err != nil {
		return Period{}, false, err
	}

	current, err := CurrentBalancePeriod(c, reference, now)
	if err != nil {
		return Period{}, false, err
	}
	if current.Start.Equal(reference) {
		return Period{}, false, nil
	}

	prevNow := current.Start.AddDays(-1)
	prev, err := CurrentBalancePeriod(c, reference, prevNow)
	if err != nil {
		return Period{}, false, err
	}
	return prev, true, nil
}
