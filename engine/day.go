/*
Package engine implements the attendance and leave reconciliation core.

PURPOSE:
  This package contains the pure computation behind the Team Sync
  attendance screens: classifying each day of a range as present,
  holiday, approved leave, weekly off, or an unexplained gap; locating
  the leave-balance renewal window that contains "now"; and totalling
  worked-hours duration strings.

KEY CONCEPTS IN THIS FILE (day.go):
  - Day: A calendar date normalized to midnight UTC. Equality is by
    calendar date only; time-of-day never participates.
  - DaysBetween: The inclusive ascending day sequence of a range.
  - IsWeeklyOff: The fixed Sunday off-day policy.

DESIGN PRINCIPLES:
  1. Purity: No I/O anywhere in this package. Record sets are supplied
     pre-fetched by the caller, scoped to the employee and range.
  2. Precision: Worked-hours totals use decimal.Decimal, never float64.
  3. Calendar correctness: Month/year arithmetic goes through
     time.AddDate so variable month lengths and leap years are handled
     by the standard library, not by fixed day counts.

SEE ALSO:
  - gaps.go: Per-day attendance classification
  - period.go: Leave-balance renewal windows
  - hours.go: Worked-hours aggregation
*/
package engine

import "time"

// =============================================================================
// DAY - Calendar date at day granularity
// =============================================================================

// Day is a calendar date with the time-of-day zeroed in UTC.
// The zero value is the zero time and reports IsZero.
type Day struct {
	t time.Time
}

// NewDay builds a Day from calendar components.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf normalizes an arbitrary time to its calendar date.
// The wall-clock date is kept as-is; only the time-of-day is dropped.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// ParseDay parses a "2006-01-02" date string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// Today returns the current calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// Comparison
func (d Day) Before(other Day) bool        { return d.t.Before(other.t) }
func (d Day) After(other Day) bool         { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool         { return d.t.Equal(other.t) }
func (d Day) BeforeOrEqual(other Day) bool { return !d.t.After(other.t) }
func (d Day) AfterOrEqual(other Day) bool  { return !d.t.Before(other.t) }

// Arithmetic (calendar-aware; AddDate handles month lengths and leap years)
func (d Day) AddDays(n int) Day   { return DayOf(d.t.AddDate(0, 0, n)) }
func (d Day) AddMonths(n int) Day { return DayOf(d.t.AddDate(0, n, 0)) }
func (d Day) AddYears(n int) Day  { return DayOf(d.t.AddDate(n, 0, 0)) }

// Properties
func (d Day) Year() int             { return d.t.Year() }
func (d Day) Month() time.Month     { return d.t.Month() }
func (d Day) DayOfMonth() int       { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }
func (d Day) IsZero() bool          { return d.t.IsZero() }
func (d Day) Time() time.Time       { return d.t }

func (d Day) String() string { return d.t.Format("2006-01-02") }

// SameDay reports whether a and b are the same calendar date.
func SameDay(a, b Day) bool { return a.Equal(b) }

// IsWeeklyOff reports whether the day is the fixed weekly off-day.
// Company policy: Sunday, not configurable here.
func IsWeeklyOff(d Day) bool { return d.Weekday() == time.Sunday }

// =============================================================================
// DAY SEQUENCES
// =============================================================================

// DaysBetween returns every calendar day from start to end inclusive,
// ascending. A single-day range (start == end) yields one element.
// Returns a RangeError when start is after end.
func DaysBetween(start, end Day) ([]Day, error) {
	if start.After(end) {
		return nil, &RangeError{Start: start, End: end}
	}
	days := make([]Day, 0, spanDays(start, end)+1)
	for current := start; current.BeforeOrEqual(end); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days, nil
}

// spanDays returns the whole-day distance between two normalized days.
func spanDays(from, to Day) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}
