/*
hours.go - Worked-hours aggregation

PURPOSE:
  Attendance punches carry worked time as H:MM:SS strings. This file
  parses them and totals a batch into decimal hours for timesheet
  summaries.

POLICY:
  TotalWorkHours fails on the first malformed entry; it never silently
  drops one. Whether a bad row should abort the whole aggregate or be
  skipped with a warning is the caller's call - the HTTP layer skips and
  logs, since one bad punch should not blank an entire report.
*/
package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// durationPattern matches an H:MM:SS duration: unbounded hours, then
// minutes and seconds in 0-59.
var durationPattern = regexp.MustCompile(`^(\d+):([0-5]?\d):([0-5]?\d)$`)

var (
	minutesPerHour = decimal.NewFromInt(60)
	secondsPerHour = decimal.NewFromInt(3600)
)

// ParseWorkHours converts one H:MM:SS duration string to decimal hours.
// A fractional-seconds suffix (anything from the first '.' on) is
// discarded before parsing. Returns a DurationError on anything else
// that does not match the pattern.
func ParseWorkHours(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		trimmed = trimmed[:i]
	}

	m := durationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return decimal.Zero, &DurationError{Raw: raw}
	}

	// Submatches are guaranteed numeric by the pattern.
	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)

	total := decimal.NewFromInt(hours).
		Add(decimal.NewFromInt(minutes).Div(minutesPerHour)).
		Add(decimal.NewFromInt(seconds).Div(secondsPerHour))
	return total, nil
}

// TotalWorkHours sums the worked-hours strings of a batch of punches,
// rounded to 2 decimal places. Punches without worked hours contribute
// zero. The first malformed entry aborts with a DurationError.
func TotalWorkHours(punches []AttendancePunch) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range punches {
		if p.WorkedHours == nil {
			continue
		}
		hours, err := ParseWorkHours(*p.WorkedHours)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(hours)
	}
	return total.Round(2), nil
}
