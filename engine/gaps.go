/*
gaps.go - Per-day attendance classification

PURPOSE:
  Cross-references punches, holidays, and approved leave over a date
  range and flags the days that are unexplained absences ("gaps") needing
  regularization.

CLASSIFICATION PRECEDENCE (per day, independently):
  1. Present:   a punch exists for that calendar date
  2. Holiday:   a holiday falls on that date
  3. Leave day: an approved request covers the date
  4. Off day:   the fixed weekly off (Sunday)
  5. Gap:       absent AND not off AND not (holiday OR leave)

  Holidays, off-days, and approved leave all suppress the gap flag
  regardless of absence: a day can be a holiday with no punch without
  being a gap. Only unexplained absences on working days are gaps.

PURITY:
  ResolveGaps performs no I/O. The caller fetches the three record sets
  scoped to [start, end] and the employee; the resolver only filters
  defensively (employee match, approved status) and classifies.
*/
package engine

// ReconciliationRow is the derived classification of a single day.
// Computed fresh per request; it has no identity beyond its date.
type ReconciliationRow struct {
	Date     Day
	Present  bool
	Holiday  bool
	LeaveDay bool
	OffDay   bool
	Gap      bool

	// Explanatory fields: the first matching record, for display.
	// Flags above already account for any further matches.
	HolidayName    string
	LeaveRequestID string
}

// ResolveGaps classifies every day from start to end inclusive, ascending.
// Returns a RangeError when start is after end. Punches and requests
// belonging to other employees and requests that are not approved are
// ignored.
func ResolveGaps(
	employeeID EmployeeID,
	start, end Day,
	holidays []Holiday,
	leaves []LeaveRequest,
	punches []AttendancePunch,
) ([]ReconciliationRow, error) {
	days, err := DaysBetween(start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]ReconciliationRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, classifyDay(employeeID, day, holidays, leaves, punches))
	}
	return rows, nil
}

func classifyDay(
	employeeID EmployeeID,
	day Day,
	holidays []Holiday,
	leaves []LeaveRequest,
	punches []AttendancePunch,
) ReconciliationRow {
	row := ReconciliationRow{Date: day}

	for _, p := range punches {
		if p.EmployeeID == employeeID && SameDay(p.Date, day) {
			row.Present = true
			break
		}
	}

	for _, h := range holidays {
		if SameDay(h.Date, day) {
			if !row.Holiday {
				row.HolidayName = h.Name
			}
			row.Holiday = true
		}
	}

	for _, l := range leaves {
		if l.Status != LeaveApproved || l.EmployeeID != employeeID {
			continue
		}
		if l.Covers(day) {
			if !row.LeaveDay {
				row.LeaveRequestID = l.ID
			}
			row.LeaveDay = true
		}
	}

	row.OffDay = IsWeeklyOff(day)
	row.Gap = !row.Present && !row.OffDay && !(row.Holiday || row.LeaveDay)
	return row
}
