package engine

// Record shapes borrowed read-only from the persistence layer for the
// duration of one computation. The engine never mutates them and never
// loads them itself; callers pass snapshots already scoped to the
// employee and date range in question.

// EmployeeID identifies an employee across all record sets.
type EmployeeID string

// =============================================================================
// HOLIDAY - Admin-managed reference data
// =============================================================================

type Holiday struct {
	ID   string
	Date Day
	Name string
}

// =============================================================================
// LEAVE REQUEST
// =============================================================================

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest is an employee's request for one or more consecutive days
// off. Invariants (enforced at creation, assumed here): FromDate <= ToDate,
// and LeaveDays == 1 implies FromDate == ToDate.
type LeaveRequest struct {
	ID          string
	EmployeeID  EmployeeID
	LeaveTypeID string
	FromDate    Day
	ToDate      Day
	LeaveDays   int
	Status      LeaveStatus
	Reason      string
}

// Covers reports whether the request spans the given day. Single-day
// requests match by exact date; multi-day requests by inclusive
// containment between FromDate and ToDate.
func (r LeaveRequest) Covers(d Day) bool {
	if r.LeaveDays == 1 {
		return SameDay(r.FromDate, d)
	}
	return d.AfterOrEqual(r.FromDate) && d.BeforeOrEqual(r.ToDate)
}

// =============================================================================
// ATTENDANCE PUNCH
// =============================================================================

// AttendancePunch records that an employee was present on a day.
// WorkedHours, when set, is an H:MM:SS duration string.
type AttendancePunch struct {
	ID          string
	EmployeeID  EmployeeID
	Date        Day
	WorkedHours *string
}

// =============================================================================
// LEAVE TYPE - Renewal configuration
// =============================================================================

type LeaveType struct {
	ID          string
	Name        string
	Cadence     Cadence
	CarryOver   bool
	PaidLeave   bool
	DaysAllowed int
}
