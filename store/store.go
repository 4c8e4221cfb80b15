/*
Package store defines the persistence interfaces the reconciliation
service depends on.

PURPOSE:
  The engine itself performs no I/O: handlers fetch record sets through
  these interfaces, scoped to the employee and [from, to] range, and
  hand them to the engine. Implementations live in store/sqlite
  (production) and store/memory (tests/dev).

SCOPING CONTRACT:
  Range queries return records overlapping [from, to] inclusive. Leave
  overlap means FromDate <= to AND ToDate >= from, so a request
  straddling a range boundary is still returned. Callers never need to
  re-filter by range; they may still re-filter by employee and status,
  which the engine does defensively.
*/
package store

import (
	"context"
	"errors"

	"github.com/yash91989201/team-sync-sub001/engine"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the full persistence surface of the reconciliation service.
type Store interface {
	HolidayStore
	LeaveStore
	AttendanceStore

	Close() error
}

// HolidayStore manages admin-maintained holiday reference data.
type HolidayStore interface {
	CreateHoliday(ctx context.Context, h engine.Holiday) error
	DeleteHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context, year int) ([]engine.Holiday, error)

	// HolidaysInRange returns holidays with from <= date <= to, ascending.
	HolidaysInRange(ctx context.Context, from, to engine.Day) ([]engine.Holiday, error)
}

// LeaveStore manages leave requests and leave-type configuration.
type LeaveStore interface {
	CreateLeaveType(ctx context.Context, lt engine.LeaveType) error
	LeaveType(ctx context.Context, id string) (engine.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]engine.LeaveType, error)

	CreateLeaveRequest(ctx context.Context, req engine.LeaveRequest) error
	LeaveRequest(ctx context.Context, id string) (engine.LeaveRequest, error)
	LeaveRequestsForEmployee(ctx context.Context, employeeID engine.EmployeeID) ([]engine.LeaveRequest, error)
	PendingLeaveRequests(ctx context.Context) ([]engine.LeaveRequest, error)
	SetLeaveRequestStatus(ctx context.Context, id string, status engine.LeaveStatus) error

	// ApprovedLeaveOverlapping returns approved requests for the employee
	// overlapping [from, to], ascending by FromDate.
	ApprovedLeaveOverlapping(ctx context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.LeaveRequest, error)
}

// AttendanceStore manages per-day presence punches.
type AttendanceStore interface {
	RecordPunch(ctx context.Context, p engine.AttendancePunch) error

	// PunchesInRange returns the employee's punches with
	// from <= date <= to, ascending.
	PunchesInRange(ctx context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.AttendancePunch, error)
}
