package leave

import (
	"errors"
	"fmt"

	"github.com/yash91989201/team-sync-sub001/engine"
)

var (
	// ErrInvalidRequest is returned when a leave request violates its
	// structural invariants.
	ErrInvalidRequest = errors.New("invalid leave request")

	// ErrAlreadyDecided is returned when approving or rejecting a request
	// that is no longer pending.
	ErrAlreadyDecided = errors.New("leave request already decided")
)

// RequestDays returns the inclusive day count of a leave range.
func RequestDays(from, to engine.Day) (int, error) {
	days, err := engine.DaysBetween(from, to)
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

// ValidateRequest checks the structural invariants of a request:
// FromDate <= ToDate, LeaveDays matches the inclusive span, and a
// single-day request starts and ends on the same date.
func ValidateRequest(req engine.LeaveRequest) error {
	days, err := RequestDays(req.FromDate, req.ToDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.LeaveDays != days {
		return fmt.Errorf("%w: leaveDays %d does not match range %s..%s (%d days)",
			ErrInvalidRequest, req.LeaveDays, req.FromDate, req.ToDate, days)
	}
	if req.LeaveDays == 1 && !engine.SameDay(req.FromDate, req.ToDate) {
		return fmt.Errorf("%w: single-day request must start and end on the same date", ErrInvalidRequest)
	}
	return nil
}

// Decide moves a pending request to approved or rejected. The
// transition is one-way; deciding twice fails with ErrAlreadyDecided.
func Decide(req *engine.LeaveRequest, approve bool) error {
	if req.Status != engine.LeavePending {
		return fmt.Errorf("%w: status %q", ErrAlreadyDecided, req.Status)
	}
	if approve {
		req.Status = engine.LeaveApproved
	} else {
		req.Status = engine.LeaveRejected
	}
	return nil
}
