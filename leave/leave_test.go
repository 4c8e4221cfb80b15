package leave_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash91989201/team-sync-sub001/engine"
	"github.com/yash91989201/team-sync-sub001/leave"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func day(y int, m time.Month, d int) engine.Day {
	return engine.NewDay(y, m, d)
}

func annualType(allowed int, carryOver bool) engine.LeaveType {
	return engine.LeaveType{
		ID:          "lt-annual",
		Name:        "Annual Leave",
		Cadence:     engine.Cadence{Unit: engine.CadenceYear, Count: 1},
		CarryOver:   carryOver,
		PaidLeave:   true,
		DaysAllowed: allowed,
	}
}

func approved(id string, typeID string, from, to engine.Day, days int) engine.LeaveRequest {
	return engine.LeaveRequest{
		ID: id, EmployeeID: "emp-1", LeaveTypeID: typeID,
		FromDate: from, ToDate: to, LeaveDays: days,
		Status: engine.LeaveApproved,
	}
}

func eq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "got %s want %s", got, want)
}

// =============================================================================
// BALANCE COMPUTATION
// =============================================================================

func TestComputeBalance_CurrentWindowOnly(t *testing.T) {
	// GIVEN: 20 days/year anchored 2023-01-01, 3 days used in 2024 and
	//        5 days used back in 2023
	// WHEN:  Computing the balance in March 2024
	// THEN:  The 2024 window shows 3 used, 17 remaining

	lt := annualType(20, false)
	anchor := day(2023, time.January, 1)
	requests := []engine.LeaveRequest{
		approved("lr-1", lt.ID, day(2023, time.June, 5), day(2023, time.June, 9), 5),
		approved("lr-2", lt.ID, day(2024, time.February, 12), day(2024, time.February, 14), 3),
	}

	b, err := leave.ComputeBalance(lt, anchor, day(2024, time.March, 15), requests)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", b.Period.Start.String())
	assert.Equal(t, "2024-12-31", b.Period.End.String())
	eq(t, "20", b.Allowed)
	eq(t, "3", b.Used)
	eq(t, "17", b.Remaining)
	eq(t, "0", b.CarriedOver)
}

func TestComputeBalance_CarryOver(t *testing.T) {
	// 5 unused days of the 2023 window roll into 2024.
	lt := annualType(20, true)
	anchor := day(2023, time.January, 1)
	requests := []engine.LeaveRequest{
		approved("lr-1", lt.ID, day(2023, time.June, 5), day(2023, time.June, 19), 15),
	}

	b, err := leave.ComputeBalance(lt, anchor, day(2024, time.March, 15), requests)
	require.NoError(t, err)

	eq(t, "5", b.CarriedOver)
	eq(t, "25", b.Allowed)
	eq(t, "0", b.Used)
	eq(t, "25", b.Remaining)
}

func TestComputeBalance_NoCarryIntoFirstWindow(t *testing.T) {
	lt := annualType(20, true)
	anchor := day(2024, time.January, 1)

	b, err := leave.ComputeBalance(lt, anchor, day(2024, time.March, 15), nil)
	require.NoError(t, err)
	eq(t, "0", b.CarriedOver)
	eq(t, "20", b.Allowed)
}

func TestComputeBalance_IgnoresOtherTypesAndPending(t *testing.T) {
	lt := annualType(20, false)
	anchor := day(2024, time.January, 1)

	pending := approved("lr-1", lt.ID, day(2024, time.March, 4), day(2024, time.March, 5), 2)
	pending.Status = engine.LeavePending
	otherType := approved("lr-2", "lt-sick", day(2024, time.March, 6), day(2024, time.March, 6), 1)

	b, err := leave.ComputeBalance(lt, anchor, day(2024, time.April, 1),
		[]engine.LeaveRequest{pending, otherType})
	require.NoError(t, err)
	eq(t, "0", b.Used)
}

func TestComputeBalance_OverdrawnGoesNegative(t *testing.T) {
	// The engine reports the arithmetic truth; enforcement is the
	// caller's policy.
	lt := annualType(2, false)
	anchor := day(2024, time.January, 1)
	requests := []engine.LeaveRequest{
		approved("lr-1", lt.ID, day(2024, time.February, 5), day(2024, time.February, 9), 5),
	}

	b, err := leave.ComputeBalance(lt, anchor, day(2024, time.March, 1), requests)
	require.NoError(t, err)
	eq(t, "-3", b.Remaining)
}

// =============================================================================
// REQUEST VALIDATION
// =============================================================================

func TestValidateRequest(t *testing.T) {
	valid := approved("lr-1", "lt-annual", day(2024, time.March, 10), day(2024, time.March, 12), 3)
	assert.NoError(t, leave.ValidateRequest(valid))

	wrongCount := valid
	wrongCount.LeaveDays = 2
	assert.ErrorIs(t, leave.ValidateRequest(wrongCount), leave.ErrInvalidRequest)

	inverted := approved("lr-2", "lt-annual", day(2024, time.March, 12), day(2024, time.March, 10), 3)
	assert.ErrorIs(t, leave.ValidateRequest(inverted), leave.ErrInvalidRequest)

	single := approved("lr-3", "lt-annual", day(2024, time.March, 10), day(2024, time.March, 10), 1)
	assert.NoError(t, leave.ValidateRequest(single))
}

func TestRequestDays(t *testing.T) {
	n, err := leave.RequestDays(day(2024, time.February, 27), day(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, n) // leap year: 27, 28, 29, 1
}

// =============================================================================
// STATUS TRANSITIONS
// =============================================================================

func TestDecide(t *testing.T) {
	req := approved("lr-1", "lt-annual", day(2024, time.March, 10), day(2024, time.March, 10), 1)
	req.Status = engine.LeavePending

	require.NoError(t, leave.Decide(&req, true))
	assert.Equal(t, engine.LeaveApproved, req.Status)

	err := leave.Decide(&req, false)
	assert.True(t, errors.Is(err, leave.ErrAlreadyDecided))
	assert.Equal(t, engine.LeaveApproved, req.Status, "decision is one-way")
}
