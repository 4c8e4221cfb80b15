package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash91989201/team-sync-sub001/engine"
	"github.com/yash91989201/team-sync-sub001/store"
	"github.com/yash91989201/team-sync-sub001/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	s, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func day(y int, m time.Month, d int) engine.Day {
	return engine.NewDay(y, m, d)
}

func seedLeaveType(t *testing.T, s *sqlite.Store, id string) engine.LeaveType {
	lt := engine.LeaveType{
		ID:          id,
		Name:        "Annual Leave",
		Cadence:     engine.Cadence{Unit: engine.CadenceYear, Count: 1},
		CarryOver:   true,
		PaidLeave:   true,
		DaysAllowed: 20,
	}
	require.NoError(t, s.CreateLeaveType(context.Background(), lt))
	return lt
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestHolidays_RangeScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateHoliday(ctx, engine.Holiday{ID: "h1", Date: day(2024, time.January, 26), Name: "Republic Day"}))
	require.NoError(t, s.CreateHoliday(ctx, engine.Holiday{ID: "h2", Date: day(2024, time.August, 15), Name: "Independence Day"}))
	require.NoError(t, s.CreateHoliday(ctx, engine.Holiday{ID: "h3", Date: day(2025, time.January, 26), Name: "Republic Day"}))

	inRange, err := s.HolidaysInRange(ctx, day(2024, time.January, 1), day(2024, time.June, 30))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "h1", inRange[0].ID)
	assert.Equal(t, "2024-01-26", inRange[0].Date.String())

	year, err := s.ListHolidays(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, year, 2)

	require.NoError(t, s.DeleteHoliday(ctx, "h1"))
	assert.ErrorIs(t, s.DeleteHoliday(ctx, "h1"), store.ErrNotFound)
}

// =============================================================================
// LEAVE TYPES
// =============================================================================

func TestLeaveTypes_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	want := seedLeaveType(t, s, "lt-1")

	got, err := s.LeaveType(ctx, "lt-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.LeaveType(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.ListLeaveTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func TestLeaveRequests_OverlapAndStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedLeaveType(t, s, "lt-1")

	mk := func(id string, emp string, from, to engine.Day, days int, status engine.LeaveStatus) {
		require.NoError(t, s.CreateLeaveRequest(ctx, engine.LeaveRequest{
			ID: id, EmployeeID: engine.EmployeeID(emp), LeaveTypeID: "lt-1",
			FromDate: from, ToDate: to, LeaveDays: days, Status: status,
		}))
	}

	mk("lr-1", "emp-1", day(2024, time.March, 10), day(2024, time.March, 12), 3, engine.LeaveApproved)
	mk("lr-2", "emp-1", day(2024, time.April, 1), day(2024, time.April, 1), 1, engine.LeavePending)
	mk("lr-3", "emp-2", day(2024, time.March, 11), day(2024, time.March, 11), 1, engine.LeaveApproved)

	// Straddling requests still overlap the queried range.
	overlapping, err := s.ApprovedLeaveOverlapping(ctx, "emp-1", day(2024, time.March, 12), day(2024, time.March, 31))
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, "lr-1", overlapping[0].ID)

	// Pending and other employees' requests are excluded.
	overlapping, err = s.ApprovedLeaveOverlapping(ctx, "emp-1", day(2024, time.April, 1), day(2024, time.April, 30))
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	pending, err := s.PendingLeaveRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "lr-2", pending[0].ID)

	require.NoError(t, s.SetLeaveRequestStatus(ctx, "lr-2", engine.LeaveApproved))
	got, err := s.LeaveRequest(ctx, "lr-2")
	require.NoError(t, err)
	assert.Equal(t, engine.LeaveApproved, got.Status)

	assert.ErrorIs(t, s.SetLeaveRequestStatus(ctx, "missing", engine.LeaveRejected), store.ErrNotFound)

	mine, err := s.LeaveRequestsForEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func TestPunches_RangeScopingAndUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hours := "8:30:00"
	require.NoError(t, s.RecordPunch(ctx, engine.AttendancePunch{
		ID: "p1", EmployeeID: "emp-1", Date: day(2024, time.March, 10),
	}))
	require.NoError(t, s.RecordPunch(ctx, engine.AttendancePunch{
		ID: "p2", EmployeeID: "emp-1", Date: day(2024, time.March, 11), WorkedHours: &hours,
	}))
	require.NoError(t, s.RecordPunch(ctx, engine.AttendancePunch{
		ID: "p3", EmployeeID: "emp-2", Date: day(2024, time.March, 10),
	}))

	punches, err := s.PunchesInRange(ctx, "emp-1", day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)
	require.Len(t, punches, 2)
	assert.Nil(t, punches[0].WorkedHours)
	require.NotNil(t, punches[1].WorkedHours)
	assert.Equal(t, "8:30:00", *punches[1].WorkedHours)

	// Re-punching the same day updates worked hours, no second row.
	updated := "9:00:00"
	require.NoError(t, s.RecordPunch(ctx, engine.AttendancePunch{
		ID: "p4", EmployeeID: "emp-1", Date: day(2024, time.March, 11), WorkedHours: &updated,
	}))
	punches, err = s.PunchesInRange(ctx, "emp-1", day(2024, time.March, 11), day(2024, time.March, 11))
	require.NoError(t, err)
	require.Len(t, punches, 1)
	assert.Equal(t, "9:00:00", *punches[0].WorkedHours)

	none, err := s.PunchesInRange(ctx, "emp-1", day(2024, time.April, 1), day(2024, time.April, 30))
	require.NoError(t, err)
	assert.Empty(t, none)
}
