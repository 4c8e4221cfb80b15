package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash91989201/team-sync-sub001/engine"
)

func cadence(unit engine.CadenceUnit, count int) engine.Cadence {
	return engine.Cadence{Unit: unit, Count: count}
}

// =============================================================================
// CURRENT BALANCE PERIOD
// =============================================================================

func TestCurrentBalancePeriod_MonthlyWindows(t *testing.T) {
	// GIVEN: A monthly cadence anchored at 2024-01-01
	// WHEN:  Now is 2024-03-15
	// THEN:  The window is the full month of March

	p, err := engine.CurrentBalancePeriod(
		cadence(engine.CadenceMonth, 1),
		day(2024, time.January, 1),
		day(2024, time.March, 15),
	)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", p.Start.String())
	assert.Equal(t, "2024-03-31", p.End.String())
}

func TestCurrentBalancePeriod_VariableMonthLengths(t *testing.T) {
	// Month windows anchored on the 1st track real month lengths,
	// including leap February.
	anchor := day(2024, time.January, 1)
	c := cadence(engine.CadenceMonth, 1)

	tests := []struct {
		now        engine.Day
		start, end string
		length     int
	}{
		{day(2024, time.January, 20), "2024-01-01", "2024-01-31", 31},
		{day(2024, time.February, 10), "2024-02-01", "2024-02-29", 29},
		{day(2025, time.February, 10), "2025-02-01", "2025-02-28", 28},
		{day(2024, time.April, 30), "2024-04-01", "2024-04-30", 30},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			p, err := engine.CurrentBalancePeriod(c, anchor, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.start, p.Start.String())
			assert.Equal(t, tt.end, p.End.String())

			days, err := p.Days()
			require.NoError(t, err)
			assert.Len(t, days, tt.length)
		})
	}
}

func TestCurrentBalancePeriod_MonthEndAnchorDoesNotDrift(t *testing.T) {
	// An anchor of Jan 31 must be advanced from the anchor each time,
	// not by stepping window to window through short months.
	anchor := day(2024, time.January, 31)
	c := cadence(engine.CadenceMonth, 1)

	// 24 months out: anchor + 24 months lands back on Jan 31.
	p, err := engine.CurrentBalancePeriod(c, anchor, day(2026, time.February, 10))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-31", p.Start.String())
}

func TestCurrentBalancePeriod_YearlyLeapAnchor(t *testing.T) {
	// Anchored on leap day; the following window starts on the
	// calendar-normalized 2025-03-01, not a fixed 365 days later.
	p, err := engine.CurrentBalancePeriod(
		cadence(engine.CadenceYear, 1),
		day(2024, time.February, 29),
		day(2025, time.June, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", p.Start.String())
	assert.Equal(t, "2026-02-28", p.End.String())
}

func TestCurrentBalancePeriod_WeeklyAndDaily(t *testing.T) {
	anchor := day(2024, time.January, 1)

	weekly, err := engine.CurrentBalancePeriod(cadence(engine.CadenceWeek, 2), anchor, day(2024, time.January, 20))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", weekly.Start.String())
	assert.Equal(t, "2024-01-28", weekly.End.String())

	daily, err := engine.CurrentBalancePeriod(cadence(engine.CadenceDay, 10), anchor, day(2024, time.January, 25))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-21", daily.Start.String())
	assert.Equal(t, "2024-01-30", daily.End.String())
}

func TestCurrentBalancePeriod_NowBeforeReference_FirstWindow(t *testing.T) {
	p, err := engine.CurrentBalancePeriod(
		cadence(engine.CadenceMonth, 1),
		day(2024, time.June, 1),
		day(2024, time.March, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", p.Start.String())
	assert.Equal(t, "2024-06-30", p.End.String())
}

func TestCurrentBalancePeriod_NowOnBoundary_StartsNewWindow(t *testing.T) {
	p, err := engine.CurrentBalancePeriod(
		cadence(engine.CadenceMonth, 1),
		day(2024, time.January, 1),
		day(2024, time.February, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", p.Start.String())
}

func TestCurrentBalancePeriod_InvalidCadence(t *testing.T) {
	_, err := engine.CurrentBalancePeriod(cadence("fortnight", 1), day(2024, time.January, 1), day(2024, time.March, 1))
	assert.True(t, errors.Is(err, engine.ErrInvalidCadence))

	_, err = engine.CurrentBalancePeriod(cadence(engine.CadenceMonth, 0), day(2024, time.January, 1), day(2024, time.March, 1))
	assert.True(t, errors.Is(err, engine.ErrInvalidCadence))
}

// =============================================================================
// PREVIOUS BALANCE PERIOD
// =============================================================================

func TestPreviousBalancePeriod(t *testing.T) {
	c := cadence(engine.CadenceMonth, 1)
	anchor := day(2024, time.January, 1)

	prev, ok, err := engine.PreviousBalancePeriod(c, anchor, day(2024, time.March, 15))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", prev.Start.String())
	assert.Equal(t, "2024-02-29", prev.End.String())

	_, ok, err = engine.PreviousBalancePeriod(c, anchor, day(2024, time.January, 10))
	require.NoError(t, err)
	assert.False(t, ok, "first window has no predecessor")
}

// =============================================================================
// CADENCE DISPLAY
// =============================================================================

func TestCadenceLabel_Pluralization(t *testing.T) {
	assert.Equal(t, "month", cadence(engine.CadenceMonth, 1).Label())
	assert.Equal(t, "2 months", cadence(engine.CadenceMonth, 2).Label())
	assert.Equal(t, "3 years", cadence(engine.CadenceYear, 3).Label())
	assert.Equal(t, "week", cadence(engine.CadenceWeek, 1).Label())
}
