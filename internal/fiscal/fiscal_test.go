package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalToCalendarMonth(t *testing.T) {
	// April-start fiscal year: fiscal 1 = April, fiscal 12 = March.
	assert.Equal(t, 4, FiscalToCalendarMonth(1, 4))
	assert.Equal(t, 12, FiscalToCalendarMonth(9, 4))
	assert.Equal(t, 1, FiscalToCalendarMonth(10, 4))
	assert.Equal(t, 3, FiscalToCalendarMonth(12, 4))

	// January start is the identity mapping.
	for fm := 1; fm <= 12; fm++ {
		assert.Equal(t, fm, FiscalToCalendarMonth(fm, 1))
	}
}

func TestFiscalCalendarRoundTrip(t *testing.T) {
	for start := 1; start <= 12; start++ {
		for fm := 1; fm <= 12; fm++ {
			cm := FiscalToCalendarMonth(fm, start)
			require.GreaterOrEqual(t, cm, 1)
			require.LessOrEqual(t, cm, 12)
			assert.Equal(t, fm, CalendarToFiscalMonth(cm, start),
				"start=%d fiscal=%d calendar=%d", start, fm, cm)
		}
	}
}

func TestFiscalYearMonths(t *testing.T) {
	months := FiscalYearMonths(2025, 4)
	require.Len(t, months, 12)
	assert.Equal(t, "2025-04", months[0])
	assert.Equal(t, "2025-12", months[8])
	assert.Equal(t, "2026-01", months[9])
	assert.Equal(t, "2026-03", months[11])

	// Consecutive and distinct.
	seen := map[string]bool{}
	for i, m := range months {
		assert.False(t, seen[m], "duplicate month %s", m)
		seen[m] = true
		if i > 0 {
			assert.Equal(t, m, NextMonth(months[i-1]))
		}
	}
}

func TestFiscalYearMonths_JanuaryStartStaysInYear(t *testing.T) {
	months := FiscalYearMonths(2025, 1)
	require.Len(t, months, 12)
	assert.Equal(t, "2025-01", months[0])
	assert.Equal(t, "2025-12", months[11])
}

func TestMonthKeyHelpers(t *testing.T) {
	assert.Equal(t, "2025-04", MonthKey(2025, 4))
	assert.Equal(t, "0999-12", MonthKey(999, 12))

	year, month, err := ParseMonthKey("2025-04")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 4, month)

	_, _, err = ParseMonthKey("2025-4")
	assert.Error(t, err)
	_, _, err = ParseMonthKey("202504")
	assert.Error(t, err)

	assert.Equal(t, "2026-01", NextMonth("2025-12"))
	assert.Equal(t, "2025-05", NextMonth("2025-04"))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01"}, MonthsBetween("2025-11", "2026-01"))
	assert.Equal(t, []string{"2025-04"}, MonthsBetween("2025-04", "2025-04"))
	assert.Nil(t, MonthsBetween("2025-05", "2025-04"))
	assert.Nil(t, MonthsBetween("", "2025-04"))
}

func TestMonthRangeFromSchedule(t *testing.T) {
	ranges := []DateRange{
		{StartDate: "2025-06-15", EndDate: "2025-08-01"},
		{StartDate: "2025-04-01", EndDate: "2025-05-20"},
	}
	months := MonthRangeFromSchedule(ranges)
	assert.Equal(t, []string{"2025-04", "2025-05", "2025-06", "2025-07", "2025-08"}, months)

	assert.Nil(t, MonthRangeFromSchedule(nil))
	assert.Nil(t, MonthRangeFromSchedule([]DateRange{{StartDate: "", EndDate: ""}}))
}
