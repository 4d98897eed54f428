// Package fiscal converts between fiscal and calendar months and generates
// ordered "YYYY-MM" month-key sequences. A fiscal year is identified by the
// calendar year it starts in; the start month is configurable and defaults to
// April.
package fiscal

import (
	"fmt"
	"strconv"
)

// DefaultStartMonth is the calendar month a fiscal year begins in when no
// other configuration applies.
const DefaultStartMonth = 4

// FiscalToCalendarMonth maps fiscal month 1..12 to its calendar month given
// the fiscal-year start month. Fiscal month 1 is startMonth; the mapping
// wraps modulo 12.
func FiscalToCalendarMonth(fiscalMonth, startMonth int) int {
	return (startMonth+fiscalMonth-2)%12 + 1
}

// CalendarToFiscalMonth is the inverse of FiscalToCalendarMonth.
func CalendarToFiscalMonth(calendarMonth, startMonth int) int {
	return (calendarMonth-startMonth+12)%12 + 1
}

// MonthKey formats a calendar year and month as a zero-padded "YYYY-MM" key.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey splits a "YYYY-MM" key into year and month. Returns an error
// for anything that is not exactly seven characters with a dash separator and
// numeric parts.
func ParseMonthKey(key string) (year, month int, err error) {
	if len(key) != 7 || key[4] != '-' {
		return 0, 0, fmt.Errorf("invalid month key %q (expected YYYY-MM)", key)
	}
	year, err = strconv.Atoi(key[:4])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	month, err = strconv.Atoi(key[5:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return year, month, nil
}

// NextMonth returns the month key immediately following key. Malformed keys
// are returned unchanged.
func NextMonth(key string) string {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return key
	}
	month++
	if month > 12 {
		month = 1
		year++
	}
	return MonthKey(year, month)
}

// FiscalYearMonths returns the 12 ordered month keys of the given fiscal
// year. With startMonth 1 the sequence stays within fiscalYear; otherwise it
// crosses into fiscalYear+1.
func FiscalYearMonths(fiscalYear, startMonth int) []string {
	months := make([]string, 0, 12)
	year, month := fiscalYear, startMonth
	for i := 0; i < 12; i++ {
		months = append(months, MonthKey(year, month))
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return months
}

// DateRange is the minimal view of a schedule entry the month-range helpers
// need: inclusive "YYYY-MM-DD" bounds.
type DateRange struct {
	StartDate string
	EndDate   string
}

// MonthRangeFromSchedule returns the ordered month keys spanning the earliest
// start date to the latest end date across all ranges. Empty input yields an
// empty sequence.
func MonthRangeFromSchedule(ranges []DateRange) []string {
	var minStart, maxEnd string
	for _, r := range ranges {
		if r.StartDate == "" || r.EndDate == "" {
			continue
		}
		if minStart == "" || r.StartDate < minStart {
			minStart = r.StartDate
		}
		if maxEnd == "" || r.EndDate > maxEnd {
			maxEnd = r.EndDate
		}
	}
	if minStart == "" || maxEnd == "" {
		return nil
	}
	return MonthsBetween(monthKeyOfDate(minStart), monthKeyOfDate(maxEnd))
}

// MonthsBetween enumerates month keys from first to last inclusive. Returns
// an empty sequence when last precedes first.
func MonthsBetween(first, last string) []string {
	if first == "" || last == "" || last < first {
		return nil
	}
	var months []string
	for key := first; key <= last; key = NextMonth(key) {
		months = append(months, key)
	}
	return months
}

// monthKeyOfDate truncates a "YYYY-MM-DD" date string to its month key.
func monthKeyOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
