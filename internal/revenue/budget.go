// Package revenue computes budget (full-rate) and expected (allocation-
// weighted) revenue for members, sections and divisions over a fiscal year.
// All functions are pure; assignment totals come in through a lookup
// function so the package stays independent of the assignment ledger.
package revenue

import (
	"staffplan/internal/domain"
	"staffplan/internal/fiscal"
)

// MonthlyTotalFunc returns a member's total allocation fraction for one month,
// summed across all projects.
type MonthlyTotalFunc func(memberID, monthKey string) float64

// farFuture bounds the active interval of members with no end date.
const farFuture = "9999-12"

// ActiveFiscalMonths intersects a member's half-open [start, end) employment
// interval with the given fiscal year's month range. A nil startDate means
// never active; a nil endDate means employed indefinitely.
func ActiveFiscalMonths(startDate, endDate *string, fiscalYear, startMonth int) []string {
	if startDate == nil {
		return nil
	}
	activeFrom := monthOfDate(*startDate)
	activeUntil := farFuture
	if endDate != nil {
		activeUntil = monthOfDate(*endDate)
	}

	var months []string
	for _, m := range fiscal.FiscalYearMonths(fiscalYear, startMonth) {
		if m >= activeFrom && m < activeUntil {
			months = append(months, m)
		}
	}
	return months
}

// MemberBudget is the member's full-rate revenue for the fiscal year: the
// applicable unit price summed over every active month, ignoring allocation.
func MemberBudget(m *domain.Member, fiscalYear, startMonth int) float64 {
	total := 0.0
	for _, month := range ActiveFiscalMonths(m.StartDate, m.EndDate, fiscalYear, startMonth) {
		total += ApplicableUnitPrice(m.UnitPriceHistory, month)
	}
	return total
}

// MemberExpectedRevenue weights each active month's unit price by the
// member's total allocation fraction that month.
func MemberExpectedRevenue(m *domain.Member, monthlyTotal MonthlyTotalFunc, fiscalYear, startMonth int) float64 {
	total := 0.0
	for _, month := range ActiveFiscalMonths(m.StartDate, m.EndDate, fiscalYear, startMonth) {
		total += ApplicableUnitPrice(m.UnitPriceHistory, month) * monthlyTotal(m.ID, month)
	}
	return total
}

// SectionBudget sums MemberBudget over the given members.
func SectionBudget(members []*domain.Member, fiscalYear, startMonth int) float64 {
	total := 0.0
	for _, m := range members {
		total += MemberBudget(m, fiscalYear, startMonth)
	}
	return total
}

// SectionExpectedRevenue sums MemberExpectedRevenue over the given members.
func SectionExpectedRevenue(members []*domain.Member, monthlyTotal MonthlyTotalFunc, fiscalYear, startMonth int) float64 {
	total := 0.0
	for _, m := range members {
		total += MemberExpectedRevenue(m, monthlyTotal, fiscalYear, startMonth)
	}
	return total
}

// DivisionBudget filters members to those belonging to one of the division's
// sections and delegates to SectionBudget. Members with no section are never
// counted.
func DivisionBudget(members []*domain.Member, sections []*domain.Section, fiscalYear, startMonth int) float64 {
	return SectionBudget(membersOfSections(members, sections), fiscalYear, startMonth)
}

// DivisionExpectedRevenue is the allocation-weighted counterpart of
// DivisionBudget.
func DivisionExpectedRevenue(members []*domain.Member, sections []*domain.Section, monthlyTotal MonthlyTotalFunc, fiscalYear, startMonth int) float64 {
	return SectionExpectedRevenue(membersOfSections(members, sections), monthlyTotal, fiscalYear, startMonth)
}

func membersOfSections(members []*domain.Member, sections []*domain.Section) []*domain.Member {
	sectionIDs := make(map[string]bool, len(sections))
	for _, s := range sections {
		sectionIDs[s.ID] = true
	}
	var filtered []*domain.Member
	for _, m := range members {
		if m.SectionID != nil && sectionIDs[*m.SectionID] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func monthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
