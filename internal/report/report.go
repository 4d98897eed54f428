// Package report builds the read-side dashboard views: fiscal-year revenue
// rollups and over-allocation inspection. Everything here is a pure
// projection over the workspace stores.
package report

import (
	"sort"

	"staffplan/internal/domain"
	"staffplan/internal/fiscal"
	"staffplan/internal/revenue"
	"staffplan/internal/store"
)

// MemberRevenueRow is one member's line in the revenue report.
type MemberRevenueRow struct {
	Member   *domain.Member
	Budget   float64
	Expected float64
}

// SectionRevenue groups member rows under one section with its totals.
type SectionRevenue struct {
	Section  *domain.Section
	Members  []MemberRevenueRow
	Budget   float64
	Expected float64
}

// DivisionRevenue is the top of the revenue rollup.
type DivisionRevenue struct {
	Division *domain.Division
	Sections []SectionRevenue
	Budget   float64
	Expected float64
}

// OverAllocation flags one member-month whose summed assignment fraction
// exceeds a full month of capacity.
type OverAllocation struct {
	Member    *domain.Member
	MonthKey  string
	Total     float64
	Breakdown []store.AllocationSlice
}

// Service computes reports over the injected workspace.
type Service struct {
	ws         *store.Workspace
	startMonth int
}

// NewService creates a report service for one workspace and fiscal start
// month.
func NewService(ws *store.Workspace, startMonth int) *Service {
	return &Service{ws: ws, startMonth: startMonth}
}

// Revenue computes the full budget / expected-revenue rollup for the
// workspace's fiscal year: member rows grouped by section, grouped by
// division. Members without a section are excluded, matching the rollup
// contract.
func (s *Service) Revenue() []DivisionRevenue {
	members := s.ws.Members.List()
	monthlyTotal := s.ws.Assignments.MemberMonthlyTotal

	var out []DivisionRevenue
	for _, div := range s.ws.Org.Divisions() {
		dr := DivisionRevenue{Division: div}
		for _, sec := range s.ws.Org.SectionsOfDivision(div.ID) {
			sr := SectionRevenue{Section: sec}
			for _, m := range members {
				if m.SectionID == nil || *m.SectionID != sec.ID {
					continue
				}
				row := MemberRevenueRow{
					Member:   m,
					Budget:   revenue.MemberBudget(m, s.ws.FiscalYear, s.startMonth),
					Expected: revenue.MemberExpectedRevenue(m, monthlyTotal, s.ws.FiscalYear, s.startMonth),
				}
				sr.Members = append(sr.Members, row)
				sr.Budget += row.Budget
				sr.Expected += row.Expected
			}
			dr.Sections = append(dr.Sections, sr)
			dr.Budget += sr.Budget
			dr.Expected += sr.Expected
		}
		out = append(out, dr)
	}
	return out
}

// OverAllocations scans the fiscal year for member-months whose total
// allocation exceeds 1.0 and explains each through the ledger breakdown.
// Results are ordered by month, then member name.
func (s *Service) OverAllocations() []OverAllocation {
	months := fiscal.FiscalYearMonths(s.ws.FiscalYear, s.startMonth)

	var out []OverAllocation
	for _, m := range s.ws.Members.List() {
		for _, month := range months {
			total := s.ws.Assignments.MemberMonthlyTotal(m.ID, month)
			if total <= 1.0 {
				continue
			}
			out = append(out, OverAllocation{
				Member:    m,
				MonthKey:  month,
				Total:     total,
				Breakdown: s.ws.Assignments.MemberMonthlyBreakdown(m.ID, month),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MonthKey != out[j].MonthKey {
			return out[i].MonthKey < out[j].MonthKey
		}
		return out[i].Member.Name < out[j].Member.Name
	})
	return out
}
