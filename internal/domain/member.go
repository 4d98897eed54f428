package domain

import (
	"fmt"
	"time"
)

// UnitPriceEntry is one step in a member's price history. EffectiveFrom is a
// "YYYY-MM" month key; the amount applies from that month until superseded.
type UnitPriceEntry struct {
	EffectiveFrom string  `json:"effectiveFrom"`
	Amount        float64 `json:"amount"`
}

// Member is a staffable person. StartDate/EndDate are "YYYY-MM-DD" strings
// forming a half-open [start, end) employment interval; a member with a nil
// StartDate is never active in any fiscal year.
type Member struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Department       string           `json:"department,omitempty"`
	SectionID        *string          `json:"sectionId"`
	Role             string           `json:"role,omitempty"`
	IsActive         bool             `json:"isActive"`
	TechTagIDs       []string         `json:"techTagIds,omitempty"`
	StartDate        *string          `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	UnitPriceHistory []UnitPriceEntry `json:"unitPriceHistory"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ValidateDates checks that EndDate is not before StartDate when both are set.
// ISO date strings order lexicographically, so plain comparison suffices.
func (m *Member) ValidateDates() error {
	if m.StartDate == nil || m.EndDate == nil {
		return nil
	}
	if *m.EndDate < *m.StartDate {
		return fmt.Errorf("member %q end date %s precedes start date %s", m.Name, *m.EndDate, *m.StartDate)
	}
	return nil
}
