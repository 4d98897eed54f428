package domain

import "time"

// AssignmentEntry records one member's staffing on one WBS task. MonthlyValues
// is a sparse "YYYY-MM" → fraction map; a month allocated at 0 is removed from
// the map rather than stored, so absence and zero are indistinguishable to
// readers. At most one entry exists per (ProjectID, TaskID, MemberID).
type AssignmentEntry struct {
	ID            string             `json:"id"`
	ProjectID     string             `json:"projectId"`
	TaskID        string             `json:"taskId"`
	MemberID      string             `json:"memberId"`
	MonthlyValues map[string]float64 `json:"monthlyValues"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CloneMonthlyValues returns an independent copy of the sparse month map,
// dropping explicit zeros.
func CloneMonthlyValues(values map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	for k, v := range values {
		if v == 0 {
			continue
		}
		out[k] = v
	}
	return out
}
