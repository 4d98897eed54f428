package domain

import "time"

// PhaseDefinition is a catalog entry for a schedulable phase (requirements,
// design, test, ...). Disabled phases stay in the catalog but are hidden from
// new schedules.
type PhaseDefinition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	SortOrder int    `json:"sortOrder"`
	Enabled   bool   `json:"enabled"`
}

// PhaseDependency is a typed edge between two phases of the catalog.
type PhaseDependency struct {
	ID                 string         `json:"id"`
	PredecessorPhaseID string         `json:"predecessorPhaseId"`
	SuccessorPhaseID   string         `json:"successorPhaseId"`
	Type               DependencyType `json:"type"`
}

// ScheduleEntry is a per-project, per-phase date range ("YYYY-MM-DD" bounds).
type ScheduleEntry struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	PhaseID   string    `json:"phaseId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
