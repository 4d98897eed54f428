package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
	"staffplan/internal/fiscal"
)

// ScheduleStore owns the phase catalog, phase dependencies and per-project
// schedule entries. The computational core only reads these for month-range
// derivation; everything else is pass-through data for consumers.
type ScheduleStore struct {
	phases       []*domain.PhaseDefinition
	dependencies []*domain.PhaseDependency
	entries      []*domain.ScheduleEntry
}

// NewScheduleStore wraps the given slices; they are adopted, not copied.
func NewScheduleStore(phases []*domain.PhaseDefinition, dependencies []*domain.PhaseDependency, entries []*domain.ScheduleEntry) *ScheduleStore {
	return &ScheduleStore{phases: phases, dependencies: dependencies, entries: entries}
}

// AddPhase appends a phase to the catalog, assigning an id and the next sort
// position.
func (s *ScheduleStore) AddPhase(p *domain.PhaseDefinition) *domain.PhaseDefinition {
	added := *p
	added.ID = uuid.New().String()
	added.SortOrder = len(s.phases) + 1
	s.phases = append(s.phases, &added)
	return &added
}

// Phases returns the phase catalog (copied slice).
func (s *ScheduleStore) Phases() []*domain.PhaseDefinition {
	out := make([]*domain.PhaseDefinition, len(s.phases))
	copy(out, s.phases)
	return out
}

// Dependencies returns all phase dependency edges (copied slice).
func (s *ScheduleStore) Dependencies() []*domain.PhaseDependency {
	out := make([]*domain.PhaseDependency, len(s.dependencies))
	copy(out, s.dependencies)
	return out
}

// Entries returns all schedule entries (copied slice).
func (s *ScheduleStore) Entries() []*domain.ScheduleEntry {
	out := make([]*domain.ScheduleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntriesByProject returns the schedule entries for one project.
func (s *ScheduleStore) EntriesByProject(projectID string) []*domain.ScheduleEntry {
	var out []*domain.ScheduleEntry
	for _, e := range s.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// UpsertEntry sets the date range for one (project, phase) pair, creating
// the entry when missing.
func (s *ScheduleStore) UpsertEntry(projectID, phaseID, startDate, endDate string) *domain.ScheduleEntry {
	now := time.Now().UTC()
	for i, e := range s.entries {
		if e.ProjectID == projectID && e.PhaseID == phaseID {
			updated := *e
			updated.StartDate = startDate
			updated.EndDate = endDate
			updated.UpdatedAt = now
			s.entries[i] = &updated
			return &updated
		}
	}
	entry := &domain.ScheduleEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		PhaseID:   phaseID,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// DeleteEntry removes one schedule entry by id. Returns false when absent.
func (s *ScheduleStore) DeleteEntry(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// MonthRange returns the ordered month keys spanning all schedule entries,
// or an empty sequence when there are none.
func (s *ScheduleStore) MonthRange() []string {
	ranges := make([]fiscal.DateRange, 0, len(s.entries))
	for _, e := range s.entries {
		ranges = append(ranges, fiscal.DateRange{StartDate: e.StartDate, EndDate: e.EndDate})
	}
	return fiscal.MonthRangeFromSchedule(ranges)
}
