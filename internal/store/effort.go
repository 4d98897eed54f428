package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

// EffortStore owns recorded effort values, one slot per (project, column).
// Values recorded against aggregate nodes are kept even while hidden by the
// rollup, so they reappear if the node loses its children.
type EffortStore struct {
	entries []*domain.EffortEntry
}

// NewEffortStore wraps the given entries; the slice is adopted, not copied.
func NewEffortStore(entries []*domain.EffortEntry) *EffortStore {
	return &EffortStore{entries: entries}
}

// Set upserts the value for one (project, column) slot.
func (s *EffortStore) Set(projectID, columnID string, value float64) *domain.EffortEntry {
	now := time.Now().UTC()
	for i, e := range s.entries {
		if e.ProjectID == projectID && e.ColumnID == columnID {
			updated := *e
			updated.Value = value
			updated.UpdatedAt = now
			s.entries[i] = &updated
			return &updated
		}
	}
	entry := &domain.EffortEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		ColumnID:  columnID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Get returns the recorded value for one slot; ok is false when no entry
// exists.
func (s *EffortStore) Get(projectID, columnID string) (float64, bool) {
	for _, e := range s.entries {
		if e.ProjectID == projectID && e.ColumnID == columnID {
			return e.Value, true
		}
	}
	return 0, false
}

// List returns all entries in insertion order (copied slice).
func (s *EffortStore) List() []*domain.EffortEntry {
	out := make([]*domain.EffortEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// DeleteByProject removes every entry recorded against the given project and
// returns how many were removed.
func (s *EffortStore) DeleteByProject(projectID string) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}
