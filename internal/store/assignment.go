package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

// AllocationSlice explains one contribution to a member's monthly total.
type AllocationSlice struct {
	ProjectID string
	TaskID    string
	Value     float64
}

// AssignmentLedger owns all staffing assignments, keyed logically by the
// (project, task, member) triple. Reads are pure projections of the entry
// list; writes replace entry objects, never mutate them in place.
type AssignmentLedger struct {
	entries []*domain.AssignmentEntry
}

// NewAssignmentLedger wraps the given entries; the slice is adopted, not
// copied.
func NewAssignmentLedger(entries []*domain.AssignmentEntry) *AssignmentLedger {
	return &AssignmentLedger{entries: entries}
}

// Upsert finds the entry matching all three keys and replaces its monthly
// map wholesale (this is a full-map replace, not a per-month merge), or
// creates a new entry when none matches. Zero-valued months are dropped to
// keep the map sparse.
func (l *AssignmentLedger) Upsert(projectID, taskID, memberID string, monthlyValues map[string]float64) *domain.AssignmentEntry {
	now := time.Now().UTC()
	values := domain.CloneMonthlyValues(monthlyValues)

	for i, e := range l.entries {
		if e.ProjectID == projectID && e.TaskID == taskID && e.MemberID == memberID {
			updated := *e
			updated.MonthlyValues = values
			updated.UpdatedAt = now
			l.entries[i] = &updated
			return &updated
		}
	}

	entry := &domain.AssignmentEntry{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		TaskID:        taskID,
		MemberID:      memberID,
		MonthlyValues: values,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	l.entries = append(l.entries, entry)
	return entry
}

// UpdateMonthlyValue sets one month on the entry with the given id. A value
// of exactly 0 removes the month key instead, preserving sparseness.
// Returns false when the id is unknown.
func (l *AssignmentLedger) UpdateMonthlyValue(id, monthKey string, value float64) bool {
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		updated := *e
		updated.MonthlyValues = domain.CloneMonthlyValues(e.MonthlyValues)
		if value == 0 {
			delete(updated.MonthlyValues, monthKey)
		} else {
			updated.MonthlyValues[monthKey] = value
		}
		updated.UpdatedAt = time.Now().UTC()
		l.entries[i] = &updated
		return true
	}
	return false
}

// Get returns the entry with the given id, or nil.
func (l *AssignmentLedger) Get(id string) *domain.AssignmentEntry {
	for _, e := range l.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// List returns all entries in insertion order (copied slice).
func (l *AssignmentLedger) List() []*domain.AssignmentEntry {
	out := make([]*domain.AssignmentEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ListByProject returns the entries for one project.
func (l *AssignmentLedger) ListByProject(projectID string) []*domain.AssignmentEntry {
	var out []*domain.AssignmentEntry
	for _, e := range l.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// ListByMember returns the entries for one member.
func (l *AssignmentLedger) ListByMember(memberID string) []*domain.AssignmentEntry {
	var out []*domain.AssignmentEntry
	for _, e := range l.entries {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out
}

// Delete removes the entry with the given id. Returns false when absent.
func (l *AssignmentLedger) Delete(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteByTask removes every entry for the given task and returns how many
// were removed.
func (l *AssignmentLedger) DeleteByTask(taskID string) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.TaskID == taskID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// MemberMonthlyTotal sums the member's allocation fraction for one month
// across every project and task. Callers compare this against the 1.0 full-
// month ceiling; the ledger itself never enforces it.
func (l *AssignmentLedger) MemberMonthlyTotal(memberID, monthKey string) float64 {
	total := 0.0
	for _, e := range l.entries {
		if e.MemberID == memberID {
			total += e.MonthlyValues[monthKey]
		}
	}
	return total
}

// MemberMonthlyBreakdown lists the per-project contributions behind a
// member's monthly total, covering only entries with an explicit value for
// that month.
func (l *AssignmentLedger) MemberMonthlyBreakdown(memberID, monthKey string) []AllocationSlice {
	var slices []AllocationSlice
	for _, e := range l.entries {
		if e.MemberID != memberID {
			continue
		}
		if value, ok := e.MonthlyValues[monthKey]; ok {
			slices = append(slices, AllocationSlice{ProjectID: e.ProjectID, TaskID: e.TaskID, Value: value})
		}
	}
	return slices
}
