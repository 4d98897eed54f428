package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

// MemberStore owns the member roster.
type MemberStore struct {
	members []*domain.Member
}

// NewMemberStore wraps the given members; the slice is adopted, not copied.
func NewMemberStore(members []*domain.Member) *MemberStore {
	return &MemberStore{members: members}
}

// Add assigns an id and timestamps and appends the member.
func (s *MemberStore) Add(m *domain.Member) *domain.Member {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.UnitPriceHistory == nil {
		m.UnitPriceHistory = []domain.UnitPriceEntry{}
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.members = append(s.members, m)
	return m
}

// GetByID returns the member with the given id, or nil.
func (s *MemberStore) GetByID(id string) *domain.Member {
	for _, m := range s.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// List returns the members in insertion order. The returned slice is a copy;
// the entries are shared.
func (s *MemberStore) List() []*domain.Member {
	out := make([]*domain.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Update replaces the stored member with the same id, refreshing updatedAt.
// Returns false when the id is unknown.
func (s *MemberStore) Update(m *domain.Member) bool {
	for i, existing := range s.members {
		if existing.ID == m.ID {
			updated := *m
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			s.members[i] = &updated
			return true
		}
	}
	return false
}

// Delete removes the member with the given id. Returns false when absent.
func (s *MemberStore) Delete(id string) bool {
	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// ClearSectionRefs nulls the sectionId of every member attached to one of
// the given sections and refreshes their updatedAt. This is the compensating
// phase of a section/division deletion; members themselves are never deleted
// as a side effect. Returns the number of members touched.
func (s *MemberStore) ClearSectionRefs(sectionIDs []string) int {
	affected := make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		affected[id] = true
	}

	touched := 0
	now := time.Now().UTC()
	for i, m := range s.members {
		if m.SectionID == nil || !affected[*m.SectionID] {
			continue
		}
		updated := *m
		updated.SectionID = nil
		updated.UpdatedAt = now
		s.members[i] = &updated
		touched++
	}
	return touched
}
