package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

// OrgStore owns divisions and sections. Deleting either never touches
// members directly; DeleteDivision/DeleteSection return the affected section
// ids so the caller can apply the compensating member update as a separate,
// independently testable phase.
type OrgStore struct {
	divisions []*domain.Division
	sections  []*domain.Section
}

// NewOrgStore wraps the given containers; the slices are adopted, not copied.
func NewOrgStore(divisions []*domain.Division, sections []*domain.Section) *OrgStore {
	return &OrgStore{divisions: divisions, sections: sections}
}

// AddDivision assigns an id and timestamps and appends the division.
func (s *OrgStore) AddDivision(d *domain.Division) *domain.Division {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	s.divisions = append(s.divisions, d)
	return d
}

// AddSection assigns an id and timestamps and appends the section.
func (s *OrgStore) AddSection(sec *domain.Section) *domain.Section {
	if sec.ID == "" {
		sec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	s.sections = append(s.sections, sec)
	return sec
}

// Divisions returns all divisions in insertion order (copied slice).
func (s *OrgStore) Divisions() []*domain.Division {
	out := make([]*domain.Division, len(s.divisions))
	copy(out, s.divisions)
	return out
}

// Sections returns all sections in insertion order (copied slice).
func (s *OrgStore) Sections() []*domain.Section {
	out := make([]*domain.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// SectionsOfDivision returns the sections belonging to the given division.
func (s *OrgStore) SectionsOfDivision(divisionID string) []*domain.Section {
	var out []*domain.Section
	for _, sec := range s.sections {
		if sec.DivisionID == divisionID {
			out = append(out, sec)
		}
	}
	return out
}

// GetSection returns the section with the given id, or nil.
func (s *OrgStore) GetSection(id string) *domain.Section {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

// DeleteDivision removes the division and all its sections. Phase one of
// the soft cascade: the returned section ids are the input for the
// compensating member update. ok is false when the division is unknown.
func (s *OrgStore) DeleteDivision(id string) (sectionIDs []string, ok bool) {
	idx := -1
	for i, d := range s.divisions {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	s.divisions = append(s.divisions[:idx], s.divisions[idx+1:]...)

	kept := s.sections[:0]
	for _, sec := range s.sections {
		if sec.DivisionID == id {
			sectionIDs = append(sectionIDs, sec.ID)
			continue
		}
		kept = append(kept, sec)
	}
	s.sections = kept
	return sectionIDs, true
}

// DeleteSection removes one section. Returns false when absent.
func (s *OrgStore) DeleteSection(id string) bool {
	for i, sec := range s.sections {
		if sec.ID == id {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			return true
		}
	}
	return false
}
