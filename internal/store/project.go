// Package store holds the in-memory entity stores and the workspace that
// assembles them from a persisted document. Each store owns its slice of
// entities; mutations replace entry objects rather than editing them in
// place, and callers orchestrate cross-store effects explicitly.
package store

import (
	"time"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

// ProjectStore owns the work-breakdown forest's flat node list.
type ProjectStore struct {
	projects []*domain.Project
}

// NewProjectStore wraps the given projects; the slice is adopted, not copied.
func NewProjectStore(projects []*domain.Project) *ProjectStore {
	return &ProjectStore{projects: projects}
}

// Add assigns an id and timestamps and appends the project. A missing status
// defaults to not_started.
func (s *ProjectStore) Add(p *domain.Project) *domain.Project {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.ProjectNotStarted
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append(s.projects, p)
	return p
}

// GetByID returns the project with the given id, or nil.
func (s *ProjectStore) GetByID(id string) *domain.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// GetByCode returns the project with the given code, or nil.
func (s *ProjectStore) GetByCode(code string) *domain.Project {
	for _, p := range s.projects {
		if p.Code == code {
			return p
		}
	}
	return nil
}

// List returns the projects in insertion order. The returned slice is a
// copy; the entries are shared.
func (s *ProjectStore) List() []*domain.Project {
	out := make([]*domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Update replaces the stored project with the same id, refreshing updatedAt.
// Returns false when the id is unknown.
func (s *ProjectStore) Update(p *domain.Project) bool {
	for i, existing := range s.projects {
		if existing.ID == p.ID {
			updated := *p
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			s.projects[i] = &updated
			return true
		}
	}
	return false
}

// Delete removes the project with the given id. Returns false when absent.
func (s *ProjectStore) Delete(id string) bool {
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}
