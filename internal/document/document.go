// Package document defines the single persisted document shape, its strict
// validation, and forward migration of older payloads.
package document

import (
	"time"

	"staffplan/internal/domain"
)

// SchemaVersion is written into new documents and metadata.
const SchemaVersion = "2.0.0"

// Metadata carries bookkeeping for the persisted document.
type Metadata struct {
	LastModified time.Time `json:"lastModified"`
	CreatedBy    string    `json:"createdBy"`
	Version      string    `json:"version"`
}

// Document is the complete application state. It is reconstructed in full
// from storage on every load and written in full on every save.
type Document struct {
	Version              string                       `json:"version"`
	FiscalYear           int                          `json:"fiscalYear"`
	Projects             []*domain.Project            `json:"projects"`
	Members              []*domain.Member             `json:"members"`
	Divisions            []*domain.Division           `json:"divisions,omitempty"`
	Sections             []*domain.Section            `json:"sections,omitempty"`
	Assignments          []*domain.AssignmentEntry    `json:"assignments,omitempty"`
	EffortColumns        []*domain.EffortColumn       `json:"effortColumns,omitempty"`
	Efforts              []*domain.EffortEntry        `json:"efforts,omitempty"`
	Phases               []*domain.PhaseDefinition    `json:"phases,omitempty"`
	Dependencies         []*domain.PhaseDependency    `json:"dependencies,omitempty"`
	ScheduleEntries      []*domain.ScheduleEntry      `json:"scheduleEntries,omitempty"`
	TechTags             []*domain.TechTag            `json:"techTags,omitempty"`
	TechTagCategories    []*domain.TechTagCategory    `json:"techTagCategories,omitempty"`
	TechTagSubCategories []*domain.TechTagSubCategory `json:"techTagSubCategories,omitempty"`
	Metadata             Metadata                     `json:"metadata"`
}

// NewEmpty constructs a valid empty document for the given fiscal year.
func NewEmpty(fiscalYear int) *Document {
	now := time.Now().UTC()
	return &Document{
		Version:    SchemaVersion,
		FiscalYear: fiscalYear,
		Projects:   []*domain.Project{},
		Members:    []*domain.Member{},
		Metadata: Metadata{
			LastModified: now,
			CreatedBy:    "staffplan",
			Version:      SchemaVersion,
		},
	}
}
