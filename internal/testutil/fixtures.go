package testutil

import (
	"staffplan/internal/domain"
	"staffplan/internal/store"
)

// StrPtr returns a pointer to s, for optional string fields.
func StrPtr(s string) *string { return &s }

// SeedSample populates a workspace with a small org: one division with one
// section, one priced member in it, and a two-level project with a task.
func SeedSample(ws *store.Workspace) {
	div := ws.Org.AddDivision(&domain.Division{Name: "Engineering"})
	sec := ws.Org.AddSection(&domain.Section{DivisionID: div.ID, Name: "Platform"})

	ws.Members.Add(&domain.Member{
		Name:      "Sato",
		SectionID: &sec.ID,
		IsActive:  true,
		StartDate: StrPtr("2024-04-01"),
		UnitPriceHistory: []domain.UnitPriceEntry{
			{EffectiveFrom: "2024-04", Amount: 100},
		},
	})

	root := ws.Projects.Add(&domain.Project{Code: "P001", Name: "Platform Renewal", Level: 0, Status: domain.ProjectActive})
	ws.Projects.Add(&domain.Project{Code: "P001-01", Name: "Design", Level: 1, ParentID: &root.ID})
}
