package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffplan/internal/document"
	"staffplan/internal/domain"
	"staffplan/internal/storage"
	"staffplan/internal/store"
)

func strPtr(s string) *string { return &s }

func buildWorkspace(t *testing.T) *store.Workspace {
	t.Helper()
	docs := storage.NewDocumentStore(storage.NewMemoryKV(), nil)
	ws := store.FromDocument(document.NewEmpty(2025), docs)

	div := ws.Org.AddDivision(&domain.Division{Name: "Engineering"})
	sec := ws.Org.AddSection(&domain.Section{DivisionID: div.ID, Name: "Platform"})

	m := ws.Members.Add(&domain.Member{
		Name:      "Mori",
		SectionID: &sec.ID,
		IsActive:  true,
		StartDate: strPtr("2025-02-11"),
		UnitPriceHistory: []domain.UnitPriceEntry{
			{EffectiveFrom: "2025-02", Amount: 100},
			{EffectiveFrom: "2025-05", Amount: 110},
			{EffectiveFrom: "2025-10", Amount: 120},
		},
	})

	root := ws.Projects.Add(&domain.Project{Code: "P001", Name: "A", Level: 0})
	task := ws.Projects.Add(&domain.Project{Code: "P001-01", Name: "A1", Level: 1, ParentID: &root.ID})
	other := ws.Projects.Add(&domain.Project{Code: "P002", Name: "B", Level: 0})
	otherTask := ws.Projects.Add(&domain.Project{Code: "P002-01", Name: "B1", Level: 1, ParentID: &other.ID})

	ws.Assignments.Upsert(root.ID, task.ID, m.ID, map[string]float64{"2025-04": 0.6})
	ws.Assignments.Upsert(other.ID, otherTask.ID, m.ID, map[string]float64{"2025-04": 0.5})

	return ws
}

func TestRevenueReport(t *testing.T) {
	ws := buildWorkspace(t)
	svc := NewService(ws, 4)

	divisions := svc.Revenue()
	require.Len(t, divisions, 1)
	require.Len(t, divisions[0].Sections, 1)
	require.Len(t, divisions[0].Sections[0].Members, 1)

	row := divisions[0].Sections[0].Members[0]
	assert.InDelta(t, 1370.0, row.Budget, 1e-9)
	// Only April carries allocation (1.1 total): 100 * 1.1.
	assert.InDelta(t, 110.0, row.Expected, 1e-9)

	assert.InDelta(t, divisions[0].Budget, divisions[0].Sections[0].Budget, 1e-9)
}

func TestRevenueReport_MemberWithoutSectionExcluded(t *testing.T) {
	ws := buildWorkspace(t)
	ws.Members.Add(&domain.Member{
		Name:      "Floating",
		StartDate: strPtr("2020-01-01"),
		UnitPriceHistory: []domain.UnitPriceEntry{
			{EffectiveFrom: "2020-01", Amount: 999},
		},
	})

	divisions := NewService(ws, 4).Revenue()
	require.Len(t, divisions, 1)
	assert.Len(t, divisions[0].Sections[0].Members, 1)
}

func TestOverAllocations(t *testing.T) {
	ws := buildWorkspace(t)
	svc := NewService(ws, 4)

	over := svc.OverAllocations()
	require.Len(t, over, 1)
	assert.Equal(t, "2025-04", over[0].MonthKey)
	assert.InDelta(t, 1.1, over[0].Total, 1e-9)
	require.Len(t, over[0].Breakdown, 2)

	// Exactly 1.0 is not over-allocated.
	entries := ws.Assignments.ListByMember(over[0].Member.ID)
	require.Len(t, entries, 2)
	ws.Assignments.UpdateMonthlyValue(entries[1].ID, "2025-04", 0.4)
	assert.Empty(t, NewService(ws, 4).OverAllocations())
}
