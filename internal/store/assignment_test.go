package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert_CreatesThenReplacesWholesale(t *testing.T) {
	ledger := NewAssignmentLedger(nil)

	first := ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{
		"2025-04": 0.5,
		"2025-05": 0.5,
	})
	require.NotEmpty(t, first.ID)
	assert.Len(t, ledger.List(), 1)

	// Same triple: the monthly map is replaced wholesale, not merged.
	second := ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{
		"2025-06": 0.8,
	})
	assert.Equal(t, first.ID, second.ID, "upsert must reuse the existing entry")
	assert.Len(t, ledger.List(), 1)
	assert.Equal(t, map[string]float64{"2025-06": 0.8}, second.MonthlyValues)

	// Different task: a separate entry.
	ledger.Upsert("proj-a", "task-2", "m-1", map[string]float64{"2025-04": 0.2})
	assert.Len(t, ledger.List(), 2)
}

func TestUpsert_DropsExplicitZeros(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	entry := ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{
		"2025-04": 0.5,
		"2025-05": 0,
	})
	_, has := entry.MonthlyValues["2025-05"]
	assert.False(t, has, "zero months must not be stored")
	assert.Len(t, entry.MonthlyValues, 1)
}

func TestUpdateMonthlyValue(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	entry := ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{"2025-04": 0.5})

	require.True(t, ledger.UpdateMonthlyValue(entry.ID, "2025-05", 0.3))
	updated := ledger.Get(entry.ID)
	assert.Equal(t, 0.3, updated.MonthlyValues["2025-05"])

	// Zero deletes the key rather than storing 0.
	require.True(t, ledger.UpdateMonthlyValue(entry.ID, "2025-04", 0))
	updated = ledger.Get(entry.ID)
	_, has := updated.MonthlyValues["2025-04"]
	assert.False(t, has)

	// The original entry object was replaced, not mutated.
	assert.Equal(t, 0.5, entry.MonthlyValues["2025-04"])

	assert.False(t, ledger.UpdateMonthlyValue("no-such-id", "2025-04", 0.1))
}

func TestMemberMonthlyTotalAndBreakdown(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{"2025-04": 0.6})
	ledger.Upsert("proj-b", "task-9", "m-1", map[string]float64{"2025-04": 0.5})
	ledger.Upsert("proj-b", "task-9", "m-2", map[string]float64{"2025-04": 1.0})

	// Over-allocation: the ledger reports 1.1 and leaves enforcement to
	// callers.
	assert.InDelta(t, 1.1, ledger.MemberMonthlyTotal("m-1", "2025-04"), 1e-9)
	assert.InDelta(t, 0.0, ledger.MemberMonthlyTotal("m-1", "2025-05"), 1e-9)

	breakdown := ledger.MemberMonthlyBreakdown("m-1", "2025-04")
	require.Len(t, breakdown, 2)
	sum := 0.0
	for _, slice := range breakdown {
		sum += slice.Value
	}
	assert.InDelta(t, 1.1, sum, 1e-9)

	assert.Empty(t, ledger.MemberMonthlyBreakdown("m-1", "2025-05"))
}

func TestDeleteAndDeleteByTask(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	a := ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{"2025-04": 0.5})
	ledger.Upsert("proj-a", "task-1", "m-2", map[string]float64{"2025-04": 0.5})
	ledger.Upsert("proj-a", "task-2", "m-1", map[string]float64{"2025-04": 0.5})

	assert.False(t, ledger.Delete("unknown"))
	assert.True(t, ledger.Delete(a.ID))
	assert.Len(t, ledger.List(), 2)

	assert.Equal(t, 1, ledger.DeleteByTask("task-1"))
	assert.Equal(t, 0, ledger.DeleteByTask("task-1"))
	require.Len(t, ledger.List(), 1)
	assert.Equal(t, "task-2", ledger.List()[0].TaskID)
}

func TestListSelectors(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	ledger.Upsert("proj-a", "task-1", "m-1", map[string]float64{"2025-04": 0.4})
	ledger.Upsert("proj-b", "task-2", "m-1", map[string]float64{"2025-04": 0.4})
	ledger.Upsert("proj-a", "task-3", "m-2", map[string]float64{"2025-04": 0.4})

	assert.Len(t, ledger.ListByProject("proj-a"), 2)
	assert.Len(t, ledger.ListByMember("m-1"), 2)
	assert.Empty(t, ledger.ListByMember("m-9"))
}
