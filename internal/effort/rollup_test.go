package effort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffplan/internal/domain"
)

func proj(id, code string, level int, parentID *string) *domain.Project {
	return &domain.Project{ID: id, Code: code, Level: level, ParentID: parentID}
}

func strPtr(s string) *string { return &s }

// root (P001)
// ├── mid (P001-01)
// │   ├── leafA (P001-01-01)
// │   └── leafB (P001-01-02)
// └── leafC (P001-02)
func testForest() *Forest {
	return BuildForest([]*domain.Project{
		proj("leafB", "P001-01-02", 2, strPtr("mid")),
		proj("root", "P001", 0, nil),
		proj("leafA", "P001-01-01", 2, strPtr("mid")),
		proj("mid", "P001-01", 1, strPtr("root")),
		proj("leafC", "P001-02", 1, strPtr("root")),
	})
}

func entry(projectID, columnID string, value float64) *domain.EffortEntry {
	return &domain.EffortEntry{ID: projectID + "-" + columnID, ProjectID: projectID, ColumnID: columnID, Value: value}
}

func TestBuildForest(t *testing.T) {
	f := testForest()

	assert.Equal(t, 5, f.Size())
	assert.Equal(t, []string{"root"}, f.RootIDs())
	assert.Equal(t, []string{"mid", "leafC"}, f.ChildIDs("root"))
	assert.Equal(t, []string{"leafA", "leafB"}, f.ChildIDs("mid"))

	assert.True(t, f.IsLeaf("leafA"))
	assert.False(t, f.IsLeaf("root"))
	assert.True(t, f.IsLeaf("unknown"))

	assert.Equal(t, []string{"root", "mid", "leafA", "leafB", "leafC"}, f.SubtreeIDs("root"))
	assert.Empty(t, f.SubtreeIDs("unknown"))
}

func TestBuildForest_DanglingParentBecomesRoot(t *testing.T) {
	f := BuildForest([]*domain.Project{
		proj("orphan", "P009-01", 1, strPtr("gone")),
		proj("root", "P001", 0, nil),
	})
	assert.ElementsMatch(t, []string{"root", "orphan"}, f.RootIDs())
}

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.02, 0},
		{0.025, 0.05}, // half rounds away from zero
		{0.07, 0.05},
		{0.075, 0.1},
		{1.13, 1.15},
		{-0.025, -0.05},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundToStep(tt.in), 1e-9, "input %v", tt.in)
	}
}

func TestRollup_LeafAndAggregate(t *testing.T) {
	f := testForest()
	entries := []*domain.EffortEntry{
		entry("leafA", "design", 1.2),
		entry("leafB", "design", 0.4),
		entry("leafC", "design", 2.0),
		// Recorded against an aggregate: ignored while it has children.
		entry("mid", "design", 99),
	}

	result := Rollup(f, []string{"design"}, entries)

	assert.InDelta(t, 1.2, result[Key("leafA", "design")], 1e-9)
	assert.InDelta(t, 0.4, result[Key("leafB", "design")], 1e-9)
	assert.InDelta(t, 1.6, result[Key("mid", "design")], 1e-9)
	assert.InDelta(t, 3.6, result[Key("root", "design")], 1e-9)
}

func TestRollup_MissingEntriesDefaultToZero(t *testing.T) {
	f := testForest()
	result := Rollup(f, []string{"design", "test"}, nil)

	// Every node × column cell is present.
	require.Len(t, result, 10)
	for key, v := range result {
		assert.Zero(t, v, "key %s", key)
	}
}

func TestRollup_AggregateSumIsRounded(t *testing.T) {
	f := testForest()
	entries := []*domain.EffortEntry{
		entry("leafA", "test", 0.11),
		entry("leafB", "test", 0.12),
	}
	result := Rollup(f, []string{"test"}, entries)

	// 0.23 rounds to 0.25 at the aggregate, leaves stay raw.
	assert.InDelta(t, 0.11, result[Key("leafA", "test")], 1e-9)
	assert.InDelta(t, 0.25, result[Key("mid", "test")], 1e-9)
	assert.InDelta(t, 0.25, result[Key("root", "test")], 1e-9)
}

func TestRollup_OwnValueReappearsWhenLeafAgain(t *testing.T) {
	entries := []*domain.EffortEntry{
		entry("mid", "design", 5),
		entry("leafA", "design", 1),
		entry("leafB", "design", 2),
	}

	withChildren := testForest()
	got := Rollup(withChildren, []string{"design"}, entries)
	assert.InDelta(t, 3.0, got[Key("mid", "design")], 1e-9)

	// Rebuild without mid's children: the retained own entry shows again.
	pruned := BuildForest([]*domain.Project{
		proj("root", "P001", 0, nil),
		proj("mid", "P001-01", 1, strPtr("root")),
		proj("leafC", "P001-02", 1, strPtr("root")),
	})
	got = Rollup(pruned, []string{"design"}, entries)
	assert.InDelta(t, 5.0, got[Key("mid", "design")], 1e-9)
}
