package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "0", Amount(0))
	assert.Equal(t, "950", Amount(950))
	assert.Equal(t, "1,370", Amount(1370))
	assert.Equal(t, "1,234,568", Amount(1234567.8))
	assert.Equal(t, "-12,000", Amount(-12000))
}

func TestEffort(t *testing.T) {
	assert.Equal(t, "1.5", Effort(1.5))
	assert.Equal(t, "2", Effort(2.0))
	assert.Equal(t, "0.05", Effort(0.05))
	assert.Equal(t, "0", Effort(0))
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "BUDGET"},
		[][]string{
			{"Sato", "1,370"},
			{"Watanabe", "950"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "Sato")
	assert.Contains(t, lines[3], "Watanabe")
}

func TestRenderTree(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Code: "P001", Title: "Platform", Level: 0},
		{Code: "P001-01", Title: "Design", Level: 1, IsLast: false},
		{Code: "P001-02", Title: "Build", Level: 1, IsLast: true, Detail: "3.5"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "├─ ")
	assert.Contains(t, lines[2], "└─ ")
	assert.Contains(t, lines[2], "3.5")

	assert.Empty(t, RenderTree(nil))
}
