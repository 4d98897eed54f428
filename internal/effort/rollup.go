package effort

import (
	"math"

	"staffplan/internal/domain"
)

// roundStep is the display increment for rolled-up effort values.
const roundStep = 0.05

// RoundToStep rounds to the nearest 0.05, half away from zero on the scaled
// integer (0.025 → 0.05).
func RoundToStep(value float64) float64 {
	return math.Round(value/roundStep) * roundStep
}

// Key builds the result-map key for one node/column cell.
func Key(nodeID, columnID string) string {
	return nodeID + ":" + columnID
}

// Rollup computes the displayed effort value of every node for every
// requested column. Leaves display their own recorded entry value (0 when
// absent); aggregate nodes display the rounded sum of their children's
// displayed values, ignoring any entry recorded against the aggregate itself.
// The result is keyed "<nodeID>:<columnID>" and covers every node in the
// forest for every column.
func Rollup(f *Forest, columnIDs []string, entries []*domain.EffortEntry) map[string]float64 {
	own := make(map[string]float64, len(entries))
	for _, e := range entries {
		own[Key(e.ProjectID, e.ColumnID)] = e.Value
	}

	result := make(map[string]float64, f.Size()*len(columnIDs))
	for _, columnID := range columnIDs {
		f.WalkPostOrder(func(p *domain.Project, isLeaf bool) {
			key := Key(p.ID, columnID)
			if isLeaf {
				result[key] = own[key]
				return
			}
			sum := 0.0
			for _, childID := range f.ChildIDs(p.ID) {
				sum += result[Key(childID, columnID)]
			}
			result[key] = RoundToStep(sum)
		})
	}
	return result
}
