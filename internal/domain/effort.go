package domain

import "time"

// EffortColumn is one of up to MaxEffortColumns configurable effort measures.
type EffortColumn struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
	Enabled   bool   `json:"enabled"`
}

// EffortEntry stores a project's own recorded work quantity for one column.
// One entry per (ProjectID, ColumnID). The value is only displayed while the
// project is a leaf; aggregate nodes display their children's rolled-up sum,
// but the entry is retained so the value reappears if the node becomes a leaf
// again.
type EffortEntry struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	ColumnID  string    `json:"columnId"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
