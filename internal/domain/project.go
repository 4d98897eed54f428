package domain

import (
	"fmt"
	"regexp"
	"time"
)

var projectCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*$`)

// Project is a node in the work-breakdown forest. Level-0 nodes are roots;
// a level-n node's parent must be level n-1.
type Project struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Level       int           `json:"level"`
	ParentID    *string       `json:"parentId"`
	Status      ProjectStatus `json:"status"`
	Confidence  *Confidence   `json:"confidence"`
	Description string        `json:"description,omitempty"`
	Background  string        `json:"background,omitempty"`
	Purpose     string        `json:"purpose,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ValidateCode checks that Code is non-empty and hierarchical-dash formatted
// (e.g. P001, P001-01).
func (p *Project) ValidateCode() error {
	if p.Code == "" {
		return fmt.Errorf("project code is required")
	}
	if !projectCodePattern.MatchString(p.Code) {
		return fmt.Errorf("project code %q must be alphanumeric segments joined by dashes (e.g. P001-01)", p.Code)
	}
	return nil
}

// ValidateHierarchy checks the level/parent invariant against the resolved
// parent node. parent is nil for root candidates.
func (p *Project) ValidateHierarchy(parent *Project) error {
	if p.Level < 0 || p.Level > MaxProjectLevel {
		return fmt.Errorf("project level %d out of range [0, %d]", p.Level, MaxProjectLevel)
	}
	if p.Level == 0 {
		if p.ParentID != nil {
			return fmt.Errorf("level 0 project %q must not have a parent", p.Code)
		}
		return nil
	}
	if p.ParentID == nil || parent == nil {
		return fmt.Errorf("level %d project %q requires a parent", p.Level, p.Code)
	}
	if parent.Level != p.Level-1 {
		return fmt.Errorf("project %q at level %d must have a level %d parent, got level %d", p.Code, p.Level, p.Level-1, parent.Level)
	}
	return nil
}
