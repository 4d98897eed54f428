package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

func newID() string { return uuid.New().String() }

// resolveProject maps user input to a project: exact code match first
// (case-insensitive), then exact ID, then unique ID prefix.
func resolveProject(app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project code or ID is required")
	}

	for _, p := range app.Workspace.Projects.List() {
		if strings.EqualFold(p.Code, input) {
			return p, nil
		}
	}
	if p := app.Workspace.Projects.GetByID(input); p != nil {
		return p, nil
	}

	var matches []*domain.Project
	for _, p := range app.Workspace.Projects.List() {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveMember maps user input to a member: exact name match first
// (case-insensitive), then exact ID, then unique ID prefix.
func resolveMember(app *App, input string) (*domain.Member, error) {
	if input == "" {
		return nil, fmt.Errorf("member name or ID is required")
	}

	var named []*domain.Member
	for _, m := range app.Workspace.Members.List() {
		if strings.EqualFold(m.Name, input) {
			named = append(named, m)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return nil, fmt.Errorf("member name %q is ambiguous (%d matches), use the ID", input, len(named))
	}
	if m := app.Workspace.Members.GetByID(input); m != nil {
		return m, nil
	}

	var matches []*domain.Member
	for _, m := range app.Workspace.Members.List() {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("member %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSection maps user input to a section by name (case-insensitive) or
// ID.
func resolveSection(app *App, input string) (*domain.Section, error) {
	if input == "" {
		return nil, fmt.Errorf("section name or ID is required")
	}
	var named []*domain.Section
	for _, s := range app.Workspace.Org.Sections() {
		if strings.EqualFold(s.Name, input) {
			named = append(named, s)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return nil, fmt.Errorf("section name %q is ambiguous (%d matches), use the ID", input, len(named))
	}
	if s := app.Workspace.Org.GetSection(input); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("section not found: %q", input)
}

// resolveDivision maps user input to a division by name (case-insensitive)
// or ID.
func resolveDivision(app *App, input string) (*domain.Division, error) {
	if input == "" {
		return nil, fmt.Errorf("division name or ID is required")
	}
	for _, d := range app.Workspace.Org.Divisions() {
		if strings.EqualFold(d.Name, input) || d.ID == input {
			return d, nil
		}
	}
	return nil, fmt.Errorf("division not found: %q", input)
}
