package document

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"staffplan/internal/domain"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

const (
	maxNameLen = 200
	maxTextLen = 2000
	minYear    = 2000
	maxYear    = 2100
)

// Validate checks the document strictly: shape, field constraints, enum
// membership, id format, referential integrity and uniqueness. Returns a
// slice of all violations found; an empty slice means the document is
// acceptable. Run Migrate first so older payloads carry their defaults.
func Validate(doc *Document) []error {
	var errs []error

	if doc.Version == "" {
		errs = append(errs, fmt.Errorf("version is required"))
	}
	if doc.FiscalYear < minYear || doc.FiscalYear > maxYear {
		errs = append(errs, fmt.Errorf("fiscalYear %d out of range [%d, %d]", doc.FiscalYear, minYear, maxYear))
	}
	if doc.Metadata.Version == "" {
		errs = append(errs, fmt.Errorf("metadata.version is required"))
	}
	if doc.Metadata.LastModified.IsZero() {
		errs = append(errs, fmt.Errorf("metadata.lastModified is required"))
	}

	divisionIDs := make(map[string]bool)
	errs = append(errs, validateDivisions(doc.Divisions, divisionIDs)...)

	sectionIDs := make(map[string]bool)
	errs = append(errs, validateSections(doc.Sections, divisionIDs, sectionIDs)...)

	projectByID := make(map[string]*domain.Project, len(doc.Projects))
	errs = append(errs, validateProjects(doc.Projects, projectByID)...)

	memberIDs := make(map[string]bool, len(doc.Members))
	errs = append(errs, validateMembers(doc.Members, sectionIDs, memberIDs)...)

	errs = append(errs, validateAssignments(doc.Assignments, projectByID, memberIDs)...)
	errs = append(errs, validateEfforts(doc.Efforts, doc.EffortColumns, projectByID)...)
	errs = append(errs, validateSchedule(doc.Phases, doc.Dependencies, doc.ScheduleEntries, projectByID)...)

	return errs
}

func validateID(prefix, id string) []error {
	if id == "" {
		return []error{fmt.Errorf("%s.id is required", prefix)}
	}
	if _, err := uuid.Parse(id); err != nil {
		return []error{fmt.Errorf("%s.id: invalid UUID %q", prefix, id)}
	}
	return nil
}

func validateDivisions(divisions []*domain.Division, divisionIDs map[string]bool) []error {
	var errs []error
	for i, d := range divisions {
		prefix := fmt.Sprintf("divisions[%d]", i)
		errs = append(errs, validateID(prefix, d.ID)...)
		if divisionIDs[d.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, d.ID))
		}
		divisionIDs[d.ID] = true
		if d.Name == "" || len(d.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
	}
	return errs
}

func validateSections(sections []*domain.Section, divisionIDs, sectionIDs map[string]bool) []error {
	var errs []error
	for i, s := range sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		errs = append(errs, validateID(prefix, s.ID)...)
		if sectionIDs[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
		}
		sectionIDs[s.ID] = true
		if s.Name == "" || len(s.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
		if !divisionIDs[s.DivisionID] {
			errs = append(errs, fmt.Errorf("%s.divisionId: division %q not found", prefix, s.DivisionID))
		}
	}
	return errs
}

func validateProjects(projects []*domain.Project, projectByID map[string]*domain.Project) []error {
	var errs []error
	codes := make(map[string]bool, len(projects))

	for _, p := range projects {
		projectByID[p.ID] = p
	}

	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		errs = append(errs, validateID(prefix, p.ID)...)

		if err := p.ValidateCode(); err != nil {
			errs = append(errs, fmt.Errorf("%s.code: %w", prefix, err))
		} else if codes[p.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, p.Code))
		}
		codes[p.Code] = true

		if p.Name == "" || len(p.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
		if len(p.Description) > maxTextLen || len(p.Background) > maxTextLen || len(p.Purpose) > maxTextLen {
			errs = append(errs, fmt.Errorf("%s: free-text fields are limited to %d characters", prefix, maxTextLen))
		}
		if !domain.ValidProjectStatuses[string(p.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		if p.Confidence != nil && !domain.ValidConfidences[string(*p.Confidence)] {
			errs = append(errs, fmt.Errorf("%s.confidence: invalid value %q", prefix, *p.Confidence))
		}

		var parent *domain.Project
		if p.ParentID != nil {
			parent = projectByID[*p.ParentID]
			if parent == nil {
				errs = append(errs, fmt.Errorf("%s.parentId: project %q not found", prefix, *p.ParentID))
				continue
			}
		}
		if err := p.ValidateHierarchy(parent); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
	}
	return errs
}

func validateMembers(members []*domain.Member, sectionIDs, memberIDs map[string]bool) []error {
	var errs []error
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d]", i)
		errs = append(errs, validateID(prefix, m.ID)...)
		if memberIDs[m.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, m.ID))
		}
		memberIDs[m.ID] = true

		if m.Name == "" || len(m.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
		if m.SectionID != nil && !sectionIDs[*m.SectionID] {
			errs = append(errs, fmt.Errorf("%s.sectionId: section %q not found", prefix, *m.SectionID))
		}

		errs = append(errs, validateOptionalDate(prefix+".startDate", m.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".endDate", m.EndDate)...)
		if err := m.ValidateDates(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}

		for j, entry := range m.UnitPriceHistory {
			upPrefix := fmt.Sprintf("%s.unitPriceHistory[%d]", prefix, j)
			if !monthKeyPattern.MatchString(entry.EffectiveFrom) {
				errs = append(errs, fmt.Errorf("%s.effectiveFrom: invalid month %q (expected YYYY-MM)", upPrefix, entry.EffectiveFrom))
			}
			if entry.Amount < 0 {
				errs = append(errs, fmt.Errorf("%s.amount must not be negative", upPrefix))
			}
		}
	}
	return errs
}

func validateAssignments(assignments []*domain.AssignmentEntry, projectByID map[string]*domain.Project, memberIDs map[string]bool) []error {
	var errs []error
	triples := make(map[string]bool, len(assignments))

	for i, a := range assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)
		errs = append(errs, validateID(prefix, a.ID)...)

		if projectByID[a.ProjectID] == nil {
			errs = append(errs, fmt.Errorf("%s.projectId: project %q not found", prefix, a.ProjectID))
		}
		if projectByID[a.TaskID] == nil {
			errs = append(errs, fmt.Errorf("%s.taskId: project %q not found", prefix, a.TaskID))
		}
		if !memberIDs[a.MemberID] {
			errs = append(errs, fmt.Errorf("%s.memberId: member %q not found", prefix, a.MemberID))
		}

		triple := a.ProjectID + "/" + a.TaskID + "/" + a.MemberID
		if triples[triple] {
			errs = append(errs, fmt.Errorf("%s: duplicate assignment for (project, task, member) %s", prefix, triple))
		}
		triples[triple] = true

		for month, value := range a.MonthlyValues {
			if !monthKeyPattern.MatchString(month) {
				errs = append(errs, fmt.Errorf("%s.monthlyValues: invalid month key %q (expected YYYY-MM)", prefix, month))
			}
			if value < 0 || value > 1 {
				errs = append(errs, fmt.Errorf("%s.monthlyValues[%s]: fraction %v out of range [0, 1]", prefix, month, value))
			}
		}
	}
	return errs
}

func validateEfforts(efforts []*domain.EffortEntry, columns []*domain.EffortColumn, projectByID map[string]*domain.Project) []error {
	var errs []error

	if len(columns) > domain.MaxEffortColumns {
		errs = append(errs, fmt.Errorf("effortColumns: at most %d columns are allowed, got %d", domain.MaxEffortColumns, len(columns)))
	}
	columnIDs := make(map[string]bool, len(columns))
	for i, c := range columns {
		prefix := fmt.Sprintf("effortColumns[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		}
		if columnIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
		}
		columnIDs[c.ID] = true
		if c.Name == "" || len(c.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
	}

	slots := make(map[string]bool, len(efforts))
	for i, e := range efforts {
		prefix := fmt.Sprintf("efforts[%d]", i)
		errs = append(errs, validateID(prefix, e.ID)...)
		if projectByID[e.ProjectID] == nil {
			errs = append(errs, fmt.Errorf("%s.projectId: project %q not found", prefix, e.ProjectID))
		}
		if !columnIDs[e.ColumnID] {
			errs = append(errs, fmt.Errorf("%s.columnId: column %q not found", prefix, e.ColumnID))
		}
		slot := e.ProjectID + "/" + e.ColumnID
		if slots[slot] {
			errs = append(errs, fmt.Errorf("%s: duplicate effort for (project, column) %s", prefix, slot))
		}
		slots[slot] = true
		if e.Value < 0 {
			errs = append(errs, fmt.Errorf("%s.value must not be negative", prefix))
		}
	}
	return errs
}

func validateSchedule(phases []*domain.PhaseDefinition, deps []*domain.PhaseDependency, entries []*domain.ScheduleEntry, projectByID map[string]*domain.Project) []error {
	var errs []error

	phaseIDs := make(map[string]bool, len(phases))
	for i, ph := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)
		if ph.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		}
		if phaseIDs[ph.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, ph.ID))
		}
		phaseIDs[ph.ID] = true
		if ph.Name == "" || len(ph.Name) > maxNameLen {
			errs = append(errs, fmt.Errorf("%s.name must be 1-%d characters", prefix, maxNameLen))
		}
	}

	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)
		if !phaseIDs[d.PredecessorPhaseID] {
			errs = append(errs, fmt.Errorf("%s.predecessorPhaseId: phase %q not found", prefix, d.PredecessorPhaseID))
		}
		if !phaseIDs[d.SuccessorPhaseID] {
			errs = append(errs, fmt.Errorf("%s.successorPhaseId: phase %q not found", prefix, d.SuccessorPhaseID))
		}
		if d.PredecessorPhaseID != "" && d.PredecessorPhaseID == d.SuccessorPhaseID {
			errs = append(errs, fmt.Errorf("%s: self-dependency on phase %q", prefix, d.PredecessorPhaseID))
		}
		if !domain.ValidDependencyTypes[string(d.Type)] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, d.Type))
		}
	}

	for i, e := range entries {
		prefix := fmt.Sprintf("scheduleEntries[%d]", i)
		errs = append(errs, validateID(prefix, e.ID)...)
		if projectByID[e.ProjectID] == nil {
			errs = append(errs, fmt.Errorf("%s.projectId: project %q not found", prefix, e.ProjectID))
		}
		if !phaseIDs[e.PhaseID] {
			errs = append(errs, fmt.Errorf("%s.phaseId: phase %q not found", prefix, e.PhaseID))
		}
		if !datePattern.MatchString(e.StartDate) {
			errs = append(errs, fmt.Errorf("%s.startDate: invalid date %q (expected YYYY-MM-DD)", prefix, e.StartDate))
		}
		if !datePattern.MatchString(e.EndDate) {
			errs = append(errs, fmt.Errorf("%s.endDate: invalid date %q (expected YYYY-MM-DD)", prefix, e.EndDate))
		}
		if datePattern.MatchString(e.StartDate) && datePattern.MatchString(e.EndDate) && e.EndDate < e.StartDate {
			errs = append(errs, fmt.Errorf("%s: endDate %s precedes startDate %s", prefix, e.EndDate, e.StartDate))
		}
	}
	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil {
		return nil
	}
	if !datePattern.MatchString(*dateStr) {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
