package store

import (
	"staffplan/internal/document"
	"staffplan/internal/domain"
	"staffplan/internal/storage"
)

// Workspace assembles every entity store from one loaded document and
// flattens them back for persistence. It is the single orchestration point
// for cross-store operations such as the division/section soft cascades.
type Workspace struct {
	FiscalYear int

	Projects    *ProjectStore
	Members     *MemberStore
	Org         *OrgStore
	Assignments *AssignmentLedger
	Efforts     *EffortStore
	Schedule    *ScheduleStore

	EffortColumns        []*domain.EffortColumn
	TechTags             []*domain.TechTag
	TechTagCategories    []*domain.TechTagCategory
	TechTagSubCategories []*domain.TechTagSubCategory

	meta document.Metadata
	docs *storage.DocumentStore
}

// Load reads the persisted document (falling back to an empty one) and
// builds a workspace over it.
func Load(docs *storage.DocumentStore, fiscalYear int) *Workspace {
	return FromDocument(docs.Load(fiscalYear), docs)
}

// FromDocument builds a workspace over an already loaded document.
func FromDocument(doc *document.Document, docs *storage.DocumentStore) *Workspace {
	return &Workspace{
		FiscalYear:           doc.FiscalYear,
		Projects:             NewProjectStore(doc.Projects),
		Members:              NewMemberStore(doc.Members),
		Org:                  NewOrgStore(doc.Divisions, doc.Sections),
		Assignments:          NewAssignmentLedger(doc.Assignments),
		Efforts:              NewEffortStore(doc.Efforts),
		Schedule:             NewScheduleStore(doc.Phases, doc.Dependencies, doc.ScheduleEntries),
		EffortColumns:        doc.EffortColumns,
		TechTags:             doc.TechTags,
		TechTagCategories:    doc.TechTagCategories,
		TechTagSubCategories: doc.TechTagSubCategories,
		meta:                 doc.Metadata,
		docs:                 docs,
	}
}

// ToDocument flattens the workspace back into a full document.
func (w *Workspace) ToDocument() *document.Document {
	return &document.Document{
		Version:              document.SchemaVersion,
		FiscalYear:           w.FiscalYear,
		Projects:             w.Projects.List(),
		Members:              w.Members.List(),
		Divisions:            w.Org.Divisions(),
		Sections:             w.Org.Sections(),
		Assignments:          w.Assignments.List(),
		EffortColumns:        w.EffortColumns,
		Efforts:              w.Efforts.List(),
		Phases:               w.Schedule.Phases(),
		Dependencies:         w.Schedule.Dependencies(),
		ScheduleEntries:      w.Schedule.Entries(),
		TechTags:             w.TechTags,
		TechTagCategories:    w.TechTagCategories,
		TechTagSubCategories: w.TechTagSubCategories,
		Metadata:             w.meta,
	}
}

// Save persists the workspace as a full document write.
func (w *Workspace) Save() error {
	return w.docs.Save(w.ToDocument())
}

// DeleteDivision removes the division, cascades delete to its sections, and
// nulls the sectionId of affected members. Two explicit phases: the org
// store computes and removes the affected sections, then the member store
// applies the compensating update. Returns false when the division is
// unknown.
func (w *Workspace) DeleteDivision(id string) bool {
	sectionIDs, ok := w.Org.DeleteDivision(id)
	if !ok {
		return false
	}
	w.Members.ClearSectionRefs(sectionIDs)
	return true
}

// DeleteSection removes one section and nulls the sectionId of its members.
// Returns false when the section is unknown.
func (w *Workspace) DeleteSection(id string) bool {
	if !w.Org.DeleteSection(id) {
		return false
	}
	w.Members.ClearSectionRefs([]string{id})
	return true
}

// DeleteProjectTask removes a WBS task and every assignment recorded against
// it, plus its effort entries.
func (w *Workspace) DeleteProjectTask(taskID string) bool {
	if !w.Projects.Delete(taskID) {
		return false
	}
	w.Assignments.DeleteByTask(taskID)
	w.Efforts.DeleteByProject(taskID)
	return true
}

// Replace swaps the workspace contents for another document (snapshot
// restore). The persistence handle is kept.
func (w *Workspace) Replace(doc *document.Document) {
	*w = *FromDocument(doc, w.docs)
}
