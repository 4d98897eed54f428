package document

import "staffplan/internal/domain"

// Migrate fills in fields that older documents predate. It only adds
// defaults, never removes or renames anything, and is idempotent: running it
// twice yields the same document as running it once.
func Migrate(doc *Document) {
	if doc.Version == "" {
		doc.Version = SchemaVersion
	}
	if doc.Metadata.Version == "" {
		doc.Metadata.Version = doc.Version
	}
	if doc.Projects == nil {
		doc.Projects = []*domain.Project{}
	}
	if doc.Members == nil {
		doc.Members = []*domain.Member{}
	}
	for _, p := range doc.Projects {
		if p.Status == "" {
			p.Status = domain.ProjectNotStarted
		}
	}
	for _, m := range doc.Members {
		MigrateMember(m)
	}
}

// MigrateMember defaults the member fields added after the first schema
// release. Snapshots persisted before those fields existed run through this
// on load as well.
func MigrateMember(m *domain.Member) {
	if m.UnitPriceHistory == nil {
		m.UnitPriceHistory = []domain.UnitPriceEntry{}
	}
	// SectionID, StartDate and EndDate default to null, which is the zero
	// value of their pointer fields already; nothing to backfill.
}
