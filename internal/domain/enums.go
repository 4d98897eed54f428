package domain

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectActive     ProjectStatus = "active"
	ProjectCompleted  ProjectStatus = "completed"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"not_started": true, "active": true, "completed": true,
}

// Confidence grades an active project's order certainty, S being firmest.
type Confidence string

const (
	ConfidenceS Confidence = "S"
	ConfidenceA Confidence = "A"
	ConfidenceB Confidence = "B"
	ConfidenceC Confidence = "C"
)

var ValidConfidences = map[string]bool{"S": true, "A": true, "B": true, "C": true}

// DependencyType is the edge type between two schedule phases.
type DependencyType string

const (
	DependencyFS DependencyType = "FS"
	DependencySS DependencyType = "SS"
	DependencyFF DependencyType = "FF"
	DependencySF DependencyType = "SF"
)

var ValidDependencyTypes = map[string]bool{"FS": true, "SS": true, "FF": true, "SF": true}

const (
	// MaxProjectLevel is the deepest allowed hierarchy level (root is 0).
	MaxProjectLevel = 5

	// MaxEffortColumns caps the configurable effort column set.
	MaxEffortColumns = 10
)
