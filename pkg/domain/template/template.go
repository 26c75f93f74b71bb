// Package template holds the versioned, per-dimension catalogs the
// generators draw from: prompt skeletons with conditionally included
// tasks, policy document templates, and the {{token}} interpolation that
// fills both. Catalogs are immutable after construction.
package template

// TaskTemplate is one ordered task skeleton inside a prompt template. A
// nil Condition means the task is always included.
type TaskTemplate struct {
	Description string
	Condition   *Condition
}

// PromptTemplate is the per-dimension skeleton a remediation prompt is
// generated from.
type PromptTemplate struct {
	DimensionKey       string
	Goal               string
	Tasks              []TaskTemplate
	AcceptanceCriteria []string
	Constraints        []string
	Deliverables       []string
	EvidenceType       string
	BaseEffortHours    int
}

// RequirementLevel is the normative strength of a policy statement,
// following RFC 2119 usage.
type RequirementLevel string

const (
	LevelShall  RequirementLevel = "SHALL"
	LevelShould RequirementLevel = "SHOULD"
	LevelMay    RequirementLevel = "MAY"
)

// IsValid returns true for a recognised requirement level.
func (l RequirementLevel) IsValid() bool {
	switch l {
	case LevelShall, LevelShould, LevelMay:
		return true
	default:
		return false
	}
}

// StatementTemplate is one policy statement skeleton.
type StatementTemplate struct {
	Text  string
	Level RequirementLevel
}

// RequirementTemplate is one standard requirement skeleton.
type RequirementTemplate struct {
	Description   string
	Specification string
}

// StepTemplate is one procedure step skeleton with its responsible role.
type StepTemplate struct {
	Description     string
	ResponsibleRole string
}

// PolicyTemplate is the per-dimension skeleton a Policy → Standard →
// Procedure document tree is generated from.
type PolicyTemplate struct {
	DimensionKey  string
	Title         string
	Objective     string
	Scope         string
	StandardTitle string
	Statements    []StatementTemplate
	Requirements  []RequirementTemplate
	Steps         []StepTemplate
}
