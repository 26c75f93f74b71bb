// Package policy generates Policy → Standard → Procedure document trees
// from gaps, cross-mapped to compliance-framework controls. Documents are
// born as drafts and move through an explicit status lifecycle.
package policy

import (
	"time"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

// ReviewPeriod is how long a generated policy stays valid before review.
const ReviewPeriod = 365 * 24 * time.Hour

// DocumentVersion is stamped onto every generated document.
const DocumentVersion = "1.0"

// Statement is one normative policy statement. Evidence is required
// exactly when the requirement level is SHALL.
type Statement struct {
	ID               string                    `json:"id"`
	Text             string                    `json:"text"`
	Level            template.RequirementLevel `json:"level"`
	EvidenceRequired bool                      `json:"evidence_required"`
}

// Requirement is one verifiable entry in a standard.
type Requirement struct {
	ID                 string `json:"id"`
	Description        string `json:"description"`
	Specification      string `json:"specification"`
	VerificationMethod string `json:"verification_method"`
}

// ProcedureStep is one ordered step with its responsible role.
type ProcedureStep struct {
	Order           int    `json:"order"`
	Description     string `json:"description"`
	ResponsibleRole string `json:"responsible_role"`
}

// Procedure is the ordered execution guide attached to a standard.
type Procedure struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Steps     []ProcedureStep `json:"steps"`
	Roles     []string        `json:"roles"`
	Frequency string          `json:"frequency"`
	Tools     []string        `json:"tools"`
}

// Standard nests requirements and procedures under a policy.
type Standard struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Requirements    []Requirement      `json:"requirements"`
	Procedures      []Procedure        `json:"procedures"`
	ControlMappings []controls.Mapping `json:"control_mappings"`
}

// Document is a generated policy with its nested standards.
type Document struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Version          string             `json:"version"`
	Type             string             `json:"type"`
	DimensionKey     string             `json:"dimension_key"`
	Objective        string             `json:"objective"`
	Scope            string             `json:"scope"`
	Statements       []Statement        `json:"statements"`
	Standards        []Standard         `json:"standards"`
	ControlMappings  []controls.Mapping `json:"control_mappings"`
	EffectiveDate    time.Time          `json:"effective_date"`
	ReviewDate       time.Time          `json:"review_date"`
	Owner            string             `json:"owner"`
	Status           Status             `json:"status"`
	Tags             []string           `json:"tags"`
	GeneratedFromGap bool               `json:"generated_from_gap"`
	SourceSessionID  string             `json:"source_session_id,omitempty"`
}
