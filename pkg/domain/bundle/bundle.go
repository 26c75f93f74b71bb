// Package bundle assembles policy pack bundles and their exportable file
// sets. A bundle is a value object wholly owned by the orchestrator that
// created it; export is a pure data → file-list transform, with archive
// packaging and delivery left to the surrounding system.
package bundle

import (
	"time"

	"github.com/quiz2biz/quiz2biz/pkg/domain/iac"
	"github.com/quiz2biz/quiz2biz/pkg/domain/policy"
)

// BundleVersion is stamped onto every generated bundle.
const BundleVersion = "1.0.0"

// Bundle is a complete, exportable policy pack for one session.
type Bundle struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Version           string            `json:"version"`
	GeneratedAt       time.Time         `json:"generated_at"`
	Policies          []policy.Document `json:"policies"`
	OPAPolicies       []iac.OPAPolicy   `json:"opa_policies"`
	TerraformRules    string            `json:"terraform_rules,omitempty"`
	Readme            string            `json:"readme"`
	SourceSessionID   string            `json:"source_session_id"`
	ScoreAtGeneration float64           `json:"score_at_generation"`
}

// File is one entry of the exportable file set.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
