package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/bundle"
	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/iac"
	"github.com/quiz2biz/quiz2biz/pkg/domain/policy"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

// PolicyPackService assembles policy pack bundles: one policy document
// per gap, plus the OPA and Terraform rules of every affected dimension.
type PolicyPackService struct {
	sessions   domain.SessionRepository
	generator  *policy.Generator
	controls   *controls.Service
	audit      domain.AuditLogger
	namer      func(sessionID string) string
	frameworks []controls.Framework
}

func NewPolicyPackService(sessions domain.SessionRepository, registry *template.Registry, ctrl *controls.Service, audit domain.AuditLogger) *PolicyPackService {
	if audit == nil {
		audit = NopAuditLogger{}
	}
	return &PolicyPackService{
		sessions:  sessions,
		generator: policy.NewGenerator(registry, ctrl),
		controls:  ctrl,
		audit:     audit,
		namer: func(sessionID string) string {
			return fmt.Sprintf("Compliance Policy Pack (%s)", sessionID)
		},
	}
}

// SetBundleNamePrefix prefixes generated bundle names with the workspace's
// configured organization name. An empty prefix keeps the default.
func (s *PolicyPackService) SetBundleNamePrefix(prefix string) {
	if prefix == "" {
		return
	}
	s.namer = func(sessionID string) string {
		return fmt.Sprintf("%s Compliance Policy Pack (%s)", prefix, sessionID)
	}
}

// SetFrameworks restricts control mappings to the workspace's configured
// frameworks, on generated documents and on direct mapping lookups alike.
// An empty list keeps the default of all frameworks.
func (s *PolicyPackService) SetFrameworks(frameworks []controls.Framework) {
	s.frameworks = frameworks
	s.generator.SetFrameworks(frameworks)
}

// GeneratePolicyPack builds the session's gaps and assembles the full
// bundle. The policy generator never fails, so an empty bundle only
// occurs for a session with no gaps.
func (s *PolicyPackService) GeneratePolicyPack(ctx context.Context, sessionID domain.SessionID) (*bundle.Bundle, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	score := 0.0
	if sess != nil {
		score = sess.ReadinessScore
	}

	return s.assemble(sessionID, gap.FromSession(sess), score)
}

// GeneratePolicyPackFromGaps assembles a bundle from an already-computed
// gap list, for callers that snapshot gaps themselves.
func (s *PolicyPackService) GeneratePolicyPackFromGaps(ctx context.Context, sessionID domain.SessionID, gaps []gap.Gap) (*bundle.Bundle, error) {
	score := 0.0
	if sess, err := s.sessions.GetSession(ctx, sessionID); err == nil && sess != nil {
		score = sess.ReadinessScore
	}
	return s.assemble(sessionID, gaps, score)
}

func (s *PolicyPackService) assemble(sessionID domain.SessionID, gaps []gap.Gap, score float64) (*bundle.Bundle, error) {
	// Insertion order follows gap ranking for deterministic bundles.
	docs := make([]policy.Document, 0, len(gaps))
	seenDims := map[string]bool{}
	dims := []string{}
	for _, g := range gaps {
		docs = append(docs, s.generator.GenerateForGap(g))
		if !seenDims[g.DimensionKey] {
			seenDims[g.DimensionKey] = true
			dims = append(dims, g.DimensionKey)
		}
	}

	var opaPolicies []iac.OPAPolicy
	var tfRules []iac.TerraformRule
	for _, dim := range dims {
		opaPolicies = append(opaPolicies, iac.OPAPoliciesForDimension(dim)...)
		tfRules = append(tfRules, iac.TerraformRulesForDimension(dim)...)
	}

	b := bundle.Bundle{
		ID:                uuid.New().String(),
		Name:              s.namer(sessionID.String()),
		Version:           bundle.BundleVersion,
		GeneratedAt:       time.Now().UTC(),
		Policies:          docs,
		OPAPolicies:       opaPolicies,
		TerraformRules:    iac.CombineTerraform(tfRules),
		SourceSessionID:   sessionID.String(),
		ScoreAtGeneration: score,
	}
	b.Readme = bundle.RenderReadme(b)

	_ = s.audit.Log("policypack.generated", "system", map[string]interface{}{
		"session_id":   sessionID.String(),
		"bundle_id":    b.ID,
		"policies":     len(b.Policies),
		"opa_policies": len(b.OPAPolicies),
	})

	return &b, nil
}

// GeneratePolicyForGap exposes single-document generation.
func (s *PolicyPackService) GeneratePolicyForGap(g gap.Gap) policy.Document {
	return s.generator.GenerateForGap(g)
}

// TransitionPolicyStatus applies a lifecycle event to a document through
// the status machine and returns the updated document. An event that is
// not valid for the document's current status returns an error and leaves
// the document unchanged.
func (s *PolicyPackService) TransitionPolicyStatus(doc policy.Document, event string) (policy.Document, error) {
	sm, err := policy.NewDocumentStateMachine(doc.Status, doc.ID)
	if err != nil {
		return doc, err
	}
	if err := sm.Transition(event); err != nil {
		return doc, err
	}
	doc.Status = sm.Current()

	_ = s.audit.Log("policy.status_changed", "human", map[string]interface{}{
		"document_id": doc.ID,
		"event":       event,
		"status":      doc.Status.String(),
	})

	return doc, nil
}

// ControlMappings returns the crosswalk entries for a dimension. Callers
// that name no frameworks get the workspace's configured set.
func (s *PolicyPackService) ControlMappings(dimensionKey string, frameworks ...controls.Framework) []controls.Mapping {
	if len(frameworks) == 0 {
		frameworks = s.frameworks
	}
	return s.controls.MappingsForDimension(dimensionKey, frameworks...)
}

// ControlCoverage returns mapped-control counts per framework.
func (s *PolicyPackService) ControlCoverage(dimensionKey string) map[controls.Framework]int {
	return s.controls.CoverageSummary(dimensionKey)
}
