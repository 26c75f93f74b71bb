package policy

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

// Fixed values stamped onto generated documents.
const (
	documentType       = "compliance_policy"
	defaultOwner       = "Compliance Team"
	verificationMethod = "Automated scanning and manual review"
	defaultFrequency   = "As needed / Quarterly review"
)

// defaultTools is the static toolset referenced by generated procedures.
var defaultTools = []string{"OPA", "terraform-compliance", "Internal audit checklist"}

// Generator composes policy documents from gaps. It is pure in-memory
// composition; the only unusual input, an unmapped dimension, produces a
// generic single-statement policy instead of an error. Note the asymmetry
// with prompt generation, which skips unmapped dimensions entirely.
type Generator struct {
	registry   *template.Registry
	controls   *controls.Service
	frameworks []controls.Framework
	now        func() time.Time
}

// NewGenerator builds a Generator over the given registry and control
// mapping service.
func NewGenerator(registry *template.Registry, ctrl *controls.Service) *Generator {
	return &Generator{registry: registry, controls: ctrl, now: time.Now}
}

// SetFrameworks restricts control mappings on generated documents to the
// given frameworks. An empty list keeps the default of all frameworks.
func (g *Generator) SetFrameworks(frameworks []controls.Framework) {
	g.frameworks = frameworks
}

// GenerateForGap produces one policy document for a gap. It never fails.
func (g *Generator) GenerateForGap(gp gap.Gap) Document {
	tmpl, ok := g.registry.Policy(gp.DimensionKey)
	if !ok {
		return g.genericDocument(gp)
	}
	return g.templatedDocument(gp, tmpl)
}

func (g *Generator) templatedDocument(gp gap.Gap, tmpl template.PolicyTemplate) Document {
	tokens := template.TokensForGap(gp)
	now := g.now().UTC()
	mappings := g.controls.MappingsForDimension(gp.DimensionKey, g.frameworks...)

	statements := make([]Statement, 0, len(tmpl.Statements))
	for _, st := range tmpl.Statements {
		statements = append(statements, Statement{
			ID:               uuid.New().String(),
			Text:             template.Interpolate(st.Text, tokens),
			Level:            st.Level,
			EvidenceRequired: st.Level == template.LevelShall,
		})
	}

	requirements := make([]Requirement, 0, len(tmpl.Requirements))
	for _, rt := range tmpl.Requirements {
		requirements = append(requirements, Requirement{
			ID:                 uuid.New().String(),
			Description:        template.Interpolate(rt.Description, tokens),
			Specification:      template.Interpolate(rt.Specification, tokens),
			VerificationMethod: verificationMethod,
		})
	}

	steps := make([]ProcedureStep, 0, len(tmpl.Steps))
	for i, st := range tmpl.Steps {
		steps = append(steps, ProcedureStep{
			Order:           i + 1,
			Description:     template.Interpolate(st.Description, tokens),
			ResponsibleRole: st.ResponsibleRole,
		})
	}

	procedure := Procedure{
		ID:        uuid.New().String(),
		Title:     fmt.Sprintf("%s Procedure", tmpl.StandardTitle),
		Steps:     steps,
		Roles:     distinctRoles(steps),
		Frequency: defaultFrequency,
		Tools:     defaultTools,
	}

	standard := Standard{
		ID:              uuid.New().String(),
		Title:           tmpl.StandardTitle,
		Requirements:    requirements,
		Procedures:      []Procedure{procedure},
		ControlMappings: mappings,
	}

	return Document{
		ID:               uuid.New().String(),
		Title:            template.Interpolate(tmpl.Title, tokens),
		Version:          DocumentVersion,
		Type:             documentType,
		DimensionKey:     gp.DimensionKey,
		Objective:        template.Interpolate(tmpl.Objective, tokens),
		Scope:            template.Interpolate(tmpl.Scope, tokens),
		Statements:       statements,
		Standards:        []Standard{standard},
		ControlMappings:  mappings,
		EffectiveDate:    now,
		ReviewDate:       now.Add(ReviewPeriod),
		Owner:            defaultOwner,
		Status:           StatusDraft,
		Tags:             []string{gp.DimensionKey, "generated"},
		GeneratedFromGap: true,
		SourceSessionID:  gp.SessionID,
	}
}

// genericDocument is the fallback for dimensions without a policy
// template: a single SHALL statement carrying the gap's best practice.
func (g *Generator) genericDocument(gp gap.Gap) Document {
	now := g.now().UTC()
	mappings := g.controls.MappingsForDimension(gp.DimensionKey, g.frameworks...)

	name := gp.DimensionName
	if name == "" {
		name = gp.DimensionKey
	}

	return Document{
		ID:           uuid.New().String(),
		Title:        fmt.Sprintf("%s Policy", name),
		Version:      DocumentVersion,
		Type:         documentType,
		DimensionKey: gp.DimensionKey,
		Objective:    fmt.Sprintf("Establish the organizational practice this assessment found missing in %s.", name),
		Scope:        "All teams and systems within the assessed organization.",
		Statements: []Statement{{
			ID:               uuid.New().String(),
			Text:             gp.BestPractice,
			Level:            template.LevelShall,
			EvidenceRequired: true,
		}},
		Standards:        []Standard{},
		ControlMappings:  mappings,
		EffectiveDate:    now,
		ReviewDate:       now.Add(ReviewPeriod),
		Owner:            defaultOwner,
		Status:           StatusDraft,
		Tags:             []string{gp.DimensionKey, "generated", "generic"},
		GeneratedFromGap: true,
		SourceSessionID:  gp.SessionID,
	}
}

func distinctRoles(steps []ProcedureStep) []string {
	seen := map[string]bool{}
	roles := []string{}
	for _, s := range steps {
		if s.ResponsibleRole != "" && !seen[s.ResponsibleRole] {
			seen[s.ResponsibleRole] = true
			roles = append(roles, s.ResponsibleRole)
		}
	}
	sort.Strings(roles)
	return roles
}
