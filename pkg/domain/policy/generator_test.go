package policy

import (
	"testing"
	"time"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

func newTestGenerator() *Generator {
	g := NewGenerator(template.NewRegistry(), controls.NewService())
	g.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	return g
}

func mappedGap() gap.Gap {
	return gap.Gap{
		SessionID:      "s1",
		DimensionKey:   "arch_sec",
		DimensionName:  "Security Architecture",
		QuestionID:     "q1",
		Coverage:       0.25,
		SeverityWeight: 0.8,
		ResidualRisk:   0.6,
		BestPractice:   "Enforce MFA on all administrative access",
		StandardRefs:   []string{"ISO 27001 A.9.4.2"},
	}
}

func unmappedGap() gap.Gap {
	return gap.Gap{
		SessionID:      "s1",
		DimensionKey:   "finance",
		DimensionName:  "Financial Readiness",
		QuestionID:     "q2",
		Coverage:       0.5,
		SeverityWeight: 0.4,
		ResidualRisk:   0.2,
		BestPractice:   "Maintain a rolling 12-month cash flow forecast",
	}
}

func TestGenerateForGap_Templated(t *testing.T) {
	doc := newTestGenerator().GenerateForGap(mappedGap())

	if doc.DimensionKey != "arch_sec" {
		t.Errorf("DimensionKey = %s", doc.DimensionKey)
	}
	if doc.Status != StatusDraft {
		t.Errorf("Status = %s, want draft", doc.Status)
	}
	if len(doc.Statements) < 2 {
		t.Errorf("got %d statements, want several from template", len(doc.Statements))
	}
	if len(doc.Standards) != 1 {
		t.Fatalf("got %d standards, want 1", len(doc.Standards))
	}

	std := doc.Standards[0]
	if len(std.Requirements) == 0 {
		t.Error("standard has no requirements")
	}
	for _, r := range std.Requirements {
		if r.VerificationMethod != "Automated scanning and manual review" {
			t.Errorf("VerificationMethod = %q", r.VerificationMethod)
		}
	}
	if len(std.Procedures) != 1 {
		t.Fatalf("got %d procedures, want 1", len(std.Procedures))
	}

	proc := std.Procedures[0]
	if proc.Frequency != "As needed / Quarterly review" {
		t.Errorf("Frequency = %q", proc.Frequency)
	}
	for i, step := range proc.Steps {
		if step.Order != i+1 {
			t.Errorf("step %d has order %d", i, step.Order)
		}
	}

	// Roles are de-duplicated even though several steps share a role.
	seen := map[string]bool{}
	for _, role := range proc.Roles {
		if seen[role] {
			t.Errorf("duplicate role %q", role)
		}
		seen[role] = true
	}

	// Mappings attached at both policy and standard level.
	if len(doc.ControlMappings) == 0 || len(std.ControlMappings) == 0 {
		t.Error("control mappings missing at policy or standard level")
	}
}

func TestGenerateForGap_EvidenceFollowsLevel(t *testing.T) {
	doc := newTestGenerator().GenerateForGap(mappedGap())
	for _, st := range doc.Statements {
		want := st.Level == template.LevelShall
		if st.EvidenceRequired != want {
			t.Errorf("statement %q: EvidenceRequired = %v for level %s", st.Text, st.EvidenceRequired, st.Level)
		}
	}
}

func TestGenerateForGap_GenericFallback(t *testing.T) {
	doc := newTestGenerator().GenerateForGap(unmappedGap())

	if len(doc.Statements) != 1 {
		t.Fatalf("got %d statements, want exactly 1", len(doc.Statements))
	}
	st := doc.Statements[0]
	if st.Text != "Maintain a rolling 12-month cash flow forecast" {
		t.Errorf("statement text = %q, want the gap's best practice", st.Text)
	}
	if st.Level != template.LevelShall || !st.EvidenceRequired {
		t.Errorf("generic statement must be SHALL with evidence, got %s/%v", st.Level, st.EvidenceRequired)
	}
	if len(doc.Standards) != 0 {
		t.Errorf("generic policy must not carry standards, got %d", len(doc.Standards))
	}
	if doc.Title != "Financial Readiness Policy" {
		t.Errorf("Title = %q", doc.Title)
	}
}

func TestGenerateForGap_Dates(t *testing.T) {
	doc := newTestGenerator().GenerateForGap(mappedGap())

	if got := doc.ReviewDate.Sub(doc.EffectiveDate); got != ReviewPeriod {
		t.Errorf("review period = %v, want %v", got, ReviewPeriod)
	}
	if doc.EffectiveDate != time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("EffectiveDate = %v", doc.EffectiveDate)
	}
}

func TestGenerateForGap_Provenance(t *testing.T) {
	for _, g := range []gap.Gap{mappedGap(), unmappedGap()} {
		doc := newTestGenerator().GenerateForGap(g)
		if !doc.GeneratedFromGap {
			t.Error("GeneratedFromGap not set")
		}
		if doc.SourceSessionID != "s1" {
			t.Errorf("SourceSessionID = %q", doc.SourceSessionID)
		}
		if doc.Version != DocumentVersion {
			t.Errorf("Version = %q", doc.Version)
		}
	}
}
