package bundle

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/iac"
	"github.com/quiz2biz/quiz2biz/pkg/domain/policy"
)

func testBundle() Bundle {
	generatedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	docs := []policy.Document{
		{
			ID:           "pol-1",
			Title:        "Security Architecture Policy",
			Version:      policy.DocumentVersion,
			DimensionKey: "arch_sec",
			Status:       policy.StatusDraft,
			ControlMappings: []controls.Mapping{
				{Framework: controls.FrameworkISO27001, ControlID: "A.5.15", Strength: controls.StrengthFull},
				{Framework: controls.FrameworkNISTCSF, ControlID: "PR.AC-1", Strength: controls.StrengthFull},
			},
			EffectiveDate:    generatedAt,
			ReviewDate:       generatedAt.Add(policy.ReviewPeriod),
			GeneratedFromGap: true,
			SourceSessionID:  "sess-1",
		},
		{
			ID:           "pol-2",
			Title:        "Financial Readiness Policy",
			Version:      policy.DocumentVersion,
			DimensionKey: "finance",
			Status:       policy.StatusDraft,
		},
	}

	b := Bundle{
		ID:                "bundle-1",
		Name:              "Compliance Policy Pack",
		Version:           BundleVersion,
		GeneratedAt:       generatedAt,
		Policies:          docs,
		OPAPolicies:       iac.OPAPoliciesForDimension("arch_sec"),
		TerraformRules:    iac.CombineTerraform(iac.TerraformRulesForDimension("arch_sec")),
		SourceSessionID:   "sess-1",
		ScoreAtGeneration: 42.5,
	}
	b.Readme = RenderReadme(b)
	return b
}

func TestExportStructure_FileSet(t *testing.T) {
	b := testBundle()
	files := ExportStructure(b)

	// README + manifest, two files per document, one per OPA policy plus
	// the combined file, and the feature file.
	want := 2 + 2*len(b.Policies) + len(b.OPAPolicies) + 1 + 1
	if len(files) != want {
		t.Fatalf("got %d files, want %d", len(files), want)
	}

	paths := map[string]string{}
	for _, f := range files {
		if _, dup := paths[f.Path]; dup {
			t.Errorf("duplicate path %s", f.Path)
		}
		paths[f.Path] = f.Content
	}

	for _, p := range []string{
		"README.md",
		"manifest.json",
		"policies/arch_sec/pol-1.md",
		"policies/arch_sec/pol-1.json",
		"policies/finance/pol-2.md",
		"policies/finance/pol-2.json",
		"opa-policies/combined.rego",
		TerraformFeaturePath,
	} {
		if _, ok := paths[p]; !ok {
			t.Errorf("missing expected file %s", p)
		}
	}

	for _, p := range b.OPAPolicies {
		if _, ok := paths["opa-policies/"+p.Name+".rego"]; !ok {
			t.Errorf("missing rego file for %s", p.Name)
		}
	}
}

func TestExportStructure_NoOptionalParts(t *testing.T) {
	b := testBundle()
	b.Policies = nil
	b.OPAPolicies = nil
	b.TerraformRules = ""

	files := ExportStructure(b)
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	for _, f := range files {
		if strings.HasPrefix(f.Path, "opa-policies/") || f.Path == TerraformFeaturePath {
			t.Errorf("unexpected file %s for empty bundle", f.Path)
		}
	}
}

func TestExportStructure_ManifestContents(t *testing.T) {
	b := testBundle()

	var manifestJSON string
	for _, f := range ExportStructure(b) {
		if f.Path == "manifest.json" {
			manifestJSON = f.Content
		}
	}
	if manifestJSON == "" {
		t.Fatal("manifest.json not exported")
	}

	var m struct {
		ID       string `json:"id"`
		Version  string `json:"version"`
		Contents struct {
			Policies       int  `json:"policies"`
			OPAPolicies    int  `json:"opa_policies"`
			TerraformRules bool `json:"terraform_rules"`
		} `json:"contents"`
		ScoreAtGeneration float64 `json:"score_at_generation"`
	}
	if err := json.Unmarshal([]byte(manifestJSON), &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if m.ID != b.ID {
		t.Errorf("id = %s, want %s", m.ID, b.ID)
	}
	if m.Version != BundleVersion {
		t.Errorf("version = %s, want %s", m.Version, BundleVersion)
	}
	if m.Contents.Policies != len(b.Policies) {
		t.Errorf("policies = %d, want %d", m.Contents.Policies, len(b.Policies))
	}
	if m.Contents.OPAPolicies != len(b.OPAPolicies) {
		t.Errorf("opa_policies = %d, want %d", m.Contents.OPAPolicies, len(b.OPAPolicies))
	}
	if !m.Contents.TerraformRules {
		t.Error("terraform_rules = false, want true")
	}
	if m.ScoreAtGeneration != b.ScoreAtGeneration {
		t.Errorf("score = %v, want %v", m.ScoreAtGeneration, b.ScoreAtGeneration)
	}
}

func TestExportStructure_PolicyJSONRoundTrips(t *testing.T) {
	b := testBundle()

	for _, f := range ExportStructure(b) {
		if !strings.HasSuffix(f.Path, ".json") || f.Path == "manifest.json" {
			continue
		}
		var doc policy.Document
		if err := json.Unmarshal([]byte(f.Content), &doc); err != nil {
			t.Errorf("%s: invalid JSON: %v", f.Path, err)
			continue
		}
		if doc.ID == "" || doc.Title == "" {
			t.Errorf("%s: unmarshalled document missing identity", f.Path)
		}
	}
}

func TestRenderReadme(t *testing.T) {
	b := testBundle()
	readme := RenderReadme(b)

	for _, want := range []string{
		"# Compliance Policy Pack",
		"`sess-1`",
		"## Contents",
		"## Policy documents",
		"Security Architecture Policy",
		"## Framework coverage",
		"| ISO 27001 | 2 |",
		"| NIST CSF | 1 |",
		"terraform-compliance -f terraform/features",
		"bundle bundle-1",
	} {
		if !strings.Contains(readme, want) {
			t.Errorf("readme missing %q", want)
		}
	}
}

func TestRenderReadme_NoMappedControls(t *testing.T) {
	b := testBundle()
	for i := range b.Policies {
		b.Policies[i].ControlMappings = nil
	}

	if !strings.Contains(RenderReadme(b), "No framework controls mapped.") {
		t.Error("expected empty-coverage placeholder")
	}
}

func TestRenderPolicyMarkdown(t *testing.T) {
	doc := policy.Document{
		ID:           "pol-1",
		Title:        "Security Architecture Policy",
		Version:      policy.DocumentVersion,
		DimensionKey: "arch_sec",
		Objective:    "Reduce residual risk in security architecture.",
		Scope:        "All production systems.",
		Status:       policy.StatusDraft,
		Statements: []policy.Statement{
			{ID: "st-1", Text: "All data at rest is encrypted.", Level: "SHALL", EvidenceRequired: true},
			{ID: "st-2", Text: "Key rotation is automated.", Level: "SHOULD"},
		},
		Standards: []policy.Standard{
			{
				ID:    "std-1",
				Title: "Encryption Standard",
				Requirements: []policy.Requirement{
					{ID: "req-1", Description: "AES-256 at rest", Specification: "KMS-managed keys", VerificationMethod: "Automated scanning"},
				},
				Procedures: []policy.Procedure{
					{
						ID:        "proc-1",
						Title:     "Key rotation",
						Frequency: "Quarterly",
						Roles:     []string{"Security Engineer"},
						Tools:     []string{"OPA"},
						Steps: []policy.ProcedureStep{
							{Order: 1, Description: "Rotate keys", ResponsibleRole: "Security Engineer"},
						},
					},
				},
			},
		},
		ControlMappings: []controls.Mapping{
			{Framework: controls.FrameworkISO27001, ControlID: "A.8.24", Description: "Use of cryptography", Strength: controls.StrengthFull},
		},
		GeneratedFromGap: true,
		SourceSessionID:  "sess-1",
	}

	md := RenderPolicyMarkdown(doc)
	for _, want := range []string{
		"# Security Architecture Policy",
		"## Objective",
		"## Policy statements",
		"**SHALL** All data at rest is encrypted. *(evidence required)*",
		"**SHOULD** Key rotation is automated.",
		"## Standard: Encryption Standard",
		"### Requirements",
		"### Procedure: Key rotation",
		"1. Rotate keys — *Security Engineer*",
		"## Control mappings",
		"| ISO 27001 | A.8.24 |",
		"Generated from assessment session `sess-1`.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderPolicyMarkdown_NoProvenanceForManualDocs(t *testing.T) {
	doc := policy.Document{ID: "pol-m", Title: "Manual Policy", Status: policy.StatusDraft}

	if strings.Contains(RenderPolicyMarkdown(doc), "Generated from assessment session") {
		t.Error("manual document should not carry session provenance")
	}
}
