package bundle

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/iac"
	"github.com/quiz2biz/quiz2biz/pkg/domain/policy"
)

// TerraformFeaturePath is where the combined feature text lands in an
// export. The path is part of the export contract.
const TerraformFeaturePath = "terraform/features/quiz2biz.feature"

// ExportStructure flattens a bundle into its exportable file set:
// README.md, manifest.json, one markdown and one JSON file per policy
// document (namespaced by dimension), one Rego file per OPA policy plus a
// combined file, and a Terraform feature file when any rules were
// selected.
func ExportStructure(b Bundle) []File {
	files := []File{
		{Path: "README.md", Content: b.Readme},
		{Path: "manifest.json", Content: renderManifest(b)},
	}

	for _, doc := range b.Policies {
		base := fmt.Sprintf("policies/%s/%s", doc.DimensionKey, doc.ID)
		files = append(files, File{Path: base + ".md", Content: RenderPolicyMarkdown(doc)})

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			// Document trees are plain data; marshalling cannot fail for
			// them, but keep the export total-function anyway.
			data = []byte("{}")
		}
		files = append(files, File{Path: base + ".json", Content: string(data)})
	}

	if len(b.OPAPolicies) > 0 {
		for _, p := range b.OPAPolicies {
			files = append(files, File{
				Path:    fmt.Sprintf("opa-policies/%s.rego", p.Name),
				Content: p.Rego,
			})
		}
		files = append(files, File{
			Path:    "opa-policies/combined.rego",
			Content: iac.CombineOPA(b.OPAPolicies),
		})
	}

	if b.TerraformRules != "" {
		files = append(files, File{Path: TerraformFeaturePath, Content: b.TerraformRules})
	}

	return files
}

type manifest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Version         string `json:"version"`
	GeneratedAt     string `json:"generated_at"`
	SourceSessionID string `json:"source_session_id"`
	Contents        struct {
		Policies       int  `json:"policies"`
		OPAPolicies    int  `json:"opa_policies"`
		TerraformRules bool `json:"terraform_rules"`
	} `json:"contents"`
	ScoreAtGeneration float64 `json:"score_at_generation"`
}

func renderManifest(b Bundle) string {
	m := manifest{
		ID:                b.ID,
		Name:              b.Name,
		Version:           b.Version,
		GeneratedAt:       b.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		SourceSessionID:   b.SourceSessionID,
		ScoreAtGeneration: b.ScoreAtGeneration,
	}
	m.Contents.Policies = len(b.Policies)
	m.Contents.OPAPolicies = len(b.OPAPolicies)
	m.Contents.TerraformRules = b.TerraformRules != ""

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// RenderReadme builds the human-readable bundle README: contents listing,
// usage instructions for the OPA and terraform-compliance outputs, a
// framework → control-count table, and a provenance footer.
func RenderReadme(b Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Name)
	fmt.Fprintf(&sb, "Compliance policy pack generated from assessment session `%s`.\n", b.SourceSessionID)
	fmt.Fprintf(&sb, "Readiness score at generation: %.1f\n\n", b.ScoreAtGeneration)

	sb.WriteString("## Contents\n\n")
	fmt.Fprintf(&sb, "- %d policy document(s) under `policies/`\n", len(b.Policies))
	fmt.Fprintf(&sb, "- %d OPA policy file(s) under `opa-policies/`\n", len(b.OPAPolicies))
	if b.TerraformRules != "" {
		fmt.Fprintf(&sb, "- terraform-compliance features under `%s`\n", TerraformFeaturePath)
	}
	sb.WriteString("\n")

	if len(b.Policies) > 0 {
		sb.WriteString("## Policy documents\n\n")
		for _, doc := range b.Policies {
			fmt.Fprintf(&sb, "- **%s** (`%s`) — status %s, review due %s\n",
				doc.Title, doc.DimensionKey, doc.Status, doc.ReviewDate.Format("2006-01-02"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Framework coverage\n\n")
	sb.WriteString(renderCoverageTable(b.Policies))
	sb.WriteString("\n")

	sb.WriteString("## Using the machine-checkable rules\n\n")
	sb.WriteString("OPA: `opa eval -d opa-policies/ -i input.json 'data.quiz2biz'`\n\n")
	sb.WriteString("terraform-compliance: `terraform-compliance -f terraform/features -p plan.out`\n\n")
	sb.WriteString("These rules are advisory templates. Review and adapt them to your\ninfrastructure before enforcing them in a pipeline.\n\n")

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Generated %s by quiz2biz (bundle %s, v%s).\n",
		b.GeneratedAt.Format("2006-01-02 15:04 UTC"), b.ID, b.Version)

	return sb.String()
}

// renderCoverageTable counts mapped controls per framework across all
// policy documents in the bundle.
func renderCoverageTable(docs []policy.Document) string {
	counts := map[controls.Framework]int{}
	for _, doc := range docs {
		for _, m := range doc.ControlMappings {
			counts[m.Framework]++
		}
	}

	if len(counts) == 0 {
		return "No framework controls mapped.\n"
	}

	frameworks := make([]string, 0, len(counts))
	for fw := range counts {
		frameworks = append(frameworks, string(fw))
	}
	sort.Strings(frameworks)

	var sb strings.Builder
	sb.WriteString("| Framework | Mapped controls |\n")
	sb.WriteString("|---|---|\n")
	for _, fw := range frameworks {
		fmt.Fprintf(&sb, "| %s | %d |\n", fw, counts[controls.Framework(fw)])
	}
	return sb.String()
}

// RenderPolicyMarkdown renders one policy document for human review.
func RenderPolicyMarkdown(doc policy.Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Title)
	fmt.Fprintf(&sb, "| | |\n|---|---|\n| Version | %s |\n| Status | %s |\n| Owner | %s |\n| Effective | %s |\n| Review due | %s |\n\n",
		doc.Version, doc.Status, doc.Owner,
		doc.EffectiveDate.Format("2006-01-02"), doc.ReviewDate.Format("2006-01-02"))

	fmt.Fprintf(&sb, "## Objective\n\n%s\n\n", doc.Objective)
	fmt.Fprintf(&sb, "## Scope\n\n%s\n\n", doc.Scope)

	if len(doc.Statements) > 0 {
		sb.WriteString("## Policy statements\n\n")
		for i, st := range doc.Statements {
			evidence := ""
			if st.EvidenceRequired {
				evidence = " *(evidence required)*"
			}
			fmt.Fprintf(&sb, "%d. **%s** %s%s\n", i+1, st.Level, st.Text, evidence)
		}
		sb.WriteString("\n")
	}

	for _, std := range doc.Standards {
		fmt.Fprintf(&sb, "## Standard: %s\n\n", std.Title)

		if len(std.Requirements) > 0 {
			sb.WriteString("### Requirements\n\n")
			for _, r := range std.Requirements {
				fmt.Fprintf(&sb, "- %s\n  - Specification: %s\n  - Verification: %s\n",
					r.Description, r.Specification, r.VerificationMethod)
			}
			sb.WriteString("\n")
		}

		for _, proc := range std.Procedures {
			fmt.Fprintf(&sb, "### Procedure: %s\n\n", proc.Title)
			fmt.Fprintf(&sb, "Frequency: %s  \nRoles: %s  \nTools: %s\n\n",
				proc.Frequency, strings.Join(proc.Roles, ", "), strings.Join(proc.Tools, ", "))
			for _, step := range proc.Steps {
				fmt.Fprintf(&sb, "%d. %s — *%s*\n", step.Order, step.Description, step.ResponsibleRole)
			}
			sb.WriteString("\n")
		}
	}

	if len(doc.ControlMappings) > 0 {
		sb.WriteString("## Control mappings\n\n")
		sb.WriteString("| Framework | Control | Description | Strength |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, m := range doc.ControlMappings {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", m.Framework, m.ControlID, m.Description, m.Strength)
		}
		sb.WriteString("\n")
	}

	if doc.GeneratedFromGap {
		fmt.Fprintf(&sb, "---\n\nGenerated from assessment session `%s`.\n", doc.SourceSessionID)
	}

	return sb.String()
}
