package iac

import (
	"fmt"
	"strings"
)

// TerraformRule is one catalog entry of Gherkin-style feature text for
// terraform-compliance.
type TerraformRule struct {
	Name         string `json:"name"`
	DimensionKey string `json:"dimension_key"`
	ResourceType string `json:"resource_type"`
	Feature      string `json:"feature"`
}

// TerraformRulesForDimension returns the catalog subset for a dimension key.
func TerraformRulesForDimension(dimensionKey string) []TerraformRule {
	var out []TerraformRule
	for _, r := range terraformCatalog {
		if r.DimensionKey == dimensionKey {
			out = append(out, r)
		}
	}
	return out
}

// AllTerraformRules returns the full Terraform rule catalog.
func AllTerraformRules() []TerraformRule {
	out := make([]TerraformRule, len(terraformCatalog))
	copy(out, terraformCatalog)
	return out
}

// CombineTerraform renders the selected rules as sequential feature blocks
// under a single header comment.
func CombineTerraform(rules []TerraformRule) string {
	if len(rules) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("# terraform-compliance feature set\n")
	fmt.Fprintf(&b, "# Rules: %d\n", len(rules))
	b.WriteString("# Run with: terraform-compliance -f terraform/features -p <plan file>\n\n")

	for i, r := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(r.Feature))
		b.WriteString("\n")
	}
	return b.String()
}
