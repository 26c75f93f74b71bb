// Package iac holds the static, dimension-keyed catalogs of
// infrastructure-as-code validation rules shipped with policy packs. The
// rules are advisory templates: nothing here evaluates them, and the only
// validation applied is a best-effort Rego sanity check.
package iac

import (
	"fmt"
	"strings"
)

// OPATestCase is an optional self-test shipped alongside a Rego policy.
type OPATestCase struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	WantDeny bool   `json:"want_deny"`
}

// OPAPolicy is one catalog entry of embedded Rego source.
type OPAPolicy struct {
	Name         string        `json:"name"`
	DimensionKey string        `json:"dimension_key"`
	ResourceType string        `json:"resource_type"`
	Severity     string        `json:"severity"`
	Rego         string        `json:"rego"`
	TestCases    []OPATestCase `json:"test_cases,omitempty"`
}

// OPAPoliciesForDimension returns the catalog subset for a dimension key.
func OPAPoliciesForDimension(dimensionKey string) []OPAPolicy {
	var out []OPAPolicy
	for _, p := range opaCatalog {
		if p.DimensionKey == dimensionKey {
			out = append(out, p)
		}
	}
	return out
}

// AllOPAPolicies returns the full OPA catalog.
func AllOPAPolicies() []OPAPolicy {
	out := make([]OPAPolicy, len(opaCatalog))
	copy(out, opaCatalog)
	return out
}

// CombineOPA renders the selected policies into one blob: a header comment
// block followed by each policy's source, separated by "---" lines. String
// concatenation only; rule bodies pass through untouched.
func CombineOPA(policies []OPAPolicy) string {
	if len(policies) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Combined OPA policy bundle\n")
	fmt.Fprintf(&b, "# Policies: %d\n", len(policies))
	b.WriteString("# Generated by quiz2biz; review before enforcement.\n\n")

	for i, p := range policies {
		if i > 0 {
			b.WriteString("\n# ---\n\n")
		}
		fmt.Fprintf(&b, "# %s (severity: %s, resource: %s)\n", p.Name, p.Severity, p.ResourceType)
		b.WriteString(strings.TrimSpace(p.Rego))
		b.WriteString("\n")
	}
	return b.String()
}

// CheckRego performs a best-effort sanity check on embedded Rego source:
// a package declaration and at least one deny/allow/violation rule head.
// It does not parse Rego.
func CheckRego(src string) error {
	hasPackage := false
	hasRule := false
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "package ") {
			hasPackage = true
		}
		if strings.HasPrefix(trimmed, "deny[") || strings.HasPrefix(trimmed, "allow[") ||
			strings.HasPrefix(trimmed, "violation[") ||
			strings.HasPrefix(trimmed, "deny contains ") || strings.HasPrefix(trimmed, "violation contains ") {
			hasRule = true
		}
	}
	if !hasPackage {
		return fmt.Errorf("rego source missing package declaration")
	}
	if !hasRule {
		return fmt.Errorf("rego source has no deny/allow/violation rule")
	}
	return nil
}
