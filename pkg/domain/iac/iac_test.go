package iac

import (
	"strings"
	"testing"
)

func TestOPAPoliciesForDimension(t *testing.T) {
	tests := []struct {
		dimension string
		want      int
	}{
		{"arch_sec", 2},
		{"devops_iac", 2},
		{"privacy_legal", 1},
		{"service_ops", 1},
		{"data_ai", 1},
		{"finance", 0},
		{"nonexistent", 0},
	}

	for _, tt := range tests {
		t.Run(tt.dimension, func(t *testing.T) {
			got := OPAPoliciesForDimension(tt.dimension)
			if len(got) != tt.want {
				t.Errorf("got %d policies, want %d", len(got), tt.want)
			}
			for _, p := range got {
				if p.DimensionKey != tt.dimension {
					t.Errorf("policy %s has dimension %s", p.Name, p.DimensionKey)
				}
			}
		})
	}
}

func TestAllOPAPolicies_CatalogIsValidRego(t *testing.T) {
	policies := AllOPAPolicies()
	if len(policies) == 0 {
		t.Fatal("empty OPA catalog")
	}
	for _, p := range policies {
		if err := CheckRego(p.Rego); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestAllOPAPolicies_ReturnsCopy(t *testing.T) {
	first := AllOPAPolicies()
	first[0].Name = "mutated"

	if AllOPAPolicies()[0].Name == "mutated" {
		t.Error("catalog mutated through returned slice")
	}
}

func TestCombineOPA(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := CombineOPA(nil); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("single policy", func(t *testing.T) {
		policies := OPAPoliciesForDimension("privacy_legal")
		combined := CombineOPA(policies)

		if !strings.Contains(combined, "# Combined OPA policy bundle") {
			t.Error("missing header")
		}
		if !strings.Contains(combined, "# Policies: 1") {
			t.Error("missing policy count")
		}
		if strings.Contains(combined, "# ---") {
			t.Error("separator present for single policy")
		}
	})

	t.Run("multiple policies separated", func(t *testing.T) {
		policies := OPAPoliciesForDimension("arch_sec")
		combined := CombineOPA(policies)

		if got := strings.Count(combined, "# ---"); got != len(policies)-1 {
			t.Errorf("got %d separators, want %d", got, len(policies)-1)
		}
		for _, p := range policies {
			if !strings.Contains(combined, strings.TrimSpace(p.Rego)) {
				t.Errorf("combined output missing rego for %s", p.Name)
			}
		}
	})
}

func TestCheckRego(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "deny rule",
			src:  "package terraform.storage\n\ndeny[msg] {\n\ttrue\n}\n",
		},
		{
			name: "deny contains rule",
			src:  "package terraform.network\n\ndeny contains msg if {\n\ttrue\n}\n",
		},
		{
			name: "violation rule",
			src:  "package terraform.tags\n\nviolation[msg] {\n\ttrue\n}\n",
		},
		{
			name:    "missing package",
			src:     "deny[msg] {\n\ttrue\n}\n",
			wantErr: true,
		},
		{
			name:    "no rule head",
			src:     "package terraform.storage\n\ndefault encrypted = false\n",
			wantErr: true,
		},
		{
			name:    "empty source",
			src:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRego(tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRego() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTerraformRulesForDimension(t *testing.T) {
	tests := []struct {
		dimension string
		want      int
	}{
		{"arch_sec", 2},
		{"devops_iac", 1},
		{"service_ops", 1},
		{"privacy_legal", 1},
		{"finance", 0},
	}

	for _, tt := range tests {
		t.Run(tt.dimension, func(t *testing.T) {
			got := TerraformRulesForDimension(tt.dimension)
			if len(got) != tt.want {
				t.Errorf("got %d rules, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTerraformCatalog_FeaturesWellFormed(t *testing.T) {
	for _, r := range AllTerraformRules() {
		if !strings.Contains(r.Feature, "Feature:") {
			t.Errorf("%s: feature text missing Feature: header", r.Name)
		}
		if !strings.Contains(r.Feature, "Scenario:") {
			t.Errorf("%s: feature text missing Scenario: block", r.Name)
		}
	}
}

func TestCombineTerraform(t *testing.T) {
	if got := CombineTerraform(nil); got != "" {
		t.Errorf("expected empty string for no rules, got %q", got)
	}

	rules := TerraformRulesForDimension("arch_sec")
	combined := CombineTerraform(rules)

	if !strings.Contains(combined, "# terraform-compliance feature set") {
		t.Error("missing header")
	}
	if !strings.Contains(combined, "# Rules: 2") {
		t.Error("missing rule count")
	}
	for _, r := range rules {
		if !strings.Contains(combined, strings.TrimSpace(r.Feature)) {
			t.Errorf("combined output missing feature for %s", r.Name)
		}
	}
}
