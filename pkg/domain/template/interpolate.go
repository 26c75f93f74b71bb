package template

import (
	"fmt"
	"strings"

	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
)

// TokenMap is the closed set of substitution values for one interpolation.
// Keys without a {{key}} occurrence in the template are ignored; {{token}}
// occurrences without a key are left verbatim.
type TokenMap map[string]string

// Token keys recognised by the built-in templates.
const (
	TokenDimension    = "dimension"
	TokenCoverage     = "coverage"
	TokenSeverity     = "severity"
	TokenResidualRisk = "residual_risk"
	TokenBestPractice = "best_practice"
	TokenExplainer    = "explainer"
	TokenStandardRefs = "standard_refs"
	TokenAnswer       = "answer"
	TokenNotes        = "notes"
)

// Interpolate replaces every literal {{key}} occurrence with its mapped
// value in a single left-to-right pass. Unmatched tokens stay unchanged,
// substituted values are never rescanned, and interpolation never fails.
func Interpolate(tmpl string, tokens TokenMap) string {
	if len(tokens) == 0 || !strings.Contains(tmpl, "{{") {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	for {
		start := strings.Index(tmpl, "{{")
		if start < 0 {
			b.WriteString(tmpl)
			break
		}
		end := strings.Index(tmpl[start:], "}}")
		if end < 0 {
			b.WriteString(tmpl)
			break
		}
		end += start

		value, ok := tokens[tmpl[start+2:end]]
		if !ok {
			// Unknown token: emit the opening braces and keep scanning
			// right after them.
			b.WriteString(tmpl[:start+2])
			tmpl = tmpl[start+2:]
			continue
		}
		b.WriteString(tmpl[:start])
		b.WriteString(value)
		tmpl = tmpl[end+2:]
	}
	return b.String()
}

// InterpolateAll applies Interpolate to each template in order.
func InterpolateAll(tmpls []string, tokens TokenMap) []string {
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = Interpolate(t, tokens)
	}
	return out
}

// TokensForGap builds the substitution context for a gap. Formatting rules
// are part of the output contract: coverage renders as a whole percentage,
// severity and residual risk with two decimals, empty standard refs as
// "industry best practices", missing answer as "Not provided" and missing
// notes as "None".
func TokensForGap(g gap.Gap) TokenMap {
	refs := "industry best practices"
	if len(g.StandardRefs) > 0 {
		refs = strings.Join(g.StandardRefs, ", ")
	}

	answer := g.AnswerValue
	if answer == "" {
		answer = "Not provided"
	}

	notes := g.Notes
	if notes == "" {
		notes = "None"
	}

	return TokenMap{
		TokenDimension:    g.DimensionName,
		TokenCoverage:     fmt.Sprintf("%.0f%%", g.Coverage*100),
		TokenSeverity:     fmt.Sprintf("%.2f", g.SeverityWeight),
		TokenResidualRisk: fmt.Sprintf("%.2f", g.ResidualRisk),
		TokenBestPractice: g.BestPractice,
		TokenExplainer:    g.PracticalExplainer,
		TokenStandardRefs: refs,
		TokenAnswer:       answer,
		TokenNotes:        notes,
	}
}
