// Package gap computes per-question residual risk from questionnaire
// answers and ranks the resulting gaps. A gap is any answer whose coverage
// is below 1.0; it is recomputed from current answer state on every request
// and never persisted here.
package gap

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/quiz2biz/quiz2biz/pkg/domain/session"
)

// HighPriorityThreshold is the residual risk above which a gap counts as
// high priority in summaries.
const HighPriorityThreshold = 0.15

// Gap is one underserved questionnaire answer.
type Gap struct {
	SessionID          string   `json:"session_id"`
	DimensionKey       string   `json:"dimension_key"`
	DimensionName      string   `json:"dimension_name"`
	QuestionID         string   `json:"question_id"`
	QuestionText       string   `json:"question_text"`
	Coverage           float64  `json:"coverage"`
	SeverityWeight     float64  `json:"severity_weight"`
	ResidualRisk       float64  `json:"residual_risk"`
	BestPractice       string   `json:"best_practice,omitempty"`
	PracticalExplainer string   `json:"practical_explainer,omitempty"`
	StandardRefs       []string `json:"standard_refs,omitempty"`
	AnswerValue        string   `json:"answer_value,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// ResidualRisk computes severity × (1 − coverage), clamped to [0,1].
func ResidualRisk(severity, coverage float64) float64 {
	r := severity * (1 - coverage)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// FromAnswer builds a Gap from an answer, or reports false when the answer
// is fully covered and produces no gap.
func FromAnswer(sessionID string, a session.Answer) (Gap, bool) {
	coverage := a.CoverageOrZero()
	if coverage >= 1.0 {
		return Gap{}, false
	}

	severity := a.Question.SeverityOrDefault()
	q := a.Question

	return Gap{
		SessionID:          sessionID,
		DimensionKey:       q.Dimension.Key,
		DimensionName:      q.Dimension.Name,
		QuestionID:         q.ID,
		QuestionText:       q.Text,
		Coverage:           coverage,
		SeverityWeight:     severity,
		ResidualRisk:       ResidualRisk(severity, coverage),
		BestPractice:       q.BestPractice,
		PracticalExplainer: q.PracticalExplainer,
		StandardRefs:       ParseStandardRefs(q.StandardRefs),
		AnswerValue:        a.AnswerValue,
		Notes:              a.Notes,
	}, true
}

// FromSession builds the ranked gap list for a session: one Gap per answer
// with coverage < 1.0, sorted descending by residual risk.
func FromSession(s *session.Session) []Gap {
	if s == nil {
		return []Gap{}
	}

	gaps := make([]Gap, 0, len(s.Answers))
	for _, a := range s.Answers {
		if g, ok := FromAnswer(s.ID, a); ok {
			gaps = append(gaps, g)
		}
	}
	Rank(gaps)
	return gaps
}

// Rank sorts gaps in place, descending by residual risk. The sort is
// stable so equal-risk gaps keep their answer order.
func Rank(gaps []Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].ResidualRisk > gaps[j].ResidualRisk
	})
}

// ParseStandardRefs parses the stored standard-references field. The store
// holds either a JSON array string or a comma-separated list; both formats
// must keep working against existing question records. Malformed input
// falls back to comma-splitting and never errors.
func ParseStandardRefs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var refs []string
	if err := json.Unmarshal([]byte(raw), &refs); err == nil {
		out := make([]string, 0, len(refs))
		for _, r := range refs {
			if r = strings.TrimSpace(r); r != "" {
				out = append(out, r)
			}
		}
		return out
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Summary aggregates a gap list for reporting.
type Summary struct {
	Total             int            `json:"total"`
	ByDimension       map[string]int `json:"by_dimension"`
	HighPriority      int            `json:"high_priority"`
	TotalResidualRisk float64        `json:"total_residual_risk"`
}

// Summarize computes gap counts per dimension, the number of high-priority
// gaps (residual risk above HighPriorityThreshold), and total residual risk.
func Summarize(gaps []Gap) Summary {
	s := Summary{ByDimension: map[string]int{}}
	for _, g := range gaps {
		s.Total++
		s.ByDimension[g.DimensionKey]++
		if g.ResidualRisk > HighPriorityThreshold {
			s.HighPriority++
		}
		s.TotalResidualRisk += g.ResidualRisk
	}
	return s
}
