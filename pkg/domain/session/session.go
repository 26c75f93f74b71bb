// Package session defines the read model for assessment sessions as served
// by the session/answer store. The shapes mirror the stored representation:
// coverage and severity are pointers because legacy records may omit them.
package session

// Dimension is one of the fixed readiness categories that groups questions.
type Dimension struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// Question is a weighted questionnaire item.
//
// StandardRefs holds either a JSON array string or a comma-separated list;
// both forms occur in stored data and must keep parsing.
type Question struct {
	ID                 string    `json:"id" yaml:"id"`
	Text               string    `json:"text" yaml:"text"`
	SeverityWeight     *float64  `json:"severityWeight,omitempty" yaml:"severity_weight,omitempty"`
	BestPractice       string    `json:"bestPractice,omitempty" yaml:"best_practice,omitempty"`
	PracticalExplainer string    `json:"practicalExplainer,omitempty" yaml:"practical_explainer,omitempty"`
	StandardRefs       string    `json:"standardRefs,omitempty" yaml:"standard_refs,omitempty"`
	Dimension          Dimension `json:"dimension" yaml:"dimension"`
}

// Answer is a user's response to one question, with the coverage the
// platform assigned to it. A nil Coverage reads as zero.
type Answer struct {
	Coverage    *float64 `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	Question    Question `json:"question" yaml:"question"`
	AnswerValue string   `json:"answerValue,omitempty" yaml:"answer_value,omitempty"`
	Notes       string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Session is a questionnaire run with its answers and the readiness score
// computed by the scoring engine at last save.
type Session struct {
	ID             string   `json:"id" yaml:"id"`
	Answers        []Answer `json:"answers" yaml:"answers"`
	ReadinessScore float64  `json:"readinessScore" yaml:"readiness_score"`
}

// CoverageOrZero returns the answer's coverage, defaulting to 0 when unset.
func (a Answer) CoverageOrZero() float64 {
	if a.Coverage == nil {
		return 0
	}
	return *a.Coverage
}

// SeverityOrDefault returns the question's severity weight, defaulting to
// 0.5 when unset.
func (q Question) SeverityOrDefault() float64 {
	if q.SeverityWeight == nil {
		return 0.5
	}
	return *q.SeverityWeight
}
