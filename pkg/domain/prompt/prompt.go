// Package prompt generates Quest-Mode remediation prompts from gaps and
// their dimension templates, and assembles them into priority-ordered
// batches. Generation is a pure function of (gap, template); prompts are
// immutable once produced.
package prompt

import (
	"sort"
	"time"
)

// Task is one ordered remediation step inside a prompt.
type Task struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// Prompt is a structured remediation task generated for one gap.
type Prompt struct {
	ID                   string    `json:"id"`
	DimensionKey         string    `json:"dimension_key"`
	QuestionID           string    `json:"question_id"`
	Goal                 string    `json:"goal"`
	Tasks                []Task    `json:"tasks"`
	AcceptanceCriteria   []string  `json:"acceptance_criteria"`
	Constraints          []string  `json:"constraints"`
	Deliverables         []string  `json:"deliverables"`
	Priority             Priority  `json:"priority"`
	EstimatedEffortHours int       `json:"estimated_effort_hours"`
	EvidenceType         string    `json:"evidence_type"`
	Tags                 []string  `json:"tags"`
	GeneratedAt          time.Time `json:"generated_at"`
}

// Batch is the ordered result of generating prompts for a whole session.
type Batch struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	Prompts           []Prompt  `json:"prompts"`
	TotalEffortHours  int       `json:"total_effort_hours"`
	DimensionsCovered []string  `json:"dimensions_covered"`
	ScoreAtGeneration float64   `json:"score_at_generation"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// NewBatch orders prompts by priority ascending (most urgent first, stable
// for equal priorities) and computes the batch aggregates.
func NewBatch(id, sessionID string, prompts []Prompt, score float64, now time.Time) Batch {
	sorted := make([]Prompt, len(prompts))
	copy(sorted, prompts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	total := 0
	seen := map[string]bool{}
	dimensions := []string{}
	for _, p := range sorted {
		total += p.EstimatedEffortHours
		if !seen[p.DimensionKey] {
			seen[p.DimensionKey] = true
			dimensions = append(dimensions, p.DimensionKey)
		}
	}

	return Batch{
		ID:                id,
		SessionID:         sessionID,
		Prompts:           sorted,
		TotalEffortHours:  total,
		DimensionsCovered: dimensions,
		ScoreAtGeneration: score,
		GeneratedAt:       now,
	}
}
