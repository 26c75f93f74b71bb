package prompt

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

// maxRefTags caps how many standard-reference slugs end up in the tag set.
const maxRefTags = 3

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Generate produces one prompt from a gap and its dimension template. It
// has no side effects: the same gap and template always yield the same
// prompt apart from ID and timestamp.
func Generate(g gap.Gap, t template.PromptTemplate) Prompt {
	return generateAt(g, t, uuid.New().String(), time.Now().UTC())
}

func generateAt(g gap.Gap, t template.PromptTemplate, id string, now time.Time) Prompt {
	tokens := template.TokensForGap(g)

	tasks := []Task{}
	order := 1
	for _, tt := range t.Tasks {
		if tt.Condition != nil && !tt.Condition.Evaluate(g) {
			continue
		}
		tasks = append(tasks, Task{
			Order:       order,
			Description: template.Interpolate(tt.Description, tokens),
		})
		order++
	}

	return Prompt{
		ID:                   id,
		DimensionKey:         g.DimensionKey,
		QuestionID:           g.QuestionID,
		Goal:                 template.Interpolate(t.Goal, tokens),
		Tasks:                tasks,
		AcceptanceCriteria:   template.InterpolateAll(t.AcceptanceCriteria, tokens),
		Constraints:          template.InterpolateAll(t.Constraints, tokens),
		Deliverables:         template.InterpolateAll(t.Deliverables, tokens),
		Priority:             ForResidualRisk(g.ResidualRisk),
		EstimatedEffortHours: EstimateEffort(t.BaseEffortHours, g.SeverityWeight),
		EvidenceType:         t.EvidenceType,
		Tags:                 buildTags(g, t),
		GeneratedAt:          now,
	}
}

// buildTags assembles the de-duplicated tag set: dimension key, lowercased
// evidence type, urgency tag for the top two bands, and up to three
// sanitized standard-reference slugs.
func buildTags(g gap.Gap, t template.PromptTemplate) []string {
	tags := []string{}
	seen := map[string]bool{}
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	add(g.DimensionKey)
	add(strings.ToLower(t.EvidenceType))

	switch ForResidualRisk(g.ResidualRisk) {
	case PriorityCritical:
		add("critical")
	case PriorityHigh:
		add("high-priority")
	}

	count := 0
	for _, ref := range g.StandardRefs {
		if count >= maxRefTags {
			break
		}
		if slug := slugify(ref); slug != "" {
			add(slug)
			count++
		}
	}

	return tags
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
