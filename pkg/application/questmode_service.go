// Package application wires the generation pipeline together: it reads
// sessions from the external store, computes gap contexts, and drives the
// prompt and policy generators. Services here are read-mostly; the only
// new state they produce is the returned batch or bundle.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/prompt"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
)

// QuestModeService generates remediation prompt batches from a session's
// gaps.
type QuestModeService struct {
	sessions domain.SessionRepository
	registry *template.Registry
	audit    domain.AuditLogger
}

func NewQuestModeService(sessions domain.SessionRepository, registry *template.Registry, audit domain.AuditLogger) *QuestModeService {
	if audit == nil {
		audit = NopAuditLogger{}
	}
	return &QuestModeService{
		sessions: sessions,
		registry: registry,
		audit:    audit,
	}
}

// BuildGapContexts computes the ranked gap list for a session. An unknown
// session yields an empty list, not an error: no data means no gaps. A
// store failure propagates unchanged.
func (s *QuestModeService) BuildGapContexts(ctx context.Context, sessionID domain.SessionID) ([]gap.Gap, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return gap.FromSession(sess), nil
}

// GapSummary aggregates a session's gaps for reporting.
func (s *QuestModeService) GapSummary(ctx context.Context, sessionID domain.SessionID) (gap.Summary, error) {
	gaps, err := s.BuildGapContexts(ctx, sessionID)
	if err != nil {
		return gap.Summary{}, err
	}
	return gap.Summarize(gaps), nil
}

// GeneratePromptsForSession builds gaps, generates one prompt per gap
// whose dimension has a template, and returns the priority-ordered batch.
// Gaps in unmapped dimensions are logged and skipped; the batch simply
// excludes them.
func (s *QuestModeService) GeneratePromptsForSession(ctx context.Context, sessionID domain.SessionID) (*prompt.Batch, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	gaps := gap.FromSession(sess)

	prompts := make([]prompt.Prompt, 0, len(gaps))
	for _, g := range gaps {
		tmpl, ok := s.registry.Prompt(g.DimensionKey)
		if !ok {
			_ = s.audit.Log("prompts.gap_skipped", "system", map[string]interface{}{
				"session_id":    sessionID.String(),
				"dimension_key": g.DimensionKey,
				"question_id":   g.QuestionID,
			})
			continue
		}
		prompts = append(prompts, prompt.Generate(g, tmpl))
	}

	score := 0.0
	if sess != nil {
		score = sess.ReadinessScore
	}

	batch := prompt.NewBatch(uuid.New().String(), sessionID.String(), prompts, score, time.Now().UTC())

	_ = s.audit.Log("prompts.generated", "system", map[string]interface{}{
		"session_id":   sessionID.String(),
		"batch_id":     batch.ID,
		"prompts":      len(batch.Prompts),
		"total_effort": batch.TotalEffortHours,
	})

	return &batch, nil
}

// GeneratePromptForGap generates a single prompt, or reports false when
// the gap's dimension has no template.
func (s *QuestModeService) GeneratePromptForGap(g gap.Gap) (*prompt.Prompt, bool) {
	tmpl, ok := s.registry.Prompt(g.DimensionKey)
	if !ok {
		return nil, false
	}
	p := prompt.Generate(g, tmpl)
	return &p, true
}

// AvailableTemplates returns all prompt templates, sorted by dimension.
func (s *QuestModeService) AvailableTemplates() []template.PromptTemplate {
	return s.registry.Prompts()
}
