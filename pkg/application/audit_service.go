package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
)

type AuditService struct {
	repo domain.AuditRepository
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(repo domain.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]interface{}) error {
	// Get the latest event to continue the hash chain
	events, _ := s.repo.LoadEvents()
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	return s.repo.RecordEvent(event)
}

func (s *AuditService) GetTimeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}

// VerifyIntegrity walks the event chain and reports every broken link or
// tampered event.
func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}

	var violations []string
	lastHash := ""

	for i, e := range events {
		if e.PrevHash != lastHash {
			violations = append(violations, fmt.Sprintf("Event %d (%s): PrevHash mismatch. Audit trail broken.", i, e.ID))
		}
		if e.CalculateHash() != e.Hash {
			violations = append(violations, fmt.Sprintf("Event %d (%s): content hash mismatch. Event modified.", i, e.ID))
		}
		lastHash = e.Hash
	}

	return violations, nil
}

// NopAuditLogger discards events. Used where no audit trail is configured.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(string, string, map[string]interface{}) error { return nil }
