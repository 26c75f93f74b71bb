package storage

import (
	"context"
	"sync"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/session"
)

// MemoryRepository is an in-memory session and audit store for tests and
// embedding callers that bring their own session data.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	events   []domain.Event
}

var (
	_ domain.SessionRepository = (*MemoryRepository)(nil)
	_ domain.AuditRepository   = (*MemoryRepository)(nil)
)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: map[string]*session.Session{}}
}

// PutSession stores or replaces a session.
func (r *MemoryRepository) PutSession(s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *MemoryRepository) GetSession(_ context.Context, id domain.SessionID) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id.String()], nil
}

func (r *MemoryRepository) ListSessions(_ context.Context) ([]domain.SessionID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]domain.SessionID, 0, len(r.sessions))
	for k := range r.sessions {
		id, err := domain.NewSessionID(k)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *MemoryRepository) RecordEvent(event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *MemoryRepository) LoadEvents() ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}
