package domain

import (
	"context"

	"github.com/quiz2biz/quiz2biz/pkg/domain/session"
)

// SessionRepository provides read access to assessment sessions and their
// answers. The generation core never writes session state; persistence and
// its storage engine belong to the surrounding system.
//
// GetSession returns (nil, nil) for an unknown session ID. An error is
// reserved for data-access failures (unreadable store, malformed file),
// which callers surface to the API layer unchanged.
type SessionRepository interface {
	GetSession(ctx context.Context, id SessionID) (*session.Session, error)
	ListSessions(ctx context.Context) ([]SessionID, error)
}
