package domain

import (
	"context"
	"time"
)

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions that expired at or before now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
