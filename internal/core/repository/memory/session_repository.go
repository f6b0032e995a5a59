package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// SessionRepository keeps sessions in process memory. Sessions are lost on restart.
type SessionRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{byID: make(map[string]domain.Session)}
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	if s == nil || strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = *s
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.byID {
		if s.Expired(now) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
