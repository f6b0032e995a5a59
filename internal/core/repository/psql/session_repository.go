package psql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// SessionRepository implements domain.SessionRepository on PostgreSQL.
// The actor profile is stored as JSONB so a restart keeps people signed in.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type profile struct {
	Admin *domain.Admin `json:"admin,omitempty"`
	User  *domain.User  `json:"user,omitempty"`
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	raw, err := sonic.Marshal(profile{Admin: s.Admin, User: s.User})
	if err != nil {
		return fmt.Errorf("encode session profile: %w", err)
	}
	var expires sql.NullTime
	if !s.ExpiresAt.IsZero() {
		expires = sql.NullTime{Time: s.ExpiresAt, Valid: true}
	}

	query := `INSERT INTO console_sessions (id, kind, access_token, profile, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET access_token = EXCLUDED.access_token, profile = EXCLUDED.profile, expires_at = EXCLUDED.expires_at`
	if _, err := r.db.ExecContext(ctx, query, s.ID, string(s.Kind), s.AccessToken, string(raw), expires, s.CreatedAt); err != nil {
		return fmt.Errorf("save session %q: %w", s.ID, err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT kind, access_token, profile, expires_at, created_at FROM console_sessions WHERE id = $1`

	var (
		s       = domain.Session{ID: id}
		kind    string
		raw     []byte
		expires sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&kind, &s.AccessToken, &raw, &expires, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session %q: %w", id, err)
	}

	var p profile
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode session profile: %w", err)
	}
	s.Kind = domain.ActorKind(kind)
	s.Admin, s.User = p.Admin, p.User
	if expires.Valid {
		s.ExpiresAt = expires.Time
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM console_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry. Sessions without one are kept.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM console_sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}
