package domain

import "time"

// ActorKind tells which profile a session carries.
type ActorKind string

const (
	ActorAdmin ActorKind = "admin"
	ActorUser  ActorKind = "user"
)

// Session is the current authenticated actor of one browser.
type Session struct {
	ID          string
	Kind        ActorKind
	AccessToken string
	Admin       *Admin
	User        *User
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the access token is past its expiry.
// A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// DisplayName returns the name of the actor for page headers.
func (s *Session) DisplayName() string {
	switch {
	case s == nil:
		return ""
	case s.Admin != nil:
		return s.Admin.Name
	case s.User != nil:
		return s.User.Name
	}
	return ""
}

// UserID returns the end-user id, or 0 for admin sessions.
func (s *Session) UserID() int {
	if s == nil || s.User == nil {
		return 0
	}
	return s.User.ID
}
