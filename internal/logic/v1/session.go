package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// SessionService signs actors in and out and keeps their profile next to the access token.
type SessionService struct {
	api    *api.Client
	repo   domain.SessionRepository
	maxAge time.Duration
	now    func() time.Time
}

// NewSessionService creates a session service. maxAge bounds sessions whose token carries no expiry.
func NewSessionService(client *api.Client, repo domain.SessionRepository, maxAge time.Duration) *SessionService {
	return &SessionService{api: client, repo: repo, maxAge: maxAge, now: time.Now}
}

// AdminLogin authenticates an admin and stores a new session.
func (s *SessionService) AdminLogin(ctx context.Context, in domain.LoginForm) (*domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "session.admin_login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	resp, err := s.api.AdminLogin(ctx, in)
	if err != nil {
		return nil, err
	}
	if resp.Admin == nil {
		return nil, fmt.Errorf("admin login: response without admin: %w", domain.ErrUpstream)
	}
	return s.start(ctx, domain.ActorAdmin, resp)
}

// Login authenticates an end user and stores a new session.
func (s *SessionService) Login(ctx context.Context, in domain.LoginForm) (*domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "session.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	resp, err := s.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("login: response without user: %w", domain.ErrUpstream)
	}
	return s.start(ctx, domain.ActorUser, resp)
}

func (s *SessionService) start(ctx context.Context, kind domain.ActorKind, resp *domain.AuthResponse) (*domain.Session, error) {
	now := s.now()
	sess := &domain.Session{
		ID:          uuid.NewString(),
		Kind:        kind,
		AccessToken: resp.AccessToken,
		Admin:       resp.Admin,
		User:        resp.User,
		ExpiresAt:   s.expiry(resp.AccessToken, now),
		CreatedAt:   now,
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("session.kind", string(kind)))
	return sess, nil
}

// expiry reads exp from the token without verifying it; the API remains the judge of validity.
func (s *SessionService) expiry(token string, now time.Time) time.Time {
	fallback := now.Add(s.maxAge)
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}

// Register creates an end-user account. The user signs in afterwards.
func (s *SessionService) Register(ctx context.Context, in domain.RegisterForm) error {
	ctx, span := middleware.StartSpan(ctx, "session.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	_, err := s.api.Register(ctx, in)
	return err
}

// RegisterAdmin creates an admin account on behalf of the signed-in admin.
func (s *SessionService) RegisterAdmin(ctx context.Context, token string, in domain.AdminRegistrationForm) (*domain.Admin, error) {
	ctx, span := middleware.StartSpan(ctx, "session.register_admin", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("admin.role", string(in.Role)),
	))
	defer span.End()

	return s.api.WithToken(token).CreateAdmin(ctx, in)
}

// Logout removes the session. Unknown sessions are not an error.
func (s *SessionService) Logout(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	return nil
}

// Resolve returns the stored session with id; expired sessions are removed.
func (s *SessionService) Resolve(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		_ = s.repo.Delete(ctx, id)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// Sweep removes every expired session. Resolve only removes the ones that come back.
func (s *SessionService) Sweep(ctx context.Context) (int64, error) {
	ctx, span := middleware.StartSpan(ctx, "session.sweep", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		middleware.RecordError(ctx, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("session.swept", n))
	return n, nil
}

// Refresh reloads the profile of the session after it was edited.
func (s *SessionService) Refresh(ctx context.Context, sess *domain.Session) error {
	ctx, span := middleware.StartSpan(ctx, "session.refresh", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("session.kind", string(sess.Kind)),
	))
	defer span.End()

	client := s.api.WithToken(sess.AccessToken)
	switch {
	case sess.Admin != nil:
		admin, err := client.GetAdmin(ctx, sess.Admin.ID)
		if err != nil {
			return err
		}
		sess.Admin = admin
	case sess.User != nil:
		user, err := client.GetUser(ctx, sess.User.ID)
		if err != nil {
			return err
		}
		sess.User = user
	default:
		return nil
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ForgotPassword asks the API to email a one-time code.
func (s *SessionService) ForgotPassword(ctx context.Context, in domain.ForgotPasswordForm) (string, error) {
	resp, err := s.api.ForgotPassword(ctx, in)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyOTP exchanges the code for the token the reset form carries.
func (s *SessionService) VerifyOTP(ctx context.Context, in domain.VerifyOTPForm) (string, error) {
	resp, err := s.api.VerifyOTP(ctx, in)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("verify otp: response without token: %w", domain.ErrUpstream)
	}
	return resp.Token, nil
}

func (s *SessionService) ResetPassword(ctx context.Context, in domain.ResetPasswordForm) error {
	_, err := s.api.ResetPassword(ctx, in)
	return err
}
