package psql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

func TestSessionRepository_SaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewSessionRepository(db)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sess := &domain.Session{
		ID: "s-1", Kind: domain.ActorAdmin, AccessToken: "tok",
		Admin: &domain.Admin{ID: 7, Name: "Ada", Role: domain.RoleCafeAdmin}, CreatedAt: created,
	}
	mock.ExpectExec("INSERT INTO console_sessions").
		WithArgs("s-1", "admin", "tok", sqlmock.AnyArg(), sqlmock.AnyArg(), created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewSessionRepository(db)

	expires := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"kind", "access_token", "profile", "expires_at", "created_at"}).
		AddRow("user", "tok", []byte(`{"user":{"id":3,"name":"Mia","email":"mia@example.com"}}`), expires, time.Now())
	mock.ExpectQuery("SELECT kind, access_token, profile").WithArgs("s-2").WillReturnRows(rows)

	s, err := repo.Get(context.Background(), "s-2")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if s.Kind != domain.ActorUser || s.User == nil || s.User.ID != 3 || s.Admin != nil {
		t.Fatalf("unexpected session %+v", s)
	}
	if !s.ExpiresAt.Equal(expires) {
		t.Fatalf("expected expiry %v, got %v", expires, s.ExpiresAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewSessionRepository(db)

	mock.ExpectQuery("FROM console_sessions").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"kind", "access_token", "profile", "expires_at", "created_at"}))

	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewSessionRepository(db)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM console_sessions WHERE expires_at IS NOT NULL").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_DeleteExpiredFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewSessionRepository(db)

	mock.ExpectExec("DELETE FROM console_sessions").WillReturnError(errors.New("connection reset"))

	if _, err := repo.DeleteExpired(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
