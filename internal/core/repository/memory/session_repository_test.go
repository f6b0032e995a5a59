package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	s := &domain.Session{ID: "s1", Kind: domain.ActorAdmin, AccessToken: "tok"}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	// Stored sessions are copies.
	s.AccessToken = "changed"
	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.AccessToken != "tok" {
		t.Fatalf("expected stored token tok, got %q", got.AccessToken)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_RequiresID(t *testing.T) {
	repo := NewSessionRepository()
	if err := repo.Save(context.Background(), &domain.Session{ID: "  "}); err == nil {
		t.Fatal("expected error for blank id")
	}
	if err := repo.Save(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil session")
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_ = repo.Save(ctx, &domain.Session{ID: "expired", ExpiresAt: now.Add(-time.Minute)})
	_ = repo.Save(ctx, &domain.Session{ID: "due", ExpiresAt: now})
	_ = repo.Save(ctx, &domain.Session{ID: "fresh", ExpiresAt: now.Add(time.Minute)})
	_ = repo.Save(ctx, &domain.Session{ID: "forever"})

	n, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 sessions removed, got %d", n)
	}
	for _, id := range []string{"fresh", "forever"} {
		if _, err := repo.Get(ctx, id); err != nil {
			t.Errorf("expected %s to be kept, got %v", id, err)
		}
	}
	for _, id := range []string{"expired", "due"} {
		if _, err := repo.Get(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected %s removed, got %v", id, err)
		}
	}
}
