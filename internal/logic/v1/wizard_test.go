package v1

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

func TestWizard_InvalidStepDoesNotAdvance(t *testing.T) {
	w := NewWizard[domain.CafePetForm](CafePetSteps)

	err := w.Next(domain.CafePetForm{PetType: domain.PetType("cat")})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["name"]; !ok {
		t.Fatalf("expected error on name, got %v", verr.Fields)
	}
	if w.Current() != 0 {
		t.Fatalf("expected to stay on step 0, got %d", w.Current())
	}
}

func TestWizard_OnlyCurrentStepIsValidated(t *testing.T) {
	w := NewWizard[domain.CafePetForm](CafePetSteps)

	// RoomID belongs to the second step and is not checked yet.
	in := domain.CafePetForm{Name: "Mochi", PetType: domain.PetType("cat"), RoomID: -1}
	if err := w.Next(in); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if w.Current() != 1 || w.Direction() != 1 {
		t.Fatalf("expected step 1 moving forward, got %d (%d)", w.Current(), w.Direction())
	}
	if w.Draft().Name != "Mochi" || w.Draft().RoomID != 0 {
		t.Fatalf("expected only first step fields merged, got %+v", w.Draft())
	}
}

func TestWizard_Bounds(t *testing.T) {
	w := NewWizard[domain.CafePetForm](CafePetSteps)
	w.Prev()
	if w.Current() != 0 {
		t.Fatalf("Prev must not go below the first step, got %d", w.Current())
	}

	_ = w.Next(domain.CafePetForm{Name: "Mochi", PetType: domain.PetType("cat")})
	if err := w.Next(domain.CafePetForm{RoomID: 2}); !errors.Is(err, ErrLastStep) {
		t.Fatalf("expected ErrLastStep, got %v", err)
	}
	if w.Current() != len(CafePetSteps)-1 {
		t.Fatalf("Next must not pass the last step, got %d", w.Current())
	}

	w.Prev()
	if w.Current() != 0 || w.Direction() != -1 {
		t.Fatalf("expected step 0 moving back, got %d (%d)", w.Current(), w.Direction())
	}
}

func TestWizard_SubmitRunsOnceWithWholeDraft(t *testing.T) {
	w := NewWizard[domain.CafePetForm](CafePetSteps)
	ctx := context.Background()

	if err := w.Submit(ctx, domain.CafePetForm{}, nil); !errors.Is(err, ErrNotLastStep) {
		t.Fatalf("expected ErrNotLastStep, got %v", err)
	}
	_ = w.Next(domain.CafePetForm{Name: "Mochi", PetType: domain.PetType("cat"), Breed: "Siamese"})

	var got []domain.CafePetForm
	err := w.Submit(ctx, domain.CafePetForm{RoomID: 4, Description: "Sleeps a lot"}, func(_ context.Context, d domain.CafePetForm) error {
		got = append(got, d)
		return nil
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one submission, got %d", len(got))
	}
	if got[0].Name != "Mochi" || got[0].Breed != "Siamese" || got[0].RoomID != 4 || got[0].Description != "Sleeps a lot" {
		t.Fatalf("unexpected draft %+v", got[0])
	}
}

func TestWizard_StateRoundTripDropsPasswords(t *testing.T) {
	w := NewWizard[domain.RegisterForm](RegisterSteps)
	if err := w.Next(domain.RegisterForm{Name: "Mia Chen", Phone: "0812345678"}); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	w.draft.Password = "supersecret"
	w.draft.ConfirmPassword = "supersecret"

	state, err := w.State()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		t.Fatalf("state must be base64url, got %v", err)
	}
	if strings.Contains(string(raw), "supersecret") {
		t.Fatal("state must not carry the password")
	}

	restored, err := RestoreWizard[domain.RegisterForm](RegisterSteps, state)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if restored.Current() != 1 || restored.Previous() != 0 {
		t.Fatalf("unexpected position %d/%d", restored.Current(), restored.Previous())
	}
	d := restored.Draft()
	if d.Name != "Mia Chen" || d.Phone != "0812345678" || d.Password != "" {
		t.Fatalf("unexpected draft %+v", d)
	}
	if w.Draft().Password != "supersecret" {
		t.Fatal("State must not modify the live draft")
	}
}

func TestRestoreWizard_ClampsAndRejectsGarbage(t *testing.T) {
	w := NewWizard[domain.CafePetForm](CafePetSteps)
	w.current, w.previous = 9, -3
	state, err := w.State()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	restored, err := RestoreWizard[domain.CafePetForm](CafePetSteps, state)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if restored.Current() != 1 || restored.Previous() != 0 {
		t.Fatalf("expected clamped steps, got %d/%d", restored.Current(), restored.Previous())
	}

	if _, err := RestoreWizard[domain.CafePetForm](CafePetSteps, "%%%"); err == nil {
		t.Fatal("expected error for malformed state")
	}
	empty, err := RestoreWizard[domain.CafePetForm](CafePetSteps, "")
	if err != nil || empty.Current() != 0 {
		t.Fatalf("expected a fresh wizard, got %v %v", empty, err)
	}
}
