package v1

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

type recorder struct {
	toasts []Toast
	routes []string
}

func (r *recorder) Notify(t Toast)        { r.toasts = append(r.toasts, t) }
func (r *recorder) Navigate(route string) { r.routes = append(r.routes, route) }

func newTestForm(r *recorder) *Form {
	return NewForm(FormConfig{
		Name:           "cafe-room",
		SuccessTitle:   "Room created",
		SuccessMessage: "The room is ready for bookings.",
		Route:          "/admin/pet-cafe/cafe-rooms",
	}, r, r)
}

func TestForm_SubmitFailureShowsMessageAndStays(t *testing.T) {
	r := &recorder{}
	f := newTestForm(r)

	err := f.Submit(context.Background(), func(context.Context) error {
		return &domain.APIError{Status: 400, Message: "Room number already taken"}
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(r.routes) != 0 {
		t.Fatalf("expected no navigation, got %v", r.routes)
	}
	if len(r.toasts) != 1 || r.toasts[0].Kind != ToastDestructive || r.toasts[0].Message != "Room number already taken" {
		t.Fatalf("unexpected toasts %+v", r.toasts)
	}
	if f.Loading() {
		t.Fatal("loading must be cleared after failure")
	}
}

func TestForm_SubmitFailureWithoutMessage(t *testing.T) {
	r := &recorder{}
	f := newTestForm(r)

	_ = f.Submit(context.Background(), func(context.Context) error { return domain.ErrUpstream })
	if got := r.toasts[0].Message; got != domain.MessageOf(errors.New("x")) {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestForm_SubmitSuccessNavigatesOnce(t *testing.T) {
	r := &recorder{}
	f := newTestForm(r)

	calls := 0
	err := f.Submit(context.Background(), func(context.Context) error {
		calls++
		if !f.Loading() {
			t.Error("expected loading while the action runs")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one action call, got %d", calls)
	}
	if len(r.routes) != 1 || r.routes[0] != "/admin/pet-cafe/cafe-rooms" {
		t.Fatalf("expected a single navigation, got %v", r.routes)
	}
	if len(r.toasts) != 1 || r.toasts[0].Kind != ToastSuccess || r.toasts[0].Title != "Room created" {
		t.Fatalf("unexpected toasts %+v", r.toasts)
	}
	if f.Loading() {
		t.Fatal("loading must be cleared after success")
	}
}

func TestForm_SecondSubmitWhileLoading(t *testing.T) {
	r := &recorder{}
	f := newTestForm(r)

	var inner error
	_ = f.Submit(context.Background(), func(ctx context.Context) error {
		inner = f.Submit(ctx, func(context.Context) error {
			t.Error("nested submission must not run")
			return nil
		})
		return nil
	})
	if !errors.Is(inner, ErrSubmitting) {
		t.Fatalf("expected ErrSubmitting, got %v", inner)
	}
	if len(r.routes) != 1 {
		t.Fatalf("expected one navigation, got %v", r.routes)
	}
}

type fakeUploader struct {
	deleted []string
	fail    error
}

func (u *fakeUploader) UploadFile(_ context.Context, fh *multipart.FileHeader) (*domain.UploadedFile, error) {
	if u.fail != nil {
		return nil, u.fail
	}
	return &domain.UploadedFile{URL: "https://files.example.com/uploads/new-" + fh.Filename, Key: "new-" + fh.Filename}, nil
}

func (u *fakeUploader) DeleteFile(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func TestUploadImage(t *testing.T) {
	up := &fakeUploader{}
	img := &domain.ImageInput{File: &multipart.FileHeader{Filename: "cat.png", Size: 10}}

	stale, err := UploadImage(context.Background(), up, img, "https://files.example.com/uploads/old.png")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if img.URL != "https://files.example.com/uploads/new-cat.png" || img.File != nil {
		t.Fatalf("unexpected image input %+v", img)
	}
	if stale != "old.png" {
		t.Fatalf("expected stale key old.png, got %q", stale)
	}
	if len(up.deleted) != 0 {
		t.Fatalf("upload must not delete anything, got %v", up.deleted)
	}

	DiscardImage(context.Background(), up, stale)
	if len(up.deleted) != 1 || up.deleted[0] != "old.png" {
		t.Fatalf("expected old file deleted, got %v", up.deleted)
	}
}

func TestUploadImage_NoFileKeepsURL(t *testing.T) {
	up := &fakeUploader{fail: errors.New("must not upload")}
	img := &domain.ImageInput{URL: "https://files.example.com/uploads/a.png"}

	stale, err := UploadImage(context.Background(), up, img, img.URL)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if img.URL != "https://files.example.com/uploads/a.png" || stale != "" || len(up.deleted) != 0 {
		t.Fatalf("unexpected change %+v %q %v", img, stale, up.deleted)
	}
}

func TestDiscardImage_EmptyKey(t *testing.T) {
	up := &fakeUploader{}
	DiscardImage(context.Background(), up, "")
	if len(up.deleted) != 0 {
		t.Fatalf("expected no delete, got %v", up.deleted)
	}
}

func TestFileKey(t *testing.T) {
	cases := map[string]string{
		"":                                  "",
		"not a url":                         "",
		"https://files.example.com/a/b.png": "b.png",
		"https://files.example.com/":        "",
	}
	for in, want := range cases {
		if got := FileKey(in); got != want {
			t.Errorf("FileKey(%q) = %q, want %q", in, got, want)
		}
	}
}
