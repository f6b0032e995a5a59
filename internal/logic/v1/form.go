package v1

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"path"
	"sync/atomic"

	"github.com/asaskevich/govalidator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// ErrSubmitting is returned when a form is submitted again before the first submission finished.
var ErrSubmitting = errors.New("form is already submitting")

type ToastKind string

const (
	ToastSuccess     ToastKind = "success"
	ToastDestructive ToastKind = "destructive"
)

// Toast is a short notification shown after a submission.
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

type Notifier interface {
	Notify(t Toast)
}

type Navigator interface {
	Navigate(route string)
}

// FormConfig describes what a form says and where it goes after a successful submission.
type FormConfig struct {
	Name           string
	SuccessTitle   string
	SuccessMessage string
	Route          string
}

// Form runs one create/edit submission: loading flag, one action, one toast,
// and exactly one navigation on success.
type Form struct {
	cfg      FormConfig
	notify   Notifier
	navigate Navigator
	loading  atomic.Bool
}

func NewForm(cfg FormConfig, n Notifier, nav Navigator) *Form {
	return &Form{cfg: cfg, notify: n, navigate: nav}
}

// Loading reports whether a submission is in flight.
func (f *Form) Loading() bool {
	return f.loading.Load()
}

// Submit runs action. On failure the API message is shown and nothing navigates.
func (f *Form) Submit(ctx context.Context, action func(ctx context.Context) error) error {
	if !f.loading.CompareAndSwap(false, true) {
		return ErrSubmitting
	}
	defer f.loading.Store(false)

	ctx, span := middleware.StartSpan(ctx, "form.submit", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("form", f.cfg.Name),
	))
	defer span.End()

	if err := action(ctx); err != nil {
		middleware.RecordError(ctx, err)
		middleware.ObserveSubmission(f.cfg.Name, "failed")
		f.notify.Notify(Toast{Kind: ToastDestructive, Title: "Error", Message: domain.MessageOf(err)})
		return err
	}

	middleware.ObserveSubmission(f.cfg.Name, "success")
	f.notify.Notify(Toast{Kind: ToastSuccess, Title: f.cfg.SuccessTitle, Message: f.cfg.SuccessMessage})
	f.navigate.Navigate(f.cfg.Route)
	return nil
}

// Uploader is the part of the API client that stores files.
type Uploader interface {
	UploadFile(ctx context.Context, fh *multipart.FileHeader) (*domain.UploadedFile, error)
	DeleteFile(ctx context.Context, key string) error
}

// UploadImage uploads img.File when one was attached and stores the resulting URL in img.
// It returns the storage key of previous once replaced. The caller deletes that file
// with DiscardImage after the entity has been saved, never before.
func UploadImage(ctx context.Context, up Uploader, img *domain.ImageInput, previous string) (string, error) {
	if !img.HasFile() {
		return "", nil
	}
	uploaded, err := up.UploadFile(ctx, img.File)
	if err != nil {
		return "", err
	}
	img.URL = uploaded.URL
	img.File = nil

	if previous == uploaded.URL {
		return "", nil
	}
	return FileKey(previous), nil
}

// DiscardImage deletes a replaced file. Failing to delete it does not fail the form.
func DiscardImage(ctx context.Context, up Uploader, key string) {
	if key == "" {
		return
	}
	if err := up.DeleteFile(ctx, key); err != nil {
		middleware.RecordError(ctx, err)
	}
}

// FileKey returns the storage key of an uploaded file URL, or "" when s is not a URL.
func FileKey(s string) string {
	if s == "" || !govalidator.IsURL(s) {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	key := path.Base(u.Path)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
