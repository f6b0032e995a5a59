package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

type stepView struct {
	Title   string
	Current bool
	Done    bool
}

type wizardView struct {
	Steps     []stepView
	State     string
	Direction int
	First     bool
	Last      bool
	Summary   []detailRow
}

// wizardFlow serves one multi-step form at Path. GET starts over; POST carries the
// encoded state and one of the actions next, prev or submit.
type wizardFlow[D any] struct {
	Name   string
	Title  string
	Path   string
	Submit string
	Steps  []logicv1.Step
	Form   logicv1.FormConfig
	// Image names the picture of the draft; the file is taken from the last step.
	Image   func(d *D) *domain.ImageInput
	Sources func(ctx context.Context, h *Handler, c *gin.Context, step logicv1.Step, d D) (logicv1.Sources, error)
	Done    func(ctx context.Context, h *Handler, c *gin.Context, client *api.Client, d D) error
}

func (f *wizardFlow[D]) register(g gin.IRoutes, h *Handler) {
	g.GET(f.Path, f.start(h))
	g.POST(f.Path, f.advance(h))
}

func (f *wizardFlow[D]) start(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, f.Name+".start")
		defer span.End()

		w := logicv1.NewWizard[D](f.Steps)
		f.show(ctx, h, c, logger, http.StatusOK, w, w.Draft(), nil)
	}
}

func (f *wizardFlow[D]) advance(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, f.Name+".step")
		defer span.End()

		w, err := logicv1.RestoreWizard[D](f.Steps, c.PostForm("_state"))
		if err != nil {
			// A tampered or stale state starts the wizard over.
			logger.Warn("Discarding wizard state", zap.String("wizard", f.Name), zap.Error(err))
			w = logicv1.NewWizard[D](f.Steps)
			f.show(ctx, h, c, logger, http.StatusBadRequest, w, w.Draft(), logicv1.FieldErrors{"": "Your progress could not be restored. Please start again."})
			return
		}
		span.SetAttributes(attribute.Int("wizard.step", w.Current()))

		action := c.PostForm("_action")
		if action == "prev" {
			w.Prev()
			f.show(ctx, h, c, logger, http.StatusOK, w, w.Draft(), nil)
			return
		}

		// Only the fields of the current step are read from in.
		var in D
		if errs := mapForm(c, &in); errs != nil {
			f.show(ctx, h, c, logger, http.StatusUnprocessableEntity, w, in, errs)
			return
		}

		if action != "submit" || !w.IsLast() {
			err := w.Next(in)
			var verr *logicv1.ValidationError
			switch {
			case errors.As(err, &verr):
				f.show(ctx, h, c, logger, http.StatusUnprocessableEntity, w, in, verr.Fields)
			case err != nil && !errors.Is(err, logicv1.ErrLastStep):
				f.show(ctx, h, c, logger, http.StatusBadRequest, w, in, logicv1.FieldErrors{"": "Please check the form and try again."})
			default:
				f.show(ctx, h, c, logger, http.StatusOK, w, w.Draft(), nil)
			}
			return
		}

		client := h.client(c)
		fx := effects(c)
		form := logicv1.NewForm(f.Form, fx, fx)
		err = form.Submit(ctx, func(ctx context.Context) error {
			return w.Submit(ctx, in, func(ctx context.Context, d D) error {
				if f.Image != nil {
					img := f.Image(&d)
					if fh, err := c.FormFile("image"); err == nil {
						img.File = fh
					}
					if _, err := logicv1.UploadImage(ctx, client, img, ""); err != nil {
						return err
					}
				}
				return f.Done(ctx, h, c, client, d)
			})
		})
		var verr *logicv1.ValidationError
		switch {
		case errors.As(err, &verr):
			f.show(ctx, h, c, logger, http.StatusUnprocessableEntity, w, in, verr.Fields)
		case err != nil:
			logSubmitError(logger, "Wizard submission failed", err, zap.String("wizard", f.Name))
			f.show(ctx, h, c, logger, http.StatusOK, w, in, nil)
		default:
			logger.Info("Wizard submitted", zap.String("wizard", f.Name))
		}
	}
}

// show renders the current step with values, which is the draft or the rejected input.
func (f *wizardFlow[D]) show(ctx context.Context, h *Handler, c *gin.Context, logger *zap.Logger, status int, w *logicv1.Wizard[D], values D, errs logicv1.FieldErrors) {
	v := h.newView(c, f.Title)
	v.Action = f.Path
	v.Submit = f.Submit

	state, err := w.State()
	if err != nil {
		logger.Error("Failed to encode wizard state", zap.Error(err))
	}
	step := w.Step()
	wv := &wizardView{State: state, Direction: w.Direction(), First: w.IsFirst(), Last: w.IsLast()}
	for i, s := range w.Steps() {
		wv.Steps = append(wv.Steps, stepView{Title: s.Title, Current: i == w.Current(), Done: i < w.Current()})
	}
	v.Wizard = wv

	var sources logicv1.Sources
	if f.Sources != nil {
		if sources, err = f.Sources(ctx, h, c, step, w.Draft()); err != nil {
			logger.Warn("Failed to load wizard options", zap.String("wizard", f.Name), zap.Error(err))
			v.Toast = &logicv1.Toast{Kind: logicv1.ToastDestructive, Title: "Error", Message: domain.MessageOf(err)}
		}
	}
	if len(step.Fields) > 0 {
		v.Fields = logicv1.Describe(values, errs, sources, step.Fields...)
	} else {
		wv.Summary = summarize(logicv1.Describe(w.Draft(), nil, sources))
	}
	applyErrors(v, errs)
	render(c, status, "wizard.html", v)
}

// summarize lists the filled-in answers for the confirmation step, showing option labels for choices.
func summarize(fields []logicv1.Field) []detailRow {
	var rows []detailRow
	for _, f := range fields {
		if f.Input == "hidden" || f.Input == "password" || f.Input == "file" {
			continue
		}
		value := f.Value
		if len(f.Options) > 0 {
			var labels []string
			for _, o := range f.Options {
				if o.Selected {
					labels = append(labels, o.Label)
				}
			}
			value = strings.Join(labels, ", ")
		}
		if value == "" {
			continue
		}
		rows = append(rows, detailRow{Label: f.Label, Value: value})
	}
	return rows
}
