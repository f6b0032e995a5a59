package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

// resource wires the list, create and edit pages of one API entity with form F.
// Nil Create or Update leaves the matching pages out.
type resource[E, F any] struct {
	Name    string
	Title   string
	Noun    string
	Base    string
	Filters []string
	// NewHref replaces the create page, e.g. with a wizard.
	NewHref string

	Columns func() []logicv1.Column[E]
	Actions func(base string) func(E) []logicv1.Action
	List    func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[E], error)
	Get     func(ctx context.Context, client *api.Client, id int) (*E, error)
	FormOf  func(E) F
	Create  func(ctx context.Context, client *api.Client, f F) error
	Update  func(ctx context.Context, client *api.Client, id int, f F) error
	Image   func(f *F) *domain.ImageInput
	Sources func(ctx context.Context, h *Handler, c *gin.Context, f F) (logicv1.Sources, error)
	// Dialogs adds the in-page forms opened from row actions.
	Dialogs func(base string, rows []E) []dialog
}

func (r *resource[E, F]) register(g gin.IRoutes, h *Handler) {
	g.GET(r.Base, r.index(h))
	if r.Create != nil {
		g.GET(r.Base+"/new", r.newPage(h))
		g.POST(r.Base, r.create(h))
	}
	if r.Update != nil {
		g.GET(r.Base+"/:id/edit", r.editPage(h))
		g.POST(r.Base+"/:id", r.update(h))
	}
}

func (r *resource[E, F]) index(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, r.Name+".list")
		defer span.End()

		v := h.newView(c, r.Title)
		v.Filters = filterFields(c, r.Filters...)
		switch {
		case r.NewHref != "":
			v.NewHref = r.NewHref
		case r.Create != nil:
			v.NewHref = r.Base + "/new"
		}

		p := listParams(c)
		page, err := r.List(ctx, h.client(c), p)
		if err != nil {
			fail(c, span, logger, "table.html", v, err)
			return
		}
		var actions func(E) []logicv1.Action
		if r.Actions != nil {
			actions = r.Actions(r.Base)
		}
		tv, ok := showTable(c, r.Columns(), page, actions)
		if !ok {
			return
		}
		span.SetAttributes(attribute.Int("list.count", len(page.Data)), attribute.Int("list.page", p.Page))
		v.Table = tv
		if r.Dialogs != nil {
			v.Dialogs = r.Dialogs(r.Base, page.Data)
		}
		render(c, http.StatusOK, "table.html", v)
	}
}

func (r *resource[E, F]) formView(ctx context.Context, h *Handler, c *gin.Context, title, action string, f F, errs logicv1.FieldErrors) (*view, error) {
	v := h.newView(c, title)
	v.Action = action
	v.Back = r.Base
	v.Submit = "Save"
	v.Multipart = r.Image != nil
	var sources logicv1.Sources
	if r.Sources != nil {
		var err error
		if sources, err = r.Sources(ctx, h, c, f); err != nil {
			return v, err
		}
	}
	v.Fields = logicv1.Describe(f, errs, sources)
	applyErrors(v, errs)
	return v, nil
}

func (r *resource[E, F]) newPage(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, r.Name+".new")
		defer span.End()

		var f F
		v, err := r.formView(ctx, h, c, "New "+r.Noun, r.Base, f, nil)
		if err != nil {
			fail(c, span, logger, "form.html", v, err)
			return
		}
		render(c, http.StatusOK, "form.html", v)
	}
}

func (r *resource[E, F]) create(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, r.Name+".create")
		defer span.End()

		var f F
		if errs := bind(c, &f); errs != nil {
			r.rerender(ctx, h, c, logger, http.StatusUnprocessableEntity, "New "+r.Noun, r.Base, f, errs)
			return
		}

		client := h.client(c)
		fx := effects(c)
		form := logicv1.NewForm(logicv1.FormConfig{
			Name:           r.Name + ".create",
			SuccessTitle:   r.Noun + " created",
			SuccessMessage: r.Noun + " has been created successfully.",
			Route:          r.Base,
		}, fx, fx)
		err := form.Submit(ctx, func(ctx context.Context) error {
			if r.Image != nil {
				if _, err := logicv1.UploadImage(ctx, client, r.Image(&f), ""); err != nil {
					return err
				}
			}
			return r.Create(ctx, client, f)
		})
		if err != nil {
			logSubmitError(logger, "Create failed", err, zap.String("resource", r.Name))
			r.rerender(ctx, h, c, logger, http.StatusOK, "New "+r.Noun, r.Base, f, nil)
			return
		}
		logger.Info("Resource created", zap.String("resource", r.Name))
	}
}

func (r *resource[E, F]) editPage(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, r.Name+".edit")
		defer span.End()

		id, ok := idParam(c)
		if !ok {
			return
		}
		e, err := r.Get(ctx, h.client(c), id)
		if err != nil {
			fail(c, span, logger, "form.html", h.newView(c, "Edit "+r.Noun), err)
			return
		}
		v, err := r.formView(ctx, h, c, "Edit "+r.Noun, r.Base+"/"+strconv.Itoa(id), r.FormOf(*e), nil)
		if err != nil {
			fail(c, span, logger, "form.html", v, err)
			return
		}
		render(c, http.StatusOK, "form.html", v)
	}
}

func (r *resource[E, F]) update(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, logger := begin(c, r.Name+".update")
		defer span.End()

		id, ok := idParam(c)
		if !ok {
			return
		}
		action := r.Base + "/" + strconv.Itoa(id)
		var f F
		if errs := bind(c, &f); errs != nil {
			r.rerender(ctx, h, c, logger, http.StatusUnprocessableEntity, "Edit "+r.Noun, action, f, errs)
			return
		}

		client := h.client(c)
		fx := effects(c)
		form := logicv1.NewForm(logicv1.FormConfig{
			Name:           r.Name + ".update",
			SuccessTitle:   r.Noun + " updated",
			SuccessMessage: r.Noun + " has been updated successfully.",
			Route:          r.Base,
		}, fx, fx)
		err := form.Submit(ctx, func(ctx context.Context) error {
			var stale string
			if r.Image != nil {
				img := r.Image(&f)
				if img.HasFile() {
					// The previous picture is only known to the API.
					current, err := r.Get(ctx, client, id)
					if err != nil {
						return err
					}
					prev := r.FormOf(*current)
					if stale, err = logicv1.UploadImage(ctx, client, img, r.Image(&prev).URL); err != nil {
						return err
					}
				}
			}
			if err := r.Update(ctx, client, id, f); err != nil {
				return err
			}
			logicv1.DiscardImage(ctx, client, stale)
			return nil
		})
		if err != nil {
			logSubmitError(logger, "Update failed", err, zap.String("resource", r.Name), zap.Int("id", id))
			r.rerender(ctx, h, c, logger, http.StatusOK, "Edit "+r.Noun, action, f, nil)
			return
		}
		logger.Info("Resource updated", zap.String("resource", r.Name), zap.Int("id", id))
	}
}

// rerender shows the submitted values again with errs next to their fields.
func (r *resource[E, F]) rerender(ctx context.Context, h *Handler, c *gin.Context, logger *zap.Logger, status int, title, action string, f F, errs logicv1.FieldErrors) {
	v, err := r.formView(ctx, h, c, title, action, f, errs)
	if err != nil {
		logger.Warn("Failed to load form options", zap.Error(err))
	}
	render(c, status, "form.html", v)
}
