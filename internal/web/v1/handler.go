package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

const defaultPageSize = 10

// Handler serves the console pages. It holds no per-request state.
type Handler struct {
	api       *api.Client
	sessions  *logicv1.SessionService
	options   *logicv1.OptionService
	dashboard *logicv1.DashboardService
	cookie    config.SessionConfig
}

// NewHandler creates a handler backed by client and sessions.
func NewHandler(client *api.Client, sessions *logicv1.SessionService, cookie config.SessionConfig) *Handler {
	return &Handler{
		api:       client,
		sessions:  sessions,
		options:   logicv1.NewOptionService(client),
		dashboard: logicv1.NewDashboardService(),
		cookie:    cookie,
	}
}

// begin opens the request span the way every page does.
func begin(c *gin.Context, page string) (context.Context, trace.Span, *zap.Logger) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("page", page),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	return ctx, span, middleware.GetLoggerFromGinContext(c)
}

// client returns the API client acting as the signed-in actor, or anonymously.
func (h *Handler) client(c *gin.Context) *api.Client {
	if sess := middleware.CurrentSession(c); sess != nil {
		return h.api.WithToken(sess.AccessToken)
	}
	return h.api
}

func token(c *gin.Context) string {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess.AccessToken
	}
	return ""
}

// view is the data of every template. Pages fill the parts they render.
type view struct {
	Title     string
	Session   *domain.Session
	Toast     *logicv1.Toast
	Nav       []navItem
	Admin     bool
	Action    string
	Submit    string
	Multipart bool
	Fields    []logicv1.Field
	FormError string
	Back      string

	Table   *tableView
	NewHref string
	Filters []logicv1.Field
	Tabs    []navItem
	Dialogs []dialog

	Wizard    *wizardView
	Dashboard *logicv1.Dashboard
	Report    *logicv1.Report
	Details   []detailRow
	Cards     []navItem
	Message   string
}

type navItem struct {
	Label  string
	Href   string
	Active bool
	Note   string
}

type detailRow struct {
	Label string
	Value string
}

// dialog is an in-page form opened from a row action.
type dialog struct {
	ID     string
	Title  string
	Action string
	Submit string
	Fields []logicv1.Field
}

func (h *Handler) newView(c *gin.Context, title string) *view {
	sess := middleware.CurrentSession(c)
	v := &view{Title: title, Session: sess, Toast: flashOf(c)}
	if sess != nil && sess.Kind == domain.ActorAdmin {
		v.Admin = true
		v.Nav = adminNav(sess, c.Request.URL.Path)
	} else {
		v.Nav = userNav(sess, c.Request.URL.Path)
	}
	return v
}

func render(c *gin.Context, status int, tmpl string, v *view) {
	if t := inlineToast(c); t != nil {
		v.Toast = t
	}
	c.HTML(status, tmpl, v)
}

// statusOf picks the response code of a page that could not load its data.
func statusOf(err error) int {
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		return http.StatusNotFound
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden:
		return http.StatusForbidden
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

// fail renders tmpl with the error as a destructive toast.
func fail(c *gin.Context, span trace.Span, logger *zap.Logger, tmpl string, v *view, err error) {
	span.RecordError(err)
	logger.Error("Failed to load page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	v.Toast = &logicv1.Toast{Kind: logicv1.ToastDestructive, Title: "Error", Message: domain.MessageOf(err)}
	c.HTML(statusOf(err), tmpl, v)
}

// logSubmitError logs API rejections as warnings and transport failures as errors.
func logSubmitError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if api.IsAPIError(err) {
		logger.Warn(msg, fields...)
		return
	}
	logger.Error(msg, fields...)
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func adminNav(sess *domain.Session, path string) []navItem {
	items := []navItem{
		{Label: "Dashboard", Href: "/admin/dashboard"},
		{Label: "Users", Href: "/admin/users"},
	}
	role := sess.Admin.Role
	owner := role == domain.RoleSuperAdmin
	all := owner || role == domain.RoleAdmin
	if owner {
		items = append(items, navItem{Label: "Admins", Href: "/admin/admins"})
	}
	if all || role == domain.RoleClinicAdmin {
		items = append(items,
			navItem{Label: "Doctors", Href: "/admin/pet-clinics/doctors"},
			navItem{Label: "Clinics", Href: "/admin/pet-clinics/clinics"},
			navItem{Label: "Appointment slots", Href: "/admin/pet-clinics/slots"},
			navItem{Label: "Clinic appointments", Href: "/admin/pet-clinics/appointments"},
		)
	}
	if all || role == domain.RoleCareAdmin {
		items = append(items,
			navItem{Label: "Care services", Href: "/admin/pet-care/services"},
			navItem{Label: "Pet sitters", Href: "/admin/pet-care/sitters"},
			navItem{Label: "Care appointments", Href: "/admin/pet-care/appointments"},
		)
	}
	if all || role == domain.RoleCafeAdmin {
		items = append(items,
			navItem{Label: "Cafe rooms", Href: "/admin/pet-cafe/cafe-rooms"},
			navItem{Label: "Cafe pets", Href: "/admin/pet-cafe/cafe-pets"},
			navItem{Label: "Room slots", Href: "/admin/pet-cafe/room-slots"},
			navItem{Label: "Room bookings", Href: "/admin/pet-cafe/bookings"},
		)
	}
	if owner {
		items = append(items, navItem{Label: "Packages", Href: "/admin/packages"})
	}
	items = append(items, navItem{Label: "Profile", Href: "/admin/profile"})
	return markActive(items, path)
}

func userNav(sess *domain.Session, path string) []navItem {
	items := []navItem{{Label: "Home", Href: "/"}, {Label: "Packages", Href: "/packages"}}
	if sess == nil {
		items = append(items, navItem{Label: "Sign in", Href: "/login"}, navItem{Label: "Register", Href: "/register"})
		return markActive(items, path)
	}
	items = append(items,
		navItem{Label: "Book", Href: "/book/clinic"},
		navItem{Label: "My appointments", Href: "/appointments"},
		navItem{Label: "Profile", Href: "/profile"},
	)
	return markActive(items, path)
}

func markActive(items []navItem, path string) []navItem {
	for i := range items {
		items[i].Active = items[i].Href == path
	}
	return items
}
