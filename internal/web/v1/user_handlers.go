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
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// Home is the landing page of the user site.
func (h *Handler) Home(c *gin.Context) {
	v := h.newView(c, "Petopia")
	sess := middleware.CurrentSession(c)
	if sess == nil || sess.Kind != domain.ActorUser {
		v.Message = "Clinics, sitters and a pet cafe in one place."
		v.Cards = []navItem{
			{Label: "Packages", Href: "/packages", Note: "Save on regular visits."},
			{Label: "Sign in", Href: "/login", Note: "Book and manage your appointments."},
			{Label: "Create an account", Href: "/register"},
		}
		render(c, http.StatusOK, "home.html", v)
		return
	}
	v.Message = "Welcome back, " + sess.DisplayName() + "."
	v.Cards = []navItem{
		{Label: "Visit a clinic", Href: "/book/clinic", Note: "Pick a doctor and a free slot."},
		{Label: "Book pet care", Href: "/book/care", Note: "Grooming, sitting, walking and training."},
		{Label: "Reserve a cafe room", Href: "/book/cafe", Note: "Spend time with our cafe pets."},
		{Label: "My appointments", Href: "/appointments"},
		{Label: "Packages", Href: "/packages"},
	}
	render(c, http.StatusOK, "home.html", v)
}

var appointmentTabs = []navItem{
	{Label: "Clinic", Href: "/appointments?tab=clinic"},
	{Label: "Care", Href: "/appointments?tab=care"},
	{Label: "Cafe", Href: "/appointments?tab=cafe"},
}

// Appointments lists the signed-in user's bookings of one service area.
func (h *Handler) Appointments(c *gin.Context) {
	ctx, span, logger := begin(c, "user.appointments")
	defer span.End()

	tab := c.DefaultQuery("tab", "clinic")
	v := h.newView(c, "My appointments")
	v.Filters = filterFields(c, "status")
	for _, t := range appointmentTabs {
		t.Active = t.Href == "/appointments?tab="+tab
		v.Tabs = append(v.Tabs, t)
	}
	span.SetAttributes(attribute.String("appointments.tab", tab))

	p := listParams(c)
	p.UserID = middleware.CurrentSession(c).UserID()
	client := h.client(c)

	var (
		tv  *tableView
		ok  bool
		err error
	)
	switch tab {
	case "clinic":
		var page *domain.Page[domain.ClinicAppointment]
		if page, err = client.ListClinicAppointments(ctx, p); err == nil {
			tv, ok = showTable(c, logicv1.ClinicAppointmentColumns(), page, nil)
		}
	case "care":
		var page *domain.Page[domain.CareAppointment]
		if page, err = client.ListCareAppointments(ctx, p); err == nil {
			tv, ok = showTable(c, logicv1.CareAppointmentColumns(), page, nil)
		}
	case "cafe":
		var page *domain.Page[domain.RoomBooking]
		if page, err = client.ListRoomBookings(ctx, p); err == nil {
			tv, ok = showTable(c, logicv1.RoomBookingColumns(), page, nil)
		}
	default:
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		fail(c, span, logger, "table.html", v, err)
		return
	}
	if !ok {
		return
	}
	v.Table = tv
	render(c, http.StatusOK, "table.html", v)
}

// Packages lists the packages on sale.
func (h *Handler) Packages(c *gin.Context) {
	ctx, span, logger := begin(c, "user.packages")
	defer span.End()

	v := h.newView(c, "Packages")
	page, err := h.client(c).ListPackages(ctx, listParams(c))
	if err != nil {
		fail(c, span, logger, "table.html", v, err)
		return
	}
	tv, ok := showTable(c, logicv1.PackageColumns(), page, func(p domain.Package) []logicv1.Action {
		return []logicv1.Action{{Label: "Buy", Href: "/packages/" + strconv.Itoa(p.ID) + "/purchase"}}
	})
	if !ok {
		return
	}
	v.Table = tv
	render(c, http.StatusOK, "table.html", v)
}

func packageDetails(p *domain.Package) []detailRow {
	rows := []detailRow{
		{Label: "Package", Value: p.Name},
		{Label: "Type", Value: logicv1.Humanize(string(p.Type))},
		{Label: "Duration", Value: strconv.Itoa(p.Duration) + " " + string(p.DurationUnit)},
		{Label: "Price", Value: logicv1.Money(p.Price)},
	}
	if p.DiscountPercent > 0 {
		rows = append(rows, detailRow{Label: "Discount", Value: strconv.FormatFloat(p.DiscountPercent, 'f', -1, 64) + "%"})
	}
	return rows
}

// purchasePage renders the card form under the package summary.
func (h *Handler) purchasePage(ctx context.Context, c *gin.Context, logger *zap.Logger, status, id int, errs logicv1.FieldErrors) {
	v := h.newView(c, "Buy package")
	v.Back = "/packages"
	pkg, err := h.client(c).GetPackage(ctx, id)
	if err != nil {
		logger.Error("Failed to load package", zap.Int("id", id), zap.Error(err))
		v.Toast = &logicv1.Toast{Kind: logicv1.ToastDestructive, Title: "Error", Message: domain.MessageOf(err)}
		c.HTML(statusOf(err), "form.html", v)
		return
	}
	v.Title = "Buy " + pkg.Name
	v.Details = packageDetails(pkg)
	v.Action = "/packages/" + strconv.Itoa(id) + "/purchase"
	v.Submit = "Pay"
	// Card details are never echoed back.
	v.Fields = logicv1.Describe(domain.PurchaseForm{}, errs, nil)
	applyErrors(v, errs)
	render(c, status, "form.html", v)
}

func (h *Handler) PurchasePage(c *gin.Context) {
	ctx, span, logger := begin(c, "packages.purchase.form")
	defer span.End()

	id, ok := idParam(c)
	if !ok {
		return
	}
	h.purchasePage(ctx, c, logger, http.StatusOK, id, nil)
}

// Purchase validates the card form and buys the package for the signed-in user.
// Only the user id reaches the API.
func (h *Handler) Purchase(c *gin.Context) {
	ctx, span, logger := begin(c, "packages.purchase")
	defer span.End()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.PurchaseForm
	if errs := bind(c, &in); errs != nil {
		h.purchasePage(ctx, c, logger, http.StatusUnprocessableEntity, id, errs)
		return
	}

	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "packages.purchase",
		SuccessTitle:   "Package purchased",
		SuccessMessage: "Thank you for your purchase.",
		Route:          "/packages",
	}, fx, fx)
	err := form.Submit(ctx, func(ctx context.Context) error {
		_, err := h.client(c).PurchasePackage(ctx, id, domain.PurchaseRequest{UserID: middleware.CurrentSession(c).UserID()})
		return err
	})
	if err != nil {
		logger.Warn("Purchase failed", zap.Int("package", id), zap.Error(err))
		h.purchasePage(ctx, c, logger, http.StatusOK, id, nil)
	}
}

func clinicBookingFlow() *wizardFlow[domain.ClinicBookingForm] {
	return &wizardFlow[domain.ClinicBookingForm]{
		Name:   "book.clinic",
		Title:  "Book a clinic visit",
		Path:   "/book/clinic",
		Submit: "Book appointment",
		Steps:  logicv1.ClinicBookingSteps,
		Form: logicv1.FormConfig{
			Name:           "book.clinic",
			SuccessTitle:   "Appointment booked",
			SuccessMessage: "We will let you know once the clinic accepts it.",
			Route:          "/appointments?tab=clinic",
		},
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, step logicv1.Step, d domain.ClinicBookingForm) (logicv1.Sources, error) {
			tok := token(c)
			src := logicv1.Sources{}
			var err error
			if step.Name == "clinic" || step.Name == "confirm" {
				if src["clinics"], err = h.options.Clinics(ctx, tok); err != nil {
					return nil, err
				}
			}
			if step.Name == "doctor" || step.Name == "confirm" {
				if src["doctors"], err = h.options.Doctors(ctx, tok, d.ClinicID); err != nil {
					return nil, err
				}
			}
			if step.Name == "slot" || step.Name == "confirm" {
				if src["slots"], err = h.options.AppointmentSlots(ctx, tok, d.DoctorID, d.Date); err != nil {
					return nil, err
				}
			}
			return src, nil
		},
		Done: func(ctx context.Context, _ *Handler, c *gin.Context, client *api.Client, d domain.ClinicBookingForm) error {
			_, err := client.CreateClinicAppointment(ctx, d.ToAppointment(middleware.CurrentSession(c).UserID()))
			return err
		},
	}
}

func roomBookingFlow() *wizardFlow[domain.RoomBookingForm] {
	return &wizardFlow[domain.RoomBookingForm]{
		Name:   "book.cafe",
		Title:  "Reserve a cafe room",
		Path:   "/book/cafe",
		Submit: "Reserve",
		Steps:  logicv1.RoomBookingSteps,
		Form: logicv1.FormConfig{
			Name:           "book.cafe",
			SuccessTitle:   "Room reserved",
			SuccessMessage: "Your cafe booking has been received.",
			Route:          "/appointments?tab=cafe",
		},
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, step logicv1.Step, d domain.RoomBookingForm) (logicv1.Sources, error) {
			tok := token(c)
			src := logicv1.Sources{}
			var err error
			if step.Name == "room" || step.Name == "confirm" {
				if src["rooms"], err = h.options.Rooms(ctx, tok); err != nil {
					return nil, err
				}
			}
			if step.Name == "slot" || step.Name == "confirm" {
				if src["roomSlots"], err = h.options.RoomSlots(ctx, tok, d.RoomID, d.Date); err != nil {
					return nil, err
				}
			}
			return src, nil
		},
		Done: func(ctx context.Context, _ *Handler, c *gin.Context, client *api.Client, d domain.RoomBookingForm) error {
			_, err := client.CreateRoomBooking(ctx, d.ToBooking(middleware.CurrentSession(c).UserID()))
			return err
		},
	}
}

func careBookingFlow() *wizardFlow[domain.CareBookingForm] {
	return &wizardFlow[domain.CareBookingForm]{
		Name:   "book.care",
		Title:  "Book pet care",
		Path:   "/book/care",
		Submit: "Book",
		Steps:  logicv1.CareBookingSteps,
		Form: logicv1.FormConfig{
			Name:           "book.care",
			SuccessTitle:   "Care booked",
			SuccessMessage: "We will confirm your sitter shortly.",
			Route:          "/appointments?tab=care",
		},
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, step logicv1.Step, d domain.CareBookingForm) (logicv1.Sources, error) {
			tok := token(c)
			var err error
			src := logicv1.Sources{}
			switch step.Name {
			case "service":
				src["services"], err = h.options.Services(ctx, tok)
			case "sitter":
				if src["sitters"], err = h.options.Sitters(ctx, tok, d.ServiceID); err == nil {
					src["addOns"], err = h.options.AddOns(ctx, tok, d.ServiceID)
				}
			}
			if err != nil {
				return nil, err
			}
			return src, nil
		},
		Done: func(ctx context.Context, _ *Handler, c *gin.Context, client *api.Client, d domain.CareBookingForm) error {
			_, err := client.CreateCareAppointment(ctx, d.ToAppointment(middleware.CurrentSession(c).UserID()))
			return err
		},
	}
}
