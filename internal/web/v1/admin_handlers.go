package v1

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

// registrar is a page group that mounts its own routes.
type registrar interface {
	register(g gin.IRoutes, h *Handler)
}

func usersResource() *resource[domain.User, domain.UserForm] {
	return &resource[domain.User, domain.UserForm]{
		Name:    "users",
		Title:   "Users",
		Noun:    "User",
		Base:    "/admin/users",
		Filters: []string{"search"},
		Columns: logicv1.UserColumns,
		Actions: logicv1.UserActions,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.User], error) {
			return client.ListUsers(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.User, error) {
			return client.GetUser(ctx, id)
		},
		FormOf: domain.UserFormOf,
		Update: func(ctx context.Context, client *api.Client, id int, f domain.UserForm) error {
			_, err := client.UpdateUser(ctx, id, f.ToUser())
			return err
		},
		Image: func(f *domain.UserForm) *domain.ImageInput { return &f.ImageInput },
		Dialogs: func(base string, rows []domain.User) []dialog {
			out := make([]dialog, 0, len(rows))
			for _, u := range rows {
				title, submit := "Deactivate "+u.Name+"?", "Deactivate"
				if !u.IsActive {
					title, submit = "Activate "+u.Name+"?", "Activate"
				}
				out = append(out, dialog{
					ID:     "activity-" + strconv.Itoa(u.ID),
					Title:  title,
					Action: base + "/" + strconv.Itoa(u.ID) + "/activity",
					Submit: submit,
					Fields: []logicv1.Field{{Name: "isActive", Input: "hidden", Value: strconv.FormatBool(!u.IsActive)}},
				})
			}
			return out
		},
	}
}

// SetUserActivity activates or deactivates one user from the users table.
func (h *Handler) SetUserActivity(c *gin.Context) {
	ctx, span, logger := begin(c, "users.activity")
	defer span.End()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.UserStatusForm
	if errs := bind(c, &in); errs != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}
	title := "User deactivated"
	if in.IsActive {
		title = "User activated"
	}
	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "users.activity",
		SuccessTitle:   title,
		SuccessMessage: "The user's access has been updated.",
		Route:          "/admin/users",
	}, fx, fx)
	err := form.Submit(ctx, func(ctx context.Context) error {
		_, err := h.client(c).SetUserActive(ctx, id, in)
		return err
	})
	if err != nil {
		logger.Warn("Failed to change user activity", zap.Int("id", id), zap.Error(err))
		// The toast travels with the redirect since the table has to be refetched.
		if t := inlineToast(c); t != nil {
			setFlash(c, *t)
		}
		c.Redirect(http.StatusSeeOther, "/admin/users")
	}
}

func adminsResource() *resource[domain.Admin, domain.AdminForm] {
	return &resource[domain.Admin, domain.AdminForm]{
		Name:    "admins",
		Title:   "Admins",
		Noun:    "Admin",
		Base:    "/admin/admins",
		NewHref: "/admin/admins/new",
		Columns: logicv1.AdminColumns,
		Actions: func(base string) func(domain.Admin) []logicv1.Action {
			return logicv1.EditActions(base, func(a domain.Admin) int { return a.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.Admin], error) {
			return client.ListAdmins(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.Admin, error) {
			return client.GetAdmin(ctx, id)
		},
		FormOf: domain.AdminFormOf,
		Update: func(ctx context.Context, client *api.Client, id int, f domain.AdminForm) error {
			_, err := client.UpdateAdmin(ctx, id, f.ToAdmin())
			return err
		},
		Image: func(f *domain.AdminForm) *domain.ImageInput { return &f.ImageInput },
	}
}

func clinicOptions(ctx context.Context, h *Handler, c *gin.Context) (logicv1.Sources, error) {
	clinics, err := h.options.Clinics(ctx, token(c))
	if err != nil {
		return nil, err
	}
	return logicv1.Sources{"clinics": clinics}, nil
}

func roomOptions(ctx context.Context, h *Handler, c *gin.Context) (logicv1.Sources, error) {
	rooms, err := h.options.Rooms(ctx, token(c))
	if err != nil {
		return nil, err
	}
	return logicv1.Sources{"rooms": rooms}, nil
}

func doctorsResource() *resource[domain.Doctor, domain.DoctorForm] {
	return &resource[domain.Doctor, domain.DoctorForm]{
		Name:    "doctors",
		Title:   "Doctors",
		Noun:    "Doctor",
		Base:    "/admin/pet-clinics/doctors",
		NewHref: "/admin/pet-clinics/doctors/new",
		Filters: []string{"search"},
		Columns: logicv1.DoctorColumns,
		Actions: func(base string) func(domain.Doctor) []logicv1.Action {
			return logicv1.EditActions(base, func(d domain.Doctor) int { return d.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.Doctor], error) {
			return client.ListDoctors(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.Doctor, error) {
			return client.GetDoctor(ctx, id)
		},
		FormOf: domain.DoctorFormOf,
		Update: func(ctx context.Context, client *api.Client, id int, f domain.DoctorForm) error {
			d, err := f.ToDoctor()
			if err != nil {
				return err
			}
			_, err = client.UpdateDoctor(ctx, id, d)
			return err
		},
		Image: func(f *domain.DoctorForm) *domain.ImageInput { return &f.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.DoctorForm) (logicv1.Sources, error) {
			return clinicOptions(ctx, h, c)
		},
	}
}

func doctorFlow() *wizardFlow[domain.DoctorForm] {
	return &wizardFlow[domain.DoctorForm]{
		Name:   "doctors.onboard",
		Title:  "New doctor",
		Path:   "/admin/pet-clinics/doctors/new",
		Submit: "Create doctor",
		Steps:  logicv1.DoctorSteps,
		Form: logicv1.FormConfig{
			Name:           "doctors.onboard",
			SuccessTitle:   "Doctor created",
			SuccessMessage: "Doctor has been created successfully.",
			Route:          "/admin/pet-clinics/doctors",
		},
		Image: func(d *domain.DoctorForm) *domain.ImageInput { return &d.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ logicv1.Step, _ domain.DoctorForm) (logicv1.Sources, error) {
			return clinicOptions(ctx, h, c)
		},
		Done: func(ctx context.Context, _ *Handler, _ *gin.Context, client *api.Client, d domain.DoctorForm) error {
			doctor, err := d.ToDoctor()
			if err != nil {
				return err
			}
			_, err = client.CreateDoctor(ctx, doctor)
			return err
		},
	}
}

func clinicsResource() *resource[domain.Clinic, domain.ClinicForm] {
	return &resource[domain.Clinic, domain.ClinicForm]{
		Name:    "clinics",
		Title:   "Clinics",
		Noun:    "Clinic",
		Base:    "/admin/pet-clinics/clinics",
		Columns: logicv1.ClinicColumns,
		Actions: func(base string) func(domain.Clinic) []logicv1.Action {
			return logicv1.EditActions(base, func(c domain.Clinic) int { return c.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.Clinic], error) {
			return client.ListClinics(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.Clinic, error) {
			return client.GetClinic(ctx, id)
		},
		FormOf: domain.ClinicFormOf,
		Create: func(ctx context.Context, client *api.Client, f domain.ClinicForm) error {
			clinic, err := f.ToClinic()
			if err != nil {
				return err
			}
			_, err = client.CreateClinic(ctx, clinic)
			return err
		},
		Update: func(ctx context.Context, client *api.Client, id int, f domain.ClinicForm) error {
			clinic, err := f.ToClinic()
			if err != nil {
				return err
			}
			_, err = client.UpdateClinic(ctx, id, clinic)
			return err
		},
		Image: func(f *domain.ClinicForm) *domain.ImageInput { return &f.ImageInput },
	}
}

func slotsResource() *resource[domain.AppointmentSlot, domain.AppointmentSlotForm] {
	return &resource[domain.AppointmentSlot, domain.AppointmentSlotForm]{
		Name:    "slots",
		Title:   "Appointment slots",
		Noun:    "Slot",
		Base:    "/admin/pet-clinics/slots",
		Filters: []string{"date"},
		Columns: logicv1.AppointmentSlotColumns,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.AppointmentSlot], error) {
			return client.ListAppointmentSlots(ctx, p)
		},
		Create: func(ctx context.Context, client *api.Client, f domain.AppointmentSlotForm) error {
			_, err := client.CreateAppointmentSlot(ctx, f)
			return err
		},
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.AppointmentSlotForm) (logicv1.Sources, error) {
			doctors, err := h.options.Doctors(ctx, token(c), 0)
			if err != nil {
				return nil, err
			}
			return logicv1.Sources{"doctors": doctors}, nil
		},
	}
}

func statusDialog(base string, id int, errs logicv1.FieldErrors) dialog {
	return dialog{
		ID:     "status-" + strconv.Itoa(id),
		Title:  "Change status",
		Action: base + "/" + strconv.Itoa(id) + "/status",
		Submit: "Update status",
		Fields: logicv1.Describe(domain.StatusForm{}, errs, nil),
	}
}

func clinicAppointmentsResource() *resource[domain.ClinicAppointment, domain.StatusForm] {
	return &resource[domain.ClinicAppointment, domain.StatusForm]{
		Name:    "clinic-appointments",
		Title:   "Clinic appointments",
		Noun:    "Appointment",
		Base:    "/admin/pet-clinics/appointments",
		Filters: []string{"status", "date"},
		Columns: logicv1.ClinicAppointmentColumns,
		Actions: logicv1.ClinicAppointmentActions,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.ClinicAppointment], error) {
			return client.ListClinicAppointments(ctx, p)
		},
		Dialogs: func(base string, rows []domain.ClinicAppointment) []dialog {
			var out []dialog
			for _, a := range rows {
				out = append(out, statusDialog(base, a.ID, nil))
			}
			return out
		},
	}
}

func appointmentDetails(a *domain.ClinicAppointment) []detailRow {
	rows := []detailRow{{Label: "Appointment", Value: "#" + strconv.Itoa(a.ID)}}
	if a.User != nil {
		rows = append(rows, detailRow{Label: "Owner", Value: a.User.Name})
	}
	if a.Doctor != nil {
		rows = append(rows, detailRow{Label: "Doctor", Value: a.Doctor.Name})
	}
	rows = append(rows,
		detailRow{Label: "Date", Value: a.Date},
		detailRow{Label: "Time", Value: a.StartTime + " - " + a.EndTime},
		detailRow{Label: "Price", Value: logicv1.Money(a.Price)},
		detailRow{Label: "Status", Value: logicv1.Humanize(string(a.Status))},
	)
	if a.Notes != "" {
		rows = append(rows, detailRow{Label: "Notes", Value: a.Notes})
	}
	if a.CancelReason != "" {
		rows = append(rows, detailRow{Label: "Cancel reason", Value: a.CancelReason})
	}
	if a.CreatedAt != "" {
		rows = append(rows, detailRow{Label: "Booked at", Value: a.CreatedAt})
	}
	return rows
}

const appointmentsBase = "/admin/pet-clinics/appointments"

func (h *Handler) ClinicAppointmentDetail(c *gin.Context) {
	ctx, span, logger := begin(c, "clinic-appointments.view")
	defer span.End()

	id, ok := idParam(c)
	if !ok {
		return
	}
	h.showAppointment(ctx, c, logger, http.StatusOK, id, nil)
}

// showAppointment renders one appointment with its status dialog open.
func (h *Handler) showAppointment(ctx context.Context, c *gin.Context, logger *zap.Logger, status, id int, errs logicv1.FieldErrors) {
	v := h.newView(c, "Appointment")
	v.Back = appointmentsBase
	a, err := h.client(c).GetClinicAppointment(ctx, id)
	if err != nil {
		logger.Error("Failed to load appointment", zap.Int("id", id), zap.Error(err))
		v.Toast = &logicv1.Toast{Kind: logicv1.ToastDestructive, Title: "Error", Message: domain.MessageOf(err)}
		c.HTML(statusOf(err), "detail.html", v)
		return
	}
	v.Details = appointmentDetails(a)
	if slices.Contains([]domain.BookingStatus{domain.StatusPending, domain.StatusAccepted, domain.StatusBooked}, a.Status) {
		v.Dialogs = []dialog{statusDialog(appointmentsBase, id, errs)}
	}
	render(c, status, "detail.html", v)
}

// UpdateClinicAppointmentStatus accepts, rejects or cancels one appointment.
func (h *Handler) UpdateClinicAppointmentStatus(c *gin.Context) {
	ctx, span, logger := begin(c, "clinic-appointments.status")
	defer span.End()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.StatusForm
	if errs := bind(c, &in); errs != nil {
		h.showAppointment(ctx, c, logger, http.StatusUnprocessableEntity, id, errs)
		return
	}
	span.SetAttributes(attribute.String("appointment.status", string(in.Status)))

	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "clinic-appointments.status",
		SuccessTitle:   "Status updated",
		SuccessMessage: fmt.Sprintf("Appointment #%d is now %s.", id, in.Status),
		Route:          appointmentsBase,
	}, fx, fx)
	err := form.Submit(ctx, func(ctx context.Context) error {
		_, err := h.client(c).UpdateClinicAppointmentStatus(ctx, id, in)
		return err
	})
	if err != nil {
		h.showAppointment(ctx, c, logger, http.StatusOK, id, nil)
	}
}

func careServicesResource() *resource[domain.CareService, domain.CareServiceForm] {
	return &resource[domain.CareService, domain.CareServiceForm]{
		Name:    "care-services",
		Title:   "Care services",
		Noun:    "Service",
		Base:    "/admin/pet-care/services",
		Columns: logicv1.CareServiceColumns,
		Actions: func(base string) func(domain.CareService) []logicv1.Action {
			return logicv1.EditActions(base, func(s domain.CareService) int { return s.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.CareService], error) {
			return client.ListCareServices(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.CareService, error) {
			return client.GetCareService(ctx, id)
		},
		FormOf: domain.CareServiceFormOf,
		Create: func(ctx context.Context, client *api.Client, f domain.CareServiceForm) error {
			s, err := f.ToCareService()
			if err != nil {
				return err
			}
			_, err = client.CreateCareService(ctx, s)
			return err
		},
		Update: func(ctx context.Context, client *api.Client, id int, f domain.CareServiceForm) error {
			s, err := f.ToCareService()
			if err != nil {
				return err
			}
			_, err = client.UpdateCareService(ctx, id, s)
			return err
		},
		Image: func(f *domain.CareServiceForm) *domain.ImageInput { return &f.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.CareServiceForm) (logicv1.Sources, error) {
			categories, err := h.options.Categories(ctx, token(c))
			if err != nil {
				return nil, err
			}
			return logicv1.Sources{"categories": categories}, nil
		},
	}
}

func sittersResource() *resource[domain.PetSitter, domain.PetSitterForm] {
	return &resource[domain.PetSitter, domain.PetSitterForm]{
		Name:    "sitters",
		Title:   "Pet sitters",
		Noun:    "Pet sitter",
		Base:    "/admin/pet-care/sitters",
		Columns: logicv1.PetSitterColumns,
		Actions: func(base string) func(domain.PetSitter) []logicv1.Action {
			return logicv1.EditActions(base, func(s domain.PetSitter) int { return s.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.PetSitter], error) {
			return client.ListPetSitters(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.PetSitter, error) {
			return client.GetPetSitter(ctx, id)
		},
		FormOf: domain.PetSitterFormOf,
		Create: func(ctx context.Context, client *api.Client, f domain.PetSitterForm) error {
			_, err := client.CreatePetSitter(ctx, f.ToPetSitter())
			return err
		},
		Update: func(ctx context.Context, client *api.Client, id int, f domain.PetSitterForm) error {
			_, err := client.UpdatePetSitter(ctx, id, f.ToPetSitter())
			return err
		},
		Image: func(f *domain.PetSitterForm) *domain.ImageInput { return &f.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.PetSitterForm) (logicv1.Sources, error) {
			services, err := h.options.Services(ctx, token(c))
			if err != nil {
				return nil, err
			}
			return logicv1.Sources{"services": services}, nil
		},
	}
}

func careAppointmentsResource() *resource[domain.CareAppointment, struct{}] {
	return &resource[domain.CareAppointment, struct{}]{
		Name:    "care-appointments",
		Title:   "Care appointments",
		Base:    "/admin/pet-care/appointments",
		Filters: []string{"status", "date"},
		Columns: logicv1.CareAppointmentColumns,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.CareAppointment], error) {
			return client.ListCareAppointments(ctx, p)
		},
	}
}

func roomsResource() *resource[domain.CafeRoom, domain.RoomForm] {
	return &resource[domain.CafeRoom, domain.RoomForm]{
		Name:    "cafe-rooms",
		Title:   "Cafe rooms",
		Noun:    "Room",
		Base:    "/admin/pet-cafe/cafe-rooms",
		Columns: logicv1.RoomColumns,
		Actions: func(base string) func(domain.CafeRoom) []logicv1.Action {
			return logicv1.EditActions(base, func(r domain.CafeRoom) int { return r.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.CafeRoom], error) {
			return client.ListRooms(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.CafeRoom, error) {
			return client.GetRoom(ctx, id)
		},
		FormOf: domain.RoomFormOf,
		Create: func(ctx context.Context, client *api.Client, f domain.RoomForm) error {
			_, err := client.CreateRoom(ctx, f.ToRoom())
			return err
		},
		Update: func(ctx context.Context, client *api.Client, id int, f domain.RoomForm) error {
			_, err := client.UpdateRoom(ctx, id, f.ToRoom())
			return err
		},
		Image: func(f *domain.RoomForm) *domain.ImageInput { return &f.ImageInput },
	}
}

func cafePetsResource() *resource[domain.CafePet, domain.CafePetForm] {
	return &resource[domain.CafePet, domain.CafePetForm]{
		Name:    "cafe-pets",
		Title:   "Cafe pets",
		Noun:    "Pet",
		Base:    "/admin/pet-cafe/cafe-pets",
		NewHref: "/admin/pet-cafe/cafe-pets/new",
		Columns: logicv1.CafePetColumns,
		Actions: func(base string) func(domain.CafePet) []logicv1.Action {
			return logicv1.EditActions(base, func(p domain.CafePet) int { return p.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.CafePet], error) {
			return client.ListCafePets(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.CafePet, error) {
			return client.GetCafePet(ctx, id)
		},
		FormOf: domain.CafePetFormOf,
		Update: func(ctx context.Context, client *api.Client, id int, f domain.CafePetForm) error {
			_, err := client.UpdateCafePet(ctx, id, f.ToCafePet())
			return err
		},
		Image: func(f *domain.CafePetForm) *domain.ImageInput { return &f.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.CafePetForm) (logicv1.Sources, error) {
			return roomOptions(ctx, h, c)
		},
	}
}

func cafePetFlow() *wizardFlow[domain.CafePetForm] {
	return &wizardFlow[domain.CafePetForm]{
		Name:   "cafe-pets.register",
		Title:  "New cafe pet",
		Path:   "/admin/pet-cafe/cafe-pets/new",
		Submit: "Add pet",
		Steps:  logicv1.CafePetSteps,
		Form: logicv1.FormConfig{
			Name:           "cafe-pets.register",
			SuccessTitle:   "Pet created",
			SuccessMessage: "Pet has been created successfully.",
			Route:          "/admin/pet-cafe/cafe-pets",
		},
		Image: func(d *domain.CafePetForm) *domain.ImageInput { return &d.ImageInput },
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ logicv1.Step, _ domain.CafePetForm) (logicv1.Sources, error) {
			return roomOptions(ctx, h, c)
		},
		Done: func(ctx context.Context, _ *Handler, _ *gin.Context, client *api.Client, d domain.CafePetForm) error {
			_, err := client.CreateCafePet(ctx, d.ToCafePet())
			return err
		},
	}
}

func bookingsResource() *resource[domain.RoomBooking, struct{}] {
	return &resource[domain.RoomBooking, struct{}]{
		Name:    "room-bookings",
		Title:   "Room bookings",
		Base:    "/admin/pet-cafe/bookings",
		Filters: []string{"status", "date"},
		Columns: logicv1.RoomBookingColumns,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.RoomBooking], error) {
			return client.ListRoomBookings(ctx, p)
		},
	}
}

func roomSlotsResource() *resource[domain.RoomSlot, domain.RoomSlotForm] {
	return &resource[domain.RoomSlot, domain.RoomSlotForm]{
		Name:    "room-slots",
		Title:   "Room slots",
		Noun:    "Slot",
		Base:    "/admin/pet-cafe/room-slots",
		Filters: []string{"date"},
		Columns: logicv1.RoomSlotColumns,
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.RoomSlot], error) {
			return client.ListRoomSlots(ctx, p)
		},
		Create: func(ctx context.Context, client *api.Client, f domain.RoomSlotForm) error {
			_, err := client.CreateRoomSlot(ctx, f)
			return err
		},
		Sources: func(ctx context.Context, h *Handler, c *gin.Context, _ domain.RoomSlotForm) (logicv1.Sources, error) {
			return roomOptions(ctx, h, c)
		},
	}
}

func packagesResource() *resource[domain.Package, domain.PackageForm] {
	return &resource[domain.Package, domain.PackageForm]{
		Name:    "packages",
		Title:   "Packages",
		Noun:    "Package",
		Base:    "/admin/packages",
		Columns: logicv1.PackageColumns,
		Actions: func(base string) func(domain.Package) []logicv1.Action {
			return logicv1.EditActions(base, func(p domain.Package) int { return p.ID })
		},
		List: func(ctx context.Context, client *api.Client, p api.ListParams) (*domain.Page[domain.Package], error) {
			return client.ListPackages(ctx, p)
		},
		Get: func(ctx context.Context, client *api.Client, id int) (*domain.Package, error) {
			return client.GetPackage(ctx, id)
		},
		FormOf: domain.PackageFormOf,
		Create: func(ctx context.Context, client *api.Client, f domain.PackageForm) error {
			_, err := client.CreatePackage(ctx, f.ToPackage())
			return err
		},
		Update: func(ctx context.Context, client *api.Client, id int, f domain.PackageForm) error {
			_, err := client.UpdatePackage(ctx, id, f.ToPackage())
			return err
		},
	}
}

func reportTabs(active domain.ReportArea) []navItem {
	items := make([]navItem, 0, len(domain.ReportAreas))
	for _, a := range domain.ReportAreas {
		items = append(items, navItem{
			Label:  logicv1.Humanize(string(a)) + " report",
			Href:   "/admin/reports/" + string(a),
			Active: a == active,
		})
	}
	return items
}

// Dashboard shows the headline numbers for a day and the bookings split for a month.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx, span, logger := begin(c, "admin.dashboard")
	defer span.End()

	now := time.Now()
	date := c.DefaultQuery("date", now.Format(time.DateOnly))
	month := c.DefaultQuery("month", now.Format("2006-01"))

	v := h.newView(c, "Dashboard")
	v.Tabs = reportTabs("")
	d, err := h.dashboard.Load(ctx, h.client(c), date, month)
	if err != nil {
		fail(c, span, logger, "dashboard.html", v, err)
		return
	}
	v.Dashboard = d
	render(c, http.StatusOK, "dashboard.html", v)
}

// Report shows the monthly figures of one service area.
func (h *Handler) Report(c *gin.Context) {
	ctx, span, logger := begin(c, "admin.report")
	defer span.End()

	area := domain.ReportArea(c.Param("area"))
	if !slices.Contains(domain.ReportAreas, area) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	v := h.newView(c, logicv1.Humanize(string(area))+" report")
	v.Tabs = reportTabs(area)
	r, err := h.dashboard.Report(ctx, h.client(c), area, month)
	if err != nil {
		fail(c, span, logger, "report.html", v, err)
		return
	}
	v.Report = r
	render(c, http.StatusOK, "report.html", v)
}
