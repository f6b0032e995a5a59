package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListDoctors returns one page of doctors, optionally of one clinic.
func (c *Client) ListDoctors(ctx context.Context, p ListParams) (*domain.Page[domain.Doctor], error) {
	return list[domain.Doctor](ctx, c, "/doctors", p)
}

// GetDoctor fetches a single doctor.
func (c *Client) GetDoctor(ctx context.Context, id int) (*domain.Doctor, error) {
	return get[domain.Doctor](ctx, c, "/doctors/"+strconv.Itoa(id))
}

// CreateDoctor adds a doctor.
func (c *Client) CreateDoctor(ctx context.Context, in domain.Doctor) (*domain.Doctor, error) {
	return send[domain.Doctor](ctx, c, http.MethodPost, "/doctors", in)
}

// UpdateDoctor patches a doctor.
func (c *Client) UpdateDoctor(ctx context.Context, id int, in domain.Doctor) (*domain.Doctor, error) {
	return send[domain.Doctor](ctx, c, http.MethodPatch, "/doctors/"+strconv.Itoa(id), in)
}

// ListClinics returns one page of pet clinics.
func (c *Client) ListClinics(ctx context.Context, p ListParams) (*domain.Page[domain.Clinic], error) {
	return list[domain.Clinic](ctx, c, "/pet-clinics", p)
}

// GetClinic fetches a single pet clinic.
func (c *Client) GetClinic(ctx context.Context, id int) (*domain.Clinic, error) {
	return get[domain.Clinic](ctx, c, "/pet-clinics/"+strconv.Itoa(id))
}

// CreateClinic adds a pet clinic.
func (c *Client) CreateClinic(ctx context.Context, in domain.Clinic) (*domain.Clinic, error) {
	return send[domain.Clinic](ctx, c, http.MethodPost, "/pet-clinics", in)
}

// UpdateClinic patches a pet clinic.
func (c *Client) UpdateClinic(ctx context.Context, id int, in domain.Clinic) (*domain.Clinic, error) {
	return send[domain.Clinic](ctx, c, http.MethodPatch, "/pet-clinics/"+strconv.Itoa(id), in)
}

// ListAppointmentSlots is filtered by doctorId and date when booking.
func (c *Client) ListAppointmentSlots(ctx context.Context, p ListParams) (*domain.Page[domain.AppointmentSlot], error) {
	return list[domain.AppointmentSlot](ctx, c, "/appointment-slots", p)
}

// CreateAppointmentSlot opens a bookable time range for a doctor.
func (c *Client) CreateAppointmentSlot(ctx context.Context, in domain.AppointmentSlotForm) (*domain.AppointmentSlot, error) {
	return send[domain.AppointmentSlot](ctx, c, http.MethodPost, "/appointment-slots", in)
}

// ListClinicAppointments returns one page of clinic appointments.
func (c *Client) ListClinicAppointments(ctx context.Context, p ListParams) (*domain.Page[domain.ClinicAppointment], error) {
	return list[domain.ClinicAppointment](ctx, c, "/clinic-appointments", p)
}

// GetClinicAppointment fetches a single clinic appointment.
func (c *Client) GetClinicAppointment(ctx context.Context, id int) (*domain.ClinicAppointment, error) {
	return get[domain.ClinicAppointment](ctx, c, "/clinic-appointments/"+strconv.Itoa(id))
}

// CreateClinicAppointment books a clinic visit for a user.
func (c *Client) CreateClinicAppointment(ctx context.Context, in domain.ClinicAppointment) (*domain.ClinicAppointment, error) {
	return send[domain.ClinicAppointment](ctx, c, http.MethodPost, "/clinic-appointments", in)
}

// UpdateClinicAppointmentStatus accepts, rejects or cancels an appointment.
// Whether the transition is allowed is decided by the API.
func (c *Client) UpdateClinicAppointmentStatus(ctx context.Context, id int, in domain.StatusForm) (*domain.ClinicAppointment, error) {
	return send[domain.ClinicAppointment](ctx, c, http.MethodPatch, "/clinic-appointments/"+strconv.Itoa(id), in)
}
