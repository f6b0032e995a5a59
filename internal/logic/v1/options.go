package v1

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// optionPageSize bounds select lists; larger catalogues need a search box instead.
const optionPageSize = 100

// OptionService loads the dynamic choices of forms and booking wizards.
type OptionService struct {
	api *api.Client
}

func NewOptionService(client *api.Client) *OptionService {
	return &OptionService{api: client}
}

func optionsOf[T any](items []T, value func(T) int, label func(T) string) []Option {
	out := make([]Option, 0, len(items))
	for _, it := range items {
		out = append(out, Option{Value: strconv.Itoa(value(it)), Label: label(it)})
	}
	return out
}

func (s *OptionService) Clinics(ctx context.Context, token string) ([]Option, error) {
	page, err := s.api.WithToken(token).ListClinics(ctx, api.ListParams{PageSize: optionPageSize})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(c domain.Clinic) int { return c.ID }, func(c domain.Clinic) string { return c.Name }), nil
}

// Doctors lists the doctors of clinicID, or all doctors when it is zero.
func (s *OptionService) Doctors(ctx context.Context, token string, clinicID int) ([]Option, error) {
	page, err := s.api.WithToken(token).ListDoctors(ctx, api.ListParams{PageSize: optionPageSize, ClinicID: clinicID})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(d domain.Doctor) int { return d.ID }, func(d domain.Doctor) string {
		if d.Specialty == "" {
			return d.Name
		}
		return d.Name + " (" + d.Specialty + ")"
	}), nil
}

// AppointmentSlots lists the free slots of a doctor on date.
func (s *OptionService) AppointmentSlots(ctx context.Context, token string, doctorID int, date string) ([]Option, error) {
	if doctorID == 0 || date == "" {
		return nil, nil
	}
	page, err := s.api.WithToken(token).ListAppointmentSlots(ctx, api.ListParams{PageSize: optionPageSize, DoctorID: doctorID, Date: date})
	if err != nil {
		return nil, err
	}
	var free []domain.AppointmentSlot
	for _, sl := range page.Data {
		if !sl.IsBooked {
			free = append(free, sl)
		}
	}
	return optionsOf(free, func(sl domain.AppointmentSlot) int { return sl.ID }, func(sl domain.AppointmentSlot) string {
		return sl.StartTime + " - " + sl.EndTime
	}), nil
}

func (s *OptionService) Rooms(ctx context.Context, token string) ([]Option, error) {
	page, err := s.api.WithToken(token).ListRooms(ctx, api.ListParams{PageSize: optionPageSize})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(r domain.CafeRoom) int { return r.ID }, func(r domain.CafeRoom) string {
		return fmt.Sprintf("%s (room %s, %s)", r.Name, r.RoomNo, Money(r.Price))
	}), nil
}

// RoomSlots lists the free slots of a room on date.
func (s *OptionService) RoomSlots(ctx context.Context, token string, roomID int, date string) ([]Option, error) {
	if roomID == 0 || date == "" {
		return nil, nil
	}
	page, err := s.api.WithToken(token).ListRoomSlots(ctx, api.ListParams{PageSize: optionPageSize, RoomID: roomID, Date: date})
	if err != nil {
		return nil, err
	}
	var free []domain.RoomSlot
	for _, sl := range page.Data {
		if !sl.IsBooked {
			free = append(free, sl)
		}
	}
	return optionsOf(free, func(sl domain.RoomSlot) int { return sl.ID }, func(sl domain.RoomSlot) string {
		return sl.StartTime + " - " + sl.EndTime
	}), nil
}

func (s *OptionService) Categories(ctx context.Context, token string) ([]Option, error) {
	page, err := s.api.WithToken(token).ListCategories(ctx, api.ListParams{PageSize: optionPageSize})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(c domain.Category) int { return c.ID }, func(c domain.Category) string { return c.Name }), nil
}

func (s *OptionService) Services(ctx context.Context, token string) ([]Option, error) {
	page, err := s.api.WithToken(token).ListCareServices(ctx, api.ListParams{PageSize: optionPageSize})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(c domain.CareService) int { return c.ID }, func(c domain.CareService) string {
		return c.Name + " (" + Money(c.Price) + ")"
	}), nil
}

// AddOns lists the add-ons of one care service by name.
func (s *OptionService) AddOns(ctx context.Context, token string, serviceID int) ([]Option, error) {
	if serviceID == 0 {
		return nil, nil
	}
	svc, err := s.api.WithToken(token).GetCareService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]Option, 0, len(svc.AddOns))
	for _, a := range svc.AddOns {
		out = append(out, Option{Value: a.Name, Label: a.Name + " (+" + Money(a.Price) + ")"})
	}
	return out, nil
}

// Sitters lists the sitters offering serviceID, or all sitters when it is zero.
func (s *OptionService) Sitters(ctx context.Context, token string, serviceID int) ([]Option, error) {
	page, err := s.api.WithToken(token).ListPetSitters(ctx, api.ListParams{PageSize: optionPageSize, ServiceID: serviceID})
	if err != nil {
		return nil, err
	}
	return optionsOf(page.Data, func(p domain.PetSitter) int { return p.ID }, func(p domain.PetSitter) string { return p.Name }), nil
}
