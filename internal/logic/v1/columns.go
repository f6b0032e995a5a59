package v1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

func text[T any](key, header string, get func(T) string) Column[T] {
	return Column[T]{Key: key, Header: header, Cell: get, Less: func(a, b T) bool {
		return strings.ToLower(get(a)) < strings.ToLower(get(b))
	}}
}

func number[T any](key, header string, get func(T) float64, format func(float64) string) Column[T] {
	return Column[T]{Key: key, Header: header, Cell: func(r T) string { return format(get(r)) }, Less: func(a, b T) bool {
		return get(a) < get(b)
	}}
}

func plain[T any](key, header string, get func(T) string) Column[T] {
	return Column[T]{Key: key, Header: header, Cell: get}
}

func Money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func count(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func percent(v float64) string { return count(v) + "%" }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func editAction(base string, id int) Action {
	return Action{Label: "Edit", Href: base + "/" + strconv.Itoa(id) + "/edit"}
}

func viewAction(base string, id int) Action {
	return Action{Label: "View", Href: base + "/" + strconv.Itoa(id)}
}

func UserColumns() []Column[domain.User] {
	return []Column[domain.User]{
		text("name", "Name", func(u domain.User) string { return u.Name }),
		text("email", "Email", func(u domain.User) string { return u.Email }),
		plain("phone", "Phone", func(u domain.User) string { return u.Phone }),
		text("birthDate", "Date of birth", func(u domain.User) string { return u.BirthDate }),
		plain("active", "Active", func(u domain.User) string { return yesNo(u.IsActive) }),
	}
}

func UserActions(base string) func(domain.User) []Action {
	return func(u domain.User) []Action {
		label := "Deactivate"
		if !u.IsActive {
			label = "Activate"
		}
		return []Action{editAction(base, u.ID), {Label: label, Dialog: "activity-" + strconv.Itoa(u.ID)}}
	}
}

func AdminColumns() []Column[domain.Admin] {
	return []Column[domain.Admin]{
		text("name", "Name", func(a domain.Admin) string { return a.Name }),
		text("email", "Email", func(a domain.Admin) string { return a.Email }),
		text("role", "Role", func(a domain.Admin) string { return Humanize(string(a.Role)) }),
		plain("active", "Active", func(a domain.Admin) string { return yesNo(a.IsActive) }),
	}
}

func DoctorColumns() []Column[domain.Doctor] {
	return []Column[domain.Doctor]{
		text("name", "Name", func(d domain.Doctor) string { return d.Name }),
		text("specialty", "Specialty", func(d domain.Doctor) string { return d.Specialty }),
		text("clinic", "Clinic", func(d domain.Doctor) string {
			if d.Clinic != nil {
				return d.Clinic.Name
			}
			return ""
		}),
		plain("email", "Email", func(d domain.Doctor) string { return d.Email }),
		plain("phone", "Phone", func(d domain.Doctor) string { return d.Phone }),
	}
}

func ClinicColumns() []Column[domain.Clinic] {
	return []Column[domain.Clinic]{
		text("name", "Name", func(c domain.Clinic) string { return c.Name }),
		plain("contact", "Contact", func(c domain.Clinic) string { return c.Contact }),
		plain("hours", "Opening hours", func(c domain.Clinic) string { return strings.ReplaceAll(domain.FormatSections(c.Sections), "\n", "; ") }),
		number("treatments", "Treatments", func(c domain.Clinic) float64 { return float64(len(c.Treatments)) }, count),
	}
}

func AppointmentSlotColumns() []Column[domain.AppointmentSlot] {
	return []Column[domain.AppointmentSlot]{
		text("date", "Date", func(s domain.AppointmentSlot) string { return s.Date }),
		text("start", "Start", func(s domain.AppointmentSlot) string { return s.StartTime }),
		plain("end", "End", func(s domain.AppointmentSlot) string { return s.EndTime }),
		number("doctor", "Doctor #", func(s domain.AppointmentSlot) float64 { return float64(s.DoctorID) }, count),
		plain("booked", "Booked", func(s domain.AppointmentSlot) string { return yesNo(s.IsBooked) }),
	}
}

func ClinicAppointmentColumns() []Column[domain.ClinicAppointment] {
	return []Column[domain.ClinicAppointment]{
		text("date", "Date", func(a domain.ClinicAppointment) string { return a.Date + " " + a.StartTime }),
		text("user", "Customer", func(a domain.ClinicAppointment) string {
			if a.User != nil {
				return a.User.Name
			}
			return "#" + strconv.Itoa(a.UserID)
		}),
		text("doctor", "Doctor", func(a domain.ClinicAppointment) string {
			if a.Doctor != nil {
				return a.Doctor.Name
			}
			return "#" + strconv.Itoa(a.DoctorID)
		}),
		number("price", "Price", func(a domain.ClinicAppointment) float64 { return a.Price }, Money),
		text("status", "Status", func(a domain.ClinicAppointment) string { return Humanize(string(a.Status)) }),
	}
}

// ClinicAppointmentActions offers the status dialog while an appointment can still change.
func ClinicAppointmentActions(base string) func(domain.ClinicAppointment) []Action {
	return func(a domain.ClinicAppointment) []Action {
		actions := []Action{viewAction(base, a.ID)}
		if a.Status == domain.StatusPending || a.Status == domain.StatusAccepted || a.Status == domain.StatusBooked {
			actions = append(actions, Action{Label: "Change status", Dialog: "status-" + strconv.Itoa(a.ID)})
		}
		return actions
	}
}

func CareServiceColumns() []Column[domain.CareService] {
	return []Column[domain.CareService]{
		text("name", "Name", func(s domain.CareService) string { return s.Name }),
		text("type", "Type", func(s domain.CareService) string { return Humanize(string(s.Type)) }),
		number("price", "Price", func(s domain.CareService) float64 { return s.Price }, Money),
		number("addOns", "Add-ons", func(s domain.CareService) float64 { return float64(len(s.AddOns)) }, count),
	}
}

func PetSitterColumns() []Column[domain.PetSitter] {
	return []Column[domain.PetSitter]{
		text("name", "Name", func(s domain.PetSitter) string { return s.Name }),
		plain("email", "Email", func(s domain.PetSitter) string { return s.Email }),
		plain("phone", "Phone", func(s domain.PetSitter) string { return s.Phone }),
		plain("services", "Services", func(s domain.PetSitter) string {
			names := make([]string, 0, len(s.Services))
			for _, svc := range s.Services {
				names = append(names, svc.Name)
			}
			return strings.Join(names, ", ")
		}),
	}
}

func CareAppointmentColumns() []Column[domain.CareAppointment] {
	return []Column[domain.CareAppointment]{
		text("date", "Date", func(a domain.CareAppointment) string { return a.Date + " " + a.StartTime }),
		text("service", "Service", func(a domain.CareAppointment) string {
			if a.Service != nil {
				return a.Service.Name
			}
			return "#" + strconv.Itoa(a.ServiceID)
		}),
		text("sitter", "Sitter", func(a domain.CareAppointment) string {
			if a.Sitter != nil {
				return a.Sitter.Name
			}
			return "#" + strconv.Itoa(a.SitterID)
		}),
		number("price", "Price", func(a domain.CareAppointment) float64 { return a.Price }, Money),
		text("status", "Status", func(a domain.CareAppointment) string { return Humanize(string(a.Status)) }),
	}
}

func RoomColumns() []Column[domain.CafeRoom] {
	return []Column[domain.CafeRoom]{
		text("name", "Name", func(r domain.CafeRoom) string { return r.Name }),
		text("roomNo", "Room no.", func(r domain.CafeRoom) string { return r.RoomNo }),
		text("type", "Type", func(r domain.CafeRoom) string { return Humanize(string(r.Type)) }),
		number("price", "Price", func(r domain.CafeRoom) float64 { return r.Price }, Money),
		number("pets", "Pets", func(r domain.CafeRoom) float64 { return float64(len(r.Pets)) }, count),
	}
}

func CafePetColumns() []Column[domain.CafePet] {
	return []Column[domain.CafePet]{
		text("name", "Name", func(p domain.CafePet) string { return p.Name }),
		text("petType", "Type", func(p domain.CafePet) string { return Humanize(string(p.PetType)) }),
		text("breed", "Breed", func(p domain.CafePet) string { return p.Breed }),
		plain("sex", "Sex", func(p domain.CafePet) string { return Humanize(string(p.Sex)) }),
		text("dateOfBirth", "Born", func(p domain.CafePet) string { return p.DateOfBirth }),
	}
}

func RoomSlotColumns() []Column[domain.RoomSlot] {
	return []Column[domain.RoomSlot]{
		text("date", "Date", func(s domain.RoomSlot) string { return s.Date }),
		text("start", "Start", func(s domain.RoomSlot) string { return s.StartTime }),
		plain("end", "End", func(s domain.RoomSlot) string { return s.EndTime }),
		number("room", "Room #", func(s domain.RoomSlot) float64 { return float64(s.RoomID) }, count),
		plain("booked", "Booked", func(s domain.RoomSlot) string { return yesNo(s.IsBooked) }),
	}
}

func RoomBookingColumns() []Column[domain.RoomBooking] {
	return []Column[domain.RoomBooking]{
		text("date", "Date", func(b domain.RoomBooking) string { return b.Date }),
		text("room", "Room", func(b domain.RoomBooking) string {
			if b.Room != nil {
				return b.Room.Name
			}
			return "#" + strconv.Itoa(b.RoomID)
		}),
		number("slots", "Slots", func(b domain.RoomBooking) float64 { return float64(len(b.SlotIDs)) }, count),
		number("price", "Price", func(b domain.RoomBooking) float64 { return b.Price }, Money),
		text("status", "Status", func(b domain.RoomBooking) string { return Humanize(string(b.Status)) }),
	}
}

func PackageColumns() []Column[domain.Package] {
	return []Column[domain.Package]{
		text("name", "Name", func(p domain.Package) string { return p.Name }),
		text("type", "Type", func(p domain.Package) string { return Humanize(string(p.Type)) }),
		plain("duration", "Duration", func(p domain.Package) string {
			return strconv.Itoa(p.Duration) + " " + string(p.DurationUnit) + plural(p.Duration)
		}),
		number("price", "Price", func(p domain.Package) float64 { return p.Price }, Money),
		number("discount", "Discount", func(p domain.Package) float64 { return p.DiscountPercent }, percent),
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// EditActions is the row menu of entities that only offer editing.
func EditActions[T any](base string, id func(T) int) func(T) []Action {
	return func(r T) []Action { return []Action{editAction(base, id(r))} }
}
