package v1

import (
	"errors"
	"testing"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

func fieldNamed(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func TestDescribe_RoomForm(t *testing.T) {
	form := domain.RoomForm{Name: "Sunroom", Price: 500, Type: domain.RoomType("deluxe")}
	fields := Describe(form, FieldErrors{"roomNo": "This field is required."}, nil)

	name, _ := fieldNamed(fields, "name")
	if name.Value != "Sunroom" || !name.Required || name.Label != "Name" || name.Input != "text" {
		t.Fatalf("unexpected name field %+v", name)
	}
	roomNo, _ := fieldNamed(fields, "roomNo")
	if roomNo.Error != "This field is required." {
		t.Fatalf("expected error on roomNo, got %+v", roomNo)
	}
	typ, _ := fieldNamed(fields, "type")
	if len(typ.Options) != 3 || !typ.Options[1].Selected || typ.Options[1].Label != "Deluxe" {
		t.Fatalf("unexpected type options %+v", typ.Options)
	}
	if _, ok := fieldNamed(fields, "image"); !ok {
		t.Fatal("expected embedded image field")
	}
	if _, ok := fieldNamed(fields, "imageUrl"); !ok {
		t.Fatal("expected embedded image url field")
	}
}

func TestDescribe_PathsAndSources(t *testing.T) {
	form := domain.RoomBookingForm{RoomID: 2, SlotIDs: []int{11}}
	sources := Sources{"roomSlots": {{Value: "10", Label: "09:00 - 10:00"}, {Value: "11", Label: "10:00 - 11:00"}}}

	fields := Describe(form, nil, sources, "SlotIDs")
	if len(fields) != 1 || fields[0].Name != "slotIds" {
		t.Fatalf("expected only slotIds, got %+v", fields)
	}
	if opts := fields[0].Options; opts[0].Selected || !opts[1].Selected {
		t.Fatalf("unexpected selection %+v", opts)
	}
}

func TestDescribe_NeverEchoesPasswords(t *testing.T) {
	fields := Describe(domain.LoginForm{Email: "ada@example.com", Password: "hunter22"}, nil, nil)
	pw, _ := fieldNamed(fields, "password")
	if pw.Value != "" || pw.Input != "password" {
		t.Fatalf("password must render empty, got %+v", pw)
	}
}

func TestFieldErrorsOf(t *testing.T) {
	v := newValidator()

	slot := domain.RoomSlotForm{RoomID: 1, Date: "2026-03-01", StartTime: "10:00", EndTime: "09:30"}
	errs := FieldErrorsOf(v.Struct(slot), slot)
	if errs["endTime"] != "Must be later than the start time." {
		t.Fatalf("unexpected errors %v", errs)
	}

	room := domain.RoomForm{ImageInput: domain.ImageInput{URL: "nope"}}
	errs = FieldErrorsOf(v.Struct(room), room)
	for _, name := range []string{"name", "roomNo", "price", "imageUrl"} {
		if errs[name] == "" {
			t.Errorf("expected error on %s, got %v", name, errs)
		}
	}

	status := domain.StatusForm{Status: domain.StatusCancelled}
	errs = FieldErrorsOf(v.Struct(status), status)
	if errs["cancelReason"] != "This field is required." {
		t.Fatalf("expected a reason for cancellation, got %v", errs)
	}

	errs = FieldErrorsOf(errors.New("strconv.ParseFloat: invalid syntax"), room)
	if errs[""] == "" {
		t.Fatalf("expected form level error, got %v", errs)
	}
}

func TestHumanize(t *testing.T) {
	for in, want := range map[string]string{"clinic_admin": "Clinic admin", "pet-care": "Pet care", "": ""} {
		if got := Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
