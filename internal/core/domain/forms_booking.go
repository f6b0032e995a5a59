package domain

type PackageForm struct {
	Name            string       `form:"name" binding:"required,max=120" label:"Name"`
	Description     string       `form:"description" binding:"omitempty,max=2000" label:"Description" input:"textarea"`
	Type            PackageType  `form:"type" binding:"required,oneof=clinic care cafe" label:"Type" input:"select" options:"clinic,care,cafe"`
	Duration        int          `form:"duration" binding:"required,gt=0" label:"Duration" input:"number"`
	DurationUnit    DurationUnit `form:"durationUnit" binding:"required,oneof=day week month year" label:"Unit" input:"select" options:"day,week,month,year"`
	Price           float64      `form:"price" binding:"gte=0" label:"Price" input:"number"`
	DiscountPercent float64      `form:"discountPercent" binding:"gte=0,lte=100" label:"Discount %" input:"number"`
}

func PackageFormOf(p Package) PackageForm {
	return PackageForm{
		Name: p.Name, Description: p.Description, Type: p.Type, Duration: p.Duration,
		DurationUnit: p.DurationUnit, Price: p.Price, DiscountPercent: p.DiscountPercent,
	}
}

func (f PackageForm) ToPackage() Package {
	return Package{
		Name: f.Name, Description: f.Description, Type: f.Type, Duration: f.Duration,
		DurationUnit: f.DurationUnit, Price: f.Price, DiscountPercent: f.DiscountPercent,
	}
}

// PurchaseForm collects card details that are validated and then dropped.
// No payment gateway is involved.
type PurchaseForm struct {
	CardName   string `form:"cardName" binding:"required,max=80" label:"Name on card"`
	CardNumber string `form:"cardNumber" binding:"required,credit_card" label:"Card number"`
	Expiry     string `form:"expiry" binding:"required,datetime=01/06" label:"Expiry (MM/YY)"`
	CVC        string `form:"cvc" binding:"required,numeric,min=3,max=4" label:"CVC" input:"password"`
}

// PurchaseRequest is what actually reaches the API.
type PurchaseRequest struct {
	UserID int `json:"userId"`
}

// StatusForm drives the accept / reject / cancel dialog of the booking tables.
type StatusForm struct {
	Status       BookingStatus `form:"status" json:"status" binding:"required,oneof=accepted rejected cancelled" label:"Status" input:"select" options:"accepted,rejected,cancelled"`
	CancelReason string        `form:"cancelReason" json:"cancelReason,omitempty" binding:"required_if=Status cancelled,max=500" label:"Reason" input:"textarea"`
}

type ClinicBookingForm struct {
	ClinicID int    `form:"clinicId" binding:"required,gt=0" label:"Clinic" input:"select" source:"clinics"`
	DoctorID int    `form:"doctorId" binding:"required,gt=0" label:"Doctor" input:"select" source:"doctors"`
	Date     string `form:"date" binding:"required,datetime=2006-01-02" label:"Date" input:"date"`
	SlotID   int    `form:"slotId" binding:"required,gt=0" label:"Time" input:"select" source:"slots"`
	Notes    string `form:"notes" binding:"omitempty,max=500" label:"Notes" input:"textarea"`
}

func (f ClinicBookingForm) ToAppointment(userID int) ClinicAppointment {
	return ClinicAppointment{
		UserID: userID, ClinicID: f.ClinicID, DoctorID: f.DoctorID, SlotID: f.SlotID,
		Date: f.Date, Notes: f.Notes, Status: StatusPending,
	}
}

type RoomBookingForm struct {
	RoomID  int    `form:"roomId" binding:"required,gt=0" label:"Room" input:"select" source:"rooms"`
	Date    string `form:"date" binding:"required,datetime=2006-01-02" label:"Date" input:"date"`
	SlotIDs []int  `form:"slotIds" binding:"required,min=1,dive,gt=0" label:"Time slots" input:"checkboxes" source:"roomSlots"`
}

func (f RoomBookingForm) ToBooking(userID int) RoomBooking {
	return RoomBooking{UserID: userID, RoomID: f.RoomID, SlotIDs: f.SlotIDs, Date: f.Date, Status: StatusPending}
}

type CareBookingForm struct {
	ServiceID int      `form:"serviceId" binding:"required,gt=0" label:"Service" input:"select" source:"services"`
	AddOns    []string `form:"addOns" binding:"omitempty,dive,max=80" label:"Add-ons" input:"checkboxes" source:"addOns"`
	SitterID  int      `form:"sitterId" binding:"required,gt=0" label:"Sitter" input:"select" source:"sitters"`
	Date      string   `form:"date" binding:"required,datetime=2006-01-02" label:"Date" input:"date"`
	StartTime string   `form:"startTime" binding:"required,clock" label:"Start" input:"time"`
	EndTime   string   `form:"endTime" binding:"required,clock,clockafter=StartTime" label:"End" input:"time"`
}

func (f CareBookingForm) ToAppointment(userID int) CareAppointment {
	return CareAppointment{
		UserID: userID, ServiceID: f.ServiceID, SitterID: f.SitterID, Date: f.Date,
		StartTime: f.StartTime, EndTime: f.EndTime, AddOns: f.AddOns, Status: StatusPending,
	}
}
