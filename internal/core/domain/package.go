package domain

type PackageType string

const (
	PackageClinic PackageType = "clinic"
	PackageCare   PackageType = "care"
	PackageCafe   PackageType = "cafe"
)

var PackageTypes = []PackageType{PackageClinic, PackageCare, PackageCafe}

type DurationUnit string

const (
	UnitDay   DurationUnit = "day"
	UnitWeek  DurationUnit = "week"
	UnitMonth DurationUnit = "month"
	UnitYear  DurationUnit = "year"
)

var DurationUnits = []DurationUnit{UnitDay, UnitWeek, UnitMonth, UnitYear}

type Package struct {
	ID              int          `json:"id,omitempty"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Type            PackageType  `json:"type"`
	Duration        int          `json:"duration"`
	DurationUnit    DurationUnit `json:"durationUnit"`
	Price           float64      `json:"price"`
	DiscountPercent float64      `json:"discountPercent"`
}

// BookingStatus is shared by clinic appointments, care appointments and room bookings.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusBooked    BookingStatus = "booked"
)

var BookingStatuses = []BookingStatus{StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusBooked}
