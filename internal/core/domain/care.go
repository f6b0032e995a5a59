package domain

// CareServiceType tells how a care service is delivered.
type CareServiceType string

const (
	CareGrooming CareServiceType = "grooming"
	CareSitting  CareServiceType = "sitting"
	CareWalking  CareServiceType = "walking"
	CareTraining CareServiceType = "training"
)

var CareServiceTypes = []CareServiceType{CareGrooming, CareSitting, CareWalking, CareTraining}

type Category struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type AddOn struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type CareService struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Type        CareServiceType `json:"type"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	CategoryIDs []int           `json:"categoryIds,omitempty"`
	Categories  []Category      `json:"categories,omitempty"`
	AddOns      []AddOn         `json:"addOns,omitempty"`
	Images      []string        `json:"images,omitempty"`
}

type PetSitter struct {
	ID         int           `json:"id,omitempty"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	ServiceIDs []int         `json:"serviceIds,omitempty"`
	Services   []CareService `json:"services,omitempty"`
	About      string        `json:"about,omitempty"`
	ProfileURL string        `json:"profileUrl,omitempty"`
}

type CareAppointment struct {
	ID           int           `json:"id,omitempty"`
	UserID       int           `json:"userId"`
	User         *User         `json:"user,omitempty"`
	ServiceID    int           `json:"serviceId"`
	Service      *CareService  `json:"service,omitempty"`
	SitterID     int           `json:"sitterId"`
	Sitter       *PetSitter    `json:"sitter,omitempty"`
	Date         string        `json:"date"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	AddOns       []string      `json:"addOns,omitempty"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	CancelReason string        `json:"cancelReason,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}
