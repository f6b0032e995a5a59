package domain

type WorkExperience struct {
	Place  string `json:"place"`
	Title  string `json:"title"`
	Period string `json:"period,omitempty"`
}

type Education struct {
	Place  string `json:"place"`
	Title  string `json:"title"`
	Period string `json:"period,omitempty"`
}

type Doctor struct {
	ID          int              `json:"id,omitempty"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	ClinicID    int              `json:"clinicId,omitempty"`
	Clinic      *Clinic          `json:"clinic,omitempty"`
	Specialty   string           `json:"specialty,omitempty"`
	About       string           `json:"about,omitempty"`
	Experiences []WorkExperience `json:"workExperience,omitempty"`
	Education   []Education      `json:"education,omitempty"`
	ProfileURL  string           `json:"profileUrl,omitempty"`
}

// Section is one block of operating hours.
type Section struct {
	Day   string `json:"day"`
	Start string `json:"startTime"`
	End   string `json:"endTime"`
}

type Clinic struct {
	ID          int       `json:"id,omitempty"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact,omitempty"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
	Treatments  []string  `json:"treatments,omitempty"`
	Tools       []string  `json:"tools,omitempty"`
	MainImage   string    `json:"mainImage,omitempty"`
}

type AppointmentSlot struct {
	ID        int    `json:"id,omitempty"`
	DoctorID  int    `json:"doctorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

type ClinicAppointment struct {
	ID           int           `json:"id,omitempty"`
	UserID       int           `json:"userId"`
	User         *User         `json:"user,omitempty"`
	DoctorID     int           `json:"doctorId"`
	Doctor       *Doctor       `json:"doctor,omitempty"`
	ClinicID     int           `json:"clinicId,omitempty"`
	SlotID       int           `json:"slotId,omitempty"`
	Date         string        `json:"date"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Price        float64       `json:"price"`
	Notes        string        `json:"notes,omitempty"`
	Status       BookingStatus `json:"status"`
	CancelReason string        `json:"cancelReason,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}
