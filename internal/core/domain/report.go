package domain

// DashboardOverview holds the pre-aggregated counts of the admin dashboard.
type DashboardOverview struct {
	Date               string  `json:"date,omitempty"`
	Users              int     `json:"users"`
	Doctors            int     `json:"doctors"`
	Clinics            int     `json:"clinics"`
	Sitters            int     `json:"sitters"`
	Rooms              int     `json:"rooms"`
	ClinicAppointments int     `json:"clinicAppointments"`
	CareAppointments   int     `json:"careAppointments"`
	RoomBookings       int     `json:"roomBookings"`
	Revenue            float64 `json:"revenue"`
}

type PieSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type PieData struct {
	Month  string     `json:"month,omitempty"`
	Slices []PieSlice `json:"data"`
}

// ReportArea names one of the three service areas with its own report endpoint.
type ReportArea string

const (
	AreaPetClinics ReportArea = "pet-clinics"
	AreaPetCare    ReportArea = "pet-care"
	AreaPetCafe    ReportArea = "pet-cafe"
)

var ReportAreas = []ReportArea{AreaPetClinics, AreaPetCare, AreaPetCafe}

type AreaReport struct {
	Area   ReportArea         `json:"area,omitempty"`
	Totals map[string]float64 `json:"totals"`
	Series []PieSlice         `json:"series"`
}
