package domain

import (
	"fmt"
	"strings"
)

// DoctorForm backs both the doctor edit page and the onboarding wizard.
type DoctorForm struct {
	Name       string `form:"name" binding:"required,min=2,max=80" label:"Name"`
	Email      string `form:"email" binding:"required,email" label:"Email" input:"email"`
	Phone      string `form:"phone" binding:"omitempty,min=6,max=20" label:"Phone"`
	ClinicID   int    `form:"clinicId" binding:"required,gt=0" label:"Clinic" input:"select" source:"clinics"`
	Specialty  string `form:"specialty" binding:"required,max=80" label:"Specialty"`
	Experience string `form:"experience" binding:"omitempty,entries" label:"Work experience (Place | Title | Period)" input:"textarea"`
	Education  string `form:"education" binding:"omitempty,entries" label:"Education (Place | Title | Period)" input:"textarea"`
	About      string `form:"about" binding:"omitempty,max=1000" label:"About" input:"textarea"`
	ImageInput
}

func DoctorFormOf(d Doctor) DoctorForm {
	return DoctorForm{
		Name: d.Name, Email: d.Email, Phone: d.Phone, ClinicID: d.ClinicID, Specialty: d.Specialty,
		Experience: FormatExperiences(d.Experiences), Education: FormatEducation(d.Education),
		About: d.About, ImageInput: ImageInput{URL: d.ProfileURL},
	}
}

func (f DoctorForm) ToDoctor() (Doctor, error) {
	exp, err := ParseExperiences(f.Experience)
	if err != nil {
		return Doctor{}, fmt.Errorf("work experience: %w", err)
	}
	edu, err := ParseEducation(f.Education)
	if err != nil {
		return Doctor{}, fmt.Errorf("education: %w", err)
	}
	return Doctor{
		Name: f.Name, Email: f.Email, Phone: f.Phone, ClinicID: f.ClinicID, Specialty: f.Specialty,
		Experiences: exp, Education: edu, About: f.About, ProfileURL: f.URL,
	}, nil
}

type ClinicForm struct {
	Name        string `form:"name" binding:"required,min=2,max=120" label:"Name"`
	Contact     string `form:"contact" binding:"omitempty,max=80" label:"Contact"`
	Description string `form:"description" binding:"omitempty,max=2000" label:"Description" input:"textarea"`
	Sections    string `form:"sections" binding:"omitempty,sections" label:"Opening hours (Monday 09:00-17:00)" input:"textarea"`
	Treatments  string `form:"treatments" binding:"omitempty,max=1000" label:"Treatments (comma separated)"`
	Tools       string `form:"tools" binding:"omitempty,max=1000" label:"Tools (comma separated)"`
	ImageInput
}

func ClinicFormOf(c Clinic) ClinicForm {
	return ClinicForm{
		Name: c.Name, Contact: c.Contact, Description: c.Description,
		Sections:   FormatSections(c.Sections),
		Treatments: strings.Join(c.Treatments, ", "),
		Tools:      strings.Join(c.Tools, ", "),
		ImageInput: ImageInput{URL: c.MainImage},
	}
}

func (f ClinicForm) ToClinic() (Clinic, error) {
	sections, err := ParseSections(f.Sections)
	if err != nil {
		return Clinic{}, fmt.Errorf("opening hours: %w", err)
	}
	return Clinic{
		Name: f.Name, Contact: f.Contact, Description: f.Description, Sections: sections,
		Treatments: SplitList(f.Treatments), Tools: SplitList(f.Tools), MainImage: f.URL,
	}, nil
}

type AppointmentSlotForm struct {
	DoctorID  int    `form:"doctorId" json:"doctorId" binding:"required,gt=0" label:"Doctor" input:"select" source:"doctors"`
	Date      string `form:"date" json:"date" binding:"required,datetime=2006-01-02" label:"Date" input:"date"`
	StartTime string `form:"startTime" json:"startTime" binding:"required,clock" label:"Start" input:"time"`
	EndTime   string `form:"endTime" json:"endTime" binding:"required,clock,clockafter=StartTime" label:"End" input:"time"`
}

// SplitList splits a comma separated input, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
