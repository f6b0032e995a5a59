package v1

// Credentials always come last so passwords never travel in the wizard state.

var RegisterSteps = []Step{
	{Name: "personal", Title: "About you", Fields: []string{"Name", "Phone", "BirthDate"}},
	{Name: "address", Title: "Address", Fields: []string{"Address"}},
	{Name: "account", Title: "Account", Fields: []string{"Email", "Password", "ConfirmPassword"}},
}

var AdminRegistrationSteps = []Step{
	{Name: "profile", Title: "Profile", Fields: []string{"Name", "Role", "About"}},
	{Name: "account", Title: "Account", Fields: []string{"Email", "Password", "ConfirmPassword"}},
}

var DoctorSteps = []Step{
	{Name: "basic", Title: "Basic information", Fields: []string{"Name", "Email", "Phone", "ClinicID", "Specialty"}},
	{Name: "background", Title: "Background", Fields: []string{"Experience", "Education"}},
	{Name: "profile", Title: "Profile", Fields: []string{"About", "ImageInput.File", "ImageInput.URL"}},
}

var CafePetSteps = []Step{
	{Name: "basic", Title: "The pet", Fields: []string{"Name", "PetType", "Breed", "Sex", "DateOfBirth"}},
	{Name: "placement", Title: "Placement", Fields: []string{"RoomID", "Description", "ImageInput.File", "ImageInput.URL"}},
}

// The slot step lists slots of the doctor and date chosen on the previous step.
var ClinicBookingSteps = []Step{
	{Name: "clinic", Title: "Choose a clinic", Fields: []string{"ClinicID"}},
	{Name: "doctor", Title: "Choose a doctor and day", Fields: []string{"DoctorID", "Date"}},
	{Name: "slot", Title: "Choose a time", Fields: []string{"SlotID", "Notes"}},
	{Name: "confirm", Title: "Confirm"},
}

var RoomBookingSteps = []Step{
	{Name: "room", Title: "Choose a room and day", Fields: []string{"RoomID", "Date"}},
	{Name: "slot", Title: "Choose time slots", Fields: []string{"SlotIDs"}},
	{Name: "confirm", Title: "Confirm"},
}

// Add-ons and sitters both depend on the service picked first.
var CareBookingSteps = []Step{
	{Name: "service", Title: "Choose a service", Fields: []string{"ServiceID"}},
	{Name: "sitter", Title: "Choose a sitter and add-ons", Fields: []string{"SitterID", "AddOns"}},
	{Name: "schedule", Title: "Schedule", Fields: []string{"Date", "StartTime", "EndTime"}},
}
