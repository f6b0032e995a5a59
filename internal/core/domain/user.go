package domain

type User struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	BirthDate  string `json:"birthDate,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	IsActive   bool   `json:"isActive,omitempty"`
}

// AdminRole scopes what an admin manages.
type AdminRole string

const (
	RoleSuperAdmin  AdminRole = "super_admin"
	RoleAdmin       AdminRole = "admin"
	RoleClinicAdmin AdminRole = "clinic_admin"
	RoleCareAdmin   AdminRole = "care_admin"
	RoleCafeAdmin   AdminRole = "cafe_admin"
)

// AdminRoles lists the roles accepted by the admin forms.
var AdminRoles = []AdminRole{RoleSuperAdmin, RoleAdmin, RoleClinicAdmin, RoleCareAdmin, RoleCafeAdmin}

type Admin struct {
	ID         int       `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       AdminRole `json:"role"`
	About      string    `json:"about,omitempty"`
	ProfileURL string    `json:"profileUrl,omitempty"`
	IsActive   bool      `json:"isActive,omitempty"`
}

// AuthResponse is returned by the login and register endpoints.
// Exactly one of Admin or User is set.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	Admin       *Admin `json:"admin,omitempty"`
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
}

// MessageResponse is the body of endpoints that only acknowledge a request.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResetTokenResponse is returned by the OTP verification endpoint.
type ResetTokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// UploadedFile is returned by the upload service.
type UploadedFile struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
