package domain

// Form schemas describe both validation (binding) and rendering (label, input, options, source).
// A field without an input tag renders as a text box.

type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email" label:"Email" input:"email"`
	Password string `form:"password" json:"password" binding:"required" label:"Password" input:"password"`
}

type ForgotPasswordForm struct {
	Email string `form:"email" json:"email" binding:"required,email" label:"Email" input:"email"`
}

type VerifyOTPForm struct {
	Email string `form:"email" json:"email" binding:"required,email" input:"hidden"`
	OTP   string `form:"otp" json:"otp" binding:"required,len=6,numeric" label:"One-time code"`
}

type ResetPasswordForm struct {
	Token           string `form:"token" json:"token" binding:"required" input:"hidden"`
	Password        string `form:"password" json:"password" binding:"required,min=8" label:"New password" input:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"-" binding:"required,eqfield=Password" label:"Confirm password" input:"password"`
}

// RegisterForm is filled by the user registration wizard.
type RegisterForm struct {
	Name            string `form:"name" json:"name" binding:"required,min=2,max=80" label:"Full name"`
	Phone           string `form:"phone" json:"phone,omitempty" binding:"omitempty,min=6,max=20" label:"Phone"`
	BirthDate       string `form:"birthDate" json:"birthDate,omitempty" binding:"omitempty,datetime=2006-01-02" label:"Date of birth" input:"date"`
	Address         string `form:"address" json:"address" binding:"required,max=200" label:"Address" input:"textarea"`
	Email           string `form:"email" json:"email" binding:"required,email" label:"Email" input:"email"`
	Password        string `form:"password" json:"password" binding:"required,min=8" label:"Password" input:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"-" binding:"required,eqfield=Password" label:"Confirm password" input:"password"`
}

// AdminRegistrationForm is filled by the admin registration wizard.
type AdminRegistrationForm struct {
	Name            string    `form:"name" json:"name" binding:"required,min=2,max=80" label:"Name"`
	Role            AdminRole `form:"role" json:"role" binding:"required,oneof=super_admin admin clinic_admin care_admin cafe_admin" label:"Role" input:"select" options:"super_admin,admin,clinic_admin,care_admin,cafe_admin"`
	About           string    `form:"about" json:"about,omitempty" binding:"omitempty,max=500" label:"About" input:"textarea"`
	Email           string    `form:"email" json:"email" binding:"required,email" label:"Email" input:"email"`
	Password        string    `form:"password" json:"password" binding:"required,min=8" label:"Password" input:"password"`
	ConfirmPassword string    `form:"confirmPassword" json:"-" binding:"required,eqfield=Password" label:"Confirm password" input:"password"`
}

type AdminForm struct {
	Name  string    `form:"name" binding:"required,min=2,max=80" label:"Name"`
	Email string    `form:"email" binding:"required,email" label:"Email" input:"email"`
	Role  AdminRole `form:"role" binding:"required,oneof=super_admin admin clinic_admin care_admin cafe_admin" label:"Role" input:"select" options:"super_admin,admin,clinic_admin,care_admin,cafe_admin"`
	About string    `form:"about" binding:"omitempty,max=500" label:"About" input:"textarea"`
	ImageInput
}

func AdminFormOf(a Admin) AdminForm {
	return AdminForm{Name: a.Name, Email: a.Email, Role: a.Role, About: a.About, ImageInput: ImageInput{URL: a.ProfileURL}}
}

func (f AdminForm) ToAdmin() Admin {
	return Admin{Name: f.Name, Email: f.Email, Role: f.Role, About: f.About, ProfileURL: f.URL}
}

type UserForm struct {
	Name      string `form:"name" binding:"required,min=2,max=80" label:"Full name"`
	Email     string `form:"email" binding:"required,email" label:"Email" input:"email"`
	Phone     string `form:"phone" binding:"omitempty,min=6,max=20" label:"Phone"`
	Address   string `form:"address" binding:"omitempty,max=200" label:"Address" input:"textarea"`
	BirthDate string `form:"birthDate" binding:"omitempty,datetime=2006-01-02" label:"Date of birth" input:"date"`
	ImageInput
}

func UserFormOf(u User) UserForm {
	return UserForm{
		Name: u.Name, Email: u.Email, Phone: u.Phone, Address: u.Address, BirthDate: u.BirthDate,
		ImageInput: ImageInput{URL: u.ProfileURL},
	}
}

func (f UserForm) ToUser() User {
	return User{
		Name: f.Name, Email: f.Email, Phone: f.Phone, Address: f.Address, BirthDate: f.BirthDate,
		ProfileURL: f.URL,
	}
}

// UserStatusForm toggles whether a user may sign in.
type UserStatusForm struct {
	IsActive bool `form:"isActive" json:"isActive" label:"Active" input:"checkbox"`
}
