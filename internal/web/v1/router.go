package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// Setup mounts the console pages on r. Admin pages live under /admin and need an
// admin session; booking pages need a user session.
func Setup(r *gin.Engine, h *Handler) error {
	tmpl, err := Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	if err := RegisterBindingValidations(); err != nil {
		return err
	}

	site := r.Group("/")
	site.Use(FlashMiddleware(h.cookie), middleware.SessionMiddleware(h.sessions, h.cookie))

	// Public pages
	site.GET("/", h.Home)
	site.GET("/packages", h.Packages)
	site.GET("/login", h.UserLoginPage)
	site.POST("/login", h.UserLogin)
	site.GET("/admin/login", h.AdminLoginPage)
	site.POST("/admin/login", h.AdminLogin)
	site.POST("/logout", h.Logout)
	site.GET("/forgot-password", h.ForgotPasswordPage)
	site.POST("/forgot-password", h.ForgotPassword)
	site.GET("/verify-otp", h.VerifyOTPPage)
	site.POST("/verify-otp", h.VerifyOTP)
	site.GET("/reset-password", h.ResetPasswordPage)
	site.POST("/reset-password", h.ResetPassword)
	h.registerFlow().register(site, h)

	user := site.Group("/")
	user.Use(middleware.RequireUser("/login"))
	user.GET("/profile", h.UserProfilePage)
	user.POST("/profile", h.UserProfile)
	user.GET("/appointments", h.Appointments)
	user.GET("/packages/:id/purchase", h.PurchasePage)
	user.POST("/packages/:id/purchase", h.Purchase)
	for _, f := range []registrar{clinicBookingFlow(), roomBookingFlow(), careBookingFlow()} {
		f.register(user, h)
	}

	admin := site.Group("/")
	admin.Use(middleware.RequireAdmin("/admin/login"))
	admin.GET("/admin", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/admin/dashboard") })
	admin.GET("/admin/dashboard", h.Dashboard)
	admin.GET("/admin/reports/:area", h.Report)
	admin.GET("/admin/profile", h.AdminProfilePage)
	admin.POST("/admin/profile", h.AdminProfile)
	admin.POST("/admin/users/:id/activity", h.SetUserActivity)
	usersResource().register(admin, h)

	owners := site.Group("/")
	owners.Use(middleware.RequireAdmin("/admin/login", domain.RoleSuperAdmin))
	for _, p := range []registrar{adminsResource(), h.adminRegistrationFlow(), packagesResource()} {
		p.register(owners, h)
	}

	clinics := site.Group("/")
	clinics.Use(middleware.RequireAdmin("/admin/login", domain.RoleClinicAdmin))
	clinics.GET("/admin/pet-clinics/appointments/:id", h.ClinicAppointmentDetail)
	clinics.POST("/admin/pet-clinics/appointments/:id/status", h.UpdateClinicAppointmentStatus)
	for _, p := range []registrar{doctorsResource(), doctorFlow(), clinicsResource(), slotsResource(), clinicAppointmentsResource()} {
		p.register(clinics, h)
	}

	care := site.Group("/")
	care.Use(middleware.RequireAdmin("/admin/login", domain.RoleCareAdmin))
	for _, p := range []registrar{careServicesResource(), sittersResource(), careAppointmentsResource()} {
		p.register(care, h)
	}

	cafe := site.Group("/")
	cafe.Use(middleware.RequireAdmin("/admin/login", domain.RoleCafeAdmin))
	for _, p := range []registrar{roomsResource(), cafePetsResource(), cafePetFlow(), bookingsResource(), roomSlotsResource()} {
		p.register(cafe, h)
	}
	return nil
}
