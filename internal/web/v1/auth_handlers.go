package v1

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// formPage renders a single-page form.
func (h *Handler) formPage(c *gin.Context, status int, title, submit string, form any, errs logicv1.FieldErrors, sources logicv1.Sources) *view {
	v := h.newView(c, title)
	v.Action = c.Request.URL.RequestURI()
	v.Submit = submit
	v.Fields = logicv1.Describe(form, errs, sources)
	for _, f := range v.Fields {
		if f.Input == "file" {
			v.Multipart = true
		}
	}
	applyErrors(v, errs)
	return v
}

// safeNext keeps post-login redirects on this site.
func safeNext(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}

func (h *Handler) AdminLoginPage(c *gin.Context) {
	v := h.formPage(c, http.StatusOK, "Admin sign in", "Sign in", domain.LoginForm{}, nil, nil)
	v.Cards = []navItem{{Label: "Forgot password?", Href: "/forgot-password"}}
	render(c, http.StatusOK, "form.html", v)
}

func (h *Handler) UserLoginPage(c *gin.Context) {
	v := h.formPage(c, http.StatusOK, "Sign in", "Sign in", domain.LoginForm{}, nil, nil)
	v.Cards = []navItem{{Label: "Create an account", Href: "/register"}, {Label: "Forgot password?", Href: "/forgot-password"}}
	render(c, http.StatusOK, "form.html", v)
}

// AdminLogin signs an admin in and continues to the dashboard.
func (h *Handler) AdminLogin(c *gin.Context) {
	h.login(c, "admin.login", "Admin sign in", safeNext(c.Query("next"), "/admin/dashboard"), h.sessions.AdminLogin)
}

// UserLogin signs an end user in and continues to the home page.
func (h *Handler) UserLogin(c *gin.Context) {
	h.login(c, "user.login", "Sign in", safeNext(c.Query("next"), "/"), h.sessions.Login)
}

func (h *Handler) login(c *gin.Context, name, title, route string, signIn func(context.Context, domain.LoginForm) (*domain.Session, error)) {
	ctx, span, logger := begin(c, name)
	defer span.End()

	var in domain.LoginForm
	if errs := bind(c, &in); errs != nil {
		render(c, http.StatusUnprocessableEntity, "form.html", h.formPage(c, http.StatusUnprocessableEntity, title, "Sign in", domain.LoginForm{Email: in.Email}, errs, nil))
		return
	}

	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           name,
		SuccessTitle:   "Welcome back",
		SuccessMessage: "You are signed in.",
		Route:          route,
	}, fx, fx)
	err := form.Submit(ctx, func(ctx context.Context) error {
		sess, err := signIn(ctx, in)
		if err != nil {
			return err
		}
		middleware.SetSessionCookie(c, h.cookie, sess.ID, sess.ExpiresAt)
		middleware.SetSession(c, sess)
		return nil
	})
	if err != nil {
		logger.Info("Sign in rejected", zap.String("form", name), zap.Error(err))
		render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, title, "Sign in", domain.LoginForm{Email: in.Email}, nil, nil))
		return
	}
	logger.Info("Signed in", zap.String("form", name))
}

// Logout forgets the session and returns to the matching sign-in page.
func (h *Handler) Logout(c *gin.Context) {
	ctx, span, logger := begin(c, "logout")
	defer span.End()

	route := "/login"
	if sess := middleware.CurrentSession(c); sess != nil {
		if sess.Kind == domain.ActorAdmin {
			route = "/admin/login"
		}
		if err := h.sessions.Logout(ctx, sess.ID); err != nil {
			logger.Error("Failed to delete session", zap.Error(err))
		}
	}
	middleware.ClearSessionCookie(c, h.cookie)
	setFlash(c, logicv1.Toast{Kind: logicv1.ToastSuccess, Title: "Signed out", Message: "See you soon."})
	c.Redirect(http.StatusSeeOther, route)
}

func (h *Handler) registerFlow() *wizardFlow[domain.RegisterForm] {
	return &wizardFlow[domain.RegisterForm]{
		Name:   "register",
		Title:  "Create your account",
		Path:   "/register",
		Submit: "Create account",
		Steps:  logicv1.RegisterSteps,
		Form: logicv1.FormConfig{
			Name:           "register",
			SuccessTitle:   "Account created",
			SuccessMessage: "You can sign in now.",
			Route:          "/login",
		},
		Done: func(ctx context.Context, h *Handler, _ *gin.Context, _ *api.Client, d domain.RegisterForm) error {
			return h.sessions.Register(ctx, d)
		},
	}
}

func (h *Handler) adminRegistrationFlow() *wizardFlow[domain.AdminRegistrationForm] {
	return &wizardFlow[domain.AdminRegistrationForm]{
		Name:   "admin.register",
		Title:  "New admin",
		Path:   "/admin/admins/new",
		Submit: "Create admin",
		Steps:  logicv1.AdminRegistrationSteps,
		Form: logicv1.FormConfig{
			Name:           "admin.register",
			SuccessTitle:   "Admin created",
			SuccessMessage: "The new admin can sign in now.",
			Route:          "/admin/admins",
		},
		Done: func(ctx context.Context, h *Handler, c *gin.Context, _ *api.Client, d domain.AdminRegistrationForm) error {
			_, err := h.sessions.RegisterAdmin(ctx, token(c), d)
			return err
		},
	}
}

// laterRoute navigates to a route that is only known once the action ran.
type laterRoute struct {
	fx    *pageEffects
	route *string
}

func (l laterRoute) Navigate(string) { l.fx.Navigate(*l.route) }

func (h *Handler) ForgotPasswordPage(c *gin.Context) {
	render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Forgot password", "Send code", domain.ForgotPasswordForm{}, nil, nil))
}

// ForgotPassword asks for a one-time code and continues to its entry form.
func (h *Handler) ForgotPassword(c *gin.Context) {
	ctx, span, _ := begin(c, "password.forgot")
	defer span.End()

	var in domain.ForgotPasswordForm
	if errs := bind(c, &in); errs != nil {
		render(c, http.StatusUnprocessableEntity, "form.html", h.formPage(c, http.StatusUnprocessableEntity, "Forgot password", "Send code", in, errs, nil))
		return
	}
	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "password.forgot",
		SuccessTitle:   "Check your inbox",
		SuccessMessage: "We sent a one-time code to " + in.Email + ".",
		Route:          "/verify-otp?email=" + url.QueryEscape(in.Email),
	}, fx, fx)
	if err := form.Submit(ctx, func(ctx context.Context) error {
		_, err := h.sessions.ForgotPassword(ctx, in)
		return err
	}); err != nil {
		render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Forgot password", "Send code", in, nil, nil))
	}
}

func (h *Handler) VerifyOTPPage(c *gin.Context) {
	in := domain.VerifyOTPForm{Email: c.Query("email")}
	v := h.formPage(c, http.StatusOK, "Enter your code", "Verify", in, nil, nil)
	v.Message = "Enter the 6-digit code we emailed you."
	render(c, http.StatusOK, "form.html", v)
}

// VerifyOTP trades the code for a reset token and continues to the reset form.
func (h *Handler) VerifyOTP(c *gin.Context) {
	ctx, span, _ := begin(c, "password.verify")
	defer span.End()

	var in domain.VerifyOTPForm
	if errs := bind(c, &in); errs != nil {
		render(c, http.StatusUnprocessableEntity, "form.html", h.formPage(c, http.StatusUnprocessableEntity, "Enter your code", "Verify", in, errs, nil))
		return
	}
	fx := effects(c)
	route := "/reset-password"
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "password.verify",
		SuccessTitle:   "Code accepted",
		SuccessMessage: "Choose a new password.",
	}, fx, laterRoute{fx: fx, route: &route})
	if err := form.Submit(ctx, func(ctx context.Context) error {
		tok, err := h.sessions.VerifyOTP(ctx, in)
		if err != nil {
			return err
		}
		route += "?token=" + url.QueryEscape(tok)
		return nil
	}); err != nil {
		render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Enter your code", "Verify", domain.VerifyOTPForm{Email: in.Email}, nil, nil))
	}
}

func (h *Handler) ResetPasswordPage(c *gin.Context) {
	in := domain.ResetPasswordForm{Token: c.Query("token")}
	render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Reset password", "Reset password", in, nil, nil))
}

func (h *Handler) ResetPassword(c *gin.Context) {
	ctx, span, _ := begin(c, "password.reset")
	defer span.End()

	var in domain.ResetPasswordForm
	if errs := bind(c, &in); errs != nil {
		render(c, http.StatusUnprocessableEntity, "form.html", h.formPage(c, http.StatusUnprocessableEntity, "Reset password", "Reset password", in, errs, nil))
		return
	}
	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           "password.reset",
		SuccessTitle:   "Password changed",
		SuccessMessage: "Sign in with your new password.",
		Route:          "/login",
	}, fx, fx)
	if err := form.Submit(ctx, func(ctx context.Context) error {
		return h.sessions.ResetPassword(ctx, in)
	}); err != nil {
		render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Reset password", "Reset password", domain.ResetPasswordForm{Token: in.Token}, nil, nil))
	}
}

func (h *Handler) AdminProfilePage(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Your profile", "Save", domain.AdminFormOf(*sess.Admin), nil, nil))
}

// AdminProfile updates the signed-in admin and refreshes the stored profile.
func (h *Handler) AdminProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	saveProfile(h, c, "admin.profile", "/admin/profile", func(f *domain.AdminForm) *domain.ImageInput { return &f.ImageInput },
		sess.Admin.ProfileURL, func(ctx context.Context, client *api.Client, f domain.AdminForm) error {
			_, err := client.UpdateAdmin(ctx, sess.Admin.ID, f.ToAdmin())
			return err
		})
}

func (h *Handler) UserProfilePage(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Your profile", "Save", domain.UserFormOf(*sess.User), nil, nil))
}

func (h *Handler) UserProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	saveProfile(h, c, "user.profile", "/profile", func(f *domain.UserForm) *domain.ImageInput { return &f.ImageInput },
		sess.User.ProfileURL, func(ctx context.Context, client *api.Client, f domain.UserForm) error {
			_, err := client.UpdateUser(ctx, sess.User.ID, f.ToUser())
			return err
		})
}

func saveProfile[F any](h *Handler, c *gin.Context, name, route string, image func(*F) *domain.ImageInput, previous string, save func(context.Context, *api.Client, F) error) {
	ctx, span, logger := begin(c, name)
	defer span.End()

	var f F
	if errs := bind(c, &f); errs != nil {
		render(c, http.StatusUnprocessableEntity, "form.html", h.formPage(c, http.StatusUnprocessableEntity, "Your profile", "Save", f, errs, nil))
		return
	}
	sess := middleware.CurrentSession(c)
	client := h.client(c)
	fx := effects(c)
	form := logicv1.NewForm(logicv1.FormConfig{
		Name:           name,
		SuccessTitle:   "Profile updated",
		SuccessMessage: "Your changes have been saved.",
		Route:          route,
	}, fx, fx)
	err := form.Submit(ctx, func(ctx context.Context) error {
		stale, err := logicv1.UploadImage(ctx, client, image(&f), previous)
		if err != nil {
			return err
		}
		if err := save(ctx, client, f); err != nil {
			return err
		}
		logicv1.DiscardImage(ctx, client, stale)
		// The API accepted the change; a stale session profile only lasts until the next refresh.
		if err := h.sessions.Refresh(ctx, sess); err != nil {
			logger.Warn("Failed to refresh session profile", zap.String("form", name), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		logger.Warn("Profile update failed", zap.String("form", name), zap.Error(err))
		render(c, http.StatusOK, "form.html", h.formPage(c, http.StatusOK, "Your profile", "Save", f, nil, nil))
	}
}
