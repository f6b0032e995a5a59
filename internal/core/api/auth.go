package api

import (
	"context"
	"net/http"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// AdminLogin signs an admin in and returns the access token with the admin profile.
func (c *Client) AdminLogin(ctx context.Context, in domain.LoginForm) (*domain.AuthResponse, error) {
	return send[domain.AuthResponse](ctx, c, http.MethodPost, "/auth/admin-login", in)
}

// Login signs a pet owner in.
func (c *Client) Login(ctx context.Context, in domain.LoginForm) (*domain.AuthResponse, error) {
	return send[domain.AuthResponse](ctx, c, http.MethodPost, "/auth/login", in)
}

// Register creates a user account and signs it in.
func (c *Client) Register(ctx context.Context, in domain.RegisterForm) (*domain.AuthResponse, error) {
	return send[domain.AuthResponse](ctx, c, http.MethodPost, "/auth/register", in)
}

// ForgotPassword emails a one-time code to the account address.
func (c *Client) ForgotPassword(ctx context.Context, in domain.ForgotPasswordForm) (*domain.MessageResponse, error) {
	return send[domain.MessageResponse](ctx, c, http.MethodPost, "/auth/forgot-password", in)
}

// VerifyOTP exchanges the emailed code for a password reset token.
func (c *Client) VerifyOTP(ctx context.Context, in domain.VerifyOTPForm) (*domain.ResetTokenResponse, error) {
	return send[domain.ResetTokenResponse](ctx, c, http.MethodPost, "/auth/verify-otp", in)
}

// ResetPassword sets a new password using the token from VerifyOTP.
func (c *Client) ResetPassword(ctx context.Context, in domain.ResetPasswordForm) (*domain.MessageResponse, error) {
	return send[domain.MessageResponse](ctx, c, http.MethodPost, "/auth/reset-password", in)
}
