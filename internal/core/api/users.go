package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListUsers returns one page of user accounts.
func (c *Client) ListUsers(ctx context.Context, p ListParams) (*domain.Page[domain.User], error) {
	return list[domain.User](ctx, c, "/users", p)
}

// GetUser fetches a single user.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return get[domain.User](ctx, c, "/users/"+strconv.Itoa(id))
}

// UpdateUser patches a user profile.
func (c *Client) UpdateUser(ctx context.Context, id int, in domain.User) (*domain.User, error) {
	return send[domain.User](ctx, c, http.MethodPatch, "/users/"+strconv.Itoa(id), in)
}

// SetUserActive replaces the activity flag of a user.
func (c *Client) SetUserActive(ctx context.Context, id int, in domain.UserStatusForm) (*domain.User, error) {
	return send[domain.User](ctx, c, http.MethodPut, "/users/"+strconv.Itoa(id), in)
}

// ListAdmins returns one page of admin accounts.
func (c *Client) ListAdmins(ctx context.Context, p ListParams) (*domain.Page[domain.Admin], error) {
	return list[domain.Admin](ctx, c, "/admins", p)
}

// GetAdmin fetches a single admin.
func (c *Client) GetAdmin(ctx context.Context, id int) (*domain.Admin, error) {
	return get[domain.Admin](ctx, c, "/admins/"+strconv.Itoa(id))
}

// CreateAdmin registers a new admin account.
func (c *Client) CreateAdmin(ctx context.Context, in domain.AdminRegistrationForm) (*domain.Admin, error) {
	return send[domain.Admin](ctx, c, http.MethodPost, "/admins", in)
}

// UpdateAdmin patches an admin profile.
func (c *Client) UpdateAdmin(ctx context.Context, id int, in domain.Admin) (*domain.Admin, error) {
	return send[domain.Admin](ctx, c, http.MethodPatch, "/admins/"+strconv.Itoa(id), in)
}
