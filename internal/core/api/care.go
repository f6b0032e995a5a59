package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListCareServices returns one page of care services.
func (c *Client) ListCareServices(ctx context.Context, p ListParams) (*domain.Page[domain.CareService], error) {
	return list[domain.CareService](ctx, c, "/care-services", p)
}

// GetCareService fetches a single care service.
func (c *Client) GetCareService(ctx context.Context, id int) (*domain.CareService, error) {
	return get[domain.CareService](ctx, c, "/care-services/"+strconv.Itoa(id))
}

// CreateCareService adds a care service.
func (c *Client) CreateCareService(ctx context.Context, in domain.CareService) (*domain.CareService, error) {
	return send[domain.CareService](ctx, c, http.MethodPost, "/care-services", in)
}

// UpdateCareService replaces the whole service; the API has no partial update here.
func (c *Client) UpdateCareService(ctx context.Context, id int, in domain.CareService) (*domain.CareService, error) {
	return send[domain.CareService](ctx, c, http.MethodPut, "/care-services/"+strconv.Itoa(id), in)
}

// ListCategories returns one page of care service categories.
func (c *Client) ListCategories(ctx context.Context, p ListParams) (*domain.Page[domain.Category], error) {
	return list[domain.Category](ctx, c, "/categories", p)
}

// ListPetSitters returns one page of pet sitters.
func (c *Client) ListPetSitters(ctx context.Context, p ListParams) (*domain.Page[domain.PetSitter], error) {
	return list[domain.PetSitter](ctx, c, "/pet-sitters", p)
}

// GetPetSitter fetches a single pet sitter.
func (c *Client) GetPetSitter(ctx context.Context, id int) (*domain.PetSitter, error) {
	return get[domain.PetSitter](ctx, c, "/pet-sitters/"+strconv.Itoa(id))
}

// CreatePetSitter adds a pet sitter.
func (c *Client) CreatePetSitter(ctx context.Context, in domain.PetSitter) (*domain.PetSitter, error) {
	return send[domain.PetSitter](ctx, c, http.MethodPost, "/pet-sitters", in)
}

// UpdatePetSitter patches a pet sitter.
func (c *Client) UpdatePetSitter(ctx context.Context, id int, in domain.PetSitter) (*domain.PetSitter, error) {
	return send[domain.PetSitter](ctx, c, http.MethodPatch, "/pet-sitters/"+strconv.Itoa(id), in)
}

// ListCareAppointments returns one page of care appointments.
func (c *Client) ListCareAppointments(ctx context.Context, p ListParams) (*domain.Page[domain.CareAppointment], error) {
	return list[domain.CareAppointment](ctx, c, "/care-appointments", p)
}

// CreateCareAppointment books a care service for a user.
func (c *Client) CreateCareAppointment(ctx context.Context, in domain.CareAppointment) (*domain.CareAppointment, error) {
	return send[domain.CareAppointment](ctx, c, http.MethodPost, "/care-appointments", in)
}
