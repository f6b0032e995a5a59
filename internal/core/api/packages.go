package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListPackages returns one page of packages.
func (c *Client) ListPackages(ctx context.Context, p ListParams) (*domain.Page[domain.Package], error) {
	return list[domain.Package](ctx, c, "/packages", p)
}

// GetPackage fetches a single package.
func (c *Client) GetPackage(ctx context.Context, id int) (*domain.Package, error) {
	return get[domain.Package](ctx, c, "/packages/"+strconv.Itoa(id))
}

// CreatePackage adds a package.
func (c *Client) CreatePackage(ctx context.Context, in domain.Package) (*domain.Package, error) {
	return send[domain.Package](ctx, c, http.MethodPost, "/packages", in)
}

// UpdatePackage replaces a package.
func (c *Client) UpdatePackage(ctx context.Context, id int, in domain.Package) (*domain.Package, error) {
	return send[domain.Package](ctx, c, http.MethodPut, "/packages/"+strconv.Itoa(id), in)
}

// PurchasePackage records a purchase. Card details never leave the console.
func (c *Client) PurchasePackage(ctx context.Context, id int, in domain.PurchaseRequest) (*domain.MessageResponse, error) {
	return send[domain.MessageResponse](ctx, c, http.MethodPost, "/packages/"+strconv.Itoa(id)+"/purchase", in)
}
