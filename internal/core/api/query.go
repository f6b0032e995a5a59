package api

import (
	"fmt"
	"net/url"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListParams holds every optional query key the API understands.
// Zero values are left out of the query string. The form tags let the console
// bind the same struct from its own query string.
type ListParams struct {
	Page       int                  `schema:"page,omitempty" form:"page"`
	PageSize   int                  `schema:"pageSize,omitempty" form:"pageSize"`
	Date       string               `schema:"date,omitempty" form:"date"`
	Month      string               `schema:"month,omitempty" form:"month"`
	Status     domain.BookingStatus `schema:"status,omitempty" form:"status"`
	UserID     int                  `schema:"userId,omitempty" form:"userId"`
	DoctorID   int                  `schema:"doctorId,omitempty" form:"doctorId"`
	ClinicID   int                  `schema:"clinicId,omitempty" form:"clinicId"`
	RoomID     int                  `schema:"roomId,omitempty" form:"roomId"`
	SitterID   int                  `schema:"sitterId,omitempty" form:"sitterId"`
	ServiceID  int                  `schema:"serviceId,omitempty" form:"serviceId"`
	PetID      int                  `schema:"petId,omitempty" form:"petId"`
	CategoryID int                  `schema:"categoryId,omitempty" form:"categoryId"`
	Search     string               `schema:"search,omitempty" form:"search"`
}

// encodeQuery returns the flat query string for p.
func (c *Client) encodeQuery(p ListParams) (string, error) {
	values := url.Values{}
	if err := c.query.Encode(p, values); err != nil {
		return "", fmt.Errorf("api: encode query: %w", err)
	}
	return values.Encode(), nil
}
