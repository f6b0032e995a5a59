package api

import (
	"context"
	"net/http"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// DashboardOverview returns the counts for date (YYYY-MM-DD, empty for today).
func (c *Client) DashboardOverview(ctx context.Context, date string) (*domain.DashboardOverview, error) {
	var out domain.DashboardOverview
	if err := c.do(ctx, http.MethodGet, "/reports/dashboard/overview", &ListParams{Date: date}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PieData returns the bookings split per service area for month (YYYY-MM).
func (c *Client) PieData(ctx context.Context, month string) (*domain.PieData, error) {
	var out domain.PieData
	if err := c.do(ctx, http.MethodGet, "/reports/dashboard/pie-data", &ListParams{Month: month}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AreaReport returns the monthly figures of one service area.
func (c *Client) AreaReport(ctx context.Context, area domain.ReportArea, month string) (*domain.AreaReport, error) {
	var out domain.AreaReport
	if err := c.do(ctx, http.MethodGet, "/reports/"+string(area), &ListParams{Month: month}, nil, &out); err != nil {
		return nil, err
	}
	out.Area = area
	return &out, nil
}
