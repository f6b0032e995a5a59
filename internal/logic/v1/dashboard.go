package v1

import (
	"context"
	"maps"
	"math"
	"slices"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

// Card is one headline number of the dashboard.
type Card struct {
	Title string
	Value string
}

// Point is one slice of a chart with its share of the total.
type Point struct {
	Label   string
	Value   float64
	Percent float64
}

type Dashboard struct {
	Date   string
	Month  string
	Cards  []Card
	Series []Point
}

type Report struct {
	Area   domain.ReportArea
	Month  string
	Cards  []Card
	Series []Point
}

type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Load fetches the overview and the monthly split concurrently.
func (s *DashboardService) Load(ctx context.Context, client *api.Client, date, month string) (*Dashboard, error) {
	ctx, span := middleware.StartSpan(ctx, "dashboard.load", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("dashboard.month", month),
	))
	defer span.End()

	var (
		overview *domain.DashboardOverview
		pie      *domain.PieData
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = client.DashboardOverview(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		pie, err = client.PieData(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Date:  date,
		Month: month,
		Cards: []Card{
			{Title: "Users", Value: strconv.Itoa(overview.Users)},
			{Title: "Doctors", Value: strconv.Itoa(overview.Doctors)},
			{Title: "Clinics", Value: strconv.Itoa(overview.Clinics)},
			{Title: "Pet sitters", Value: strconv.Itoa(overview.Sitters)},
			{Title: "Cafe rooms", Value: strconv.Itoa(overview.Rooms)},
			{Title: "Clinic appointments", Value: strconv.Itoa(overview.ClinicAppointments)},
			{Title: "Care appointments", Value: strconv.Itoa(overview.CareAppointments)},
			{Title: "Room bookings", Value: strconv.Itoa(overview.RoomBookings)},
			{Title: "Revenue", Value: Money(overview.Revenue)},
		},
		Series: Shares(pie.Slices),
	}, nil
}

// Report loads the monthly report of one service area.
func (s *DashboardService) Report(ctx context.Context, client *api.Client, area domain.ReportArea, month string) (*Report, error) {
	ctx, span := middleware.StartSpan(ctx, "dashboard.report", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("report.area", string(area)),
	))
	defer span.End()

	r, err := client.AreaReport(ctx, area, month)
	if err != nil {
		return nil, err
	}
	out := &Report{Area: area, Month: month, Series: Shares(r.Series)}
	for _, k := range sortedKeys(r.Totals) {
		v := r.Totals[k]
		value := count(v)
		if k == "revenue" {
			value = Money(v)
		}
		out.Cards = append(out.Cards, Card{Title: Humanize(k), Value: value})
	}
	return out, nil
}

// Shares computes each slice's percentage of the total, rounded to one decimal.
// An all-zero series gets 0% everywhere.
func Shares(data []domain.PieSlice) []Point {
	var total float64
	for _, s := range data {
		total += s.Value
	}
	out := make([]Point, 0, len(data))
	for _, s := range data {
		p := Point{Label: s.Label, Value: s.Value}
		if total > 0 {
			p.Percent = math.Round(s.Value/total*1000) / 10
		}
		out = append(out, p)
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}
