package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Duration of console HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "code"},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total number of console HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	requestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "requests_in_flight",
			Help: "Number of console HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	errorRate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "error_rate_total",
			Help: "Total number of console HTTP errors",
		},
		[]string{"method", "path", "code"},
	)

	apiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_call_duration_seconds",
			Help:    "Duration of calls to the backend API in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "code"},
	)

	apiCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_call_errors_total",
			Help: "Backend API calls that failed at the transport level or returned a non-2xx status",
		},
		[]string{"method", "route", "code"},
	)

	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Form and wizard submissions by outcome",
		},
		[]string{"form", "outcome"},
	)
)

// shouldCollectMetrics skips infrastructure endpoints and static assets.
func shouldCollectMetrics(path string) bool {
	for _, skipPath := range []string{"/health", "/ready", "/metrics", "/static"} {
		if strings.HasPrefix(path, skipPath) {
			return false
		}
	}
	return true
}

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldCollectMetrics(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		// Route template keeps ids out of the label set.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestsInFlight.WithLabelValues(method, path).Inc()
		defer requestsInFlight.WithLabelValues(method, path).Dec()

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(method, path, statusCode).Inc()
		if c.Writer.Status() >= 500 {
			errorRate.WithLabelValues(method, path, statusCode).Inc()
		}
	}
}

// ObserveAPICall records one outbound call. A zero code means the request never got a response.
func ObserveAPICall(method, route string, code int, d time.Duration) {
	label := strconv.Itoa(code)
	apiCallDuration.WithLabelValues(method, route, label).Observe(d.Seconds())
	if code == 0 || code >= 300 {
		apiCallErrors.WithLabelValues(method, route, label).Inc()
	}
}

// ObserveSubmission counts a form submission outcome: "success", "invalid" or "failed".
func ObserveSubmission(form, outcome string) {
	submissions.WithLabelValues(form, outcome).Inc()
}
