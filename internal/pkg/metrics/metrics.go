package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "internhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	applicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "applications",
			Name:      "submitted_total",
			Help:      "Total number of internship applications created.",
		},
	)

	applicationsWithdrawn = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "applications",
			Name:      "withdrawn_total",
			Help:      "Total number of internship applications withdrawn.",
		},
	)

	reportsExported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "reports",
			Name:      "csv_exports_total",
			Help:      "Total number of CSV report downloads served.",
		},
	)

	internshipsDeactivated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "sweeper",
			Name:      "internships_deactivated_total",
			Help:      "Total number of internships deactivated by the deadline sweeper.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		applicationsSubmitted,
		applicationsWithdrawn,
		reportsExported,
		internshipsDeactivated,
	)
}

// Handler returns the HTTP handler exposing the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latencies per route
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ApplicationSubmitted increments the submitted-applications counter
func ApplicationSubmitted() { applicationsSubmitted.Inc() }

// ApplicationWithdrawn increments the withdrawn-applications counter
func ApplicationWithdrawn() { applicationsWithdrawn.Inc() }

// ReportExported increments the CSV export counter
func ReportExported() { reportsExported.Inc() }

// InternshipsDeactivated adds to the sweeper deactivation counter
func InternshipsDeactivated(n int) { internshipsDeactivated.Add(float64(n)) }
