package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported through the info gauge
const Version = "1.0.0"

var serviceName = "qads"

// Counter metrics
var (
	// Login attempts
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qads_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Client onboardings
	OnboardingCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qads_onboarding_total",
			Help: "Total number of client onboarding attempts",
		},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qads_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "invalid_session", "invalid_credentials", "duplicate_username" etc.
	)

	// Scoped mutations that matched no row (missing or owned by another client)
	NotOwnedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qads_not_found_or_not_owned_total",
			Help: "Total number of scoped mutations that affected no row",
		},
		[]string{"entity", "operation"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qads_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// Status code category counter
	StatusCodeCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qads_http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category", "method", "path"},
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qads_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// Store operation duration, including time spent waiting for the store lock
	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qads_store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Gauge metrics
var (
	// Live sessions in the registry
	ActiveSessionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "qads_active_sessions",
			Help: "Number of sessions currently held in memory",
		},
	)

	// Service info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "qads_info",
			Help: "Information about the service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(OnboardingCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(NotOwnedCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(StatusCodeCategoryCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(StoreOperationDuration)

	prometheus.MustRegister(ActiveSessionsGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": Version}).Set(1)
}

// InitMetrics sets the service label used on HTTP metrics
func InitMetrics(prefix string) {
	if prefix != "" {
		serviceName = prefix
	}
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackStoreOperation starts a timer for a store operation; call the
// returned func when the operation finishes.
func TrackStoreOperation(operation string) func() {
	start := time.Now()
	return func() {
		StoreOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(time.Since(start).Seconds())
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordNotOwned records a scoped mutation that affected no row
func RecordNotOwned(entity, operation string) {
	NotOwnedCounter.With(prometheus.Labels{"entity": entity, "operation": operation}).Inc()
}

// SetActiveSessions updates the active sessions gauge
func SetActiveSessions(count int) {
	ActiveSessionsGauge.Set(float64(count))
}

// MetricsMiddleware records request count, duration and status category
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			HTTPRequestCounter.WithLabelValues(serviceName, method, path, statusStr).Inc()
			RequestDuration.WithLabelValues(serviceName, method, path, statusStr).Observe(time.Since(start).Seconds())
			incrementStatusCategory(status, method, path)

			return err
		}
	}
}

func incrementStatusCategory(status int, method, path string) {
	category := ""
	switch {
	case status >= 200 && status < 300:
		category = "2xx"
	case status >= 400 && status < 500:
		category = "4xx"
	case status >= 500 && status < 600:
		category = "5xx"
	}

	if category != "" {
		StatusCodeCategoryCounter.WithLabelValues(serviceName, category, method, path).Inc()
	}
}
