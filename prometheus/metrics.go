package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Registration counters
	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_register_total",
			Help: "Total number of user registrations",
		},
	)

	// Refresh token rotation counter
	RefreshCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_refresh_total",
			Help: "Total number of refresh token rotations",
		},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "invalid_credentials", "invalid_token", "token_reuse" etc.
	)

	// Catalogue operation counter
	CatalogOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalogue operations by entity",
		},
		[]string{"entity", "operation"}, // operation is "create", "view", "update", "delete", "multi_delete", "change_status"
	)

	// Upload counter
	UploadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_files_total",
			Help: "Total number of uploaded files by destination folder",
		},
		[]string{"folder"},
	)
)

// Histogram metrics
var (
	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// ActiveSessions tracks users holding a live refresh token
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "auth_active_sessions",
			Help: "Number of users with an active refresh token",
		},
	)
)

var initialized bool

// InitMetrics registers all domain metrics with the default registry
func InitMetrics() {
	if initialized {
		return
	}
	prometheus.MustRegister(
		LoginCounter,
		RegisterCounter,
		RefreshCounter,
		AuthErrorCounter,
		CatalogOperationCounter,
		UploadCounter,
		DBOperationDuration,
		ActiveSessions,
	)
	initialized = true
}

// RecordAuthError increments the auth error counter for the given type
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// RecordCatalogOperation increments the catalogue operation counter
func RecordCatalogOperation(entity, operation string) {
	CatalogOperationCounter.WithLabelValues(entity, operation).Inc()
}

// TrackDBOperation returns a function that observes the elapsed time for a
// database operation. Use with defer: defer TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
