package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the crypto tracker
var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_tracker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPResponseSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_tracker_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)

	// External API Metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_tracker_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"service", "endpoint"},
	)

	ExternalAPIRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_external_api_retries_total",
			Help: "Total number of external API retry attempts",
		},
		[]string{"service", "endpoint", "attempt"},
	)

	// View Metrics
	ViewLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_view_loads_total",
			Help: "Total number of view data loads by view, resource and result",
		},
		[]string{"view", "resource", "result"}, // result: success/error/not_found
	)

	StaleResponsesDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_stale_responses_discarded_total",
			Help: "Responses dropped because a newer load superseded them",
		},
		[]string{"resource"}, // resource: coin/chart
	)

	ListingSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_tracker_listing_size",
			Help: "Number of assets returned by the last successful listing load",
		},
	)

	// Application Metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crypto_tracker_application_info",
			Help: "Application information",
		},
		[]string{"version", "environment", "go_version"},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

	if responseSize > 0 {
		HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordExternalAPICall records external API call metrics; duration is in seconds
func RecordExternalAPICall(service, endpoint string, statusCode int, duration float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(duration)
}

// RecordExternalAPIRetry records external API retry attempts
func RecordExternalAPIRetry(service, endpoint string, attempt int) {
	ExternalAPIRetries.WithLabelValues(service, endpoint, strconv.Itoa(attempt)).Inc()
}

// RecordViewLoad records the outcome of one view fetch
func RecordViewLoad(view, resource, result string) {
	ViewLoadsTotal.WithLabelValues(view, resource, result).Inc()
}

// RecordStaleResponse records a response dropped by the generation guard
func RecordStaleResponse(resource string) {
	StaleResponsesDiscarded.WithLabelValues(resource).Inc()
}

// UpdateListingSize updates the listing size gauge
func UpdateListingSize(n int) {
	ListingSize.Set(float64(n))
}

// SetApplicationInfo sets application information
func SetApplicationInfo(version, environment, goVersion string) {
	ApplicationInfo.WithLabelValues(version, environment, goVersion).Set(1)
}
