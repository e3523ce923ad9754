package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Campo
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Session cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	ResourcesCreatedTotal *prometheus.CounterVec
	RemindersSentTotal    prometheus.Counter
	FeedClients           prometheus.Gauge
	JobDuration           *prometheus.HistogramVec
}

// NewMetricsRegistry registers every metric on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	f := promauto.With(reg)
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campo_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campo_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campo_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Database Metrics
		DBQueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campo_db_queries_total",
				Help: "Total database queries by operation type and table",
			},
			[]string{"query_type", "table"},
		),
		DBQueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campo_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Session cache Metrics
		CacheHitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campo_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campo_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		ResourcesCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campo_resources_created_total",
				Help: "Total records created by resource type",
			},
			[]string{"resource"},
		),
		RemindersSentTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "campo_reminders_sent_total",
				Help: "Total preaching day reminders issued",
			},
		),
		FeedClients: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "campo_feed_clients",
				Help: "Current number of connected notification feed clients",
			},
		),
		JobDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campo_job_duration_seconds",
				Help:    "Background job execution time in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"job_name"},
		),
	}
}

// Created records one new row of the given resource. Safe on a nil registry.
func (m *MetricsRegistry) Created(resource string) {
	if m == nil {
		return
	}
	m.ResourcesCreatedTotal.WithLabelValues(resource).Inc()
}
