package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the maintenance engine
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Domain Metrics
	MutationsTotal   prometheus.CounterVec
	OpenSquawks      prometheus.Gauge
	ActiveDeferrals  prometheus.Gauge
	GroundedAircraft prometheus.Gauge
	ActiveAlerts     prometheus.Gauge
	OverallMTTRHours prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mxops_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mxops_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mxops_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mxops_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mxops_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Domain Metrics
		MutationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mxops_mutations_total",
				Help: "Total store mutations by entity and operation",
			},
			[]string{"entity", "operation"},
		),
		OpenSquawks: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mxops_open_squawks",
				Help: "Current number of open squawks",
			},
		),
		ActiveDeferrals: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mxops_active_deferrals",
				Help: "Current number of active MEL/CDL deferrals",
			},
		),
		GroundedAircraft: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mxops_grounded_aircraft",
				Help: "Current number of grounded aircraft",
			},
		),
		ActiveAlerts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mxops_active_alerts",
				Help: "Current number of generated alerts",
			},
		),
		OverallMTTRHours: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mxops_overall_mttr_hours",
				Help: "Mean time to repair across completed work orders, in hours",
			},
		),
	}
}
