package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the site backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	LoginFailuresTotal prometheus.Counter
	UploadsTotal       prometheus.Counter
	TeamMembersTotal   prometheus.Gauge
	SubscribersTotal   prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ieee_site_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ieee_site_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ieee_site_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ieee_site_cache_hits_total",
				Help: "Cache hits by cache key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ieee_site_cache_misses_total",
				Help: "Cache misses by cache key prefix",
			},
			[]string{"prefix"},
		),

		// Business Metrics
		LoginFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ieee_site_login_failures_total",
				Help: "Failed admin login attempts",
			},
		),
		UploadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ieee_site_uploads_total",
				Help: "Images uploaded to the media host",
			},
		),
		TeamMembersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ieee_site_team_members_total",
				Help: "Current number of team member records",
			},
		),
		SubscribersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ieee_site_subscribers_total",
				Help: "Current number of newsletter subscribers",
			},
		),
	}
}
