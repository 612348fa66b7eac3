// Package metrics provides Prometheus metrics for the daygrid service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus collectors on a dedicated registry.
type Manager struct {
	registry *prometheus.Registry

	// Store state
	venuesTotal prometheus.Gauge
	eventsTotal prometheus.Gauge

	// Core engine activity
	layoutPasses       prometheus.Counter
	layoutDuration     prometheus.Histogram
	layoutColumnsPeak  prometheus.Gauge
	daySwitches        prometheus.Counter
	validationFailures prometheus.Counter

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var (
	manager *Manager
	once    sync.Once
)

// Init creates the global metrics manager. Safe to call more than once.
func Init() {
	once.Do(func() {
		registry := prometheus.NewRegistry()
		factory := promauto.With(registry)

		manager = &Manager{
			registry: registry,
			venuesTotal: factory.NewGauge(prometheus.GaugeOpts{
				Name: "daygrid_venues_total",
				Help: "Number of venues currently stored.",
			}),
			eventsTotal: factory.NewGauge(prometheus.GaugeOpts{
				Name: "daygrid_events_total",
				Help: "Number of events currently stored.",
			}),
			layoutPasses: factory.NewCounter(prometheus.CounterOpts{
				Name: "daygrid_layout_passes_total",
				Help: "Day-view layout computations performed.",
			}),
			layoutDuration: factory.NewHistogram(prometheus.HistogramOpts{
				Name:    "daygrid_layout_duration_ms",
				Help:    "Duration of one day-view layout pass in milliseconds.",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50},
			}),
			layoutColumnsPeak: factory.NewGauge(prometheus.GaugeOpts{
				Name: "daygrid_layout_columns_peak",
				Help: "Widest venue lane (columns) in the last layout pass.",
			}),
			daySwitches: factory.NewCounter(prometheus.CounterOpts{
				Name: "daygrid_day_switches_total",
				Help: "Times the selected day changed.",
			}),
			validationFailures: factory.NewCounter(prometheus.CounterOpts{
				Name: "daygrid_validation_failures_total",
				Help: "User inputs rejected by validation.",
			}),
			httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "daygrid_http_requests_total",
				Help: "HTTP requests by endpoint, method and status.",
			}, []string{"endpoint", "method", "status"}),
			httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "daygrid_http_request_duration_ms",
				Help:    "HTTP request duration in milliseconds.",
				Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
			}, []string{"endpoint", "method", "status"}),
		}
	})
}

// GetRegistry returns the registry backing /healthz.
func GetRegistry() *prometheus.Registry {
	Init()
	return manager.registry
}

// SetVenueCount records the current venue count.
func SetVenueCount(n int) {
	Init()
	manager.venuesTotal.Set(float64(n))
}

// SetEventCount records the current event count.
func SetEventCount(n int) {
	Init()
	manager.eventsTotal.Set(float64(n))
}

// RecordLayoutPass records one day-view layout computation.
func RecordLayoutPass(durationMs float64, peakColumns int) {
	Init()
	manager.layoutPasses.Inc()
	manager.layoutDuration.Observe(durationMs)
	manager.layoutColumnsPeak.Set(float64(peakColumns))
}

// RecordDaySwitch records a change of the selected day.
func RecordDaySwitch() {
	Init()
	manager.daySwitches.Inc()
}

// RecordValidationFailure records a rejected user input.
func RecordValidationFailure() {
	Init()
	manager.validationFailures.Inc()
}

// RecordHTTPRequest records one finished HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	Init()
	manager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records a request's latency.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	Init()
	manager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}
