// Package metrics provides Prometheus metrics for the showcase service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	rateLimitRejections prometheus.Counter
	contactAccepted     prometheus.Counter
	notifyDropped       prometheus.Counter
}

// Global manager on a custom registry so the default Go collectors stay out
// of the exposition.
var globalManager *Manager               //nolint:gochecknoglobals // singleton metrics manager
var registry = prometheus.NewRegistry() //nolint:gochecknoglobals // custom registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(registry))
}

// NewManager creates a metrics manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "showcase",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initCollectors()
	return m
}

func (m *Manager) initCollectors() {
	factory := promauto.With(m.registry)

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by endpoint and method.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.httpErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP error responses by endpoint and error type.",
	}, []string{"endpoint", "method", "type"})

	m.rateLimitRejections = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected by the per-address rate limiter.",
	})

	m.contactAccepted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "messages_total",
		Help:      "Contact messages accepted for dispatch.",
	})

	m.notifyDropped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "dropped_total",
		Help:      "Contact messages dropped because the dispatch queue was full.",
	})
}

// GetRegistry returns the registry backing the global manager, for serving.
func GetRegistry() *prometheus.Registry {
	return registry
}

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records request latency in seconds.
func RecordHTTPRequestDuration(endpoint, method string, seconds float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

// RecordHTTPError records an error response by standardized type.
func RecordHTTPError(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordRateLimitRejection counts a 429 produced by the rate limiter.
func RecordRateLimitRejection() {
	if !globalManager.enabled {
		return
	}
	globalManager.rateLimitRejections.Inc()
}

// RecordContactAccepted counts a contact message handed to the dispatcher.
func RecordContactAccepted() {
	if !globalManager.enabled {
		return
	}
	globalManager.contactAccepted.Inc()
}

// RecordContactDropped counts a contact message lost to queue backpressure.
func RecordContactDropped() {
	if !globalManager.enabled {
		return
	}
	globalManager.notifyDropped.Inc()
}
