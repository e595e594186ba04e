// Package metrics holds the Prometheus collectors of the wallet service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "delivery_wallet"

// Metrics is a private registry plus the collectors recorded into it.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	mutations     *prometheus.CounterVec
	settlements   *prometheus.CounterVec
	codeAttempts  *prometheus.HistogramVec
	codeFallbacks *prometheus.CounterVec
	expired       *prometheus.CounterVec
	events        *prometheus.CounterVec
	retries       *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "mutations_total",
			Help:      "Wallet debits and credits by outcome.",
		}, []string{"direction", "category", "outcome"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "settlements_total",
			Help:      "Checkout settlements by outcome.",
		}, []string{"outcome"}),
		codeAttempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "codes",
			Name:      "generation_attempts",
			Help:      "Random draws needed to find a free code.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}, []string{"namespace"}),
		codeFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "codes",
			Name:      "fallbacks_total",
			Help:      "Codes issued from the time-based fallback.",
		}, []string{"namespace"}),
		expired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "janitor",
			Name:      "expired_total",
			Help:      "Records moved to EXPIRED by the sweeper.",
		}, []string{"kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Published wallet events by type and outcome.",
		}, []string{"type", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "retries_total",
			Help:      "Units of work retried after a transient store failure.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.httpInFlight, m.httpRequests, m.httpDuration,
		m.mutations, m.settlements, m.codeAttempts, m.codeFallbacks,
		m.expired, m.events, m.retries,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) InFlightInc() {
	if m != nil {
		m.httpInFlight.Inc()
	}
}

func (m *Metrics) InFlightDec() {
	if m != nil {
		m.httpInFlight.Dec()
	}
}

// ObserveHTTP records one finished request. path should be the route
// template, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveMutation counts a debit or credit. outcome is "ok" or an error code.
func (m *Metrics) ObserveMutation(direction, category, outcome string) {
	if m != nil {
		m.mutations.WithLabelValues(direction, category, outcome).Inc()
	}
}

// ObserveSettlement counts a checkout settlement outcome.
func (m *Metrics) ObserveSettlement(outcome string) {
	if m != nil {
		m.settlements.WithLabelValues(outcome).Inc()
	}
}

// ObserveCodeAttempts records how many draws a code needed.
func (m *Metrics) ObserveCodeAttempts(ns string, attempts int) {
	if m != nil {
		m.codeAttempts.WithLabelValues(ns).Observe(float64(attempts))
	}
}

func (m *Metrics) CodeFallback(ns string) {
	if m != nil {
		m.codeFallbacks.WithLabelValues(ns).Inc()
	}
}

func (m *Metrics) Expired(kind string, n int64) {
	if m != nil && n > 0 {
		m.expired.WithLabelValues(kind).Add(float64(n))
	}
}

func (m *Metrics) EventPublished(eventType, outcome string) {
	if m != nil {
		m.events.WithLabelValues(eventType, outcome).Inc()
	}
}

func (m *Metrics) Retry(operation string) {
	if m != nil {
		m.retries.WithLabelValues(operation).Inc()
	}
}
