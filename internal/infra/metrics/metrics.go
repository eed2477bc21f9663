package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
	outboxJobs    *prometheus.CounterVec
	carrierCalls  *prometheus.CounterVec
	trackingPolls *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDurations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		outboxJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_jobs_processed_total",
				Help: "Notification jobs processed by kind, topic and outcome.",
			},
			[]string{"kind", "topic", "outcome"},
		),
		carrierCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carrier_requests_total",
				Help: "Carrier API calls by operation and outcome.",
			},
			[]string{"carrier", "op", "outcome"},
		),
		trackingPolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracking_poll_updates_total",
				Help: "Tracking poller results per order.",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDurations,
		m.outboxJobs,
		m.carrierCalls,
		m.trackingPolls,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) OutboxJob(kind, topic, outcome string) {
	m.outboxJobs.WithLabelValues(kind, topic, outcome).Inc()
}

func (m *Metrics) CarrierCall(carrier, op string, err error) {
	m.carrierCalls.WithLabelValues(carrier, op, outcome(err)).Inc()
}

func (m *Metrics) TrackingPoll(outcome string) {
	m.trackingPolls.WithLabelValues(outcome).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
