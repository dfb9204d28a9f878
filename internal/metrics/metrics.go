// Package metrics owns the gateway's Prometheus collectors. They live on a
// private registry that is exposed on the admin listener.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pages_gateway"

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	deployOutcomes  *prometheus.CounterVec
	accessOutcomes  *prometheus.CounterVec
	vendorCalls     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP requests",
			Buckets:   histogramBuckets,
		}, []string{"method", "status"}),
		deployOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deploy_outcomes_total",
			Help:      "Number of deploy outcomes",
		}, []string{"outcome"}),
		accessOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_outcomes_total",
			Help:      "Number of access configuration outcomes",
		}, []string{"status"}),
		vendorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vendor_calls_total",
			Help:      "Number of calls made to the hosting provider API",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestTotal,
		m.requestDuration,
		m.deployOutcomes,
		m.accessOutcomes,
		m.vendorCalls,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordRequest(method string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestDuration.With(labels).Observe(duration.Seconds())
}

func (m *Metrics) RecordDeploy(outcome string) {
	m.deployOutcomes.With(prometheus.Labels{"outcome": outcome}).Inc()
}

func (m *Metrics) RecordAccess(status domain.AccessStatus) {
	m.accessOutcomes.With(prometheus.Labels{"status": string(status)}).Inc()
}

func (m *Metrics) RecordVendorCall(operation, outcome string) {
	m.vendorCalls.With(prometheus.Labels{"operation": operation, "outcome": outcome}).Inc()
}
