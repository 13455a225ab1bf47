// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the monthly summary engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SummaryRecorder receives one observation per computed monthly summary.
type SummaryRecorder interface {
	ObserveSummary(month string, duration time.Duration, over, warn int)
}

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	summaryDuration prometheus.Histogram
	summariesTotal  prometheus.Counter
	budgetAlerts    *prometheus.GaugeVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		summaryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_duration_milliseconds",
				Help:    "Monthly summary computation time in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
			},
		),
		summariesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_summaries_total",
				Help: "Total number of monthly summaries computed",
			},
		),
		budgetAlerts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_budget_alerts",
				Help: "Budgets in over/warn state for the most recently summarized month",
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSummary implements SummaryRecorder.
func (m *Metrics) ObserveSummary(_ string, duration time.Duration, over, warn int) {
	m.summariesTotal.Inc()
	m.summaryDuration.Observe(float64(duration.Microseconds()) / 1000)
	m.budgetAlerts.WithLabelValues("over").Set(float64(over))
	m.budgetAlerts.WithLabelValues("warn").Set(float64(warn))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
