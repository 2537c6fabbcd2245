// Package metrics holds the Prometheus metrics of the backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ledger"

// Metrics is a set of collectors with their own registry.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	warningsActive  *prometheus.GaugeVec
}

// New creates all collectors and registers them together with the
// Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"code", "method", "route"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method", "route"},
		),
		warningsActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "budget_warnings_active",
				Help:      "Number of budget limits that are reached or exceeded in their current window",
			},
			[]string{"period"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.warningsActive,
	)

	return m
}

// Middleware records the count and duration of requests.
//
// Requests are labeled with the route template, not the path, so that
// resource IDs do not create new series.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		code := strconv.Itoa(c.Writer.Status())
		m.requestsTotal.WithLabelValues(code, c.Request.Method, route).Inc()
		m.requestDuration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// SetWarnings sets the number of active budget warnings per period.
// Periods missing from counts are set to zero.
func (m *Metrics) SetWarnings(counts map[types.Period]int) {
	for _, p := range types.Periods {
		m.warningsActive.WithLabelValues(string(p)).Set(float64(counts[p]))
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer returns the registry of the metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
