package matrixapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/gorcmap/export"
)

// Export outcomes.
const (
	outcomeSuccess     = "success"
	outcomeClientError = "client_error"
	outcomeError       = "error"
)

// metrics holds the component's collectors on a private registry so that
// several components can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	exports  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bytes    *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gorcmap",
			Name:      "exports_total",
			Help:      "Export requests by kind, taxonomy and outcome.",
		}, []string{"kind", "taxonomy", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gorcmap",
			Name:      "export_duration_seconds",
			Help:      "Time spent producing an export artifact.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"kind"}),
		bytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gorcmap",
			Name:      "export_bytes",
			Help:      "Size of produced export artifacts.",
			Buckets:   prometheus.ExponentialBuckets(256, 2, 10),
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		m.exports,
		m.duration,
		m.bytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// observe records one export attempt. taxonomy is the raw selector for
// rejected requests, so it is folded to "invalid" to bound label cardinality.
func (m *metrics) observe(kind export.Kind, taxonomy, outcome string, elapsed time.Duration, size int) {
	if outcome == outcomeClientError {
		taxonomy = "invalid"
	}
	m.exports.WithLabelValues(string(kind), taxonomy, outcome).Inc()
	if outcome != outcomeSuccess {
		return
	}
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	m.bytes.WithLabelValues(string(kind)).Observe(float64(size))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
