package airtable

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
}

// newMetrics registers the client's collectors on reg. A nil reg yields
// working but unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asb",
			Subsystem: "airtable",
			Name:      "requests_total",
			Help:      "Requests sent to the record service by table, method and status code.",
		}, []string{"table", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "asb",
			Subsystem: "airtable",
			Name:      "request_duration_seconds",
			Help:      "Latency of record service requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table", "method"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asb",
			Subsystem: "airtable",
			Name:      "retries_total",
			Help:      "Requests repeated after a retryable failure.",
		}, []string{"table"}),
	}
}

func (m *metrics) observe(table, method string, code int, started time.Time) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(table, method, label).Inc()
	m.duration.WithLabelValues(table, method).Observe(time.Since(started).Seconds())
}
