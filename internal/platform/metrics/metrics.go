package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for catalog traffic. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Upstream catalog calls by endpoint and status ("200", "404", "error", ...)
	UpstreamRequests *prometheus.CounterVec

	// Upstream catalog latency by endpoint
	UpstreamLatency *prometheus.HistogramVec

	// Enrichment fields or entries replaced by a default value
	Degraded *prometheus.CounterVec

	// Full work aggregation latency
	AggregateLatency prometheus.Histogram
}

// New registers all metrics with reg. Pass prometheus.NewRegistry() in tests to
// avoid duplicate registration on the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookbrowser_upstream_requests_total",
			Help: "Catalog API requests by endpoint and status",
		}, []string{"endpoint", "status"}),

		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookbrowser_upstream_request_duration_seconds",
			Help:    "Duration of catalog API requests by endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),

		Degraded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookbrowser_degraded_total",
			Help: "Fields or entries replaced by a default because the source was missing or malformed",
		}, []string{"operation", "field"}),

		AggregateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bookbrowser_work_aggregate_duration_seconds",
			Help:    "Duration of work detail aggregation including enrichment",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
	}
}

// ObserveUpstream records one catalog API attempt.
func (m *Metrics) ObserveUpstream(endpoint, status string, d time.Duration) {
	if m != nil {
		m.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
		m.UpstreamLatency.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// IncDegraded records a value that fell back to its default.
func (m *Metrics) IncDegraded(operation, field string) {
	if m != nil {
		m.Degraded.WithLabelValues(operation, field).Inc()
	}
}

// ObserveAggregate records the total work aggregation duration.
func (m *Metrics) ObserveAggregate(d time.Duration) {
	if m != nil {
		m.AggregateLatency.Observe(d.Seconds())
	}
}
