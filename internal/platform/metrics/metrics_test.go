package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream("work", "200", 120*time.Millisecond)
	m.ObserveUpstream("work", "200", 80*time.Millisecond)
	m.ObserveUpstream("author", "error", time.Second)
	m.IncDegraded("work_detail", "author")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("work", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("author", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Degraded.WithLabelValues("work_detail", "author")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream("work", "200", time.Millisecond)
		m.IncDegraded("search", "hit")
		m.ObserveAggregate(time.Millisecond)
	})
}
