package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

const (
	outcomeOK           = "ok"
	outcomeError        = "error"
	outcomeTimeout      = "timeout"
	outcomeCanceled     = "canceled"
	outcomeNotConnected = "not_connected"
	outcomeUnsupported  = "unsupported"
)

// Metrics counts platform calls by outcome and records their latency. A nil
// *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the dispatch collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Platform calls partitioned by platform, operation and outcome
		calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adfleet_platform_calls_total",
				Help: "Total number of calls dispatched to ad platforms",
			},
			[]string{"platform", "operation", "outcome"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adfleet_platform_call_duration_seconds",
				Help:    "Ad platform call latencies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"platform", "operation"},
		),
	}
}

func (m *Metrics) observe(p domain.Platform, op port.Operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(string(p), string(op), outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(string(p), string(op)).Observe(elapsed.Seconds())
	}
}
