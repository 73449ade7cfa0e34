// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripsplit"

// Summary failure reasons.
const (
	ReasonNotFound   = "not_found"
	ReasonBadData    = "bad_data"
	ReasonUnbalanced = "unbalanced"
	ReasonStorage    = "storage"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing,
// which keeps tests and METRICS_ENABLED=false free of nil checks.
type Metrics struct {
	RPCRequests           *prometheus.CounterVec
	RPCDuration           *prometheus.HistogramVec
	Summaries             prometheus.Counter
	SummaryFailures       *prometheus.CounterVec
	SettlementsPerSummary prometheus.Histogram
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Summaries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_total",
			Help:      "Trip summaries computed successfully.",
		}),
		SummaryFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_failures_total",
			Help:      "Trip summaries that could not be computed, by reason.",
		}, []string{"reason"}),
		SettlementsPerSummary: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlements_per_summary",
			Help:      "Number of transfers suggested per summary.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, seconds float64) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(seconds)
}

// SummaryComputed records a successful summary with n settlements.
func (m *Metrics) SummaryComputed(n int) {
	if m == nil {
		return
	}
	m.Summaries.Inc()
	m.SettlementsPerSummary.Observe(float64(n))
}

// SummaryFailed records a summary that failed for reason.
func (m *Metrics) SummaryFailed(reason string) {
	if m == nil {
		return
	}
	m.SummaryFailures.WithLabelValues(reason).Inc()
}
