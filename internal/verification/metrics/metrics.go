package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for verification runs.
type Metrics struct {
	VerificationsRun    *prometheus.CounterVec
	ChecksFailed        *prometheus.CounterVec
	StagedRunsCancelled prometheus.Counter
	VerifyLatency       prometheus.Histogram
}

// New registers verification metrics with reg. A nil registerer uses the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		VerificationsRun: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_verifications_total",
			Help: "Total number of verification runs, labeled by outcome",
		}, []string{"outcome"}),
		ChecksFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_verification_checks_failed_total",
			Help: "Total number of failed zero-trust checks, labeled by check",
		}, []string{"check"}),
		StagedRunsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "contium_verification_staged_cancelled_total",
			Help: "Total number of staged verification runs cancelled before completion",
		}),
		VerifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contium_verification_latency_seconds",
			Help:    "Latency of verification runs in seconds, excluding display pacing",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncVerification(valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.VerificationsRun.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncCheckFailed(check string) {
	m.ChecksFailed.WithLabelValues(check).Inc()
}

func (m *Metrics) IncStagedCancelled() {
	m.StagedRunsCancelled.Inc()
}

func (m *Metrics) ObserveVerifyLatency(seconds float64) {
	m.VerifyLatency.Observe(seconds)
}
