package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for document lifecycle operations.
type Metrics struct {
	DocumentsRegistered *prometheus.CounterVec
	DocumentsAmended    prometheus.Counter
	StatusTransitions   *prometheus.CounterVec
	BadgesMinted        prometheus.Counter
	RiskAssessments     *prometheus.CounterVec
	RegisterLatency     prometheus.Histogram
}

// New registers document metrics with reg. A nil registerer uses the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_documents_registered_total",
			Help: "Total number of documents registered, labeled by type",
		}, []string{"type"}),
		DocumentsAmended: factory.NewCounter(prometheus.CounterOpts{
			Name: "contium_documents_amended_total",
			Help: "Total number of document versions appended after registration",
		}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_document_status_transitions_total",
			Help: "Total number of status changes, labeled by target status",
		}, []string{"status"}),
		BadgesMinted: factory.NewCounter(prometheus.CounterOpts{
			Name: "contium_badges_minted_total",
			Help: "Total number of compliance badges minted",
		}),
		RiskAssessments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_risk_assessments_total",
			Help: "Total number of invoice risk analyses, labeled by risk level",
		}, []string{"level"}),
		RegisterLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contium_document_register_latency_seconds",
			Help:    "Latency of document registration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncRegistered(docType string) {
	m.DocumentsRegistered.WithLabelValues(docType).Inc()
}

func (m *Metrics) IncAmended() {
	m.DocumentsAmended.Inc()
}

func (m *Metrics) IncStatusTransition(status string) {
	m.StatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncBadgeMinted() {
	m.BadgesMinted.Inc()
}

func (m *Metrics) IncRiskAssessment(level string) {
	m.RiskAssessments.WithLabelValues(level).Inc()
}

func (m *Metrics) ObserveRegisterLatency(seconds float64) {
	m.RegisterLatency.Observe(seconds)
}
