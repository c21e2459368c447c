package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the audit publisher.
type Metrics struct {
	QueueDepth      prometheus.Gauge
	EventsDropped   prometheus.Counter
	EventsEmitted   *prometheus.CounterVec
	PersistFailures prometheus.Counter
}

// New registers the audit publisher metrics with reg. A nil registerer uses
// the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "contium_audit_queue_depth",
			Help: "Current number of events in the audit publisher queue",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "contium_audit_events_dropped_total",
			Help: "Total number of audit events dropped due to full buffer",
		}),
		EventsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contium_audit_events_emitted_total",
			Help: "Total number of audit events accepted, labeled by category",
		}, []string{"category"}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "contium_audit_persist_failures_total",
			Help: "Total number of audit event persistence failures",
		}),
	}
}

// IncQueueDepth increments the queue depth gauge.
func (m *Metrics) IncQueueDepth() {
	m.QueueDepth.Inc()
}

// DecQueueDepth decrements the queue depth gauge.
func (m *Metrics) DecQueueDepth() {
	m.QueueDepth.Dec()
}

// IncEventsDropped increments the dropped events counter.
func (m *Metrics) IncEventsDropped() {
	m.EventsDropped.Inc()
}

// IncEventsEmitted counts an accepted event in its category.
func (m *Metrics) IncEventsEmitted(category string) {
	m.EventsEmitted.WithLabelValues(category).Inc()
}

// IncPersistFailures increments the persist failures counter.
func (m *Metrics) IncPersistFailures() {
	m.PersistFailures.Inc()
}
