package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the observation store.
type Metrics struct {
	ObservationsIngested prometheus.Counter
	DeletesTotal         prometheus.Counter
	DeleteFailures       prometheus.Counter
	AuditEntriesWritten  prometheus.Counter
}

// NewMetrics creates all metrics and registers them with the given
// registerer. Tests pass a fresh registry to avoid duplicate
// registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ObservationsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wxdb",
			Name:      "observations_ingested_total",
			Help:      "Total observation rows written to tbl_level1.",
		}),
		DeletesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wxdb",
			Name:      "observation_deletes_total",
			Help:      "Total committed observation deletions.",
		}),
		DeleteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wxdb",
			Name:      "observation_delete_failures_total",
			Help:      "Total observation deletions rolled back.",
		}),
		AuditEntriesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wxdb",
			Name:      "audit_entries_written_total",
			Help:      "Total audit entries committed for deletions.",
		}),
	}

	reg.MustRegister(
		m.ObservationsIngested,
		m.DeletesTotal,
		m.DeleteFailures,
		m.AuditEntriesWritten,
	)

	return m
}
