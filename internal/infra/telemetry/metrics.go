// Package telemetry exposes process metrics for the core operations.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the core operations. A nil *Metrics is safe to call;
// every recorder is a no-op then.
type Metrics struct {
	searches     prometheus.Counter
	ledgerWrites *prometheus.CounterVec
	storeErrors  prometheus.Counter
	toolOpens    prometheus.Counter
}

// NewMetrics registers the collectors with registerer, defaulting to
// the process-wide registry.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "haoin_searches_total",
			Help: "Total number of catalog searches",
		}),
		ledgerWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "haoin_ledger_writes_total",
			Help: "Total number of ledger mutations by ledger",
		}, []string{"ledger"}),
		storeErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "haoin_store_errors_total",
			Help: "Total number of preference store failures",
		}),
		toolOpens: factory.NewCounter(prometheus.CounterOpts{
			Name: "haoin_tool_opens_total",
			Help: "Total number of tool navigations recorded",
		}),
	}
}

func (m *Metrics) RecordSearch() {
	if m == nil {
		return
	}
	m.searches.Inc()
}

func (m *Metrics) RecordLedgerWrite(ledger string) {
	if m == nil {
		return
	}
	m.ledgerWrites.WithLabelValues(ledger).Inc()
}

func (m *Metrics) RecordStoreError() {
	if m == nil {
		return
	}
	m.storeErrors.Inc()
}

func (m *Metrics) RecordToolOpen() {
	if m == nil {
		return
	}
	m.toolOpens.Inc()
}
