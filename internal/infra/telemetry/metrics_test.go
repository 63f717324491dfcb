package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	metrics.RecordSearch()
	metrics.RecordSearch()
	metrics.RecordLedgerWrite("favorites")
	metrics.RecordToolOpen()

	require.Equal(t, 2.0, testutil.ToFloat64(metrics.searches))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ledgerWrites.WithLabelValues("favorites")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.storeErrors))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordSearch()
	metrics.RecordLedgerWrite("recents")
	metrics.RecordStoreError()
	metrics.RecordToolOpen()
}
