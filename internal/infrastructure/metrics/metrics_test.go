package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/finbook/internal/domain"
)

func TestMetricsRecordCounters(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	m.VoucherCreated()
	m.VoucherCreated()
	m.VoucherStatusChanged(domain.VoucherStatusSubmitted)
	m.StatementGenerated("balance_sheet")
	m.ImbalanceDetected()

	if got := testutil.ToFloat64(m.vouchersCreated); got != 2 {
		t.Fatalf("expected 2 vouchers created, got %v", got)
	}

	if got := testutil.ToFloat64(m.voucherStatusChanges.WithLabelValues("SUBMITTED")); got != 1 {
		t.Fatalf("expected 1 status change, got %v", got)
	}

	if got := testutil.ToFloat64(m.statementsGenerated.WithLabelValues("balance_sheet")); got != 1 {
		t.Fatalf("expected 1 statement generated, got %v", got)
	}

	if got := testutil.ToFloat64(m.imbalancesDetected); got != 1 {
		t.Fatalf("expected 1 imbalance detected, got %v", got)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}
