package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/finbook/internal/domain"
)

// Metrics holds business-level Prometheus metrics. It implements
// usecase.Metrics.
type Metrics struct {
	vouchersCreated      prometheus.Counter
	voucherStatusChanges *prometheus.CounterVec
	statementsGenerated  *prometheus.CounterVec
	imbalancesDetected   prometheus.Counter
}

// New creates and registers all business metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		vouchersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbook_vouchers_created_total",
			Help: "Total number of vouchers created",
		}),
		voucherStatusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbook_voucher_status_changes_total",
				Help: "Total voucher lifecycle transitions by target status",
			},
			[]string{"status"},
		),
		statementsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbook_statements_generated_total",
				Help: "Total financial statements generated by kind",
			},
			[]string{"kind"},
		),
		imbalancesDetected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbook_imbalances_detected_total",
			Help: "Total balance sheet imbalances detected during generation",
		}),
	}
}

// VoucherCreated increments the voucher creation counter.
func (m *Metrics) VoucherCreated() {
	m.vouchersCreated.Inc()
}

// VoucherStatusChanged records a voucher lifecycle transition.
func (m *Metrics) VoucherStatusChanged(status domain.VoucherStatus) {
	m.voucherStatusChanges.WithLabelValues(string(status)).Inc()
}

// StatementGenerated records a generated statement by kind
// ("balance_sheet", "income_statement", "general_ledger").
func (m *Metrics) StatementGenerated(kind string) {
	m.statementsGenerated.WithLabelValues(kind).Inc()
}

// ImbalanceDetected increments the imbalance counter.
func (m *Metrics) ImbalanceDetected() {
	m.imbalancesDetected.Inc()
}
