package report

import (
	"github.com/iho/finbook/internal/domain"
	"github.com/shopspring/decimal"
)

// AutoCorrectLimit is the largest absolute imbalance the verifier will
// absorb into other assets. At or beyond this the sheet is stored as-is
// with the balanced flag cleared, so the imbalance stays visible.
var AutoCorrectLimit = decimal.NewFromInt(10)

// verifyAndCorrect inspects the difference between total assets and
// total liabilities plus equity, computed by the preceding Recalculate.
// Differences under the balance tolerance pass. Differences under the
// auto-correct limit are attributed to rounding drift and removed by
// adjusting other assets so assets equal liabilities plus equity
// exactly. Anything larger is left for a bookkeeper.
func verifyAndCorrect(s *domain.BalanceSheet) {
	diff := s.BalanceDiff
	if diff.Abs().LessThan(domain.BalanceTolerance) {
		return
	}
	if diff.Abs().LessThan(AutoCorrectLimit) {
		s.OtherAssets = s.OtherAssets.Sub(diff)
	}
}
