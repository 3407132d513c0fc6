package report

import (
	"strings"

	"github.com/iho/finbook/internal/domain"
	"github.com/shopspring/decimal"
)

// RevenueCoded reports whether a profit-and-loss account code carries
// its balance on the credit side. Codes in the 64xx cost family and the
// 660x expense family accumulate on the debit side; every other 6xxx
// code is revenue-like.
func RevenueCoded(code string) bool {
	if !strings.HasPrefix(code, "6") {
		return false
	}
	return !strings.HasPrefix(code, "64") && !strings.HasPrefix(code, "660")
}

// StatementNetBalance computes the signed period movement of one
// account for statement purposes. Asset accounts and expense-coded
// profit accounts net debit minus credit; liability, equity and
// revenue-coded profit accounts net credit minus debit. A negative
// result is meaningful and is kept as-is; how it rolls up is the
// aggregator's concern.
//
// This convention is deliberately distinct from the general ledger
// roll-forward in domain.GeneralLedgerRow.RollForward: the two answer
// different questions and must not be unified.
func StatementNetBalance(typ domain.AccountType, code string, debit, credit decimal.Decimal) decimal.Decimal {
	switch typ {
	case domain.AccountTypeAsset, domain.AccountTypeCost:
		return debit.Sub(credit)
	case domain.AccountTypeLiability, domain.AccountTypeEquity:
		return credit.Sub(debit)
	case domain.AccountTypeProfit:
		if RevenueCoded(code) {
			return credit.Sub(debit)
		}
		return debit.Sub(credit)
	default:
		return decimal.Zero
	}
}
