package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerRow is the per-account, per-period roll-forward of an
// opening balance plus period debit/credit activity into a closing
// balance.
type GeneralLedgerRow struct {
	Period      Period
	AccountCode string

	OpeningBalance   decimal.Decimal
	OpeningDirection Direction

	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal

	EndingBalance   decimal.Decimal
	EndingDirection Direction

	UpdatedAt time.Time
}

// RollForward computes the ending balance and direction with the
// generic ledger rule: opening + debit - credit when the opening side
// is DEBIT, opening + credit - debit otherwise; a negative result
// flips the side and keeps the absolute value.
//
// This is deliberately separate from the statement-specific net
// balance convention in the report package; the two are invoked in
// different contexts and must not be unified.
func (r *GeneralLedgerRow) RollForward() {
	var balance decimal.Decimal
	if r.OpeningDirection == DirectionDebit {
		balance = r.OpeningBalance.Add(r.DebitTotal).Sub(r.CreditTotal)
	} else {
		balance = r.OpeningBalance.Add(r.CreditTotal).Sub(r.DebitTotal)
	}

	if balance.Sign() >= 0 {
		r.EndingDirection = r.OpeningDirection
		r.EndingBalance = balance
	} else {
		r.EndingDirection = r.OpeningDirection.Opposite()
		r.EndingBalance = balance.Abs()
	}
}
