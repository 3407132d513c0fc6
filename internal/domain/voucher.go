package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus is a voucher's lifecycle stage. Entries are final for
// reporting once the voucher leaves DRAFT.
type VoucherStatus string

const (
	VoucherStatusDraft     VoucherStatus = "DRAFT"
	VoucherStatusSubmitted VoucherStatus = "SUBMITTED"
	VoucherStatusAudited   VoucherStatus = "AUDITED"
	VoucherStatusPosted    VoucherStatus = "POSTED"
)

// VoucherNumberPrefix starts every generated voucher number
// ("V" + YYYYMM + 4-digit sequence).
const VoucherNumberPrefix = "V"

// Voucher is a single double-entry transaction record composed of
// balanced journal entries.
type Voucher struct {
	Number      string
	Date        time.Time
	Description string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Status      VoucherStatus
	CreatedBy   string
	AuditedBy   string
	AuditedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Entries     []*JournalEntry
}

// JournalEntry is one line of a voucher: an account, a direction and a
// positive amount. Customer and Supplier are optional memo fields.
type JournalEntry struct {
	ID            string
	VoucherNumber string
	AccountCode   string
	Direction     Direction
	Amount        decimal.Decimal
	Description   string
	Customer      string
	Supplier      string
	CreatedAt     time.Time
}

// PeriodFromVoucherNumber extracts the YYYYMM token embedded in a
// generated voucher number ("V2025010001" -> 202501).
func PeriodFromVoucherNumber(number string) (Period, error) {
	if len(number) < 7 || number[:1] != VoucherNumberPrefix {
		return Period{}, ErrInvalidPeriod
	}
	return ParsePeriod(number[1:7])
}

// Period derives the voucher's accounting period: the token embedded in
// the voucher number when present and well formed, otherwise the
// voucher date.
func (v *Voucher) Period() Period {
	if p, err := PeriodFromVoucherNumber(v.Number); err == nil {
		return p
	}
	return PeriodFromDate(v.Date)
}

// StatusIn reports whether the voucher's status is one of the given set.
func (v *Voucher) StatusIn(statuses ...VoucherStatus) bool {
	for _, s := range statuses {
		if v.Status == s {
			return true
		}
	}
	return false
}

// IsBalanced reports whether debit and credit totals match.
func (v *Voucher) IsBalanced() bool {
	return v.TotalDebit.Equal(v.TotalCredit)
}

// ComputeTotals sums the entry amounts per side into TotalDebit and
// TotalCredit.
func (v *Voucher) ComputeTotals() {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range v.Entries {
		if e.Direction == DirectionDebit {
			debit = debit.Add(e.Amount)
		} else {
			credit = credit.Add(e.Amount)
		}
	}
	v.TotalDebit = debit
	v.TotalCredit = credit
}

// Validate enforces the creation invariants: at least two entries,
// valid directions, positive amounts, and balanced totals.
func (v *Voucher) Validate() error {
	if len(v.Entries) < 2 {
		return ErrTooFewEntries
	}
	for _, e := range v.Entries {
		if e.AccountCode == "" {
			return ErrInvalidAccount
		}
		if !e.Direction.Valid() {
			return ErrInvalidDirection
		}
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}
	}

	v.ComputeTotals()
	if !v.IsBalanced() {
		return ErrUnbalancedVoucher
	}

	return nil
}
