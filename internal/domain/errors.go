package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account code already in use")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidAccount     = errors.New("account code and name are required")
	ErrInvalidAccountType = errors.New("unknown account type")
	ErrInvalidDirection   = errors.New("direction must be DEBIT or CREDIT")

	// Voucher errors
	ErrVoucherNotFound         = errors.New("voucher not found")
	ErrVoucherNotDraft         = errors.New("only draft vouchers can be modified")
	ErrInvalidStatusTransition = errors.New("voucher status transition not allowed")
	ErrUnbalancedVoucher       = errors.New("voucher debits do not equal credits")
	ErrTooFewEntries           = errors.New("voucher requires at least two entries")
	ErrInvalidAmount           = errors.New("amount must be positive")

	// Period and statement errors
	ErrInvalidPeriod        = errors.New("period must be a 6-digit YYYYMM token")
	ErrNoVouchersForPeriod  = errors.New("no postable vouchers found for period")
	ErrStatementNotFound    = errors.New("statement not found")
	ErrStatementFinal       = errors.New("statement is finalized")
	ErrStatementNotBalanced = errors.New("statement is not balanced")

	// General ledger errors
	ErrLedgerRowNotFound = errors.New("general ledger row not found")

	// Report period errors
	ErrReportPeriodNotFound = errors.New("report period not found")
	ErrReportPeriodExists   = errors.New("report period already exists")
)
