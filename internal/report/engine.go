package report

import (
	"time"

	"github.com/iho/finbook/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine derives financial statements from vouchers and the chart of
// accounts. It is pure computation: callers load the inputs and persist
// the result.
type Engine struct {
	classifier *Classifier
	floorFirst bool
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the built-in classification table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.classifier = NewClassifier(rules) }
}

// WithFloorBeforeVerify flips the order of the floor-at-zero step and
// the balance verification, so correction sees already-floored line
// items. Off by default.
func WithFloorBeforeVerify() Option {
	return func(e *Engine) { e.floorFirst = true }
}

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine with the default classification rules.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		classifier: NewClassifier(DefaultRules()),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// movement is an account's summed debit and credit for the period.
type movement struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// sumMovements folds the journal entries of the given vouchers into
// per-account debit and credit totals.
func sumMovements(vouchers []*domain.Voucher) map[string]movement {
	moves := make(map[string]movement)
	for _, v := range vouchers {
		for _, entry := range v.Entries {
			m := moves[entry.AccountCode]
			if entry.Direction == domain.DirectionDebit {
				m.debit = m.debit.Add(entry.Amount)
			} else {
				m.credit = m.credit.Add(entry.Amount)
			}
			moves[entry.AccountCode] = m
		}
	}
	return moves
}

// BuildBalanceSheet derives the balance sheet for one period.
//
// The pipeline after classification is order sensitive and must stay in
// this sequence: recalculate totals, verify and auto-correct, floor the
// nine line items at zero, then recalculate once more so the stored
// totals and balance flag reflect the published figures. WithFloorBeforeVerify
// swaps the middle two steps.
func (e *Engine) BuildBalanceSheet(period domain.Period, accounts map[string]*domain.Account, vouchers []*domain.Voucher, generatedBy string) (*domain.BalanceSheet, error) {
	selected := SelectVouchers(vouchers, period, StatementStatuses)
	if len(selected) == 0 {
		return nil, domain.ErrNoVouchersForPeriod
	}

	sheet := &domain.BalanceSheet{
		Period:      period,
		GeneratedBy: generatedBy,
		GeneratedAt: e.now(),
	}

	for code, m := range sumMovements(selected) {
		account, ok := accounts[code]
		if !ok {
			continue
		}

		// Profit-and-loss accounts have no balance sheet bucket of
		// their own; they roll into current profit. Expense-side
		// balances reduce profit only while they are genuine expenses.
		if account.Type == domain.AccountTypeProfit {
			if RevenueCoded(code) {
				sheet.CurrentProfit = sheet.CurrentProfit.Add(m.credit.Sub(m.debit))
			} else if exp := m.debit.Sub(m.credit); exp.IsPositive() {
				sheet.CurrentProfit = sheet.CurrentProfit.Sub(exp)
			}
			continue
		}

		bucket, ok := e.classifier.Classify(account.Type, code)
		if !ok {
			continue
		}

		net := StatementNetBalance(account.Type, code, m.debit, m.credit)
		switch bucket {
		case BucketCurrentAssets:
			sheet.CurrentAssets = sheet.CurrentAssets.Add(net)
		case BucketFixedAssets:
			sheet.FixedAssets = sheet.FixedAssets.Add(net)
		case BucketIntangibleAssets:
			sheet.IntangibleAssets = sheet.IntangibleAssets.Add(net)
		case BucketOtherAssets:
			sheet.OtherAssets = sheet.OtherAssets.Add(net)
		case BucketCurrentLiabilities:
			sheet.CurrentLiabilities = sheet.CurrentLiabilities.Add(net)
		case BucketLongTermLiabilities:
			sheet.LongTermLiabilities = sheet.LongTermLiabilities.Add(net)
		case BucketPaidInCapital:
			sheet.PaidInCapital = sheet.PaidInCapital.Add(net)
		case BucketRetainedEarnings:
			sheet.RetainedEarnings = sheet.RetainedEarnings.Add(net)
		case BucketCurrentProfit:
			sheet.CurrentProfit = sheet.CurrentProfit.Add(net)
		}
	}

	sheet.Recalculate()

	if e.floorFirst {
		floorLineItems(sheet)
		sheet.Recalculate()
		verifyAndCorrect(sheet)
	} else {
		verifyAndCorrect(sheet)
		floorLineItems(sheet)
	}

	sheet.Recalculate()
	return sheet, nil
}

// floorLineItems clamps every line item at zero. Negative balances are
// an entry-side smell; the published statement never shows them.
func floorLineItems(s *domain.BalanceSheet) {
	zero := decimal.Zero
	for _, item := range []*decimal.Decimal{
		&s.CurrentAssets, &s.FixedAssets, &s.IntangibleAssets, &s.OtherAssets,
		&s.CurrentLiabilities, &s.LongTermLiabilities,
		&s.PaidInCapital, &s.RetainedEarnings, &s.CurrentProfit,
	} {
		if item.IsNegative() {
			*item = zero
		}
	}
}

// BuildIncomeStatement derives the income statement for one period.
// Only profit-and-loss accounts with a matching classification rule
// contribute; the other income, other expense and tax lines stay zero
// and are filled by manual edit.
func (e *Engine) BuildIncomeStatement(period domain.Period, accounts map[string]*domain.Account, vouchers []*domain.Voucher, generatedBy string) (*domain.IncomeStatement, error) {
	selected := SelectVouchers(vouchers, period, StatementStatuses)
	if len(selected) == 0 {
		return nil, domain.ErrNoVouchersForPeriod
	}

	stmt := &domain.IncomeStatement{
		Period:      period,
		GeneratedBy: generatedBy,
		GeneratedAt: e.now(),
	}

	for code, m := range sumMovements(selected) {
		account, ok := accounts[code]
		if !ok || account.Type != domain.AccountTypeProfit {
			continue
		}

		bucket, ok := e.classifier.Classify(account.Type, code)
		if !ok {
			continue
		}

		net := StatementNetBalance(account.Type, code, m.debit, m.credit)
		switch bucket {
		case BucketOperatingRevenue:
			stmt.OperatingRevenue = stmt.OperatingRevenue.Add(net)
		case BucketOperatingCost:
			stmt.OperatingCost = stmt.OperatingCost.Add(net)
		case BucketSellingExpenses:
			stmt.SellingExpenses = stmt.SellingExpenses.Add(net)
		case BucketAdminExpenses:
			stmt.AdminExpenses = stmt.AdminExpenses.Add(net)
		case BucketFinancialExpenses:
			stmt.FinancialExpenses = stmt.FinancialExpenses.Add(net)
		}
	}

	floorStatementLines(stmt)
	stmt.Recalculate()
	return stmt, nil
}

// floorStatementLines clamps the five computed buckets at zero, same
// as floorLineItems does for the balance sheet. The manually
// maintained lines are left alone.
func floorStatementLines(s *domain.IncomeStatement) {
	zero := decimal.Zero
	for _, item := range []*decimal.Decimal{
		&s.OperatingRevenue, &s.OperatingCost,
		&s.SellingExpenses, &s.AdminExpenses, &s.FinancialExpenses,
	} {
		if item.IsNegative() {
			*item = zero
		}
	}
}
