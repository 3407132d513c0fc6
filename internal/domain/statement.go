package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest absolute difference between total
// assets and total liabilities plus equity still considered balanced.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// BalanceSheet is the statement of financial position for one period.
// A later generation run for the same period fully replaces the stored
// record.
type BalanceSheet struct {
	Period Period

	CurrentAssets    decimal.Decimal
	FixedAssets      decimal.Decimal
	IntangibleAssets decimal.Decimal
	OtherAssets      decimal.Decimal

	CurrentLiabilities   decimal.Decimal
	LongTermLiabilities  decimal.Decimal

	PaidInCapital    decimal.Decimal
	RetainedEarnings decimal.Decimal
	CurrentProfit    decimal.Decimal

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal

	IsBalanced  bool
	BalanceDiff decimal.Decimal

	IsFinal     bool
	GeneratedBy string
	GeneratedAt time.Time
}

// Recalculate recomputes the three totals and the balance check from
// the current line items. Manual edits re-run exactly this.
func (s *BalanceSheet) Recalculate() {
	s.TotalAssets = s.CurrentAssets.
		Add(s.FixedAssets).
		Add(s.IntangibleAssets).
		Add(s.OtherAssets)

	s.TotalLiabilities = s.CurrentLiabilities.Add(s.LongTermLiabilities)

	s.TotalEquity = s.PaidInCapital.
		Add(s.RetainedEarnings).
		Add(s.CurrentProfit)

	s.BalanceDiff = s.TotalAssets.Sub(s.TotalLiabilities.Add(s.TotalEquity))
	s.IsBalanced = s.BalanceDiff.Abs().LessThan(BalanceTolerance)
}

// IncomeStatement is the profit and loss statement for one period.
type IncomeStatement struct {
	Period Period

	OperatingRevenue decimal.Decimal
	OtherRevenue     decimal.Decimal

	OperatingCost decimal.Decimal

	SellingExpenses   decimal.Decimal
	AdminExpenses     decimal.Decimal
	FinancialExpenses decimal.Decimal

	OtherIncome   decimal.Decimal
	OtherExpenses decimal.Decimal
	TaxExpense    decimal.Decimal

	TotalRevenue     decimal.Decimal
	TotalCostExpense decimal.Decimal
	GrossProfit      decimal.Decimal
	OperatingProfit  decimal.Decimal
	ProfitBeforeTax  decimal.Decimal
	NetProfit        decimal.Decimal

	IsFinal     bool
	GeneratedBy string
	GeneratedAt time.Time
}

// Recalculate derives the six profit totals from the input line items.
func (s *IncomeStatement) Recalculate() {
	s.TotalRevenue = s.OperatingRevenue.Add(s.OtherRevenue)

	s.TotalCostExpense = s.OperatingCost.
		Add(s.SellingExpenses).
		Add(s.AdminExpenses).
		Add(s.FinancialExpenses)

	s.GrossProfit = s.OperatingRevenue.Sub(s.OperatingCost)

	s.OperatingProfit = s.GrossProfit.
		Sub(s.SellingExpenses).
		Sub(s.AdminExpenses).
		Sub(s.FinancialExpenses)

	s.ProfitBeforeTax = s.OperatingProfit.
		Add(s.OtherIncome).
		Sub(s.OtherExpenses)

	s.NetProfit = s.ProfitBeforeTax.Sub(s.TaxExpense)
}

// IncomeStatementDetail is the expanded presentation variant: other
// income joins total revenue, and other expenses plus tax join the
// cost total.
type IncomeStatementDetail struct {
	TotalRevenue     decimal.Decimal
	TotalCostExpense decimal.Decimal
	NetProfit        decimal.Decimal
}

// DetailTotals computes the expanded presentation totals.
func (s *IncomeStatement) DetailTotals() IncomeStatementDetail {
	return IncomeStatementDetail{
		TotalRevenue: s.OperatingRevenue.Add(s.OtherRevenue).Add(s.OtherIncome),
		TotalCostExpense: s.OperatingCost.
			Add(s.SellingExpenses).
			Add(s.AdminExpenses).
			Add(s.FinancialExpenses).
			Add(s.OtherExpenses).
			Add(s.TaxExpense),
		NetProfit: s.OperatingProfit.
			Add(s.OtherIncome).
			Sub(s.OtherExpenses).
			Sub(s.TaxExpense),
	}
}

// ReportPeriod is bookkeeping metadata about an accounting window:
// closing a period is advisory and does not block voucher entry.
type ReportPeriod struct {
	Code      Period
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsClosed  bool
	ClosedBy  string
	ClosedAt  *time.Time
}
