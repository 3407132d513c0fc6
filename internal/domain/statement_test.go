package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iho/finbook/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBalanceSheetRecalculate(t *testing.T) {
	s := &domain.BalanceSheet{
		CurrentAssets:      dec("1000"),
		FixedAssets:        dec("500"),
		CurrentLiabilities: dec("300"),
		PaidInCapital:      dec("900"),
		CurrentProfit:      dec("300"),
	}

	s.Recalculate()

	assert.True(t, s.TotalAssets.Equal(dec("1500")))
	assert.True(t, s.TotalLiabilities.Equal(dec("300")))
	assert.True(t, s.TotalEquity.Equal(dec("1200")))
	assert.True(t, s.BalanceDiff.IsZero())
	assert.True(t, s.IsBalanced)
}

func TestBalanceSheetRecalculateWithinTolerance(t *testing.T) {
	s := &domain.BalanceSheet{
		CurrentAssets: dec("100.009"),
		PaidInCapital: dec("100.00"),
	}

	s.Recalculate()

	assert.True(t, s.IsBalanced, "sub-cent residue counts as balanced")
	assert.True(t, s.BalanceDiff.Equal(dec("0.009")))
}

func TestBalanceSheetRecalculateUnbalanced(t *testing.T) {
	s := &domain.BalanceSheet{
		CurrentAssets: dec("115"),
		PaidInCapital: dec("100"),
	}

	s.Recalculate()

	assert.False(t, s.IsBalanced)
	assert.True(t, s.BalanceDiff.Equal(dec("15")))
}

func TestIncomeStatementRecalculate(t *testing.T) {
	s := &domain.IncomeStatement{
		OperatingRevenue:  dec("10000"),
		OtherRevenue:      dec("500"),
		OperatingCost:     dec("4000"),
		SellingExpenses:   dec("800"),
		AdminExpenses:     dec("700"),
		FinancialExpenses: dec("100"),
		OtherIncome:       dec("200"),
		OtherExpenses:     dec("50"),
		TaxExpense:        dec("1000"),
	}

	s.Recalculate()

	assert.True(t, s.TotalRevenue.Equal(dec("10500")))
	assert.True(t, s.TotalCostExpense.Equal(dec("5600")))
	assert.True(t, s.GrossProfit.Equal(dec("6000")))
	assert.True(t, s.OperatingProfit.Equal(dec("4400")))
	assert.True(t, s.ProfitBeforeTax.Equal(dec("4550")))
	assert.True(t, s.NetProfit.Equal(dec("3550")))
}

func TestIncomeStatementDetailTotals(t *testing.T) {
	s := &domain.IncomeStatement{
		OperatingRevenue:  dec("10000"),
		OtherRevenue:      dec("500"),
		OperatingCost:     dec("4000"),
		SellingExpenses:   dec("800"),
		AdminExpenses:     dec("700"),
		FinancialExpenses: dec("100"),
		OtherIncome:       dec("200"),
		OtherExpenses:     dec("50"),
		TaxExpense:        dec("1000"),
	}
	s.Recalculate()

	d := s.DetailTotals()

	assert.True(t, d.TotalRevenue.Equal(dec("10700")), "detail variant folds other income into revenue")
	assert.True(t, d.TotalCostExpense.Equal(dec("6650")))
	assert.True(t, d.NetProfit.Equal(s.NetProfit))
}
