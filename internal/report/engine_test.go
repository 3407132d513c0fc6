package report

import (
	"testing"
	"time"

	"github.com/iho/finbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPeriod = domain.Period{Year: 2025, Month: time.January}

func testAccounts() map[string]*domain.Account {
	accounts := map[string]*domain.Account{}
	add := func(code string, typ domain.AccountType, dir domain.Direction) {
		accounts[code] = &domain.Account{Code: code, Name: code, Type: typ, Direction: dir, Status: domain.AccountStatusActive}
	}
	add("1001", domain.AccountTypeAsset, domain.DirectionDebit)
	add("1002", domain.AccountTypeAsset, domain.DirectionDebit)
	add("1403", domain.AccountTypeAsset, domain.DirectionDebit)
	add("1501", domain.AccountTypeAsset, domain.DirectionDebit)
	add("2001", domain.AccountTypeLiability, domain.DirectionCredit)
	add("3131", domain.AccountTypeEquity, domain.DirectionCredit)
	add("6001", domain.AccountTypeProfit, domain.DirectionCredit)
	add("6051", domain.AccountTypeProfit, domain.DirectionCredit)
	add("6401", domain.AccountTypeProfit, domain.DirectionDebit)
	add("660101", domain.AccountTypeProfit, domain.DirectionDebit)
	add("660201", domain.AccountTypeProfit, domain.DirectionDebit)
	add("660301", domain.AccountTypeProfit, domain.DirectionDebit)
	add("6901", domain.AccountTypeProfit, domain.DirectionCredit)
	return accounts
}

func submittedVoucher(number string, entries ...*domain.JournalEntry) *domain.Voucher {
	return &domain.Voucher{
		Number:  number,
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:  domain.VoucherStatusSubmitted,
		Entries: entries,
	}
}

func post(code string, dir domain.Direction, amount string) *domain.JournalEntry {
	return &domain.JournalEntry{
		AccountCode: code,
		Direction:   dir,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestEngine_BuildBalanceSheet(t *testing.T) {
	e := NewEngine()
	accounts := testAccounts()

	t.Run("sale settles into current assets and current profit", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "1000"),
			post("6001", domain.DirectionCredit, "1000"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.CurrentAssets.Equal(decimal.NewFromInt(1000)))
		assert.True(t, sheet.CurrentProfit.Equal(decimal.NewFromInt(1000)))
		assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(1000)))
		assert.True(t, sheet.TotalEquity.Equal(decimal.NewFromInt(1000)))
		assert.True(t, sheet.BalanceDiff.IsZero())
		assert.True(t, sheet.IsBalanced)
		assert.Equal(t, "clerk", sheet.GeneratedBy)
	})

	t.Run("small imbalance is absorbed into other assets", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1403", domain.DirectionDebit, "100"),
			post("1002", domain.DirectionDebit, "5"),
			post("6001", domain.DirectionCredit, "100"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.OtherAssets.Equal(decimal.NewFromInt(95)), "got %s", sheet.OtherAssets)
		assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(100)))
		assert.True(t, sheet.BalanceDiff.IsZero())
		assert.True(t, sheet.IsBalanced)
	})

	t.Run("large imbalance is flagged and stored untouched", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "115"),
			post("6001", domain.DirectionCredit, "100"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.False(t, sheet.IsBalanced)
		assert.True(t, sheet.BalanceDiff.Equal(decimal.NewFromInt(15)), "got %s", sheet.BalanceDiff)
		assert.True(t, sheet.CurrentAssets.Equal(decimal.NewFromInt(115)))
		assert.True(t, sheet.OtherAssets.IsZero())
	})

	t.Run("negative line items are floored at zero", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionCredit, "50"),
			post("2001", domain.DirectionDebit, "50"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.CurrentAssets.IsZero())
		assert.True(t, sheet.CurrentLiabilities.IsZero())
		assert.True(t, sheet.BalanceDiff.IsZero())
		assert.True(t, sheet.IsBalanced)
	})

	t.Run("flooring after verification can surface an imbalance", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "100"),
			post("1403", domain.DirectionCredit, "3"),
			post("6001", domain.DirectionCredit, "97"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		// The sheet balanced before flooring, so no correction ran;
		// clamping other assets from -3 to 0 reopens the gap.
		assert.True(t, sheet.OtherAssets.IsZero())
		assert.True(t, sheet.BalanceDiff.Equal(decimal.NewFromInt(3)), "got %s", sheet.BalanceDiff)
		assert.False(t, sheet.IsBalanced)
	})

	t.Run("floor-before-verify lets correction close the gap", func(t *testing.T) {
		floorFirst := NewEngine(WithFloorBeforeVerify())
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "100"),
			post("1403", domain.DirectionCredit, "3"),
			post("6001", domain.DirectionCredit, "97"),
		)}

		sheet, err := floorFirst.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.BalanceDiff.IsZero())
		assert.True(t, sheet.IsBalanced)
	})

	t.Run("expense accounts reduce current profit only when positive", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("6001", domain.DirectionCredit, "500"),
			post("660201", domain.DirectionDebit, "200"),
			post("6401", domain.DirectionCredit, "50"),
			post("1002", domain.DirectionDebit, "350"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		// 500 revenue less the 200 admin expense; the credit-side cost
		// balance on 6401 is not a positive expense and is skipped.
		assert.True(t, sheet.CurrentProfit.Equal(decimal.NewFromInt(300)), "got %s", sheet.CurrentProfit)
	})

	t.Run("equity profit account joins current profit", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "100"),
			post("3131", domain.DirectionCredit, "100"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.CurrentProfit.Equal(decimal.NewFromInt(100)))
		assert.True(t, sheet.IsBalanced)
	})

	t.Run("entries on unknown accounts are skipped", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("9999", domain.DirectionDebit, "100"),
			post("6001", domain.DirectionCredit, "100"),
		)}

		sheet, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, sheet.TotalAssets.IsZero())
		assert.True(t, sheet.CurrentProfit.Equal(decimal.NewFromInt(100)))
		assert.False(t, sheet.IsBalanced)
	})

	t.Run("no submitted vouchers in the period", func(t *testing.T) {
		vouchers := []*domain.Voucher{
			{Number: "V2025010001", Status: domain.VoucherStatusDraft},
			{Number: "V2025020001", Status: domain.VoucherStatusSubmitted},
		}

		_, err := e.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		assert.ErrorIs(t, err, domain.ErrNoVouchersForPeriod)
	})

	t.Run("generation timestamp comes from the clock", func(t *testing.T) {
		at := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
		fixed := NewEngine(WithClock(func() time.Time { return at }))

		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "10"),
			post("6001", domain.DirectionCredit, "10"),
		)}

		sheet, err := fixed.BuildBalanceSheet(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)
		assert.Equal(t, at, sheet.GeneratedAt)
	})
}

func TestEngine_BuildIncomeStatement(t *testing.T) {
	e := NewEngine()
	accounts := testAccounts()

	t.Run("buckets and derived totals", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("6001", domain.DirectionCredit, "800"),
			post("6051", domain.DirectionCredit, "200"),
			post("6401", domain.DirectionDebit, "600"),
			post("660101", domain.DirectionDebit, "50"),
			post("660201", domain.DirectionDebit, "30"),
			post("660301", domain.DirectionDebit, "20"),
			post("6901", domain.DirectionDebit, "40"),
			post("1002", domain.DirectionDebit, "260"),
		)}

		stmt, err := e.BuildIncomeStatement(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, stmt.OperatingRevenue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, stmt.OperatingCost.Equal(decimal.NewFromInt(600)))
		assert.True(t, stmt.SellingExpenses.Equal(decimal.NewFromInt(50)))
		assert.True(t, stmt.AdminExpenses.Equal(decimal.NewFromInt(30)))
		assert.True(t, stmt.FinancialExpenses.Equal(decimal.NewFromInt(20)))

		assert.True(t, stmt.TotalRevenue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, stmt.TotalCostExpense.Equal(decimal.NewFromInt(700)))
		assert.True(t, stmt.GrossProfit.Equal(decimal.NewFromInt(400)))
		assert.True(t, stmt.OperatingProfit.Equal(decimal.NewFromInt(300)))
		assert.True(t, stmt.ProfitBeforeTax.Equal(decimal.NewFromInt(300)))
		assert.True(t, stmt.NetProfit.Equal(decimal.NewFromInt(300)))
	})

	t.Run("non-profit accounts and unclassified codes are ignored", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("1002", domain.DirectionDebit, "40"),
			post("6901", domain.DirectionCredit, "40"),
		)}

		stmt, err := e.BuildIncomeStatement(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, stmt.OperatingRevenue.IsZero())
		assert.True(t, stmt.TotalRevenue.IsZero())
		assert.True(t, stmt.NetProfit.IsZero())
	})

	t.Run("debit-heavy revenue is floored at zero", func(t *testing.T) {
		vouchers := []*domain.Voucher{submittedVoucher("V2025010001",
			post("6001", domain.DirectionDebit, "300"),
			post("2001", domain.DirectionCredit, "300"),
		)}

		stmt, err := e.BuildIncomeStatement(testPeriod, accounts, vouchers, "clerk")
		require.NoError(t, err)

		assert.True(t, stmt.OperatingRevenue.IsZero())
		assert.True(t, stmt.TotalRevenue.IsZero())
		assert.True(t, stmt.NetProfit.IsZero())
	})

	t.Run("no submitted vouchers in the period", func(t *testing.T) {
		_, err := e.BuildIncomeStatement(testPeriod, accounts, nil, "clerk")
		assert.ErrorIs(t, err, domain.ErrNoVouchersForPeriod)
	})
}
