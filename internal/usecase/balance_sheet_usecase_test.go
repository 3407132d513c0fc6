package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/report"
	"github.com/iho/finbook/internal/usecase"
	"github.com/iho/finbook/internal/usecase/mocks"
)

var testPeriod = domain.Period{Year: 2025, Month: time.January}

type sheetFixture struct {
	accountRepo *mocks.MockAccountRepository
	voucherRepo *mocks.MockVoucherRepository
	sheetRepo   *mocks.MockBalanceSheetRepository
	cache       *mocks.MockCache
	uc          *usecase.BalanceSheetUseCase
}

func newSheetFixture(metrics usecase.Metrics) *sheetFixture {
	f := &sheetFixture{
		accountRepo: mocks.NewMockAccountRepository(),
		voucherRepo: mocks.NewMockVoucherRepository(),
		sheetRepo:   mocks.NewMockBalanceSheetRepository(),
		cache:       mocks.NewMockCache(),
	}
	f.accountRepo.Seed(
		&domain.Account{Code: "1002", Type: domain.AccountTypeAsset, Direction: domain.DirectionDebit, Status: domain.AccountStatusActive},
		&domain.Account{Code: "6001", Type: domain.AccountTypeProfit, Direction: domain.DirectionCredit, Status: domain.AccountStatusActive},
	)
	f.uc = usecase.NewBalanceSheetUseCase(
		mocks.NewMockTransactionManager(),
		mocks.NewMockRetrier(),
		f.accountRepo,
		f.voucherRepo,
		f.sheetRepo,
		report.NewEngine(),
		f.cache,
		metrics,
	)
	return f
}

func seedSubmittedSale(f *sheetFixture, amount string) {
	f.voucherRepo.Seed(&domain.Voucher{
		Number: "V2025010001",
		Date:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.VoucherStatusSubmitted,
		Entries: []*domain.JournalEntry{
			{AccountCode: "1002", Direction: domain.DirectionDebit, Amount: decimal.RequireFromString(amount)},
			{AccountCode: "6001", Direction: domain.DirectionCredit, Amount: decimal.RequireFromString(amount)},
		},
	})
}

func TestBalanceSheetUseCase_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().StatementGenerated(usecase.KindBalanceSheet)

	f := newSheetFixture(metrics)
	seedSubmittedSale(f, "1000")

	sheet, err := f.uc.GenerateBalanceSheet(context.Background(), testPeriod, "clerk")
	require.NoError(t, err)

	assert.True(t, sheet.CurrentAssets.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sheet.CurrentProfit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sheet.IsBalanced)

	stored, err := f.sheetRepo.GetByPeriod(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.Equal(t, sheet, stored)
}

func TestBalanceSheetUseCase_Generate_ReplacesPrevious(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	seedSubmittedSale(f, "1000")
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod, CurrentAssets: decimal.NewFromInt(1)})

	sheet, err := f.uc.GenerateBalanceSheet(context.Background(), testPeriod, "clerk")
	require.NoError(t, err)
	assert.True(t, sheet.CurrentAssets.Equal(decimal.NewFromInt(1000)))

	stored, err := f.sheetRepo.GetByPeriod(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAssets.Equal(decimal.NewFromInt(1000)))
}

func TestBalanceSheetUseCase_Generate_FinalBlocks(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	seedSubmittedSale(f, "1000")
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod, IsFinal: true})

	_, err := f.uc.GenerateBalanceSheet(context.Background(), testPeriod, "clerk")
	assert.ErrorIs(t, err, domain.ErrStatementFinal)
}

func TestBalanceSheetUseCase_Generate_Imbalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().StatementGenerated(usecase.KindBalanceSheet)
	metrics.EXPECT().ImbalanceDetected()

	f := newSheetFixture(metrics)
	f.voucherRepo.Seed(&domain.Voucher{
		Number: "V2025010001",
		Date:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.VoucherStatusSubmitted,
		Entries: []*domain.JournalEntry{
			{AccountCode: "1002", Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(115)},
			{AccountCode: "6001", Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(100)},
		},
	})

	sheet, err := f.uc.GenerateBalanceSheet(context.Background(), testPeriod, "clerk")
	require.NoError(t, err)
	assert.False(t, sheet.IsBalanced)
}

func TestBalanceSheetUseCase_Generate_NoVouchers(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})

	_, err := f.uc.GenerateBalanceSheet(context.Background(), testPeriod, "clerk")
	assert.ErrorIs(t, err, domain.ErrNoVouchersForPeriod)
}

func TestBalanceSheetUseCase_Get_CachesResult(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod, CurrentAssets: decimal.NewFromInt(42)})

	first, err := f.uc.GetBalanceSheet(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.True(t, first.CurrentAssets.Equal(decimal.NewFromInt(42)))

	// Second read is served from cache even if the repo goes away.
	f.sheetRepo.GetByPeriodFunc = func(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
		t.Fatal("repository should not be hit on a cache hit")
		return nil, nil
	}
	second, err := f.uc.GetBalanceSheet(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.True(t, second.CurrentAssets.Equal(decimal.NewFromInt(42)))
}

func TestBalanceSheetUseCase_Update(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod})

	items := usecase.BalanceSheetLineItems{
		CurrentAssets: decimal.NewFromInt(500),
		PaidInCapital: decimal.NewFromInt(495),
	}
	sheet, err := f.uc.UpdateBalanceSheet(context.Background(), testPeriod, items)
	require.NoError(t, err)

	// Manual edits recompute totals but never auto-correct.
	assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(500)))
	assert.True(t, sheet.BalanceDiff.Equal(decimal.NewFromInt(5)), "got %s", sheet.BalanceDiff)
	assert.False(t, sheet.IsBalanced)
	assert.True(t, sheet.CurrentAssets.Equal(decimal.NewFromInt(500)))
}

func TestBalanceSheetUseCase_Update_FinalBlocks(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod, IsFinal: true})

	_, err := f.uc.UpdateBalanceSheet(context.Background(), testPeriod, usecase.BalanceSheetLineItems{})
	assert.ErrorIs(t, err, domain.ErrStatementFinal)
}

func TestBalanceSheetUseCase_CreateDirect(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})

	items := usecase.BalanceSheetLineItems{
		CurrentAssets:      decimal.NewFromInt(800),
		CurrentLiabilities: decimal.NewFromInt(300),
		PaidInCapital:      decimal.NewFromInt(500),
	}
	sheet, err := f.uc.CreateBalanceSheetDirect(context.Background(), testPeriod, items, "migrator")
	require.NoError(t, err)

	assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(800)))
	assert.True(t, sheet.IsBalanced)
	assert.Equal(t, "migrator", sheet.GeneratedBy)
}

func TestBalanceSheetUseCase_Finalize(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	balanced := &domain.BalanceSheet{Period: testPeriod}
	balanced.Recalculate()
	f.sheetRepo.Seed(balanced)

	sheet, err := f.uc.FinalizeBalanceSheet(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.True(t, sheet.IsFinal)

	// Finalizing again is a no-op.
	again, err := f.uc.FinalizeBalanceSheet(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.True(t, again.IsFinal)
}

func TestBalanceSheetUseCase_Finalize_Unbalanced(t *testing.T) {
	f := newSheetFixture(mocks.NopMetrics{})
	f.sheetRepo.Seed(&domain.BalanceSheet{Period: testPeriod, BalanceDiff: decimal.NewFromInt(15)})

	_, err := f.uc.FinalizeBalanceSheet(context.Background(), testPeriod)
	assert.ErrorIs(t, err, domain.ErrStatementNotBalanced)
}
