package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
	"github.com/iho/finbook/internal/usecase/mocks"
)

type ledgerFixture struct {
	accountRepo *mocks.MockAccountRepository
	voucherRepo *mocks.MockVoucherRepository
	ledgerRepo  *mocks.MockGeneralLedgerRepository
	uc          *usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		accountRepo: mocks.NewMockAccountRepository(),
		voucherRepo: mocks.NewMockVoucherRepository(),
		ledgerRepo:  mocks.NewMockGeneralLedgerRepository(),
	}
	f.accountRepo.Seed(
		&domain.Account{Code: "1002", Type: domain.AccountTypeAsset, Direction: domain.DirectionDebit, Status: domain.AccountStatusActive},
		&domain.Account{Code: "2001", Type: domain.AccountTypeLiability, Direction: domain.DirectionCredit, Status: domain.AccountStatusActive},
	)
	f.uc = usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(),
		mocks.NewMockRetrier(),
		f.accountRepo,
		f.voucherRepo,
		f.ledgerRepo,
	)
	return f
}

func TestLedgerUseCase_Generate(t *testing.T) {
	f := newLedgerFixture()
	f.voucherRepo.Seed(
		&domain.Voucher{
			Number: "V2025010001",
			Date:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Status: domain.VoucherStatusAudited,
			Entries: []*domain.JournalEntry{
				{AccountCode: "1002", Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(300)},
				{AccountCode: "2001", Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(300)},
			},
		},
		// Submitted vouchers never reach the ledger.
		&domain.Voucher{
			Number: "V2025010002",
			Date:   time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			Status: domain.VoucherStatusSubmitted,
			Entries: []*domain.JournalEntry{
				{AccountCode: "1002", Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(999)},
				{AccountCode: "2001", Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(999)},
			},
		},
	)

	rows, err := f.uc.GenerateGeneralLedger(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	cash := rows[0]
	assert.Equal(t, "1002", cash.AccountCode)
	assert.Equal(t, domain.DirectionDebit, cash.OpeningDirection)
	assert.True(t, cash.OpeningBalance.IsZero())
	assert.True(t, cash.DebitTotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, cash.EndingBalance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, domain.DirectionDebit, cash.EndingDirection)

	payable := rows[1]
	assert.Equal(t, "2001", payable.AccountCode)
	assert.Equal(t, domain.DirectionCredit, payable.OpeningDirection)
	assert.True(t, payable.EndingBalance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, domain.DirectionCredit, payable.EndingDirection)
}

func TestLedgerUseCase_Generate_SeedsOpeningFromPriorPeriod(t *testing.T) {
	f := newLedgerFixture()
	f.ledgerRepo.Seed(&domain.GeneralLedgerRow{
		Period:          domain.Period{Year: 2024, Month: time.December},
		AccountCode:     "1002",
		EndingBalance:   decimal.NewFromInt(500),
		EndingDirection: domain.DirectionDebit,
	})
	f.voucherRepo.Seed(&domain.Voucher{
		Number: "V2025010001",
		Date:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status: domain.VoucherStatusPosted,
		Entries: []*domain.JournalEntry{
			{AccountCode: "1002", Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(800)},
			{AccountCode: "2001", Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(800)},
		},
	})

	rows, err := f.uc.GenerateGeneralLedger(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	cash := rows[0]
	assert.True(t, cash.OpeningBalance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.DirectionDebit, cash.OpeningDirection)
	// 500 debit opening less an 800 credit flips the side.
	assert.True(t, cash.EndingBalance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, domain.DirectionCredit, cash.EndingDirection)
}

func TestLedgerUseCase_Generate_ReplacesPreviousRun(t *testing.T) {
	f := newLedgerFixture()
	f.ledgerRepo.Seed(&domain.GeneralLedgerRow{Period: testPeriod, AccountCode: "9999"})
	f.voucherRepo.Seed(&domain.Voucher{
		Number: "V2025010001",
		Date:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status: domain.VoucherStatusAudited,
		Entries: []*domain.JournalEntry{
			{AccountCode: "1002", Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(10)},
			{AccountCode: "2001", Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(10)},
		},
	})

	_, err := f.uc.GenerateGeneralLedger(context.Background(), testPeriod)
	require.NoError(t, err)

	rows, err := f.uc.ListGeneralLedger(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	_, err = f.uc.GetLedgerRow(context.Background(), testPeriod, "9999")
	assert.ErrorIs(t, err, domain.ErrLedgerRowNotFound)
}

func TestLedgerUseCase_Generate_NoVouchers(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.GenerateGeneralLedger(context.Background(), testPeriod)
	assert.ErrorIs(t, err, domain.ErrNoVouchersForPeriod)
}
