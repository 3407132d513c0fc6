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
	"github.com/iho/finbook/internal/usecase"
	"github.com/iho/finbook/internal/usecase/mocks"
)

type voucherFixture struct {
	accountRepo *mocks.MockAccountRepository
	voucherRepo *mocks.MockVoucherRepository
	entryRepo   *mocks.MockEntryRepository
	uc          *usecase.VoucherUseCase
}

func newVoucherFixture(metrics usecase.Metrics) *voucherFixture {
	f := &voucherFixture{
		accountRepo: mocks.NewMockAccountRepository(),
		voucherRepo: mocks.NewMockVoucherRepository(),
		entryRepo:   mocks.NewMockEntryRepository(),
	}
	f.accountRepo.Seed(
		&domain.Account{Code: "1002", Name: "Bank", Type: domain.AccountTypeAsset, Direction: domain.DirectionDebit, Status: domain.AccountStatusActive},
		&domain.Account{Code: "6001", Name: "Revenue", Type: domain.AccountTypeProfit, Direction: domain.DirectionCredit, Status: domain.AccountStatusActive},
		&domain.Account{Code: "1406", Name: "Stale", Type: domain.AccountTypeAsset, Direction: domain.DirectionDebit, Status: domain.AccountStatusInactive},
	)
	f.uc = usecase.NewVoucherUseCase(
		mocks.NewMockTransactionManager(),
		f.accountRepo,
		f.voucherRepo,
		f.entryRepo,
		mocks.NewMockIDGenerator(),
		metrics,
	)
	return f
}

func entryInput(code string, dir domain.Direction, amount string) usecase.EntryInput {
	return usecase.EntryInput{
		AccountCode: code,
		Direction:   dir,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestVoucherUseCase_CreateVoucher(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().VoucherCreated()

	f := newVoucherFixture(metrics)

	voucher, err := f.uc.CreateVoucher(context.Background(), usecase.CreateVoucherInput{
		Date:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "January sale",
		CreatedBy:   "clerk",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "1000"),
			entryInput("6001", domain.DirectionCredit, "1000"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "V2025010001", voucher.Number)
	assert.Equal(t, domain.VoucherStatusDraft, voucher.Status)
	assert.True(t, voucher.TotalDebit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, voucher.IsBalanced())

	entries, err := f.entryRepo.GetByVoucher(context.Background(), voucher.Number)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, voucher.Number, entries[0].VoucherNumber)

	// Numbers count up within the period.
	metrics.EXPECT().VoucherCreated()
	second, err := f.uc.CreateVoucher(context.Background(), usecase.CreateVoucherInput{
		Date:      time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		CreatedBy: "clerk",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "50"),
			entryInput("6001", domain.DirectionCredit, "50"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "V2025010002", second.Number)
}

func TestVoucherUseCase_CreateVoucher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []usecase.EntryInput
		wantErr error
	}{
		{
			name:    "single entry",
			entries: []usecase.EntryInput{entryInput("1002", domain.DirectionDebit, "100")},
			wantErr: domain.ErrTooFewEntries,
		},
		{
			name: "unbalanced",
			entries: []usecase.EntryInput{
				entryInput("1002", domain.DirectionDebit, "100"),
				entryInput("6001", domain.DirectionCredit, "90"),
			},
			wantErr: domain.ErrUnbalancedVoucher,
		},
		{
			name: "non-positive amount",
			entries: []usecase.EntryInput{
				entryInput("1002", domain.DirectionDebit, "0"),
				entryInput("6001", domain.DirectionCredit, "0"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "unknown account",
			entries: []usecase.EntryInput{
				entryInput("9999", domain.DirectionDebit, "100"),
				entryInput("6001", domain.DirectionCredit, "100"),
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "inactive account",
			entries: []usecase.EntryInput{
				entryInput("1406", domain.DirectionDebit, "100"),
				entryInput("6001", domain.DirectionCredit, "100"),
			},
			wantErr: domain.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVoucherFixture(mocks.NopMetrics{})
			_, err := f.uc.CreateVoucher(context.Background(), usecase.CreateVoucherInput{
				CreatedBy: "clerk",
				Entries:   tt.entries,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVoucherUseCase_Transitions(t *testing.T) {
	f := newVoucherFixture(mocks.NopMetrics{})
	ctx := context.Background()

	voucher, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedBy: "clerk",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "100"),
			entryInput("6001", domain.DirectionCredit, "100"),
		},
	})
	require.NoError(t, err)

	// Skipping SUBMITTED is rejected.
	_, err = f.uc.AuditVoucher(ctx, voucher.Number, "auditor")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	submitted, err := f.uc.SubmitVoucher(ctx, voucher.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.VoucherStatusSubmitted, submitted.Status)

	// Submitting twice is rejected.
	_, err = f.uc.SubmitVoucher(ctx, voucher.Number)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	audited, err := f.uc.AuditVoucher(ctx, voucher.Number, "auditor")
	require.NoError(t, err)
	assert.Equal(t, domain.VoucherStatusAudited, audited.Status)
	assert.Equal(t, "auditor", audited.AuditedBy)
	require.NotNil(t, audited.AuditedAt)

	posted, err := f.uc.PostVoucher(ctx, voucher.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.VoucherStatusPosted, posted.Status)

	// POSTED is terminal.
	_, err = f.uc.SubmitVoucher(ctx, voucher.Number)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestVoucherUseCase_UpdateVoucher(t *testing.T) {
	f := newVoucherFixture(mocks.NopMetrics{})
	ctx := context.Background()

	voucher, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedBy: "clerk",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "100"),
			entryInput("6001", domain.DirectionCredit, "100"),
		},
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateVoucher(ctx, usecase.UpdateVoucherInput{
		Number:      voucher.Number,
		Description: "corrected",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "250"),
			entryInput("6001", domain.DirectionCredit, "250"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, voucher.Number, updated.Number)
	assert.Equal(t, "corrected", updated.Description)
	assert.True(t, updated.TotalDebit.Equal(decimal.NewFromInt(250)))

	entries, err := f.entryRepo.GetByVoucher(ctx, voucher.Number)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(250)))

	// Anything past DRAFT is immutable.
	_, err = f.uc.SubmitVoucher(ctx, voucher.Number)
	require.NoError(t, err)
	_, err = f.uc.UpdateVoucher(ctx, usecase.UpdateVoucherInput{
		Number: voucher.Number,
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "1"),
			entryInput("6001", domain.DirectionCredit, "1"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrVoucherNotDraft)
}

func TestVoucherUseCase_DeleteVoucher(t *testing.T) {
	f := newVoucherFixture(mocks.NopMetrics{})
	ctx := context.Background()

	voucher, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedBy: "clerk",
		Entries: []usecase.EntryInput{
			entryInput("1002", domain.DirectionDebit, "100"),
			entryInput("6001", domain.DirectionCredit, "100"),
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteVoucher(ctx, voucher.Number))
	_, err = f.uc.GetVoucher(ctx, voucher.Number)
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)

	entries, err := f.entryRepo.GetByVoucher(ctx, voucher.Number)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVoucherUseCase_DeleteVoucher_NotDraft(t *testing.T) {
	f := newVoucherFixture(mocks.NopMetrics{})
	f.voucherRepo.Seed(&domain.Voucher{Number: "V2025010001", Status: domain.VoucherStatusSubmitted})

	err := f.uc.DeleteVoucher(context.Background(), "V2025010001")
	assert.ErrorIs(t, err, domain.ErrVoucherNotDraft)
}
