package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
	"github.com/iho/finbook/internal/usecase/mocks"
)

func TestPeriodUseCase_CreateReportPeriod(t *testing.T) {
	periodRepo := mocks.NewMockReportPeriodRepository()
	uc := usecase.NewPeriodUseCase(periodRepo, mocks.NewMockVoucherRepository())
	ctx := context.Background()

	period, err := uc.CreateReportPeriod(ctx, usecase.CreateReportPeriodInput{Code: testPeriod})
	require.NoError(t, err)
	assert.Equal(t, "202501", period.Name)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), period.EndDate)
	assert.False(t, period.IsClosed)

	_, err = uc.CreateReportPeriod(ctx, usecase.CreateReportPeriodInput{Code: testPeriod})
	assert.ErrorIs(t, err, domain.ErrReportPeriodExists)

	_, err = uc.CreateReportPeriod(ctx, usecase.CreateReportPeriodInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestPeriodUseCase_CloseReopen(t *testing.T) {
	periodRepo := mocks.NewMockReportPeriodRepository()
	uc := usecase.NewPeriodUseCase(periodRepo, mocks.NewMockVoucherRepository())
	ctx := context.Background()

	_, err := uc.CreateReportPeriod(ctx, usecase.CreateReportPeriodInput{Code: testPeriod, Name: "January 2025"})
	require.NoError(t, err)

	closed, err := uc.ClosePeriod(ctx, testPeriod, "controller")
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	assert.Equal(t, "controller", closed.ClosedBy)
	require.NotNil(t, closed.ClosedAt)

	// Closing twice keeps the original close record.
	again, err := uc.ClosePeriod(ctx, testPeriod, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, "controller", again.ClosedBy)

	reopened, err := uc.ReopenPeriod(ctx, testPeriod)
	require.NoError(t, err)
	assert.False(t, reopened.IsClosed)
	assert.Empty(t, reopened.ClosedBy)
	assert.Nil(t, reopened.ClosedAt)
}

func TestPeriodUseCase_ListVoucherPeriods(t *testing.T) {
	voucherRepo := mocks.NewMockVoucherRepository()
	voucherRepo.Seed(
		&domain.Voucher{Number: "V2025020001", Status: domain.VoucherStatusSubmitted},
		&domain.Voucher{Number: "V2025010001", Status: domain.VoucherStatusSubmitted},
		&domain.Voucher{Number: "V2025030001", Status: domain.VoucherStatusDraft},
	)
	uc := usecase.NewPeriodUseCase(mocks.NewMockReportPeriodRepository(), voucherRepo)

	periods, err := uc.ListVoucherPeriods(context.Background())
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, domain.Period{Year: 2025, Month: time.February}, periods[0])
	assert.Equal(t, domain.Period{Year: 2025, Month: time.January}, periods[1])
}
