package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/report"
)

// PeriodUseCase handles report period bookkeeping and period discovery.
type PeriodUseCase struct {
	periodRepo  ReportPeriodRepository
	voucherRepo VoucherRepository
}

// NewPeriodUseCase creates a new PeriodUseCase.
func NewPeriodUseCase(periodRepo ReportPeriodRepository, voucherRepo VoucherRepository) *PeriodUseCase {
	return &PeriodUseCase{periodRepo: periodRepo, voucherRepo: voucherRepo}
}

// CreateReportPeriodInput represents input for registering a period.
type CreateReportPeriodInput struct {
	Code domain.Period
	Name string
}

// CreateReportPeriod registers a period window. The start and end dates
// follow from the code.
func (uc *PeriodUseCase) CreateReportPeriod(ctx context.Context, input CreateReportPeriodInput) (*domain.ReportPeriod, error) {
	if input.Code.IsZero() {
		return nil, domain.ErrInvalidPeriod
	}

	if _, err := uc.periodRepo.GetByCode(ctx, input.Code); err == nil {
		return nil, domain.ErrReportPeriodExists
	} else if !errors.Is(err, domain.ErrReportPeriodNotFound) {
		return nil, err
	}

	start := time.Date(input.Code.Year, input.Code.Month, 1, 0, 0, 0, 0, time.UTC)
	name := input.Name
	if name == "" {
		name = input.Code.String()
	}

	period := &domain.ReportPeriod{
		Code:      input.Code,
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0).Add(-24 * time.Hour),
	}

	if err := uc.periodRepo.Create(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

// GetReportPeriod retrieves a registered period by its YYYYMM code.
func (uc *PeriodUseCase) GetReportPeriod(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error) {
	return uc.periodRepo.GetByCode(ctx, code)
}

// ListReportPeriods lists registered periods, newest first.
func (uc *PeriodUseCase) ListReportPeriods(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error) {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	return uc.periodRepo.List(ctx, limit, offset)
}

// ClosePeriod marks a period closed. Closing is advisory bookkeeping:
// it does not block voucher entry or regeneration.
func (uc *PeriodUseCase) ClosePeriod(ctx context.Context, code domain.Period, closedBy string) (*domain.ReportPeriod, error) {
	period, err := uc.periodRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if period.IsClosed {
		return period, nil
	}

	now := time.Now().UTC()
	period.IsClosed = true
	period.ClosedBy = closedBy
	period.ClosedAt = &now

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

// ReopenPeriod clears the closed flag.
func (uc *PeriodUseCase) ReopenPeriod(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error) {
	period, err := uc.periodRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !period.IsClosed {
		return period, nil
	}

	period.IsClosed = false
	period.ClosedBy = ""
	period.ClosedAt = nil

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

// ListVoucherPeriods returns the distinct periods that have vouchers
// eligible for statement generation, newest first.
func (uc *PeriodUseCase) ListVoucherPeriods(ctx context.Context) ([]domain.Period, error) {
	return uc.voucherRepo.ListPeriods(ctx, report.StatementStatuses)
}
