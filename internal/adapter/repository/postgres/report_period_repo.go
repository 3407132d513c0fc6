package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/infrastructure/postgres/generated"
)

// ReportPeriodRepository implements usecase.ReportPeriodRepository.
type ReportPeriodRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReportPeriodRepository creates a new ReportPeriodRepository.
func NewReportPeriodRepository(pool *pgxpool.Pool) *ReportPeriodRepository {
	return &ReportPeriodRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create registers a period window.
func (r *ReportPeriodRepository) Create(ctx context.Context, period *domain.ReportPeriod) error {
	return r.queries.CreateReportPeriod(ctx, generated.CreateReportPeriodParams{
		Code:      period.Code.String(),
		Name:      period.Name,
		StartDate: timeToPgTimestamptz(period.StartDate),
		EndDate:   timeToPgTimestamptz(period.EndDate),
		IsClosed:  period.IsClosed,
		ClosedBy:  period.ClosedBy,
		ClosedAt:  timePtrToPgTimestamptz(period.ClosedAt),
	})
}

// GetByCode retrieves a period by its YYYYMM code.
func (r *ReportPeriodRepository) GetByCode(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error) {
	row, err := r.queries.GetReportPeriodByCode(ctx, code.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportPeriodNotFound
		}

		return nil, err
	}

	return rowToReportPeriod(row), nil
}

// List lists registered periods, newest first.
func (r *ReportPeriodRepository) List(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error) {
	rows, err := r.queries.ListReportPeriods(ctx, generated.ListReportPeriodsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	periods := make([]*domain.ReportPeriod, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, rowToReportPeriod(row))
	}

	return periods, nil
}

// Update stores a period's name and closing state.
func (r *ReportPeriodRepository) Update(ctx context.Context, period *domain.ReportPeriod) error {
	return r.queries.UpdateReportPeriod(ctx, generated.UpdateReportPeriodParams{
		Code:     period.Code.String(),
		Name:     period.Name,
		IsClosed: period.IsClosed,
		ClosedBy: period.ClosedBy,
		ClosedAt: timePtrToPgTimestamptz(period.ClosedAt),
	})
}

func rowToReportPeriod(row generated.ReportPeriod) *domain.ReportPeriod {
	code, _ := domain.ParsePeriod(row.Code)

	return &domain.ReportPeriod{
		Code:      code,
		Name:      row.Name,
		StartDate: row.StartDate.Time,
		EndDate:   row.EndDate.Time,
		IsClosed:  row.IsClosed,
		ClosedBy:  row.ClosedBy,
		ClosedAt:  pgTimestamptzToTimePtr(row.ClosedAt),
	}
}
