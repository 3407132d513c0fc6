package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/infrastructure/postgres/generated"
	"github.com/iho/finbook/internal/usecase"
)

// GeneralLedgerRepository implements usecase.GeneralLedgerRepository.
type GeneralLedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewGeneralLedgerRepository creates a new GeneralLedgerRepository.
func NewGeneralLedgerRepository(pool *pgxpool.Pool) *GeneralLedgerRepository {
	return &GeneralLedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateBatch inserts a period's ledger rows inside a transaction.
func (r *GeneralLedgerRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, rows []*domain.GeneralLedgerRow) error {
	queries := txQueries(tx)

	for _, row := range rows {
		err := queries.CreateGeneralLedgerRow(ctx, generated.CreateGeneralLedgerRowParams{
			Period:           row.Period.String(),
			AccountCode:      row.AccountCode,
			OpeningBalance:   decimalToNumeric(row.OpeningBalance),
			OpeningDirection: string(row.OpeningDirection),
			DebitTotal:       decimalToNumeric(row.DebitTotal),
			CreditTotal:      decimalToNumeric(row.CreditTotal),
			EndingBalance:    decimalToNumeric(row.EndingBalance),
			EndingDirection:  string(row.EndingDirection),
			UpdatedAt:        timeToPgTimestamptz(row.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// ListByPeriod retrieves a period's ledger rows, ordered by account
// code.
func (r *GeneralLedgerRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error) {
	rows, err := r.queries.ListGeneralLedgerByPeriod(ctx, period.String())
	if err != nil {
		return nil, err
	}

	out := make([]*domain.GeneralLedgerRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToLedgerRow(row))
	}

	return out, nil
}

// GetByPeriodAndAccount retrieves one ledger row.
func (r *GeneralLedgerRepository) GetByPeriodAndAccount(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error) {
	row, err := r.queries.GetGeneralLedgerRow(ctx, generated.GetGeneralLedgerRowParams{
		Period:      period.String(),
		AccountCode: accountCode,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerRowNotFound
		}

		return nil, err
	}

	return rowToLedgerRow(row), nil
}

// DeleteByPeriod removes a period's ledger rows inside a transaction.
func (r *GeneralLedgerRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	queries := txQueries(tx)

	return queries.DeleteGeneralLedgerByPeriod(ctx, period.String())
}

func rowToLedgerRow(row generated.GeneralLedger) *domain.GeneralLedgerRow {
	period, _ := domain.ParsePeriod(row.Period)

	return &domain.GeneralLedgerRow{
		Period:           period,
		AccountCode:      row.AccountCode,
		OpeningBalance:   numericToDecimal(row.OpeningBalance),
		OpeningDirection: domain.Direction(row.OpeningDirection),
		DebitTotal:       numericToDecimal(row.DebitTotal),
		CreditTotal:      numericToDecimal(row.CreditTotal),
		EndingBalance:    numericToDecimal(row.EndingBalance),
		EndingDirection:  domain.Direction(row.EndingDirection),
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
