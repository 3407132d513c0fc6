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

// BalanceSheetRepository implements usecase.BalanceSheetRepository.
type BalanceSheetRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceSheetRepository creates a new BalanceSheetRepository.
func NewBalanceSheetRepository(pool *pgxpool.Pool) *BalanceSheetRepository {
	return &BalanceSheetRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create stores a balance sheet inside a transaction.
func (r *BalanceSheetRepository) Create(ctx context.Context, tx usecase.Transaction, sheet *domain.BalanceSheet) error {
	queries := txQueries(tx)

	return queries.CreateBalanceSheet(ctx, generated.CreateBalanceSheetParams{
		Period:              sheet.Period.String(),
		CurrentAssets:       decimalToNumeric(sheet.CurrentAssets),
		FixedAssets:         decimalToNumeric(sheet.FixedAssets),
		IntangibleAssets:    decimalToNumeric(sheet.IntangibleAssets),
		OtherAssets:         decimalToNumeric(sheet.OtherAssets),
		CurrentLiabilities:  decimalToNumeric(sheet.CurrentLiabilities),
		LongTermLiabilities: decimalToNumeric(sheet.LongTermLiabilities),
		PaidInCapital:       decimalToNumeric(sheet.PaidInCapital),
		RetainedEarnings:    decimalToNumeric(sheet.RetainedEarnings),
		CurrentProfit:       decimalToNumeric(sheet.CurrentProfit),
		TotalAssets:         decimalToNumeric(sheet.TotalAssets),
		TotalLiabilities:    decimalToNumeric(sheet.TotalLiabilities),
		TotalEquity:         decimalToNumeric(sheet.TotalEquity),
		IsBalanced:          sheet.IsBalanced,
		BalanceDiff:         decimalToNumeric(sheet.BalanceDiff),
		IsFinal:             sheet.IsFinal,
		GeneratedBy:         sheet.GeneratedBy,
		GeneratedAt:         timeToPgTimestamptz(sheet.GeneratedAt),
	})
}

// GetByPeriod retrieves the balance sheet of a period.
func (r *BalanceSheetRepository) GetByPeriod(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	row, err := r.queries.GetBalanceSheetByPeriod(ctx, period.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}

		return nil, err
	}

	return rowToBalanceSheet(row), nil
}

// List lists stored balance sheets, newest period first.
func (r *BalanceSheetRepository) List(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error) {
	rows, err := r.queries.ListBalanceSheets(ctx, generated.ListBalanceSheetsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	sheets := make([]*domain.BalanceSheet, 0, len(rows))
	for _, row := range rows {
		sheets = append(sheets, rowToBalanceSheet(row))
	}

	return sheets, nil
}

// Update overwrites a stored balance sheet's figures and final flag.
func (r *BalanceSheetRepository) Update(ctx context.Context, sheet *domain.BalanceSheet) error {
	return r.queries.UpdateBalanceSheet(ctx, generated.UpdateBalanceSheetParams{
		Period:              sheet.Period.String(),
		CurrentAssets:       decimalToNumeric(sheet.CurrentAssets),
		FixedAssets:         decimalToNumeric(sheet.FixedAssets),
		IntangibleAssets:    decimalToNumeric(sheet.IntangibleAssets),
		OtherAssets:         decimalToNumeric(sheet.OtherAssets),
		CurrentLiabilities:  decimalToNumeric(sheet.CurrentLiabilities),
		LongTermLiabilities: decimalToNumeric(sheet.LongTermLiabilities),
		PaidInCapital:       decimalToNumeric(sheet.PaidInCapital),
		RetainedEarnings:    decimalToNumeric(sheet.RetainedEarnings),
		CurrentProfit:       decimalToNumeric(sheet.CurrentProfit),
		TotalAssets:         decimalToNumeric(sheet.TotalAssets),
		TotalLiabilities:    decimalToNumeric(sheet.TotalLiabilities),
		TotalEquity:         decimalToNumeric(sheet.TotalEquity),
		IsBalanced:          sheet.IsBalanced,
		BalanceDiff:         decimalToNumeric(sheet.BalanceDiff),
		IsFinal:             sheet.IsFinal,
	})
}

// DeleteByPeriod removes the balance sheet of a period inside a
// transaction.
func (r *BalanceSheetRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	queries := txQueries(tx)

	return queries.DeleteBalanceSheetByPeriod(ctx, period.String())
}

func rowToBalanceSheet(row generated.BalanceSheet) *domain.BalanceSheet {
	period, _ := domain.ParsePeriod(row.Period)

	return &domain.BalanceSheet{
		Period:              period,
		CurrentAssets:       numericToDecimal(row.CurrentAssets),
		FixedAssets:         numericToDecimal(row.FixedAssets),
		IntangibleAssets:    numericToDecimal(row.IntangibleAssets),
		OtherAssets:         numericToDecimal(row.OtherAssets),
		CurrentLiabilities:  numericToDecimal(row.CurrentLiabilities),
		LongTermLiabilities: numericToDecimal(row.LongTermLiabilities),
		PaidInCapital:       numericToDecimal(row.PaidInCapital),
		RetainedEarnings:    numericToDecimal(row.RetainedEarnings),
		CurrentProfit:       numericToDecimal(row.CurrentProfit),
		TotalAssets:         numericToDecimal(row.TotalAssets),
		TotalLiabilities:    numericToDecimal(row.TotalLiabilities),
		TotalEquity:         numericToDecimal(row.TotalEquity),
		IsBalanced:          row.IsBalanced,
		BalanceDiff:         numericToDecimal(row.BalanceDiff),
		IsFinal:             row.IsFinal,
		GeneratedBy:         row.GeneratedBy,
		GeneratedAt:         row.GeneratedAt.Time,
	}
}
