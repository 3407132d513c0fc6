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

// IncomeStatementRepository implements usecase.IncomeStatementRepository.
type IncomeStatementRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewIncomeStatementRepository creates a new IncomeStatementRepository.
func NewIncomeStatementRepository(pool *pgxpool.Pool) *IncomeStatementRepository {
	return &IncomeStatementRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create stores an income statement inside a transaction.
func (r *IncomeStatementRepository) Create(ctx context.Context, tx usecase.Transaction, stmt *domain.IncomeStatement) error {
	queries := txQueries(tx)

	return queries.CreateIncomeStatement(ctx, generated.CreateIncomeStatementParams{
		Period:            stmt.Period.String(),
		OperatingRevenue:  decimalToNumeric(stmt.OperatingRevenue),
		OtherRevenue:      decimalToNumeric(stmt.OtherRevenue),
		OperatingCost:     decimalToNumeric(stmt.OperatingCost),
		SellingExpenses:   decimalToNumeric(stmt.SellingExpenses),
		AdminExpenses:     decimalToNumeric(stmt.AdminExpenses),
		FinancialExpenses: decimalToNumeric(stmt.FinancialExpenses),
		OtherIncome:       decimalToNumeric(stmt.OtherIncome),
		OtherExpenses:     decimalToNumeric(stmt.OtherExpenses),
		TaxExpense:        decimalToNumeric(stmt.TaxExpense),
		TotalRevenue:      decimalToNumeric(stmt.TotalRevenue),
		TotalCostExpense:  decimalToNumeric(stmt.TotalCostExpense),
		GrossProfit:       decimalToNumeric(stmt.GrossProfit),
		OperatingProfit:   decimalToNumeric(stmt.OperatingProfit),
		ProfitBeforeTax:   decimalToNumeric(stmt.ProfitBeforeTax),
		NetProfit:         decimalToNumeric(stmt.NetProfit),
		IsFinal:           stmt.IsFinal,
		GeneratedBy:       stmt.GeneratedBy,
		GeneratedAt:       timeToPgTimestamptz(stmt.GeneratedAt),
	})
}

// GetByPeriod retrieves the income statement of a period.
func (r *IncomeStatementRepository) GetByPeriod(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	row, err := r.queries.GetIncomeStatementByPeriod(ctx, period.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}

		return nil, err
	}

	return rowToIncomeStatement(row), nil
}

// List lists stored income statements, newest period first.
func (r *IncomeStatementRepository) List(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error) {
	rows, err := r.queries.ListIncomeStatements(ctx, generated.ListIncomeStatementsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	stmts := make([]*domain.IncomeStatement, 0, len(rows))
	for _, row := range rows {
		stmts = append(stmts, rowToIncomeStatement(row))
	}

	return stmts, nil
}

// Update overwrites a stored income statement's figures and final flag.
func (r *IncomeStatementRepository) Update(ctx context.Context, stmt *domain.IncomeStatement) error {
	return r.queries.UpdateIncomeStatement(ctx, generated.UpdateIncomeStatementParams{
		Period:            stmt.Period.String(),
		OperatingRevenue:  decimalToNumeric(stmt.OperatingRevenue),
		OtherRevenue:      decimalToNumeric(stmt.OtherRevenue),
		OperatingCost:     decimalToNumeric(stmt.OperatingCost),
		SellingExpenses:   decimalToNumeric(stmt.SellingExpenses),
		AdminExpenses:     decimalToNumeric(stmt.AdminExpenses),
		FinancialExpenses: decimalToNumeric(stmt.FinancialExpenses),
		OtherIncome:       decimalToNumeric(stmt.OtherIncome),
		OtherExpenses:     decimalToNumeric(stmt.OtherExpenses),
		TaxExpense:        decimalToNumeric(stmt.TaxExpense),
		TotalRevenue:      decimalToNumeric(stmt.TotalRevenue),
		TotalCostExpense:  decimalToNumeric(stmt.TotalCostExpense),
		GrossProfit:       decimalToNumeric(stmt.GrossProfit),
		OperatingProfit:   decimalToNumeric(stmt.OperatingProfit),
		ProfitBeforeTax:   decimalToNumeric(stmt.ProfitBeforeTax),
		NetProfit:         decimalToNumeric(stmt.NetProfit),
		IsFinal:           stmt.IsFinal,
	})
}

// DeleteByPeriod removes the income statement of a period inside a
// transaction.
func (r *IncomeStatementRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	queries := txQueries(tx)

	return queries.DeleteIncomeStatementByPeriod(ctx, period.String())
}

func rowToIncomeStatement(row generated.IncomeStatement) *domain.IncomeStatement {
	period, _ := domain.ParsePeriod(row.Period)

	return &domain.IncomeStatement{
		Period:            period,
		OperatingRevenue:  numericToDecimal(row.OperatingRevenue),
		OtherRevenue:      numericToDecimal(row.OtherRevenue),
		OperatingCost:     numericToDecimal(row.OperatingCost),
		SellingExpenses:   numericToDecimal(row.SellingExpenses),
		AdminExpenses:     numericToDecimal(row.AdminExpenses),
		FinancialExpenses: numericToDecimal(row.FinancialExpenses),
		OtherIncome:       numericToDecimal(row.OtherIncome),
		OtherExpenses:     numericToDecimal(row.OtherExpenses),
		TaxExpense:        numericToDecimal(row.TaxExpense),
		TotalRevenue:      numericToDecimal(row.TotalRevenue),
		TotalCostExpense:  numericToDecimal(row.TotalCostExpense),
		GrossProfit:       numericToDecimal(row.GrossProfit),
		OperatingProfit:   numericToDecimal(row.OperatingProfit),
		ProfitBeforeTax:   numericToDecimal(row.ProfitBeforeTax),
		NetProfit:         numericToDecimal(row.NetProfit),
		IsFinal:           row.IsFinal,
		GeneratedBy:       row.GeneratedBy,
		GeneratedAt:       row.GeneratedAt.Time,
	}
}
