package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createIncomeStatement = `-- name: CreateIncomeStatement :exec
INSERT INTO income_statements (period, operating_revenue, other_revenue, operating_cost, selling_expenses, admin_expenses, financial_expenses, other_income, other_expenses, tax_expense, total_revenue, total_cost_expense, gross_profit, operating_profit, profit_before_tax, net_profit, is_final, generated_by, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`

type CreateIncomeStatementParams struct {
	Period            string             `json:"period"`
	OperatingRevenue  pgtype.Numeric     `json:"operating_revenue"`
	OtherRevenue      pgtype.Numeric     `json:"other_revenue"`
	OperatingCost     pgtype.Numeric     `json:"operating_cost"`
	SellingExpenses   pgtype.Numeric     `json:"selling_expenses"`
	AdminExpenses     pgtype.Numeric     `json:"admin_expenses"`
	FinancialExpenses pgtype.Numeric     `json:"financial_expenses"`
	OtherIncome       pgtype.Numeric     `json:"other_income"`
	OtherExpenses     pgtype.Numeric     `json:"other_expenses"`
	TaxExpense        pgtype.Numeric     `json:"tax_expense"`
	TotalRevenue      pgtype.Numeric     `json:"total_revenue"`
	TotalCostExpense  pgtype.Numeric     `json:"total_cost_expense"`
	GrossProfit       pgtype.Numeric     `json:"gross_profit"`
	OperatingProfit   pgtype.Numeric     `json:"operating_profit"`
	ProfitBeforeTax   pgtype.Numeric     `json:"profit_before_tax"`
	NetProfit         pgtype.Numeric     `json:"net_profit"`
	IsFinal           bool               `json:"is_final"`
	GeneratedBy       string             `json:"generated_by"`
	GeneratedAt       pgtype.Timestamptz `json:"generated_at"`
}

func (q *Queries) CreateIncomeStatement(ctx context.Context, arg CreateIncomeStatementParams) error {
	_, err := q.db.Exec(ctx, createIncomeStatement,
		arg.Period,
		arg.OperatingRevenue,
		arg.OtherRevenue,
		arg.OperatingCost,
		arg.SellingExpenses,
		arg.AdminExpenses,
		arg.FinancialExpenses,
		arg.OtherIncome,
		arg.OtherExpenses,
		arg.TaxExpense,
		arg.TotalRevenue,
		arg.TotalCostExpense,
		arg.GrossProfit,
		arg.OperatingProfit,
		arg.ProfitBeforeTax,
		arg.NetProfit,
		arg.IsFinal,
		arg.GeneratedBy,
		arg.GeneratedAt,
	)
	return err
}

const getIncomeStatementByPeriod = `-- name: GetIncomeStatementByPeriod :one
SELECT period, operating_revenue, other_revenue, operating_cost, selling_expenses, admin_expenses, financial_expenses, other_income, other_expenses, tax_expense, total_revenue, total_cost_expense, gross_profit, operating_profit, profit_before_tax, net_profit, is_final, generated_by, generated_at FROM income_statements WHERE period = $1
`

func (q *Queries) GetIncomeStatementByPeriod(ctx context.Context, period string) (IncomeStatement, error) {
	row := q.db.QueryRow(ctx, getIncomeStatementByPeriod, period)
	var i IncomeStatement
	err := row.Scan(
		&i.Period,
		&i.OperatingRevenue,
		&i.OtherRevenue,
		&i.OperatingCost,
		&i.SellingExpenses,
		&i.AdminExpenses,
		&i.FinancialExpenses,
		&i.OtherIncome,
		&i.OtherExpenses,
		&i.TaxExpense,
		&i.TotalRevenue,
		&i.TotalCostExpense,
		&i.GrossProfit,
		&i.OperatingProfit,
		&i.ProfitBeforeTax,
		&i.NetProfit,
		&i.IsFinal,
		&i.GeneratedBy,
		&i.GeneratedAt,
	)
	return i, err
}

const listIncomeStatements = `-- name: ListIncomeStatements :many
SELECT period, operating_revenue, other_revenue, operating_cost, selling_expenses, admin_expenses, financial_expenses, other_income, other_expenses, tax_expense, total_revenue, total_cost_expense, gross_profit, operating_profit, profit_before_tax, net_profit, is_final, generated_by, generated_at FROM income_statements
ORDER BY period DESC
LIMIT $1 OFFSET $2
`

type ListIncomeStatementsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListIncomeStatements(ctx context.Context, arg ListIncomeStatementsParams) ([]IncomeStatement, error) {
	rows, err := q.db.Query(ctx, listIncomeStatements, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []IncomeStatement
	for rows.Next() {
		var i IncomeStatement
		if err := rows.Scan(
			&i.Period,
			&i.OperatingRevenue,
			&i.OtherRevenue,
			&i.OperatingCost,
			&i.SellingExpenses,
			&i.AdminExpenses,
			&i.FinancialExpenses,
			&i.OtherIncome,
			&i.OtherExpenses,
			&i.TaxExpense,
			&i.TotalRevenue,
			&i.TotalCostExpense,
			&i.GrossProfit,
			&i.OperatingProfit,
			&i.ProfitBeforeTax,
			&i.NetProfit,
			&i.IsFinal,
			&i.GeneratedBy,
			&i.GeneratedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateIncomeStatement = `-- name: UpdateIncomeStatement :exec
UPDATE income_statements SET
    operating_revenue = $2, other_revenue = $3, operating_cost = $4,
    selling_expenses = $5, admin_expenses = $6, financial_expenses = $7,
    other_income = $8, other_expenses = $9, tax_expense = $10,
    total_revenue = $11, total_cost_expense = $12, gross_profit = $13,
    operating_profit = $14, profit_before_tax = $15, net_profit = $16,
    is_final = $17
WHERE period = $1
`

type UpdateIncomeStatementParams struct {
	Period            string         `json:"period"`
	OperatingRevenue  pgtype.Numeric `json:"operating_revenue"`
	OtherRevenue      pgtype.Numeric `json:"other_revenue"`
	OperatingCost     pgtype.Numeric `json:"operating_cost"`
	SellingExpenses   pgtype.Numeric `json:"selling_expenses"`
	AdminExpenses     pgtype.Numeric `json:"admin_expenses"`
	FinancialExpenses pgtype.Numeric `json:"financial_expenses"`
	OtherIncome       pgtype.Numeric `json:"other_income"`
	OtherExpenses     pgtype.Numeric `json:"other_expenses"`
	TaxExpense        pgtype.Numeric `json:"tax_expense"`
	TotalRevenue      pgtype.Numeric `json:"total_revenue"`
	TotalCostExpense  pgtype.Numeric `json:"total_cost_expense"`
	GrossProfit       pgtype.Numeric `json:"gross_profit"`
	OperatingProfit   pgtype.Numeric `json:"operating_profit"`
	ProfitBeforeTax   pgtype.Numeric `json:"profit_before_tax"`
	NetProfit         pgtype.Numeric `json:"net_profit"`
	IsFinal           bool           `json:"is_final"`
}

func (q *Queries) UpdateIncomeStatement(ctx context.Context, arg UpdateIncomeStatementParams) error {
	_, err := q.db.Exec(ctx, updateIncomeStatement,
		arg.Period,
		arg.OperatingRevenue,
		arg.OtherRevenue,
		arg.OperatingCost,
		arg.SellingExpenses,
		arg.AdminExpenses,
		arg.FinancialExpenses,
		arg.OtherIncome,
		arg.OtherExpenses,
		arg.TaxExpense,
		arg.TotalRevenue,
		arg.TotalCostExpense,
		arg.GrossProfit,
		arg.OperatingProfit,
		arg.ProfitBeforeTax,
		arg.NetProfit,
		arg.IsFinal,
	)
	return err
}

const deleteIncomeStatementByPeriod = `-- name: DeleteIncomeStatementByPeriod :exec
DELETE FROM income_statements WHERE period = $1
`

func (q *Queries) DeleteIncomeStatementByPeriod(ctx context.Context, period string) error {
	_, err := q.db.Exec(ctx, deleteIncomeStatementByPeriod, period)
	return err
}
