package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBalanceSheet = `-- name: CreateBalanceSheet :exec
INSERT INTO balance_sheets (period, current_assets, fixed_assets, intangible_assets, other_assets, current_liabilities, long_term_liabilities, paid_in_capital, retained_earnings, current_profit, total_assets, total_liabilities, total_equity, is_balanced, balance_diff, is_final, generated_by, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

type CreateBalanceSheetParams struct {
	Period              string             `json:"period"`
	CurrentAssets       pgtype.Numeric     `json:"current_assets"`
	FixedAssets         pgtype.Numeric     `json:"fixed_assets"`
	IntangibleAssets    pgtype.Numeric     `json:"intangible_assets"`
	OtherAssets         pgtype.Numeric     `json:"other_assets"`
	CurrentLiabilities  pgtype.Numeric     `json:"current_liabilities"`
	LongTermLiabilities pgtype.Numeric     `json:"long_term_liabilities"`
	PaidInCapital       pgtype.Numeric     `json:"paid_in_capital"`
	RetainedEarnings    pgtype.Numeric     `json:"retained_earnings"`
	CurrentProfit       pgtype.Numeric     `json:"current_profit"`
	TotalAssets         pgtype.Numeric     `json:"total_assets"`
	TotalLiabilities    pgtype.Numeric     `json:"total_liabilities"`
	TotalEquity         pgtype.Numeric     `json:"total_equity"`
	IsBalanced          bool               `json:"is_balanced"`
	BalanceDiff         pgtype.Numeric     `json:"balance_diff"`
	IsFinal             bool               `json:"is_final"`
	GeneratedBy         string             `json:"generated_by"`
	GeneratedAt         pgtype.Timestamptz `json:"generated_at"`
}

func (q *Queries) CreateBalanceSheet(ctx context.Context, arg CreateBalanceSheetParams) error {
	_, err := q.db.Exec(ctx, createBalanceSheet,
		arg.Period,
		arg.CurrentAssets,
		arg.FixedAssets,
		arg.IntangibleAssets,
		arg.OtherAssets,
		arg.CurrentLiabilities,
		arg.LongTermLiabilities,
		arg.PaidInCapital,
		arg.RetainedEarnings,
		arg.CurrentProfit,
		arg.TotalAssets,
		arg.TotalLiabilities,
		arg.TotalEquity,
		arg.IsBalanced,
		arg.BalanceDiff,
		arg.IsFinal,
		arg.GeneratedBy,
		arg.GeneratedAt,
	)
	return err
}

const getBalanceSheetByPeriod = `-- name: GetBalanceSheetByPeriod :one
SELECT period, current_assets, fixed_assets, intangible_assets, other_assets, current_liabilities, long_term_liabilities, paid_in_capital, retained_earnings, current_profit, total_assets, total_liabilities, total_equity, is_balanced, balance_diff, is_final, generated_by, generated_at FROM balance_sheets WHERE period = $1
`

func (q *Queries) GetBalanceSheetByPeriod(ctx context.Context, period string) (BalanceSheet, error) {
	row := q.db.QueryRow(ctx, getBalanceSheetByPeriod, period)
	var i BalanceSheet
	err := row.Scan(
		&i.Period,
		&i.CurrentAssets,
		&i.FixedAssets,
		&i.IntangibleAssets,
		&i.OtherAssets,
		&i.CurrentLiabilities,
		&i.LongTermLiabilities,
		&i.PaidInCapital,
		&i.RetainedEarnings,
		&i.CurrentProfit,
		&i.TotalAssets,
		&i.TotalLiabilities,
		&i.TotalEquity,
		&i.IsBalanced,
		&i.BalanceDiff,
		&i.IsFinal,
		&i.GeneratedBy,
		&i.GeneratedAt,
	)
	return i, err
}

const listBalanceSheets = `-- name: ListBalanceSheets :many
SELECT period, current_assets, fixed_assets, intangible_assets, other_assets, current_liabilities, long_term_liabilities, paid_in_capital, retained_earnings, current_profit, total_assets, total_liabilities, total_equity, is_balanced, balance_diff, is_final, generated_by, generated_at FROM balance_sheets
ORDER BY period DESC
LIMIT $1 OFFSET $2
`

type ListBalanceSheetsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListBalanceSheets(ctx context.Context, arg ListBalanceSheetsParams) ([]BalanceSheet, error) {
	rows, err := q.db.Query(ctx, listBalanceSheets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BalanceSheet
	for rows.Next() {
		var i BalanceSheet
		if err := rows.Scan(
			&i.Period,
			&i.CurrentAssets,
			&i.FixedAssets,
			&i.IntangibleAssets,
			&i.OtherAssets,
			&i.CurrentLiabilities,
			&i.LongTermLiabilities,
			&i.PaidInCapital,
			&i.RetainedEarnings,
			&i.CurrentProfit,
			&i.TotalAssets,
			&i.TotalLiabilities,
			&i.TotalEquity,
			&i.IsBalanced,
			&i.BalanceDiff,
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

const updateBalanceSheet = `-- name: UpdateBalanceSheet :exec
UPDATE balance_sheets SET
    current_assets = $2, fixed_assets = $3, intangible_assets = $4, other_assets = $5,
    current_liabilities = $6, long_term_liabilities = $7,
    paid_in_capital = $8, retained_earnings = $9, current_profit = $10,
    total_assets = $11, total_liabilities = $12, total_equity = $13,
    is_balanced = $14, balance_diff = $15, is_final = $16
WHERE period = $1
`

type UpdateBalanceSheetParams struct {
	Period              string         `json:"period"`
	CurrentAssets       pgtype.Numeric `json:"current_assets"`
	FixedAssets         pgtype.Numeric `json:"fixed_assets"`
	IntangibleAssets    pgtype.Numeric `json:"intangible_assets"`
	OtherAssets         pgtype.Numeric `json:"other_assets"`
	CurrentLiabilities  pgtype.Numeric `json:"current_liabilities"`
	LongTermLiabilities pgtype.Numeric `json:"long_term_liabilities"`
	PaidInCapital       pgtype.Numeric `json:"paid_in_capital"`
	RetainedEarnings    pgtype.Numeric `json:"retained_earnings"`
	CurrentProfit       pgtype.Numeric `json:"current_profit"`
	TotalAssets         pgtype.Numeric `json:"total_assets"`
	TotalLiabilities    pgtype.Numeric `json:"total_liabilities"`
	TotalEquity         pgtype.Numeric `json:"total_equity"`
	IsBalanced          bool           `json:"is_balanced"`
	BalanceDiff         pgtype.Numeric `json:"balance_diff"`
	IsFinal             bool           `json:"is_final"`
}

func (q *Queries) UpdateBalanceSheet(ctx context.Context, arg UpdateBalanceSheetParams) error {
	_, err := q.db.Exec(ctx, updateBalanceSheet,
		arg.Period,
		arg.CurrentAssets,
		arg.FixedAssets,
		arg.IntangibleAssets,
		arg.OtherAssets,
		arg.CurrentLiabilities,
		arg.LongTermLiabilities,
		arg.PaidInCapital,
		arg.RetainedEarnings,
		arg.CurrentProfit,
		arg.TotalAssets,
		arg.TotalLiabilities,
		arg.TotalEquity,
		arg.IsBalanced,
		arg.BalanceDiff,
		arg.IsFinal,
	)
	return err
}

const deleteBalanceSheetByPeriod = `-- name: DeleteBalanceSheetByPeriod :exec
DELETE FROM balance_sheets WHERE period = $1
`

func (q *Queries) DeleteBalanceSheetByPeriod(ctx context.Context, period string) error {
	_, err := q.db.Exec(ctx, deleteBalanceSheetByPeriod, period)
	return err
}
