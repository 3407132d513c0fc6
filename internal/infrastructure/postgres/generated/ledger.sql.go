package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createGeneralLedgerRow = `-- name: CreateGeneralLedgerRow :exec
INSERT INTO general_ledger (period, account_code, opening_balance, opening_direction, debit_total, credit_total, ending_balance, ending_direction, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateGeneralLedgerRowParams struct {
	Period           string             `json:"period"`
	AccountCode      string             `json:"account_code"`
	OpeningBalance   pgtype.Numeric     `json:"opening_balance"`
	OpeningDirection string             `json:"opening_direction"`
	DebitTotal       pgtype.Numeric     `json:"debit_total"`
	CreditTotal      pgtype.Numeric     `json:"credit_total"`
	EndingBalance    pgtype.Numeric     `json:"ending_balance"`
	EndingDirection  string             `json:"ending_direction"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateGeneralLedgerRow(ctx context.Context, arg CreateGeneralLedgerRowParams) error {
	_, err := q.db.Exec(ctx, createGeneralLedgerRow,
		arg.Period,
		arg.AccountCode,
		arg.OpeningBalance,
		arg.OpeningDirection,
		arg.DebitTotal,
		arg.CreditTotal,
		arg.EndingBalance,
		arg.EndingDirection,
		arg.UpdatedAt,
	)
	return err
}

const listGeneralLedgerByPeriod = `-- name: ListGeneralLedgerByPeriod :many
SELECT period, account_code, opening_balance, opening_direction, debit_total, credit_total, ending_balance, ending_direction, updated_at FROM general_ledger
WHERE period = $1
ORDER BY account_code
`

func (q *Queries) ListGeneralLedgerByPeriod(ctx context.Context, period string) ([]GeneralLedger, error) {
	rows, err := q.db.Query(ctx, listGeneralLedgerByPeriod, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GeneralLedger
	for rows.Next() {
		var i GeneralLedger
		if err := rows.Scan(
			&i.Period,
			&i.AccountCode,
			&i.OpeningBalance,
			&i.OpeningDirection,
			&i.DebitTotal,
			&i.CreditTotal,
			&i.EndingBalance,
			&i.EndingDirection,
			&i.UpdatedAt,
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

const getGeneralLedgerRow = `-- name: GetGeneralLedgerRow :one
SELECT period, account_code, opening_balance, opening_direction, debit_total, credit_total, ending_balance, ending_direction, updated_at FROM general_ledger
WHERE period = $1 AND account_code = $2
`

type GetGeneralLedgerRowParams struct {
	Period      string `json:"period"`
	AccountCode string `json:"account_code"`
}

func (q *Queries) GetGeneralLedgerRow(ctx context.Context, arg GetGeneralLedgerRowParams) (GeneralLedger, error) {
	row := q.db.QueryRow(ctx, getGeneralLedgerRow, arg.Period, arg.AccountCode)
	var i GeneralLedger
	err := row.Scan(
		&i.Period,
		&i.AccountCode,
		&i.OpeningBalance,
		&i.OpeningDirection,
		&i.DebitTotal,
		&i.CreditTotal,
		&i.EndingBalance,
		&i.EndingDirection,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteGeneralLedgerByPeriod = `-- name: DeleteGeneralLedgerByPeriod :exec
DELETE FROM general_ledger WHERE period = $1
`

func (q *Queries) DeleteGeneralLedgerByPeriod(ctx context.Context, period string) error {
	_, err := q.db.Exec(ctx, deleteGeneralLedgerByPeriod, period)
	return err
}
