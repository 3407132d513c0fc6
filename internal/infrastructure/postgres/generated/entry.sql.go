package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createJournalEntry = `-- name: CreateJournalEntry :exec
INSERT INTO journal_entries (id, voucher_number, account_code, direction, amount, description, customer, supplier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateJournalEntryParams struct {
	ID            string             `json:"id"`
	VoucherNumber string             `json:"voucher_number"`
	AccountCode   string             `json:"account_code"`
	Direction     string             `json:"direction"`
	Amount        pgtype.Numeric     `json:"amount"`
	Description   string             `json:"description"`
	Customer      string             `json:"customer"`
	Supplier      string             `json:"supplier"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) error {
	_, err := q.db.Exec(ctx, createJournalEntry,
		arg.ID,
		arg.VoucherNumber,
		arg.AccountCode,
		arg.Direction,
		arg.Amount,
		arg.Description,
		arg.Customer,
		arg.Supplier,
		arg.CreatedAt,
	)
	return err
}

const getEntriesByVoucher = `-- name: GetEntriesByVoucher :many
SELECT id, voucher_number, account_code, direction, amount, description, customer, supplier, created_at FROM journal_entries
WHERE voucher_number = $1
ORDER BY id
`

func (q *Queries) GetEntriesByVoucher(ctx context.Context, voucherNumber string) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, getEntriesByVoucher, voucherNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JournalEntry
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.VoucherNumber,
			&i.AccountCode,
			&i.Direction,
			&i.Amount,
			&i.Description,
			&i.Customer,
			&i.Supplier,
			&i.CreatedAt,
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

const listEntriesByAccount = `-- name: ListEntriesByAccount :many
SELECT id, voucher_number, account_code, direction, amount, description, customer, supplier, created_at FROM journal_entries
WHERE account_code = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

type ListEntriesByAccountParams struct {
	AccountCode string `json:"account_code"`
	Limit       int32  `json:"limit"`
	Offset      int32  `json:"offset"`
}

func (q *Queries) ListEntriesByAccount(ctx context.Context, arg ListEntriesByAccountParams) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, listEntriesByAccount, arg.AccountCode, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JournalEntry
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.VoucherNumber,
			&i.AccountCode,
			&i.Direction,
			&i.Amount,
			&i.Description,
			&i.Customer,
			&i.Supplier,
			&i.CreatedAt,
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

const deleteEntriesByVoucher = `-- name: DeleteEntriesByVoucher :exec
DELETE FROM journal_entries WHERE voucher_number = $1
`

func (q *Queries) DeleteEntriesByVoucher(ctx context.Context, voucherNumber string) error {
	_, err := q.db.Exec(ctx, deleteEntriesByVoucher, voucherNumber)
	return err
}
