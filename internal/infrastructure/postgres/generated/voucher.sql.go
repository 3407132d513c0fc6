package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createVoucher = `-- name: CreateVoucher :one
INSERT INTO vouchers (number, date, period, description, total_debit, total_credit, status, created_by, audited_by, audited_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING number, date, period, description, total_debit, total_credit, status, created_by, audited_by, audited_at, created_at, updated_at
`

type CreateVoucherParams struct {
	Number      string             `json:"number"`
	Date        pgtype.Timestamptz `json:"date"`
	Period      string             `json:"period"`
	Description string             `json:"description"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	Status      string             `json:"status"`
	CreatedBy   string             `json:"created_by"`
	AuditedBy   string             `json:"audited_by"`
	AuditedAt   pgtype.Timestamptz `json:"audited_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateVoucher(ctx context.Context, arg CreateVoucherParams) (Voucher, error) {
	row := q.db.QueryRow(ctx, createVoucher,
		arg.Number,
		arg.Date,
		arg.Period,
		arg.Description,
		arg.TotalDebit,
		arg.TotalCredit,
		arg.Status,
		arg.CreatedBy,
		arg.AuditedBy,
		arg.AuditedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Voucher
	err := row.Scan(
		&i.Number,
		&i.Date,
		&i.Period,
		&i.Description,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.Status,
		&i.CreatedBy,
		&i.AuditedBy,
		&i.AuditedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getVoucherByNumber = `-- name: GetVoucherByNumber :one
SELECT number, date, period, description, total_debit, total_credit, status, created_by, audited_by, audited_at, created_at, updated_at FROM vouchers WHERE number = $1
`

func (q *Queries) GetVoucherByNumber(ctx context.Context, number string) (Voucher, error) {
	row := q.db.QueryRow(ctx, getVoucherByNumber, number)
	var i Voucher
	err := row.Scan(
		&i.Number,
		&i.Date,
		&i.Period,
		&i.Description,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.Status,
		&i.CreatedBy,
		&i.AuditedBy,
		&i.AuditedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const nextVoucherSequence = `-- name: NextVoucherSequence :one
INSERT INTO voucher_sequences (period, last_value)
VALUES ($1, 1)
ON CONFLICT (period) DO UPDATE SET last_value = voucher_sequences.last_value + 1
RETURNING last_value
`

func (q *Queries) NextVoucherSequence(ctx context.Context, period string) (int64, error) {
	row := q.db.QueryRow(ctx, nextVoucherSequence, period)
	var last_value int64
	err := row.Scan(&last_value)
	return last_value, err
}

const listVouchers = `-- name: ListVouchers :many
SELECT number, date, period, description, total_debit, total_credit, status, created_by, audited_by, audited_at, created_at, updated_at FROM vouchers
WHERE ($1::text = '' OR status = $1)
  AND ($2::text = '' OR period = $2)
  AND ($3::text = '' OR created_by = $3)
ORDER BY number
LIMIT $4 OFFSET $5
`

type ListVouchersParams struct {
	Status    string `json:"status"`
	Period    string `json:"period"`
	CreatedBy string `json:"created_by"`
	Limit     int32  `json:"limit"`
	Offset    int32  `json:"offset"`
}

func (q *Queries) ListVouchers(ctx context.Context, arg ListVouchersParams) ([]Voucher, error) {
	rows, err := q.db.Query(ctx, listVouchers,
		arg.Status,
		arg.Period,
		arg.CreatedBy,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Voucher
	for rows.Next() {
		var i Voucher
		if err := rows.Scan(
			&i.Number,
			&i.Date,
			&i.Period,
			&i.Description,
			&i.TotalDebit,
			&i.TotalCredit,
			&i.Status,
			&i.CreatedBy,
			&i.AuditedBy,
			&i.AuditedAt,
			&i.CreatedAt,
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

const listVouchersByPeriodAndStatuses = `-- name: ListVouchersByPeriodAndStatuses :many
SELECT number, date, period, description, total_debit, total_credit, status, created_by, audited_by, audited_at, created_at, updated_at FROM vouchers
WHERE period = $1 AND status = ANY($2::text[])
ORDER BY number
`

type ListVouchersByPeriodAndStatusesParams struct {
	Period   string   `json:"period"`
	Statuses []string `json:"statuses"`
}

func (q *Queries) ListVouchersByPeriodAndStatuses(ctx context.Context, arg ListVouchersByPeriodAndStatusesParams) ([]Voucher, error) {
	rows, err := q.db.Query(ctx, listVouchersByPeriodAndStatuses, arg.Period, arg.Statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Voucher
	for rows.Next() {
		var i Voucher
		if err := rows.Scan(
			&i.Number,
			&i.Date,
			&i.Period,
			&i.Description,
			&i.TotalDebit,
			&i.TotalCredit,
			&i.Status,
			&i.CreatedBy,
			&i.AuditedBy,
			&i.AuditedAt,
			&i.CreatedAt,
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

const listVoucherPeriods = `-- name: ListVoucherPeriods :many
SELECT DISTINCT period FROM vouchers WHERE status = ANY($1::text[]) ORDER BY period DESC
`

func (q *Queries) ListVoucherPeriods(ctx context.Context, statuses []string) ([]string, error) {
	rows, err := q.db.Query(ctx, listVoucherPeriods, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, err
		}
		items = append(items, period)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateVoucher = `-- name: UpdateVoucher :exec
UPDATE vouchers SET date = $2, description = $3, total_debit = $4, total_credit = $5, updated_at = $6 WHERE number = $1
`

type UpdateVoucherParams struct {
	Number      string             `json:"number"`
	Date        pgtype.Timestamptz `json:"date"`
	Description string             `json:"description"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVoucher(ctx context.Context, arg UpdateVoucherParams) error {
	_, err := q.db.Exec(ctx, updateVoucher,
		arg.Number,
		arg.Date,
		arg.Description,
		arg.TotalDebit,
		arg.TotalCredit,
		arg.UpdatedAt,
	)
	return err
}

const updateVoucherStatus = `-- name: UpdateVoucherStatus :exec
UPDATE vouchers SET status = $2, audited_by = $3, audited_at = $4, updated_at = $5 WHERE number = $1
`

type UpdateVoucherStatusParams struct {
	Number    string             `json:"number"`
	Status    string             `json:"status"`
	AuditedBy string             `json:"audited_by"`
	AuditedAt pgtype.Timestamptz `json:"audited_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVoucherStatus(ctx context.Context, arg UpdateVoucherStatusParams) error {
	_, err := q.db.Exec(ctx, updateVoucherStatus,
		arg.Number,
		arg.Status,
		arg.AuditedBy,
		arg.AuditedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteVoucher = `-- name: DeleteVoucher :exec
DELETE FROM vouchers WHERE number = $1
`

func (q *Queries) DeleteVoucher(ctx context.Context, number string) error {
	_, err := q.db.Exec(ctx, deleteVoucher, number)
	return err
}
