package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReportPeriod = `-- name: CreateReportPeriod :exec
INSERT INTO report_periods (code, name, start_date, end_date, is_closed, closed_by, closed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateReportPeriodParams struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	IsClosed  bool               `json:"is_closed"`
	ClosedBy  string             `json:"closed_by"`
	ClosedAt  pgtype.Timestamptz `json:"closed_at"`
}

func (q *Queries) CreateReportPeriod(ctx context.Context, arg CreateReportPeriodParams) error {
	_, err := q.db.Exec(ctx, createReportPeriod,
		arg.Code,
		arg.Name,
		arg.StartDate,
		arg.EndDate,
		arg.IsClosed,
		arg.ClosedBy,
		arg.ClosedAt,
	)
	return err
}

const getReportPeriodByCode = `-- name: GetReportPeriodByCode :one
SELECT code, name, start_date, end_date, is_closed, closed_by, closed_at FROM report_periods WHERE code = $1
`

func (q *Queries) GetReportPeriodByCode(ctx context.Context, code string) (ReportPeriod, error) {
	row := q.db.QueryRow(ctx, getReportPeriodByCode, code)
	var i ReportPeriod
	err := row.Scan(
		&i.Code,
		&i.Name,
		&i.StartDate,
		&i.EndDate,
		&i.IsClosed,
		&i.ClosedBy,
		&i.ClosedAt,
	)
	return i, err
}

const listReportPeriods = `-- name: ListReportPeriods :many
SELECT code, name, start_date, end_date, is_closed, closed_by, closed_at FROM report_periods
ORDER BY code DESC
LIMIT $1 OFFSET $2
`

type ListReportPeriodsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListReportPeriods(ctx context.Context, arg ListReportPeriodsParams) ([]ReportPeriod, error) {
	rows, err := q.db.Query(ctx, listReportPeriods, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReportPeriod
	for rows.Next() {
		var i ReportPeriod
		if err := rows.Scan(
			&i.Code,
			&i.Name,
			&i.StartDate,
			&i.EndDate,
			&i.IsClosed,
			&i.ClosedBy,
			&i.ClosedAt,
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

const updateReportPeriod = `-- name: UpdateReportPeriod :exec
UPDATE report_periods SET name = $2, is_closed = $3, closed_by = $4, closed_at = $5 WHERE code = $1
`

type UpdateReportPeriodParams struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	IsClosed bool               `json:"is_closed"`
	ClosedBy string             `json:"closed_by"`
	ClosedAt pgtype.Timestamptz `json:"closed_at"`
}

func (q *Queries) UpdateReportPeriod(ctx context.Context, arg UpdateReportPeriodParams) error {
	_, err := q.db.Exec(ctx, updateReportPeriod,
		arg.Code,
		arg.Name,
		arg.IsClosed,
		arg.ClosedBy,
		arg.ClosedAt,
	)
	return err
}
