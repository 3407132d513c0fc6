package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAccount = `-- name: CreateAccount :one
INSERT INTO accounts (code, name, type, direction, parent_code, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING code, name, type, direction, parent_code, status, created_at, updated_at
`

type CreateAccountParams struct {
	Code       string             `json:"code"`
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Direction  string             `json:"direction"`
	ParentCode string             `json:"parent_code"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) (Account, error) {
	row := q.db.QueryRow(ctx, createAccount,
		arg.Code,
		arg.Name,
		arg.Type,
		arg.Direction,
		arg.ParentCode,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Account
	err := row.Scan(
		&i.Code,
		&i.Name,
		&i.Type,
		&i.Direction,
		&i.ParentCode,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getAccountByCode = `-- name: GetAccountByCode :one
SELECT code, name, type, direction, parent_code, status, created_at, updated_at FROM accounts WHERE code = $1
`

func (q *Queries) GetAccountByCode(ctx context.Context, code string) (Account, error) {
	row := q.db.QueryRow(ctx, getAccountByCode, code)
	var i Account
	err := row.Scan(
		&i.Code,
		&i.Name,
		&i.Type,
		&i.Direction,
		&i.ParentCode,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listAccounts = `-- name: ListAccounts :many
SELECT code, name, type, direction, parent_code, status, created_at, updated_at FROM accounts
WHERE ($1::text = '' OR type = $1)
  AND ($2::text = '' OR status = $2)
  AND ($3::text = '' OR parent_code = $3)
ORDER BY code
LIMIT $4 OFFSET $5
`

type ListAccountsParams struct {
	Type       string `json:"type"`
	Status     string `json:"status"`
	ParentCode string `json:"parent_code"`
	Limit      int32  `json:"limit"`
	Offset     int32  `json:"offset"`
}

func (q *Queries) ListAccounts(ctx context.Context, arg ListAccountsParams) ([]Account, error) {
	rows, err := q.db.Query(ctx, listAccounts,
		arg.Type,
		arg.Status,
		arg.ParentCode,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Account
	for rows.Next() {
		var i Account
		if err := rows.Scan(
			&i.Code,
			&i.Name,
			&i.Type,
			&i.Direction,
			&i.ParentCode,
			&i.Status,
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

const listAllAccounts = `-- name: ListAllAccounts :many
SELECT code, name, type, direction, parent_code, status, created_at, updated_at FROM accounts ORDER BY code
`

func (q *Queries) ListAllAccounts(ctx context.Context) ([]Account, error) {
	rows, err := q.db.Query(ctx, listAllAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Account
	for rows.Next() {
		var i Account
		if err := rows.Scan(
			&i.Code,
			&i.Name,
			&i.Type,
			&i.Direction,
			&i.ParentCode,
			&i.Status,
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

const updateAccount = `-- name: UpdateAccount :exec
UPDATE accounts SET name = $2, updated_at = $3 WHERE code = $1
`

type UpdateAccountParams struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateAccount(ctx context.Context, arg UpdateAccountParams) error {
	_, err := q.db.Exec(ctx, updateAccount, arg.Code, arg.Name, arg.UpdatedAt)
	return err
}

const updateAccountStatus = `-- name: UpdateAccountStatus :exec
UPDATE accounts SET status = $2, updated_at = $3 WHERE code = $1
`

type UpdateAccountStatusParams struct {
	Code      string             `json:"code"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateAccountStatus(ctx context.Context, arg UpdateAccountStatusParams) error {
	_, err := q.db.Exec(ctx, updateAccountStatus, arg.Code, arg.Status, arg.UpdatedAt)
	return err
}
