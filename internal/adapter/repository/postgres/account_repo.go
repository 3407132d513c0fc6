package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/infrastructure/postgres/generated"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		Code:       account.Code,
		Name:       account.Name,
		Type:       string(account.Type),
		Direction:  string(account.Direction),
		ParentCode: account.ParentCode,
		Status:     string(account.Status),
		CreatedAt:  timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt:  timeToPgTimestamptz(account.UpdatedAt),
	})

	return err
}

// GetByCode retrieves an account by code.
func (r *AccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// List lists accounts matching the filter, ordered by code.
func (r *AccountRepository) List(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Type:       string(filter.Type),
		Status:     string(filter.Status),
		ParentCode: filter.ParentCode,
		Limit:      int32(filter.Limit),
		Offset:     int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// ListAll retrieves the full chart of accounts.
func (r *AccountRepository) ListAll(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.queries.ListAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// Update renames an account.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	return r.queries.UpdateAccount(ctx, generated.UpdateAccountParams{
		Code:      account.Code,
		Name:      account.Name,
		UpdatedAt: timeToPgTimestamptz(account.UpdatedAt),
	})
}

// UpdateStatus changes an account's active flag.
func (r *AccountRepository) UpdateStatus(ctx context.Context, code string, status domain.AccountStatus, updatedAt time.Time) error {
	return r.queries.UpdateAccountStatus(ctx, generated.UpdateAccountStatusParams{
		Code:      code,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		Code:       row.Code,
		Name:       row.Name,
		Type:       domain.AccountType(row.Type),
		Direction:  domain.Direction(row.Direction),
		ParentCode: row.ParentCode,
		Status:     domain.AccountStatus(row.Status),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
