package usecase

import (
	"context"
	"time"

	"github.com/iho/finbook/internal/domain"
)

// AccountUseCase handles chart-of-accounts business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Code       string
	Name       string
	Type       domain.AccountType
	Direction  domain.Direction
	ParentCode string
}

// CreateAccount creates a new account in the chart of accounts.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	now := time.Now().UTC()

	account := &domain.Account{
		Code:       input.Code,
		Name:       input.Name,
		Type:       input.Type,
		Direction:  input.Direction,
		ParentCode: input.ParentCode,
		Status:     domain.AccountStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if input.ParentCode != "" {
		if _, err := uc.accountRepo.GetByCode(ctx, input.ParentCode); err != nil {
			return nil, err
		}
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by code.
func (uc *AccountUseCase) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	return uc.accountRepo.GetByCode(ctx, code)
}

// ListAccounts lists accounts with optional type and status filters.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	return uc.accountRepo.List(ctx, filter)
}

// UpdateAccountInput represents input for renaming an account. Code,
// type and direction are fixed at creation.
type UpdateAccountInput struct {
	Code string
	Name string
}

// UpdateAccount renames an account.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domain.ErrInvalidAccount
	}

	account.Name = input.Name
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeactivateAccount marks an account inactive. Inactive accounts keep
// their history but reject new journal entries.
func (uc *AccountUseCase) DeactivateAccount(ctx context.Context, code string) error {
	account, err := uc.accountRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if !account.IsActive() {
		return nil
	}
	return uc.accountRepo.UpdateStatus(ctx, code, domain.AccountStatusInactive, time.Now().UTC())
}

// ActivateAccount re-enables an inactive account.
func (uc *AccountUseCase) ActivateAccount(ctx context.Context, code string) error {
	account, err := uc.accountRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if account.IsActive() {
		return nil
	}
	return uc.accountRepo.UpdateStatus(ctx, code, domain.AccountStatusActive, time.Now().UTC())
}
