package domain

import "time"

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeCost      AccountType = "COST"
	AccountTypeProfit    AccountType = "PROFIT"
)

// Valid reports whether the type is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeCost, AccountTypeProfit:
		return true
	}
	return false
}

// Direction is the side of a double-entry posting.
type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Valid reports whether the direction is DEBIT or CREDIT.
func (d Direction) Valid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

// Opposite returns the other side.
func (d Direction) Opposite() Direction {
	if d == DirectionDebit {
		return DirectionCredit
	}
	return DirectionDebit
}

// AccountStatus marks whether an account accepts new postings.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account is one entry in the chart of accounts. Code, Type and
// Direction are fixed at creation and drive every sign computation;
// the reporting core never mutates them.
type Account struct {
	Code       string
	Name       string
	Type       AccountType
	Direction  Direction
	ParentCode string
	Status     AccountStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive reports whether the account accepts new postings.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Validate checks the fields that are fixed at creation time.
func (a *Account) Validate() error {
	if a.Code == "" || a.Name == "" {
		return ErrInvalidAccount
	}
	if !a.Type.Valid() {
		return ErrInvalidAccountType
	}
	if !a.Direction.Valid() {
		return ErrInvalidDirection
	}
	return nil
}
