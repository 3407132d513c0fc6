package usecase

import (
	"context"
	"time"

	"github.com/iho/finbook/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error)
	ListAll(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	UpdateStatus(ctx context.Context, code string, status domain.AccountStatus, updatedAt time.Time) error
}

// VoucherRepository defines data access for vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByNumber(ctx context.Context, number string) (*domain.Voucher, error)
	// NextNumber allocates the next voucher number for a period
	// ("V" + YYYYMM + zero-padded sequence). Safe under concurrent use
	// inside a transaction.
	NextNumber(ctx context.Context, tx Transaction, period domain.Period) (string, error)
	List(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error)
	// ListByPeriod returns vouchers of a period with their entries
	// loaded, restricted to the given statuses.
	ListByPeriod(ctx context.Context, period domain.Period, statuses []domain.VoucherStatus) ([]*domain.Voucher, error)
	ListPeriods(ctx context.Context, statuses []domain.VoucherStatus) ([]domain.Period, error)
	Update(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	UpdateStatus(ctx context.Context, number string, status domain.VoucherStatus, auditedBy string, auditedAt *time.Time, updatedAt time.Time) error
	Delete(ctx context.Context, tx Transaction, number string) error
}

// EntryRepository defines data access for journal entries.
type EntryRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, entries []*domain.JournalEntry) error
	GetByVoucher(ctx context.Context, voucherNumber string) ([]*domain.JournalEntry, error)
	ListByAccount(ctx context.Context, accountCode string, limit, offset int) ([]*domain.JournalEntry, error)
	DeleteByVoucher(ctx context.Context, tx Transaction, voucherNumber string) error
}

// BalanceSheetRepository defines data access for balance sheets.
type BalanceSheetRepository interface {
	Create(ctx context.Context, tx Transaction, sheet *domain.BalanceSheet) error
	GetByPeriod(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
	List(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error)
	Update(ctx context.Context, sheet *domain.BalanceSheet) error
	DeleteByPeriod(ctx context.Context, tx Transaction, period domain.Period) error
}

// IncomeStatementRepository defines data access for income statements.
type IncomeStatementRepository interface {
	Create(ctx context.Context, tx Transaction, stmt *domain.IncomeStatement) error
	GetByPeriod(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
	List(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error)
	Update(ctx context.Context, stmt *domain.IncomeStatement) error
	DeleteByPeriod(ctx context.Context, tx Transaction, period domain.Period) error
}

// GeneralLedgerRepository defines data access for general ledger rows.
type GeneralLedgerRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, rows []*domain.GeneralLedgerRow) error
	ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error)
	GetByPeriodAndAccount(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error)
	DeleteByPeriod(ctx context.Context, tx Transaction, period domain.Period) error
}

// ReportPeriodRepository defines data access for report periods.
type ReportPeriodRepository interface {
	Create(ctx context.Context, period *domain.ReportPeriod) error
	GetByCode(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error)
	Update(ctx context.Context, period *domain.ReportPeriod) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation when it fails with a transient error
// such as a deadlock or serialization failure.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Metrics records business-level counters. Implementations must be
// safe for concurrent use.
type Metrics interface {
	VoucherCreated()
	VoucherStatusChanged(status domain.VoucherStatus)
	StatementGenerated(kind string)
	ImbalanceDetected()
}
