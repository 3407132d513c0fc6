package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/report"
)

// IncomeStatementUseCase handles income statement generation and edits.
type IncomeStatementUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	accountRepo AccountRepository
	voucherRepo VoucherRepository
	stmtRepo    IncomeStatementRepository
	engine      *report.Engine
	cache       Cache
	metrics     Metrics
}

// NewIncomeStatementUseCase creates a new IncomeStatementUseCase.
func NewIncomeStatementUseCase(
	txManager TransactionManager,
	retrier Retrier,
	accountRepo AccountRepository,
	voucherRepo VoucherRepository,
	stmtRepo IncomeStatementRepository,
	engine *report.Engine,
	cache Cache,
	metrics Metrics,
) *IncomeStatementUseCase {
	return &IncomeStatementUseCase{
		txManager:   txManager,
		retrier:     retrier,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		stmtRepo:    stmtRepo,
		engine:      engine,
		cache:       cache,
		metrics:     metrics,
	}
}

func incomeStatementCacheKey(period domain.Period) string {
	return "is:" + period.String()
}

// GenerateIncomeStatement derives the income statement for a period
// from its submitted vouchers and stores it, replacing any previous
// run. A finalized statement is never replaced.
func (uc *IncomeStatementUseCase) GenerateIncomeStatement(ctx context.Context, period domain.Period, generatedBy string) (*domain.IncomeStatement, error) {
	existing, err := uc.stmtRepo.GetByPeriod(ctx, period)
	if err != nil && !errors.Is(err, domain.ErrStatementNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	accounts, err := uc.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	vouchers, err := uc.voucherRepo.ListByPeriod(ctx, period, report.StatementStatuses)
	if err != nil {
		return nil, err
	}

	stmt, err := uc.engine.BuildIncomeStatement(period, accounts, vouchers, generatedBy)
	if err != nil {
		return nil, err
	}

	// Generation preserves the manually maintained lines of the
	// previous run: the engine cannot derive them from vouchers.
	if existing != nil {
		stmt.OtherRevenue = existing.OtherRevenue
		stmt.OtherIncome = existing.OtherIncome
		stmt.OtherExpenses = existing.OtherExpenses
		stmt.TaxExpense = existing.TaxExpense
		stmt.Recalculate()
	}

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.stmtRepo.DeleteByPeriod(ctx, tx, period); err != nil {
			return err
		}
		if err := uc.stmtRepo.Create(ctx, tx, stmt); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	uc.metrics.StatementGenerated(KindIncomeStatement)

	return stmt, nil
}

// GetIncomeStatement retrieves the stored statement for a period,
// serving from cache when possible.
func (uc *IncomeStatementUseCase) GetIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	key := incomeStatementCacheKey(period)

	if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
		var stmt domain.IncomeStatement
		if err := json.Unmarshal(data, &stmt); err == nil {
			return &stmt, nil
		}
	}

	stmt, err := uc.stmtRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stmt); err == nil {
		_ = uc.cache.Set(ctx, key, data, StatementCacheTTL)
	}

	return stmt, nil
}

// ListIncomeStatements lists stored statements, newest period first.
func (uc *IncomeStatementUseCase) ListIncomeStatements(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error) {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	return uc.stmtRepo.List(ctx, limit, offset)
}

// IncomeStatementLineItems carries the nine editable input lines.
type IncomeStatementLineItems struct {
	OperatingRevenue decimal.Decimal
	OtherRevenue     decimal.Decimal

	OperatingCost decimal.Decimal

	SellingExpenses   decimal.Decimal
	AdminExpenses     decimal.Decimal
	FinancialExpenses decimal.Decimal

	OtherIncome   decimal.Decimal
	OtherExpenses decimal.Decimal
	TaxExpense    decimal.Decimal
}

// UpdateIncomeStatement overwrites the input lines of a stored
// statement and rederives the profit totals.
func (uc *IncomeStatementUseCase) UpdateIncomeStatement(ctx context.Context, period domain.Period, items IncomeStatementLineItems) (*domain.IncomeStatement, error) {
	stmt, err := uc.stmtRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if stmt.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	stmt.OperatingRevenue = items.OperatingRevenue
	stmt.OtherRevenue = items.OtherRevenue
	stmt.OperatingCost = items.OperatingCost
	stmt.SellingExpenses = items.SellingExpenses
	stmt.AdminExpenses = items.AdminExpenses
	stmt.FinancialExpenses = items.FinancialExpenses
	stmt.OtherIncome = items.OtherIncome
	stmt.OtherExpenses = items.OtherExpenses
	stmt.TaxExpense = items.TaxExpense
	stmt.Recalculate()

	if err := uc.stmtRepo.Update(ctx, stmt); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return stmt, nil
}

// CreateIncomeStatementDirect stores caller-provided figures without
// running the derivation engine, replacing any non-final statement for
// the period. It exists for migrating historical statements.
func (uc *IncomeStatementUseCase) CreateIncomeStatementDirect(ctx context.Context, period domain.Period, items IncomeStatementLineItems, createdBy string) (*domain.IncomeStatement, error) {
	existing, err := uc.stmtRepo.GetByPeriod(ctx, period)
	if err != nil && !errors.Is(err, domain.ErrStatementNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	stmt := &domain.IncomeStatement{
		Period:            period,
		OperatingRevenue:  items.OperatingRevenue,
		OtherRevenue:      items.OtherRevenue,
		OperatingCost:     items.OperatingCost,
		SellingExpenses:   items.SellingExpenses,
		AdminExpenses:     items.AdminExpenses,
		FinancialExpenses: items.FinancialExpenses,
		OtherIncome:       items.OtherIncome,
		OtherExpenses:     items.OtherExpenses,
		TaxExpense:        items.TaxExpense,
		GeneratedBy:       createdBy,
		GeneratedAt:       time.Now().UTC(),
	}
	stmt.Recalculate()

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.stmtRepo.DeleteByPeriod(ctx, tx, period); err != nil {
			return err
		}
		if err := uc.stmtRepo.Create(ctx, tx, stmt); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return stmt, nil
}

// FinalizeIncomeStatement marks the statement final, locking out
// regeneration and edits.
func (uc *IncomeStatementUseCase) FinalizeIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	stmt, err := uc.stmtRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if stmt.IsFinal {
		return stmt, nil
	}

	stmt.IsFinal = true
	if err := uc.stmtRepo.Update(ctx, stmt); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return stmt, nil
}

func (uc *IncomeStatementUseCase) loadAccounts(ctx context.Context) (map[string]*domain.Account, error) {
	accounts, err := uc.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return byCode, nil
}

func (uc *IncomeStatementUseCase) invalidate(ctx context.Context, period domain.Period) {
	_ = uc.cache.Delete(ctx, incomeStatementCacheKey(period))
}
