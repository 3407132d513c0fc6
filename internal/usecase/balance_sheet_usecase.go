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

// StatementGeneratedKind labels for metrics.
const (
	KindBalanceSheet    = "balance_sheet"
	KindIncomeStatement = "income_statement"
)

// BalanceSheetUseCase handles balance sheet generation and edits.
type BalanceSheetUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	accountRepo AccountRepository
	voucherRepo VoucherRepository
	sheetRepo   BalanceSheetRepository
	engine      *report.Engine
	cache       Cache
	metrics     Metrics
}

// NewBalanceSheetUseCase creates a new BalanceSheetUseCase.
func NewBalanceSheetUseCase(
	txManager TransactionManager,
	retrier Retrier,
	accountRepo AccountRepository,
	voucherRepo VoucherRepository,
	sheetRepo BalanceSheetRepository,
	engine *report.Engine,
	cache Cache,
	metrics Metrics,
) *BalanceSheetUseCase {
	return &BalanceSheetUseCase{
		txManager:   txManager,
		retrier:     retrier,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		sheetRepo:   sheetRepo,
		engine:      engine,
		cache:       cache,
		metrics:     metrics,
	}
}

func balanceSheetCacheKey(period domain.Period) string {
	return "bs:" + period.String()
}

// GenerateBalanceSheet derives the balance sheet for a period from its
// submitted vouchers and stores it, replacing any previous run. A
// finalized sheet is never replaced.
func (uc *BalanceSheetUseCase) GenerateBalanceSheet(ctx context.Context, period domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
	// 1. A finalized sheet blocks regeneration.
	existing, err := uc.sheetRepo.GetByPeriod(ctx, period)
	if err != nil && !errors.Is(err, domain.ErrStatementNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	// 2. Load the inputs and derive in memory.
	accounts, err := uc.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	vouchers, err := uc.voucherRepo.ListByPeriod(ctx, period, report.StatementStatuses)
	if err != nil {
		return nil, err
	}

	sheet, err := uc.engine.BuildBalanceSheet(period, accounts, vouchers, generatedBy)
	if err != nil {
		return nil, err
	}

	// 3. Replace the stored sheet atomically, retrying on transient
	// conflicts with a concurrent generation run.
	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.sheetRepo.DeleteByPeriod(ctx, tx, period); err != nil {
			return err
		}
		if err := uc.sheetRepo.Create(ctx, tx, sheet); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	uc.metrics.StatementGenerated(KindBalanceSheet)
	if !sheet.IsBalanced {
		uc.metrics.ImbalanceDetected()
	}

	return sheet, nil
}

// GetBalanceSheet retrieves the stored sheet for a period, serving from
// cache when possible.
func (uc *BalanceSheetUseCase) GetBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	key := balanceSheetCacheKey(period)

	if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
		var sheet domain.BalanceSheet
		if err := json.Unmarshal(data, &sheet); err == nil {
			return &sheet, nil
		}
	}

	sheet, err := uc.sheetRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sheet); err == nil {
		_ = uc.cache.Set(ctx, key, data, StatementCacheTTL)
	}

	return sheet, nil
}

// ListBalanceSheets lists stored sheets, newest period first.
func (uc *BalanceSheetUseCase) ListBalanceSheets(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error) {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	return uc.sheetRepo.List(ctx, limit, offset)
}

// BalanceSheetLineItems carries the nine editable line items.
type BalanceSheetLineItems struct {
	CurrentAssets    decimal.Decimal
	FixedAssets      decimal.Decimal
	IntangibleAssets decimal.Decimal
	OtherAssets      decimal.Decimal

	CurrentLiabilities  decimal.Decimal
	LongTermLiabilities decimal.Decimal

	PaidInCapital    decimal.Decimal
	RetainedEarnings decimal.Decimal
	CurrentProfit    decimal.Decimal
}

// UpdateBalanceSheet overwrites the line items of a stored sheet and
// recomputes its totals. Manual edits are taken at face value: totals
// and the balance flag are recomputed, but no auto-correction runs.
func (uc *BalanceSheetUseCase) UpdateBalanceSheet(ctx context.Context, period domain.Period, items BalanceSheetLineItems) (*domain.BalanceSheet, error) {
	sheet, err := uc.sheetRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if sheet.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	sheet.CurrentAssets = items.CurrentAssets
	sheet.FixedAssets = items.FixedAssets
	sheet.IntangibleAssets = items.IntangibleAssets
	sheet.OtherAssets = items.OtherAssets
	sheet.CurrentLiabilities = items.CurrentLiabilities
	sheet.LongTermLiabilities = items.LongTermLiabilities
	sheet.PaidInCapital = items.PaidInCapital
	sheet.RetainedEarnings = items.RetainedEarnings
	sheet.CurrentProfit = items.CurrentProfit
	sheet.Recalculate()

	if err := uc.sheetRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return sheet, nil
}

// CreateBalanceSheetDirect stores caller-provided figures without
// running the derivation engine, replacing any non-final sheet for the
// period. It exists for migrating historical statements.
func (uc *BalanceSheetUseCase) CreateBalanceSheetDirect(ctx context.Context, period domain.Period, items BalanceSheetLineItems, createdBy string) (*domain.BalanceSheet, error) {
	existing, err := uc.sheetRepo.GetByPeriod(ctx, period)
	if err != nil && !errors.Is(err, domain.ErrStatementNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsFinal {
		return nil, domain.ErrStatementFinal
	}

	sheet := &domain.BalanceSheet{
		Period:              period,
		CurrentAssets:       items.CurrentAssets,
		FixedAssets:         items.FixedAssets,
		IntangibleAssets:    items.IntangibleAssets,
		OtherAssets:         items.OtherAssets,
		CurrentLiabilities:  items.CurrentLiabilities,
		LongTermLiabilities: items.LongTermLiabilities,
		PaidInCapital:       items.PaidInCapital,
		RetainedEarnings:    items.RetainedEarnings,
		CurrentProfit:       items.CurrentProfit,
		GeneratedBy:         createdBy,
		GeneratedAt:         time.Now().UTC(),
	}
	sheet.Recalculate()

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.sheetRepo.DeleteByPeriod(ctx, tx, period); err != nil {
			return err
		}
		if err := uc.sheetRepo.Create(ctx, tx, sheet); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return sheet, nil
}

// FinalizeBalanceSheet marks the sheet final, locking out regeneration
// and edits. An unbalanced sheet cannot be finalized.
func (uc *BalanceSheetUseCase) FinalizeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	sheet, err := uc.sheetRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if sheet.IsFinal {
		return sheet, nil
	}
	if !sheet.IsBalanced {
		return nil, domain.ErrStatementNotBalanced
	}

	sheet.IsFinal = true
	if err := uc.sheetRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, period)
	return sheet, nil
}

func (uc *BalanceSheetUseCase) loadAccounts(ctx context.Context) (map[string]*domain.Account, error) {
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

func (uc *BalanceSheetUseCase) invalidate(ctx context.Context, period domain.Period) {
	_ = uc.cache.Delete(ctx, balanceSheetCacheKey(period))
}
