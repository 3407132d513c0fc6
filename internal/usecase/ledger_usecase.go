package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/report"
)

// LedgerUseCase handles general ledger generation and queries.
type LedgerUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	accountRepo AccountRepository
	voucherRepo VoucherRepository
	ledgerRepo  GeneralLedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	retrier Retrier,
	accountRepo AccountRepository,
	voucherRepo VoucherRepository,
	ledgerRepo GeneralLedgerRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		retrier:     retrier,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// GenerateGeneralLedger rebuilds the per-account ledger rows for a
// period from its audited and posted vouchers, replacing any previous
// run. The opening balance of a new row seeds from the prior period's
// closing balance when one exists, otherwise zero on the account's
// normal side.
func (uc *LedgerUseCase) GenerateGeneralLedger(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error) {
	vouchers, err := uc.voucherRepo.ListByPeriod(ctx, period, report.LedgerStatuses)
	if err != nil {
		return nil, err
	}
	selected := report.SelectVouchers(vouchers, period, report.LedgerStatuses)
	if len(selected) == 0 {
		return nil, domain.ErrNoVouchersForPeriod
	}

	now := time.Now().UTC()

	// Per-account movement totals for the period.
	moves := make(map[string]*domain.GeneralLedgerRow)
	for _, v := range selected {
		for _, entry := range v.Entries {
			row, ok := moves[entry.AccountCode]
			if !ok {
				row = &domain.GeneralLedgerRow{
					Period:      period,
					AccountCode: entry.AccountCode,
					UpdatedAt:   now,
				}
				moves[entry.AccountCode] = row
			}
			if entry.Direction == domain.DirectionDebit {
				row.DebitTotal = row.DebitTotal.Add(entry.Amount)
			} else {
				row.CreditTotal = row.CreditTotal.Add(entry.Amount)
			}
		}
	}

	rows := make([]*domain.GeneralLedgerRow, 0, len(moves))
	for code, row := range moves {
		account, err := uc.accountRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		if err := uc.seedOpening(ctx, row, account); err != nil {
			return nil, err
		}

		row.RollForward()
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountCode < rows[j].AccountCode })

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.ledgerRepo.DeleteByPeriod(ctx, tx, period); err != nil {
			return err
		}
		if err := uc.ledgerRepo.CreateBatch(ctx, tx, rows); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// seedOpening fills the row's opening balance from the previous
// period's closing balance, falling back to zero on the account's
// normal side.
func (uc *LedgerUseCase) seedOpening(ctx context.Context, row *domain.GeneralLedgerRow, account *domain.Account) error {
	prev, err := uc.ledgerRepo.GetByPeriodAndAccount(ctx, row.Period.Previous(), account.Code)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerRowNotFound) {
			row.OpeningDirection = account.Direction
			return nil
		}
		return err
	}

	row.OpeningBalance = prev.EndingBalance
	row.OpeningDirection = prev.EndingDirection
	return nil
}

// ListGeneralLedger returns the stored ledger rows for a period.
func (uc *LedgerUseCase) ListGeneralLedger(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error) {
	return uc.ledgerRepo.ListByPeriod(ctx, period)
}

// GetLedgerRow returns one account's stored ledger row for a period.
func (uc *LedgerUseCase) GetLedgerRow(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error) {
	return uc.ledgerRepo.GetByPeriodAndAccount(ctx, period, accountCode)
}
