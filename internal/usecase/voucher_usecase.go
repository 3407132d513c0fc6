package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbook/internal/domain"
)

// VoucherUseCase handles voucher business logic.
type VoucherUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	voucherRepo VoucherRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	metrics     Metrics
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	voucherRepo VoucherRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	metrics Metrics,
) *VoucherUseCase {
	return &VoucherUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// EntryInput is one journal entry line of a voucher.
type EntryInput struct {
	AccountCode string
	Direction   domain.Direction
	Amount      decimal.Decimal
	Description string
	Customer    string
	Supplier    string
}

// CreateVoucherInput represents input for creating a voucher.
type CreateVoucherInput struct {
	Date        time.Time
	Description string
	CreatedBy   string
	Entries     []EntryInput
}

// CreateVoucher creates a DRAFT voucher with a generated number.
func (uc *VoucherUseCase) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.Voucher, error) {
	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	voucher := &domain.Voucher{
		Date:        date,
		Description: input.Description,
		Status:      domain.VoucherStatusDraft,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, ei := range input.Entries {
		voucher.Entries = append(voucher.Entries, &domain.JournalEntry{
			AccountCode: ei.AccountCode,
			Direction:   ei.Direction,
			Amount:      ei.Amount,
			Description: ei.Description,
			Customer:    ei.Customer,
			Supplier:    ei.Supplier,
			CreatedAt:   now,
		})
	}

	// 1. Validate shape and balance before touching the database.
	if err := voucher.Validate(); err != nil {
		return nil, err
	}

	// 2. Every referenced account must exist and accept postings.
	if err := uc.checkAccounts(ctx, voucher.Entries); err != nil {
		return nil, err
	}

	// 3. Allocate the number and persist atomically.
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	number, err := uc.voucherRepo.NextNumber(ctx, tx, domain.PeriodFromDate(date))
	if err != nil {
		return nil, err
	}
	voucher.Number = number
	for _, entry := range voucher.Entries {
		entry.ID = uc.idGen.Generate()
		entry.VoucherNumber = number
	}

	if err := uc.voucherRepo.Create(ctx, tx, voucher); err != nil {
		return nil, err
	}
	if err := uc.entryRepo.CreateBatch(ctx, tx, voucher.Entries); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.metrics.VoucherCreated()
	return voucher, nil
}

// GetVoucher retrieves a voucher with its entries.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, number string) (*domain.Voucher, error) {
	voucher, err := uc.voucherRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.GetByVoucher(ctx, number)
	if err != nil {
		return nil, err
	}
	voucher.Entries = entries

	return voucher, nil
}

// ListVouchers lists vouchers with optional status and period filters.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	return uc.voucherRepo.List(ctx, filter)
}

// UpdateVoucherInput represents input for rewriting a DRAFT voucher.
// Entries replace the existing set wholesale.
type UpdateVoucherInput struct {
	Number      string
	Date        time.Time
	Description string
	Entries     []EntryInput
}

// UpdateVoucher rewrites a DRAFT voucher in place. The number is kept;
// entries are replaced as a set.
func (uc *VoucherUseCase) UpdateVoucher(ctx context.Context, input UpdateVoucherInput) (*domain.Voucher, error) {
	voucher, err := uc.voucherRepo.GetByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherStatusDraft {
		return nil, domain.ErrVoucherNotDraft
	}

	now := time.Now().UTC()

	if !input.Date.IsZero() {
		voucher.Date = input.Date
	}
	voucher.Description = input.Description
	voucher.UpdatedAt = now
	voucher.Entries = nil
	for _, ei := range input.Entries {
		voucher.Entries = append(voucher.Entries, &domain.JournalEntry{
			ID:            uc.idGen.Generate(),
			VoucherNumber: voucher.Number,
			AccountCode:   ei.AccountCode,
			Direction:     ei.Direction,
			Amount:        ei.Amount,
			Description:   ei.Description,
			Customer:      ei.Customer,
			Supplier:      ei.Supplier,
			CreatedAt:     now,
		})
	}

	if err := voucher.Validate(); err != nil {
		return nil, err
	}
	if err := uc.checkAccounts(ctx, voucher.Entries); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.DeleteByVoucher(ctx, tx, voucher.Number); err != nil {
		return nil, err
	}
	if err := uc.entryRepo.CreateBatch(ctx, tx, voucher.Entries); err != nil {
		return nil, err
	}
	if err := uc.voucherRepo.Update(ctx, tx, voucher); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return voucher, nil
}

// SubmitVoucher moves a DRAFT voucher to SUBMITTED, making it visible
// to statement generation.
func (uc *VoucherUseCase) SubmitVoucher(ctx context.Context, number string) (*domain.Voucher, error) {
	return uc.transition(ctx, number, domain.VoucherStatusSubmitted, "")
}

// AuditVoucher moves a SUBMITTED voucher to AUDITED and records the
// auditor.
func (uc *VoucherUseCase) AuditVoucher(ctx context.Context, number, auditedBy string) (*domain.Voucher, error) {
	return uc.transition(ctx, number, domain.VoucherStatusAudited, auditedBy)
}

// PostVoucher moves an AUDITED voucher to POSTED.
func (uc *VoucherUseCase) PostVoucher(ctx context.Context, number string) (*domain.Voucher, error) {
	return uc.transition(ctx, number, domain.VoucherStatusPosted, "")
}

// DeleteVoucher removes a DRAFT voucher and its entries. Vouchers that
// left DRAFT are permanent.
func (uc *VoucherUseCase) DeleteVoucher(ctx context.Context, number string) error {
	voucher, err := uc.voucherRepo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if voucher.Status != domain.VoucherStatusDraft {
		return domain.ErrVoucherNotDraft
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.DeleteByVoucher(ctx, tx, number); err != nil {
		return err
	}
	if err := uc.voucherRepo.Delete(ctx, tx, number); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *VoucherUseCase) transition(ctx context.Context, number string, to domain.VoucherStatus, auditedBy string) (*domain.Voucher, error) {
	voucher, err := uc.voucherRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if !CanTransition(voucher.Status, to) {
		return nil, domain.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	voucher.Status = to
	voucher.UpdatedAt = now

	var auditedAt *time.Time
	if to == domain.VoucherStatusAudited {
		voucher.AuditedBy = auditedBy
		voucher.AuditedAt = &now
		auditedAt = &now
	}

	if err := uc.voucherRepo.UpdateStatus(ctx, number, to, auditedBy, auditedAt, now); err != nil {
		return nil, err
	}

	uc.metrics.VoucherStatusChanged(to)
	return voucher, nil
}

func (uc *VoucherUseCase) checkAccounts(ctx context.Context, entries []*domain.JournalEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.AccountCode]; ok {
			continue
		}
		seen[entry.AccountCode] = struct{}{}

		account, err := uc.accountRepo.GetByCode(ctx, entry.AccountCode)
		if err != nil {
			return err
		}
		if !account.IsActive() {
			return domain.ErrAccountInactive
		}
	}
	return nil
}
