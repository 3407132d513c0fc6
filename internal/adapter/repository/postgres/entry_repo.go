package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/infrastructure/postgres/generated"
	"github.com/iho/finbook/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateBatch inserts a voucher's entries inside a transaction.
func (r *EntryRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	queries := txQueries(tx)

	for _, entry := range entries {
		err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
			ID:            entry.ID,
			VoucherNumber: entry.VoucherNumber,
			AccountCode:   entry.AccountCode,
			Direction:     string(entry.Direction),
			Amount:        decimalToNumeric(entry.Amount),
			Description:   entry.Description,
			Customer:      entry.Customer,
			Supplier:      entry.Supplier,
			CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByVoucher retrieves all entries of a voucher.
func (r *EntryRepository) GetByVoucher(ctx context.Context, voucherNumber string) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.GetEntriesByVoucher(ctx, voucherNumber)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// ListByAccount retrieves entries posted against an account, newest
// first.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountCode string, limit, offset int) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListEntriesByAccount(ctx, generated.ListEntriesByAccountParams{
		AccountCode: accountCode,
		Limit:       int32(limit),
		Offset:      int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// DeleteByVoucher removes all entries of a voucher inside a
// transaction.
func (r *EntryRepository) DeleteByVoucher(ctx context.Context, tx usecase.Transaction, voucherNumber string) error {
	queries := txQueries(tx)

	return queries.DeleteEntriesByVoucher(ctx, voucherNumber)
}

func rowToEntry(row generated.JournalEntry) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:            row.ID,
		VoucherNumber: row.VoucherNumber,
		AccountCode:   row.AccountCode,
		Direction:     domain.Direction(row.Direction),
		Amount:        numericToDecimal(row.Amount),
		Description:   row.Description,
		Customer:      row.Customer,
		Supplier:      row.Supplier,
		CreatedAt:     row.CreatedAt.Time,
	}
}
