package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/infrastructure/postgres/generated"
	"github.com/iho/finbook/internal/usecase"
)

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new voucher inside a transaction.
func (r *VoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	queries := txQueries(tx)

	_, err := queries.CreateVoucher(ctx, generated.CreateVoucherParams{
		Number:      voucher.Number,
		Date:        timeToPgTimestamptz(voucher.Date),
		Period:      voucher.Period().String(),
		Description: voucher.Description,
		TotalDebit:  decimalToNumeric(voucher.TotalDebit),
		TotalCredit: decimalToNumeric(voucher.TotalCredit),
		Status:      string(voucher.Status),
		CreatedBy:   voucher.CreatedBy,
		AuditedBy:   voucher.AuditedBy,
		AuditedAt:   timePtrToPgTimestamptz(voucher.AuditedAt),
		CreatedAt:   timeToPgTimestamptz(voucher.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(voucher.UpdatedAt),
	})

	return err
}

// GetByNumber retrieves a voucher by its number, without entries.
func (r *VoucherRepository) GetByNumber(ctx context.Context, number string) (*domain.Voucher, error) {
	row, err := r.queries.GetVoucherByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	return rowToVoucher(row), nil
}

// NextNumber allocates the next voucher number for a period. The
// per-period counter row serializes concurrent allocations.
func (r *VoucherRepository) NextNumber(ctx context.Context, tx usecase.Transaction, period domain.Period) (string, error) {
	queries := txQueries(tx)

	seq, err := queries.NextVoucherSequence(ctx, period.String())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s%04d", domain.VoucherNumberPrefix, period.String(), seq), nil
}

// List lists vouchers matching the filter, ordered by number.
func (r *VoucherRepository) List(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error) {
	period := ""
	if !filter.Period.IsZero() {
		period = filter.Period.String()
	}

	rows, err := r.queries.ListVouchers(ctx, generated.ListVouchersParams{
		Status:    string(filter.Status),
		Period:    period,
		CreatedBy: filter.CreatedBy,
		Limit:     int32(filter.Limit),
		Offset:    int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	vouchers := make([]*domain.Voucher, 0, len(rows))
	for _, row := range rows {
		vouchers = append(vouchers, rowToVoucher(row))
	}

	return vouchers, nil
}

// ListByPeriod returns the vouchers of a period in the given statuses,
// with their entries loaded.
func (r *VoucherRepository) ListByPeriod(ctx context.Context, period domain.Period, statuses []domain.VoucherStatus) ([]*domain.Voucher, error) {
	rows, err := r.queries.ListVouchersByPeriodAndStatuses(ctx, generated.ListVouchersByPeriodAndStatusesParams{
		Period:   period.String(),
		Statuses: statusStrings(statuses),
	})
	if err != nil {
		return nil, err
	}

	vouchers := make([]*domain.Voucher, 0, len(rows))
	for _, row := range rows {
		voucher := rowToVoucher(row)

		entryRows, err := r.queries.GetEntriesByVoucher(ctx, voucher.Number)
		if err != nil {
			return nil, err
		}
		voucher.Entries = make([]*domain.JournalEntry, 0, len(entryRows))
		for _, er := range entryRows {
			voucher.Entries = append(voucher.Entries, rowToEntry(er))
		}

		vouchers = append(vouchers, voucher)
	}

	return vouchers, nil
}

// ListPeriods returns the distinct periods that have vouchers in the
// given statuses, newest first.
func (r *VoucherRepository) ListPeriods(ctx context.Context, statuses []domain.VoucherStatus) ([]domain.Period, error) {
	tokens, err := r.queries.ListVoucherPeriods(ctx, statusStrings(statuses))
	if err != nil {
		return nil, err
	}

	periods := make([]domain.Period, 0, len(tokens))
	for _, token := range tokens {
		period, err := domain.ParsePeriod(token)
		if err != nil {
			continue
		}
		periods = append(periods, period)
	}

	return periods, nil
}

// Update rewrites a voucher's header fields inside a transaction.
func (r *VoucherRepository) Update(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	queries := txQueries(tx)

	return queries.UpdateVoucher(ctx, generated.UpdateVoucherParams{
		Number:      voucher.Number,
		Date:        timeToPgTimestamptz(voucher.Date),
		Description: voucher.Description,
		TotalDebit:  decimalToNumeric(voucher.TotalDebit),
		TotalCredit: decimalToNumeric(voucher.TotalCredit),
		UpdatedAt:   timeToPgTimestamptz(voucher.UpdatedAt),
	})
}

// UpdateStatus moves a voucher along its lifecycle.
func (r *VoucherRepository) UpdateStatus(ctx context.Context, number string, status domain.VoucherStatus, auditedBy string, auditedAt *time.Time, updatedAt time.Time) error {
	return r.queries.UpdateVoucherStatus(ctx, generated.UpdateVoucherStatusParams{
		Number:    number,
		Status:    string(status),
		AuditedBy: auditedBy,
		AuditedAt: timePtrToPgTimestamptz(auditedAt),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// Delete removes a voucher inside a transaction.
func (r *VoucherRepository) Delete(ctx context.Context, tx usecase.Transaction, number string) error {
	queries := txQueries(tx)

	return queries.DeleteVoucher(ctx, number)
}

func statusStrings(statuses []domain.VoucherStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func rowToVoucher(row generated.Voucher) *domain.Voucher {
	return &domain.Voucher{
		Number:      row.Number,
		Date:        row.Date.Time,
		Description: row.Description,
		TotalDebit:  numericToDecimal(row.TotalDebit),
		TotalCredit: numericToDecimal(row.TotalCredit),
		Status:      domain.VoucherStatus(row.Status),
		CreatedBy:   row.CreatedBy,
		AuditedBy:   row.AuditedBy,
		AuditedAt:   pgTimestamptzToTimePtr(row.AuditedAt),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
