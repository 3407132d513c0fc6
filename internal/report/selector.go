package report

import (
	"sort"

	"github.com/iho/finbook/internal/domain"
)

// Voucher status sets feeding each report family. Statements are built
// from submitted vouchers so a period can be previewed before audit;
// the general ledger only ever reflects audited or posted vouchers.
var (
	StatementStatuses = []domain.VoucherStatus{domain.VoucherStatusSubmitted}
	LedgerStatuses    = []domain.VoucherStatus{domain.VoucherStatusAudited, domain.VoucherStatusPosted}
)

// SelectVouchers returns the vouchers belonging to a period with one of
// the given statuses. A voucher's period comes from its number when the
// number embeds a valid year-month, falling back to the voucher date.
func SelectVouchers(vouchers []*domain.Voucher, period domain.Period, statuses []domain.VoucherStatus) []*domain.Voucher {
	var out []*domain.Voucher
	for _, v := range vouchers {
		if !v.StatusIn(statuses...) {
			continue
		}
		if v.Period() != period {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Periods returns the distinct periods covered by vouchers with one of
// the given statuses, newest first.
func Periods(vouchers []*domain.Voucher, statuses []domain.VoucherStatus) []domain.Period {
	seen := make(map[domain.Period]struct{})
	var out []domain.Period
	for _, v := range vouchers {
		if !v.StatusIn(statuses...) {
			continue
		}
		p := v.Period()
		if p.IsZero() {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].Before(out[i]) })
	return out
}
