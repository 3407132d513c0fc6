package usecase

import (
	"time"

	"github.com/iho/finbook/internal/domain"
)

const (
	// DefaultQueryLimit caps listings when the caller passes none.
	DefaultQueryLimit = 20

	// MaxQueryLimit is the hard ceiling on a single listing page.
	MaxQueryLimit = 100

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// StatementCacheTTL is how long generated statements stay cached.
	// Generation and edits invalidate eagerly; the TTL is a backstop.
	StatementCacheTTL = 10 * time.Minute
)

// voucherTransitions is the allowed forward-only status machine:
// DRAFT -> SUBMITTED -> AUDITED -> POSTED.
var voucherTransitions = map[domain.VoucherStatus]domain.VoucherStatus{
	domain.VoucherStatusDraft:     domain.VoucherStatusSubmitted,
	domain.VoucherStatusSubmitted: domain.VoucherStatusAudited,
	domain.VoucherStatusAudited:   domain.VoucherStatusPosted,
}

// CanTransition reports whether a voucher may move from one status to
// the next. Only single forward steps are allowed; there is no path
// back to DRAFT.
func CanTransition(from, to domain.VoucherStatus) bool {
	next, ok := voucherTransitions[from]
	return ok && next == to
}
