package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// PostgreSQL error codes for retryable errors. Concurrent voucher
// submissions contend on the per-period number sequence row, which
// surfaces as deadlocks and serialization failures.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

// Retrier implements usecase.Retrier with exponential backoff.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewRetrier creates a retrier tuned for sequence-row contention:
// lock waits resolve in tens of milliseconds, so retries start short
// and give up well before an HTTP client would time out.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      5,
		initialInterval: 25 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		maxElapsedTime:  5 * time.Second,
	}
}

// Retry executes an operation with exponential backoff on retryable errors.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempt := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		code, retryable := retryablePgCode(err)
		if !retryable {
			return backoff.Permanent(err)
		}

		attempt++
		if attempt > r.maxRetries {
			return backoff.Permanent(err)
		}

		log.Warn().
			Err(err).
			Str("pg_code", code).
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// retryablePgCode reports whether a PostgreSQL error should trigger a
// retry, along with the SQLSTATE code for logging.
func retryablePgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrDeadlock, pgErrSerializationFailure:
			return pgErr.Code, true
		}
	}
	return "", false
}
