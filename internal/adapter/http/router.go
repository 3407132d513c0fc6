package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/finbook/internal/adapter/http/handler"
	"github.com/iho/finbook/internal/adapter/http/middleware"
	"github.com/iho/finbook/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler         *handler.AccountHandler
	VoucherHandler         *handler.VoucherHandler
	BalanceSheetHandler    *handler.BalanceSheetHandler
	IncomeStatementHandler *handler.IncomeStatementHandler
	LedgerHandler          *handler.LedgerHandler
	PeriodHandler          *handler.PeriodHandler
	HealthHandler          *handler.HealthHandler
	IdempotencyStore       usecase.IdempotencyStore
	IdempotencyTTL         time.Duration
	RateLimiter            *middleware.RateLimiter
	Logging                *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{code}", cfg.AccountHandler.Get)
			r.Put("/{code}", cfg.AccountHandler.Update)
			r.Post("/{code}/deactivate", cfg.AccountHandler.Deactivate)
			r.Post("/{code}/activate", cfg.AccountHandler.Activate)
		})

		// Vouchers
		r.Route("/vouchers", func(r chi.Router) {
			r.Post("/", cfg.VoucherHandler.Create)
			r.Get("/", cfg.VoucherHandler.List)
			r.Get("/{number}", cfg.VoucherHandler.Get)
			r.Put("/{number}", cfg.VoucherHandler.Update)
			r.Delete("/{number}", cfg.VoucherHandler.Delete)
			r.Post("/{number}/submit", cfg.VoucherHandler.Submit)
			r.Post("/{number}/audit", cfg.VoucherHandler.Audit)
			r.Post("/{number}/post", cfg.VoucherHandler.Post)
		})

		// Balance sheets
		r.Route("/balance-sheets", func(r chi.Router) {
			r.Post("/generate", cfg.BalanceSheetHandler.Generate)
			r.Post("/{period}", cfg.BalanceSheetHandler.CreateDirect)
			r.Get("/", cfg.BalanceSheetHandler.List)
			r.Get("/{period}", cfg.BalanceSheetHandler.Get)
			r.Put("/{period}", cfg.BalanceSheetHandler.Update)
			r.Post("/{period}/finalize", cfg.BalanceSheetHandler.Finalize)
		})

		// Income statements
		r.Route("/income-statements", func(r chi.Router) {
			r.Post("/generate", cfg.IncomeStatementHandler.Generate)
			r.Post("/{period}", cfg.IncomeStatementHandler.CreateDirect)
			r.Get("/", cfg.IncomeStatementHandler.List)
			r.Get("/{period}", cfg.IncomeStatementHandler.Get)
			r.Put("/{period}", cfg.IncomeStatementHandler.Update)
			r.Post("/{period}/finalize", cfg.IncomeStatementHandler.Finalize)
		})

		// General ledger
		r.Route("/ledger", func(r chi.Router) {
			r.Post("/{period}/generate", cfg.LedgerHandler.Generate)
			r.Get("/{period}", cfg.LedgerHandler.List)
			r.Get("/{period}/accounts/{code}", cfg.LedgerHandler.GetRow)
		})

		// Report periods
		r.Route("/periods", func(r chi.Router) {
			r.Post("/", cfg.PeriodHandler.Create)
			r.Get("/", cfg.PeriodHandler.List)
			r.Get("/voucher-periods", cfg.PeriodHandler.VoucherPeriods)
			r.Get("/{code}", cfg.PeriodHandler.Get)
			r.Post("/{code}/close", cfg.PeriodHandler.Close)
			r.Post("/{code}/reopen", cfg.PeriodHandler.Reopen)
		})
	})

	return r
}
