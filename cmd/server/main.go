package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/finbook/internal/adapter/http"
	"github.com/iho/finbook/internal/adapter/http/handler"
	"github.com/iho/finbook/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/finbook/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/finbook/internal/adapter/repository/redis"
	"github.com/iho/finbook/internal/infrastructure/config"
	"github.com/iho/finbook/internal/infrastructure/logger"
	"github.com/iho/finbook/internal/infrastructure/metrics"
	"github.com/iho/finbook/internal/infrastructure/postgres"
	"github.com/iho/finbook/internal/infrastructure/redis"
	"github.com/iho/finbook/internal/report"
	"github.com/iho/finbook/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories and infrastructure
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	accountRepo := postgresRepo.NewAccountRepository(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	sheetRepo := postgresRepo.NewBalanceSheetRepository(pool)
	stmtRepo := postgresRepo.NewIncomeStatementRepository(pool)
	ledgerRepo := postgresRepo.NewGeneralLedgerRepository(pool)
	periodRepo := postgresRepo.NewReportPeriodRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	businessMetrics := metrics.New()

	engine := report.NewEngine()

	// Use cases
	accountUC := usecase.NewAccountUseCase(accountRepo)
	voucherUC := usecase.NewVoucherUseCase(txManager, accountRepo, voucherRepo, entryRepo, idGen, businessMetrics)
	sheetUC := usecase.NewBalanceSheetUseCase(txManager, retrier, accountRepo, voucherRepo, sheetRepo, engine, cache, businessMetrics)
	stmtUC := usecase.NewIncomeStatementUseCase(txManager, retrier, accountRepo, voucherRepo, stmtRepo, engine, cache, businessMetrics)
	ledgerUC := usecase.NewLedgerUseCase(txManager, retrier, accountRepo, voucherRepo, ledgerRepo)
	periodUC := usecase.NewPeriodUseCase(periodRepo, voucherRepo)

	// Router
	routerCfg := httpAdapter.RouterConfig{
		AccountHandler:         handler.NewAccountHandler(accountUC),
		VoucherHandler:         handler.NewVoucherHandler(voucherUC),
		BalanceSheetHandler:    handler.NewBalanceSheetHandler(sheetUC),
		IncomeStatementHandler: handler.NewIncomeStatementHandler(stmtUC),
		LedgerHandler:          handler.NewLedgerHandler(ledgerUC),
		PeriodHandler:          handler.NewPeriodHandler(periodUC),
		HealthHandler:          handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:       idempotencyStore,
		IdempotencyTTL:         cfg.IdempotencyTTL,
		Logging:                middleware.NewLoggingMiddleware(appLogger),
	}
	if cfg.RateLimitRPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(routerCfg)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
