package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wallet-settlement/internal/auth"
	"wallet-settlement/internal/config"
	"wallet-settlement/internal/database"
	"wallet-settlement/internal/handler"
	"wallet-settlement/internal/logger"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/provider"
	"wallet-settlement/internal/ratelimit"
	"wallet-settlement/internal/repository/postgres"
	"wallet-settlement/internal/service"
	"wallet-settlement/internal/worker"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "wallet-settlement/docs"
)

// @title Wallet Settlement API
// @version 1.0
// @description Deposit settlement and withdrawal requests against a mobile-money provider
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(true, "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}
	if cfg.Webhook.Secret == "" {
		log.Warn().Msg("KKIAPAY_WEBHOOK_SECRET is not set, webhook events will be refused")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	// Shared rate limiter, skipped when redis is not configured
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		rdb, err := ratelimit.NewClient(dbCtx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		if rdb != nil {
			defer rdb.Close()
			limiter = ratelimit.NewRedisLimiter(rdb, "wallet:ratelimit", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		} else {
			log.Warn().Msg("REDIS_ADDR is not set, rate limiting disabled")
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)

	// Transaction manage used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Provider
	kkiapay := provider.NewClient(cfg.Provider, m, log)

	// Services
	depositService := service.NewDepositService(userRepo, ledgerRepo, txManager, kkiapay, service.DepositConfig{
		Currency:              cfg.Provider.Currency,
		RequireReferenceMatch: cfg.Provider.RequireReferenceMatch,
		PublicKey:             cfg.Provider.PublicKey,
		Sandbox:               cfg.Provider.Sandbox,
	}, m, log)
	withdrawalService := service.NewWithdrawalService(userRepo, ledgerRepo, txManager, cfg.Provider.Currency, m, log)
	webhookService := service.NewWebhookService(cfg.Webhook.Secret, depositService, ledgerRepo, kkiapay, m, log)
	accountService := service.NewAccountService(userRepo, ledgerRepo)
	auditService := service.NewAuditService(ledgerRepo, cfg.Worker.PendingBalanceAfter, cfg.Worker.AuditBatchSize, m, log)

	// Root context to be caceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker surfacing entries stuck mid-settlement
	auditWorker := worker.NewAuditWorker(auditService, cfg.Worker.AuditInterval, log)
	auditWorker.Start(ctx)
	defer auditWorker.Stop()

	// http handler
	h := handler.NewHandler(handler.Dependencies{
		Deposits:               depositService,
		Withdrawals:            withdrawalService,
		Webhooks:               webhookService,
		Accounts:               accountService,
		JWT:                    auth.NewJWTVerifier(cfg.Auth.JWTSecret),
		Limiter:                limiter,
		Metrics:                m,
		Gatherer:               registry,
		WebhookSignatureHeader: cfg.Webhook.SignatureHeader,
		WebhookMaxBodyBytes:    cfg.Webhook.MaxBodyBytes,
	}, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Bool("sandbox", cfg.Provider.Sandbox).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
