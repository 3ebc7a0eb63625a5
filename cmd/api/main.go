package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/adapter/gateway"
	httpHandler "cybersource-gateway/internal/adapter/http/handler"
	"cybersource-gateway/internal/adapter/metrics"
	pgStorage "cybersource-gateway/internal/adapter/storage/postgres"
	redisStorage "cybersource-gateway/internal/adapter/storage/redis"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/internal/service"
	"cybersource-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CSG_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("sandbox", cfg.Gateway.Sandbox).
		Msg("Starting CyberSource gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	engineMetrics := metrics.New(registry)

	// Initialize repositories
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	storeRepo := pgStorage.NewStoreRepo(pool)
	contactRepo := pgStorage.NewContactRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	notificationStore := redisStorage.NewNotificationStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Gateway client
	gw, err := gateway.NewClient(cfg.Gateway, engineMetrics, logger.Component(log, "gateway"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize gateway client")
	}

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	verifier := service.NewJWKVerifier(gw, log)
	issuer := service.NewCaptureContextService(gw, verifier, cfg.Gateway, engineMetrics, log)
	ops := service.NewOperationClient(gw, contactRepo, log)

	paymentSvc := service.NewPaymentService(
		paymentRepo,
		orderRepo,
		storeRepo,
		issuer,
		ops,
		transactor,
		engineMetrics,
		cfg.Gateway,
		log,
	)
	webhookMgr := service.NewWebhookManager(gw, cfg.Webhook, cfg.Gateway.MerchantID, logger.Component(log, "webhooks"))
	notificationSvc := service.NewNotificationService(paymentSvc, notificationStore, sigSvc, engineMetrics, cfg.Webhook, logger.Component(log, "notifications"))

	if cfg.Webhook.RegisterOnStart {
		regCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		// Without a proxy domain there is no request to derive a base URL from.
		if err := webhookMgr.Register(regCtx, ""); err != nil {
			log.Warn().Err(err).Msg("Webhook registration on start failed")
		} else {
			log.Info().Str("name", cfg.Webhook.Name).Msg("Webhook subscription reconciled")
		}
		cancel()
	}

	warnInsecureConfig(cfg, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:      paymentSvc,
		WebhookManager:  webhookMgr,
		Notifications:   notificationSvc,
		HashSvc:         hashSvc,
		OperatorKeyHash: cfg.Operator.KeyHash,
		RateLimitStore:  rateLimitStore,
		RateLimit:       cfg.RateLimit,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:         registry,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
