package handler

import (
	"cybersource-gateway/config"
	"cybersource-gateway/internal/adapter/http/middleware"
	redisStore "cybersource-gateway/internal/adapter/storage/redis"
	"cybersource-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc      ports.PaymentService
	WebhookManager  ports.WebhookManager
	Notifications   ports.NotificationHandler
	HashSvc         ports.HashService
	OperatorKeyHash string                     // empty = operator routes disabled
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit       config.RateLimitConfig
	HealthCheckers  []ports.HealthChecker
	Metrics         prometheus.Gatherer // nil = /metrics not served
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	rules := middleware.RateLimitRules(deps.RateLimit)

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	webhookHandler := NewWebhookHandler(deps.WebhookManager, deps.Notifications, deps.Logger)

	// Storefront-facing: the checkout page runs these with the shopper's browser.
	payments := v1.Group("/payments", rl(middleware.GroupPayments))
	{
		payments.POST("/capture-context", paymentHandler.CaptureContext)
		payments.POST("/:id/authorize", paymentHandler.Authorize)
	}

	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/notifications", rl(middleware.GroupNotifications), webhookHandler.Notify)
		webhooks.GET("/health-check", webhookHandler.HealthCheck)
		webhooks.POST("/health-check", webhookHandler.HealthCheck)
	}

	// --- Operator routes (argon2id X-Operator-Key) ---
	// Money-moving operations are not mounted at all without an operator key hash.
	if deps.OperatorKeyHash != "" && deps.HashSvc != nil {
		auth := middleware.OperatorAuth(deps.HashSvc, deps.OperatorKeyHash, deps.Logger)

		ops := payments.Group("", auth)
		{
			ops.POST("/:id/capture", paymentHandler.Capture)
			ops.POST("/:id/refund", paymentHandler.Refund)
			ops.POST("/:id/void", paymentHandler.Void)
			ops.POST("/:id/refresh-status", paymentHandler.RefreshStatus)
			ops.GET("/transactions/:id", paymentHandler.Transaction)
		}

		operator := webhooks.Group("", auth)
		{
			operator.GET("", webhookHandler.List)
			operator.POST("/register", webhookHandler.Register)
			operator.POST("/unregister", webhookHandler.Unregister)
		}
	}

	return r
}
