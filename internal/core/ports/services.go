package ports

import (
	"context"
	"time"

	"cybersource-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// SigningKeyVerifier checks a capture-context token against the gateway's current signing key.
type SigningKeyVerifier interface {
	Verify(ctx context.Context, signedToken string, sandbox bool) error
}

// CaptureContextIssuer obtains a verified capture context for a checkout.
type CaptureContextIssuer interface {
	Issue(ctx context.Context, storeURL string, cardTypes []string, sandbox bool) (*domain.CaptureContext, error)
}

// PaymentService is the engine surface used by the HTTP layer.
type PaymentService interface {
	IssueCaptureContext(ctx context.Context, storeID string) (*domain.CaptureContext, error)
	Authorize(ctx context.Context, paymentID uuid.UUID, token string) (*domain.LifecycleOutcome, error)
	Capture(ctx context.Context, req CaptureRequest) (*domain.LifecycleOutcome, error)
	Refund(ctx context.Context, paymentID uuid.UUID, amount *decimal.Decimal) (*domain.LifecycleOutcome, error)
	Void(ctx context.Context, paymentID uuid.UUID) (*domain.LifecycleOutcome, error)
	RefreshStatus(ctx context.Context, paymentID uuid.UUID, outerID string) (*domain.LifecycleOutcome, error)
	RefreshByOuterID(ctx context.Context, outerID string) (*domain.LifecycleOutcome, error)
	// LookupTransaction returns the gateway's view of a transaction without changing any payment.
	LookupTransaction(ctx context.Context, outerID string) (*domain.GatewayOperationResult, error)
}

// CaptureRequest holds validated input for a capture.
type CaptureRequest struct {
	PaymentID uuid.UUID
	Amount    *decimal.Decimal // nil = remaining uncaptured amount
	IsFinal   bool
	Notes     string
}

// WebhookManager reconciles this service's subscription set at the gateway.
type WebhookManager interface {
	// Register reconciles the configured subscription. baseURL is used when no proxy domain is configured.
	Register(ctx context.Context, baseURL string) error
	Unregister(ctx context.Context) error
	List(ctx context.Context) ([]domain.WebhookSubscription, error)
}

// NotificationHandler processes a webhook delivery.
type NotificationHandler interface {
	Handle(ctx context.Context, body []byte, signature string) (*domain.LifecycleOutcome, error)
}

// SignatureService defines HMAC operations.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService defines operator key hashing operations.
type HashService interface {
	Hash(key string) (string, error)
	Verify(key string, encodedHash string) (bool, error)
}

// Metrics records engine outcomes.
type Metrics interface {
	ObserveOutcome(operation string, outcome domain.OutcomeKind)
	ObserveGatewayCall(operation string, duration time.Duration, err error)
	ObserveVerificationAttempts(attempts int, success bool)
	ObserveNotification(eventType string, result string)
}
