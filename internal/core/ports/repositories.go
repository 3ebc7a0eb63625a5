package ports

import (
	"context"
	"time"

	"cybersource-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// PaymentRepository persists payment records.
// Methods accepting pgx.Tx run inside the caller's transaction.
type PaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	GetByOuterID(ctx context.Context, outerID string) (*domain.PaymentRecord, error)
	Update(ctx context.Context, tx pgx.Tx, payment *domain.PaymentRecord) error
	AppendTransactions(ctx context.Context, tx pgx.Tx, paymentID uuid.UUID, txns []domain.PaymentTransaction) error
}

// OrderRepository reads orders and advances their status.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string) error
}

// CustomerDirectory resolves the contact behind an order's customer id.
// A nil contact with a nil error means the user does not exist.
type CustomerDirectory interface {
	FindContactByUserID(ctx context.Context, userID string) (*domain.Contact, error)
}

// StoreRepository reads storefront settings.
type StoreRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Store, error)
}

// NotificationStore de-duplicates webhook deliveries.
type NotificationStore interface {
	// CheckAndSet returns true if the key was newly recorded, false if already seen.
	CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Forget drops a key so a redelivery of a failed notification is processed again.
	Forget(ctx context.Context, key string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
