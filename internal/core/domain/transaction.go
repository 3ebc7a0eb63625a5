package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of gateway operation a transaction records.
type TransactionType string

const (
	TransactionTypeAuthorize TransactionType = "AUTHORIZE"
	TransactionTypeCapture   TransactionType = "CAPTURE"
	TransactionTypeRefund    TransactionType = "REFUND"
	TransactionTypeVoid      TransactionType = "VOID"
)

// PaymentTransaction is an immutable record of an accepted gateway operation.
type PaymentTransaction struct {
	ID            uuid.UUID       `json:"id"`
	PaymentID     uuid.UUID       `json:"payment_id"`
	Type          TransactionType `json:"type"`
	OuterID       string          `json:"outer_id"` // processor transaction id
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	GatewayStatus GatewayStatus   `json:"gateway_status"`
	ResponseCode  string          `json:"response_code,omitempty"`
	Note          string          `json:"note,omitempty"`
	ResponseData  string          `json:"-"` // raw gateway body
	ProcessedAt   time.Time       `json:"processed_at"`
}
