package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CaptureContextRequest is the request body for issuing a capture context.
// An empty store id selects the configured default store.
type CaptureContextRequest struct {
	StoreID string `json:"store_id" binding:"omitempty,max=128,safe_id"`
}

// CaptureContextResponse is what the checkout page needs to mount the card form.
type CaptureContextResponse struct {
	JWT                    string `json:"jwt"`
	KeyID                  string `json:"key_id"`
	ClientLibrary          string `json:"client_library"`
	ClientLibraryIntegrity string `json:"client_library_integrity,omitempty"`
}

// AuthorizeRequest carries the transient token produced by the card form.
type AuthorizeRequest struct {
	Token string `json:"token" binding:"required,max=8192"`
}

// CaptureRequest is the request body for a capture.
type CaptureRequest struct {
	Amount  *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,positive_amount"`
	IsFinal bool             `json:"is_final"`
	Notes   string           `json:"notes,omitempty" binding:"max=255"`
}

// RefundRequest is the request body for a refund. A nil amount refunds the remainder.
type RefundRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,positive_amount"`
}

// RefreshStatusRequest optionally names the gateway transaction to look up.
type RefreshStatusRequest struct {
	OuterID string `json:"outer_id" binding:"omitempty,max=64,safe_id"`
}

// TransactionLookupRequest names a gateway transaction in the path.
type TransactionLookupRequest struct {
	ID string `uri:"id" binding:"required,max=64,safe_id"`
}

// TransactionResponse is the gateway's view of a single transaction.
type TransactionResponse struct {
	ID                    string          `json:"id"`
	TransactionID         string          `json:"transaction_id,omitempty"`
	Status                string          `json:"status"`
	RawStatus             string          `json:"raw_status"`
	ProcessorResponseCode string          `json:"processor_response_code,omitempty"`
	ErrorReason           string          `json:"error_reason,omitempty"`
	ErrorMessage          string          `json:"error_message,omitempty"`
	Raw                   json.RawMessage `json:"raw,omitempty"`
}

// OutcomeResponse is the serialized lifecycle outcome of a payment operation.
type OutcomeResponse struct {
	Status       string `json:"status"`
	IsSuccess    bool   `json:"is_success"`
	Outcome      string `json:"outcome"`
	OuterID      string `json:"outer_id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NotificationResponse acknowledges a webhook delivery.
type NotificationResponse struct {
	Result  string           `json:"result"` // processed, ignored, duplicate
	Outcome *OutcomeResponse `json:"outcome,omitempty"`
}

// WebhookResponse describes a gateway subscription.
type WebhookResponse struct {
	ID         string   `json:"webhook_id"`
	Name       string   `json:"name"`
	ProductID  string   `json:"product_id"`
	EventTypes []string `json:"event_types"`
	Status     string   `json:"status"`
	WebhookURL string   `json:"webhook_url"`
}
