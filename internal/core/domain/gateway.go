package domain

import (
	"encoding/json"
	"strings"
)

// GatewayStatus is the closed set of status codes the gateway returns for payment operations.
type GatewayStatus string

const (
	GatewayStatusAuthorized              GatewayStatus = "AUTHORIZED"
	GatewayStatusDeclined                GatewayStatus = "DECLINED"
	GatewayStatusAuthorizedRiskDeclined  GatewayStatus = "AUTHORIZED_RISK_DECLINED"
	GatewayStatusInvalidRequest          GatewayStatus = "INVALID_REQUEST"
	GatewayStatusPendingAuthentication   GatewayStatus = "PENDING_AUTHENTICATION"
	GatewayStatusPartialAuthorized       GatewayStatus = "PARTIAL_AUTHORIZED"
	GatewayStatusAuthorizedPendingReview GatewayStatus = "AUTHORIZED_PENDING_REVIEW"
	GatewayStatusPendingReview           GatewayStatus = "PENDING_REVIEW"
	GatewayStatusPending                 GatewayStatus = "PENDING"
	GatewayStatusTransmitted             GatewayStatus = "TRANSMITTED"
	GatewayStatusVoided                  GatewayStatus = "VOIDED"
	GatewayStatusCancelled               GatewayStatus = "CANCELLED"
	GatewayStatusUnknown                 GatewayStatus = "UNKNOWN"
)

var knownGatewayStatuses = map[GatewayStatus]struct{}{
	GatewayStatusAuthorized:              {},
	GatewayStatusDeclined:                {},
	GatewayStatusAuthorizedRiskDeclined:  {},
	GatewayStatusInvalidRequest:          {},
	GatewayStatusPendingAuthentication:   {},
	GatewayStatusPartialAuthorized:       {},
	GatewayStatusAuthorizedPendingReview: {},
	GatewayStatusPendingReview:           {},
	GatewayStatusPending:                 {},
	GatewayStatusTransmitted:             {},
	GatewayStatusVoided:                  {},
	GatewayStatusCancelled:               {},
}

// ParseGatewayStatus normalizes a raw status. Anything outside the known set is GatewayStatusUnknown.
func ParseGatewayStatus(raw string) GatewayStatus {
	s := GatewayStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownGatewayStatuses[s]; ok {
		return s
	}
	return GatewayStatusUnknown
}

// GatewayOperationResult is the uninterpreted result of one gateway call.
type GatewayOperationResult struct {
	Status                GatewayStatus   `json:"status"`
	RawStatus             string          `json:"raw_status"`
	ID                    string          `json:"id"`             // gateway resource id
	TransactionID         string          `json:"transaction_id"` // processor transaction id
	ProcessorResponseCode string          `json:"processor_response_code,omitempty"`
	ErrorReason           string          `json:"error_reason,omitempty"`
	ErrorMessage          string          `json:"error_message,omitempty"`
	Raw                   json.RawMessage `json:"-"`
}

// Reason returns the gateway's human-readable explanation, preferring the message over the reason code.
func (r *GatewayOperationResult) Reason() string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	return r.ErrorReason
}

// OuterID returns the id used to correlate later capture, refund, void and
// refresh calls. The gateway resource id wins; the processor transaction id is the fallback.
func (r *GatewayOperationResult) OuterID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.TransactionID
}
