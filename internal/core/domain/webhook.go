package domain

import (
	"time"
)

// WebhookStatus is the gateway-side state of a subscription.
type WebhookStatus string

const (
	WebhookStatusActive   WebhookStatus = "ACTIVE"
	WebhookStatusInactive WebhookStatus = "INACTIVE"
)

// WebhookSubscription is a gateway registration pushing events to this service.
// At most one active subscription per (Name, event type) may exist.
type WebhookSubscription struct {
	ID         string        `json:"webhook_id"`
	Name       string        `json:"name"`
	ProductID  string        `json:"product_id"`
	EventTypes []string      `json:"event_types"`
	Status     WebhookStatus `json:"status"`
	WebhookURL string        `json:"webhook_url"`
	CreatedAt  *time.Time    `json:"created_on,omitempty"`
}

// HasEventType reports whether the subscription delivers the given event.
func (w *WebhookSubscription) HasEventType(eventType string) bool {
	for _, e := range w.EventTypes {
		if e == eventType {
			return true
		}
	}
	return false
}

// Fraud-review decision events the gateway pushes.
const (
	EventDecisionAccept = "risk.casemanagement.decision.accept"
	EventDecisionReject = "risk.casemanagement.decision.reject"
)

// Notification is one event delivered to the webhook endpoint.
type Notification struct {
	ID            string `json:"notificationId"`
	EventType     string `json:"eventType"`
	WebhookID     string `json:"webhookId"`
	TransactionID string `json:"transactionId"` // outer transaction id the decision refers to
	RetryNumber   int    `json:"retryNumber"`
	EventDate     string `json:"eventDate,omitempty"`
}

// IsDecision reports whether the notification carries a fraud-review decision.
func (n *Notification) IsDecision() bool {
	return n.EventType == EventDecisionAccept || n.EventType == EventDecisionReject
}

// BuildNotificationKey constructs the de-duplication key for a delivered notification.
func BuildNotificationKey(notificationID string) string {
	return "notification:" + notificationID
}
