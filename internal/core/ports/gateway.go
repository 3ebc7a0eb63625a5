package ports

import (
	"context"
	"errors"

	"cybersource-gateway/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// ErrGatewayNotFound matches (via errors.Is) any gateway response meaning "resource does not exist".
var ErrGatewayNotFound = errors.New("gateway: not found")

// GatewayClient executes payment operations against the card gateway.
// Every method targets the sandbox or production host according to the sandbox flag.
type GatewayClient interface {
	GenerateCaptureContext(ctx context.Context, sandbox bool, req *CaptureContextRequest) (string, error)
	CreatePayment(ctx context.Context, sandbox bool, req *CreatePaymentRequest) (*domain.GatewayOperationResult, error)
	CapturePayment(ctx context.Context, sandbox bool, paymentID string, req *CapturePaymentRequest) (*domain.GatewayOperationResult, error)
	RefundPayment(ctx context.Context, sandbox bool, paymentID string, req *RefundPaymentRequest) (*domain.GatewayOperationResult, error)
	VoidPayment(ctx context.Context, sandbox bool, paymentID string, req *VoidPaymentRequest) (*domain.GatewayOperationResult, error)
	GetTransaction(ctx context.Context, sandbox bool, transactionID string) (*domain.GatewayOperationResult, error)
}

// PublicKeyFetcher retrieves capture-context signing keys. Sandbox and production are disjoint key spaces.
type PublicKeyFetcher interface {
	FetchPublicKey(ctx context.Context, sandbox bool, keyID string) (*domain.SigningKey, error)
}

// WebhookGateway manages webhook subscriptions at the gateway.
type WebhookGateway interface {
	ListWebhooks(ctx context.Context, organizationID, productID, eventType string) ([]domain.WebhookSubscription, error)
	CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (*domain.WebhookSubscription, error)
	DeleteWebhook(ctx context.Context, webhookID string) error
}

// CaptureContextRequest asks the gateway for a microform session.
type CaptureContextRequest struct {
	ClientVersion       string   `json:"clientVersion"`
	TargetOrigins       []string `json:"targetOrigins"`
	AllowedCardNetworks []string `json:"allowedCardNetworks"`
}

// ClientReference correlates a gateway call with the merchant order.
type ClientReference struct {
	Code string `json:"code"`
}

type CaptureOptions struct {
	CaptureSequenceNumber int `json:"captureSequenceNumber"`
	TotalCaptureCount     int `json:"totalCaptureCount,omitempty"`
}

type ProcessingInformation struct {
	Capture        bool            `json:"capture,omitempty"`
	CaptureOptions *CaptureOptions `json:"captureOptions,omitempty"`
}

type BillTo struct {
	FirstName          string `json:"firstName,omitempty"`
	MiddleName         string `json:"middleName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Email              string `json:"email,omitempty"`
	Address1           string `json:"address1,omitempty"`
	Address2           string `json:"address2,omitempty"`
	Locality           string `json:"locality,omitempty"`
	AdministrativeArea string `json:"administrativeArea,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	Country            string `json:"country,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
}

// LineItemPayload carries monetary fields as fixed-point strings.
type LineItemPayload struct {
	ProductName    string `json:"productName"`
	ProductSku     string `json:"productSku,omitempty"`
	ProductCode    string `json:"productCode,omitempty"`
	UnitPrice      string `json:"unitPrice"`
	TotalAmount    string `json:"totalAmount"`
	TaxAmount      string `json:"taxAmount"`
	DiscountAmount string `json:"discountAmount"`
	Quantity       int    `json:"quantity"`
	Gift           bool   `json:"gift"`
}

type AmountDetails struct {
	TotalAmount    string `json:"totalAmount"`
	TaxAmount      string `json:"taxAmount,omitempty"`
	DiscountAmount string `json:"discountAmount,omitempty"`
	Currency       string `json:"currency"`
}

type OrderInformation struct {
	BillTo        *BillTo           `json:"billTo,omitempty"`
	LineItems     []LineItemPayload `json:"lineItems,omitempty"`
	AmountDetails AmountDetails     `json:"amountDetails"`
}

type TokenInformation struct {
	TransientTokenJwt string `json:"transientTokenJwt"`
}

type MerchantDefinedField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CreatePaymentRequest struct {
	ClientReferenceInformation ClientReference       `json:"clientReferenceInformation"`
	ProcessingInformation      ProcessingInformation `json:"processingInformation"`
	OrderInformation           OrderInformation      `json:"orderInformation"`
	TokenInformation           *TokenInformation     `json:"tokenInformation,omitempty"`
}

type CapturePaymentRequest struct {
	ClientReferenceInformation ClientReference        `json:"clientReferenceInformation"`
	ProcessingInformation      ProcessingInformation  `json:"processingInformation"`
	OrderInformation           OrderInformation       `json:"orderInformation"`
	MerchantDefinedInformation []MerchantDefinedField `json:"merchantDefinedInformation,omitempty"`
}

type RefundPaymentRequest struct {
	ClientReferenceInformation ClientReference  `json:"clientReferenceInformation"`
	OrderInformation           OrderInformation `json:"orderInformation"`
}

type VoidPaymentRequest struct {
	ClientReferenceInformation ClientReference `json:"clientReferenceInformation"`
}

type WebhookRetryPolicy struct {
	Algorithm              string `json:"algorithm"`
	FirstRetry             int    `json:"firstRetry"`
	Interval               int    `json:"interval"`
	NumberOfRetries        int    `json:"numberOfRetries"`
	DeactivateFlag         string `json:"deactivateFlag"`
	RepeatSequenceCount    int    `json:"repeatSequenceCount"`
	RepeatSequenceWaitTime int    `json:"repeatSequenceWaitTime"`
}

type WebhookSecurityPolicy struct {
	SecurityType string `json:"securityType"`
	ProxyType    string `json:"proxyType"`
}

type CreateWebhookRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	OrganizationID string                `json:"organizationId"`
	ProductID      string                `json:"productId"`
	EventTypes     []string              `json:"eventTypes"`
	WebhookURL     string                `json:"webhookUrl"`
	HealthCheckURL string                `json:"healthCheckUrl"`
	RetryPolicy    WebhookRetryPolicy    `json:"retryPolicy"`
	SecurityPolicy WebhookSecurityPolicy `json:"securityPolicy"`
}
