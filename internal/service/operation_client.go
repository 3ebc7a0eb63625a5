package service

import (
	"context"
	"fmt"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"
	"cybersource-gateway/pkg/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OperationClient builds gateway payloads from payment records and orders and
// executes them. Results are returned uninterpreted.
type OperationClient struct {
	gateway   ports.GatewayClient
	customers ports.CustomerDirectory
	log       zerolog.Logger
}

// NewOperationClient creates a new OperationClient.
func NewOperationClient(gateway ports.GatewayClient, customers ports.CustomerDirectory, log zerolog.Logger) *OperationClient {
	return &OperationClient{gateway: gateway, customers: customers, log: log}
}

// NextCaptureSequence returns the 1-based sequence number of the next capture.
func NextCaptureSequence(p *domain.PaymentRecord) int {
	return p.CaptureCount() + 1
}

// Authorize submits the transient card token for authorization, capturing in
// the same message when rc.SingleMessageMode is set.
func (c *OperationClient) Authorize(
	ctx context.Context,
	rc domain.PaymentRequestContext,
	token string,
	payment *domain.PaymentRecord,
	order *domain.Order,
) (*domain.GatewayOperationResult, error) {
	if token == "" {
		return nil, apperror.Validation("card token is required")
	}
	contact, err := c.resolveContact(ctx, order)
	if err != nil {
		return nil, err
	}

	req := &ports.CreatePaymentRequest{
		ClientReferenceInformation: ports.ClientReference{Code: order.Number},
		ProcessingInformation:      ports.ProcessingInformation{Capture: rc.SingleMessageMode},
		OrderInformation:           orderInformation(order, payment.BillingAddress, contact, order.Total),
		TokenInformation:           &ports.TokenInformation{TransientTokenJwt: token},
	}

	c.log.Debug().
		Str("payment_id", payment.ID.String()).
		Str("order_number", order.Number).
		Bool("single_message", rc.SingleMessageMode).
		Msg("authorizing payment")
	return c.gateway.CreatePayment(ctx, rc.Sandbox, req)
}

// Capture settles amount (or whatever is still uncaptured when nil) against the
// authorization. The final capture announces the total capture count.
func (c *OperationClient) Capture(
	ctx context.Context,
	rc domain.PaymentRequestContext,
	payment *domain.PaymentRecord,
	order *domain.Order,
	amount *decimal.Decimal,
	sequence int,
	isFinal bool,
	notes string,
) (*domain.GatewayOperationResult, error) {
	if rc.OuterPaymentID == "" {
		return nil, apperror.ErrSequenceViolation("capture requires a prior authorization")
	}
	if sequence < 1 {
		return nil, apperror.ErrSequenceViolation(fmt.Sprintf("invalid capture sequence %d", sequence))
	}
	if !payment.IsCapturable() {
		return nil, apperror.ErrSequenceViolation(fmt.Sprintf("payment in status %s cannot be captured", payment.Status))
	}

	remaining := payment.RemainingCaptureAmount()
	total := remaining
	if amount != nil {
		total = *amount
	}
	if !total.IsPositive() {
		return nil, apperror.Validation("capture amount must be positive")
	}
	if total.GreaterThan(remaining) {
		return nil, apperror.Validation(fmt.Sprintf("capture amount %s exceeds capturable %s", money.Format(total), money.Format(remaining)))
	}

	contact, err := c.resolveContact(ctx, order)
	if err != nil {
		return nil, err
	}

	opts := &ports.CaptureOptions{CaptureSequenceNumber: sequence}
	if isFinal {
		opts.TotalCaptureCount = sequence
	}

	req := &ports.CapturePaymentRequest{
		ClientReferenceInformation: ports.ClientReference{Code: order.Number},
		ProcessingInformation:      ports.ProcessingInformation{CaptureOptions: opts},
		OrderInformation:           orderInformation(order, payment.BillingAddress, contact, total),
	}
	if notes != "" {
		req.MerchantDefinedInformation = []ports.MerchantDefinedField{{Key: "1", Value: notes}}
	}

	return c.gateway.CapturePayment(ctx, rc.Sandbox, rc.OuterPaymentID, req)
}

// Refund returns amount (or everything not yet refunded when nil) to the card.
func (c *OperationClient) Refund(
	ctx context.Context,
	rc domain.PaymentRequestContext,
	payment *domain.PaymentRecord,
	amount *decimal.Decimal,
) (*domain.GatewayOperationResult, error) {
	if rc.OuterPaymentID == "" {
		return nil, apperror.ErrSequenceViolation("refund requires a prior authorization")
	}
	if !payment.IsRefundable() {
		return nil, apperror.ErrSequenceViolation(fmt.Sprintf("payment in status %s cannot be refunded", payment.Status))
	}

	remaining := payment.RemainingAmount()
	total := remaining
	if amount != nil {
		total = *amount
	}
	if !total.IsPositive() {
		return nil, apperror.Validation("refund amount must be positive")
	}
	if total.GreaterThan(remaining) {
		return nil, apperror.Validation(fmt.Sprintf("refund amount %s exceeds refundable %s", money.Format(total), money.Format(remaining)))
	}

	req := &ports.RefundPaymentRequest{
		ClientReferenceInformation: ports.ClientReference{Code: payment.Number},
		OrderInformation: ports.OrderInformation{
			AmountDetails: ports.AmountDetails{TotalAmount: money.Format(total), Currency: payment.Currency},
		},
	}
	return c.gateway.RefundPayment(ctx, rc.Sandbox, rc.OuterPaymentID, req)
}

// Void cancels an authorization that has not settled.
func (c *OperationClient) Void(
	ctx context.Context,
	rc domain.PaymentRequestContext,
	payment *domain.PaymentRecord,
) (*domain.GatewayOperationResult, error) {
	if rc.OuterPaymentID == "" {
		return nil, apperror.ErrSequenceViolation("void requires a prior authorization")
	}
	if !payment.IsVoidable() {
		return nil, apperror.ErrSequenceViolation(fmt.Sprintf("payment in status %s cannot be voided", payment.Status))
	}

	req := &ports.VoidPaymentRequest{
		ClientReferenceInformation: ports.ClientReference{Code: payment.Number},
	}
	return c.gateway.VoidPayment(ctx, rc.Sandbox, rc.OuterPaymentID, req)
}

// Fetch looks up the current gateway state of a transaction.
func (c *OperationClient) Fetch(ctx context.Context, rc domain.PaymentRequestContext, outerID string) (*domain.GatewayOperationResult, error) {
	if outerID == "" {
		return nil, apperror.Validation("outer transaction id is required")
	}
	return c.gateway.GetTransaction(ctx, rc.Sandbox, outerID)
}

func (c *OperationClient) resolveContact(ctx context.Context, order *domain.Order) (*domain.Contact, error) {
	contact, err := c.customers.FindContactByUserID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer %s: %w", order.CustomerID, err)
	}
	if contact == nil {
		return nil, apperror.ErrCustomerNotFound(order.CustomerID)
	}
	return contact, nil
}

func orderInformation(order *domain.Order, addr *domain.Address, contact *domain.Contact, total decimal.Decimal) ports.OrderInformation {
	info := ports.OrderInformation{
		BillTo: billTo(addr, contact),
		AmountDetails: ports.AmountDetails{
			TotalAmount:    money.Format(total),
			TaxAmount:      money.Format(order.TaxTotal),
			DiscountAmount: money.Format(order.DiscountAmount),
			Currency:       order.Currency,
		},
	}
	for _, item := range order.Items {
		info.LineItems = append(info.LineItems, ports.LineItemPayload{
			ProductName:    item.Name,
			ProductSku:     item.Sku,
			ProductCode:    item.ID,
			UnitPrice:      money.Format(item.Price),
			TotalAmount:    money.Format(item.PlacedPrice),
			TaxAmount:      money.Format(item.TaxTotal),
			DiscountAmount: money.Format(item.DiscountAmount),
			Quantity:       item.Quantity,
			Gift:           item.IsGift,
		})
	}
	return info
}

func billTo(addr *domain.Address, contact *domain.Contact) *ports.BillTo {
	b := &ports.BillTo{
		FirstName:  contact.FirstName,
		MiddleName: contact.MiddleName,
		LastName:   contact.LastName,
		Email:      contact.PrimaryEmail(),
	}
	if addr == nil {
		return b
	}
	if addr.FirstName != "" {
		b.FirstName = addr.FirstName
	}
	if addr.LastName != "" {
		b.LastName = addr.LastName
	}
	if b.Email == "" {
		b.Email = addr.Email
	}
	b.Address1 = addr.Line1
	b.Address2 = addr.Line2
	b.Locality = addr.City
	b.AdministrativeArea = addr.RegionName
	b.PostalCode = addr.PostalCode
	b.Country = addr.CountryName
	b.PhoneNumber = addr.Phone
	return b
}
