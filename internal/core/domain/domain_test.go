package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGatewayStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want GatewayStatus
	}{
		{"AUTHORIZED", GatewayStatusAuthorized},
		{"authorized", GatewayStatusAuthorized},
		{" PENDING_REVIEW ", GatewayStatusPendingReview},
		{"PARTIAL_AUTHORIZED", GatewayStatusPartialAuthorized},
		{"VOIDED", GatewayStatusVoided},
		{"SETTLED", GatewayStatusUnknown},
		{"", GatewayStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGatewayStatus(tt.raw))
		})
	}
}

func TestGatewayOperationResult_Reason(t *testing.T) {
	r := &GatewayOperationResult{ErrorReason: "PROCESSOR_DECLINED", ErrorMessage: "Decline - General decline."}
	assert.Equal(t, "Decline - General decline.", r.Reason())

	r.ErrorMessage = ""
	assert.Equal(t, "PROCESSOR_DECLINED", r.Reason())
}

func TestGatewayOperationResult_OuterID(t *testing.T) {
	r := &GatewayOperationResult{ID: "7012345678", TransactionID: "016153570198200"}
	assert.Equal(t, "7012345678", r.OuterID())

	r.ID = ""
	assert.Equal(t, "016153570198200", r.OuterID())
}

func TestPaymentRecord_CaptureCountAndRefunds(t *testing.T) {
	p := &PaymentRecord{
		Amount: decimal.RequireFromString("100.00"),
		Transactions: []PaymentTransaction{
			{Type: TransactionTypeAuthorize},
			{Type: TransactionTypeCapture, Amount: decimal.RequireFromString("40")},
			{Type: TransactionTypeCapture, Amount: decimal.RequireFromString("60")},
			{Type: TransactionTypeRefund, Amount: decimal.RequireFromString("25.50")},
		},
	}

	assert.Equal(t, 2, p.CaptureCount())
	assert.Equal(t, "25.5", p.RefundedAmount().String())
	assert.Equal(t, "74.5", p.RemainingAmount().String())
	assert.Equal(t, "100", p.CapturedAmount().String())
	assert.True(t, p.RemainingCaptureAmount().IsZero())
}

func TestPaymentRecord_RemainingCaptureAmount(t *testing.T) {
	p := &PaymentRecord{
		Amount: decimal.RequireFromString("100.00"),
		Transactions: []PaymentTransaction{
			{Type: TransactionTypeCapture, Amount: decimal.RequireFromString("30")},
			{Type: TransactionTypeRefund, Amount: decimal.RequireFromString("10")},
		},
	}

	assert.Equal(t, "30", p.CapturedAmount().String())
	assert.Equal(t, "70", p.RemainingCaptureAmount().String())
}

func TestPaymentRecord_IsCapturable(t *testing.T) {
	for _, status := range []PaymentStatus{
		PaymentStatusNew, PaymentStatusPending, PaymentStatusPaid, PaymentStatusCaptured,
		PaymentStatusDeclined, PaymentStatusVoided, PaymentStatusRefunded,
	} {
		assert.False(t, (&PaymentRecord{Status: status}).IsCapturable(), status)
	}
	assert.True(t, (&PaymentRecord{Status: PaymentStatusAuthorized}).IsCapturable())
}

func TestPaymentRecord_PartialRefundStaysRefundable(t *testing.T) {
	p := &PaymentRecord{
		Status: PaymentStatusRefunded,
		Amount: decimal.RequireFromString("100.00"),
		Transactions: []PaymentTransaction{
			{Type: TransactionTypeRefund, Amount: decimal.RequireFromString("40")},
		},
	}
	assert.True(t, p.IsRefundable())

	p.Transactions = append(p.Transactions, PaymentTransaction{Type: TransactionTypeRefund, Amount: decimal.RequireFromString("60")})
	assert.False(t, p.IsRefundable())
}

func TestPaymentRecord_IsRefundableAndVoidable(t *testing.T) {
	tests := []struct {
		status     PaymentStatus
		refundable bool
		voidable   bool
	}{
		{PaymentStatusPending, false, true},
		{PaymentStatusAuthorized, true, true},
		{PaymentStatusPaid, true, false},
		{PaymentStatusCaptured, true, false},
		{PaymentStatusDeclined, false, false},
		{PaymentStatusVoided, false, false},
		{PaymentStatusRefunded, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &PaymentRecord{Status: tt.status}
			assert.Equal(t, tt.refundable, p.IsRefundable())
			assert.Equal(t, tt.voidable, p.IsVoidable())
		})
	}
}

func TestPaymentRecord_Clone(t *testing.T) {
	now := time.Now().UTC()
	p := &PaymentRecord{
		ID:           uuid.New(),
		Status:       PaymentStatusAuthorized,
		AuthorizedAt: &now,
		Comments:     []string{"first"},
		Transactions: []PaymentTransaction{{Type: TransactionTypeAuthorize}},
		BillingAddress: &Address{
			City: "Berlin",
		},
	}

	c := p.Clone()
	require.Equal(t, p, c)

	c.AddComment("second")
	c.Transactions[0].OuterID = "changed"
	*c.AuthorizedAt = now.Add(time.Hour)
	c.BillingAddress.City = "Paris"

	assert.Equal(t, []string{"first"}, p.Comments)
	assert.Empty(t, p.Transactions[0].OuterID)
	assert.Equal(t, now, *p.AuthorizedAt)
	assert.Equal(t, "Berlin", p.BillingAddress.City)
	assert.Equal(t, "second", c.LastComment())
}

func TestContact_PrimaryEmail(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"contact email first", Contact{Emails: []string{"a@shop.test"}, AccountEmails: []string{"b@shop.test"}}, "a@shop.test"},
		{"falls back to account", Contact{AccountEmails: []string{"b@shop.test"}}, "b@shop.test"},
		{"none", Contact{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.PrimaryEmail())
		})
	}
}

func TestStore_CheckoutURL(t *testing.T) {
	url, err := (&Store{URL: "http://shop.test", SecureURL: "https://shop.test"}).CheckoutURL()
	require.NoError(t, err)
	assert.Equal(t, "https://shop.test", url)

	url, err = (&Store{URL: "http://shop.test"}).CheckoutURL()
	require.NoError(t, err)
	assert.Equal(t, "http://shop.test", url)

	_, err = (&Store{}).CheckoutURL()
	assert.ErrorIs(t, err, ErrStoreURLMissing)

	var nilStore *Store
	_, err = nilStore.CheckoutURL()
	assert.ErrorIs(t, err, ErrStoreURLMissing)
}

func TestNotification(t *testing.T) {
	n := &Notification{ID: "n-1", EventType: EventDecisionAccept}
	assert.True(t, n.IsDecision())
	assert.Equal(t, "notification:n-1", BuildNotificationKey(n.ID))

	n.EventType = "payments.payments.accept"
	assert.False(t, n.IsDecision())
}

func TestWebhookSubscription_HasEventType(t *testing.T) {
	w := &WebhookSubscription{EventTypes: []string{EventDecisionAccept}}
	assert.True(t, w.HasEventType(EventDecisionAccept))
	assert.False(t, w.HasEventType(EventDecisionReject))
}
