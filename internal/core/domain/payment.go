package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the merchant-side lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusNew        PaymentStatus = "NEW"
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusAuthorized PaymentStatus = "AUTHORIZED"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusCaptured   PaymentStatus = "CAPTURED"
	PaymentStatusDeclined   PaymentStatus = "DECLINED"
	PaymentStatusError      PaymentStatus = "ERROR"
	PaymentStatusVoided     PaymentStatus = "VOIDED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// PaymentRecord is the order platform's payment, mutated only through gateway outcomes.
type PaymentRecord struct {
	ID                 uuid.UUID            `json:"id"`
	OrderID            uuid.UUID            `json:"order_id"`
	Number             string               `json:"number"`
	Status             PaymentStatus        `json:"status"`
	Amount             decimal.Decimal      `json:"amount"`
	Currency           string               `json:"currency"`
	IsApproved         bool                 `json:"is_approved"`
	IsCancelled        bool                 `json:"is_cancelled"`
	AuthorizedAt       *time.Time           `json:"authorized_at,omitempty"`
	CapturedAt         *time.Time           `json:"captured_at,omitempty"`
	VoidedAt           *time.Time           `json:"voided_at,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	RefundedAt         *time.Time           `json:"refunded_at,omitempty"`
	OuterTransactionID string               `json:"outer_transaction_id,omitempty"`
	Comments           []string             `json:"comments,omitempty"`
	BillingAddress     *Address             `json:"billing_address,omitempty"`
	Transactions       []PaymentTransaction `json:"transactions,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// AddComment appends a line to the payment's comment log.
func (p *PaymentRecord) AddComment(comment string) {
	p.Comments = append(p.Comments, comment)
}

// LastComment returns the most recent comment, or "" if none.
func (p *PaymentRecord) LastComment() string {
	if len(p.Comments) == 0 {
		return ""
	}
	return p.Comments[len(p.Comments)-1]
}

// CaptureCount returns how many captures were recorded against the authorization.
func (p *PaymentRecord) CaptureCount() int {
	n := 0
	for _, t := range p.Transactions {
		if t.Type == TransactionTypeCapture {
			n++
		}
	}
	return n
}

// RefundedAmount sums all recorded refunds.
func (p *PaymentRecord) RefundedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, t := range p.Transactions {
		if t.Type == TransactionTypeRefund {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// RemainingAmount is the amount still refundable.
func (p *PaymentRecord) RemainingAmount() decimal.Decimal {
	return p.Amount.Sub(p.RefundedAmount())
}

// CapturedAmount sums all recorded captures.
func (p *PaymentRecord) CapturedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, t := range p.Transactions {
		if t.Type == TransactionTypeCapture {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// RemainingCaptureAmount is the part of the authorization not captured yet.
func (p *PaymentRecord) RemainingCaptureAmount() decimal.Decimal {
	return p.Amount.Sub(p.CapturedAmount())
}

// IsCapturable reports whether the authorization still accepts captures.
// A non-final partial capture leaves the payment Authorized.
func (p *PaymentRecord) IsCapturable() bool {
	return p.Status == PaymentStatusAuthorized
}

// IsRefundable reports whether money has moved and can be returned.
// A partially refunded payment stays refundable until nothing remains.
func (p *PaymentRecord) IsRefundable() bool {
	switch p.Status {
	case PaymentStatusPaid, PaymentStatusCaptured, PaymentStatusAuthorized:
		return true
	case PaymentStatusRefunded:
		return p.RemainingAmount().IsPositive()
	}
	return false
}

// IsVoidable reports whether the authorization has not settled yet.
func (p *PaymentRecord) IsVoidable() bool {
	return p.Status == PaymentStatusAuthorized || p.Status == PaymentStatusPending
}

// Clone returns a deep copy, so callers can compare before and after a mutation.
func (p *PaymentRecord) Clone() *PaymentRecord {
	c := *p
	c.AuthorizedAt = cloneTime(p.AuthorizedAt)
	c.CapturedAt = cloneTime(p.CapturedAt)
	c.VoidedAt = cloneTime(p.VoidedAt)
	c.CancelledAt = cloneTime(p.CancelledAt)
	c.RefundedAt = cloneTime(p.RefundedAt)
	if p.Comments != nil {
		c.Comments = append([]string(nil), p.Comments...)
	}
	if p.Transactions != nil {
		c.Transactions = append([]PaymentTransaction(nil), p.Transactions...)
	}
	if p.BillingAddress != nil {
		addr := *p.BillingAddress
		c.BillingAddress = &addr
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
