package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusProcessing is set once a payment for the order is approved.
const OrderStatusProcessing = "Processing"

// Order is the read-only view of a customer order consumed by payment operations.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	CustomerID     string          `json:"customer_id"`
	StoreID        string          `json:"store_id"`
	Status         string          `json:"status"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Items          []LineItem      `json:"items"`
}

// LineItem is one order line.
type LineItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Sku            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	PlacedPrice    decimal.Decimal `json:"placed_price"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	IsGift         bool            `json:"is_gift"`
}

// Address is a postal address attached to a payment.
type Address struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	RegionName  string `json:"region_name,omitempty"`
	PostalCode  string `json:"postal_code"`
	CountryName string `json:"country_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Contact is the customer behind an order.
type Contact struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	FirstName     string   `json:"first_name"`
	MiddleName    string   `json:"middle_name,omitempty"`
	LastName      string   `json:"last_name"`
	Emails        []string `json:"emails"`
	AccountEmails []string `json:"account_emails"` // emails of the contact's security accounts
}

// PrimaryEmail returns the first contact email, falling back to the first account email.
func (c *Contact) PrimaryEmail() string {
	for _, e := range c.Emails {
		if e != "" {
			return e
		}
	}
	for _, e := range c.AccountEmails {
		if e != "" {
			return e
		}
	}
	return ""
}

// ErrStoreURLMissing is returned when a store has neither a secure nor a plain URL.
var ErrStoreURLMissing = errors.New("store url required")

// Store is the storefront a checkout is initiated from.
type Store struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// CheckoutURL prefers the secure URL.
func (s *Store) CheckoutURL() (string, error) {
	if s == nil {
		return "", ErrStoreURLMissing
	}
	if s.SecureURL != "" {
		return s.SecureURL, nil
	}
	if s.URL != "" {
		return s.URL, nil
	}
	return "", ErrStoreURLMissing
}
