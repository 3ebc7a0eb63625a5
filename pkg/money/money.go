// Package money formats monetary and quantity values for gateway payloads.
// Output never depends on the process locale.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits sent to the gateway.
const Scale = 2

// Format renders d with exactly two fractional digits and a '.' separator.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// FormatPtr formats d, or returns "" when d is nil.
func FormatPtr(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return Format(*d)
}

// Parse reads a gateway or user supplied amount. Comma separators are rejected.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return decimal.Zero, fmt.Errorf("amount %q must use '.' as decimal separator", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// Sum adds up amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
