package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10.00"},
		{"10.5", "10.50"},
		{"1234567.891", "1234567.89"},
		{"0", "0.00"},
		{"-3.1", "-3.10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPtr_Nil(t *testing.T) {
	assert.Equal(t, "", FormatPtr(nil))
	d := decimal.NewFromInt(7)
	assert.Equal(t, "7.00", FormatPtr(&d))
}

func TestParse(t *testing.T) {
	d, err := Parse(" 12.30 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.3")))

	_, err = Parse("12,30")
	assert.Error(t, err)

	_, err = Parse("abc")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	total := Sum(decimal.RequireFromString("1.10"), decimal.RequireFromString("2.20"))
	assert.Equal(t, "3.30", Format(total))
	assert.True(t, Sum().IsZero())
}
