package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2000.004", "2000"},
		{"2000.005", "2000.01"},
		{"-0.005", "-0.01"},
		{"333.3333", "333.33"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, d(tt.want).Equal(RoundMoney(d(tt.in))), "RoundMoney(%s) = %s", tt.in, RoundMoney(d(tt.in)))
		})
	}
}

func TestMoneyTolerance(t *testing.T) {
	assert.True(t, WithinEpsilon(d("100.00"), d("100.01")))
	assert.False(t, WithinEpsilon(d("100.00"), d("100.02")))
	assert.True(t, IsNegligible(d("0.009")))
	assert.False(t, IsNegligible(d("-0.01")))
}

func TestPercentOf(t *testing.T) {
	assert.True(t, d("2000").Equal(PercentOf(d("100000"), d("2"))))
	assert.True(t, d("123.456").Equal(PercentOf(d("12345.6"), d("1"))))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹2000.00", FormatMoney(d("2000")))
	assert.Equal(t, "₹0.50", FormatMoney(d("0.5")))
}
