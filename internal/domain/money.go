package domain

import "github.com/shopspring/decimal"

// Money is treated as 2-decimal-place currency. Equality between derived
// amounts is only ever required within one cent.
var (
	MoneyEpsilon = decimal.New(1, -2)
	hundred      = decimal.NewFromInt(100)
)

// RoundMoney rounds to 2 decimal places (half away from zero)
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// WithinEpsilon reports whether |a - b| <= 0.01
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MoneyEpsilon)
}

// IsNegligible reports whether |d| is below one cent
func IsNegligible(d decimal.Decimal) bool {
	return d.Abs().LessThan(MoneyEpsilon)
}

// PercentOf returns amount * rate / 100, unrounded
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// MaxMoney returns the larger of a and b
func MaxMoney(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MinMoney returns the smaller of a and b
func MinMoney(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// FormatMoney renders an amount the way reasons shown to the operator do
func FormatMoney(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}
