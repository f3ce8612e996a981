package domain

import "github.com/shopspring/decimal"

// MoneyPlaces number of decimal places stored for amounts
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds an amount half away from zero to MoneyPlaces
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ComputeDiscount returns the discount for base: percent takes priority over flat,
// the result is clamped to [0, base]
func ComputeDiscount(base, percent, flat decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	if percent.IsPositive() {
		discount = base.Mul(percent).Div(hundred)
	} else {
		discount = flat
	}

	if discount.GreaterThan(base) {
		discount = base
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return RoundMoney(discount)
}
