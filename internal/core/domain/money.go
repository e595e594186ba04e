package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places money is stored and rounded to.
const MoneyScale = 2

// RoundMoney rounds half away from zero to MoneyScale places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// IsPositiveMoney reports whether d is > 0 and carries no more precision than MoneyScale.
func IsPositiveMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(RoundMoney(d))
}
