// Package money formats amounts for display in Brazilian reais.
package money

import "github.com/shopspring/decimal"

// Currency is the label printed in front of every amount.
const Currency = "R$"

// exactExponent is small enough for NewFromFloatWithExponent to keep every
// binary digit of a float64.
const exactExponent = -1074

// Round returns amount rounded to two decimals, half to even, on the exact
// binary value of the float. 75.195 is stored just below the midpoint and
// rounds to 75.19.
func Round(amount float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(amount, exactExponent).RoundBank(2)
}

// Format renders amount as "R$ 1234.56".
func Format(amount float64) string {
	return Currency + " " + Round(amount).StringFixed(2)
}
