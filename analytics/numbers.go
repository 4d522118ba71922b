/*
numbers.go - Numeric boundary helpers

PURPOSE:
  Every number entering the engine is coerced through FiniteOr so NaN and
  infinities never reach an accumulator. Monetary outputs are rounded to two
  decimals with decimal.Decimal arithmetic to avoid binary float artifacts
  (e.g. 2.675 rounding down).

ROUNDING CONTRACT:
  Rounding happens only at read/output points - once after full profit
  accumulation and again at final emission - never mid-accumulation. Round2
  is idempotent: rounding an already-rounded value is a no-op.

SEE ALSO:
  - accumulate.go, rank.go: The only callers
*/
package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// FiniteOr returns v when it is a finite number, def otherwise.
func FiniteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Round2 rounds v to two decimal places, half away from zero. Non-finite
// input rounds to zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(FiniteOr(v, 0)).Round(2).InexactFloat64()
}
