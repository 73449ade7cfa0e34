// Package money converts between decimal amounts and integer cents.
//
// All ledger arithmetic is done in cents. Decimal values only appear at the
// edges (storage rows, wire messages) and are rounded half-to-even when they
// are turned into cents.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept for every amount.
const Places = 2

// MaxAmount is the largest single amount (expense, share or payment) accepted.
const MaxAmount = 1_000_000_000_000

// MaxCents bounds every sum kept in cents. Up to this value a cent count
// converts to float64 and back without loss.
const MaxCents int64 = 1 << 53

var (
	ErrNotFinite   = errors.New("amount is not a finite number")
	ErrOutOfRange  = errors.New("amount out of range")
	ErrSumOverflow = errors.New("sum of amounts out of range")
)

// FromFloat converts a decimal amount to cents using banker's rounding.
// v must be finite; use Parse for amounts that have not been checked.
//
// Examples:
//
//	FromFloat(12.34)  -> 1234
//	FromFloat(0.125)  -> 12 (half to even)
//	FromFloat(0.135)  -> 14
//	FromFloat(-3.335) -> -334
func FromFloat(v float64) int64 {
	return decimal.NewFromFloat(v).RoundBank(Places).Shift(Places).IntPart()
}

// Parse converts a single amount to cents like FromFloat, rejecting NaN,
// infinities and anything larger than MaxAmount in magnitude.
func Parse(v float64) (int64, error) {
	return parse(v, MaxAmount*100)
}

// ParseTotal is Parse for accumulated values such as balances, which may
// exceed MaxAmount but not MaxCents.
func ParseTotal(v float64) (int64, error) {
	return parse(v, MaxCents)
}

func parse(v float64, limitCents int64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	if math.Abs(v) > float64(limitCents)/100 {
		return 0, fmt.Errorf("%w: %.2f exceeds %s", ErrOutOfRange, v, Format(limitCents))
	}
	return FromFloat(v), nil
}

// Add returns a+b, or ErrSumOverflow when the result leaves [-MaxCents, MaxCents].
// Both operands must already be within that range.
func Add(a, b int64) (int64, error) {
	sum := a + b
	if sum > MaxCents || sum < -MaxCents {
		return 0, ErrSumOverflow
	}
	return sum, nil
}

// ToFloat converts cents back to a decimal amount.
func ToFloat(cents int64) float64 {
	return decimal.New(cents, -Places).InexactFloat64()
}

// DivideBankers divides an amount in cents by n and rounds the quotient
// half-to-even to the nearest cent. It returns 0 when n <= 0.
func DivideBankers(cents int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	q := decimal.New(cents, 0).DivRound(decimal.NewFromInt(int64(n)), 8)
	return q.RoundBank(0).IntPart()
}

// Format renders cents with exactly two decimals, e.g. "12.30" or "-0.05".
func Format(cents int64) string {
	return decimal.New(cents, -Places).StringFixed(Places)
}

// Abs returns the absolute value of an amount in cents.
func Abs(cents int64) int64 {
	if cents < 0 {
		return -cents
	}
	return cents
}
