// Package kernel implements the checked, floor-rounding unsigned-integer
// arithmetic that the distribution engine performs once per investor per
// page. Everything here is pure and allocation-free so it can run in the
// hot loop of a large cohort without leaning on math/big.
package kernel

import (
	"errors"
	"math/bits"
)

// ErrArithmeticOverflow is returned whenever a floor-divided 128-bit
// intermediate product does not fit back into 64 bits, Weighted is given a
// zero total, SafeAdd overflows, or SafeSub underflows.
var ErrArithmeticOverflow = errors.New("kernel: arithmetic overflow")

const BasisPointDenominator = uint64(10000)

// BpsApply computes floor(x * bps / 10000).
func BpsApply(x uint64, bps uint64) (uint64, error) {
	return mulDiv(x, bps, BasisPointDenominator)
}

// Weighted computes floor(x * weight / total), where total must be > 0.
func Weighted(x, weight, total uint64) (uint64, error) {
	if total == 0 {
		return 0, ErrArithmeticOverflow
	}
	return mulDiv(x, weight, total)
}

// MinCap returns x, capped at cap. cap == 0 means uncapped.
func MinCap(x, cap uint64) uint64 {
	if cap == 0 || x <= cap {
		return x
	}
	return cap
}

// SafeAdd adds a and b, failing on overflow.
func SafeAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

// SafeSub subtracts b from a, failing on underflow.
func SafeSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrArithmeticOverflow
	}
	return diff, nil
}

// mulDiv computes floor(a * b / c) using a 128-bit intermediate product, so
// that a*b never truncates before the division is applied. c must be > 0.
func mulDiv(a, b, c uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo / c, nil
	}
	if hi >= c {
		// The quotient would not fit in 64 bits.
		return 0, ErrArithmeticOverflow
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo, nil
}
