package gf2

import (
	"errors"
	"math/bits"
)

// ErrZeroDivisor is returned by the division functions when the divisor is
// the zero polynomial, whose degree is undefined.
var ErrZeroDivisor = errors.New("gf2: division by zero polynomial")

// Degree returns the degree of p, or -1 for the zero polynomial.
func Degree(p uint64) int {
	return bits.Len64(p) - 1
}

// DivMod64 computes the quotient and remainder of a divided by b over
// GF(2), so that a == Mul64(quo, b) XOR rem with Degree(rem) < Degree(b).
// It runs schoolbook long division: while the remainder's leading term is
// at or above the divisor's, cancel it with a shifted copy of the divisor
// and record the corresponding quotient bit. Each step strictly lowers the
// remainder's degree, so the loop takes at most 64 iterations.
func DivMod64(a, b uint64) (quo, rem uint64, err error) {
	if b == 0 {
		return 0, 0, ErrZeroDivisor
	}
	rem = a
	n := bits.Len64(b)
	for bits.Len64(rem) >= n {
		shift := uint(bits.Len64(rem) - n)
		quo ^= 1 << shift
		rem ^= b << shift
	}
	return quo, rem, nil
}

// Div64 returns the quotient of a divided by b over GF(2).
func Div64(a, b uint64) (uint64, error) {
	quo, _, err := DivMod64(a, b)
	return quo, err
}

// Mod64 returns the remainder of a divided by b over GF(2).
func Mod64(a, b uint64) (uint64, error) {
	_, rem, err := DivMod64(a, b)
	return rem, err
}
