// Package gf2 provides arithmetic on binary polynomials over GF(2).
//
// A polynomial is represented by an unsigned integer whose bit i holds the
// coefficient of x^i. Addition and subtraction are both XOR; multiplication
// is carry-less. Mul64 dispatches to the CPU carry-less multiply instruction
// (PCLMULQDQ on amd64, PMULL on arm64) when the target has one, and to a
// bit-serial portable implementation otherwise. Both paths are bit-exact for
// every input. Building with the purego tag forces the portable path on all
// architectures.
package gf2

// Mul64 returns the 128-bit carry-less product of a and b, split into low
// and high 64-bit halves. Bit k of the concatenation hi:lo is the XOR of
// all products a_i*b_j with i+j == k.
func Mul64(a, b uint64) (lo, hi uint64) {
	return mul64(a, b)
}

// Mul32 returns the 64-bit carry-less product of a and b, split into low
// and high 32-bit halves.
func Mul32(a, b uint32) (lo, hi uint32) {
	l, _ := mul64(uint64(a), uint64(b))
	return uint32(l), uint32(l >> 32)
}

// mul64Generic is the portable bit-serial multiplier and the reference
// definition the accelerated paths are verified against. The high half is
// accumulated from shifts by 63-i rather than 64-i, so no shift amount ever
// reaches the word width; the trailing halving undoes the doubling that
// scheme introduces.
func mul64Generic(a, b uint64) (lo, hi uint64) {
	for i := uint(0); i < 64; i++ {
		mask := uint64(int64(a<<(63-i)) >> 63)
		lo ^= mask & (b << i)
		hi ^= mask & (b >> (63 - i))
	}
	return lo, hi >> 1
}
