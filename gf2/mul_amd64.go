//go:build !purego

package gf2

import (
	"golang.org/x/sys/cpu"
)

var hasCLMUL = cpu.X86.HasPCLMULQDQ

// clmul is implemented in mul_amd64.s using PCLMULQDQ.
//
//go:noescape
func clmul(a, b uint64) (lo, hi uint64)

func mul64(a, b uint64) (lo, hi uint64) {
	if hasCLMUL {
		return clmul(a, b)
	}
	return mul64Generic(a, b)
}

// Accelerated reports whether Mul64 executes on a carry-less multiply
// instruction on this host.
func Accelerated() bool {
	return hasCLMUL
}

// Path names the multiplier implementation in use: "pclmulqdq" or
// "generic".
func Path() string {
	if hasCLMUL {
		return "pclmulqdq"
	}
	return "generic"
}
