//go:build !purego

package gf2

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// darwin does not expose hwcaps; every Apple Silicon core has the crypto
// extension that carries PMULL.
var hasPMULL = cpu.ARM64.HasPMULL || runtime.GOOS == "darwin"

// pmull is implemented in mul_arm64.s using PMULL.
//
//go:noescape
func pmull(a, b uint64) (lo, hi uint64)

func mul64(a, b uint64) (lo, hi uint64) {
	if hasPMULL {
		return pmull(a, b)
	}
	return mul64Generic(a, b)
}

// Accelerated reports whether Mul64 executes on a carry-less multiply
// instruction on this host.
func Accelerated() bool {
	return hasPMULL
}

// Path names the multiplier implementation in use: "pmull" or "generic".
func Path() string {
	if hasPMULL {
		return "pmull"
	}
	return "generic"
}
