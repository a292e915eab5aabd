//go:build (!amd64 && !arm64) || purego

package gf2

func mul64(a, b uint64) (lo, hi uint64) {
	return mul64Generic(a, b)
}

// Accelerated reports whether Mul64 executes on a carry-less multiply
// instruction on this host. Always false for this build.
func Accelerated() bool {
	return false
}

// Path names the multiplier implementation in use.
func Path() string {
	return "generic"
}
