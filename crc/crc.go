// Package crc implements a CRC-32-family checksum engine on top of
// carry-less multiplication.
//
// Instead of lookup tables, an Engine folds input into the running checksum
// with Barret reduction: two polynomial multiplies replace the 32 single-bit
// reduction steps a 4-byte word would otherwise need. The generator
// polynomial is configurable, so the engine covers the whole reflected
// CRC-32 family (all-ones entry and exit inversion, least-significant-bit
// first), not just the Ethernet polynomial.
package crc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/LynnColeArt/crcforge/gf2"
)

// Well-known generator polynomials in the 33-bit convention: bit 32 carries
// the implicit x^32 term, bits 31..0 the rest.
const (
	// IEEE is the most common CRC-32 generator (Ethernet, gzip, zip, PNG).
	IEEE uint64 = 0x1_04c11db7

	// Castagnoli has better error-detection properties than IEEE and a
	// dedicated instruction on SSE4.2 and ARMv8 (iSCSI, Btrfs, ext4).
	Castagnoli uint64 = 0x1_1edc6f41

	// Koopman is favored in embedded networks for its Hamming distance
	// profile at small message sizes.
	Koopman uint64 = 0x1_741b8cd7
)

// ErrPolynomialTooWide is returned by New for generators above degree 32.
var ErrPolynomialTooWide = errors.New("crc: generator polynomial wider than degree 32")

// Engine computes reflected CRC-32 checksums for one generator polynomial.
// It is immutable after construction and safe for concurrent use; the
// running checksum lives entirely in the caller's hands.
type Engine struct {
	poly     uint64 // generator, implicit x^32 coefficient at bit 32
	recip    uint32 // Barret reciprocal, the low half of x^64 div poly
	polyRev  uint32 // bit-reversed low 32 bits of poly
	recipRev uint32 // bit-reversed recip
}

// New returns an Engine for the generator polynomial poly, supplied in the
// 33-bit convention (the canonical IEEE generator is 0x104c11db7). The
// Barret reciprocal and the bit-reversed folding constants are derived here
// once, by polynomial long division. The zero polynomial has no defined
// division and is rejected, as is any value wider than 33 significant bits.
// Generators whose bit 32 is clear are accepted but produce the reflected
// convention of whatever polynomial was actually supplied.
func New(poly uint64) (*Engine, error) {
	if bits.Len64(poly) > 33 {
		return nil, fmt.Errorf("%w: %#x", ErrPolynomialTooWide, poly)
	}
	recip, err := gf2.Div64(poly<<32, poly)
	if err != nil {
		return nil, fmt.Errorf("crc: %w", err)
	}
	return &Engine{
		poly:     poly,
		recip:    uint32(recip),
		polyRev:  bits.Reverse32(uint32(poly)),
		recipRev: bits.Reverse32(uint32(recip)),
	}, nil
}

// Poly returns the generator polynomial the engine was built from.
func (e *Engine) Poly() uint64 {
	return e.poly
}

func (e *Engine) String() string {
	return fmt.Sprintf("crc.Engine(%#x)", e.poly)
}

// Update extends the running checksum crc with data and returns the new
// value. Updates chain over concatenation: for any split of an input,
// Update(Update(seed, a), b) == Update(seed, a followed by b). The all-ones
// inversion is applied on entry and exit of every call, which keeps single
// calls standard and chained calls consistent.
func (e *Engine) Update(crc uint32, data []byte) uint32 {
	crc = ^crc

	for len(data) >= 4 {
		crc ^= binary.LittleEndian.Uint32(data)
		crc = e.reduce(crc)
		data = data[4:]
	}
	for _, b := range data {
		crc ^= uint32(b)
		crc = crc>>8 ^ e.reduce(crc<<24)
	}

	return ^crc
}

// Checksum returns the checksum of data, equivalent to Update(0, data).
func (e *Engine) Checksum(data []byte) uint32 {
	return e.Update(0, data)
}

// reduce folds the reflected 32-bit value v back into the field: one
// carry-less multiply by the reflected reciprocal estimates the quotient,
// a second by the reflected generator cancels it out. The reflected
// products sit one bit below their natural position, hence the single-bit
// shifts that merge the halves.
func (e *Engine) reduce(v uint32) uint32 {
	lo, _ := gf2.Mul32(v, e.recipRev)
	lo, hi := gf2.Mul32(lo<<1^v, e.polyRev)
	return hi<<1 | lo>>31
}
