package crc

import (
	"encoding/binary"
	"hash"
)

// Size is the number of bytes a checksum occupies.
const Size = 4

// digest adapts an Engine to the hash.Hash32 interface so it can stand in
// for hash/crc32 in streaming code. Because updates chain over
// concatenation, any sequence of Writes sums to the same value as a single
// Checksum over the whole input.
type digest struct {
	engine *Engine
	crc    uint32
}

// Hash returns a streaming hash.Hash32 over the engine's generator. The
// returned hash is not safe for concurrent use; the engine behind it is.
func (e *Engine) Hash() hash.Hash32 {
	return &digest{engine: e}
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() {
	d.crc = 0
}

func (d *digest) Write(p []byte) (int, error) {
	d.crc = d.engine.Update(d.crc, p)
	return len(p), nil
}

// Sum appends the checksum to b in big-endian order without disturbing the
// running state.
func (d *digest) Sum(b []byte) []byte {
	var tmp [Size]byte
	binary.BigEndian.PutUint32(tmp[:], d.crc)
	return append(b, tmp[:]...)
}

func (d *digest) Sum32() uint32 {
	return d.crc
}

var _ hash.Hash32 = (*digest)(nil)
