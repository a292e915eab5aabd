package crcforge

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Printable suffixes carry five significant bits per byte over the
// alphabet H..W and h..w. DEL is a control character and space close
// enough to one, so the alphabet starts at H (0x48) and uses 0x20 as the
// fifth bit, hopping over the punctuation between the cases.

// expandPrintable spreads the low 40 bits of i into eight printable
// little-endian bytes: four doubling steps walk each 5-bit group into its
// own byte, then the bias lands every byte inside the alphabet.
func expandPrintable(i uint64) uint64 {
	i = (i<<12)&0x000f_ffff_0000_0000 | i&0x0000_0000_000f_ffff
	i = (i<<6)&0x03ff_0000_03ff_0000 | i&0x0000_03ff_0000_03ff
	i = (i<<3)&0x1f00_1f00_1f00_1f00 | i&0x001f_001f_001f_001f
	i = (i<<1)&0x2020_2020_2020_2020 | i&0x0f0f_0f0f_0f0f_0f0f
	return i + 0x4848_4848_4848_4848
}

// putBinarySuffix encodes candidate index i as a 4-byte little-endian
// suffix.
func putBinarySuffix(dst []byte, i uint64) {
	binary.LittleEndian.PutUint32(dst, uint32(i))
}

// putPrintableSuffix encodes candidate index i as an 8-byte printable
// suffix.
func putPrintableSuffix(dst []byte, i uint64) {
	binary.LittleEndian.PutUint64(dst, expandPrintable(i))
}

// Escape renders data for terminal output: printable ASCII passes
// through, every other byte becomes a \xNN escape.
func Escape(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b >= 0x20 && b <= 0x7e {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, `\x%02x`, b)
		}
	}
	return sb.String()
}
