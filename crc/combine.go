package crc

// matTimes multiplies the 32x32 GF(2) matrix mat by the column vector vec.
// Column n of the matrix is mat[n].
func matTimes(mat *[32]uint32, vec uint32) uint32 {
	var sum uint32
	for n := 0; vec != 0; n++ {
		if vec&1 != 0 {
			sum ^= mat[n]
		}
		vec >>= 1
	}
	return sum
}

// matSquare sets dst to mat*mat.
func matSquare(dst, mat *[32]uint32) {
	for n := range dst {
		dst[n] = matTimes(mat, mat[n])
	}
}

// Combine returns the checksum of a concatenation from the checksums of its
// two parts: given crc1 over the first part and crc2 over a second part of
// len2 bytes, the result equals the checksum over both parts back to back.
// The inversion constants cancel, so only the zeros operator of the
// engine's generator is needed: advancing a checksum past len2 zero bytes
// is a linear map, built here by squaring the one-zero-bit matrix and
// applying one factor per set bit of len2. Runs in O(log len2) matrix
// squarings with no dependence on the data.
func (e *Engine) Combine(crc1, crc2 uint32, len2 int64) uint32 {
	if len2 <= 0 {
		return crc1
	}

	var even, odd [32]uint32

	// Operator advancing the register by one zero bit: bit 0 folds into
	// the reflected generator, every other bit shifts down one place.
	odd[0] = e.polyRev
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}

	// Square to two zero bits, then four.
	matSquare(&even, &odd)
	matSquare(&odd, &even)

	// The first squaring below reaches eight zero bits, one full byte, so
	// the matrices walk the bits of the byte length from there.
	for {
		matSquare(&even, &odd)
		if len2&1 != 0 {
			crc1 = matTimes(&even, crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}

		matSquare(&odd, &even)
		if len2&1 != 0 {
			crc1 = matTimes(&odd, crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}
	}

	return crc1 ^ crc2
}
