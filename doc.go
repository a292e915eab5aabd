// Package crcforge forges message suffixes that drive a CRC-32 checksum
// to a chosen value.
//
// The module is layered. Package gf2 provides carry-less polynomial
// multiplication, on hardware where the instruction exists and in portable
// bit-serial form everywhere. Package crc builds a Barret-reduction
// checksum engine on top of it, configurable by generator polynomial.
// This root package closes the loop: given a message prefix and a target
// checksum, a Searcher enumerates candidate suffixes in parallel until the
// full message checksums to the target.
//
// CRC is linear over XOR, so the search never hashes the prefix more than
// once: the target is folded into an equivalent condition on the suffix
// alone, and each candidate costs a single four- or eight-byte checksum.
// Candidates are either raw 32-bit words or eight printable characters
// drawn from a 40-bit index.
//
//	engine, err := crc.New(crcforge.DefaultGenerator)
//	...
//	s, err := crcforge.NewSearcher(engine, []byte("hello "), 0x12345678)
//	...
//	res, err := s.Run(ctx)
//	// res.Message now checksums to 0x12345678.
package crcforge
