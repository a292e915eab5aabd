package crcforge

import (
	"time"

	"github.com/LynnColeArt/crcforge/crc"
)

// Search defaults
const (
	// DefaultGenerator is the polynomial used when callers do not pick
	// one (CRC-32C).
	DefaultGenerator = crc.Castagnoli

	// DefaultChunkSize is the number of candidate indices a worker claims
	// from the shared cursor per round. Large enough to amortize the
	// atomic handout, small enough to keep cancellation responsive.
	DefaultChunkSize = 1 << 16

	// DefaultProgressInterval is how often a running search reports its
	// position when progress logging is enabled.
	DefaultProgressInterval = 10 * time.Second
)

// Suffix geometry
const (
	// BinarySuffixLen is the suffix width when every byte value is
	// allowed: one 32-bit word.
	BinarySuffixLen = 4

	// BinarySpace is the number of candidate binary suffixes.
	BinarySpace = 1 << 32

	// PrintableSuffixLen is the suffix width in printable mode: eight
	// bytes carrying five significant bits each.
	PrintableSuffixLen = 8

	// PrintableSpace is the number of candidate printable suffixes.
	PrintableSpace = 1 << 40
)
