package crcforge

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LynnColeArt/crcforge/crc"
)

func testEngine(t *testing.T) *crc.Engine {
	t.Helper()
	engine, err := crc.New(DefaultGenerator)
	require.NoError(t, err)
	return engine
}

// plantBinaryTarget returns the target checksum whose only matching 4-byte
// suffix is the encoding of index. Uniqueness holds because a fixed-length
// CRC over a generator with a constant term is a bijection of the data
// word.
func plantBinaryTarget(engine *crc.Engine, prefix []byte, index uint64) uint32 {
	suffix := make([]byte, BinarySuffixLen)
	putBinarySuffix(suffix, index)
	return engine.Update(engine.Checksum(prefix), suffix)
}

func TestSearcherFindsPlantedSuffix(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name   string
		prefix []byte
		index  uint64
	}{
		{"index_zero", []byte("hello crc32 "), 0},
		{"index_one", []byte("hello crc32 "), 1},
		{"mid_chunk", []byte("hello crc32 "), 4242},
		{"across_chunks", []byte("hello crc32 "), 100000},
		{"empty_prefix", nil, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := plantBinaryTarget(engine, tc.prefix, tc.index)

			s, err := NewSearcher(engine, tc.prefix, target, WithWorkers(1))
			require.NoError(t, err)

			res, err := s.Run(context.Background())
			require.NoError(t, err)

			// One worker scans upward and the match is unique, so the
			// planted index is exactly what comes back.
			assert.Equal(t, tc.index, res.Index)
			assert.Equal(t, tc.index+1, res.Tried)
			assert.Equal(t, res.Tried, s.Tried())
			assert.Equal(t, target, res.Checksum)
			assert.Equal(t, target, engine.Checksum(res.Message))
			assert.Equal(t, string(tc.prefix)+string(res.Suffix), string(res.Message))
			assert.Len(t, res.Suffix, BinarySuffixLen)
		})
	}
}

func TestSearcherParallel(t *testing.T) {
	engine := testEngine(t)
	prefix := []byte("parallel search")
	target := plantBinaryTarget(engine, prefix, 300000)

	s, err := NewSearcher(engine, prefix, target, WithWorkers(4), WithChunkSize(1024))
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(300000), res.Index)
	assert.Equal(t, target, engine.Checksum(res.Message))
}

func TestSearcherASCII(t *testing.T) {
	engine := testEngine(t)
	prefix := []byte("printable ")

	suffix := make([]byte, PrintableSuffixLen)
	putPrintableSuffix(suffix, 12345)
	target := engine.Update(engine.Checksum(prefix), suffix)

	s, err := NewSearcher(engine, prefix, target, WithASCII(true), WithWorkers(2), WithChunkSize(4096))
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, target, engine.Checksum(res.Message))
	assert.Len(t, res.Suffix, PrintableSuffixLen)
	for _, b := range res.Suffix {
		assert.True(t, b >= 'H' && b <= 'W' || b >= 'h' && b <= 'w',
			"suffix byte %#x outside the printable alphabet", b)
	}
}

func TestSearcherCanceled(t *testing.T) {
	engine := testEngine(t)
	prefix := []byte("slow")

	// The only matching suffix sits at the very top of the space; the
	// deadline fires long before any realistic scan reaches it.
	target := plantBinaryTarget(engine, prefix, BinarySpace-1)

	s, err := NewSearcher(engine, prefix, target, WithWorkers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	res, err := s.Run(ctx)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, IsCanceled(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearcherCanceledBeforeStart(t *testing.T) {
	engine := testEngine(t)

	s, err := NewSearcher(engine, []byte("never runs"), 0x12345678, WithWorkers(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, IsCanceled(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearcherRateLimited(t *testing.T) {
	engine := testEngine(t)
	prefix := []byte("throttled")
	target := plantBinaryTarget(engine, prefix, 5)

	s, err := NewSearcher(engine, prefix, target,
		WithWorkers(1), WithChunkSize(64), WithRateLimit(1e6))
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Index)
}

func TestNewSearcherInvalid(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name string
		run  func() (*Searcher, error)
	}{
		{"nil_engine", func() (*Searcher, error) {
			return NewSearcher(nil, nil, 0)
		}},
		{"zero_workers", func() (*Searcher, error) {
			return NewSearcher(engine, nil, 0, WithWorkers(0))
		}},
		{"negative_chunk", func() (*Searcher, error) {
			return NewSearcher(engine, nil, 0, WithChunkSize(-1))
		}},
		{"negative_rate", func() (*Searcher, error) {
			return NewSearcher(engine, nil, 0, WithRateLimit(-2))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.run()
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, IsInvalidArg(err))
		})
	}
}

// TestDeriveTargetMatchesCombine cross-checks the zero-padding derivation
// against the zeros-operator matrix: advancing the prefix checksum past
// len(S) zero bytes must land on the same folded target.
func TestDeriveTargetMatchesCombine(t *testing.T) {
	engine := testEngine(t)
	rng := rand.New(rand.NewSource(41))

	for i := 0; i < 50; i++ {
		prefix := make([]byte, rng.Intn(40))
		rng.Read(prefix)
		target := rng.Uint32()

		for _, ascii := range []bool{false, true} {
			s, err := NewSearcher(engine, prefix, target, WithASCII(ascii))
			require.NoError(t, err)

			prefixCRC := engine.Checksum(prefix)
			want := engine.Combine(prefixCRC, 0, int64(s.suffixLen)) ^ target
			assert.Equal(t, want, s.deriveTarget(prefixCRC))
		}
	}
}

func BenchmarkSearcher(b *testing.B) {
	engine, err := crc.New(DefaultGenerator)
	if err != nil {
		b.Fatal(err)
	}
	prefix := []byte("bench")
	target := plantBinaryTarget(engine, prefix, 1<<18)

	s, err := NewSearcher(engine, prefix, target, WithWorkers(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
