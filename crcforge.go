package crcforge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/LynnColeArt/crcforge/crc"
)

// errFound stops the worker group once a verified hit exists; it never
// escapes Run.
var errFound = errors.New("crcforge: suffix found")

// Result describes a successful search.
type Result struct {
	// Suffix is the forged bytes; Message is prefix plus suffix.
	Suffix  []byte
	Message []byte

	// Checksum is the checksum of Message. It equals the requested
	// target.
	Checksum uint32

	// Index is the candidate number that produced Suffix.
	Index uint64

	// Tried counts candidates examined across all workers.
	Tried uint64

	Elapsed time.Duration
}

// Searcher brute-forces a suffix S for a fixed prefix, engine and target
// so that the checksum of prefix followed by S equals the target.
// Candidates are enumerated from index zero upward, in chunks handed out
// through a shared cursor. The configuration is immutable after
// construction; Run may be called again after it returns, but not
// concurrently with itself.
type Searcher struct {
	engine *crc.Engine
	prefix []byte
	target uint32
	opts   options

	suffixLen int
	space     uint64
	encode    func(dst []byte, i uint64)
	limiter   *rate.Limiter

	tried atomic.Uint64
}

// NewSearcher builds a Searcher over engine for the given message prefix
// and target checksum.
func NewSearcher(engine *crc.Engine, prefix []byte, target uint32, optFns ...Option) (*Searcher, error) {
	if engine == nil {
		return nil, NewInvalidArgError("NewSearcher", "nil engine")
	}

	o := applyOptions(optFns)
	if o.workers < 1 {
		return nil, NewInvalidArgError("NewSearcher", fmt.Sprintf("workers must be positive, got %d", o.workers))
	}
	if o.chunkSize < 1 {
		return nil, NewInvalidArgError("NewSearcher", fmt.Sprintf("chunk size must be positive, got %d", o.chunkSize))
	}
	if o.rateLimit < 0 {
		return nil, NewInvalidArgError("NewSearcher", fmt.Sprintf("rate limit must not be negative, got %g", o.rateLimit))
	}

	s := &Searcher{
		engine:    engine,
		prefix:    append([]byte(nil), prefix...),
		target:    target,
		opts:      o,
		suffixLen: BinarySuffixLen,
		space:     BinarySpace,
		encode:    putBinarySuffix,
	}
	if o.ascii {
		s.suffixLen = PrintableSuffixLen
		s.space = PrintableSpace
		s.encode = putPrintableSuffix
	}
	if o.rateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(o.rateLimit), o.chunkSize)
	}
	return s, nil
}

// Tried reports how many candidates have been examined so far. Safe to
// call while Run is in flight.
func (s *Searcher) Tried() uint64 {
	return s.tried.Load()
}

// deriveTarget folds the prefix and the suffix length out of the match
// condition: a suffix S satisfies Checksum(prefix++S) == target exactly
// when Checksum(S) equals the value returned here. CRC is linear over
// XOR, so padding both sides with zero bytes isolates the suffix's
// contribution.
func (s *Searcher) deriveTarget(prefixCRC uint32) uint32 {
	zeros := make([]byte, s.suffixLen)
	return s.engine.Update(prefixCRC, zeros) ^ s.target ^ s.engine.Checksum(zeros)
}

// Run enumerates candidate suffixes until one makes the full message hit
// the target checksum. It returns a NotFound error when the suffix space
// is exhausted, and a Canceled error wrapping the context's error when
// ctx ends the search first. Every hit is re-verified against the
// original target over the whole message before it is returned.
func (s *Searcher) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.tried.Store(0)

	prefixCRC := s.engine.Checksum(s.prefix)
	derived := s.deriveTarget(prefixCRC)

	logger := s.opts.logger.WithPolynomial(s.engine.Poly()).WithTarget(s.target).WithWorkers(s.opts.workers)
	logger.LogSearchStart(ctx, s.space, s.suffixLen)

	var (
		mu     sync.Mutex
		found  *Result
		cursor atomic.Uint64
	)

	g, gctx := errgroup.WithContext(ctx)

	if s.opts.progressInterval > 0 {
		// gctx ends when Wait returns, taking the ticker down with it.
		go s.logProgress(gctx, logger, start)
	}

	chunk := uint64(s.opts.chunkSize)
	for w := 0; w < s.opts.workers; w++ {
		g.Go(func() error {
			suffix := make([]byte, s.suffixLen)
			for {
				lo := cursor.Add(chunk) - chunk
				if lo >= s.space {
					return nil
				}
				hi := lo + chunk
				if hi > s.space {
					hi = s.space
				}

				if s.limiter != nil {
					if err := s.limiter.WaitN(gctx, int(hi-lo)); err != nil {
						return err
					}
				} else if err := gctx.Err(); err != nil {
					return err
				}

				for i := lo; i < hi; i++ {
					s.encode(suffix, i)
					if s.engine.Checksum(suffix) != derived {
						continue
					}
					s.tried.Add(i - lo + 1)

					res, err := s.verify(prefixCRC, suffix, i)
					if err != nil {
						return err
					}
					mu.Lock()
					if found == nil || res.Index < found.Index {
						found = res
					}
					mu.Unlock()
					return errFound
				}
				s.tried.Add(hi - lo)
			}
		})
	}

	err := g.Wait()
	elapsed := time.Since(start)

	if found != nil {
		found.Tried = s.tried.Load()
		found.Elapsed = elapsed
		logger.LogFound(ctx, found.Suffix, found.Checksum, found.Tried, elapsed)
		return found, nil
	}

	switch {
	case err == nil:
		logger.LogExhausted(ctx, s.tried.Load(), elapsed)
		return nil, NewNotFoundError("Run", fmt.Sprintf("no %d-byte suffix reaches %#010x", s.suffixLen, s.target))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return nil, NewCanceledError("Run", err)
	default:
		return nil, err
	}
}

// verify recomputes the checksum over the whole message before a hit is
// allowed out; a mismatch means the folded target derivation and the
// engine disagree.
func (s *Searcher) verify(prefixCRC uint32, suffix []byte, index uint64) (*Result, error) {
	sum := s.engine.Update(prefixCRC, suffix)
	if sum != s.target {
		return nil, NewInternalError("Run", fmt.Sprintf("candidate %d checksums to %#010x, not %#010x", index, sum, s.target))
	}

	msg := make([]byte, 0, len(s.prefix)+len(suffix))
	msg = append(msg, s.prefix...)
	msg = append(msg, suffix...)

	return &Result{
		Suffix:   append([]byte(nil), suffix...),
		Message:  msg,
		Checksum: sum,
		Index:    index,
	}, nil
}

func (s *Searcher) logProgress(ctx context.Context, logger *Logger, start time.Time) {
	ticker := time.NewTicker(s.opts.progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.LogProgress(ctx, s.Tried(), s.space, time.Since(start))
		}
	}
}
