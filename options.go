package crcforge

import (
	"log/slog"
	"runtime"
	"time"
)

type options struct {
	ascii            bool
	workers          int
	chunkSize        int
	rateLimit        float64
	progressInterval time.Duration
	logger           *Logger
}

// Option configures a Searcher.
type Option func(*options)

// WithASCII restricts candidate suffixes to printable characters. The
// suffix widens from four bytes to eight, and the search space grows from
// 2^32 to 2^40 indices.
func WithASCII(ascii bool) Option {
	return func(o *options) {
		o.ascii = ascii
	}
}

// WithWorkers sets the number of goroutines enumerating candidates.
// Defaults to GOMAXPROCS. With a single worker the lowest matching suffix
// is returned; with more, the first verified hit wins.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithChunkSize sets how many candidate indices a worker claims from the
// shared cursor at a time.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithRateLimit caps candidate throughput per second across all workers.
// Zero means unlimited.
func WithRateLimit(perSecond float64) Option {
	return func(o *options) {
		o.rateLimit = perSecond
	}
}

// WithProgressInterval sets how often a running search logs its position.
// Zero disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithLogger configures structured logging for the search.
// If nil is passed, the no-op logger is kept.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		chunkSize:        DefaultChunkSize,
		progressInterval: DefaultProgressInterval,
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
