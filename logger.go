package crcforge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with search-specific field helpers so all
// components report progress under consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs
// to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs
// to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPolynomial adds the generator polynomial to the logger.
func (l *Logger) WithPolynomial(poly uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("polynomial", fmt.Sprintf("%#x", poly)),
	}
}

// WithTarget adds the target checksum to the logger.
func (l *Logger) WithTarget(target uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("target", fmt.Sprintf("%#010x", target)),
	}
}

// WithWorkers adds the worker count to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogSearchStart logs the beginning of a suffix search.
func (l *Logger) LogSearchStart(ctx context.Context, space uint64, suffixLen int) {
	l.InfoContext(ctx, "search started",
		"space", space,
		"suffix_len", suffixLen,
	)
}

// LogProgress logs how far a running search has come.
func (l *Logger) LogProgress(ctx context.Context, tried, space uint64, elapsed time.Duration) {
	l.InfoContext(ctx, "search progress",
		"tried", tried,
		"space", space,
		"percent", fmt.Sprintf("%.2f", float64(tried)/float64(space)*100),
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
}

// LogFound logs a verified hit.
func (l *Logger) LogFound(ctx context.Context, suffix []byte, checksum uint32, tried uint64, elapsed time.Duration) {
	l.InfoContext(ctx, "suffix found",
		"suffix", Escape(suffix),
		"checksum", fmt.Sprintf("%#010x", checksum),
		"tried", tried,
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
}

// LogExhausted logs a search that ran out of candidates without a match.
func (l *Logger) LogExhausted(ctx context.Context, tried uint64, elapsed time.Duration) {
	l.WarnContext(ctx, "suffix space exhausted",
		"tried", tried,
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
}
