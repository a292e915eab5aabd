package crcforge

import (
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsDefaults(t *testing.T) {
	o := applyOptions(nil)

	assert.False(t, o.ascii)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)
	assert.Equal(t, DefaultChunkSize, o.chunkSize)
	assert.Zero(t, o.rateLimit)
	assert.Equal(t, DefaultProgressInterval, o.progressInterval)
	assert.NotNil(t, o.logger)
}

func TestApplyOptionsOverrides(t *testing.T) {
	logger := NewTextLogger(slog.LevelDebug)
	o := applyOptions([]Option{
		WithASCII(true),
		WithWorkers(3),
		WithChunkSize(128),
		WithRateLimit(50),
		WithProgressInterval(time.Second),
		WithLogger(logger),
		nil, // ignored
	})

	assert.True(t, o.ascii)
	assert.Equal(t, 3, o.workers)
	assert.Equal(t, 128, o.chunkSize)
	assert.Equal(t, 50.0, o.rateLimit)
	assert.Equal(t, time.Second, o.progressInterval)
	assert.Same(t, logger, o.logger)
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil)})
	assert.NotNil(t, o.logger)
}

func TestWithLogLevel(t *testing.T) {
	o := applyOptions([]Option{WithLogLevel(slog.LevelDebug)})
	assert.True(t, o.logger.Enabled(context.Background(), slog.LevelDebug))
}
