// Package batcher provides a generic ordered batch writer with rate limiting.
package batcher

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher collects items and hands them to a flush callback in batches of
// at most flushSize, in insertion order. Items of a failed flush stay
// queued so the next Flush retries them. A Batcher is not safe for
// concurrent use.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	flushSize     int
	rl            ratelimit.Limiter
	logger        *zap.Logger

	buf []T
}

// New constructs a Batcher. rps limits flush calls per second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize, rps int) (*Batcher[T], error) {
	if flushCallback == nil {
		return nil, errors.New("flush callback is required")
	}
	if flushSize <= 0 {
		return nil, fmt.Errorf("flush size must be positive, got %d", flushSize)
	}
	if rps <= 0 {
		return nil, fmt.Errorf("rps must be positive, got %d", rps)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		flushSize:     flushSize,
		rl:            ratelimit.New(rps),
		buf:           make([]T, 0, flushSize),
	}, nil
}

// Add queues items and flushes every full batch.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	b.buf = append(b.buf, items...)
	for len(b.buf) >= b.flushSize {
		if err := b.flushN(ctx, b.flushSize); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes everything queued.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	for len(b.buf) > 0 {
		n := min(len(b.buf), b.flushSize)
		if err := b.flushN(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the number of queued items.
func (b *Batcher[T]) Pending() int {
	return len(b.buf)
}

// Reset drops queued items.
func (b *Batcher[T]) Reset() {
	b.buf = b.buf[:0]
}

func (b *Batcher[T]) flushN(ctx context.Context, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.rl.Take()
	if err := b.flushCallback(ctx, b.buf[:n]); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", n), zap.Int("pending", len(b.buf)), zap.Error(err))
		return err
	}
	b.logger.Debug("batch flushed", zap.Int("size", n))
	rest := copy(b.buf, b.buf[n:])
	var zero T
	for i := rest; i < len(b.buf); i++ {
		b.buf[i] = zero
	}
	b.buf = b.buf[:rest]
	return nil
}
