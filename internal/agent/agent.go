// Package agent holds the off-chain loops that keep the bridge moving: the
// relayer uploads blocks from bitcoind, the synchronizer advances the
// chain-state machine and the validator endorses the node's best chain.
package agent

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/clock"
	"github.com/goodnatureofminers/btcbridge-backend/internal/transport"
	"go.uber.org/zap"
)

var (
	_ RelayerBridge      = (*transport.Client)(nil)
	_ SynchronizerBridge = (*transport.Client)(nil)
	_ ValidatorBridge    = (*transport.Client)(nil)
	_ AdminBridge        = (*transport.Client)(nil)
)

const (
	defaultPollInterval = 10 * time.Second
	defaultErrorSleep   = 5 * time.Second
	maxErrorSleep       = 2 * time.Minute
)

// loop is the shared Run skeleton: iterate, back off on failure.
type loop struct {
	logger     *zap.Logger
	metrics    Metrics
	sleep      func(context.Context, time.Duration) error
	errorSleep time.Duration
	// signal wakes an idle wait early, e.g. on a new node block
	signal <-chan struct{}
}

func newLoop(metrics Metrics, errorSleep time.Duration, logger *zap.Logger) (loop, error) {
	if metrics == nil {
		return loop{}, errors.New("agent metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if errorSleep <= 0 {
		errorSleep = defaultErrorSleep
	}
	return loop{
		logger:  logger,
		metrics: metrics,
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.Sleep(ctx, nil, d)
		},
		errorSleep: errorSleep,
	}, nil
}

func (l loop) run(ctx context.Context, iterate func(context.Context) error) error {
	backoff := l.errorSleep
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := iterate(ctx)
		if err == nil {
			backoff = l.errorSleep
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch {
		case errors.Is(err, model.ErrInvariant):
			l.logger.Error("bridge reported an invariant violation", zap.Error(err), zap.Duration("sleep", backoff))
		case transport.IsRetryable(err):
			l.logger.Info("iteration will be retried", zap.Error(err), zap.Duration("sleep", backoff))
		default:
			l.logger.Warn("iteration failed", zap.Error(err), zap.Duration("sleep", backoff))
		}
		if sleepErr := l.sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
		backoff = clock.Backoff(backoff, maxErrorSleep)
	}
}

func (l loop) wait(ctx context.Context, d time.Duration) error {
	if l.signal == nil {
		return l.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.signal:
		return nil
	case <-timer.C:
		return nil
	}
}

func (l loop) observe(step string, started time.Time, err error) {
	l.metrics.ObserveStep(step, err, started)
}
