package agent

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultAdvanceBudget  = 4096
	defaultCallsPerSecond = 5
)

// SynchronizerConfig tunes the synchronizer.
type SynchronizerConfig struct {
	Budget         uint64
	CallsPerSecond int
	IdleSleep      time.Duration
	ErrorSleep     time.Duration
	// ClaimRewards claims earned rewards whenever a block became irreversible.
	ClaimRewards bool
}

// Synchronizer advances the chain-state machine with a bounded budget per call.
type Synchronizer struct {
	loop
	bridge  SynchronizerBridge
	cfg     SynchronizerConfig
	limiter ratelimit.Limiter

	last model.AdvanceResult
}

func NewSynchronizer(bridge SynchronizerBridge, metrics Metrics, cfg SynchronizerConfig, logger *zap.Logger) (*Synchronizer, error) {
	if bridge == nil {
		return nil, errors.New("synchronizer bridge is required")
	}
	l, err := newLoop(metrics, cfg.ErrorSleep, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Budget == 0 {
		cfg.Budget = defaultAdvanceBudget
	}
	if cfg.CallsPerSecond <= 0 {
		cfg.CallsPerSecond = defaultCallsPerSecond
	}
	if cfg.IdleSleep <= 0 {
		cfg.IdleSleep = defaultPollInterval
	}
	return &Synchronizer{
		loop:    l,
		bridge:  bridge,
		cfg:     cfg,
		limiter: ratelimit.New(cfg.CallsPerSecond),
	}, nil
}

// Run advances until the context is canceled.
func (s *Synchronizer) Run(ctx context.Context) error {
	return s.loop.run(ctx, s.run)
}

func (s *Synchronizer) run(ctx context.Context) error {
	s.limiter.Take()
	started := time.Now()
	res, err := s.bridge.AdvanceChainState(ctx, s.cfg.Budget)
	s.observe("advance", started, err)
	if errors.Is(err, model.ErrStalled) {
		s.logger.Debug("another parser owns the block", zap.Error(err))
		return s.sleep(ctx, s.cfg.IdleSleep)
	}
	if err != nil {
		return err
	}

	prev := s.last
	s.last = res
	if migrated(prev, res) {
		s.logger.Info("block became irreversible", zap.Stringer("phase", res.Phase), zap.Uint64("height", res.Height))
		if s.cfg.ClaimRewards {
			s.claim(ctx)
		}
	}
	if res.Phase == model.PhaseWaiting || res == prev {
		return s.sleep(ctx, s.cfg.IdleSleep)
	}
	return nil
}

func (s *Synchronizer) claim(ctx context.Context) {
	started := time.Now()
	amount, err := s.bridge.ClaimReward(ctx)
	if errors.Is(err, model.ErrInvalidInput) {
		// nothing earned
		err = nil
	}
	s.observe("claim_reward", started, err)
	if err != nil {
		s.logger.Warn("claim reward failed", zap.Error(err))
		return
	}
	if amount > 0 {
		s.logger.Info("reward claimed", zap.Uint64("amount", amount))
	}
}

func migrating(p model.Phase) bool {
	return p == model.PhaseMigrating || p == model.PhasePruning || p == model.PhaseDistributingRewards
}

// migrated reports whether the irreversible height moved between two results.
func migrated(prev, res model.AdvanceResult) bool {
	if migrating(prev.Phase) {
		return !migrating(res.Phase)
	}
	return prev.Phase == model.PhaseWaiting && res.Phase == model.PhaseWaiting &&
		prev.Height != 0 && res.Height > prev.Height
}
