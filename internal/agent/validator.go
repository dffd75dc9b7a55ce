package agent

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"go.uber.org/zap"
)

const defaultEndorseWindow = 12

// ValidatorConfig tunes the validator.
type ValidatorConfig struct {
	Account model.Account
	// Window is how many heights above the irreversible one are endorsed.
	Window       uint64
	PollInterval time.Duration
	ErrorSleep   time.Duration
	// BlockSignal, when set, ends a poll wait as soon as the node has a new block.
	BlockSignal <-chan struct{}
}

// Validator endorses the node's best chain.
type Validator struct {
	loop
	node   Node
	bridge ValidatorBridge
	cfg    ValidatorConfig
}

func NewValidator(node Node, bridge ValidatorBridge, metrics Metrics, cfg ValidatorConfig, logger *zap.Logger) (*Validator, error) {
	if node == nil {
		return nil, errors.New("validator node is required")
	}
	if bridge == nil {
		return nil, errors.New("validator bridge is required")
	}
	if cfg.Account == "" {
		return nil, errors.New("validator account is required")
	}
	l, err := newLoop(metrics, cfg.ErrorSleep, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Window == 0 {
		cfg.Window = defaultEndorseWindow
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	l.logger = l.logger.With(zap.String("validator", string(cfg.Account)))
	l.signal = cfg.BlockSignal
	return &Validator{loop: l, node: node, bridge: bridge, cfg: cfg}, nil
}

// Run endorses until the context is canceled.
func (v *Validator) Run(ctx context.Context) error {
	return v.loop.run(ctx, v.run)
}

func (v *Validator) run(ctx context.Context) error {
	started := time.Now()
	st, err := v.bridge.ChainState(ctx)
	v.observe("chain_state", started, err)
	if err != nil {
		return err
	}
	if st.IrreversibleHeight == 0 {
		return v.wait(ctx, v.cfg.PollInterval)
	}

	tip, err := nodeTip(v.node)
	if err != nil {
		return err
	}
	to := min(tip, st.IrreversibleHeight+v.cfg.Window)

	for height := st.IrreversibleHeight + 1; height <= to; height++ {
		proceed, err := v.endorse(ctx, height)
		if err != nil {
			return err
		}
		if !proceed {
			break
		}
	}
	return v.wait(ctx, v.cfg.PollInterval)
}

func (v *Validator) endorse(ctx context.Context, height uint64) (bool, error) {
	hash, err := blockHash(v.node, height)
	if err != nil {
		return false, err
	}
	logger := v.logger.With(zap.Uint64("height", height), zap.Stringer("hash", hash))

	rec, err := v.bridge.Endorsement(ctx, height, hash)
	switch {
	case err == nil && endorsedBy(rec, v.cfg.Account):
		return true, nil
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return false, err
	}

	started := time.Now()
	rec, err = v.bridge.Endorse(ctx, height, hash)
	v.observe("endorse", started, err)
	switch {
	case err == nil:
		logger.Info("endorsed", zap.Int("endorsed", len(rec.Endorsed)), zap.Int("threshold", rec.Threshold()), zap.Bool("quorum", rec.QuorumReached))
		return true, nil
	case errors.Is(err, model.ErrStalled):
		logger.Debug("endorsement window not open", zap.Error(err))
		return false, nil
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrUnauthorized):
		logger.Warn("endorsement rejected", zap.Error(err))
		return true, nil
	default:
		return false, err
	}
}

func endorsedBy(rec *model.EndorsementRecord, account model.Account) bool {
	for _, vs := range rec.Endorsed {
		if vs.Account == account {
			return true
		}
	}
	return false
}
