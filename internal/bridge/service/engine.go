// Package service wires the bridge components over one state file and runs every
// command as a single atomic transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/chainstate"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/endorse"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/ledger"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/upload"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/verifier"
	"go.uber.org/zap"
)

var (
	_ upload.SlotRegistry      = (*ledger.Registry)(nil)
	_ verifier.MinerResolver   = (*ledger.Registry)(nil)
	_ chainstate.MinerRegistry = (*ledger.Registry)(nil)
	_ chainstate.RewardLedger  = (*ledger.Rewards)(nil)
	_ endorse.StakeRegistry    = (*ledger.Stakes)(nil)
	_ endorse.FinalitySink     = (*chainstate.Machine)(nil)
	_ verifier.ChainState      = (*chainstate.Machine)(nil)
	_ chainstate.BlockReader   = (*upload.Manager)(nil)
)

// Engine is the bridge command surface.
type Engine struct {
	cfg      model.Config
	db       *store.DB
	uploads  *upload.Manager
	verifier *verifier.Verifier
	gadget   *endorse.Gadget
	machine  *chainstate.Machine
	fees     *ledger.Fees
	stakes   *ledger.Stakes
	rewards  *ledger.Rewards
	registry *ledger.Registry
	metrics  Metrics
	logger   *zap.Logger
}

// New builds an Engine over db. A nil prices map uses ledger.DefaultPrices.
func New(cfg model.Config, db *store.DB, prices ledger.Prices, metrics Metrics, clk clock.Clock, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if db == nil {
		return nil, errors.New("store is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}

	e := &Engine{cfg: cfg, db: db, metrics: metrics, logger: logger}
	e.fees = ledger.NewFees(prices, clk, logger.Named("fees"))
	e.stakes = ledger.NewStakes(clk, logger.Named("stakes"))
	e.rewards = ledger.NewRewards(cfg.StartHeight, clk, logger.Named("rewards"))
	e.registry = ledger.NewRegistry(e.fees, clk, logger.Named("registry"))
	e.uploads = upload.NewManager(cfg, e.fees, e.registry, admission{e}, clk, logger.Named("upload"))
	e.machine = chainstate.NewMachine(cfg, e.fees, e.rewards, e.registry, e.uploads, clk, logger.Named("chainstate"))
	v, err := verifier.New(cfg, e.uploads, e.machine, e.fees, e.registry, clk, logger.Named("verifier"))
	if err != nil {
		return nil, err
	}
	e.verifier = v
	e.gadget = endorse.NewGadget(cfg, e.stakes, e.fees, e.machine, clk, logger.Named("endorse"))
	return e, nil
}

// admission lets the upload manager see the machine built after it.
type admission struct {
	e *Engine
}

func (a admission) IsAdmitted(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error) {
	return a.e.machine.IsAdmitted(tx, height, hash)
}

// Config returns the chain parameters the engine runs with.
func (e *Engine) Config() model.Config {
	return e.cfg
}

func (e *Engine) update(ctx context.Context, command string, fn func(tx *store.Tx) error) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe(command, err, started)
		e.logResult(command, err)
	}()
	return e.db.Update(ctx, fn)
}

func (e *Engine) view(ctx context.Context, fn func(tx *store.Tx) error) error {
	return e.db.View(ctx, fn)
}

func (e *Engine) logResult(command string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, model.ErrInvariant):
		e.logger.Error("command hit an invariant violation", zap.String("command", command), zap.Error(err))
	case errors.Is(err, model.ErrStalled):
		e.logger.Debug("command stalled", zap.String("command", command), zap.Error(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		e.logger.Debug("command canceled", zap.String("command", command), zap.Error(err))
	default:
		e.logger.Info("command rejected",
			zap.String("command", command),
			zap.String("class", model.ErrorClass(err)),
			zap.Error(err))
	}
}
