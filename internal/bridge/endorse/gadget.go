// Package endorse collects validator votes per block and signals finality once a
// two-thirds-plus-one quorum of the frozen voter set has endorsed it.
package endorse

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Gadget implements the endorsement round of each block.
type Gadget struct {
	cfg    model.Config
	stakes StakeRegistry
	fees   FeeLedger
	sink   FinalitySink
	clock  clock.Clock
	logger *zap.Logger
}

// NewGadget builds a Gadget.
func NewGadget(cfg model.Config, stakes StakeRegistry, fees FeeLedger, sink FinalitySink, clk clock.Clock, logger *zap.Logger) *Gadget {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Gadget{
		cfg:    cfg,
		stakes: stakes,
		fees:   fees,
		sink:   sink,
		clock:  clk,
		logger: logger,
	}
}

// Endorse records the vote of validator for (height, hash).
func (g *Gadget) Endorse(tx *store.Tx, validator model.Account, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	if g.cfg.EndorsementDisabled {
		return nil, fmt.Errorf("%w: endorsement is disabled", model.ErrInvalidInput)
	}
	if err := g.checkWindow(tx, height); err != nil {
		return nil, err
	}
	if err := g.fees.Debit(tx, validator, model.FeeEndorse, 1); err != nil {
		return nil, err
	}

	record, found, err := tx.Endorsement(height, hash)
	if err != nil {
		return nil, err
	}
	if !found {
		if record, err = g.newRecord(tx, height, hash); err != nil {
			return nil, err
		}
	}

	if record.HasEndorsed(validator) {
		return nil, fmt.Errorf("%w: %s already endorsed %d/%s", model.ErrInvalidInput, validator, height, hash)
	}
	if !record.Promote(validator) {
		return nil, fmt.Errorf("%w: %s is not a qualified validator for %d/%s", model.ErrUnauthorized, validator, height, hash)
	}

	signal := !record.QuorumReached && record.Reached()
	if signal {
		record.QuorumReached = true
		record.ConsensusAt = g.clock.Now()
	}
	if err := tx.PutEndorsement(record); err != nil {
		return nil, err
	}
	if signal {
		g.logger.Info("endorsement quorum reached",
			zap.Uint64("height", height),
			zap.Stringer("hash", hash),
			zap.Int("endorsed", len(record.Endorsed)),
			zap.Int("voters", record.Voters()))
		if err := g.sink.OnEndorsed(tx, height, hash); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Record returns the endorsement record of (height, hash).
func (g *Gadget) Record(tx *store.Tx, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	record, found, err := tx.Endorsement(height, hash)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: endorsement %d/%s", model.ErrNotFound, height, hash)
	}
	return record, nil
}

// IsEndorsed reports whether (height, hash) has reached quorum. With endorsement
// disabled no quorum is required.
func (g *Gadget) IsEndorsed(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error) {
	if g.cfg.EndorsementDisabled {
		return true, nil
	}
	record, found, err := tx.Endorsement(height, hash)
	if err != nil || !found {
		return false, err
	}
	return record.QuorumReached, nil
}

func (g *Gadget) checkWindow(tx *store.Tx, height uint64) error {
	state, err := tx.ChainState()
	if err != nil {
		return err
	}
	if height <= state.IrreversibleHeight {
		return fmt.Errorf("%w: height %d is already irreversible", model.ErrInvalidInput, height)
	}
	if state.Migration != nil && state.Migration.Height == height {
		return fmt.Errorf("%w: height %d is being migrated", model.ErrInvalidInput, height)
	}
	if height > state.IrreversibleHeight+g.cfg.EndorseFutureWindow {
		return fmt.Errorf("%w: height %d is beyond the endorsement window ending at %d",
			model.ErrInvalidInput, height, state.IrreversibleHeight+g.cfg.EndorseFutureWindow)
	}
	if g.cfg.MinEndorseInterval <= 0 {
		return nil
	}
	previous, err := tx.EndorsementsAtHeight(height - 1)
	if err != nil {
		return err
	}
	now := g.clock.Now()
	for _, r := range previous {
		if !r.QuorumReached {
			continue
		}
		if next := r.ConsensusAt.Add(g.cfg.MinEndorseInterval); now.Before(next) {
			return fmt.Errorf("%w: endorsements for %d open at %s", model.ErrStalled, height, next)
		}
	}
	return nil
}

func (g *Gadget) newRecord(tx *store.Tx, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	mode := g.cfg.StakeModeAt(height)
	voters, err := g.stakes.Qualified(tx, mode, g.cfg.StakeFloor(mode))
	if err != nil {
		return nil, err
	}
	if len(voters) == 0 {
		return nil, fmt.Errorf("%w: no validator qualifies under %s stake", model.ErrInvalidInput, mode)
	}
	return &model.EndorsementRecord{
		Height:    height,
		Hash:      hash,
		Mode:      mode,
		Requested: slices.Clone(voters),
		CreatedAt: g.clock.Now(),
	}, nil
}
