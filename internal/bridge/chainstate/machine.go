// Package chainstate drives admitted blocks from parsing through fork choice,
// migration into the canonical UTXO set, pruning and reward fan-out.
package chainstate

import (
	"fmt"
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Machine owns the singleton chain state.
type Machine struct {
	cfg     model.Config
	fees    FeeLedger
	rewards RewardLedger
	miners  MinerRegistry
	reader  BlockReader
	clock   clock.Clock
	logger  *zap.Logger
}

// NewMachine builds a Machine.
func NewMachine(cfg model.Config, fees FeeLedger, rewards RewardLedger, miners MinerRegistry, reader BlockReader, clk clock.Clock, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Machine{
		cfg:     cfg,
		fees:    fees,
		rewards: rewards,
		miners:  miners,
		reader:  reader,
		clock:   clk,
		logger:  logger,
	}
}

// Bootstrap seeds the irreversible checkpoint at StartHeight. It can only run once.
func (m *Machine) Bootstrap(tx *store.Tx, checkpoint model.IrreversibleBlock) error {
	st, err := tx.ChainState()
	if err != nil {
		return err
	}
	if st.IrreversibleHeight != 0 {
		return fmt.Errorf("%w: chain already bootstrapped at %d", model.ErrInvalidInput, st.IrreversibleHeight)
	}
	if checkpoint.Height != m.cfg.StartHeight {
		return fmt.Errorf("%w: checkpoint height %d, want %d", model.ErrInvalidInput, checkpoint.Height, m.cfg.StartHeight)
	}
	if checkpoint.CumulativeWork == nil || checkpoint.CumulativeWork.Sign() <= 0 {
		return fmt.Errorf("%w: checkpoint cumulative work must be positive", model.ErrInvalidInput)
	}
	if checkpoint.ConfirmedAt.IsZero() {
		checkpoint.ConfirmedAt = m.clock.Now()
	}
	if err := tx.PutIrreversibleBlock(&checkpoint); err != nil {
		return err
	}
	st.IrreversibleHeight = checkpoint.Height
	st.IrreversibleHash = checkpoint.Hash
	st.HeadHeight = checkpoint.Height
	st.Phase = model.PhaseWaiting
	m.logger.Info("chain bootstrapped", zap.Uint64("height", checkpoint.Height), zap.Stringer("hash", checkpoint.Hash))
	return tx.PutChainState(st)
}

// State returns the chain state.
func (m *Machine) State(tx *store.Tx) (*model.ChainState, error) {
	return tx.ChainState()
}

// IsAdmitted reports whether (height, hash) reached consensus or is irreversible.
func (m *Machine) IsAdmitted(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error) {
	_, found, err := m.blockWork(tx, height, hash)
	return found, err
}

// CumulativeWork returns the chain work up to an admitted or irreversible block.
// Absence is reported with found == false so that callers decide whether to retry.
func (m *Machine) CumulativeWork(tx *store.Tx, height uint64, hash chainhash.Hash) (*big.Int, bool, error) {
	return m.blockWork(tx, height, hash)
}

func (m *Machine) blockWork(tx *store.Tx, height uint64, hash chainhash.Hash) (*big.Int, bool, error) {
	block, found, err := tx.ConsensusBlock(height, hash)
	if err != nil {
		return nil, false, err
	}
	if found {
		return block.CumulativeWork, true, nil
	}
	irreversible, found, err := tx.IrreversibleBlock(height)
	if err != nil || !found || irreversible.Hash != hash {
		return nil, false, err
	}
	return irreversible.CumulativeWork, true, nil
}

// OnPassed is called by the verifier when a copy of (height, hash) passed.
func (m *Machine) OnPassed(tx *store.Tx, height uint64, hash chainhash.Hash) error {
	return m.tryAdmit(tx, height, hash)
}

// OnEndorsed is called once by the endorsement gadget when quorum is reached.
func (m *Machine) OnEndorsed(tx *store.Tx, height uint64, hash chainhash.Hash) error {
	admitted, err := m.IsAdmitted(tx, height, hash)
	if err != nil {
		return err
	}
	if admitted {
		return fmt.Errorf("%w: duplicate quorum signal for %d/%s", model.ErrInvariant, height, hash)
	}
	return m.tryAdmit(tx, height, hash)
}

func (m *Machine) endorsed(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error) {
	if m.cfg.EndorsementDisabled {
		return true, nil
	}
	record, found, err := tx.Endorsement(height, hash)
	if err != nil || !found {
		return false, err
	}
	return record.QuorumReached, nil
}

// tryAdmit turns a passed and endorsed block into a consensus block. The miner's own
// copy is preferred, then the earliest passed copy.
func (m *Machine) tryAdmit(tx *store.Tx, height uint64, hash chainhash.Hash) error {
	admitted, err := m.IsAdmitted(tx, height, hash)
	if err != nil || admitted {
		return err
	}
	ok, err := m.endorsed(tx, height, hash)
	if err != nil || !ok {
		return err
	}
	candidates, err := tx.Candidates(height, hash)
	if err != nil {
		return err
	}
	var chosen *model.Candidate
	for i := range candidates {
		c := &candidates[i]
		if c.Passed && (chosen == nil || preferred(c, chosen)) {
			chosen = c
		}
	}
	if chosen == nil {
		return nil
	}

	block := &model.ConsensusBlock{
		Height:         height,
		Hash:           hash,
		PrevHash:       chosen.PrevHash,
		Work:           chosen.Work,
		CumulativeWork: chosen.CumulativeWork,
		Uploader:       chosen.Uploader,
		BucketID:       chosen.BucketID,
		Miner:          chosen.Miner,
		AdmittedAt:     m.clock.Now(),
	}
	if err := tx.PutConsensusBlock(block); err != nil {
		return err
	}
	st, err := tx.ChainState()
	if err != nil {
		return err
	}
	if height > st.HeadHeight {
		st.HeadHeight = height
		if err := tx.PutChainState(st); err != nil {
			return err
		}
	}
	m.logger.Info("block admitted",
		zap.Uint64("height", height),
		zap.Stringer("hash", hash),
		zap.String("uploader", string(chosen.Uploader)),
		zap.Stringer("cumulative_work", chosen.CumulativeWork))
	return nil
}

func preferred(c, current *model.Candidate) bool {
	ownC := c.Miner != "" && c.Uploader == c.Miner
	ownCurrent := current.Miner != "" && current.Uploader == current.Miner
	if ownC != ownCurrent {
		return ownC
	}
	return c.CreatedAt.Before(current.CreatedAt)
}

// Advance moves the chain state forward by up to budget units of work on behalf of caller.
func (m *Machine) Advance(tx *store.Tx, caller model.Account, budget uint64) (model.AdvanceResult, error) {
	registered, err := m.miners.IsSynchronizer(tx, caller)
	if err != nil {
		return model.AdvanceResult{}, err
	}
	if !registered {
		return model.AdvanceResult{}, fmt.Errorf("%w: %s is not a registered synchronizer", model.ErrUnauthorized, caller)
	}
	st, err := tx.ChainState()
	if err != nil {
		return model.AdvanceResult{}, err
	}
	if st.IrreversibleHeight == 0 {
		return model.AdvanceResult{}, fmt.Errorf("%w: chain is not bootstrapped", model.ErrInvalidInput)
	}
	if err := m.fees.Debit(tx, caller, model.FeeParse, 1); err != nil {
		return model.AdvanceResult{}, err
	}

	run := &advance{caller: caller, budget: max(budget, 1)}
	for run.budget > 0 {
		var next bool
		switch st.Phase {
		case model.PhaseWaiting:
			next, err = m.wait(tx, st)
		case model.PhaseParsing:
			next, err = m.parse(tx, st, run)
		case model.PhaseMigrating:
			next, err = m.migrate(tx, st, run)
		case model.PhasePruning:
			next, err = m.prune(tx, st, run)
		case model.PhaseDistributingRewards:
			next, err = m.distribute(tx, st, run)
		default:
			err = fmt.Errorf("%w: unknown phase %d", model.ErrInvariant, st.Phase)
		}
		if err != nil {
			return model.AdvanceResult{}, err
		}
		if !next {
			break
		}
	}
	if run.stalled != nil && !run.progressed {
		return model.AdvanceResult{}, run.stalled
	}
	if err := tx.PutChainState(st); err != nil {
		return model.AdvanceResult{}, err
	}
	return resultOf(st), nil
}

// advance carries per-call bookkeeping.
type advance struct {
	caller     model.Account
	budget     uint64
	progressed bool
	stalled    error
}

func (a *advance) spend() {
	a.budget--
	a.progressed = true
}

func resultOf(st *model.ChainState) model.AdvanceResult {
	res := model.AdvanceResult{Phase: st.Phase, Height: st.IrreversibleHeight, Hash: st.IrreversibleHash}
	switch {
	case st.Phase == model.PhaseParsing && st.Parse != nil:
		res.Height, res.Hash = st.Parse.Height, st.Parse.Hash
	case st.Migration != nil:
		res.Height, res.Hash = st.Migration.Height, st.Migration.Hash
	}
	return res
}

func (m *Machine) wait(tx *store.Tx, st *model.ChainState) (bool, error) {
	winner, err := m.resolve(tx, st)
	if err != nil {
		return false, err
	}
	if winner != nil {
		return true, m.startMigration(tx, st, winner)
	}
	block, err := m.nextUnparsed(tx, st)
	if err != nil || block == nil {
		return false, err
	}
	st.Phase = model.PhaseParsing
	return true, nil
}
