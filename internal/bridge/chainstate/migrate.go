package chainstate

import (
	"fmt"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/codec"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// startMigration issues the block reward and opens the migration of winner.
func (m *Machine) startMigration(tx *store.Tx, st *model.ChainState, winner *model.ConsensusBlock) error {
	var validators []model.ValidatorStake
	record, found, err := tx.Endorsement(winner.Height, winner.Hash)
	if err != nil {
		return err
	}
	if found {
		validators = record.Endorsed
	}
	issue := model.RewardIssue{
		Height:       winner.Height,
		Hash:         winner.Hash,
		Miner:        winner.Miner,
		Synchronizer: winner.Uploader,
		Parser:       winner.Parser,
		Validators:   validators,
	}
	if err := m.rewards.Distribute(tx, issue); err != nil {
		return err
	}
	st.Migration = &model.MigrationCursor{
		Height: winner.Height,
		Hash:   winner.Hash,
		Total:  winner.EffectCount,
	}
	st.Reward = &model.RewardCursor{
		Height:     winner.Height,
		Hash:       winner.Hash,
		Validators: uint32(len(validators)),
	}
	st.Phase = model.PhaseMigrating
	m.logger.Info("migration started",
		zap.Uint64("height", winner.Height),
		zap.Stringer("hash", winner.Hash),
		zap.Uint64("effects", winner.EffectCount))
	return nil
}

// migrate applies pending effects of the winner in sequence order. Each consumed effect
// is deleted together with the cursor update, so a replay resumes at the same place.
func (m *Machine) migrate(tx *store.Tx, st *model.ChainState, run *advance) (bool, error) {
	cur := st.Migration
	if cur == nil {
		return false, fmt.Errorf("%w: migrating without a cursor", model.ErrInvariant)
	}
	for cur.NextSeq < cur.Total {
		if run.budget == 0 {
			return false, nil
		}
		effect, found, err := tx.PendingEffect(cur.Height, cur.Hash, cur.NextSeq)
		if err != nil {
			return false, err
		}
		if !found {
			return false, fmt.Errorf("%w: migration count mismatch, effect %d of %d missing for %d/%s",
				model.ErrInvariant, cur.NextSeq, cur.Total, cur.Height, cur.Hash)
		}
		if err := m.apply(tx, st, effect); err != nil {
			return false, err
		}
		if err := tx.DeletePendingEffect(cur.Height, cur.Hash, cur.NextSeq); err != nil {
			return false, err
		}
		cur.NextSeq++
		cur.Migrated++
		run.spend()
	}

	left, err := tx.PendingEffects(cur.Height, cur.Hash)
	if err != nil {
		return false, err
	}
	if len(left) > 0 {
		return false, fmt.Errorf("%w: migration count mismatch, %d effects left after %d for %d/%s",
			model.ErrInvariant, len(left), cur.Total, cur.Height, cur.Hash)
	}
	m.logger.Info("migration finished",
		zap.Uint64("height", cur.Height),
		zap.Uint64("created", cur.Created),
		zap.Uint64("spent", cur.Spent))
	st.Phase = model.PhasePruning
	return true, nil
}

func (m *Machine) apply(tx *store.Tx, st *model.ChainState, effect *model.PendingEffect) error {
	cur := st.Migration
	switch effect.Kind {
	case model.EffectSpend:
		utxo, found, err := tx.UTXO(effect.TxID, effect.Index)
		if err != nil {
			return err
		}
		if !found {
			m.logger.Warn("spent output not in utxo set",
				zap.Uint64("height", cur.Height),
				zap.Stringer("txid", effect.TxID),
				zap.Uint32("index", effect.Index))
			return nil
		}
		if err := tx.DeleteUTXO(effect.TxID, effect.Index); err != nil {
			return err
		}
		spent := &model.SpentUTXO{UTXO: *utxo, SpentHeight: cur.Height, SpentBlock: cur.Hash}
		if err := tx.PutSpentUTXO(spent); err != nil {
			return err
		}
		if st.UTXOCount > 0 {
			st.UTXOCount--
		}
		cur.Spent++
	case model.EffectCreate:
		_, existed, err := tx.UTXO(effect.TxID, effect.Index)
		if err != nil {
			return err
		}
		utxo := &model.UTXO{TxID: effect.TxID, Index: effect.Index, Script: effect.Script, Value: effect.Value}
		if err := tx.PutUTXO(utxo); err != nil {
			return err
		}
		if !existed {
			st.UTXOCount++
		}
		cur.Created++
	default:
		return fmt.Errorf("%w: unknown effect kind %d", model.ErrInvariant, effect.Kind)
	}
	return nil
}

// prune drops forked siblings, every copy but the winner's and expired data, then
// persists the winner's header.
func (m *Machine) prune(tx *store.Tx, st *model.ChainState, run *advance) (bool, error) {
	mig := st.Migration
	winner, found, err := tx.ConsensusBlock(mig.Height, mig.Hash)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("%w: migrated block %d/%s is not admitted", model.ErrInvariant, mig.Height, mig.Hash)
	}

	siblings, err := tx.ConsensusBlocksAtHeight(mig.Height)
	if err != nil {
		return false, err
	}
	for _, s := range siblings {
		if s.Hash == mig.Hash {
			continue
		}
		if _, err := tx.DeletePendingEffects(s.Height, s.Hash); err != nil {
			return false, err
		}
		if err := tx.DeleteConsensusBlock(s.Height, s.Hash); err != nil {
			return false, err
		}
	}
	buffers, err := tx.BuffersAtHeight(mig.Height)
	if err != nil {
		return false, err
	}
	for _, b := range buffers {
		if b.Hash == mig.Hash && b.Uploader == winner.Uploader {
			continue
		}
		if err := tx.DeleteBuffer(b); err != nil {
			return false, err
		}
	}
	if _, err := tx.DeleteCandidatesAtHeight(mig.Height); err != nil {
		return false, err
	}
	if _, err := tx.DeleteEndorsementsAtHeight(mig.Height); err != nil {
		return false, err
	}
	if _, err := tx.DeleteMinerMarkersAtHeight(mig.Height); err != nil {
		return false, err
	}
	if mig.Height > m.cfg.SpentRetentionBlocks {
		if _, err := tx.DeleteSpentBelow(mig.Height - m.cfg.SpentRetentionBlocks); err != nil {
			return false, err
		}
	}
	if mig.Height > m.cfg.RetainDataBlocks {
		expired, err := tx.BuffersBelow(mig.Height - m.cfg.RetainDataBlocks)
		if err != nil {
			return false, err
		}
		for _, b := range expired {
			if err := tx.DeleteBuffer(b); err != nil {
				return false, err
			}
		}
	}

	block, err := m.irreversibleBlock(tx, winner, mig)
	if err != nil {
		return false, err
	}
	if err := tx.PutIrreversibleBlock(block); err != nil {
		return false, err
	}
	if err := tx.DeleteConsensusBlock(winner.Height, winner.Hash); err != nil {
		return false, err
	}
	if err := m.miners.NotifyConfirmed(tx, winner.Uploader, winner.Height); err != nil {
		return false, err
	}
	st.Phase = model.PhaseDistributingRewards
	run.spend()
	return true, nil
}

func (m *Machine) irreversibleBlock(tx *store.Tx, winner *model.ConsensusBlock, mig *model.MigrationCursor) (*model.IrreversibleBlock, error) {
	buffer, found, err := tx.Buffer(winner.Uploader, winner.Height, winner.Hash)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: block data of %d/%s is gone", model.ErrInvariant, winner.Height, winner.Hash)
	}
	raw, err := m.reader.ReadRange(tx, buffer, 0, model.HeaderSize)
	if err != nil {
		return nil, err
	}
	header, err := codec.DecodeHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: header of %d/%s: %v", model.ErrInvariant, winner.Height, winner.Hash, err)
	}
	return &model.IrreversibleBlock{
		Height:         winner.Height,
		Hash:           winner.Hash,
		PrevHash:       header.PrevBlock,
		MerkleRoot:     header.MerkleRoot,
		Version:        header.Version,
		Timestamp:      header.Timestamp,
		Bits:           header.Bits,
		Nonce:          header.Nonce,
		Work:           winner.Work,
		CumulativeWork: winner.CumulativeWork,
		Miner:          winner.Miner,
		Synchronizer:   winner.Uploader,
		Parser:         winner.Parser,
		TxCount:        winner.TxCount,
		UTXOCreated:    mig.Created,
		UTXOSpent:      mig.Spent,
		ConfirmedAt:    m.clock.Now(),
	}, nil
}

// distribute pays the issued reward to endorsing validators in batches, then moves the
// irreversible point to the migrated block.
func (m *Machine) distribute(tx *store.Tx, st *model.ChainState, run *advance) (bool, error) {
	r := st.Reward
	if r == nil {
		return false, fmt.Errorf("%w: distributing without a cursor", model.ErrInvariant)
	}
	for r.Paid < r.Validators {
		if run.budget == 0 {
			return false, nil
		}
		to := min(r.Paid+m.cfg.ValidatorsPerDistribution, r.Validators)
		if err := m.rewards.PayBatch(tx, r.Height, r.Paid, to); err != nil {
			return false, err
		}
		r.Paid = to
		run.spend()
	}

	st.IrreversibleHeight = r.Height
	st.IrreversibleHash = r.Hash
	st.Migration = nil
	st.Reward = nil
	st.Phase = model.PhaseWaiting
	m.logger.Info("block irreversible",
		zap.Uint64("height", r.Height),
		zap.Stringer("hash", r.Hash),
		zap.Uint64("utxos", st.UTXOCount))
	return true, nil
}
