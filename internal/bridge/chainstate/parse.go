package chainstate

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/codec"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// maxVarIntSize is the largest compact size encoding.
const maxVarIntSize = 9

// nextUnparsed returns the lowest admitted block above the irreversible height that
// has not been parsed yet.
func (m *Machine) nextUnparsed(tx *store.Tx, st *model.ChainState) (*model.ConsensusBlock, error) {
	blocks, err := tx.ConsensusBlocksFrom(st.IrreversibleHeight + 1)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if !blocks[i].Parsed {
			return &blocks[i], nil
		}
	}
	return nil, nil
}

func (m *Machine) parse(tx *store.Tx, st *model.ChainState, run *advance) (bool, error) {
	if st.Parse == nil {
		block, err := m.nextUnparsed(tx, st)
		if err != nil {
			return false, err
		}
		if block == nil {
			st.Phase = model.PhaseWaiting
			return true, nil
		}
		if err := m.openParse(tx, st, block); err != nil {
			return false, err
		}
	}

	if err := m.claimParser(st, run); err != nil {
		run.stalled = err
		return false, nil
	}

	cur := st.Parse
	buffer, found, err := tx.Buffer(cur.Uploader, cur.Height, cur.Hash)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("%w: block data of %d/%s is gone", model.ErrInvariant, cur.Height, cur.Hash)
	}
	data, err := m.reader.ReadRange(tx, buffer, cur.Offset, buffer.Size)
	if err != nil {
		return false, err
	}

	var pos int
	for cur.TxIndex < cur.TxCount {
		if run.budget == 0 {
			return false, nil
		}
		msg, n, err := codec.DecodeTx(data[pos:])
		if err != nil {
			return false, fmt.Errorf("%w: decode tx %d of verified block %d/%s: %v",
				model.ErrInvariant, cur.TxIndex, cur.Height, cur.Hash, err)
		}
		if done, err := m.stageTx(tx, cur, msg, run); err != nil || !done {
			return false, err
		}
		pos += n
		cur.Offset += uint32(n)
		cur.TxIndex++
		cur.VinIndex = 0
		cur.VoutIndex = 0
	}
	return true, m.finishParse(tx, st)
}

func (m *Machine) openParse(tx *store.Tx, st *model.ChainState, block *model.ConsensusBlock) error {
	buffer, found, err := tx.Buffer(block.Uploader, block.Height, block.Hash)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: block data of %d/%s is gone", model.ErrInvariant, block.Height, block.Hash)
	}
	head, err := m.reader.ReadRange(tx, buffer, 0, min(buffer.Size, model.HeaderSize+maxVarIntSize))
	if err != nil {
		return err
	}
	if len(head) < model.HeaderSize {
		return fmt.Errorf("%w: block %d/%s shorter than a header", model.ErrInvariant, block.Height, block.Hash)
	}
	count, n, err := codec.ReadVarInt(head[model.HeaderSize:])
	if err != nil {
		return fmt.Errorf("%w: tx count of %d/%s: %v", model.ErrInvariant, block.Height, block.Hash, err)
	}
	st.Parse = &model.ParseCursor{
		Height:   block.Height,
		Hash:     block.Hash,
		Uploader: block.Uploader,
		TxCount:  count,
		Offset:   uint32(model.HeaderSize + n),
	}
	st.Parser = block.Uploader
	st.ParseDeadline = block.AdmittedAt.Add(m.cfg.ParseTimeout)
	m.logger.Debug("parsing started",
		zap.Uint64("height", block.Height),
		zap.Stringer("hash", block.Hash),
		zap.String("parser", string(block.Uploader)),
		zap.Time("deadline", st.ParseDeadline))
	return nil
}

// claimParser lets the assigned parser continue and hands an expired block over to caller.
func (m *Machine) claimParser(st *model.ChainState, run *advance) error {
	if st.Parser == run.caller {
		return nil
	}
	now := m.clock.Now()
	if now.Before(st.ParseDeadline) {
		return fmt.Errorf("%w: %s parses %d until %s", model.ErrStalled, st.Parser, st.Parse.Height, st.ParseDeadline)
	}
	m.logger.Info("parser reassigned",
		zap.Uint64("height", st.Parse.Height),
		zap.String("from", string(st.Parser)),
		zap.String("to", string(run.caller)))
	st.Parser = run.caller
	st.ParseDeadline = now.Add(m.cfg.ParseTimeout)
	return nil
}

// stageTx stages the effects of msg from the cursor position on; done is false when
// the budget ran out mid-transaction.
func (m *Machine) stageTx(tx *store.Tx, cur *model.ParseCursor, msg *wire.MsgTx, run *advance) (bool, error) {
	if cur.TxIndex > 0 {
		for int(cur.VinIndex) < len(msg.TxIn) {
			if run.budget == 0 {
				return false, nil
			}
			prev := msg.TxIn[cur.VinIndex].PreviousOutPoint
			err := m.stage(tx, cur, &model.PendingEffect{Kind: model.EffectSpend, TxID: prev.Hash, Index: prev.Index})
			if err != nil {
				return false, err
			}
			cur.VinIndex++
			run.spend()
		}
	}
	txid := msg.TxHash()
	for int(cur.VoutIndex) < len(msg.TxOut) {
		if run.budget == 0 {
			return false, nil
		}
		out := msg.TxOut[cur.VoutIndex]
		if out.Value > 0 {
			err := m.stage(tx, cur, &model.PendingEffect{
				Kind:   model.EffectCreate,
				TxID:   txid,
				Index:  cur.VoutIndex,
				Script: out.PkScript,
				Value:  out.Value,
			})
			if err != nil {
				return false, err
			}
		}
		cur.VoutIndex++
		run.spend()
	}
	return true, nil
}

func (m *Machine) stage(tx *store.Tx, cur *model.ParseCursor, effect *model.PendingEffect) error {
	effect.Height = cur.Height
	effect.Hash = cur.Hash
	effect.Seq = cur.NextSeq
	if err := tx.PutPendingEffect(effect); err != nil {
		return err
	}
	cur.NextSeq++
	return nil
}

func (m *Machine) finishParse(tx *store.Tx, st *model.ChainState) error {
	cur := st.Parse
	block, found, err := tx.ConsensusBlock(cur.Height, cur.Hash)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: parsed block %d/%s is not admitted", model.ErrInvariant, cur.Height, cur.Hash)
	}
	block.Parsed = true
	block.Parser = st.Parser
	block.TxCount = cur.TxCount
	block.EffectCount = cur.NextSeq
	if err := tx.PutConsensusBlock(block); err != nil {
		return err
	}
	m.logger.Info("block parsed",
		zap.Uint64("height", cur.Height),
		zap.Stringer("hash", cur.Hash),
		zap.String("parser", string(st.Parser)),
		zap.Uint64("effects", cur.NextSeq))

	st.Parse = nil
	st.Parser = ""
	st.ParseDeadline = time.Time{}
	return m.afterParse(tx, st)
}

// afterParse resolves the next irreversible block when possible, otherwise keeps parsing
// or waits.
func (m *Machine) afterParse(tx *store.Tx, st *model.ChainState) error {
	winner, err := m.resolve(tx, st)
	if err != nil {
		return err
	}
	if winner != nil {
		return m.startMigration(tx, st, winner)
	}
	next, err := m.nextUnparsed(tx, st)
	if err != nil {
		return err
	}
	if next != nil {
		st.Phase = model.PhaseParsing
	} else {
		st.Phase = model.PhaseWaiting
	}
	return nil
}
