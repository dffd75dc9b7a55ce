package store

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// UTXO loads a canonical output.
func (t *Tx) UTXO(txid chainhash.Hash, index uint32) (*model.UTXO, bool, error) {
	var u model.UTXO
	found, err := t.GetRecord(BucketUTXOs, outpointKey(txid, index), &u)
	if err != nil || !found {
		return nil, found, err
	}
	return &u, true, nil
}

// PutUTXO inserts or replaces a canonical output.
func (t *Tx) PutUTXO(u *model.UTXO) error {
	return t.PutRecord(BucketUTXOs, outpointKey(u.TxID, u.Index), u)
}

// DeleteUTXO removes a canonical output.
func (t *Tx) DeleteUTXO(txid chainhash.Hash, index uint32) error {
	return t.DeleteRecord(BucketUTXOs, outpointKey(txid, index))
}

// PutPendingEffect stages an effect at its sequence number.
func (t *Tx) PutPendingEffect(e *model.PendingEffect) error {
	return t.PutRecord(BucketPending, seqKey(e.Height, e.Hash, e.Seq), e)
}

// PendingEffect loads the effect at seq.
func (t *Tx) PendingEffect(height uint64, hash chainhash.Hash, seq uint64) (*model.PendingEffect, bool, error) {
	var e model.PendingEffect
	found, err := t.GetRecord(BucketPending, seqKey(height, hash, seq), &e)
	if err != nil || !found {
		return nil, found, err
	}
	return &e, true, nil
}

// PendingEffects lists staged effects of (height, hash) in FIFO order.
func (t *Tx) PendingEffects(height uint64, hash chainhash.Hash) ([]model.PendingEffect, error) {
	return scanRecords[model.PendingEffect](t, BucketPending, blockKey(height, hash))
}

// DeletePendingEffect removes one consumed effect.
func (t *Tx) DeletePendingEffect(height uint64, hash chainhash.Hash, seq uint64) error {
	return t.DeleteRecord(BucketPending, seqKey(height, hash, seq))
}

// DeletePendingEffects discards every effect of (height, hash).
func (t *Tx) DeletePendingEffects(height uint64, hash chainhash.Hash) (int, error) {
	return t.DeletePrefix(BucketPending, blockKey(height, hash))
}

// PutSpentUTXO archives a spent output under its spending height.
func (t *Tx) PutSpentUTXO(s *model.SpentUTXO) error {
	return t.PutRecord(BucketSpent, spentKey(s.SpentHeight, s.TxID, s.Index), s)
}

// SpentUTXOsAt lists archived outputs spent at height.
func (t *Tx) SpentUTXOsAt(height uint64) ([]model.SpentUTXO, error) {
	return scanRecords[model.SpentUTXO](t, BucketSpent, heightKey(height))
}

// DeleteSpentBelow removes archive entries spent below height.
func (t *Tx) DeleteSpentBelow(height uint64) (int, error) {
	return t.DeleteRange(BucketSpent, heightKey(0), heightKey(height))
}

// DeleteSpentAt removes archive entries spent at height.
func (t *Tx) DeleteSpentAt(height uint64) (int, error) {
	return t.DeletePrefix(BucketSpent, heightKey(height))
}

// IrreversibleBlock loads the persisted header at height.
func (t *Tx) IrreversibleBlock(height uint64) (*model.IrreversibleBlock, bool, error) {
	var b model.IrreversibleBlock
	found, err := t.GetRecord(BucketBlocks, heightKey(height), &b)
	if err != nil || !found {
		return nil, found, err
	}
	return &b, true, nil
}

// PutIrreversibleBlock persists a header permanently.
func (t *Tx) PutIrreversibleBlock(b *model.IrreversibleBlock) error {
	return t.PutRecord(BucketBlocks, heightKey(b.Height), b)
}

// IrreversibleBlocksFrom lists up to limit persisted headers with height >= from.
func (t *Tx) IrreversibleBlocksFrom(from uint64, limit int) ([]model.IrreversibleBlock, error) {
	var out []model.IrreversibleBlock
	err := t.ScanRange(BucketBlocks, heightKey(from), heightKey(^uint64(0)), func(_, v []byte) error {
		if len(out) >= limit {
			return errStopScan
		}
		var b model.IrreversibleBlock
		if err := decode(BucketBlocks, v, &b); err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	if errors.Is(err, errStopScan) {
		err = nil
	}
	return out, err
}
