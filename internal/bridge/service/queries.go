package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

// Buffer returns the upload buffer of uploader for a block.
func (e *Engine) Buffer(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error) {
	var b *model.UploadBuffer
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		b, err = e.uploads.Buffer(tx, uploader, height, hash)
		return err
	})
	return b, err
}

// ChainState returns the singleton chain state.
func (e *Engine) ChainState(ctx context.Context) (*model.ChainState, error) {
	var st *model.ChainState
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		st, err = e.machine.State(tx)
		return err
	})
	return st, err
}

// Endorsement returns the endorsement record of a block.
func (e *Engine) Endorsement(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	var record *model.EndorsementRecord
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		record, err = e.gadget.Record(tx, height, hash)
		return err
	})
	return record, err
}

// ConsensusBlocks lists admitted, not yet irreversible blocks at height.
func (e *Engine) ConsensusBlocks(ctx context.Context, height uint64) ([]model.ConsensusBlock, error) {
	var blocks []model.ConsensusBlock
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		blocks, err = tx.ConsensusBlocksAtHeight(height)
		return err
	})
	return blocks, err
}

// UTXO looks up an unspent output of the canonical set.
func (e *Engine) UTXO(ctx context.Context, txid chainhash.Hash, index uint32) (*model.UTXO, error) {
	var u *model.UTXO
	err := e.view(ctx, func(tx *store.Tx) error {
		var (
			found bool
			err   error
		)
		u, found, err = tx.UTXO(txid, index)
		if err == nil && !found {
			err = fmt.Errorf("%w: utxo %s:%d", model.ErrNotFound, txid, index)
		}
		return err
	})
	return u, err
}

// IrreversibleBlock returns the persisted header at height.
func (e *Engine) IrreversibleBlock(ctx context.Context, height uint64) (*model.IrreversibleBlock, error) {
	var b *model.IrreversibleBlock
	err := e.view(ctx, func(tx *store.Tx) error {
		var (
			found bool
			err   error
		)
		b, found, err = tx.IrreversibleBlock(height)
		if err == nil && !found {
			err = fmt.Errorf("%w: irreversible block at %d", model.ErrNotFound, height)
		}
		return err
	})
	return b, err
}

// Archive is one irreversible block together with the outputs it spent.
type Archive struct {
	Block model.IrreversibleBlock
	Spent []model.SpentUTXO
}

// IrreversibleFrom returns up to limit irreversible blocks from height on, each with
// the outputs spent by it that are still retained.
func (e *Engine) IrreversibleFrom(ctx context.Context, from uint64, limit int) ([]Archive, error) {
	var out []Archive
	err := e.view(ctx, func(tx *store.Tx) error {
		blocks, err := tx.IrreversibleBlocksFrom(from, limit)
		if err != nil {
			return err
		}
		for _, b := range blocks {
			spent, err := tx.SpentUTXOsAt(b.Height)
			if err != nil {
				return err
			}
			out = append(out, Archive{Block: b, Spent: spent})
		}
		return nil
	})
	return out, err
}

// FeeBalance returns the prepaid fee account of account.
func (e *Engine) FeeBalance(ctx context.Context, account model.Account) (*model.FeeAccount, error) {
	var a *model.FeeAccount
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		a, err = e.fees.Balance(tx, account)
		return err
	})
	return a, err
}

// RewardBalance returns the earned rewards of account.
func (e *Engine) RewardBalance(ctx context.Context, account model.Account) (*model.RewardBalance, error) {
	var b *model.RewardBalance
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		b, err = e.rewards.Balance(tx, account)
		return err
	})
	return b, err
}

// RewardLog returns how the reward at height was split.
func (e *Engine) RewardLog(ctx context.Context, height uint64) (*model.RewardLog, error) {
	var l *model.RewardLog
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		l, err = e.rewards.Log(tx, height)
		return err
	})
	return l, err
}

// Synchronizer returns the registration of account.
func (e *Engine) Synchronizer(ctx context.Context, account model.Account) (*model.Synchronizer, error) {
	var s *model.Synchronizer
	err := e.view(ctx, func(tx *store.Tx) error {
		var err error
		s, err = e.registry.Synchronizer(tx, account)
		return err
	})
	return s, err
}
