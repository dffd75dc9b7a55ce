package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// AnnounceBlock opens or resumes the upload buffer of uploader for a block.
func (e *Engine) AnnounceBlock(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, size uint32, chunks uint8) (*model.UploadBuffer, error) {
	var b *model.UploadBuffer
	err := e.update(ctx, "announce_block", func(tx *store.Tx) error {
		var err error
		b, err = e.uploads.OpenOrResume(tx, uploader, height, hash, size, chunks)
		return err
	})
	return b, err
}

// PushChunk stores one chunk of a buffer.
func (e *Engine) PushChunk(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8, data []byte) (*model.UploadBuffer, error) {
	var b *model.UploadBuffer
	err := e.update(ctx, "push_chunk", func(tx *store.Tx) error {
		var err error
		b, err = e.uploads.PushChunk(tx, uploader, height, hash, chunkID, data)
		return err
	})
	return b, err
}

// DeleteChunk removes one chunk of a buffer that is not being verified.
func (e *Engine) DeleteChunk(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8) (*model.UploadBuffer, error) {
	var b *model.UploadBuffer
	err := e.update(ctx, "delete_chunk", func(tx *store.Tx) error {
		var err error
		b, err = e.uploads.DeleteChunk(tx, uploader, height, hash, chunkID)
		return err
	})
	return b, err
}

// DeleteBuffer drops a buffer that is not being verified and frees its slot.
func (e *Engine) DeleteBuffer(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash) error {
	return e.update(ctx, "delete_buffer", func(tx *store.Tx) error {
		return e.uploads.DeleteBuffer(tx, uploader, height, hash)
	})
}

// Verify advances verification of a buffer by up to budget transactions per merkle batch.
func (e *Engine) Verify(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, budget uint64) (model.VerifyResult, error) {
	var res model.VerifyResult
	err := e.update(ctx, "verify", func(tx *store.Tx) error {
		var err error
		res, err = e.verifier.Verify(tx, uploader, height, hash, budget)
		return err
	})
	if err == nil {
		e.metrics.ObserveVerify(res)
	}
	return res, err
}

// Endorse records the vote of validator for a block.
func (e *Engine) Endorse(ctx context.Context, validator model.Account, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	var record *model.EndorsementRecord
	err := e.update(ctx, "endorse", func(tx *store.Tx) error {
		var err error
		record, err = e.gadget.Endorse(tx, validator, height, hash)
		return err
	})
	return record, err
}

// AdvanceChainState moves the chain state by up to budget units on behalf of caller.
func (e *Engine) AdvanceChainState(ctx context.Context, caller model.Account, budget uint64) (model.AdvanceResult, error) {
	var (
		res model.AdvanceResult
		st  *model.ChainState
	)
	err := e.update(ctx, "advance_chain_state", func(tx *store.Tx) error {
		var err error
		if res, err = e.machine.Advance(tx, caller, budget); err != nil {
			return err
		}
		st, err = tx.ChainState()
		return err
	})
	if err == nil {
		e.metrics.SetChainState(st)
	}
	return res, err
}

// Bootstrap seeds the irreversible checkpoint the chain grows from.
func (e *Engine) Bootstrap(ctx context.Context, checkpoint model.IrreversibleBlock) error {
	var st *model.ChainState
	err := e.update(ctx, "bootstrap", func(tx *store.Tx) error {
		if err := e.machine.Bootstrap(tx, checkpoint); err != nil {
			return err
		}
		var err error
		st, err = tx.ChainState()
		return err
	})
	if err == nil {
		e.metrics.SetChainState(st)
	}
	return err
}

// Deposit credits prepaid fees to account.
func (e *Engine) Deposit(ctx context.Context, account model.Account, amount uint64) (*model.FeeAccount, error) {
	var a *model.FeeAccount
	err := e.update(ctx, "deposit", func(tx *store.Tx) error {
		if _, err := e.fees.Deposit(tx, account, amount); err != nil {
			return err
		}
		var err error
		a, err = e.fees.Balance(tx, account)
		return err
	})
	return a, err
}

// Withdraw returns prepaid fees to account.
func (e *Engine) Withdraw(ctx context.Context, account model.Account, amount uint64) (*model.FeeAccount, error) {
	var a *model.FeeAccount
	err := e.update(ctx, "withdraw", func(tx *store.Tx) error {
		if _, err := e.fees.Withdraw(tx, account, amount); err != nil {
			return err
		}
		var err error
		a, err = e.fees.Balance(tx, account)
		return err
	})
	return a, err
}

// RegisterSynchronizer registers account with the payout addresses that identify its blocks.
func (e *Engine) RegisterSynchronizer(ctx context.Context, account model.Account, addresses []string) (*model.Synchronizer, error) {
	var s *model.Synchronizer
	err := e.update(ctx, "register_synchronizer", func(tx *store.Tx) error {
		var err error
		s, err = e.registry.Register(tx, account, addresses)
		return err
	})
	return s, err
}

// BuySlots buys upload slots for receiver paid by payer.
func (e *Engine) BuySlots(ctx context.Context, payer, receiver model.Account, n uint16) (*model.Synchronizer, error) {
	var s *model.Synchronizer
	err := e.update(ctx, "buy_slots", func(tx *store.Tx) error {
		var err error
		s, err = e.registry.BuySlots(tx, payer, receiver, n)
		return err
	})
	return s, err
}

// SetStake sets the stake of validator in mode.
func (e *Engine) SetStake(ctx context.Context, validator model.Account, mode model.StakeMode, amount uint64) (*model.Validator, error) {
	var v *model.Validator
	err := e.update(ctx, "set_stake", func(tx *store.Tx) error {
		var err error
		v, err = e.stakes.SetStake(tx, validator, mode, amount)
		return err
	})
	return v, err
}

// ClaimReward moves the unclaimed reward of account to claimed.
func (e *Engine) ClaimReward(ctx context.Context, account model.Account) (uint64, error) {
	var amount uint64
	err := e.update(ctx, "claim_reward", func(tx *store.Tx) error {
		var err error
		amount, err = e.rewards.Claim(tx, account)
		return err
	})
	return amount, err
}

// Purge deletes one kind of bridge data at height. Live data above the irreversible
// height is refused for the kinds the chain state still reads.
func (e *Engine) Purge(ctx context.Context, kind model.ResourceKind, height uint64) (int, error) {
	var n int
	err := e.update(ctx, "purge", func(tx *store.Tx) error {
		st, err := tx.ChainState()
		if err != nil {
			return err
		}
		if height > st.IrreversibleHeight && kind != model.ResourceBuffers && kind != model.ResourceChunks {
			return fmt.Errorf("%w: %s at %d is above the irreversible height %d",
				model.ErrInvalidInput, kind, height, st.IrreversibleHeight)
		}
		n, err = e.purge(tx, kind, height)
		return err
	})
	if err == nil {
		e.logger.Warn("data purged", zap.Stringer("kind", kind), zap.Uint64("height", height), zap.Int("rows", n))
	}
	return n, err
}

func (e *Engine) purge(tx *store.Tx, kind model.ResourceKind, height uint64) (int, error) {
	switch kind {
	case model.ResourceBuffers:
		buffers, err := tx.BuffersAtHeight(height)
		if err != nil {
			return 0, err
		}
		for _, b := range buffers {
			if b.Status.VerificationStarted() && b.Status != model.StatusPassed {
				return 0, fmt.Errorf("%w: buffer of %s at %d is being verified", model.ErrInvalidInput, b.Uploader, height)
			}
			admitted, found, err := tx.ConsensusBlock(b.Height, b.Hash)
			if err != nil {
				return 0, err
			}
			if found && admitted.Uploader == b.Uploader {
				return 0, fmt.Errorf("%w: buffer of %s at %d backs an admitted block", model.ErrInvalidInput, b.Uploader, height)
			}
			if err := tx.DeleteBuffer(b); err != nil {
				return 0, err
			}
		}
		return len(buffers), nil
	case model.ResourceChunks:
		buffers, err := tx.BuffersAtHeight(height)
		if err != nil {
			return 0, err
		}
		var total int
		for _, b := range buffers {
			if b.Status != model.StatusUploading && b.Status != model.StatusComplete && b.Status != model.StatusFailed {
				continue
			}
			n, err := tx.DeleteChunks(b.BucketID)
			if err != nil {
				return 0, err
			}
			b.ReceivedSize, b.ReceivedChunks = 0, 0
			b.Status = model.StatusUploading
			b.Reason = ""
			if err := tx.PutBuffer(b); err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case model.ResourceCandidates:
		return tx.DeleteCandidatesAtHeight(height)
	case model.ResourceEndorsements:
		return tx.DeleteEndorsementsAtHeight(height)
	case model.ResourceConsensusBlocks:
		blocks, err := tx.ConsensusBlocksAtHeight(height)
		if err != nil {
			return 0, err
		}
		for _, b := range blocks {
			if _, err := tx.DeletePendingEffects(b.Height, b.Hash); err != nil {
				return 0, err
			}
			if err := tx.DeleteConsensusBlock(b.Height, b.Hash); err != nil {
				return 0, err
			}
		}
		return len(blocks), nil
	case model.ResourcePendingEffects:
		blocks, err := tx.ConsensusBlocksAtHeight(height)
		if err != nil {
			return 0, err
		}
		var total int
		for _, b := range blocks {
			n, err := tx.DeletePendingEffects(b.Height, b.Hash)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case model.ResourceSpentUTXOs:
		return tx.DeleteSpentAt(height)
	default:
		return 0, fmt.Errorf("%w: unknown resource kind %d", model.ErrInvalidInput, kind)
	}
}
