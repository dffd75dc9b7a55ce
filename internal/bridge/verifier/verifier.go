// Package verifier checks uploaded blocks incrementally: header and proof of work first,
// then a fixed number of transactions per batch folded into partial merkle layers, then
// parent work and miner priority.
package verifier

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/codec"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Verifier advances upload buffers through verification.
type Verifier struct {
	cfg    model.Config
	params *chaincfg.Params
	reader BlockReader
	chain  ChainState
	fees   FeeLedger
	miners MinerResolver
	clock  clock.Clock
	logger *zap.Logger
}

// New builds a Verifier.
func New(cfg model.Config, reader BlockReader, chain ChainState, fees FeeLedger, miners MinerResolver, clk clock.Clock, logger *zap.Logger) (*Verifier, error) {
	params, err := cfg.Network.Params()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Verifier{
		cfg:    cfg,
		params: params,
		reader: reader,
		chain:  chain,
		fees:   fees,
		miners: miners,
		clock:  clk,
		logger: logger,
	}, nil
}

// Verify advances the buffer of uploader for (height, hash). budget is the number of
// transactions the call may parse; it is rounded down to whole batches, minimum one.
func (v *Verifier) Verify(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash, budget uint64) (model.VerifyResult, error) {
	b, found, err := tx.Buffer(uploader, height, hash)
	if err != nil {
		return model.VerifyResult{}, err
	}
	if !found {
		return model.VerifyResult{}, fmt.Errorf("%w: buffer %s/%d/%s", model.ErrNotFound, uploader, height, hash)
	}

	switch b.Status {
	case model.StatusPassed, model.StatusFailed:
		return result(b), nil
	case model.StatusUploading:
		return model.VerifyResult{}, fmt.Errorf("%w: upload of %d/%d bytes is not complete", model.ErrInvalidInput, b.ReceivedSize, b.Size)
	}

	if err := v.fees.Debit(tx, uploader, model.FeeVerify, 1); err != nil {
		return model.VerifyResult{}, err
	}

	admitted, err := v.chain.IsAdmitted(tx, height, hash)
	if err != nil {
		return model.VerifyResult{}, err
	}
	if admitted {
		return v.fail(tx, b, model.ReasonReachedConsensus)
	}

	logger := v.logger.With(
		zap.String("uploader", string(uploader)),
		zap.Uint64("height", height),
		zap.Stringer("hash", hash),
	)

	mayStall := true
	if b.Status == model.StatusComplete || b.Status == model.StatusVerifyingMerkle {
		reason, err := v.verifyMerkle(tx, b, budget)
		if err != nil {
			return model.VerifyResult{}, err
		}
		if reason != "" {
			logger.Info("block verification failed", zap.String("reason", string(reason)))
			return v.fail(tx, b, reason)
		}
		mayStall = false
	}

	if b.Status == model.StatusVerifyingParent {
		if err := v.verifyParent(tx, b); err != nil {
			if !errors.Is(err, model.ErrStalled) || mayStall {
				return model.VerifyResult{}, err
			}
			logger.Debug("merkle verified, parent not confirmed yet", zap.Error(err))
		}
	} else if b.Status == model.StatusAwaitingMinerPriority && mayStall {
		if err := v.releasePriority(tx, b); err != nil {
			return model.VerifyResult{}, err
		}
	}

	b.UpdatedAt = v.clock.Now()
	if err := tx.PutBuffer(b); err != nil {
		return model.VerifyResult{}, err
	}
	if b.Status == model.StatusPassed {
		logger.Info("block verification passed", zap.Stringer("cumulative_work", b.CumulativeWork))
	}
	return result(b), nil
}

func (v *Verifier) fail(tx *store.Tx, b *model.UploadBuffer, reason model.FailureReason) (model.VerifyResult, error) {
	b.Fail(reason)
	b.UpdatedAt = v.clock.Now()
	if err := tx.PutBuffer(b); err != nil {
		return model.VerifyResult{}, err
	}
	return result(b), nil
}

func (v *Verifier) verifyParent(tx *store.Tx, b *model.UploadBuffer) error {
	cur := b.Cursor
	if cur == nil {
		return fmt.Errorf("%w: buffer %d/%s in %s without cursor", model.ErrInvariant, b.Height, b.Hash, b.Status)
	}
	parentWork, found, err := v.chain.CumulativeWork(tx, b.Height-1, cur.PrevHash)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: parent %d/%s not confirmed", model.ErrStalled, b.Height-1, cur.PrevHash)
	}

	now := v.clock.Now()
	candidate := &model.Candidate{
		Height:         b.Height,
		Hash:           b.Hash,
		Uploader:       b.Uploader,
		BucketID:       b.BucketID,
		PrevHash:       cur.PrevHash,
		Work:           cur.Work,
		CumulativeWork: codec.AddWork(parentWork, cur.Work),
		Miner:          cur.Miner,
		Passed:         true,
		CreatedAt:      now,
	}

	if cur.Miner != "" {
		marker, found, err := tx.MinerMarker(b.Height, b.Hash)
		if err != nil {
			return err
		}
		if !found {
			marker = &model.MinerMarker{
				Height:    b.Height,
				Hash:      b.Hash,
				Miner:     cur.Miner,
				FirstSeen: now,
				ExpiresAt: v.cfg.HostBlock(now) + v.cfg.MinerPriorityBlocks,
			}
			if err := tx.PutMinerMarker(marker); err != nil {
				return err
			}
		}
		if b.Uploader != cur.Miner && v.cfg.HostBlock(now) < marker.ExpiresAt {
			candidate.Passed = false
		}
	}

	b.CumulativeWork = candidate.CumulativeWork
	b.Miner = candidate.Miner
	b.Cursor = nil
	if err := tx.PutCandidate(candidate); err != nil {
		return err
	}
	if !candidate.Passed {
		b.Status = model.StatusAwaitingMinerPriority
		return nil
	}
	b.Status = model.StatusPassed
	return v.chain.OnPassed(tx, b.Height, b.Hash)
}

func (v *Verifier) releasePriority(tx *store.Tx, b *model.UploadBuffer) error {
	marker, found, err := tx.MinerMarker(b.Height, b.Hash)
	if err != nil {
		return err
	}
	if found && v.cfg.HostBlock(v.clock.Now()) < marker.ExpiresAt {
		return fmt.Errorf("%w: miner %s has priority until host block %d", model.ErrStalled, marker.Miner, marker.ExpiresAt)
	}
	candidates, err := tx.Candidates(b.Height, b.Hash)
	if err != nil {
		return err
	}
	for i := range candidates {
		if candidates[i].Uploader != b.Uploader {
			continue
		}
		candidates[i].Passed = true
		if err := tx.PutCandidate(&candidates[i]); err != nil {
			return err
		}
		b.Status = model.StatusPassed
		return v.chain.OnPassed(tx, b.Height, b.Hash)
	}
	return fmt.Errorf("%w: buffer %d/%s awaiting miner without candidate", model.ErrInvariant, b.Height, b.Hash)
}

func result(b *model.UploadBuffer) model.VerifyResult {
	return model.VerifyResult{Status: b.Status, Reason: b.Reason, Hash: b.Hash}
}
