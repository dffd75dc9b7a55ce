package store

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

var chainStateKey = []byte("chain_state")

// ChainState loads the singleton, returning a zero state before the first write.
func (t *Tx) ChainState() (*model.ChainState, error) {
	var s model.ChainState
	if _, err := t.GetRecord(BucketMeta, chainStateKey, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// PutChainState persists the singleton.
func (t *Tx) PutChainState(s *model.ChainState) error {
	return t.PutRecord(BucketMeta, chainStateKey, s)
}

// ConsensusBlock loads an admitted block.
func (t *Tx) ConsensusBlock(height uint64, hash chainhash.Hash) (*model.ConsensusBlock, bool, error) {
	var b model.ConsensusBlock
	found, err := t.GetRecord(BucketConsensus, blockKey(height, hash), &b)
	if err != nil || !found {
		return nil, found, err
	}
	return &b, true, nil
}

// PutConsensusBlock stores an admitted block.
func (t *Tx) PutConsensusBlock(b *model.ConsensusBlock) error {
	return t.PutRecord(BucketConsensus, blockKey(b.Height, b.Hash), b)
}

// ConsensusBlocksAtHeight lists admitted blocks at height in hash order.
func (t *Tx) ConsensusBlocksAtHeight(height uint64) ([]model.ConsensusBlock, error) {
	return scanRecords[model.ConsensusBlock](t, BucketConsensus, heightKey(height))
}

// ConsensusBlocksFrom lists admitted blocks with height >= from in (height, hash) order.
func (t *Tx) ConsensusBlocksFrom(from uint64) ([]model.ConsensusBlock, error) {
	var out []model.ConsensusBlock
	err := t.ScanRange(BucketConsensus, heightKey(from), heightKey(^uint64(0)), func(_, v []byte) error {
		var b model.ConsensusBlock
		if err := decode(BucketConsensus, v, &b); err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	return out, err
}

// DeleteConsensusBlock removes an admitted block.
func (t *Tx) DeleteConsensusBlock(height uint64, hash chainhash.Hash) error {
	return t.DeleteRecord(BucketConsensus, blockKey(height, hash))
}

// Endorsement loads the endorsement record of (height, hash).
func (t *Tx) Endorsement(height uint64, hash chainhash.Hash) (*model.EndorsementRecord, bool, error) {
	var r model.EndorsementRecord
	found, err := t.GetRecord(BucketEndorsements, blockKey(height, hash), &r)
	if err != nil || !found {
		return nil, found, err
	}
	return &r, true, nil
}

// EndorsementsAtHeight lists records at height.
func (t *Tx) EndorsementsAtHeight(height uint64) ([]model.EndorsementRecord, error) {
	return scanRecords[model.EndorsementRecord](t, BucketEndorsements, heightKey(height))
}

// PutEndorsement stores an endorsement record.
func (t *Tx) PutEndorsement(r *model.EndorsementRecord) error {
	return t.PutRecord(BucketEndorsements, blockKey(r.Height, r.Hash), r)
}

// DeleteEndorsementsAtHeight removes every record at height.
func (t *Tx) DeleteEndorsementsAtHeight(height uint64) (int, error) {
	return t.DeletePrefix(BucketEndorsements, heightKey(height))
}
