package store

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

func candidateKey(c *model.Candidate) []byte {
	return append(blockKey(c.Height, c.Hash), c.Uploader...)
}

// PutCandidate stores a passed (or priority-waiting) copy of a block.
func (t *Tx) PutCandidate(c *model.Candidate) error {
	return t.PutRecord(BucketCandidates, candidateKey(c), c)
}

// Candidates lists every uploader's copy of (height, hash).
func (t *Tx) Candidates(height uint64, hash chainhash.Hash) ([]model.Candidate, error) {
	return scanRecords[model.Candidate](t, BucketCandidates, blockKey(height, hash))
}

// CandidatesAtHeight lists candidates at height across hashes.
func (t *Tx) CandidatesAtHeight(height uint64) ([]model.Candidate, error) {
	return scanRecords[model.Candidate](t, BucketCandidates, heightKey(height))
}

// DeleteCandidate removes one uploader's candidate row.
func (t *Tx) DeleteCandidate(c *model.Candidate) error {
	return t.DeleteRecord(BucketCandidates, candidateKey(c))
}

// DeleteCandidatesAtHeight removes every candidate at height.
func (t *Tx) DeleteCandidatesAtHeight(height uint64) (int, error) {
	return t.DeletePrefix(BucketCandidates, heightKey(height))
}

// MinerMarker loads the first-seen marker of (height, hash).
func (t *Tx) MinerMarker(height uint64, hash chainhash.Hash) (*model.MinerMarker, bool, error) {
	var m model.MinerMarker
	found, err := t.GetRecord(BucketMinerMarkers, blockKey(height, hash), &m)
	if err != nil || !found {
		return nil, found, err
	}
	return &m, true, nil
}

// PutMinerMarker stores a first-seen marker.
func (t *Tx) PutMinerMarker(m *model.MinerMarker) error {
	return t.PutRecord(BucketMinerMarkers, blockKey(m.Height, m.Hash), m)
}

// DeleteMinerMarker removes the marker of (height, hash).
func (t *Tx) DeleteMinerMarker(height uint64, hash chainhash.Hash) error {
	return t.DeleteRecord(BucketMinerMarkers, blockKey(height, hash))
}

// DeleteMinerMarkersAtHeight removes markers at height.
func (t *Tx) DeleteMinerMarkersAtHeight(height uint64) (int, error) {
	return t.DeletePrefix(BucketMinerMarkers, heightKey(height))
}
