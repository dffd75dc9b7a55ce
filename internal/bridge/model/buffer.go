package model

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BufferStatus is the lifecycle state of an upload buffer.
type BufferStatus uint8

const (
	StatusUploading BufferStatus = iota + 1
	StatusComplete
	StatusVerifyingMerkle
	StatusVerifyingParent
	StatusAwaitingMinerPriority
	StatusFailed
	StatusPassed
)

func (s BufferStatus) String() string {
	switch s {
	case StatusUploading:
		return "uploading"
	case StatusComplete:
		return "upload_complete"
	case StatusVerifyingMerkle:
		return "verify_merkle"
	case StatusVerifyingParent:
		return "verify_parent_hash"
	case StatusAwaitingMinerPriority:
		return "waiting_miner_verification"
	case StatusFailed:
		return "verify_fail"
	case StatusPassed:
		return "verify_pass"
	default:
		return "unknown"
	}
}

// VerificationStarted reports whether the buffer content is frozen by verification.
func (s BufferStatus) VerificationStarted() bool {
	switch s {
	case StatusVerifyingMerkle, StatusVerifyingParent, StatusAwaitingMinerPriority, StatusPassed:
		return true
	default:
		return false
	}
}

// FailureReason explains a terminal verification failure.
type FailureReason string

const (
	ReasonHashMismatch         FailureReason = "hash_mismatch"
	ReasonInvalidTarget        FailureReason = "invalid_target"
	ReasonTxSizeLimits         FailureReason = "tx_size_limits"
	ReasonCoinbaseMissing      FailureReason = "coinbase_missing"
	ReasonDataExceeds          FailureReason = "data_exceeds"
	ReasonMissingBlockData     FailureReason = "missing_block_data"
	ReasonMerkleInvalid        FailureReason = "merkle_invalid"
	ReasonWitnessMerkleInvalid FailureReason = "witness_merkle_invalid"
	ReasonReachedConsensus     FailureReason = "reached_consensus"
	ReasonInvalidTransaction   FailureReason = "invalid_transaction"
)

// BlockID identifies a Bitcoin block by height and hash.
type BlockID struct {
	Height uint64         `json:"height"`
	Hash   chainhash.Hash `json:"hash"`
}

// UploadBuffer holds a block announced by one uploader.
type UploadBuffer struct {
	Uploader       Account             `json:"uploader"`
	Height         uint64              `json:"height"`
	Hash           chainhash.Hash      `json:"hash"`
	BucketID       uint64              `json:"bucket_id"`
	Size           uint32              `json:"size"`
	ChunkCount     uint8               `json:"chunk_count"`
	ReceivedSize   uint32              `json:"received_size"`
	ReceivedChunks uint8               `json:"received_chunks"`
	Status         BufferStatus        `json:"status"`
	Reason         FailureReason       `json:"reason,omitempty"`
	Cursor         *VerificationCursor `json:"cursor,omitempty"`
	CumulativeWork *big.Int            `json:"cumulative_work,omitempty"`
	Miner          Account             `json:"miner,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ID returns the block identity of the buffer.
func (b *UploadBuffer) ID() BlockID {
	return BlockID{Height: b.Height, Hash: b.Hash}
}

// Fail moves the buffer to Failed and drops transient verification state.
func (b *UploadBuffer) Fail(reason FailureReason) {
	b.Status = StatusFailed
	b.Reason = reason
	b.Cursor = nil
	b.CumulativeWork = nil
	b.Miner = ""
}

// VerificationCursor tracks multi-call verification progress.
type VerificationCursor struct {
	PrevHash          chainhash.Hash   `json:"prev_hash"`
	MerkleRoot        chainhash.Hash   `json:"merkle_root"`
	Work              *big.Int         `json:"work"`
	TxCount           uint64           `json:"tx_count"`
	TxProcessed       uint64           `json:"tx_processed"`
	Offset            uint32           `json:"offset"`
	TxLayer           []chainhash.Hash `json:"tx_layer,omitempty"`
	WitnessLayer      []chainhash.Hash `json:"witness_layer,omitempty"`
	HasWitness        bool             `json:"has_witness"`
	WitnessReserve    *chainhash.Hash  `json:"witness_reserve,omitempty"`
	WitnessCommitment *chainhash.Hash  `json:"witness_commitment,omitempty"`
	Miner             Account          `json:"miner,omitempty"`
}

// Candidate is a passed copy of a block from one uploader, racing for consensus.
type Candidate struct {
	Height         uint64         `json:"height"`
	Hash           chainhash.Hash `json:"hash"`
	Uploader       Account        `json:"uploader"`
	BucketID       uint64         `json:"bucket_id"`
	PrevHash       chainhash.Hash `json:"prev_hash"`
	Work           *big.Int       `json:"work"`
	CumulativeWork *big.Int       `json:"cumulative_work"`
	Miner          Account        `json:"miner,omitempty"`
	Passed         bool           `json:"passed"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MinerMarker records the first time a block with a designated miner passed.
type MinerMarker struct {
	Height    uint64         `json:"height"`
	Hash      chainhash.Hash `json:"hash"`
	Miner     Account        `json:"miner"`
	FirstSeen time.Time      `json:"first_seen"`
	ExpiresAt uint64         `json:"expires_at"`
}

// VerifyResult is returned by a verify call.
type VerifyResult struct {
	Status BufferStatus   `json:"status"`
	Reason FailureReason  `json:"reason,omitempty"`
	Hash   chainhash.Hash `json:"hash"`
}
