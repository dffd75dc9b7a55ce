package model

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Phase is the active step of the chain-state machine.
type Phase uint8

const (
	PhaseWaiting Phase = iota
	PhaseParsing
	PhaseMigrating
	PhasePruning
	PhaseDistributingRewards
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseParsing:
		return "parsing"
	case PhaseMigrating:
		return "migrating"
	case PhasePruning:
		return "pruning"
	case PhaseDistributingRewards:
		return "distributing_rewards"
	default:
		return "unknown"
	}
}

// ConsensusBlock is a block that passed verification and reached endorsement quorum.
type ConsensusBlock struct {
	Height         uint64         `json:"height"`
	Hash           chainhash.Hash `json:"hash"`
	PrevHash       chainhash.Hash `json:"prev_hash"`
	Work           *big.Int       `json:"work"`
	CumulativeWork *big.Int       `json:"cumulative_work"`
	Uploader       Account        `json:"uploader"`
	BucketID       uint64         `json:"bucket_id"`
	Miner          Account        `json:"miner,omitempty"`
	AdmittedAt     time.Time      `json:"admitted_at"`
	Parsed         bool           `json:"parsed"`
	Parser         Account        `json:"parser,omitempty"`
	TxCount        uint64         `json:"tx_count"`
	EffectCount    uint64         `json:"effect_count"`
}

// ID returns the block identity.
func (b *ConsensusBlock) ID() BlockID {
	return BlockID{Height: b.Height, Hash: b.Hash}
}

// ParseCursor is the parsing progress tracker of the active block.
type ParseCursor struct {
	Height   uint64         `json:"height"`
	Hash     chainhash.Hash `json:"hash"`
	Uploader Account        `json:"uploader"`
	TxCount  uint64         `json:"tx_count"`
	TxIndex  uint64         `json:"tx_index"`
	VinIndex uint32         `json:"vin_index"`
	// VoutIndex counts outputs handled in the current transaction.
	VoutIndex uint32 `json:"vout_index"`
	// Offset is the byte offset of the current transaction in the block.
	Offset  uint32 `json:"offset"`
	NextSeq uint64 `json:"next_seq"`
}

// MigrationCursor tracks consumption of a winner's pending effects.
type MigrationCursor struct {
	Height   uint64         `json:"height"`
	Hash     chainhash.Hash `json:"hash"`
	NextSeq  uint64         `json:"next_seq"`
	Migrated uint64         `json:"migrated"`
	Total    uint64         `json:"total"`
	Created  uint64         `json:"created"`
	Spent    uint64         `json:"spent"`
}

// RewardCursor tracks reward fan-out of the migrated block.
type RewardCursor struct {
	Height     uint64         `json:"height"`
	Hash       chainhash.Hash `json:"hash"`
	Validators uint32         `json:"validators"`
	Paid       uint32         `json:"paid"`
}

// ChainState is the singleton canonical view.
type ChainState struct {
	HeadHeight         uint64           `json:"head_height"`
	IrreversibleHeight uint64           `json:"irreversible_height"`
	IrreversibleHash   chainhash.Hash   `json:"irreversible_hash"`
	Phase              Phase            `json:"phase"`
	Parser             Account          `json:"parser,omitempty"`
	ParseDeadline      time.Time        `json:"parse_deadline,omitempty"`
	Parse              *ParseCursor     `json:"parse,omitempty"`
	Migration          *MigrationCursor `json:"migration,omitempty"`
	Reward             *RewardCursor    `json:"reward,omitempty"`
	UTXOCount          uint64           `json:"utxo_count"`
}

// AdvanceResult is returned by a chain-state advance call.
type AdvanceResult struct {
	Phase  Phase          `json:"phase"`
	Height uint64         `json:"height"`
	Hash   chainhash.Hash `json:"hash"`
}

// RewardIssue is the subsidy issuance request for a migrated block.
type RewardIssue struct {
	Height       uint64           `json:"height"`
	Hash         chainhash.Hash   `json:"hash"`
	Miner        Account          `json:"miner,omitempty"`
	Synchronizer Account          `json:"synchronizer"`
	Parser       Account          `json:"parser"`
	Validators   []ValidatorStake `json:"validators"`
}
