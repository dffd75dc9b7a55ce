package model

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UTXO is a canonical unspent output.
type UTXO struct {
	TxID   chainhash.Hash `json:"txid"`
	Index  uint32         `json:"index"`
	Script []byte         `json:"script"`
	Value  int64          `json:"value"`
}

// EffectKind is the type of a staged UTXO effect.
type EffectKind uint8

const (
	EffectSpend EffectKind = iota + 1
	EffectCreate
)

func (k EffectKind) String() string {
	switch k {
	case EffectSpend:
		return "spend"
	case EffectCreate:
		return "create"
	default:
		return "unknown"
	}
}

// PendingEffect is a staged spend or create for a not yet irreversible block.
type PendingEffect struct {
	Height uint64         `json:"height"`
	Hash   chainhash.Hash `json:"hash"`
	Seq    uint64         `json:"seq"`
	Kind   EffectKind     `json:"kind"`
	TxID   chainhash.Hash `json:"txid"`
	Index  uint32         `json:"index"`
	Script []byte         `json:"script,omitempty"`
	Value  int64          `json:"value"`
}

// SpentUTXO archives an output removed by migration.
type SpentUTXO struct {
	UTXO
	SpentHeight uint64         `json:"spent_height"`
	SpentBlock  chainhash.Hash `json:"spent_block"`
}

// IrreversibleBlock is the permanently persisted header of a migrated block.
type IrreversibleBlock struct {
	Height         uint64         `json:"height"`
	Hash           chainhash.Hash `json:"hash"`
	PrevHash       chainhash.Hash `json:"prev_hash"`
	MerkleRoot     chainhash.Hash `json:"merkle_root"`
	Version        int32          `json:"version"`
	Timestamp      time.Time      `json:"timestamp"`
	Bits           uint32         `json:"bits"`
	Nonce          uint32         `json:"nonce"`
	Work           *big.Int       `json:"work"`
	CumulativeWork *big.Int       `json:"cumulative_work"`
	Miner          Account        `json:"miner,omitempty"`
	Synchronizer   Account        `json:"synchronizer"`
	Parser         Account        `json:"parser"`
	TxCount        uint64         `json:"tx_count"`
	UTXOCreated    uint64         `json:"utxo_created"`
	UTXOSpent      uint64         `json:"utxo_spent"`
	ConfirmedAt    time.Time      `json:"confirmed_at"`
}

// FeeKind names a charged command.
type FeeKind uint8

const (
	FeeBuySlot FeeKind = iota + 1
	FeePushChunk
	FeeVerify
	FeeEndorse
	FeeParse
)

func (k FeeKind) String() string {
	switch k {
	case FeeBuySlot:
		return "buy_slot"
	case FeePushChunk:
		return "push_chunk"
	case FeeVerify:
		return "verify"
	case FeeEndorse:
		return "endorse"
	case FeeParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ResourceKind names a table purgeable by the admin command.
type ResourceKind uint8

const (
	ResourceBuffers ResourceKind = iota + 1
	ResourceChunks
	ResourceCandidates
	ResourceEndorsements
	ResourceConsensusBlocks
	ResourcePendingEffects
	ResourceSpentUTXOs
)

// ParseResourceKind resolves an admin resource name.
func ParseResourceKind(name string) (ResourceKind, bool) {
	for _, k := range []ResourceKind{
		ResourceBuffers, ResourceChunks, ResourceCandidates, ResourceEndorsements,
		ResourceConsensusBlocks, ResourcePendingEffects, ResourceSpentUTXOs,
	} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func (k ResourceKind) String() string {
	switch k {
	case ResourceBuffers:
		return "buffers"
	case ResourceChunks:
		return "chunks"
	case ResourceCandidates:
		return "candidates"
	case ResourceEndorsements:
		return "endorsements"
	case ResourceConsensusBlocks:
		return "consensus_blocks"
	case ResourcePendingEffects:
		return "pending_effects"
	case ResourceSpentUTXOs:
		return "spent_utxos"
	default:
		return "unknown"
	}
}
