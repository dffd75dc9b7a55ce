package codec

import (
	"math/bits"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MerkleRoot folds leaves into a root, duplicating the last hash of odd levels.
func MerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			next = append(next, blockchain.HashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}
	return level[0]
}

// RaiseToLayer lifts the root of a subtree with rows leaves to the given layer by
// hashing it with itself, as a lone node is paired in a larger tree.
func RaiseToLayer(root chainhash.Hash, rows uint64, layer uint8) chainhash.Hash {
	height := 0
	if rows > 1 {
		height = bits.Len64(rows - 1)
	}
	for ; height < int(layer); height++ {
		root = blockchain.HashMerkleBranches(&root, &root)
	}
	return root
}

// Leaves returns txids and wtxids of txs; the coinbase wtxid is the zero hash.
func Leaves(txs []*wire.MsgTx, firstIsCoinbase bool) (txids, wtxids []chainhash.Hash) {
	txids = make([]chainhash.Hash, len(txs))
	wtxids = make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		txids[i] = tx.TxHash()
		if i == 0 && firstIsCoinbase {
			continue
		}
		wtxids[i] = tx.WitnessHash()
	}
	return txids, wtxids
}

// IsCoinbase reports whether tx has the coinbase shape.
func IsCoinbase(tx *wire.MsgTx) bool {
	return blockchain.IsCoinBaseTx(tx)
}

// WitnessCommitment returns the commitment from the last matching coinbase output.
func WitnessCommitment(coinbase *wire.MsgTx) (*chainhash.Hash, bool) {
	raw, ok := blockchain.ExtractWitnessCommitment(btcutil.NewTx(coinbase))
	if !ok {
		return nil, false
	}
	h, err := chainhash.NewHash(raw)
	if err != nil {
		return nil, false
	}
	return h, true
}

// WitnessReserve returns the 32-byte reserve value from the coinbase input witness.
func WitnessReserve(coinbase *wire.MsgTx) (*chainhash.Hash, bool) {
	if len(coinbase.TxIn) == 0 {
		return nil, false
	}
	witness := coinbase.TxIn[0].Witness
	if len(witness) != 1 || len(witness[0]) != chainhash.HashSize {
		return nil, false
	}
	h, err := chainhash.NewHash(witness[0])
	if err != nil {
		return nil, false
	}
	return h, true
}

// WitnessCommitmentMatches checks DoubleSHA256(root || reserve) against commitment.
func WitnessCommitmentMatches(root, reserve, commitment chainhash.Hash) bool {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], root[:])
	copy(buf[chainhash.HashSize:], reserve[:])
	return chainhash.DoubleHashH(buf[:]) == commitment
}
