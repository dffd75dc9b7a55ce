// Package bridgetest builds regtest blocks and stores for bridge tests.
package bridgetest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/codec"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

// RegtestBits is the minimum-difficulty target; roughly every other nonce satisfies it.
const RegtestBits = 0x207fffff

var witnessMagic = []byte{0xaa, 0x21, 0xa9, 0xed}

// Block is a mined block together with its serialization.
type Block struct {
	Msg   *wire.MsgBlock
	Hash  chainhash.Hash
	Bytes []byte
}

// Size returns the serialized size.
func (b *Block) Size() uint32 {
	return uint32(len(b.Bytes))
}

// Chunks splits the serialization into n parts of near-equal size.
func (b *Block) Chunks(n int) [][]byte {
	return Split(b.Bytes, n)
}

// Split cuts data into n contiguous parts; the last part takes the remainder.
func Split(data []byte, n int) [][]byte {
	if n <= 1 {
		return [][]byte{data}
	}
	step := len(data) / n
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		end := (i + 1) * step
		if i == n-1 {
			end = len(data)
		}
		out = append(out, data[i*step:end])
	}
	return out
}

// Coinbase builds a BIP34 coinbase for height; without outputs it pays 50 BTC to OP_TRUE.
func Coinbase(height uint64, outputs ...*wire.TxOut) *wire.MsgTx {
	sig, err := txscript.NewScriptBuilder().AddInt64(int64(height)).AddData([]byte("btcbridge")).Script()
	if err != nil {
		panic(err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.MaxPrevOutIndex},
		SignatureScript:  sig,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	if len(outputs) == 0 {
		outputs = []*wire.TxOut{wire.NewTxOut(50*btcutil.SatoshiPerBitcoin, []byte{txscript.OP_TRUE})}
	}
	for _, out := range outputs {
		tx.AddTxOut(out)
	}
	return tx
}

// MinerCoinbase builds a coinbase carrying the OP_RETURN identity of miner.
func MinerCoinbase(height uint64, miner string) *wire.MsgTx {
	script, ok := codec.EncodeOpReturnAccount(model.Account(miner))
	if !ok {
		panic("invalid miner account " + miner)
	}
	return Coinbase(height,
		wire.NewTxOut(50*btcutil.SatoshiPerBitcoin, []byte{txscript.OP_TRUE}),
		wire.NewTxOut(0, script),
	)
}

// Spend builds a transaction spending prev into outputs; with witness set the input
// carries a dummy witness stack.
func Spend(prev wire.OutPoint, witness bool, outputs ...*wire.TxOut) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	in := wire.NewTxIn(&prev, nil, nil)
	if witness {
		in.Witness = wire.TxWitness{bytes.Repeat([]byte{0x01}, 71), bytes.Repeat([]byte{0x02}, 33)}
	} else {
		in.SignatureScript = []byte{txscript.OP_TRUE}
	}
	tx.AddTxIn(in)
	for _, out := range outputs {
		tx.AddTxOut(out)
	}
	return tx
}

// Mine assembles txs on top of prev, adds the witness commitment when any
// transaction carries witness data and grinds the nonce.
func Mine(prev chainhash.Hash, txs ...*wire.MsgTx) *Block {
	return MineWithBits(prev, RegtestBits, txs...)
}

// MineWithBits is Mine with an explicit compact target.
func MineWithBits(prev chainhash.Hash, bits uint32, txs ...*wire.MsgTx) *Block {
	if hasWitness(txs) {
		addWitnessCommitment(txs)
	}
	header := wire.BlockHeader{
		Version:    0x20000000,
		PrevBlock:  prev,
		MerkleRoot: MerkleRoot(txs...),
		Timestamp:  time.Unix(1_700_000_000, 0),
		Bits:       bits,
	}
	return Assemble(Solve(header), txs...)
}

// Solve grinds the nonce until the header meets its own target.
func Solve(header wire.BlockHeader) wire.BlockHeader {
	for !codec.CheckProofOfWork(&header) {
		header.Nonce++
	}
	return header
}

// MerkleRoot returns the txid merkle root of txs as computed by btcd.
func MerkleRoot(txs ...*wire.MsgTx) chainhash.Hash {
	utxs := make([]*btcutil.Tx, len(txs))
	for i, tx := range txs {
		utxs[i] = btcutil.NewTx(tx)
	}
	return blockchain.CalcMerkleRoot(utxs, false)
}

// Assemble serializes header and txs without mining or adding commitments.
func Assemble(header wire.BlockHeader, txs ...*wire.MsgTx) *Block {
	msg := wire.NewMsgBlock(&header)
	for _, tx := range txs {
		if err := msg.AddTransaction(tx); err != nil {
			panic(err)
		}
	}
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		panic(err)
	}
	return &Block{Msg: msg, Hash: header.BlockHash(), Bytes: buf.Bytes()}
}

func hasWitness(txs []*wire.MsgTx) bool {
	for _, tx := range txs[1:] {
		if tx.HasWitness() {
			return true
		}
	}
	return false
}

func addWitnessCommitment(txs []*wire.MsgTx) {
	var reserve [chainhash.HashSize]byte
	txs[0].TxIn[0].Witness = wire.TxWitness{reserve[:]}
	utxs := make([]*btcutil.Tx, len(txs))
	for i, tx := range txs {
		utxs[i] = btcutil.NewTx(tx)
	}
	root := blockchain.CalcMerkleRoot(utxs, true)
	commitment := chainhash.DoubleHashB(append(root[:], reserve[:]...))
	script := append([]byte{txscript.OP_RETURN, 0x24}, witnessMagic...)
	script = append(script, commitment...)
	txs[0].AddTxOut(wire.NewTxOut(0, script))
}

// OpenStore opens a bbolt store in a temporary directory closed with the test.
func OpenStore(t testing.TB) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "bridge.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
