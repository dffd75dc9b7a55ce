// Package codec decodes Bitcoin block data from raw bytes and computes the hashes,
// merkle roots and work values the verifier needs. It is stateless.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// ErrTruncated reports data that ends before a structure is complete.
var ErrTruncated = errors.New("truncated data")

// DecodeHeader parses the 80-byte block header at the start of data.
func DecodeHeader(data []byte) (wire.BlockHeader, error) {
	var header wire.BlockHeader
	if len(data) < model.HeaderSize {
		return header, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, model.HeaderSize, len(data))
	}
	if err := header.Deserialize(bytes.NewReader(data[:model.HeaderSize])); err != nil {
		return header, fmt.Errorf("deserialize header: %w", err)
	}
	return header, nil
}

// ReadVarInt decodes a compact size integer and returns it with the number of bytes read.
func ReadVarInt(data []byte) (uint64, int, error) {
	r := bytes.NewReader(data)
	v, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, 0, classify(err)
	}
	return v, len(data) - r.Len(), nil
}

// DecodeTx parses one witness-aware transaction and returns the bytes it consumed.
func DecodeTx(data []byte) (*wire.MsgTx, int, error) {
	r := bytes.NewReader(data)
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(r); err != nil {
		return nil, 0, classify(err)
	}
	return tx, len(data) - r.Len(), nil
}

func classify(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}

// Target expands compact bits; ok is false for negative, zero or overflowing targets.
func Target(bits uint32) (target *big.Int, ok bool) {
	target = blockchain.CompactToBig(bits)
	if target.Sign() <= 0 || target.BitLen() > 256 {
		return target, false
	}
	return target, true
}

// CheckProofOfWork reports whether the header hash is at or below its target.
func CheckProofOfWork(header *wire.BlockHeader) bool {
	target, ok := Target(header.Bits)
	if !ok {
		return false
	}
	hash := header.BlockHash()
	return blockchain.HashToBig(&hash).Cmp(target) <= 0
}

// Work returns the expected number of hashes for a block with the given bits.
func Work(bits uint32) *big.Int {
	return blockchain.CalcWork(bits)
}

// AddWork returns a + b without mutating either.
func AddWork(a, b *big.Int) *big.Int {
	sum := new(big.Int)
	if a != nil {
		sum.Set(a)
	}
	if b != nil {
		sum.Add(sum, b)
	}
	return sum
}
