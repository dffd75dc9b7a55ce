package agent

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// Checkpoint builds the bootstrap block at height from the node's header.
// bitcoind reports chain work per header; btcd's client does not decode it,
// so the operator passes it in.
func Checkpoint(node Node, height uint64, chainWork *big.Int) (model.IrreversibleBlock, error) {
	if chainWork == nil || chainWork.Sign() <= 0 {
		return model.IrreversibleBlock{}, errors.New("checkpoint chain work must be positive")
	}
	hash, err := blockHash(node, height)
	if err != nil {
		return model.IrreversibleBlock{}, err
	}
	header, err := node.GetBlockHeader(&hash)
	if err != nil {
		return model.IrreversibleBlock{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if got := header.BlockHash(); got != hash {
		return model.IrreversibleBlock{}, fmt.Errorf("node returned header %s for %s", got, hash)
	}
	return model.IrreversibleBlock{
		Height:         height,
		Hash:           hash,
		PrevHash:       header.PrevBlock,
		MerkleRoot:     header.MerkleRoot,
		Version:        header.Version,
		Timestamp:      header.Timestamp,
		Bits:           header.Bits,
		Nonce:          header.Nonce,
		Work:           blockchain.CalcWork(header.Bits),
		CumulativeWork: new(big.Int).Set(chainWork),
	}, nil
}

// Bootstrap seeds the bridge with the checkpoint at height.
func Bootstrap(ctx context.Context, node Node, admin AdminBridge, height uint64, chainWork *big.Int) (*model.ChainState, error) {
	checkpoint, err := Checkpoint(node, height, chainWork)
	if err != nil {
		return nil, err
	}
	return admin.Bootstrap(ctx, checkpoint)
}
