package agent

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the bitcoind view an agent follows.
	Node interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error)
	}
	RelayerBridge interface {
		ChainState(ctx context.Context) (*model.ChainState, error)
		ConsensusBlocks(ctx context.Context, height uint64) ([]model.ConsensusBlock, error)
		Buffer(ctx context.Context, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error)
		AnnounceBlock(ctx context.Context, height uint64, hash chainhash.Hash, size uint32, chunks uint8) (*model.UploadBuffer, error)
		PushChunk(ctx context.Context, height uint64, hash chainhash.Hash, chunkID uint8, data []byte) (*model.UploadBuffer, error)
		DeleteBuffer(ctx context.Context, height uint64, hash chainhash.Hash) error
		Verify(ctx context.Context, height uint64, hash chainhash.Hash, budget uint64) (model.VerifyResult, error)
	}
	SynchronizerBridge interface {
		AdvanceChainState(ctx context.Context, budget uint64) (model.AdvanceResult, error)
		ClaimReward(ctx context.Context) (uint64, error)
	}
	ValidatorBridge interface {
		ChainState(ctx context.Context) (*model.ChainState, error)
		Endorsement(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error)
		Endorse(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error)
	}
	AdminBridge interface {
		Bootstrap(ctx context.Context, checkpoint model.IrreversibleBlock) (*model.ChainState, error)
	}
	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
	}
)
