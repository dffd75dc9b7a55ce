package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Bridge interface {
		AnnounceBlock(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, size uint32, chunks uint8) (*model.UploadBuffer, error)
		PushChunk(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8, data []byte) (*model.UploadBuffer, error)
		DeleteChunk(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8) (*model.UploadBuffer, error)
		DeleteBuffer(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash) error
		Buffer(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error)
		Verify(ctx context.Context, uploader model.Account, height uint64, hash chainhash.Hash, budget uint64) (model.VerifyResult, error)
		Endorse(ctx context.Context, validator model.Account, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error)
		Endorsement(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error)
		ConsensusBlocks(ctx context.Context, height uint64) ([]model.ConsensusBlock, error)
		AdvanceChainState(ctx context.Context, caller model.Account, budget uint64) (model.AdvanceResult, error)
		ChainState(ctx context.Context) (*model.ChainState, error)
		Bootstrap(ctx context.Context, checkpoint model.IrreversibleBlock) error
		IrreversibleBlock(ctx context.Context, height uint64) (*model.IrreversibleBlock, error)
		UTXO(ctx context.Context, txid chainhash.Hash, index uint32) (*model.UTXO, error)
		Deposit(ctx context.Context, account model.Account, amount uint64) (*model.FeeAccount, error)
		Withdraw(ctx context.Context, account model.Account, amount uint64) (*model.FeeAccount, error)
		FeeBalance(ctx context.Context, account model.Account) (*model.FeeAccount, error)
		RegisterSynchronizer(ctx context.Context, account model.Account, addresses []string) (*model.Synchronizer, error)
		BuySlots(ctx context.Context, payer, receiver model.Account, n uint16) (*model.Synchronizer, error)
		Synchronizer(ctx context.Context, account model.Account) (*model.Synchronizer, error)
		SetStake(ctx context.Context, validator model.Account, mode model.StakeMode, amount uint64) (*model.Validator, error)
		RewardBalance(ctx context.Context, account model.Account) (*model.RewardBalance, error)
		RewardLog(ctx context.Context, height uint64) (*model.RewardLog, error)
		ClaimReward(ctx context.Context, account model.Account) (uint64, error)
		Purge(ctx context.Context, kind model.ResourceKind, height uint64) (int, error)
	}
)

var _ Bridge = (*service.Engine)(nil)
