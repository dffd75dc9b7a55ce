package verifier

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FeeLedger interface {
		Debit(tx *store.Tx, account model.Account, kind model.FeeKind, units uint64) error
	}
	MinerResolver interface {
		ResolveAddress(tx *store.Tx, address string) (model.Account, bool, error)
	}
	ChainState interface {
		IsAdmitted(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error)
		CumulativeWork(tx *store.Tx, height uint64, hash chainhash.Hash) (*big.Int, bool, error)
		OnPassed(tx *store.Tx, height uint64, hash chainhash.Hash) error
	}
	BlockReader interface {
		ReadRange(tx *store.Tx, b *model.UploadBuffer, start, end uint32) ([]byte, error)
	}
)
