package chainstate

import (
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FeeLedger interface {
		Debit(tx *store.Tx, account model.Account, kind model.FeeKind, units uint64) error
	}
	RewardLedger interface {
		Distribute(tx *store.Tx, issue model.RewardIssue) error
		PayBatch(tx *store.Tx, height uint64, from, to uint32) error
	}
	MinerRegistry interface {
		IsSynchronizer(tx *store.Tx, account model.Account) (bool, error)
		NotifyConfirmed(tx *store.Tx, account model.Account, height uint64) error
	}
	BlockReader interface {
		ReadRange(tx *store.Tx, b *model.UploadBuffer, start, end uint32) ([]byte, error)
	}
)
