package upload

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FeeLedger interface {
		Debit(tx *store.Tx, account model.Account, kind model.FeeKind, units uint64) error
	}
	SlotRegistry interface {
		Slots(tx *store.Tx, account model.Account) (uint16, error)
	}
	ConsensusView interface {
		IsAdmitted(tx *store.Tx, height uint64, hash chainhash.Hash) (bool, error)
	}
)
