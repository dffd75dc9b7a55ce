package endorse

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StakeRegistry interface {
		Qualified(tx *store.Tx, mode model.StakeMode, floor uint64) ([]model.ValidatorStake, error)
	}
	FeeLedger interface {
		Debit(tx *store.Tx, account model.Account, kind model.FeeKind, units uint64) error
	}
	FinalitySink interface {
		OnEndorsed(tx *store.Tx, height uint64, hash chainhash.Hash) error
	}
)
