package service

import (
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(command string, err error, started time.Time)
		ObserveVerify(res model.VerifyResult)
		SetChainState(st *model.ChainState)
	}
)
