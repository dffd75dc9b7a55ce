package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		IrreversibleFrom(ctx context.Context, from uint64, limit int) ([]service.Archive, error)
	}
	Repository interface {
		MaxBlockHeight(ctx context.Context) (uint64, error)
		InsertBlocks(ctx context.Context, blocks []model.IrreversibleBlock) error
		InsertSpentOutputs(ctx context.Context, outputs []model.SpentUTXO) error
	}
	Metrics interface {
		ObserveBatch(err error, blocks int, started time.Time)
		SetHeight(height uint64)
	}
)
