// Package exporter copies irreversible bridge blocks and the outputs they
// spent into the ClickHouse archive.
package exporter

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/service"
	"github.com/goodnatureofminers/btcbridge-backend/internal/clock"
	"github.com/goodnatureofminers/btcbridge-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultBatchSize     = 200
	defaultPollInterval  = 10 * time.Second
	defaultErrorSleep    = 5 * time.Second
	outputFlushThreshold = 1000
	insertsPerSecond     = 20
)

// Config tunes the export loop.
type Config struct {
	StartHeight  uint64
	BatchSize    int
	PollInterval time.Duration
	ErrorSleep   time.Duration
}

// Exporter tails the irreversible chain. The archive's max block height is
// the cursor, so spent outputs of a block are written before the block.
type Exporter struct {
	source  Source
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error

	startHeight  uint64
	batchSize    int
	pollInterval time.Duration
	errorSleep   time.Duration

	blocks  *batcher.Batcher[model.IrreversibleBlock]
	outputs *batcher.Batcher[model.SpentUTXO]

	next   uint64
	synced bool
}

// New builds an Exporter.
func New(source Source, repo Repository, metrics Metrics, cfg Config, logger *zap.Logger) (*Exporter, error) {
	if source == nil {
		return nil, errors.New("exporter source is required")
	}
	if repo == nil {
		return nil, errors.New("exporter repository is required")
	}
	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ErrorSleep <= 0 {
		cfg.ErrorSleep = defaultErrorSleep
	}

	blocks, err := batcher.New(logger.Named("blockBatcher"), repo.InsertBlocks, cfg.BatchSize, insertsPerSecond)
	if err != nil {
		return nil, err
	}
	outputs, err := batcher.New(logger.Named("outputBatcher"), repo.InsertSpentOutputs, outputFlushThreshold, insertsPerSecond)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		source:  source,
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.Sleep(ctx, nil, d)
		},
		startHeight:  cfg.StartHeight,
		batchSize:    cfg.BatchSize,
		pollInterval: cfg.PollInterval,
		errorSleep:   cfg.ErrorSleep,
		blocks:       blocks,
		outputs:      outputs,
	}, nil
}

// Run exports until the context is canceled.
func (e *Exporter) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := e.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.logger.Warn("export iteration failed, backing off", zap.Error(err), zap.Duration("sleep", e.errorSleep))
			if sleepErr := e.sleep(ctx, e.errorSleep); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (e *Exporter) run(ctx context.Context) error {
	if err := e.sync(ctx); err != nil {
		return err
	}

	started := time.Now()
	entries, err := e.source.IrreversibleFrom(ctx, e.next, e.batchSize)
	if err != nil {
		e.metrics.ObserveBatch(err, 0, started)
		return err
	}
	if len(entries) == 0 {
		e.logger.Debug("no new irreversible blocks", zap.Uint64("next", e.next))
		return e.sleep(ctx, e.pollInterval)
	}

	if err := e.write(ctx, entries); err != nil {
		e.metrics.ObserveBatch(err, len(entries), started)
		// the archive may hold part of the batch; re-read the cursor
		e.outputs.Reset()
		e.blocks.Reset()
		e.synced = false
		return err
	}
	e.metrics.ObserveBatch(nil, len(entries), started)

	last := entries[len(entries)-1].Block.Height
	e.next = last + 1
	e.metrics.SetHeight(last)
	e.logger.Info("exported irreversible blocks",
		zap.Int("blocks", len(entries)),
		zap.Uint64("from", entries[0].Block.Height),
		zap.Uint64("to", last),
	)

	if len(entries) < e.batchSize {
		return e.sleep(ctx, e.pollInterval)
	}
	return nil
}

func (e *Exporter) sync(ctx context.Context) error {
	if e.synced {
		return nil
	}
	height, err := e.repo.MaxBlockHeight(ctx)
	if err != nil {
		return err
	}
	e.next = e.startHeight
	if height > 0 && height+1 > e.next {
		e.next = height + 1
	}
	e.synced = true
	e.logger.Info("archive cursor loaded", zap.Uint64("archived", height), zap.Uint64("next", e.next))
	return nil
}

func (e *Exporter) write(ctx context.Context, entries []service.Archive) error {
	for _, entry := range entries {
		if err := e.outputs.Add(ctx, entry.Spent...); err != nil {
			return err
		}
	}
	if err := e.outputs.Flush(ctx); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := e.blocks.Add(ctx, entry.Block); err != nil {
			return err
		}
	}
	return e.blocks.Flush(ctx)
}
