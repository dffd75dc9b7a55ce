package agent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/pkg/safe"
	"github.com/goodnatureofminers/btcbridge-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultLookahead    = 12
	defaultChunkSize    = 512 << 10
	defaultPushWorkers  = 4
	defaultVerifyBudget = 2048
)

// RelayerConfig tunes the relayer.
type RelayerConfig struct {
	// Lookahead is how many heights above the irreversible one are relayed.
	Lookahead    uint64
	ChunkSize    int
	Workers      int
	VerifyBudget uint64
	PollInterval time.Duration
	ErrorSleep   time.Duration
	// BlockSignal, when set, ends a poll wait as soon as the node has a new block.
	BlockSignal <-chan struct{}
}

// Relayer uploads the node's best chain into bridge buffers and drives
// their verification.
type Relayer struct {
	loop
	node   Node
	bridge RelayerBridge
	cfg    RelayerConfig

	// failed blocks are not uploaded again
	failed map[chainhash.Hash]uint64
}

func NewRelayer(node Node, bridge RelayerBridge, metrics Metrics, cfg RelayerConfig, logger *zap.Logger) (*Relayer, error) {
	if node == nil {
		return nil, errors.New("relayer node is required")
	}
	if bridge == nil {
		return nil, errors.New("relayer bridge is required")
	}
	l, err := newLoop(metrics, cfg.ErrorSleep, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Lookahead == 0 {
		cfg.Lookahead = defaultLookahead
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultPushWorkers
	}
	if cfg.VerifyBudget == 0 {
		cfg.VerifyBudget = defaultVerifyBudget
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	l.signal = cfg.BlockSignal
	return &Relayer{
		loop:   l,
		node:   node,
		bridge: bridge,
		cfg:    cfg,
		failed: make(map[chainhash.Hash]uint64),
	}, nil
}

// Run relays until the context is canceled.
func (r *Relayer) Run(ctx context.Context) error {
	return r.loop.run(ctx, r.run)
}

func (r *Relayer) run(ctx context.Context) error {
	started := time.Now()
	st, err := r.bridge.ChainState(ctx)
	r.observe("chain_state", started, err)
	if err != nil {
		return err
	}
	if st.IrreversibleHeight == 0 {
		r.logger.Info("bridge is not bootstrapped yet")
		return r.wait(ctx, r.cfg.PollInterval)
	}

	tip, err := nodeTip(r.node)
	if err != nil {
		return err
	}
	for hash, height := range r.failed {
		if height <= st.IrreversibleHeight {
			delete(r.failed, hash)
		}
	}

	to := min(tip, st.IrreversibleHeight+r.cfg.Lookahead)
	for height := st.IrreversibleHeight + 1; height <= to; height++ {
		proceed, err := r.relay(ctx, height)
		if err != nil {
			return err
		}
		if !proceed {
			break
		}
	}
	return r.wait(ctx, r.cfg.PollInterval)
}

func nodeTip(node Node) (uint64, error) {
	count, err := node.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Uint64(count)
}

// relay brings the node's block at height as far as it can go and reports
// whether the next height may be relayed.
func (r *Relayer) relay(ctx context.Context, height uint64) (bool, error) {
	hash, err := blockHash(r.node, height)
	if err != nil {
		return false, err
	}
	logger := r.logger.With(zap.Uint64("height", height), zap.Stringer("hash", hash))

	if _, ok := r.failed[hash]; ok {
		return false, nil
	}
	blocks, err := r.bridge.ConsensusBlocks(ctx, height)
	if err != nil {
		return false, err
	}
	for _, b := range blocks {
		if b.Hash == hash {
			return true, nil
		}
	}

	buf, err := r.bridge.Buffer(ctx, height, hash)
	switch {
	case errors.Is(err, model.ErrNotFound):
		buf = nil
	case err != nil:
		return false, err
	}
	if buf == nil || buf.Status == model.StatusUploading {
		if buf, err = r.upload(ctx, height, hash); err != nil {
			return false, err
		}
	}

	switch buf.Status {
	case model.StatusPassed:
		return true, nil
	case model.StatusFailed:
		return false, r.drop(ctx, logger, height, hash, buf.Reason)
	case model.StatusUploading:
		logger.Warn("upload incomplete", zap.Uint8("received_chunks", buf.ReceivedChunks), zap.Uint8("chunks", buf.ChunkCount))
		return false, nil
	}
	return r.verify(ctx, logger, height, hash)
}

func (r *Relayer) upload(ctx context.Context, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error) {
	block, err := r.node.GetBlock(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	var raw bytes.Buffer
	if err := block.Serialize(&raw); err != nil {
		return nil, fmt.Errorf("serialize block %s: %w", hash, err)
	}
	chunks := split(raw.Bytes(), r.cfg.ChunkSize)
	count, err := safe.Uint8(len(chunks))
	if err != nil {
		return nil, fmt.Errorf("block %s needs %d chunks: %w", hash, len(chunks), err)
	}
	size, err := safe.Uint32(raw.Len())
	if err != nil {
		return nil, err
	}

	started := time.Now()
	buf, err := r.bridge.AnnounceBlock(ctx, height, hash, size, count)
	r.observe("announce", started, err)
	if err != nil {
		return nil, err
	}
	if buf.Status != model.StatusUploading {
		return buf, nil
	}

	started = time.Now()
	err = workerpool.Process(ctx, r.cfg.Workers, chunks, func(ctx context.Context, i int, data []byte) error {
		id, err := safe.Uint8(i)
		if err != nil {
			return err
		}
		_, err = r.bridge.PushChunk(ctx, height, hash, id, data)
		return err
	})
	r.observe("push_chunks", started, err)
	if err != nil {
		return nil, err
	}
	r.logger.Info("block uploaded",
		zap.Uint64("height", height),
		zap.Stringer("hash", hash),
		zap.Uint32("size", size),
		zap.Uint8("chunks", count))
	return r.bridge.Buffer(ctx, height, hash)
}

func (r *Relayer) verify(ctx context.Context, logger *zap.Logger, height uint64, hash chainhash.Hash) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		started := time.Now()
		res, err := r.bridge.Verify(ctx, height, hash, r.cfg.VerifyBudget)
		r.observe("verify", started, err)
		if errors.Is(err, model.ErrStalled) {
			logger.Debug("verification waits", zap.Error(err))
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch res.Status {
		case model.StatusPassed:
			logger.Info("block verified")
			return true, nil
		case model.StatusFailed:
			return false, r.drop(ctx, logger, height, hash, res.Reason)
		case model.StatusAwaitingMinerPriority:
			logger.Debug("miner has priority")
			return false, nil
		}
	}
}

// drop frees the slot of a failed buffer.
func (r *Relayer) drop(ctx context.Context, logger *zap.Logger, height uint64, hash chainhash.Hash, reason model.FailureReason) error {
	logger.Warn("block verification failed", zap.String("reason", string(reason)))
	r.failed[hash] = height
	started := time.Now()
	err := r.bridge.DeleteBuffer(ctx, height, hash)
	r.observe("delete_buffer", started, err)
	return err
}

func blockHash(node Node, height uint64) (chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := node.GetBlockHash(h)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get block hash %d: %w", height, err)
	}
	return *hash, nil
}

func split(data []byte, size int) [][]byte {
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for len(data) > size {
		chunks = append(chunks, data[:size])
		data = data[size:]
	}
	return append(chunks, data)
}
