// Package upload stores raw blocks pushed by relayers as numbered chunks.
package upload

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Manager implements the upload buffer lifecycle.
type Manager struct {
	cfg       model.Config
	fees      FeeLedger
	slots     SlotRegistry
	consensus ConsensusView
	clock     clock.Clock
	logger    *zap.Logger
}

// NewManager builds a Manager.
func NewManager(cfg model.Config, fees FeeLedger, slots SlotRegistry, consensus ConsensusView, clk clock.Clock, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Manager{
		cfg:       cfg,
		fees:      fees,
		slots:     slots,
		consensus: consensus,
		clock:     clk,
		logger:    logger,
	}
}

// OpenOrResume announces a block upload or resumes an existing one.
func (m *Manager) OpenOrResume(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash, size uint32, chunkCount uint8) (*model.UploadBuffer, error) {
	if height <= m.cfg.StartHeight {
		return nil, fmt.Errorf("%w: height %d must be greater than %d", model.ErrInvalidInput, height, m.cfg.StartHeight)
	}
	if size <= model.HeaderSize {
		return nil, fmt.Errorf("%w: block size must be greater than %d bytes", model.ErrInvalidInput, model.HeaderSize)
	}
	if chunkCount == 0 || chunkCount > m.cfg.MaxChunks {
		return nil, fmt.Errorf("%w: chunk count must be between 1 and %d", model.ErrInvalidInput, m.cfg.MaxChunks)
	}
	if err := m.checkNotAdmitted(tx, height, hash); err != nil {
		return nil, err
	}

	b, found, err := tx.Buffer(uploader, height, hash)
	if err != nil {
		return nil, err
	}
	now := m.clock.Now()
	if !found {
		if err := m.checkSlot(tx, uploader); err != nil {
			return nil, err
		}
		if err := m.fees.Debit(tx, uploader, model.FeeBuySlot, 1); err != nil {
			return nil, err
		}
		bucketID, err := tx.NextBucketID()
		if err != nil {
			return nil, err
		}
		b = &model.UploadBuffer{
			Uploader:   uploader,
			Height:     height,
			Hash:       hash,
			BucketID:   bucketID,
			Size:       size,
			ChunkCount: chunkCount,
			Status:     model.StatusUploading,
			UpdatedAt:  now,
		}
		m.logger.Debug("buffer opened",
			zap.String("uploader", string(uploader)),
			zap.Uint64("height", height),
			zap.Stringer("hash", hash),
			zap.Uint64("bucket_id", bucketID))
		return b, tx.PutBuffer(b)
	}

	switch b.Status {
	case model.StatusUploading, model.StatusFailed:
		if b.Status == model.StatusFailed {
			if _, err := tx.DeleteChunks(b.BucketID); err != nil {
				return nil, err
			}
			b.ReceivedSize = 0
			b.ReceivedChunks = 0
			b.Reason = ""
		}
		b.Size = size
		b.ChunkCount = chunkCount
		b.Status = model.StatusUploading
		b.UpdatedAt = now
		refreshStatus(b)
		return b, tx.PutBuffer(b)
	default:
		if b.Size != size || b.ChunkCount != chunkCount {
			return nil, fmt.Errorf("%w: buffer already %s with size %d and %d chunks",
				model.ErrInvalidInput, b.Status, b.Size, b.ChunkCount)
		}
		return b, nil
	}
}

// PushChunk stores or replaces one chunk.
func (m *Manager) PushChunk(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8, data []byte) (*model.UploadBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty chunk", model.ErrInvalidInput)
	}
	if uint64(len(data)) > uint64(m.cfg.MaxChunkSize) {
		return nil, fmt.Errorf("%w: chunk of %d bytes exceeds %d", model.ErrInvalidInput, len(data), m.cfg.MaxChunkSize)
	}
	if err := m.checkNotAdmitted(tx, height, hash); err != nil {
		return nil, err
	}
	b, err := m.mutable(tx, uploader, height, hash)
	if err != nil {
		return nil, err
	}
	if chunkID >= b.ChunkCount {
		return nil, fmt.Errorf("%w: chunk id %d out of range, buffer has %d chunks", model.ErrInvalidInput, chunkID, b.ChunkCount)
	}
	if err := m.fees.Debit(tx, uploader, model.FeePushChunk, 1); err != nil {
		return nil, err
	}

	if prev, ok := tx.Chunk(b.BucketID, chunkID); ok {
		b.ReceivedSize -= uint32(len(prev))
	} else {
		b.ReceivedChunks++
	}
	b.ReceivedSize += uint32(len(data))
	if err := tx.PutChunk(b.BucketID, chunkID, data); err != nil {
		return nil, err
	}

	b.Reason = ""
	b.UpdatedAt = m.clock.Now()
	refreshStatus(b)
	return b, tx.PutBuffer(b)
}

// DeleteChunk removes one chunk before verification starts.
func (m *Manager) DeleteChunk(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash, chunkID uint8) (*model.UploadBuffer, error) {
	b, err := m.mutable(tx, uploader, height, hash)
	if err != nil {
		return nil, err
	}
	prev, ok := tx.Chunk(b.BucketID, chunkID)
	if !ok {
		return nil, fmt.Errorf("%w: chunk %d", model.ErrNotFound, chunkID)
	}
	if err := tx.DeleteChunk(b.BucketID, chunkID); err != nil {
		return nil, err
	}
	b.ReceivedSize -= uint32(len(prev))
	b.ReceivedChunks--
	b.UpdatedAt = m.clock.Now()
	refreshStatus(b)
	return b, tx.PutBuffer(b)
}

// DeleteBuffer removes a buffer, its chunks and orphaned miner-priority bookkeeping.
func (m *Manager) DeleteBuffer(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash) error {
	b, err := m.mutable(tx, uploader, height, hash)
	if err != nil {
		return err
	}
	if err := tx.DeleteBuffer(b); err != nil {
		return err
	}
	others, err := tx.BuffersForBlock(height, hash)
	if err != nil {
		return err
	}
	if len(others) == 0 {
		if err := tx.DeleteMinerMarker(height, hash); err != nil {
			return err
		}
	}
	m.logger.Debug("buffer deleted",
		zap.String("uploader", string(uploader)),
		zap.Uint64("height", height),
		zap.Stringer("hash", hash))
	return nil
}

// Buffer loads a buffer or returns ErrNotFound.
func (m *Manager) Buffer(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error) {
	b, found, err := tx.Buffer(uploader, height, hash)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: buffer %s/%d/%s", model.ErrNotFound, uploader, height, hash)
	}
	return b, nil
}

// ReadRange reassembles bytes [start, end) of the buffer; end is clamped to the
// received size.
func (m *Manager) ReadRange(tx *store.Tx, b *model.UploadBuffer, start, end uint32) ([]byte, error) {
	if end > b.ReceivedSize {
		end = b.ReceivedSize
	}
	if start > end {
		return nil, fmt.Errorf("%w: range [%d, %d) out of bounds", model.ErrInvalidInput, start, end)
	}
	out := make([]byte, 0, end-start)
	var pos uint32
	err := tx.ForEachChunk(b.BucketID, func(_ uint8, data []byte) error {
		chunkStart := pos
		chunkEnd := pos + uint32(len(data))
		pos = chunkEnd
		if chunkEnd <= start || chunkStart >= end {
			return nil
		}
		from := max(start, chunkStart) - chunkStart
		to := min(end, chunkEnd) - chunkStart
		out = append(out, data[from:to]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Manager) mutable(tx *store.Tx, uploader model.Account, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error) {
	b, err := m.Buffer(tx, uploader, height, hash)
	if err != nil {
		return nil, err
	}
	if b.Status.VerificationStarted() {
		return nil, fmt.Errorf("%w: buffer is %s, chunks can no longer change", model.ErrInvalidInput, b.Status)
	}
	return b, nil
}

func (m *Manager) checkNotAdmitted(tx *store.Tx, height uint64, hash chainhash.Hash) error {
	admitted, err := m.consensus.IsAdmitted(tx, height, hash)
	if err != nil {
		return err
	}
	if admitted {
		return fmt.Errorf("%w: block %d/%s already reached consensus", model.ErrInvalidInput, height, hash)
	}
	return nil
}

func (m *Manager) checkSlot(tx *store.Tx, uploader model.Account) error {
	slots, err := m.slots.Slots(tx, uploader)
	if err != nil {
		return err
	}
	owned, err := tx.BuffersByUploader(uploader)
	if err != nil {
		return err
	}
	inUse := 0
	for _, b := range owned {
		// a passed buffer's data belongs to the chain until retention expires
		if b.Status != model.StatusPassed {
			inUse++
		}
	}
	if inUse >= int(slots) {
		return fmt.Errorf("%w: %s has no free slot (%d in use)", model.ErrInvalidInput, uploader, inUse)
	}
	return nil
}

func refreshStatus(b *model.UploadBuffer) {
	if b.ReceivedSize == b.Size && b.ReceivedChunks == b.ChunkCount {
		b.Status = model.StatusComplete
	} else {
		b.Status = model.StatusUploading
	}
}
