package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// Buffer loads the upload buffer of uploader for (height, hash).
func (t *Tx) Buffer(uploader model.Account, height uint64, hash chainhash.Hash) (*model.UploadBuffer, bool, error) {
	var b model.UploadBuffer
	found, err := t.GetRecord(BucketBuffers, bufferKey(uploader, height, hash), &b)
	if err != nil || !found {
		return nil, found, err
	}
	return &b, true, nil
}

// PutBuffer stores the buffer and its block index entry.
func (t *Tx) PutBuffer(b *model.UploadBuffer) error {
	if err := t.PutRecord(BucketBuffers, bufferKey(b.Uploader, b.Height, b.Hash), b); err != nil {
		return err
	}
	idx := append(blockKey(b.Height, b.Hash), b.Uploader...)
	if err := t.bucket(BucketBufferIndex).Put(idx, []byte{}); err != nil {
		return fmt.Errorf("put buffer index: %w", err)
	}
	return nil
}

// DeleteBuffer removes the buffer, its chunks and its index entry.
func (t *Tx) DeleteBuffer(b *model.UploadBuffer) error {
	if _, err := t.DeleteChunks(b.BucketID); err != nil {
		return err
	}
	if err := t.DeleteRecord(BucketBuffers, bufferKey(b.Uploader, b.Height, b.Hash)); err != nil {
		return err
	}
	return t.DeleteRecord(BucketBufferIndex, append(blockKey(b.Height, b.Hash), b.Uploader...))
}

// BuffersForBlock returns every uploader's buffer for (height, hash).
func (t *Tx) BuffersForBlock(height uint64, hash chainhash.Hash) ([]*model.UploadBuffer, error) {
	return t.buffersByIndexPrefix(blockKey(height, hash))
}

// BuffersAtHeight returns every buffer at height regardless of hash.
func (t *Tx) BuffersAtHeight(height uint64) ([]*model.UploadBuffer, error) {
	return t.buffersByIndexPrefix(heightKey(height))
}

// BuffersBelow returns buffers with height < limit.
func (t *Tx) BuffersBelow(limit uint64) ([]*model.UploadBuffer, error) {
	var keys [][]byte
	if err := t.ScanRange(BucketBufferIndex, heightKey(0), heightKey(limit), func(k, _ []byte) error {
		keys = append(keys, bytes.Clone(k))
		return nil
	}); err != nil {
		return nil, err
	}
	return t.buffersFromIndex(keys)
}

// BuffersByUploader lists the buffers owned by uploader.
func (t *Tx) BuffersByUploader(uploader model.Account) ([]*model.UploadBuffer, error) {
	prefix := append([]byte(uploader), 0)
	items, err := scanRecords[model.UploadBuffer](t, BucketBuffers, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]*model.UploadBuffer, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (t *Tx) buffersByIndexPrefix(prefix []byte) ([]*model.UploadBuffer, error) {
	var keys [][]byte
	if err := t.Scan(BucketBufferIndex, prefix, func(k, _ []byte) error {
		keys = append(keys, bytes.Clone(k))
		return nil
	}); err != nil {
		return nil, err
	}
	return t.buffersFromIndex(keys)
}

func (t *Tx) buffersFromIndex(keys [][]byte) ([]*model.UploadBuffer, error) {
	out := make([]*model.UploadBuffer, 0, len(keys))
	for _, k := range keys {
		if len(k) <= 8+chainhash.HashSize {
			return nil, fmt.Errorf("malformed buffer index key %x", k)
		}
		var hash chainhash.Hash
		copy(hash[:], k[8:8+chainhash.HashSize])
		height := binary.BigEndian.Uint64(k[:8])
		uploader := model.Account(k[8+chainhash.HashSize:])
		b, found, err := t.Buffer(uploader, height, hash)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, b)
		}
	}
	return out, nil
}

// NextBucketID allocates a global, increasing bucket id.
func (t *Tx) NextBucketID() (uint64, error) {
	return t.NextSequence(BucketChunks)
}

// Chunk returns a copy of chunk data.
func (t *Tx) Chunk(bucketID uint64, chunkID uint8) ([]byte, bool) {
	raw := t.bucket(BucketChunks).Get(chunkKey(bucketID, chunkID))
	if raw == nil {
		return nil, false
	}
	return bytes.Clone(raw), true
}

// PutChunk stores chunk data.
func (t *Tx) PutChunk(bucketID uint64, chunkID uint8, data []byte) error {
	if err := t.bucket(BucketChunks).Put(chunkKey(bucketID, chunkID), data); err != nil {
		return fmt.Errorf("put chunk: %w", err)
	}
	return nil
}

// DeleteChunk removes one chunk.
func (t *Tx) DeleteChunk(bucketID uint64, chunkID uint8) error {
	return t.DeleteRecord(BucketChunks, chunkKey(bucketID, chunkID))
}

// DeleteChunks removes every chunk of a bucket.
func (t *Tx) DeleteChunks(bucketID uint64) (int, error) {
	return t.DeletePrefix(BucketChunks, heightKey(bucketID))
}

// ForEachChunk visits the chunks of a bucket in chunk id order. data is only valid
// during the callback.
func (t *Tx) ForEachChunk(bucketID uint64, fn func(chunkID uint8, data []byte) error) error {
	return t.Scan(BucketChunks, heightKey(bucketID), func(k, v []byte) error {
		return fn(k[len(k)-1], v)
	})
}
