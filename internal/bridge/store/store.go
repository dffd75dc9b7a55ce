// Package store persists bridge state in a bbolt file. Every command runs inside one
// read-write transaction, which is the unit of atomicity for the whole bridge.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names a bbolt bucket.
type Bucket string

const (
	BucketMeta          Bucket = "meta"
	BucketBuffers       Bucket = "buffers_by_uploader"
	BucketBufferIndex   Bucket = "buffers_by_block"
	BucketChunks        Bucket = "chunks_by_bucket"
	BucketCandidates    Bucket = "candidates_by_block"
	BucketMinerMarkers  Bucket = "miner_markers_by_block"
	BucketConsensus     Bucket = "consensus_blocks_by_block"
	BucketEndorsements  Bucket = "endorsements_by_block"
	BucketPending       Bucket = "pending_effects_by_block"
	BucketUTXOs         Bucket = "utxos_by_outpoint"
	BucketSpent         Bucket = "spent_utxos_by_height"
	BucketBlocks        Bucket = "irreversible_blocks_by_height"
	BucketFeeBalances   Bucket = "fee_balances"
	BucketValidators    Bucket = "validators"
	BucketRewardIssues  Bucket = "reward_issues_by_height"
	BucketRewards       Bucket = "reward_balances"
	BucketSynchronizers Bucket = "synchronizers"
	BucketMinerAddrs    Bucket = "miner_addresses"
)

var allBuckets = []Bucket{
	BucketMeta, BucketBuffers, BucketBufferIndex, BucketChunks, BucketCandidates,
	BucketMinerMarkers, BucketConsensus, BucketEndorsements, BucketPending, BucketUTXOs,
	BucketSpent, BucketBlocks, BucketFeeBalances, BucketValidators, BucketRewardIssues,
	BucketRewards, BucketSynchronizers, BucketMinerAddrs,
}

var errStopScan = errors.New("stop scan")

// DB wraps the bbolt handle.
type DB struct {
	db *bolt.DB
}

// Open opens or creates the state file at path and ensures all buckets exist.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("store path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := bdb.Update(func(tx *bolt.Tx) error {
		for _, b := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return fmt.Errorf("create bucket %s: %w", b, err)
			}
		}
		return nil
	}); err != nil {
		_ = bdb.Close()
		return nil, err
	}
	return &DB{db: bdb}, nil
}

// Close releases the file lock.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Update runs fn in a read-write transaction; any error rolls back every write.
func (d *DB) Update(ctx context.Context, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return fn(&Tx{tx: tx})
	})
}

// View runs fn in a read-only transaction.
func (d *DB) View(ctx context.Context, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.View(func(tx *bolt.Tx) error {
		return fn(&Tx{tx: tx})
	})
}

// Tx is an open transaction with typed table accessors.
type Tx struct {
	tx *bolt.Tx
}

func (t *Tx) bucket(name Bucket) *bolt.Bucket {
	return t.tx.Bucket([]byte(name))
}

// GetRecord decodes the JSON row at key into v; found is false when the key is absent.
func (t *Tx) GetRecord(name Bucket, key []byte, v any) (bool, error) {
	raw := t.bucket(name).Get(key)
	if raw == nil {
		return false, nil
	}
	if err := decode(name, raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// PutRecord stores v as JSON at key.
func (t *Tx) PutRecord(name Bucket, key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", name, err)
	}
	if err := t.bucket(name).Put(key, raw); err != nil {
		return fmt.Errorf("put %s row: %w", name, err)
	}
	return nil
}

// DeleteRecord removes key; missing keys are ignored.
func (t *Tx) DeleteRecord(name Bucket, key []byte) error {
	if err := t.bucket(name).Delete(key); err != nil {
		return fmt.Errorf("delete %s row: %w", name, err)
	}
	return nil
}

// Scan calls fn for every key with prefix in key order. fn must not mutate the bucket.
func (t *Tx) Scan(name Bucket, prefix []byte, fn func(key, value []byte) error) error {
	c := t.bucket(name).Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ScanRange calls fn for keys in [from, to) in key order.
func (t *Tx) ScanRange(name Bucket, from, to []byte, fn func(key, value []byte) error) error {
	c := t.bucket(name).Cursor()
	for k, v := c.Seek(from); k != nil && bytes.Compare(k, to) < 0; k, v = c.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// DeletePrefix removes every key with prefix and returns how many were removed.
func (t *Tx) DeletePrefix(name Bucket, prefix []byte) (int, error) {
	var keys [][]byte
	if err := t.Scan(name, prefix, func(k, _ []byte) error {
		keys = append(keys, bytes.Clone(k))
		return nil
	}); err != nil {
		return 0, err
	}
	return t.deleteKeys(name, keys)
}

// DeleteRange removes keys in [from, to).
func (t *Tx) DeleteRange(name Bucket, from, to []byte) (int, error) {
	var keys [][]byte
	if err := t.ScanRange(name, from, to, func(k, _ []byte) error {
		keys = append(keys, bytes.Clone(k))
		return nil
	}); err != nil {
		return 0, err
	}
	return t.deleteKeys(name, keys)
}

func (t *Tx) deleteKeys(name Bucket, keys [][]byte) (int, error) {
	b := t.bucket(name)
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return 0, fmt.Errorf("delete %s row: %w", name, err)
		}
	}
	return len(keys), nil
}

// NextSequence returns the next value of the bucket's monotonically increasing sequence.
func (t *Tx) NextSequence(name Bucket) (uint64, error) {
	seq, err := t.bucket(name).NextSequence()
	if err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", name, err)
	}
	return seq, nil
}

func scanRecords[T any](t *Tx, name Bucket, prefix []byte) ([]T, error) {
	var out []T
	err := t.Scan(name, prefix, func(_, v []byte) error {
		var item T
		if err := decode(name, v, &item); err != nil {
			return err
		}
		out = append(out, item)
		return nil
	})
	return out, err
}

func decode(name Bucket, raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s row: %w", name, err)
	}
	return nil
}
