package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// InsertBlocks stores irreversible block headers. Rows are deduplicated on merge by
// (network, height), so re-exporting a height is harmless.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.IrreversibleBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO bridge_blocks (
	network,
	height,
	hash,
	prev_hash,
	merkleroot,
	version,
	timestamp,
	bits,
	nonce,
	cumulative_work,
	miner,
	synchronizer,
	parser,
	tx_count,
	utxo_created,
	utxo_spent,
	confirmed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		work := ""
		if block.CumulativeWork != nil {
			work = block.CumulativeWork.String()
		}
		if err = batch.Append(
			r.network,
			block.Height,
			block.Hash.String(),
			block.PrevHash.String(),
			block.MerkleRoot.String(),
			block.Version,
			block.Timestamp,
			block.Bits,
			block.Nonce,
			work,
			string(block.Miner),
			string(block.Synchronizer),
			string(block.Parser),
			block.TxCount,
			block.UTXOCreated,
			block.UTXOSpent,
			block.ConfirmedAt,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	r.metrics.AddRows("insert_blocks", len(blocks))
	return nil
}
