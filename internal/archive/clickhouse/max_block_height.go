package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxBlockHeight returns the highest archived height of the network, 0 when empty.
func (r *Repository) MaxBlockHeight(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockHeightQuery, r.network)
	if err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var height uint64
	if !rows.Next() {
		err = fmt.Errorf("max block height not found")
		return 0, err
	}

	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, nil
}

const maxBlockHeightQuery = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height
FROM bridge_blocks
WHERE network = ?`
