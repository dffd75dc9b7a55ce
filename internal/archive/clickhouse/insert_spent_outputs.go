package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// InsertSpentOutputs stores outputs removed from the UTXO set together with the
// block that spent them.
func (r *Repository) InsertSpentOutputs(ctx context.Context, outputs []model.SpentUTXO) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_spent_outputs", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO bridge_spent_outputs (
	network,
	spent_height,
	spent_block,
	txid,
	output_index,
	value,
	script_hex
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare spent outputs batch: %w", err)
	}

	for _, out := range outputs {
		if err = batch.Append(
			r.network,
			out.SpentHeight,
			out.SpentBlock.String(),
			out.TxID.String(),
			out.Index,
			out.Value,
			hex.EncodeToString(out.Script),
		); err != nil {
			return fmt.Errorf("append spent output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert spent outputs: %w", err)
	}
	r.metrics.AddRows("insert_spent_outputs", len(outputs))
	return nil
}
