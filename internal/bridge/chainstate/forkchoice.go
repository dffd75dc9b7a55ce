package chainstate

import (
	"fmt"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// resolve picks the next irreversible block once the contiguous parsed frontier is
// ConfirmationDepth blocks past it. It returns nil while the frontier is too short.
func (m *Machine) resolve(tx *store.Tx, st *model.ChainState) (*model.ConsensusBlock, error) {
	height := st.IrreversibleHeight + 1
	target := height + m.cfg.ConfirmationDepth

	frontier, err := m.parsedFrontier(tx, height, target)
	if err != nil {
		return nil, err
	}
	if frontier < target {
		return nil, nil
	}

	atHeight, err := tx.ConsensusBlocksAtHeight(height)
	if err != nil {
		return nil, err
	}
	var candidates []model.ConsensusBlock
	for _, b := range atHeight {
		if b.Parsed && b.PrevHash == st.IrreversibleHash {
			candidates = append(candidates, b)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: unresolvable fork, no block at %d extends %s",
			model.ErrInvariant, height, st.IrreversibleHash)
	case 1:
		return &candidates[0], nil
	}

	tips, err := tx.ConsensusBlocksAtHeight(target)
	if err != nil {
		return nil, err
	}
	var best *model.ConsensusBlock
	for i := range tips {
		if best == nil || tips[i].CumulativeWork.Cmp(best.CumulativeWork) > 0 {
			best = &tips[i]
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no admitted block at confirmation height %d", model.ErrInvariant, target)
	}

	cursor := best
	for cursor.Height > height {
		parent, found, err := tx.ConsensusBlock(cursor.Height-1, cursor.PrevHash)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%w: unresolvable fork, ancestor %d/%s of %d/%s is not admitted",
				model.ErrInvariant, cursor.Height-1, cursor.PrevHash, best.Height, best.Hash)
		}
		cursor = parent
	}
	for i := range candidates {
		if candidates[i].Hash == cursor.Hash {
			m.logger.Info("fork resolved",
				zap.Uint64("height", height),
				zap.Stringer("winner", cursor.Hash),
				zap.Int("candidates", len(candidates)),
				zap.Stringer("tip", best.Hash),
				zap.Stringer("tip_work", best.CumulativeWork))
			return &candidates[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unresolvable fork, heaviest tip %d/%s does not descend from %s",
		model.ErrInvariant, best.Height, best.Hash, st.IrreversibleHash)
}

// parsedFrontier returns the highest height h <= limit such that every height in
// [from, h] has a parsed admitted block, or from-1 when from itself has none.
func (m *Machine) parsedFrontier(tx *store.Tx, from, limit uint64) (uint64, error) {
	frontier := from - 1
	for h := from; h <= limit; h++ {
		blocks, err := tx.ConsensusBlocksAtHeight(h)
		if err != nil {
			return 0, err
		}
		parsed := false
		for _, b := range blocks {
			if b.Parsed {
				parsed = true
				break
			}
		}
		if !parsed {
			break
		}
		frontier = h
	}
	return frontier, nil
}
