package ledger

import (
	"fmt"
	"sort"

	"github.com/benbjohnson/clock"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Stakes is the validator stake registry.
type Stakes struct {
	clock  clock.Clock
	logger *zap.Logger
}

// NewStakes builds a stake registry.
func NewStakes(clk clock.Clock, logger *zap.Logger) *Stakes {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Stakes{clock: clk, logger: logger}
}

// SetStake replaces the stake of validator in mode.
func (s *Stakes) SetStake(tx *store.Tx, validator model.Account, mode model.StakeMode, amount uint64) (*model.Validator, error) {
	if validator == "" {
		return nil, fmt.Errorf("%w: validator account required", model.ErrInvalidInput)
	}
	v, found, err := tx.Validator(validator)
	if err != nil {
		return nil, err
	}
	if !found {
		v = &model.Validator{Account: validator}
	}
	switch mode {
	case model.StakeBTC:
		v.BTCStake = amount
	case model.StakeXSAT:
		v.XSATStake = amount
	default:
		return nil, fmt.Errorf("%w: unknown stake mode %d", model.ErrInvalidInput, mode)
	}
	v.UpdatedAt = s.clock.Now()
	if err := tx.PutValidator(v); err != nil {
		return nil, err
	}
	s.logger.Info("stake updated",
		zap.String("validator", string(validator)),
		zap.Stringer("mode", mode),
		zap.Uint64("amount", amount))
	return v, nil
}

// Stake returns the stake of validator in mode, zero for unknown validators.
func (s *Stakes) Stake(tx *store.Tx, validator model.Account, mode model.StakeMode) (uint64, error) {
	v, found, err := tx.Validator(validator)
	if err != nil || !found {
		return 0, err
	}
	return v.StakeFor(mode), nil
}

// Qualified returns validators holding at least floor in mode, largest stake first.
func (s *Stakes) Qualified(tx *store.Tx, mode model.StakeMode, floor uint64) ([]model.ValidatorStake, error) {
	all, err := tx.Validators()
	if err != nil {
		return nil, err
	}
	var out []model.ValidatorStake
	for i := range all {
		stake := all[i].StakeFor(mode)
		if stake == 0 || stake < floor {
			continue
		}
		out = append(out, model.ValidatorStake{Account: all[i].Account, Stake: stake})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stake > out[j].Stake
	})
	return out, nil
}
