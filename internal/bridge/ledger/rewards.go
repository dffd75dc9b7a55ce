package ledger

import (
	"fmt"
	"math/bits"

	"github.com/benbjohnson/clock"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

const (
	// RateBase is the denominator of reward rates.
	RateBase = 100_000_000

	rewardPerBlock   = 50 * model.SatoshiPerBTC
	minerRate        = RateBase / 2
	synchronizerRate = RateBase / 10
	consensusRate    = RateBase / 10
)

// Subsidy returns the block reward at height, halving every SubsidyHalvingInterval
// blocks after start.
func Subsidy(start, height uint64) uint64 {
	if height < start {
		return 0
	}
	halvings := (height - start) / model.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return rewardPerBlock >> halvings
}

// Rewards issues block rewards and pays them out to endorsing validators.
type Rewards struct {
	startHeight uint64
	clock       clock.Clock
	logger      *zap.Logger
}

// NewRewards builds a reward ledger for a chain starting at startHeight.
func NewRewards(startHeight uint64, clk clock.Clock, logger *zap.Logger) *Rewards {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Rewards{startHeight: startHeight, clock: clk, logger: logger}
}

// Distribute splits the subsidy of an irreversible block. The synchronizer share goes
// to the parser right away; validator shares wait for PayBatch.
func (r *Rewards) Distribute(tx *store.Tx, issue model.RewardIssue) error {
	if _, found, err := tx.RewardLog(issue.Height); err != nil {
		return err
	} else if found {
		return fmt.Errorf("%w: reward of %d already issued", model.ErrInvariant, issue.Height)
	}

	subsidy := Subsidy(r.startHeight, issue.Height)
	rate := uint64(synchronizerRate)
	if issue.Miner != "" && issue.Miner == issue.Synchronizer {
		rate = minerRate
	}
	syncReward := mulDiv(subsidy, rate, RateBase)
	consensus := mulDiv(subsidy, consensusRate, RateBase)
	staking := subsidy - syncReward - consensus

	var endorsed uint64
	for _, v := range issue.Validators {
		endorsed += v.Stake
	}
	recipient := issue.Parser
	if recipient == "" {
		recipient = issue.Synchronizer
	}
	entry := &model.RewardLog{
		Height:             issue.Height,
		Hash:               issue.Hash,
		Subsidy:            subsidy,
		SynchronizerReward: syncReward,
		ConsensusReward:    consensus,
		StakingReward:      staking,
		Recipient:          recipient,
		Miner:              issue.Miner,
		Synchronizer:       issue.Synchronizer,
		Parser:             issue.Parser,
		Validators:         issue.Validators,
		EndorsedStake:      endorsed,
		StakingUnclaimed:   staking,
		ConsensusUnclaimed: consensus,
		CreatedAt:          r.clock.Now(),
	}
	if err := r.credit(tx, recipient, issue.Height, syncReward); err != nil {
		return err
	}
	if err := tx.PutRewardLog(entry); err != nil {
		return err
	}
	r.logger.Info("reward issued",
		zap.Uint64("height", issue.Height),
		zap.Uint64("subsidy", subsidy),
		zap.String("recipient", string(recipient)),
		zap.Uint64("synchronizer_reward", syncReward),
		zap.Int("validators", len(issue.Validators)))
	return nil
}

// PayBatch pays validators [from, to) of the reward at height. Batches must be paid
// in order; the last validator receives the rounding remainder.
func (r *Rewards) PayBatch(tx *store.Tx, height uint64, from, to uint32) error {
	entry, found, err := tx.RewardLog(height)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: no reward issued at %d", model.ErrInvariant, height)
	}
	n := uint32(len(entry.Validators))
	if from != entry.Assigned || to <= from || to > n {
		return fmt.Errorf("%w: reward batch [%d, %d) at %d, %d of %d assigned",
			model.ErrInvariant, from, to, height, entry.Assigned, n)
	}

	consensusEach := entry.ConsensusReward / uint64(n)
	for i := from; i < to; i++ {
		v := entry.Validators[i]
		var staking, consensus uint64
		if i == n-1 {
			staking, consensus = entry.StakingUnclaimed, entry.ConsensusUnclaimed
		} else {
			if entry.EndorsedStake > 0 {
				staking = mulDiv(entry.StakingReward, v.Stake, entry.EndorsedStake)
			}
			consensus = consensusEach
		}
		if err := r.credit(tx, v.Account, height, staking+consensus); err != nil {
			return err
		}
		entry.StakingUnclaimed -= staking
		entry.ConsensusUnclaimed -= consensus
	}
	entry.Assigned = to
	return tx.PutRewardLog(entry)
}

// Claim moves the unclaimed reward of account to claimed and returns the amount.
func (r *Rewards) Claim(tx *store.Tx, account model.Account) (uint64, error) {
	b, found, err := tx.RewardBalance(account)
	if err != nil {
		return 0, err
	}
	if !found || b.Unclaimed == 0 {
		return 0, fmt.Errorf("%w: %s has no reward to claim", model.ErrInvalidInput, account)
	}
	amount := b.Unclaimed
	b.Claimed += amount
	b.Unclaimed = 0
	b.UpdatedAt = r.clock.Now()
	return amount, tx.PutRewardBalance(b)
}

// Balance returns the reward balance of account, zero valued when it earned nothing.
func (r *Rewards) Balance(tx *store.Tx, account model.Account) (*model.RewardBalance, error) {
	b, found, err := tx.RewardBalance(account)
	if err != nil {
		return nil, err
	}
	if !found {
		return &model.RewardBalance{Account: account}, nil
	}
	return b, nil
}

// Log returns the reward split of height.
func (r *Rewards) Log(tx *store.Tx, height uint64) (*model.RewardLog, error) {
	entry, found, err := tx.RewardLog(height)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: reward log at %d", model.ErrNotFound, height)
	}
	return entry, nil
}

func (r *Rewards) credit(tx *store.Tx, account model.Account, height, amount uint64) error {
	if amount == 0 || account == "" {
		return nil
	}
	b, found, err := tx.RewardBalance(account)
	if err != nil {
		return err
	}
	if !found {
		b = &model.RewardBalance{Account: account}
	}
	b.Unclaimed += amount
	b.LatestRewardHeight = max(b.LatestRewardHeight, height)
	b.UpdatedAt = r.clock.Now()
	return tx.PutRewardBalance(b)
}

// mulDiv returns a*b/c without intermediate overflow; the quotient must fit 64 bits.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}
