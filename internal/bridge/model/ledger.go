package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// FeeAccount is a prepaid fee balance.
type FeeAccount struct {
	Account   Account   `json:"account"`
	Balance   uint64    `json:"balance"`
	Spent     uint64    `json:"spent"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validator is a staked endorser.
type Validator struct {
	Account   Account   `json:"account"`
	BTCStake  uint64    `json:"btc_stake"`
	XSATStake uint64    `json:"xsat_stake"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StakeFor returns the stake counted in mode.
func (v *Validator) StakeFor(mode StakeMode) uint64 {
	if mode == StakeXSAT {
		return v.XSATStake
	}
	return v.BTCStake
}

// Synchronizer is a registered block uploader and chain-state advancer.
type Synchronizer struct {
	Account          Account   `json:"account"`
	Slots            uint16    `json:"slots"`
	PayoutAddresses  []string  `json:"payout_addresses,omitempty"`
	LatestConfirmed  uint64    `json:"latest_confirmed"`
	ConfirmedBlocks  uint64    `json:"confirmed_blocks"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// RewardBalance holds earned block rewards of one account.
type RewardBalance struct {
	Account            Account   `json:"account"`
	Unclaimed          uint64    `json:"unclaimed"`
	Claimed            uint64    `json:"claimed"`
	LatestRewardHeight uint64    `json:"latest_reward_height"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RewardLog records how the reward of one irreversible block was split.
type RewardLog struct {
	Height             uint64           `json:"height"`
	Hash               chainhash.Hash   `json:"hash"`
	Subsidy            uint64           `json:"subsidy"`
	SynchronizerReward uint64           `json:"synchronizer_reward"`
	ConsensusReward    uint64           `json:"consensus_reward"`
	StakingReward      uint64           `json:"staking_reward"`
	Recipient          Account          `json:"recipient"`
	Miner              Account          `json:"miner,omitempty"`
	Synchronizer       Account          `json:"synchronizer"`
	Parser             Account          `json:"parser"`
	Validators         []ValidatorStake `json:"validators"`
	EndorsedStake      uint64           `json:"endorsed_stake"`
	Assigned           uint32           `json:"assigned"`
	StakingUnclaimed   uint64           `json:"staking_unclaimed"`
	ConsensusUnclaimed uint64           `json:"consensus_unclaimed"`
	CreatedAt          time.Time        `json:"created_at"`
}
