package model

import (
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// StakeMode selects which stake floor decides endorsement eligibility.
type StakeMode uint8

const (
	StakeBTC StakeMode = iota + 1
	StakeXSAT
)

func (m StakeMode) String() string {
	switch m {
	case StakeBTC:
		return "btc"
	case StakeXSAT:
		return "xsat"
	default:
		return "unknown"
	}
}

// ValidatorStake is a validator with its stake snapshot.
type ValidatorStake struct {
	Account Account `json:"account"`
	Stake   uint64  `json:"stake"`
}

// EndorsementRecord collects votes for one (height, hash).
type EndorsementRecord struct {
	Height        uint64           `json:"height"`
	Hash          chainhash.Hash   `json:"hash"`
	Mode          StakeMode        `json:"mode"`
	Endorsed      []ValidatorStake `json:"endorsed"`
	Requested     []ValidatorStake `json:"requested"`
	QuorumReached bool             `json:"quorum_reached"`
	ConsensusAt   time.Time        `json:"consensus_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Voters is the frozen voter count N.
func (r *EndorsementRecord) Voters() int {
	return len(r.Endorsed) + len(r.Requested)
}

// Threshold is floor(2N/3)+1.
func (r *EndorsementRecord) Threshold() int {
	return r.Voters()*2/3 + 1
}

// Reached reports whether the endorsed count meets the threshold.
func (r *EndorsementRecord) Reached() bool {
	return len(r.Endorsed) > 0 && len(r.Endorsed) >= r.Threshold()
}

// HasEndorsed reports whether validator is among the endorsers.
func (r *EndorsementRecord) HasEndorsed(validator Account) bool {
	for _, v := range r.Endorsed {
		if v.Account == validator {
			return true
		}
	}
	return false
}

// Promote moves validator from requested to endorsed, keeping its frozen stake.
// Requested is rebuilt, never shifted in place.
func (r *EndorsementRecord) Promote(validator Account) bool {
	for i, v := range r.Requested {
		if v.Account == validator {
			r.Requested = slices.Delete(slices.Clone(r.Requested), i, i+1)
			r.Endorsed = append(r.Endorsed, v)
			return true
		}
	}
	return false
}
