// Package model defines domain types shared by the bridge components.
package model

import (
	"fmt"
	"time"
)

const (
	// HeaderSize is the serialized size of a Bitcoin block header.
	HeaderSize = 80

	// SatoshiPerBTC is the number of base units in one coin, used for BTC and XSAT alike.
	SatoshiPerBTC = 100_000_000

	// SubsidyHalvingInterval is the number of blocks between subsidy halvings.
	SubsidyHalvingInterval = 210_000
)

// Config holds chain-wide parameters of the bridge.
type Config struct {
	// Network selects Bitcoin chain params used for address decoding.
	Network Network
	// StartHeight is the floor; only heights strictly above it are accepted.
	StartHeight uint64
	// ConfirmationDepth is the number of successors required before fork choice.
	ConfirmationDepth uint64
	// MerkleLayers sets TxsPerVerification = 2^MerkleLayers.
	MerkleLayers uint8
	// ParseTimeout is how long the assigned parser owns an admitted block.
	ParseTimeout time.Duration
	// ValidatorsPerDistribution bounds one reward fan-out batch.
	ValidatorsPerDistribution uint32
	// RetainDataBlocks keeps raw chunk data of that many irreversible blocks.
	RetainDataBlocks uint64
	// SpentRetentionBlocks keeps spent UTXO archive entries of that many blocks.
	SpentRetentionBlocks uint64
	// MinerPriorityBlocks is the number of host blocks the designated miner has to submit.
	MinerPriorityBlocks uint64
	// HostBlockInterval converts wall-clock time into host block numbers.
	HostBlockInterval time.Duration
	// EndorseFutureWindow bounds how far above the irreversible height votes are accepted.
	EndorseFutureWindow uint64
	// MinEndorseInterval is the minimum delay after the previous height reached quorum.
	MinEndorseInterval time.Duration
	// XSATActivationHeight switches endorsement eligibility to the XSAT stake floor; 0 disables.
	XSATActivationHeight uint64
	// EndorsementDisabled rejects every endorsement.
	EndorsementDisabled bool
	// BTCStakeFloor and XSATStakeFloor are minimum stakes for endorsement eligibility.
	BTCStakeFloor  uint64
	XSATStakeFloor uint64
	// MaxChunks and MaxChunkSize bound a single upload.
	MaxChunks    uint8
	MaxChunkSize uint32
}

// DefaultConfig returns mainnet defaults.
func DefaultConfig() Config {
	return Config{
		Network:                   Mainnet,
		StartHeight:               839_999,
		ConfirmationDepth:         6,
		MerkleLayers:              11,
		ParseTimeout:              10 * time.Minute,
		ValidatorsPerDistribution: 100,
		RetainDataBlocks:          100,
		SpentRetentionBlocks:      100,
		MinerPriorityBlocks:       10,
		HostBlockInterval:         500 * time.Millisecond,
		EndorseFutureWindow:       100,
		BTCStakeFloor:             100 * SatoshiPerBTC,
		XSATStakeFloor:            2100 * SatoshiPerBTC,
		MaxChunks:                 64,
		MaxChunkSize:              1 << 20,
	}
}

// TxsPerVerification is the fixed number of transactions folded into one partial merkle root.
func (c Config) TxsPerVerification() uint64 {
	return 1 << c.MerkleLayers
}

// HostBlock converts a timestamp into a host block number.
func (c Config) HostBlock(t time.Time) uint64 {
	if c.HostBlockInterval <= 0 {
		return uint64(t.Unix())
	}
	return uint64(t.UnixNano() / int64(c.HostBlockInterval))
}

// StakeModeAt reports which stake floor governs endorsements at height.
func (c Config) StakeModeAt(height uint64) StakeMode {
	if c.XSATActivationHeight != 0 && height >= c.XSATActivationHeight {
		return StakeXSAT
	}
	return StakeBTC
}

// StakeFloor returns the minimum qualifying stake for mode.
func (c Config) StakeFloor(mode StakeMode) uint64 {
	if mode == StakeXSAT {
		return c.XSATStakeFloor
	}
	return c.BTCStakeFloor
}

// Validate checks parameter consistency.
func (c Config) Validate() error {
	if c.MerkleLayers > 20 {
		return fmt.Errorf("merkle layers %d too large", c.MerkleLayers)
	}
	if c.ConfirmationDepth == 0 {
		return fmt.Errorf("confirmation depth must be positive")
	}
	if c.ValidatorsPerDistribution == 0 {
		return fmt.Errorf("validators per distribution must be positive")
	}
	if c.MaxChunks == 0 || c.MaxChunkSize == 0 {
		return fmt.Errorf("chunk limits must be positive")
	}
	if _, err := c.Network.Params(); err != nil {
		return err
	}
	return nil
}
