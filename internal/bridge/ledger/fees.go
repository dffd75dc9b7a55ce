// Package ledger keeps the bridge's reference accounting in the state file: prepaid
// fees, validator stakes, block rewards and the synchronizer registry.
package ledger

import (
	"fmt"
	"math/bits"

	"github.com/benbjohnson/clock"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// Prices maps a fee kind to its per-unit price in satoshi.
type Prices map[model.FeeKind]uint64

// DefaultPrices charges one satoshi per unit of routine work and a flat slot price.
func DefaultPrices() Prices {
	return Prices{
		model.FeeBuySlot:   100_000,
		model.FeePushChunk: 1,
		model.FeeVerify:    1,
		model.FeeEndorse:   1,
		model.FeeParse:     1,
	}
}

// Fees debits prepaid balances for charged commands.
type Fees struct {
	prices Prices
	clock  clock.Clock
	logger *zap.Logger
}

// NewFees builds a fee ledger.
func NewFees(prices Prices, clk clock.Clock, logger *zap.Logger) *Fees {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	if prices == nil {
		prices = DefaultPrices()
	}
	return &Fees{prices: prices, clock: clk, logger: logger}
}

// Deposit credits amount to account and returns the new balance.
func (f *Fees) Deposit(tx *store.Tx, account model.Account, amount uint64) (uint64, error) {
	if account == "" || amount == 0 {
		return 0, fmt.Errorf("%w: deposit needs an account and a positive amount", model.ErrInvalidInput)
	}
	a, err := f.account(tx, account)
	if err != nil {
		return 0, err
	}
	if a.Balance+amount < a.Balance {
		return 0, fmt.Errorf("%w: balance of %s overflows", model.ErrInvalidInput, account)
	}
	a.Balance += amount
	a.UpdatedAt = f.clock.Now()
	if err := tx.PutFeeAccount(a); err != nil {
		return 0, err
	}
	f.logger.Debug("fee deposit", zap.String("account", string(account)), zap.Uint64("amount", amount))
	return a.Balance, nil
}

// Withdraw returns unspent prepaid balance to its owner.
func (f *Fees) Withdraw(tx *store.Tx, account model.Account, amount uint64) (uint64, error) {
	a, err := f.account(tx, account)
	if err != nil {
		return 0, err
	}
	if amount == 0 || a.Balance < amount {
		return 0, fmt.Errorf("%w: %s holds %d, withdraw %d", model.ErrInsufficientFunds, account, a.Balance, amount)
	}
	a.Balance -= amount
	a.UpdatedAt = f.clock.Now()
	return a.Balance, tx.PutFeeAccount(a)
}

// Debit charges units of kind to account. A zero price always succeeds.
func (f *Fees) Debit(tx *store.Tx, account model.Account, kind model.FeeKind, units uint64) error {
	price, ok := f.prices[kind]
	if !ok {
		return fmt.Errorf("%w: unknown fee kind %d", model.ErrInvalidInput, kind)
	}
	hi, amount := bits.Mul64(price, units)
	if hi != 0 {
		return fmt.Errorf("%w: fee of %d %s units overflows", model.ErrInvalidInput, units, kind)
	}
	if amount == 0 {
		return nil
	}
	a, err := f.account(tx, account)
	if err != nil {
		return err
	}
	if a.Balance < amount {
		return fmt.Errorf("%w: %s holds %d, %s costs %d", model.ErrInsufficientFunds, account, a.Balance, kind, amount)
	}
	a.Balance -= amount
	a.Spent += amount
	a.UpdatedAt = f.clock.Now()
	return tx.PutFeeAccount(a)
}

// Balance returns the fee account, zero valued when it was never funded.
func (f *Fees) Balance(tx *store.Tx, account model.Account) (*model.FeeAccount, error) {
	return f.account(tx, account)
}

func (f *Fees) account(tx *store.Tx, account model.Account) (*model.FeeAccount, error) {
	a, found, err := tx.FeeAccount(account)
	if err != nil {
		return nil, err
	}
	if !found {
		return &model.FeeAccount{Account: account}, nil
	}
	return a, nil
}
