package ledger

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"go.uber.org/zap"
)

// DefaultSlots is the number of concurrent upload buffers of a new synchronizer.
const DefaultSlots = 2

// Registry tracks synchronizers, their upload slots and the payout addresses that
// identify them as block miners.
type Registry struct {
	fees   *Fees
	clock  clock.Clock
	logger *zap.Logger
}

// NewRegistry builds a synchronizer registry charging slot purchases to fees.
func NewRegistry(fees *Fees, clk clock.Clock, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Registry{fees: fees, clock: clk, logger: logger}
}

// Register adds account as a synchronizer, or merges payout addresses into an existing
// registration. An address already owned by another synchronizer is rejected.
func (r *Registry) Register(tx *store.Tx, account model.Account, addresses []string) (*model.Synchronizer, error) {
	if account == "" {
		return nil, fmt.Errorf("%w: synchronizer account required", model.ErrInvalidInput)
	}
	s, found, err := tx.Synchronizer(account)
	if err != nil {
		return nil, err
	}
	if !found {
		s = &model.Synchronizer{Account: account, Slots: DefaultSlots, RegisteredAt: r.clock.Now()}
	}
	for _, address := range addresses {
		owner, taken, err := tx.MinerAddress(address)
		if err != nil {
			return nil, err
		}
		if taken && owner != account {
			return nil, fmt.Errorf("%w: address %s belongs to %s", model.ErrInvalidInput, address, owner)
		}
		if taken {
			continue
		}
		if err := tx.PutMinerAddress(address, account); err != nil {
			return nil, err
		}
		s.PayoutAddresses = append(s.PayoutAddresses, address)
	}
	if err := tx.PutSynchronizer(s); err != nil {
		return nil, err
	}
	r.logger.Info("synchronizer registered",
		zap.String("account", string(account)),
		zap.Strings("addresses", s.PayoutAddresses))
	return s, nil
}

// BuySlots pays for n more slots of receiver on behalf of payer.
func (r *Registry) BuySlots(tx *store.Tx, payer, receiver model.Account, n uint16) (*model.Synchronizer, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: slot count must be positive", model.ErrInvalidInput)
	}
	s, found, err := tx.Synchronizer(receiver)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: synchronizer %s", model.ErrNotFound, receiver)
	}
	if uint32(s.Slots)+uint32(n) > 0xffff {
		return nil, fmt.Errorf("%w: %s would exceed the slot limit", model.ErrInvalidInput, receiver)
	}
	if err := r.fees.Debit(tx, payer, model.FeeBuySlot, uint64(n)); err != nil {
		return nil, err
	}
	s.Slots += n
	return s, tx.PutSynchronizer(s)
}

// Synchronizer returns the registration of account.
func (r *Registry) Synchronizer(tx *store.Tx, account model.Account) (*model.Synchronizer, error) {
	s, found, err := tx.Synchronizer(account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: synchronizer %s", model.ErrNotFound, account)
	}
	return s, nil
}

func (r *Registry) IsSynchronizer(tx *store.Tx, account model.Account) (bool, error) {
	_, found, err := tx.Synchronizer(account)
	return found, err
}

// Slots returns the number of buffers account may hold open, zero for unknown accounts.
func (r *Registry) Slots(tx *store.Tx, account model.Account) (uint16, error) {
	s, found, err := tx.Synchronizer(account)
	if err != nil || !found {
		return 0, err
	}
	return s.Slots, nil
}

// ResolveAddress maps a coinbase payout address to its synchronizer.
func (r *Registry) ResolveAddress(tx *store.Tx, address string) (model.Account, bool, error) {
	return tx.MinerAddress(address)
}

// NotifyConfirmed records that a block uploaded by account became irreversible.
func (r *Registry) NotifyConfirmed(tx *store.Tx, account model.Account, height uint64) error {
	s, found, err := tx.Synchronizer(account)
	if err != nil || !found {
		return err
	}
	s.ConfirmedBlocks++
	if height > s.LatestConfirmed {
		s.LatestConfirmed = height
	}
	return tx.PutSynchronizer(s)
}
