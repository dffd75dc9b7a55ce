package store

import (
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

func (t *Tx) FeeAccount(account model.Account) (*model.FeeAccount, bool, error) {
	var a model.FeeAccount
	found, err := t.GetRecord(BucketFeeBalances, AccountKey(account), &a)
	if err != nil || !found {
		return nil, false, err
	}
	return &a, true, nil
}

func (t *Tx) PutFeeAccount(a *model.FeeAccount) error {
	return t.PutRecord(BucketFeeBalances, AccountKey(a.Account), a)
}

func (t *Tx) Validator(account model.Account) (*model.Validator, bool, error) {
	var v model.Validator
	found, err := t.GetRecord(BucketValidators, AccountKey(account), &v)
	if err != nil || !found {
		return nil, false, err
	}
	return &v, true, nil
}

func (t *Tx) PutValidator(v *model.Validator) error {
	return t.PutRecord(BucketValidators, AccountKey(v.Account), v)
}

// Validators returns every validator in account order.
func (t *Tx) Validators() ([]model.Validator, error) {
	return scanRecords[model.Validator](t, BucketValidators, nil)
}

func (t *Tx) Synchronizer(account model.Account) (*model.Synchronizer, bool, error) {
	var s model.Synchronizer
	found, err := t.GetRecord(BucketSynchronizers, AccountKey(account), &s)
	if err != nil || !found {
		return nil, false, err
	}
	return &s, true, nil
}

func (t *Tx) PutSynchronizer(s *model.Synchronizer) error {
	return t.PutRecord(BucketSynchronizers, AccountKey(s.Account), s)
}

func (t *Tx) Synchronizers() ([]model.Synchronizer, error) {
	return scanRecords[model.Synchronizer](t, BucketSynchronizers, nil)
}

// MinerAddress resolves a payout address to the synchronizer that registered it.
func (t *Tx) MinerAddress(address string) (model.Account, bool, error) {
	var account model.Account
	found, err := t.GetRecord(BucketMinerAddrs, []byte(address), &account)
	return account, found, err
}

func (t *Tx) PutMinerAddress(address string, account model.Account) error {
	return t.PutRecord(BucketMinerAddrs, []byte(address), account)
}

func (t *Tx) RewardBalance(account model.Account) (*model.RewardBalance, bool, error) {
	var b model.RewardBalance
	found, err := t.GetRecord(BucketRewards, AccountKey(account), &b)
	if err != nil || !found {
		return nil, false, err
	}
	return &b, true, nil
}

func (t *Tx) PutRewardBalance(b *model.RewardBalance) error {
	return t.PutRecord(BucketRewards, AccountKey(b.Account), b)
}

func (t *Tx) RewardLog(height uint64) (*model.RewardLog, bool, error) {
	var l model.RewardLog
	found, err := t.GetRecord(BucketRewardIssues, heightKey(height), &l)
	if err != nil || !found {
		return nil, false, err
	}
	return &l, true, nil
}

func (t *Tx) PutRewardLog(l *model.RewardLog) error {
	return t.PutRecord(BucketRewardIssues, heightKey(l.Height), l)
}
