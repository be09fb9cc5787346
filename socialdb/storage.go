// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/storage"
)

// StorageDeposit - register or top up identity, the caller by default
func (db *DB) StorageDeposit(req Request, identity string, registrationOnly bool) (*account.Balance, *Outcome, error) {
	if "" == identity {
		identity = req.Caller
	}
	payment := req.payment()
	if payment.IsZero() {
		return nil, nil, fault.ErrDepositRequired
	}

	var balance *account.Balance
	outcome, err := db.update(func(trx storage.Transaction) (*Outcome, error) {
		_, refund, err := db.accounts.CreateOrTopup(trx, identity, payment, registrationOnly)
		if nil != err {
			return nil, err
		}
		balance, _ = db.accounts.StorageBalanceOf(identity)

		outcome := &Outcome{}
		outcome.refund(req.Caller, refund)
		return outcome, nil
	})
	if nil != err {
		return nil, nil, err
	}
	return balance, outcome, nil
}

// StorageWithdraw - take out amount, or everything available for nil
//
// needs exactly one unit attached as confirmation, which is returned
// with the amount
func (db *DB) StorageWithdraw(req Request, amount *uint256.Int) (*account.Balance, *Outcome, error) {
	if !req.isConfirmed() {
		return nil, nil, fault.ErrConfirmationRequired
	}

	var balance *account.Balance
	outcome, err := db.update(func(trx storage.Transaction) (*Outcome, error) {
		withdrawn, b, err := db.accounts.Withdraw(trx, req.Caller, amount)
		if nil != err {
			return nil, err
		}
		balance = b

		total := new(uint256.Int).Add(withdrawn, req.Payment)
		outcome := &Outcome{}
		outcome.refund(req.Caller, total)
		return outcome, nil
	})
	if nil != err {
		return nil, nil, err
	}
	return balance, outcome, nil
}

// StorageUnregister - always refused
func (db *DB) StorageUnregister(req Request) error {
	if !req.isConfirmed() {
		return fault.ErrConfirmationRequired
	}
	return db.accounts.Unregister(req.Caller)
}

// StorageBalanceOf - total and available balance of identity
func (db *DB) StorageBalanceOf(identity string) (*account.Balance, bool) {
	db.RLock()
	defer db.RUnlock()
	return db.accounts.StorageBalanceOf(identity)
}

// StorageBalanceBounds - the registration minimum
func (db *DB) StorageBalanceBounds() account.Bounds {
	return db.accounts.StorageBalanceBounds()
}

// AccountStorage - used and available bytes of identity
func (db *DB) AccountStorage(identity string) (*account.StorageView, bool) {
	db.RLock()
	defer db.RUnlock()
	return db.accounts.StorageView(identity)
}

// SharedStoragePoolDeposit - fund the pool of owner, the caller by
// default
func (db *DB) SharedStoragePoolDeposit(req Request, owner string) (*sharedstorage.Pool, error) {
	if "" == owner {
		owner = req.Caller
	}
	if !account.ValidIdentity(owner) {
		return nil, fault.ErrInvalidAccountId
	}

	var pool *sharedstorage.Pool
	_, err := db.update(func(trx storage.Transaction) (*Outcome, error) {
		p, err := db.pools.Deposit(trx, owner, req.payment())
		if nil != err {
			return nil, err
		}
		pool = p
		return &Outcome{}, nil
	})
	if nil != err {
		return nil, err
	}
	return pool, nil
}

// ShareStorage - cover up to maxBytes of donee from the caller's pool
func (db *DB) ShareStorage(req Request, donee string, maxBytes uint64) error {
	_, err := db.update(func(trx storage.Transaction) (*Outcome, error) {
		err := db.accounts.ShareStorage(trx, req.Caller, donee, maxBytes)
		if nil != err {
			return nil, err
		}
		return &Outcome{}, nil
	})
	return err
}

// SharedStoragePool - the pool funded by owner
func (db *DB) SharedStoragePool(owner string) (*sharedstorage.Pool, bool) {
	db.RLock()
	defer db.RUnlock()
	return db.pools.Get(owner)
}
