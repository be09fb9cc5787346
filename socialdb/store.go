// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/storage"
)

// SetOptions - optional behaviour of Set
type SetOptions struct {
	RefundUnusedDeposit bool `json:"refund_unused_deposit"`
}

// Get - read values, see document.Engine.Get
func (db *DB) Get(paths []string, options document.GetOptions) (*document.Object, error) {
	db.RLock()
	defer db.RUnlock()
	return db.engine.Get(paths, options)
}

// Keys - read key presence, see document.Engine.Keys
func (db *DB) Keys(paths []string, options document.KeysOptions) (*document.Object, error) {
	db.RLock()
	defer db.RUnlock()
	return db.engine.Keys(paths, options)
}

// Set - merge data, keyed by account identity, into the tree
//
// a caller writing to its own account with a payment attached may
// write anywhere in it, everyone else needs grants; the payment
// registers the caller when needed and the rest funds the first
// account written
func (db *DB) Set(req Request, data *document.Object, options SetOptions) (*Outcome, error) {
	if nil == data {
		return nil, fault.ErrInvalidDocument
	}

	return db.update(func(trx storage.Transaction) (*Outcome, error) {
		outcome := &Outcome{}

		payment := req.payment()
		paid := !payment.IsZero()

		for _, identity := range data.Keys() {
			value, _ := data.Get(identity)

			a, credited, err := db.accountForSet(trx, req, identity, payment)
			if nil != err {
				return nil, err
			}
			payment.Clear()

			approval := document.Approval{
				Owner: identity == req.Caller && paid,
			}
			if !approval.Owner {
				approval.Roots = db.permissions.WritableRoots(a, req.Caller, req.SignerKey)
			}

			err = a.Tracker.Measure(trx, func() error {
				return db.engine.Set(trx, a.NodeID, value, approval)
			})
			if nil != err {
				db.log.Debugf("set: %q by: %q error: %s", identity, req.Caller, err)
				return nil, err
			}
			err = db.accounts.Settle(trx, a)
			if nil != err {
				return nil, err
			}

			if options.RefundUnusedDeposit && !credited.IsZero() {
				err := db.refundUnused(trx, outcome, req.Caller, a, credited)
				if nil != err {
					return nil, err
				}
			}
		}

		// nothing was written to take the payment
		outcome.refund(req.Caller, payment)
		return outcome, nil
	})
}

// the account written to and the part of the payment credited to it
func (db *DB) accountForSet(trx storage.Transaction, req Request, identity string, payment *uint256.Int) (*account.Account, *uint256.Int, error) {
	credited := new(uint256.Int)

	a, ok := db.accounts.Get(identity)
	if !ok && identity != req.Caller {
		return nil, nil, fault.ErrAccountNotRegistered
	}
	if !ok && payment.IsZero() {
		return nil, nil, fault.ErrDepositRequired
	}
	if payment.IsZero() {
		return a, credited, nil
	}

	a, _, err := db.accounts.CreateOrTopup(trx, identity, payment, false)
	if nil != err {
		return nil, nil, err
	}
	if ok {
		credited.Set(payment)
	} else {
		credited.Sub(payment, account.MinimumStorageBalance(db.pricing.StoragePricePerByte()))
	}
	return a, credited, nil
}

// give back the part of the credit not locked by storage
func (db *DB) refundUnused(trx storage.Transaction, outcome *Outcome, caller string, a *account.Account, credited *uint256.Int) error {
	b, _ := db.accounts.StorageBalanceOf(a.Identity)
	amount := new(uint256.Int).Set(credited)
	if amount.Gt(&b.Available) {
		amount.Set(&b.Available)
	}
	if amount.IsZero() {
		return nil
	}
	withdrawn, _, err := db.accounts.Withdraw(trx, a.Identity, amount)
	if nil != err {
		return err
	}
	outcome.refund(caller, withdrawn)
	return nil
}
