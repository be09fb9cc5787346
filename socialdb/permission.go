// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/permission"
	"github.com/bitmark-inc/socialdbd/storage"
)

// Grant - let grantee write below paths of the caller
//
// the payment funds the caller's account, registering it if needed
func (db *DB) Grant(req Request, grantee permission.Key, paths []string) (*Outcome, error) {
	if nil == grantee {
		return nil, fault.ErrGranteeRequired
	}
	if 0 == len(paths) {
		return nil, fault.ErrMissingPaths
	}
	payment := req.payment()
	if payment.IsZero() {
		return nil, fault.ErrDepositRequired
	}

	return db.update(func(trx storage.Transaction) (*Outcome, error) {
		granter, _, err := db.accounts.CreateOrTopup(trx, req.Caller, payment, false)
		if nil != err {
			return nil, err
		}
		err = db.permissions.Grant(trx, granter, grantee, paths)
		if nil != err {
			return nil, err
		}
		db.log.Infof("%q granted: %s  paths: %v", req.Caller, grantee, paths)
		return &Outcome{}, nil
	})
}

// Revoke - remove grants of grantee below paths of the caller
//
// needs exactly one unit attached as confirmation, which is returned
func (db *DB) Revoke(req Request, grantee permission.Key, paths []string) (*Outcome, error) {
	if !req.isConfirmed() {
		return nil, fault.ErrConfirmationRequired
	}
	if nil == grantee {
		return nil, fault.ErrGranteeRequired
	}
	if 0 == len(paths) {
		return nil, fault.ErrMissingPaths
	}

	return db.update(func(trx storage.Transaction) (*Outcome, error) {
		granter, ok := db.accounts.Get(req.Caller)
		if !ok {
			return nil, fault.ErrAccountNotRegistered
		}
		err := db.permissions.Revoke(trx, granter, grantee, paths)
		if nil != err {
			return nil, err
		}
		db.log.Infof("%q revoked: %s  paths: %v", req.Caller, grantee, paths)

		outcome := &Outcome{}
		outcome.refund(req.Caller, req.Payment)
		return outcome, nil
	})
}

// IsWritePermissionGranted - grantee may write at path
func (db *DB) IsWritePermissionGranted(grantee permission.Key, path string) (bool, error) {
	if nil == grantee {
		return false, fault.ErrGranteeRequired
	}
	db.RLock()
	defer db.RUnlock()
	return db.permissions.IsAuthorized(grantee, path)
}

// Permissions - every grant made by an account
func (db *DB) Permissions(identity string) ([]permission.Entry, error) {
	db.RLock()
	defer db.RUnlock()
	return db.permissions.List(identity)
}
