// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/permission"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/storage"
)

// status record in the globals pool
var statusKey = []byte("status")

// DB - the document store with its accounts, grants and pools
//
// one mutating request runs at a time inside one storage transaction,
// reads share the lock and only see committed state
type DB struct {
	sync.RWMutex

	log     *logger.L
	clock   chain.Clock
	pricing chain.Pricing
	status  mode.Mode

	nodes       *node.Store
	pools       *sharedstorage.Registry
	accounts    *account.Registry
	permissions *permission.Registry
	engine      *document.Engine
}

// New - open the store over the initialised storage pools
//
// the persisted status wins over initial, which only applies to a
// fresh database
func New(clock chain.Clock, pricing chain.Pricing, initial mode.Mode) (*DB, error) {
	nodes, err := node.NewStore(node.Handles{
		Globals:    storage.Pool.Globals,
		Nodes:      storage.Pool.Nodes,
		Children:   storage.Pool.Children,
		ChildOrder: storage.Pool.ChildOrder,
	})
	if nil != err {
		return nil, err
	}

	pools := sharedstorage.New(storage.Pool.SharedStoragePools, pricing)
	accounts := account.New(nodes, storage.Pool.Accounts, pools, clock, pricing)

	db := &DB{
		log:         logger.New("socialdb"),
		clock:       clock,
		pricing:     pricing,
		nodes:       nodes,
		pools:       pools,
		accounts:    accounts,
		permissions: permission.New(nodes, storage.Pool.Permissions, accounts, clock),
		engine:      document.New(nodes, clock),
	}

	if status, ok := storage.Pool.Globals.GetN(statusKey); ok {
		db.status = mode.Mode(status)
		db.log.Infof("status: %s", db.status)
		return db, nil
	}

	if initial <= mode.Stopped || initial > mode.ReadOnly {
		return nil, fault.ErrInvalidStatus
	}
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.PutN(storage.Pool.Globals, statusKey, uint64(initial))
	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	db.status = initial
	db.log.Infof("initial status: %s", db.status)

	return db, nil
}

// Status - the current contract status
func (db *DB) Status() mode.Mode {
	db.RLock()
	defer db.RUnlock()
	return db.status
}

// BlockHeight - current height of the block clock
func (db *DB) BlockHeight() uint64 {
	return db.clock.BlockHeight()
}

// SetStatus - move to Live or ReadOnly
func (db *DB) SetStatus(status mode.Mode) error {
	db.Lock()
	defer db.Unlock()

	switch status {
	case mode.Genesis:
		if mode.Genesis != db.status {
			return fault.ErrCannotReturnToGenesis
		}
		return nil
	case mode.Live, mode.ReadOnly:
	default:
		return fault.ErrInvalidStatus
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.Globals, statusKey, uint64(status))
	err = trx.Commit()
	if nil != err {
		return err
	}

	db.log.Infof("status: %s -> %s", db.status, status)
	db.status = status

	// mirror into the process wide mode once it is running
	if mode.IsNot(mode.Stopped) {
		mode.Set(status)
	}
	return nil
}

// update - run f as one transaction of a live store
//
// any error or panic discards every write of f
func (db *DB) update(f func(trx storage.Transaction) (*Outcome, error)) (*Outcome, error) {
	db.Lock()
	defer db.Unlock()

	if mode.Live != db.status {
		return nil, fault.ErrNotLive
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if trx.InUse() {
			trx.Abort()
		}
		db.nodes.Discard()
	}()

	outcome, err := f(trx)
	if nil != err {
		db.log.Debugf("aborted: %s", err)
		return nil, err
	}
	err = trx.Commit()
	if nil != err {
		db.log.Errorf("commit error: %s", err)
		return nil, err
	}
	committed = true

	return outcome, nil
}
