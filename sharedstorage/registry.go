// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedstorage

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/storage"
	"github.com/bitmark-inc/socialdbd/tracker"
)

// Registry - pools keyed by donor identity
type Registry struct {
	log     *logger.L
	pools   *storage.PoolHandle
	pricing chain.Pricing
}

// New - registry over the given pool handle
func New(pools *storage.PoolHandle, pricing chain.Pricing) *Registry {
	return &Registry{
		log:     logger.New("sharedstorage"),
		pools:   pools,
		pricing: pricing,
	}
}

// Get - the pool funded by owner, reads include pending writes
func (r *Registry) Get(owner string) (*Pool, bool) {
	buffer := r.pools.Get([]byte(owner))
	if nil == buffer {
		return nil, false
	}
	return unpackPool(buffer), true
}

// MustGet - a pool referenced by an account, so it must exist
func (r *Registry) MustGet(owner string) *Pool {
	p, ok := r.Get(owner)
	if !ok {
		fault.Panicf("sharedstorage: referenced pool: %q does not exist", owner)
	}
	return p
}

// Put - store a pool
func (r *Registry) Put(trx storage.Transaction, owner string, p *Pool) {
	trx.Put(r.pools, []byte(owner), packPool(p))
}

// Deposit - fund a pool, creating it on the first deposit
//
// the bytes of the pool's own record are charged to the pool
func (r *Registry) Deposit(trx storage.Transaction, owner string, amount *uint256.Int) (*Pool, error) {
	if amount.Lt(MinimumDeposit) {
		return nil, fault.ErrInsufficientPoolDeposit
	}

	p, ok := r.Get(owner)
	if !ok {
		p = &Pool{}
		r.log.Infof("create pool: %q", owner)
	}

	balance, overflow := new(uint256.Int).AddOverflow(&p.StorageBalance, amount)
	if overflow {
		return nil, fault.ErrBalanceOverflow
	}
	p.StorageBalance.Set(balance)

	t := tracker.New()
	_ = t.Measure(trx, func() error {
		r.Put(trx, owner, p)
		return nil
	})
	if t.BytesAdded > t.BytesReleased {
		p.UsedBytes += t.BytesAdded - t.BytesReleased
		r.Put(trx, owner, p)
	}

	r.log.Debugf("pool: %q  balance: %s  used: %d", owner, p.StorageBalance.Dec(), p.UsedBytes)
	return p, nil
}

// AvailableBytes - what the pool can still cover at the current price
func (r *Registry) AvailableBytes(p *Pool) uint64 {
	return p.AvailableBytes(r.pricing.StoragePricePerByte())
}

// Pricing - the price source of this registry
func (r *Registry) Pricing() chain.Pricing {
	return r.pricing
}
