// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/storage"
	"github.com/bitmark-inc/socialdbd/tracker"
)

// ShareStorage - let the pool of owner cover up to maxBytes of donee
//
// an unregistered donee is created, funded by the pool alone; a donee
// on another pool moves its pool backed usage to this pool
func (r *Registry) ShareStorage(trx storage.Transaction, owner string, donee string, maxBytes uint64) error {
	if maxBytes < sharedstorage.MinStorageBytes {
		return fault.ErrMaxBytesTooSmall
	}
	if owner == donee {
		return fault.ErrSharedStorageOwnAccount
	}
	if !ValidIdentity(donee) {
		return fault.ErrInvalidAccountId
	}

	pool, ok := r.pools.Get(owner)
	if !ok {
		return fault.ErrPoolNotFound
	}
	price := r.price()
	if pool.AvailableBytes(price) < maxBytes {
		return fault.ErrInsufficientStorage
	}

	a, ok := r.Get(donee)
	if !ok {
		pool.SharedBytes += maxBytes
		r.pools.Put(trx, owner, pool)

		shared := &sharedstorage.AccountSharedStorage{
			PoolID:   owner,
			MaxBytes: maxBytes,
		}
		_, err := r.create(trx, donee, new(uint256.Int), shared)
		return err
	}

	current := a.SharedStorage
	switch {
	case nil == current:
		pool.SharedBytes += maxBytes
		r.pools.Put(trx, owner, pool)
		a.SharedStorage = &sharedstorage.AccountSharedStorage{
			PoolID:   owner,
			MaxBytes: maxBytes,
		}

	case maxBytes < current.UsedBytes:
		return fault.ErrMaxBytesTooSmall

	case current.PoolID == owner:
		if maxBytes <= current.MaxBytes {
			return fault.ErrMaxBytesNotIncreased
		}
		pool.SharedBytes += maxBytes - current.MaxBytes
		r.pools.Put(trx, owner, pool)
		a.SharedStorage = &sharedstorage.AccountSharedStorage{
			PoolID:    owner,
			MaxBytes:  maxBytes,
			UsedBytes: current.UsedBytes,
		}

	default:
		previous := r.pools.MustGet(current.PoolID)
		previousAvailable := current.AvailableBytes(previous, price)

		next := &sharedstorage.AccountSharedStorage{
			PoolID:   owner,
			MaxBytes: maxBytes,
		}
		if next.AvailableBytes(pool, price) < current.UsedBytes+previousAvailable+sharedstorage.MinStorageBytes {
			return fault.ErrMaxBytesTooSmall
		}

		previous.UsedBytes -= current.UsedBytes
		previous.SharedBytes -= current.MaxBytes
		r.pools.Put(trx, current.PoolID, previous)

		next.UsedBytes = current.UsedBytes
		pool.UsedBytes += next.UsedBytes
		pool.SharedBytes += next.MaxBytes
		r.pools.Put(trx, owner, pool)

		a.SharedStorage = next
		r.log.Infof("%q: moved from pool: %q to pool: %q", donee, current.PoolID, owner)
	}

	// the record grows with the shared storage link
	t := tracker.New()
	_ = t.Measure(trx, func() error {
		r.save(trx, a)
		return nil
	})
	a.Tracker.Consume(t)

	r.log.Infof("%q: shared storage from: %q  max bytes: %d", donee, owner, maxBytes)
	return r.Settle(trx, a)
}
