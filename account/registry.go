// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/storage"
	"github.com/bitmark-inc/socialdbd/tracker"
)

// Registry - binds identities to their root node and storage balance
//
// account records are keyed by the account's root node id
type Registry struct {
	log      *logger.L
	nodes    *node.Store
	accounts *storage.PoolHandle
	pools    *sharedstorage.Registry
	clock    chain.Clock
	pricing  chain.Pricing
}

// New - create an account registry
func New(nodes *node.Store, accounts *storage.PoolHandle, pools *sharedstorage.Registry, clock chain.Clock, pricing chain.Pricing) *Registry {
	return &Registry{
		log:      logger.New("account"),
		nodes:    nodes,
		accounts: accounts,
		pools:    pools,
		clock:    clock,
		pricing:  pricing,
	}
}

func (r *Registry) price() *uint256.Int {
	return r.pricing.StoragePricePerByte()
}

// Get - resolve an identity, reads include pending writes
func (r *Registry) Get(identity string) (*Account, bool) {
	root, ok := r.nodes.Get(node.RootID)
	if !ok {
		return nil, false
	}
	v, ok := r.nodes.Child(root, identity)
	if !ok {
		return nil, false
	}

	switch v := v.(type) {
	case node.Child:
		buffer := r.accounts.Get(v.ID.Bytes())
		if nil == buffer {
			fault.Panicf("account: %q: node: %d has no account record", identity, v.ID)
		}
		a := unpackAccount(buffer, r.price())
		a.Identity = identity
		a.NodeID = v.ID
		a.Tracker = tracker.New()
		return a, true
	case node.Leaf, node.Tombstone:
		fault.Panicf("account: %q: root entry is not a node", identity)
	default:
		fault.Panicf("account: %q: unknown root entry: %#v", identity, v)
	}
	return nil, false
}

// MustGet - an identity already known to be registered
func (r *Registry) MustGet(identity string) *Account {
	a, ok := r.Get(identity)
	if !ok {
		fault.Panicf("account: %q: missing account", identity)
	}
	return a
}

// save - store the record, its size change is not tracked
func (r *Registry) save(trx storage.Transaction, a *Account) {
	trx.Put(r.accounts, a.NodeID.Bytes(), packAccount(a))
}

// create - bind identity to a fresh node
//
// the node, the root entry and the account record are charged to the
// new account which is settled before return
func (r *Registry) create(trx storage.Transaction, identity string, balance *uint256.Int, shared *sharedstorage.AccountSharedStorage) (*Account, error) {
	if !ValidIdentity(identity) {
		return nil, fault.ErrInvalidAccountId
	}

	h := r.clock.BlockHeight()
	root := r.nodes.EnsureRoot(trx, h)

	a := &Account{
		Identity:      identity,
		SharedStorage: shared,
		Tracker:       tracker.New(),
	}
	a.StorageBalance.Set(balance)

	_ = a.Tracker.Measure(trx, func() error {
		n := r.nodes.Create(trx, h)
		a.NodeID = n.ID
		r.nodes.SetChild(trx, root, identity, node.Child{ID: n.ID}, h)
		r.save(trx, a)
		return nil
	})

	err := r.Settle(trx, a)
	if nil != err {
		return nil, err
	}
	r.log.Infof("registered: %q  node: %d  used: %d", identity, a.NodeID, a.UsedBytes)
	return a, nil
}

// CreateOrTopup - register identity or add payment to its balance
//
// registration needs at least the minimum storage balance; with
// registrationOnly exactly the minimum is kept and the rest refunded,
// an existing account gets the whole payment refunded
func (r *Registry) CreateOrTopup(trx storage.Transaction, identity string, payment *uint256.Int, registrationOnly bool) (*Account, *uint256.Int, error) {
	refund := new(uint256.Int)

	if a, ok := r.Get(identity); ok {
		if registrationOnly {
			return a, refund.Set(payment), nil
		}
		balance, overflow := new(uint256.Int).AddOverflow(&a.StorageBalance, payment)
		if overflow {
			return nil, nil, fault.ErrBalanceOverflow
		}
		a.StorageBalance.Set(balance)
		err := r.Settle(trx, a)
		if nil != err {
			return nil, nil, err
		}
		return a, refund, nil
	}

	minimum := MinimumStorageBalance(r.price())
	if payment.Lt(minimum) {
		return nil, nil, fault.ErrInsufficientDeposit
	}

	balance := payment
	if registrationOnly {
		balance = minimum
		refund.Sub(payment, minimum)
	}
	a, err := r.create(trx, identity, balance, nil)
	if nil != err {
		return nil, nil, err
	}
	return a, refund, nil
}

// Settle - apply the tracked byte delta and store the account
//
// growth is drawn from the shared storage pool first, releases go back
// to the pool first; fails if the owned bytes are not covered
func (r *Registry) Settle(trx storage.Transaction, a *Account) error {
	price := r.price()

	added := a.Tracker.BytesAdded
	released := a.Tracker.BytesReleased
	a.Tracker.Clear()

	s := a.SharedStorage
	var pool *sharedstorage.Pool
	if nil != s {
		pool = r.pools.MustGet(s.PoolID)
	}

	if added >= released {
		delta := added - released
		if nil != s && delta > 0 {
			fromPool := s.AvailableBytes(pool, price)
			if fromPool > delta {
				fromPool = delta
			}
			s.UsedBytes += fromPool
			pool.UsedBytes += fromPool
		}
		a.UsedBytes += delta
	} else {
		delta := released - added
		if a.UsedBytes < delta {
			fault.Panicf("account: %q: release: %d exceeds used: %d", a.Identity, delta, a.UsedBytes)
		}
		if nil != s {
			fromPool := s.UsedBytes
			if fromPool > delta {
				fromPool = delta
			}
			if pool.UsedBytes < fromPool {
				fault.Panicf("account: %q: pool: %q release: %d exceeds used: %d", a.Identity, s.PoolID, fromPool, pool.UsedBytes)
			}
			s.UsedBytes -= fromPool
			pool.UsedBytes -= fromPool
		}
		a.UsedBytes -= delta
	}

	if !a.IsCovered(price) {
		r.log.Warnf("%q: owned bytes: %d not covered by balance: %s", a.Identity, a.OwnedBytes(), a.StorageBalance.Dec())
		return fault.ErrInsufficientStorage
	}

	if nil != s {
		r.pools.Put(trx, s.PoolID, pool)
	}
	r.save(trx, a)
	return nil
}

// StorageBalanceOf - total balance and the part that can be withdrawn
func (r *Registry) StorageBalanceOf(identity string) (*Balance, bool) {
	a, ok := r.Get(identity)
	if !ok {
		return nil, false
	}
	return r.balanceOf(a), true
}

func (r *Registry) balanceOf(a *Account) *Balance {
	price := r.price()
	locked := chain.CostOf(a.OwnedBytes(), price)
	if minimum := MinimumStorageBalance(price); minimum.Gt(locked) {
		locked = minimum
	}

	b := &Balance{}
	b.Total.Set(&a.StorageBalance)
	if b.Total.Gt(locked) {
		b.Available.Sub(&b.Total, locked)
	}
	return b
}

// StorageBalanceBounds - registration minimum, no maximum
func (r *Registry) StorageBalanceBounds() Bounds {
	return Bounds{
		Min: MinimumStorageBalance(r.price()),
	}
}

// StorageView - used bytes and the bytes still available, including
// what a shared storage pool will cover
func (r *Registry) StorageView(identity string) (*StorageView, bool) {
	a, ok := r.Get(identity)
	if !ok {
		return nil, false
	}
	price := r.price()

	available := uint64(0)
	covered := chain.BytesCovered(&a.StorageBalance, price)
	if owned := a.OwnedBytes(); covered > owned {
		available = covered - owned
	}
	if s := a.SharedStorage; nil != s {
		available += s.AvailableBytes(r.pools.MustGet(s.PoolID), price)
	}

	return &StorageView{
		UsedBytes:      a.UsedBytes,
		AvailableBytes: available,
	}, true
}

// Withdraw - take some of the available balance out
//
// a nil amount withdraws everything available; returns the amount
// withdrawn and the new balance
func (r *Registry) Withdraw(trx storage.Transaction, identity string, amount *uint256.Int) (*uint256.Int, *Balance, error) {
	a, ok := r.Get(identity)
	if !ok {
		return nil, nil, fault.ErrAccountNotRegistered
	}

	b := r.balanceOf(a)
	if nil == amount {
		amount = new(uint256.Int).Set(&b.Available)
	}
	if amount.Gt(&b.Available) {
		return nil, nil, fault.ErrExceedsAvailableBalance
	}
	if !amount.IsZero() {
		a.StorageBalance.Sub(&a.StorageBalance, amount)
		err := r.Settle(trx, a)
		if nil != err {
			return nil, nil, err
		}
		r.log.Infof("withdraw: %q  amount: %s", identity, amount.Dec())
	}
	return amount, r.balanceOf(a), nil
}

// Unregister - accounts are never removed
func (r *Registry) Unregister(identity string) error {
	r.log.Warnf("refused unregister: %q", identity)
	return fault.ErrCannotUnregister
}

// Count - number of registered accounts
func (r *Registry) Count() uint64 {
	root, ok := r.nodes.Get(node.RootID)
	if !ok {
		return 0
	}
	return uint64(root.Size)
}

// Paged - identities in registration order
func (r *Registry) Paged(from uint32, limit int) ([]string, error) {
	root, ok := r.nodes.Get(node.RootID)
	if !ok {
		return []string{}, nil
	}
	entries, err := r.nodes.ChildrenPaged(root, from, limit)
	if nil != err {
		return nil, err
	}
	identities := make([]string, 0, len(entries))
	for _, e := range entries {
		identities = append(identities, e.Key)
	}
	return identities, nil
}
