// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"os"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/storage"
	"github.com/bitmark-inc/socialdbd/util"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

type testRegistry struct {
	*Registry
	pools *sharedstorage.Registry
	price *uint256.Int
}

func setupTestRegistry(t *testing.T) *testRegistry {
	setupTestLogger()
	err := storage.Initialise(testingDirName+"/accounts.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	nodes, err := node.NewStore(node.Handles{
		Globals:    storage.Pool.Globals,
		Nodes:      storage.Pool.Nodes,
		Children:   storage.Pool.Children,
		ChildOrder: storage.Pool.ChildOrder,
	})
	if nil != err {
		t.Fatalf("node store error: %s", err)
	}
	pricing := chain.NewFixedPrice(nil)
	pools := sharedstorage.New(storage.Pool.SharedStoragePools, pricing)
	clock := chain.NewTicker(10, 0)

	return &testRegistry{
		Registry: New(nodes, storage.Pool.Accounts, pools, clock, pricing),
		pools:    pools,
		price:    pricing.StoragePricePerByte(),
	}
}

func teardownTestRegistry() {
	storage.Finalise()
	removeFiles()
}

func (r *testRegistry) register(t *testing.T, identity string) *Account {
	trx, _ := storage.NewDBTransaction()
	a, _, err := r.CreateOrTopup(trx, identity, MinimumStorageBalance(r.price), false)
	if nil != err {
		trx.Abort()
		t.Fatalf("register: %q error: %s", identity, err)
	}
	_ = trx.Commit()
	return a
}

func (r *testRegistry) fundPool(t *testing.T, owner string) {
	trx, _ := storage.NewDBTransaction()
	_, err := r.pools.Deposit(trx, owner, sharedstorage.MinimumDeposit)
	if nil != err {
		trx.Abort()
		t.Fatalf("pool deposit: %q error: %s", owner, err)
	}
	_ = trx.Commit()
}

func TestValidIdentity(t *testing.T) {
	items := []struct {
		identity string
		valid    bool
	}{
		{"alice.near", true},
		{"bob_1-x.testnet", true},
		{"a1", true},
		{"a", false},
		{"Alice.near", false},
		{".alice", false},
		{"alice.", false},
		{"alice..near", false},
		{"alice/near", false},
		{"0123456789012345678901234567890123456789012345678901234567890123", true},
		{"01234567890123456789012345678901234567890123456789012345678901234", false},
	}

	for i, item := range items {
		assert.Equal(t, item.valid, ValidIdentity(item.identity), "%d: %q", i, item.identity)
	}
}

func TestRegistrationNeedsMinimumBalance(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	payment := new(uint256.Int).SubUint64(MinimumStorageBalance(r.price), 1)
	_, _, err := r.CreateOrTopup(trx, "alice.near", payment, false)
	assert.Equal(t, fault.ErrInsufficientDeposit, err, "wrong error")
}

func TestRegistrationOnlyRefundsExcess(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	minimum := MinimumStorageBalance(r.price)
	payment := new(uint256.Int).Add(minimum, uint256.NewInt(12345))

	trx, _ := storage.NewDBTransaction()
	a, refund, err := r.CreateOrTopup(trx, "alice.near", payment, true)
	assert.Nil(t, err, "create error")
	_ = trx.Commit()

	assert.Equal(t, uint256.NewInt(12345), refund, "refund")
	assert.Equal(t, minimum, &a.StorageBalance, "balance")
	assert.NotZero(t, a.UsedBytes, "registration bytes not charged")
	assert.True(t, a.IsCovered(r.price), "not covered")

	// registered again, the whole payment returns
	trx, _ = storage.NewDBTransaction()
	_, refund, err = r.CreateOrTopup(trx, "alice.near", payment, true)
	assert.Nil(t, err, "second registration error")
	_ = trx.Commit()
	assert.Equal(t, payment, refund, "second refund")

	stored, ok := r.Get("alice.near")
	assert.True(t, ok, "account missing")
	assert.Equal(t, minimum, &stored.StorageBalance, "balance changed")
	assert.Equal(t, a.UsedBytes, stored.UsedBytes, "used bytes changed")
	assert.Equal(t, uint64(1), r.Count(), "count")
}

func TestTopupAddsToBalance(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.register(t, "alice.near")

	trx, _ := storage.NewDBTransaction()
	a, refund, err := r.CreateOrTopup(trx, "alice.near", uint256.NewInt(5), false)
	assert.Nil(t, err, "topup error")
	_ = trx.Commit()

	assert.True(t, refund.IsZero(), "refund on topup")
	expected := new(uint256.Int).AddUint64(MinimumStorageBalance(r.price), 5)
	assert.Equal(t, expected, &a.StorageBalance, "balance")
}

func TestInvalidIdentityIsRejected(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	_, _, err := r.CreateOrTopup(trx, "Not/Valid", MinimumStorageBalance(r.price), false)
	assert.Equal(t, fault.ErrInvalidAccountId, err, "wrong error")
}

func TestSettleRejectsUncoveredGrowth(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.register(t, "alice.near")

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	a := r.MustGet("alice.near")
	a.Tracker.BytesAdded = MinStorageBytes
	assert.Equal(t, fault.ErrInsufficientStorage, r.Settle(trx, a), "wrong error")
}

func TestSettleReleaseBeyondUsedPanics(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.register(t, "alice.near")

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	a := r.MustGet("alice.near")
	a.Tracker.BytesReleased = a.UsedBytes + 1
	assert.Panics(t, func() {
		_ = r.Settle(trx, a)
	})
}

func TestSettleDrawsFromPoolFirst(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.fundPool(t, "donor.near")
	r.register(t, "alice.near")

	trx, _ := storage.NewDBTransaction()
	err := r.ShareStorage(trx, "donor.near", "alice.near", 5000)
	assert.Nil(t, err, "share error")
	_ = trx.Commit()

	a := r.MustGet("alice.near")
	assert.NotNil(t, a.SharedStorage, "no shared storage")
	ownedBefore := a.OwnedBytes()
	sharedBefore := a.SharedStorage.UsedBytes
	poolBefore := r.pools.MustGet("donor.near").UsedBytes

	// growth beyond the allowance spills into the owned balance
	trx, _ = storage.NewDBTransaction()
	a.Tracker.BytesAdded = 6000
	err = r.Settle(trx, a)
	assert.Nil(t, err, "settle error")
	_ = trx.Commit()

	fromPool := 5000 - sharedBefore
	a = r.MustGet("alice.near")
	assert.Equal(t, uint64(5000), a.SharedStorage.UsedBytes, "allowance not used first")
	assert.Equal(t, ownedBefore+6000-fromPool, a.OwnedBytes(), "owned bytes")
	assert.Equal(t, poolBefore+fromPool, r.pools.MustGet("donor.near").UsedBytes, "pool used bytes")

	// release goes back to the pool first
	trx, _ = storage.NewDBTransaction()
	a.Tracker.BytesReleased = 3000
	err = r.Settle(trx, a)
	assert.Nil(t, err, "release error")
	_ = trx.Commit()

	a = r.MustGet("alice.near")
	assert.Equal(t, uint64(2000), a.SharedStorage.UsedBytes, "pool not released first")
	assert.Equal(t, ownedBefore+6000-fromPool, a.OwnedBytes(), "owned bytes released")
	assert.Equal(t, poolBefore+fromPool-3000, r.pools.MustGet("donor.near").UsedBytes, "pool used bytes")
}

func TestShareStorageCreatesDonee(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.fundPool(t, "donor.near")
	poolBefore := r.pools.MustGet("donor.near")

	trx, _ := storage.NewDBTransaction()
	err := r.ShareStorage(trx, "donor.near", "bob.near", sharedstorage.MinStorageBytes)
	assert.Nil(t, err, "share error")
	_ = trx.Commit()

	b := r.MustGet("bob.near")
	assert.True(t, b.StorageBalance.IsZero(), "donee has a balance")
	assert.NotZero(t, b.UsedBytes, "nothing charged")
	assert.Equal(t, b.UsedBytes, b.SharedStorage.UsedBytes, "not all from the pool")
	assert.Equal(t, uint64(0), b.OwnedBytes(), "owned bytes")

	pool := r.pools.MustGet("donor.near")
	assert.Equal(t, poolBefore.UsedBytes+b.UsedBytes, pool.UsedBytes, "pool used")
	assert.Equal(t, uint64(sharedstorage.MinStorageBytes), pool.SharedBytes, "pool shared")
}

func TestShareStorageRules(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.fundPool(t, "donor.near")
	r.fundPool(t, "other.near")

	trx, _ := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrMaxBytesTooSmall, r.ShareStorage(trx, "donor.near", "bob.near", sharedstorage.MinStorageBytes-1), "too small")
	assert.Equal(t, fault.ErrPoolNotFound, r.ShareStorage(trx, "nobody.near", "bob.near", 3000), "no pool")
	assert.Equal(t, fault.ErrSharedStorageOwnAccount, r.ShareStorage(trx, "donor.near", "donor.near", 3000), "own")
	assert.Equal(t, fault.ErrInsufficientStorage, r.ShareStorage(trx, "donor.near", "bob.near", 1<<40), "beyond pool")

	assert.Nil(t, r.ShareStorage(trx, "donor.near", "bob.near", 3000), "first share")
	_ = trx.Commit()

	trx, _ = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrMaxBytesNotIncreased, r.ShareStorage(trx, "donor.near", "bob.near", 3000), "same max")
	assert.Nil(t, r.ShareStorage(trx, "donor.near", "bob.near", 4000), "increase")
	_ = trx.Commit()
	assert.Equal(t, uint64(4000), r.pools.MustGet("donor.near").SharedBytes, "shared bytes after increase")

	// move to the other pool
	used := r.MustGet("bob.near").SharedStorage.UsedBytes
	donorUsed := r.pools.MustGet("donor.near").UsedBytes
	otherUsed := r.pools.MustGet("other.near").UsedBytes

	trx, _ = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrMaxBytesTooSmall, r.ShareStorage(trx, "other.near", "bob.near", 4000), "move without margin")
	assert.Nil(t, r.ShareStorage(trx, "other.near", "bob.near", 8000), "move")
	_ = trx.Commit()

	b := r.MustGet("bob.near")
	assert.Equal(t, "other.near", b.SharedStorage.PoolID, "pool id")
	assert.Equal(t, uint64(0), r.pools.MustGet("donor.near").SharedBytes, "old pool shared bytes")
	assert.Equal(t, donorUsed-used, r.pools.MustGet("donor.near").UsedBytes, "old pool used bytes")
	assert.True(t, r.pools.MustGet("other.near").UsedBytes >= otherUsed+used, "new pool used bytes")
}

func TestLegacyAccountIsUpgraded(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	a := r.register(t, "alice.near")

	// rewrite the record in the version 0 layout
	balance := a.StorageBalance.Bytes32()
	legacy := append([]byte{accountVersion0}, balance[:]...)
	legacy = append(legacy, util.ToVarint64(a.UsedBytes)...)

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.Accounts, a.NodeID.Bytes(), legacy)
	_ = trx.Commit()

	upgraded := r.MustGet("alice.near")
	assert.Equal(t, a.UsedBytes+1, upgraded.UsedBytes, "used bytes")
	expected := new(uint256.Int).Add(&a.StorageBalance, r.price)
	assert.Equal(t, expected, &upgraded.StorageBalance, "balance")
	assert.Nil(t, upgraded.SharedStorage, "shared storage")

	assert.Equal(t, len(legacy)+1, len(packAccount(upgraded)), "upgraded record should grow by one byte")
}

func TestStorageBalanceAndWithdraw(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	r.register(t, "alice.near")
	_, ok := r.StorageBalanceOf("bob.near")
	assert.False(t, ok, "unregistered balance")

	trx, _ := storage.NewDBTransaction()
	_, _, err := r.CreateOrTopup(trx, "alice.near", uint256.NewInt(1000), false)
	assert.Nil(t, err, "topup error")
	_ = trx.Commit()

	b, ok := r.StorageBalanceOf("alice.near")
	assert.True(t, ok, "balance missing")
	assert.Equal(t, uint256.NewInt(1000), &b.Available, "available")

	trx, _ = storage.NewDBTransaction()
	_, _, err = r.Withdraw(trx, "alice.near", uint256.NewInt(1001))
	assert.Equal(t, fault.ErrExceedsAvailableBalance, err, "over withdraw")
	trx.Abort()

	trx, _ = storage.NewDBTransaction()
	amount, b, err := r.Withdraw(trx, "alice.near", nil)
	assert.Nil(t, err, "withdraw error")
	_ = trx.Commit()
	assert.Equal(t, uint256.NewInt(1000), amount, "amount")
	assert.True(t, b.Available.IsZero(), "still available")

	trx, _ = storage.NewDBTransaction()
	_, _, err = r.Withdraw(trx, "bob.near", nil)
	assert.Equal(t, fault.ErrAccountNotRegistered, err, "unregistered withdraw")
	trx.Abort()

	assert.Equal(t, fault.ErrCannotUnregister, r.Unregister("alice.near"), "unregister")
	assert.Nil(t, r.StorageBalanceBounds().Max, "max bound")
}

func TestStorageView(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	a := r.register(t, "alice.near")

	v, ok := r.StorageView("alice.near")
	assert.True(t, ok, "view missing")
	assert.Equal(t, a.UsedBytes, v.UsedBytes, "used")
	assert.Equal(t, uint64(MinStorageBytes)-a.UsedBytes, v.AvailableBytes, "available")

	r.fundPool(t, "donor.near")
	trx, _ := storage.NewDBTransaction()
	assert.Nil(t, r.ShareStorage(trx, "donor.near", "alice.near", 3000), "share")
	_ = trx.Commit()

	a = r.MustGet("alice.near")
	v, _ = r.StorageView("alice.near")
	expected := uint64(MinStorageBytes) - a.OwnedBytes() + 3000 - a.SharedStorage.UsedBytes
	assert.Equal(t, expected, v.AvailableBytes, "available with shared storage")
}

func TestPagedIdentities(t *testing.T) {
	r := setupTestRegistry(t)
	defer teardownTestRegistry()

	for _, identity := range []string{"carol.near", "alice.near", "bob.near"} {
		r.register(t, identity)
	}

	identities, err := r.Paged(1, 5)
	assert.Nil(t, err, "paged error")
	assert.Equal(t, []string{"alice.near", "bob.near"}, identities, "registration order")
	assert.Equal(t, uint64(3), r.Count(), "count")
}
