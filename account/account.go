// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/tracker"
	"github.com/bitmark-inc/socialdbd/util"
)

// MinStorageBytes - bytes covered by the minimum storage balance
const MinStorageBytes = 10000

// Account - storage economics of one identity
//
// Identity, NodeID and Tracker are not part of the stored record
type Account struct {
	Identity       string
	NodeID         node.ID
	StorageBalance uint256.Int
	UsedBytes      uint64
	SharedStorage  *sharedstorage.AccountSharedStorage
	Tracker        *tracker.Tracker
}

// OwnedBytes - used bytes not backed by a shared storage pool
func (a *Account) OwnedBytes() uint64 {
	if nil == a.SharedStorage {
		return a.UsedBytes
	}
	return a.UsedBytes - a.SharedStorage.UsedBytes
}

// IsCovered - the owned bytes are paid for by the balance
func (a *Account) IsCovered(price *uint256.Int) bool {
	return !chain.CostOf(a.OwnedBytes(), price).Gt(&a.StorageBalance)
}

// Balance - total and withdrawable storage balance
type Balance struct {
	Total     uint256.Int
	Available uint256.Int
}

// Bounds - storage balance limits, a nil Max is unbounded
type Bounds struct {
	Min *uint256.Int
	Max *uint256.Int
}

// StorageView - usage and remaining capacity including shared storage
type StorageView struct {
	UsedBytes      uint64
	AvailableBytes uint64
}

// MinimumStorageBalance - balance needed to register
func MinimumStorageBalance(price *uint256.Int) *uint256.Int {
	return chain.CostOf(MinStorageBytes, price)
}

// record versions
//
// version 0 predates shared storage
const (
	accountVersion0 = 0x00
	accountVersion1 = 0x01

	noSharedStorage  = 0x00
	hasSharedStorage = 0x01
)

const balanceSize = 32

func packAccount(a *Account) []byte {
	balance := a.StorageBalance.Bytes32()

	buffer := make([]byte, 1, 1+balanceSize+util.Varint64MaximumBytes+1)
	buffer[0] = accountVersion1
	buffer = append(buffer, balance[:]...)
	buffer = append(buffer, util.ToVarint64(a.UsedBytes)...)

	if nil == a.SharedStorage {
		return append(buffer, noSharedStorage)
	}
	s := a.SharedStorage
	buffer = append(buffer, hasSharedStorage)
	buffer = append(buffer, util.ToVarint64(uint64(len(s.PoolID)))...)
	buffer = append(buffer, s.PoolID...)
	buffer = append(buffer, util.ToVarint64(s.MaxBytes)...)
	return append(buffer, util.ToVarint64(s.UsedBytes)...)
}

// unpackAccount - decode any record version into the current shape
//
// a version 0 record is upgraded: the added shared storage marker
// costs one byte which the system pays for
func unpackAccount(buffer []byte, price *uint256.Int) *Account {
	if len(buffer) < 1+balanceSize+1 {
		fault.Panicf("account: record too short: %x", buffer)
	}

	a := &Account{}
	a.StorageBalance.SetBytes32(buffer[1 : 1+balanceSize])
	n := 1 + balanceSize

	used, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		fault.Panicf("account: bad used bytes: %x", buffer)
	}
	a.UsedBytes = used
	n += count

	switch buffer[0] {
	case accountVersion0:
		if n != len(buffer) {
			fault.Panicf("account: legacy record length: %d", len(buffer))
		}
		a.UsedBytes += 1
		a.StorageBalance.Add(&a.StorageBalance, price)
		return a

	case accountVersion1:
	default:
		fault.Panicf("account: unknown record version: %d", buffer[0])
	}

	if n >= len(buffer) {
		fault.Panicf("account: missing shared storage marker: %x", buffer)
	}
	flag := buffer[n]
	n += 1

	switch flag {
	case noSharedStorage:
	case hasSharedStorage:
		s := &sharedstorage.AccountSharedStorage{}
		length, count := util.FromVarint64(buffer[n:])
		n += count
		if 0 == count || uint64(len(buffer)-n) < length {
			fault.Panicf("account: bad pool id: %x", buffer)
		}
		s.PoolID = string(buffer[n : n+int(length)])
		n += int(length)

		s.MaxBytes, count = util.FromVarint64(buffer[n:])
		n += count
		if 0 == count {
			fault.Panicf("account: bad max bytes: %x", buffer)
		}
		s.UsedBytes, count = util.FromVarint64(buffer[n:])
		n += count
		if 0 == count {
			fault.Panicf("account: bad shared used bytes: %x", buffer)
		}
		a.SharedStorage = s
	default:
		fault.Panicf("account: bad shared storage marker: %d", flag)
	}

	if n != len(buffer) {
		fault.Panicf("account: trailing bytes: %x", buffer)
	}
	return a
}
