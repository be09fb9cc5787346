// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedstorage

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
)

// MinStorageBytes - smallest allowance a pool can promise
const MinStorageBytes = 2000

// MinimumDeposit - 100 * 10^24 units
var MinimumDeposit = new(uint256.Int).Mul(uint256.NewInt(100), new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(24)))

// Pool - storage allowance funded by one donor
//
// SharedBytes is the sum of the MaxBytes promised to every donee and
// may exceed what the balance covers
type Pool struct {
	StorageBalance uint256.Int
	UsedBytes      uint64
	SharedBytes    uint64
}

// AvailableBytes - bytes the balance covers beyond what is used
func (p *Pool) AvailableBytes(price *uint256.Int) uint64 {
	covered := chain.BytesCovered(&p.StorageBalance, price)
	if covered < p.UsedBytes {
		return 0
	}
	return covered - p.UsedBytes
}

// AccountSharedStorage - a donee's link to its pool
type AccountSharedStorage struct {
	PoolID    string
	MaxBytes  uint64
	UsedBytes uint64
}

// AvailableBytes - remaining allowance, limited by what the pool covers
func (s *AccountSharedStorage) AvailableBytes(pool *Pool, price *uint256.Int) uint64 {
	remaining := uint64(0)
	if s.MaxBytes > s.UsedBytes {
		remaining = s.MaxBytes - s.UsedBytes
	}
	available := pool.AvailableBytes(price)
	if available < remaining {
		return available
	}
	return remaining
}

// record versions
const (
	poolVersion1   = 0x01
	poolRecordSize = 1 + 32 + 8 + 8
)

func packPool(p *Pool) []byte {
	buffer := make([]byte, poolRecordSize)
	buffer[0] = poolVersion1
	b := p.StorageBalance.Bytes32()
	copy(buffer[1:33], b[:])
	binary.BigEndian.PutUint64(buffer[33:41], p.UsedBytes)
	binary.BigEndian.PutUint64(buffer[41:49], p.SharedBytes)
	return buffer
}

func unpackPool(buffer []byte) *Pool {
	if 0 == len(buffer) {
		fault.Panicf("sharedstorage: empty pool record")
	}
	switch buffer[0] {
	case poolVersion1:
		if poolRecordSize != len(buffer) {
			fault.Panicf("sharedstorage: pool record length: %d", len(buffer))
		}
		p := &Pool{
			UsedBytes:   binary.BigEndian.Uint64(buffer[33:41]),
			SharedBytes: binary.BigEndian.Uint64(buffer[41:49]),
		}
		p.StorageBalance.SetBytes32(buffer[1:33])
		return p
	default:
		fault.Panicf("sharedstorage: unknown pool version: %d", buffer[0])
	}
	return nil
}
