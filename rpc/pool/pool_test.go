// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/fixtures"
	"github.com/bitmark-inc/socialdbd/rpc/mocks"
	"github.com/bitmark-inc/socialdbd/rpc/pool"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

func setup(t *testing.T) (*pool.Pool, *mocks.MockPools, *gomock.Controller) {
	ctl := gomock.NewController(t)
	p := mocks.NewMockPools(ctl)
	return pool.New(logger.New(fixtures.LogCategory), p), p, ctl
}

func TestPoolDeposit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, p, ctl := setup(t)
	defer ctl.Finish()

	req := socialdb.Request{Caller: "alice.near", Payment: uint256.NewInt(3000)}
	result := &sharedstorage.Pool{UsedBytes: 52, SharedBytes: 100}
	result.StorageBalance.SetUint64(3000)
	p.EXPECT().SharedStoragePoolDeposit(req, "").Return(result, nil).Times(1)

	var reply pool.PoolReply
	err := s.Deposit(&pool.DepositArguments{Arguments: caller.Arguments{Caller: "alice.near", Payment: "3000"}}, &reply)
	assert.Nil(t, err, "wrong Deposit")
	assert.Equal(t, pool.PoolReply{StorageBalance: "3000", UsedBytes: 52, SharedBytes: 100}, reply, "wrong pool")
}

func TestPoolShare(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, p, ctl := setup(t)
	defer ctl.Finish()

	req := socialdb.Request{Caller: "alice.near"}
	p.EXPECT().ShareStorage(req, "bob.near", uint64(5000)).Return(nil).Times(1)
	p.EXPECT().ShareStorage(req, "bob.near", uint64(10)).Return(fault.ErrMaxBytesNotIncreased).Times(1)

	arguments := pool.ShareArguments{
		Arguments: caller.Arguments{Caller: "alice.near"},
		AccountID: "bob.near",
		MaxBytes:  5000,
	}
	err := s.Share(&arguments, &pool.ShareReply{})
	assert.Nil(t, err, "wrong Share")

	arguments.MaxBytes = 10
	err = s.Share(&arguments, &pool.ShareReply{})
	assert.Equal(t, fault.ErrMaxBytesNotIncreased, err, "wrong error")

	arguments.AccountID = ""
	err = s.Share(&arguments, &pool.ShareReply{})
	assert.Equal(t, fault.ErrInvalidAccountId, err, "missing donee")
}

func TestPoolGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, p, ctl := setup(t)
	defer ctl.Finish()

	p.EXPECT().SharedStoragePool("alice.near").Return(&sharedstorage.Pool{UsedBytes: 4}, true).Times(1)
	p.EXPECT().SharedStoragePool("bob.near").Return(nil, false).Times(1)

	var reply pool.GetReply
	err := s.Get(&pool.GetArguments{OwnerID: "alice.near"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, &pool.PoolReply{StorageBalance: "0", UsedBytes: 4}, reply.Pool, "wrong pool")

	var missing pool.GetReply
	err = s.Get(&pool.GetArguments{OwnerID: "bob.near"}, &missing)
	assert.Nil(t, err, "wrong Get")
	assert.Nil(t, missing.Pool, "pool of unknown owner")
}
