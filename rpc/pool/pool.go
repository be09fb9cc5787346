// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rateLimitPool = 100
	rateBurstPool = 50
)

// Pools - shared storage operations of the store
type Pools interface {
	SharedStoragePoolDeposit(req socialdb.Request, owner string) (*sharedstorage.Pool, error)
	ShareStorage(req socialdb.Request, donee string, maxBytes uint64) error
	SharedStoragePool(owner string) (*sharedstorage.Pool, bool)
}

// Pool - type for RPC calls
//
// registered as "Pool"
type Pool struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Pools   Pools
}

// New - create the Pool service
func New(log *logger.L, pools Pools) *Pool {
	return &Pool{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPool, rateBurstPool),
		Pools:   pools,
	}
}

// PoolReply - pool figures, balance in decimal units
type PoolReply struct {
	StorageBalance string `json:"storage_balance"`
	UsedBytes      uint64 `json:"used_bytes"`
	SharedBytes    uint64 `json:"shared_bytes"`
}

func (reply *PoolReply) set(p *sharedstorage.Pool) {
	reply.StorageBalance = p.StorageBalance.Dec()
	reply.UsedBytes = p.UsedBytes
	reply.SharedBytes = p.SharedBytes
}

// DepositArguments - pool to fund, the caller's when blank
type DepositArguments struct {
	caller.Arguments
	OwnerID string `json:"owner_id"`
}

// Deposit - create or fund a pool with the whole payment
func (p *Pool) Deposit(arguments *DepositArguments, reply *PoolReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}

	p.Log.Infof("Pool.Deposit: caller: %q  owner: %q", req.Caller, arguments.OwnerID)

	pool, err := p.Pools.SharedStoragePoolDeposit(req, arguments.OwnerID)
	if nil != err {
		return err
	}
	reply.set(pool)
	return nil
}

// ShareArguments - donee and its new byte allowance
type ShareArguments struct {
	caller.Arguments
	AccountID string `json:"account_id"`
	MaxBytes  uint64 `json:"max_bytes"`
}

// ShareReply - empty reply
type ShareReply struct{}

// Share - cover storage of an account from the caller's pool
func (p *Pool) Share(arguments *ShareArguments, _ *ShareReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}
	if !account.ValidIdentity(arguments.AccountID) {
		return fault.ErrInvalidAccountId
	}

	p.Log.Infof("Pool.Share: owner: %q  donee: %q  max bytes: %d", req.Caller, arguments.AccountID, arguments.MaxBytes)

	return p.Pools.ShareStorage(req, arguments.AccountID, arguments.MaxBytes)
}

// GetArguments - pool owner
type GetArguments struct {
	OwnerID string `json:"owner_id"`
}

// GetReply - pool, nil when the owner has none
type GetReply struct {
	Pool *PoolReply `json:"pool"`
}

// Get - the pool funded by an owner
func (p *Pool) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	pool, ok := p.Pools.SharedStoragePool(arguments.OwnerID)
	if !ok {
		return nil
	}
	reply.Pool = &PoolReply{}
	reply.Pool.set(pool)
	return nil
}
