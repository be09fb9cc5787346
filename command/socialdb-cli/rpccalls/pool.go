// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/pool"
)

// PoolDeposit - add attached payment to a shared storage pool
func (client *Client) PoolDeposit(c caller.Arguments, ownerID string) (*pool.PoolReply, error) {
	arguments := pool.DepositArguments{
		Arguments: c,
		OwnerID:   ownerID,
	}
	var reply pool.PoolReply
	if err := client.call("Pool.Deposit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Share - give an account bytes from the caller's pool
func (client *Client) Share(c caller.Arguments, accountID string, maxBytes uint64) error {
	arguments := pool.ShareArguments{
		Arguments: c,
		AccountID: accountID,
		MaxBytes:  maxBytes,
	}
	var reply pool.ShareReply
	return client.call("Pool.Share", arguments, &reply)
}

// Pool - a shared storage pool, nil if none
func (client *Client) Pool(ownerID string) (*pool.PoolReply, error) {
	arguments := pool.GetArguments{
		OwnerID: ownerID,
	}
	var reply pool.GetReply
	if err := client.call("Pool.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Pool, nil
}
