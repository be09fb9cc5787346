// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialdbd/rpc/balance"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
)

// Deposit - add attached payment to an account
func (client *Client) Deposit(c caller.Arguments, accountID string, registrationOnly bool) (*balance.BalanceReply, error) {
	arguments := balance.DepositArguments{
		Arguments:        c,
		AccountID:        accountID,
		RegistrationOnly: registrationOnly,
	}
	var reply balance.BalanceReply
	if err := client.call("Storage.Deposit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Withdraw - take available balance, blank amount for all
func (client *Client) Withdraw(c caller.Arguments, amount string) (*balance.BalanceReply, error) {
	arguments := balance.WithdrawArguments{
		Arguments: c,
		Amount:    amount,
	}
	var reply balance.BalanceReply
	if err := client.call("Storage.Withdraw", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Unregister - remove the caller account
func (client *Client) Unregister(c caller.Arguments, force bool) (bool, error) {
	arguments := balance.UnregisterArguments{
		Arguments: c,
		Force:     force,
	}
	var reply balance.UnregisterReply
	if err := client.call("Storage.Unregister", arguments, &reply); nil != err {
		return false, err
	}
	return reply.Unregistered, nil
}

// BalanceOf - balance of an account, nil if not registered
func (client *Client) BalanceOf(accountID string) (*balance.BalanceReply, error) {
	arguments := balance.AccountArguments{
		AccountID: accountID,
	}
	var reply balance.BalanceOfReply
	if err := client.call("Storage.BalanceOf", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Balance, nil
}

// BalanceBounds - minimum and maximum storage balance
func (client *Client) BalanceBounds() (*balance.BoundsReply, error) {
	var reply balance.BoundsReply
	if err := client.call("Storage.BalanceBounds", balance.BoundsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// View - used and available bytes of an account
func (client *Client) View(accountID string) (*balance.StorageView, error) {
	arguments := balance.AccountArguments{
		AccountID: accountID,
	}
	var reply balance.ViewReply
	if err := client.call("Storage.View", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Storage, nil
}
