// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/rpc/admin"
	"github.com/bitmark-inc/socialdbd/rpc/inspect"
)

// Info - node status and counters
func (client *Client) Info() (*inspect.InfoReply, error) {
	var reply inspect.InfoReply
	if err := client.call("Inspect.Info", inspect.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Accounts - a page of registered accounts
func (client *Client) Accounts(start uint64, count int) (*inspect.AccountsReply, error) {
	arguments := inspect.ListArguments{
		Start: start,
		Count: count,
	}
	var reply inspect.AccountsReply
	if err := client.call("Inspect.Accounts", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Account - one account record
func (client *Client) Account(accountID string) (*inspect.AccountReply, error) {
	arguments := inspect.AccountArguments{
		AccountID: accountID,
	}
	var reply inspect.AccountReply
	if err := client.call("Inspect.Account", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Nodes - a page of node headers
func (client *Client) Nodes(start uint64, count int) (*inspect.NodesReply, error) {
	arguments := inspect.ListArguments{
		Start: start,
		Count: count,
	}
	var reply inspect.NodesReply
	if err := client.call("Inspect.Nodes", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Node - one node with its children
func (client *Client) Node(id uint32) (*inspect.NodeReply, error) {
	arguments := inspect.NodeArguments{
		ID: id,
	}
	var reply inspect.NodeReply
	if err := client.call("Inspect.Node", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetStatus - change the store status, admins only
func (client *Client) SetStatus(caller string, status mode.Mode) (mode.Mode, error) {
	arguments := admin.SetStatusArguments{
		Caller: caller,
		Status: status,
	}
	var reply admin.SetStatusReply
	if err := client.call("Admin.SetStatus", arguments, &reply); nil != err {
		return mode.Stopped, err
	}
	return reply.Status, nil
}
