// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/grant"
)

// Grant - allow a grantee to write below keys
func (client *Client) Grant(c caller.Arguments, grantee grant.Grantee, keys []string) (*grant.ChangeReply, error) {
	return client.change("Permission.Grant", c, grantee, keys)
}

// Revoke - remove grants below keys
func (client *Client) Revoke(c caller.Arguments, grantee grant.Grantee, keys []string) (*grant.ChangeReply, error) {
	return client.change("Permission.Revoke", c, grantee, keys)
}

func (client *Client) change(method string, c caller.Arguments, grantee grant.Grantee, keys []string) (*grant.ChangeReply, error) {
	arguments := grant.ChangeArguments{
		Arguments: c,
		Grantee:   grantee,
		Keys:      keys,
	}
	var reply grant.ChangeReply
	if err := client.call(method, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsGranted - check write permission for a full key
func (client *Client) IsGranted(grantee grant.Grantee, key string) (bool, error) {
	arguments := grant.IsGrantedArguments{
		Grantee: grantee,
		Key:     key,
	}
	var reply grant.IsGrantedReply
	if err := client.call("Permission.IsGranted", arguments, &reply); nil != err {
		return false, err
	}
	return reply.Granted, nil
}

// Permissions - all grants of an account
func (client *Client) Permissions(accountID string) (*grant.ListReply, error) {
	arguments := grant.ListArguments{
		AccountID: accountID,
	}
	var reply grant.ListReply
	if err := client.call("Permission.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
