// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/store"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

// Get - read values of all paths
func (client *Client) Get(keys []string, options document.GetOptions) (*document.Object, error) {
	arguments := store.GetArguments{
		Keys:    keys,
		Options: options,
	}
	var reply store.GetReply
	if err := client.call("Store.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Data, nil
}

// Keys - list keys of all paths
func (client *Client) Keys(keys []string, options document.KeysOptions) (*document.Object, error) {
	arguments := store.KeysArguments{
		Keys:    keys,
		Options: options,
	}
	var reply store.KeysReply
	if err := client.call("Store.Keys", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Data, nil
}

// Set - write a document
func (client *Client) Set(c caller.Arguments, data *document.Object, options socialdb.SetOptions) (*store.SetReply, error) {
	arguments := store.SetArguments{
		Arguments: c,
		Data:      data,
		Options:   options,
	}
	var reply store.SetReply
	if err := client.call("Store.Set", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
