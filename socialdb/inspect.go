// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
)

// NodeDetail - a node header with its children
type NodeDetail struct {
	Node     *node.Node
	Children []node.Entry
}

// AccountCount - number of registered accounts
func (db *DB) AccountCount() uint64 {
	db.RLock()
	defer db.RUnlock()
	return db.accounts.Count()
}

// AccountsPaged - identities in registration order
func (db *DB) AccountsPaged(from uint32, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fault.ErrInvalidCount
	}
	db.RLock()
	defer db.RUnlock()
	return db.accounts.Paged(from, limit)
}

// Account - the record of one identity
func (db *DB) Account(identity string) (*account.Account, bool) {
	db.RLock()
	defer db.RUnlock()
	return db.accounts.Get(identity)
}

// NodeCount - number of node ids issued
func (db *DB) NodeCount() uint64 {
	db.RLock()
	defer db.RUnlock()
	return db.nodes.Count()
}

// NodesPaged - node headers in id order
func (db *DB) NodesPaged(from node.ID, limit int) ([]*node.Node, error) {
	if limit <= 0 {
		return nil, fault.ErrInvalidCount
	}
	db.RLock()
	defer db.RUnlock()
	return db.nodes.Paged(from, limit)
}

// Node - one node and all of its children
func (db *DB) Node(id node.ID) (*NodeDetail, bool) {
	db.RLock()
	defer db.RUnlock()

	n, ok := db.nodes.Get(id)
	if !ok {
		return nil, false
	}
	return &NodeDetail{
		Node:     n,
		Children: db.nodes.Children(n),
	}, true
}
