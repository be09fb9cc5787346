// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/storage"
)

// Approval - who may write where during one set
//
// Owner approves the whole subtree, otherwise only the nodes in Roots
// and everything below them
type Approval struct {
	Owner bool
	Roots map[node.ID]struct{}
}

func (a Approval) at(n *node.Node) bool {
	if a.Owner {
		return true
	}
	_, ok := a.Roots[n.ID]
	return ok
}

// Set - merge value into the subtree rooted at node id
//
// strings write leaves, null writes tombstones and objects write
// namespaces; a leaf met by an object is demoted to the new node's
// own value
func (e *Engine) Set(trx storage.Transaction, id node.ID, value interface{}, approval Approval) error {
	n := e.nodes.MustGet(id)
	return e.recursiveSet(trx, n, value, approval.at(n), approval, e.clock.BlockHeight())
}

func (e *Engine) recursiveSet(trx storage.Transaction, n *node.Node, value interface{}, approved bool, approval Approval, h uint64) error {
	approved = approved || approval.at(n)

	switch v := value.(type) {
	case string, nil:
		if !approved {
			return fault.ErrPermissionDenied
		}
		old, ok := e.nodes.Child(n, node.EmptyKey)
		e.writeLeaf(trx, n, node.EmptyKey, v, old, ok, h)
		return nil

	case *Object:
		for _, key := range v.Keys() {
			err := node.ValidateKey(key)
			if nil != err {
				e.log.Debugf("node: %d rejected key: %q", n.ID, key)
				return err
			}
			child, _ := v.Get(key)
			err = checkValue(key, child)
			if nil != err {
				return err
			}

			old, ok := e.nodes.Child(n, key)
			if c, isChild := old.(node.Child); ok && isChild {
				err = e.recursiveSet(trx, e.nodes.MustGet(c.ID), child, approved, approval, h)
				if nil != err {
					return err
				}
				continue
			}

			if !approved {
				return fault.ErrPermissionDenied
			}

			o, isObject := child.(*Object)
			if !isObject {
				e.writeLeaf(trx, n, key, child, old, ok, h)
				continue
			}

			var inner *node.Node
			if ok {
				inner = e.nodes.Demote(trx, n, key, old, h)
			} else {
				inner = e.nodes.Create(trx, h)
				e.nodes.SetChild(trx, n, key, node.Child{ID: inner.ID}, h)
			}
			err = e.recursiveSet(trx, inner, o, approved, approval, h)
			if nil != err {
				return err
			}
		}
		return nil

	default:
		return fault.ErrInvalidValue
	}
}

// write a string or a tombstone for nil
//
// deleting a missing or already deleted entry changes nothing
func (e *Engine) writeLeaf(trx storage.Transaction, n *node.Node, key string, value interface{}, old node.Value, exists bool, h uint64) {
	s, isString := value.(string)
	if isString {
		e.nodes.SetChild(trx, n, key, node.Leaf{Value: s, BlockHeight: h}, h)
		return
	}
	if !exists {
		return
	}
	switch old.(type) {
	case node.Leaf:
		e.nodes.SetChild(trx, n, key, node.Tombstone{BlockHeight: h}, h)
	case node.Tombstone:
	default:
		fault.Panicf("document: node: %d key: %q delete of: %#v", n.ID, key, old)
	}
}

// the value shapes a document may hold
func checkValue(key string, value interface{}) error {
	switch value.(type) {
	case string, nil:
		return nil
	case *Object:
		if node.EmptyKey == key {
			return fault.ErrEmptyKeyValueNotString
		}
		return nil
	default:
		return fault.ErrInvalidValue
	}
}
