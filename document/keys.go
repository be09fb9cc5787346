// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"encoding/json"

	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
)

// ReturnType - what keys reports for each match
type ReturnType int

// possible return types
const (
	ReturnTrue ReturnType = iota
	ReturnBlockHeight
	ReturnNodeID
)

// KeysOptions - shaping of keys results
type KeysOptions struct {
	ReturnType    ReturnType `json:"return_type"`
	ReturnDeleted bool       `json:"return_deleted"`
	ValuesOnly    bool       `json:"values_only"`
}

// UnmarshalJSON - "true", "block_height" or "node_id"
func (r *ReturnType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); nil != err {
		return fault.ErrInvalidValue
	}
	switch s {
	case "", "true", "True":
		*r = ReturnTrue
	case "block_height", "BlockHeight":
		*r = ReturnBlockHeight
	case "node_id", "NodeId":
		*r = ReturnNodeID
	default:
		return fault.ErrInvalidValue
	}
	return nil
}

// MarshalJSON - string form
func (r ReturnType) MarshalJSON() ([]byte, error) {
	switch r {
	case ReturnBlockHeight:
		return []byte(`"block_height"`), nil
	case ReturnNodeID:
		return []byte(`"node_id"`), nil
	default:
		return []byte(`"true"`), nil
	}
}

// Keys - presence of each matching key without the values
//
// "**" is not allowed; deleted leaves show as null with ReturnDeleted;
// ValuesOnly skips nodes that carry no value of their own
func (e *Engine) Keys(paths []string, options KeysOptions) (*Object, error) {
	queries, err := splitPaths(paths, false)
	if nil != err {
		return nil, err
	}

	res := NewObject()
	root, ok := e.nodes.Get(node.RootID)
	if !ok {
		return res, nil
	}
	for _, segments := range queries {
		e.recursiveKeys(res, root, segments, options)
	}
	prune(res)
	return res, nil
}

func (e *Engine) recursiveKeys(res *Object, n *node.Node, segments []string, options KeysOptions) {
	last := 1 == len(segments)
	wildcard := MatchAll == segments[0]

	for _, entry := range e.match(n, segments[0]) {
		if wildcard && node.EmptyKey == entry.Key {
			continue
		}

		switch v := entry.Value.(type) {
		case node.Child:
			inner := e.nodes.MustGet(v.ID)
			if !last {
				e.recursiveKeys(innerObject(res, entry.Key), inner, segments[1:], options)
				continue
			}
			if options.ValuesOnly && !e.hasOwnValue(inner, options) {
				continue
			}
			switch options.ReturnType {
			case ReturnBlockHeight:
				res.Set(entry.Key, inner.BlockHeight)
			case ReturnNodeID:
				res.Set(entry.Key, inner.ID)
			default:
				res.Set(entry.Key, true)
			}

		case node.Leaf:
			if !last {
				continue
			}
			switch options.ReturnType {
			case ReturnBlockHeight:
				res.Set(entry.Key, v.BlockHeight)
			case ReturnNodeID:
				res.Set(entry.Key, n.ID)
			default:
				res.Set(entry.Key, true)
			}

		case node.Tombstone:
			if last && options.ReturnDeleted {
				res.Set(entry.Key, nil)
			}

		default:
			fault.Panicf("document: node: %d key: %q unknown value: %#v", n.ID, entry.Key, v)
		}
	}
}

func (e *Engine) hasOwnValue(n *node.Node, options KeysOptions) bool {
	own, ok := e.nodes.Child(n, node.EmptyKey)
	if !ok {
		return false
	}
	switch own.(type) {
	case node.Leaf:
		return true
	case node.Tombstone:
		return options.ReturnDeleted
	default:
		fault.Panicf("document: node: %d own value is: %#v", n.ID, own)
	}
	return false
}
