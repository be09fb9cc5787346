// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
)

// GetOptions - shaping of get results
type GetOptions struct {
	WithBlockHeight bool `json:"with_block_height"`
	WithNodeID      bool `json:"with_node_id"`
	ReturnDeleted   bool `json:"return_deleted"`
}

// Get - values matching each path, merged into one object
//
// "*" matches every child; "**" as the last segment also descends
// into every child node until no nodes remain
func (e *Engine) Get(paths []string, options GetOptions) (*Object, error) {
	queries, err := splitPaths(paths, true)
	if nil != err {
		return nil, err
	}

	res := NewObject()
	root, ok := e.nodes.Get(node.RootID)
	if !ok {
		return res, nil
	}
	for _, segments := range queries {
		e.recursiveGet(res, root, segments, options)
	}
	prune(res)
	return res, nil
}

func (e *Engine) recursiveGet(res *Object, n *node.Node, segments []string, options GetOptions) {
	last := 1 == len(segments)
	recursive := RecursiveMatchAll == segments[0]

	for _, entry := range e.match(n, segments[0]) {
		switch v := entry.Value.(type) {
		case node.Child:
			inner := e.nodes.MustGet(v.ID)
			if !last || recursive {
				innerMap := innerObject(res, entry.Key)
				if !last {
					e.recursiveGet(innerMap, inner, segments[1:], options)
				}
				if recursive {
					e.recursiveGet(innerMap, inner, segments, options)
				}
				annotateNode(innerMap, inner, options)
				continue
			}
			own, ok := e.nodes.Child(inner, node.EmptyKey)
			if !ok {
				continue
			}
			switch own := own.(type) {
			case node.Leaf:
				setLeaf(res, entry.Key, own.Value, own.BlockHeight, options)
			case node.Tombstone:
				if options.ReturnDeleted {
					setLeaf(res, entry.Key, nil, own.BlockHeight, options)
				}
			default:
				fault.Panicf("document: node: %d own value is: %#v", inner.ID, own)
			}

		case node.Leaf:
			if last {
				setLeaf(res, entry.Key, v.Value, v.BlockHeight, options)
			}

		case node.Tombstone:
			if last && options.ReturnDeleted {
				setLeaf(res, entry.Key, nil, v.BlockHeight, options)
			}

		default:
			fault.Panicf("document: node: %d key: %q unknown value: %#v", n.ID, entry.Key, v)
		}
	}
}

func annotateNode(o *Object, n *node.Node, options GetOptions) {
	if options.WithBlockHeight {
		o.Set(blockKey, n.BlockHeight)
	}
	if options.WithNodeID {
		o.Set(nodeKey, n.ID)
	}
}

// store a leaf (nil for deleted) under key
//
// merged into an object already there it lands under the empty key
func setLeaf(res *Object, key string, value interface{}, blockHeight uint64, options GetOptions) {
	// the enclosing object already carries the annotations
	if node.EmptyKey == key {
		res.Set(key, value)
		return
	}
	existing, ok := res.Get(key)
	if o, isObject := existing.(*Object); ok && isObject {
		o.Set(node.EmptyKey, value)
		if _, found := o.Get(blockKey); options.WithBlockHeight && !found {
			o.Set(blockKey, blockHeight)
		}
		return
	}

	if !options.WithBlockHeight {
		res.Set(key, value)
		return
	}
	annotated := NewObject().
		Set(node.EmptyKey, value).
		Set(blockKey, blockHeight)
	res.Set(key, annotated)
}
