// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
)

// path syntax
const (
	Separator         = "/"
	MatchAll          = "*"
	RecursiveMatchAll = "**"
)

// synthetic keys added by annotations
const (
	blockKey = ":block"
	nodeKey  = ":node"
)

// Engine - get, keys and set over the node tree
type Engine struct {
	log   *logger.L
	nodes *node.Store
	clock chain.Clock
}

// New - create a path engine
func New(nodes *node.Store, clock chain.Clock) *Engine {
	return &Engine{
		log:   logger.New("document"),
		nodes: nodes,
		clock: clock,
	}
}

// split and check the list of query paths
func splitPaths(paths []string, allowRecursive bool) ([][]string, error) {
	if 0 == len(paths) {
		return nil, fault.ErrMissingPaths
	}
	result := make([][]string, 0, len(paths))
	for _, path := range paths {
		if "" == path {
			return nil, fault.ErrEmptyPath
		}
		segments := strings.Split(path, Separator)
		for i, s := range segments {
			if RecursiveMatchAll != s {
				continue
			}
			if !allowRecursive {
				return nil, fault.ErrRecursiveMatchInKeys
			}
			if i != len(segments)-1 {
				return nil, fault.ErrRecursiveMatchNotLast
			}
		}
		result = append(result, segments)
	}
	return result, nil
}

// entries of n matching one path segment
func (e *Engine) match(n *node.Node, segment string) []node.Entry {
	switch segment {
	case MatchAll, RecursiveMatchAll:
		return e.nodes.Children(n)
	default:
		v, ok := e.nodes.Child(n, segment)
		if !ok {
			return nil
		}
		return []node.Entry{{Key: segment, Value: v}}
	}
}

// the object under key, a scalar already there moves under the empty key
func innerObject(res *Object, key string) *Object {
	existing, ok := res.Get(key)
	if o, isObject := existing.(*Object); ok && isObject {
		return o
	}
	o := NewObject()
	if ok {
		o.Set(node.EmptyKey, existing)
	}
	res.Set(key, o)
	return o
}

// true for keys added by annotations
func isSynthetic(key string) bool {
	return strings.HasPrefix(key, ":")
}

// drop objects that hold nothing but synthetic keys
//
// returns false if o itself has no real content
func prune(o *Object) bool {
	content := false
	for _, key := range append([]string(nil), o.Keys()...) {
		if isSynthetic(key) {
			continue
		}
		v, _ := o.Get(key)
		if inner, ok := v.(*Object); ok && !prune(inner) {
			o.Delete(key)
			continue
		}
		content = true
	}
	return content
}
