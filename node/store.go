// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/storage"
)

const (
	headerCacheSize = 4096
)

// next id to issue, in the globals pool
var nextIDKey = []byte("nodes")

// Handles - the pools holding the node tree
type Handles struct {
	Globals    *storage.PoolHandle
	Nodes      *storage.PoolHandle
	Children   *storage.PoolHandle
	ChildOrder *storage.PoolHandle
}

// Store - arena of nodes addressed by ID
//
// the store is the only issuer of node ids
type Store struct {
	log     *logger.L
	pools   Handles
	headers *lru.Cache[ID, Node]
}

// NewStore - create a store over the given pools
func NewStore(pools Handles) (*Store, error) {
	headers, err := lru.New[ID, Node](headerCacheSize)
	if nil != err {
		return nil, err
	}
	return &Store{
		log:     logger.New("node"),
		pools:   pools,
		headers: headers,
	}, nil
}

// Get - fetch a node header
func (s *Store) Get(id ID) (*Node, bool) {
	if n, ok := s.headers.Get(id); ok {
		return &n, true
	}
	buffer := s.pools.Nodes.Get(id.Bytes())
	if nil == buffer {
		return nil, false
	}
	n := unpackNode(id, buffer)
	s.headers.Add(id, *n)
	return n, true
}

// MustGet - fetch a node that is referenced, so must exist
func (s *Store) MustGet(id ID) *Node {
	n, ok := s.Get(id)
	if !ok {
		fault.Panicf("node: referenced node: %d does not exist", id)
	}
	return n
}

// EnsureRoot - create the document root on first use
func (s *Store) EnsureRoot(trx storage.Transaction, blockHeight uint64) *Node {
	if n, ok := s.Get(RootID); ok {
		return n
	}
	root := &Node{
		ID:          RootID,
		BlockHeight: blockHeight,
	}
	s.save(trx, root)
	s.log.Info("created document root")
	return root
}

// Create - allocate a new empty node
func (s *Store) Create(trx storage.Transaction, blockHeight uint64) *Node {
	next, ok := trx.GetN(s.pools.Globals, nextIDKey)
	if !ok {
		next = uint64(RootID) + 1
	}
	if next > math.MaxUint32 {
		fault.Panicf("node: id space exhausted")
	}
	trx.PutN(s.pools.Globals, nextIDKey, next+1)

	n := &Node{
		ID:          ID(next),
		BlockHeight: blockHeight,
	}
	s.save(trx, n)
	s.log.Debugf("created node: %d", n.ID)
	return n
}

func (s *Store) save(trx storage.Transaction, n *Node) {
	trx.Put(s.pools.Nodes, n.ID.Bytes(), packNode(n))
	s.headers.Add(n.ID, *n)
}

// Count - number of nodes issued including the root
func (s *Store) Count() uint64 {
	next, ok := s.pools.Globals.GetN(nextIDKey)
	if !ok {
		return uint64(RootID) + 1
	}
	return next
}

// Child - the value stored under key
func (s *Store) Child(n *Node, key string) (Value, bool) {
	buffer := s.pools.Children.Get(childKey(n.ID, key))
	if nil == buffer {
		return nil, false
	}
	return unpackValue(buffer), true
}

// ChildNode - the node referenced under key, if the value is a Child
func (s *Store) ChildNode(n *Node, key string) (*Node, bool) {
	v, ok := s.Child(n, key)
	if !ok {
		return nil, false
	}
	c, ok := v.(Child)
	if !ok {
		return nil, false
	}
	return s.MustGet(c.ID), true
}

// SetChild - insert or replace the value under key
//
// a new key is appended to the insertion order; the node's block
// height is refreshed
func (s *Store) SetChild(trx storage.Transaction, n *Node, key string, v Value, blockHeight uint64) {
	old, exists := s.Child(n, key)
	if EmptyKey == key {
		if _, ok := v.(Child); ok {
			fault.Panicf("node: %d: empty key cannot reference a node", n.ID)
		}
		if _, ok := old.(Child); ok {
			fault.Panicf("node: %d: empty key holds a node reference", n.ID)
		}
	}

	if !exists {
		trx.Put(s.pools.ChildOrder, orderKey(n.ID, n.Size), packOrder(key))
		n.Size += 1
	}
	trx.Put(s.pools.Children, childKey(n.ID, key), packValue(v))

	n.BlockHeight = blockHeight
	s.save(trx, n)
}

// Demote - replace a leaf or tombstone under key by a new node that
// keeps the old value under the empty key
func (s *Store) Demote(trx storage.Transaction, parent *Node, key string, old Value, blockHeight uint64) *Node {
	switch old.(type) {
	case Leaf, Tombstone:
	case Child:
		fault.Panicf("node: %d: demote of node reference at: %q", parent.ID, key)
	default:
		fault.Panicf("node: %d: demote of unknown value at: %q", parent.ID, key)
	}

	n := s.Create(trx, blockHeight)
	s.SetChild(trx, n, EmptyKey, old, blockHeight)
	s.SetChild(trx, parent, key, Child{ID: n.ID}, blockHeight)
	return n
}

// Children - all children of a committed node in insertion order
func (s *Store) Children(n *Node) []Entry {
	if 0 == n.Size {
		return nil
	}
	entries, err := s.ChildrenPaged(n, 0, int(n.Size))
	fault.PanicIfError("node: children", err)
	return entries
}

// ChildrenPaged - count children starting at insertion position from
func (s *Store) ChildrenPaged(n *Node, from uint32, count int) ([]Entry, error) {
	cursor := s.pools.ChildOrder.NewPrefixFetchCursor(n.ID.Bytes()).Seek(orderKey(n.ID, from))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		key := unpackOrder(e.Value)
		v, ok := s.Child(n, key)
		if !ok {
			fault.Panicf("node: %d: ordered key: %q has no value", n.ID, key)
		}
		entries = append(entries, Entry{Key: key, Value: v})
	}
	return entries, nil
}

// Paged - count nodes starting at id from
func (s *Store) Paged(from ID, count int) ([]*Node, error) {
	elements, err := s.pools.Nodes.NewFetchCursor().Seek(from.Bytes()).Fetch(count)
	if nil != err {
		return nil, err
	}
	nodes := make([]*Node, 0, len(elements))
	for _, e := range elements {
		id := IDFromBytes(e.Key)
		nodes = append(nodes, unpackNode(id, e.Value))
	}
	return nodes, nil
}

// Discard - forget cached headers after an aborted transaction
func (s *Store) Discard() {
	s.headers.Purge()
}
