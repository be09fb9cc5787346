// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/storage"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setupTestStore(t *testing.T) *node.Store {
	setupTestLogger()
	err := storage.Initialise(testingDirName+"/node.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	s, err := node.NewStore(node.Handles{
		Globals:    storage.Pool.Globals,
		Nodes:      storage.Pool.Nodes,
		Children:   storage.Pool.Children,
		ChildOrder: storage.Pool.ChildOrder,
	})
	if nil != err {
		t.Fatalf("node store error: %s", err)
	}
	return s
}

func teardownTestStore() {
	storage.Finalise()
	removeFiles()
}

func TestCreateIssuesIncreasingIds(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	root := s.EnsureRoot(trx, 1)
	assert.Equal(t, node.RootID, root.ID, "root id")

	a := s.Create(trx, 2)
	b := s.Create(trx, 2)
	assert.Equal(t, node.ID(1), a.ID, "first id")
	assert.Equal(t, node.ID(2), b.ID, "second id")
	_ = trx.Commit()

	assert.Equal(t, uint64(3), s.Count(), "count includes root")
}

func TestAbortedIdsAreReissued(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	s.EnsureRoot(trx, 1)
	_ = trx.Commit()

	trx, _ = storage.NewDBTransaction()
	a := s.Create(trx, 2)
	trx.Abort()
	s.Discard()

	_, ok := s.Get(a.ID)
	assert.False(t, ok, "aborted node still visible")

	trx, _ = storage.NewDBTransaction()
	b := s.Create(trx, 3)
	_ = trx.Commit()
	assert.Equal(t, a.ID, b.ID, "id not reissued after abort")
}

func TestChildrenKeepInsertionOrder(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	n := s.Create(trx, 5)
	s.SetChild(trx, n, "zeta", node.Leaf{Value: "z", BlockHeight: 5}, 5)
	s.SetChild(trx, n, "alpha", node.Leaf{Value: "a", BlockHeight: 5}, 5)
	s.SetChild(trx, n, node.EmptyKey, node.Leaf{Value: "own", BlockHeight: 6}, 6)
	s.SetChild(trx, n, "zeta", node.Tombstone{BlockHeight: 7}, 7)
	_ = trx.Commit()

	n, _ = s.Get(n.ID)
	assert.Equal(t, uint32(3), n.Size, "size")
	assert.Equal(t, uint64(7), n.BlockHeight, "block height refreshed")

	entries := s.Children(n)
	assert.Equal(t, []node.Entry{
		{Key: "zeta", Value: node.Tombstone{BlockHeight: 7}},
		{Key: "alpha", Value: node.Leaf{Value: "a", BlockHeight: 5}},
		{Key: "", Value: node.Leaf{Value: "own", BlockHeight: 6}},
	}, entries, "wrong children")

	page, err := s.ChildrenPaged(n, 1, 5)
	assert.Nil(t, err, "paged error")
	assert.Equal(t, 2, len(page), "page length")
	assert.Equal(t, "alpha", page[0].Key, "page start")
}

func TestDemoteKeepsOldValue(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	parent := s.Create(trx, 1)
	old := node.Leaf{Value: "old", BlockHeight: 1}
	s.SetChild(trx, parent, "x", old, 1)

	n := s.Demote(trx, parent, "x", old, 2)
	_ = trx.Commit()

	v, ok := s.Child(parent, "x")
	assert.True(t, ok, "missing child")
	assert.Equal(t, node.Child{ID: n.ID}, v, "parent not pointing to new node")

	own, ok := s.Child(n, node.EmptyKey)
	assert.True(t, ok, "missing own value")
	assert.Equal(t, old, own, "old value lost")

	c, ok := s.ChildNode(parent, "x")
	assert.True(t, ok, "child node")
	assert.Equal(t, n.ID, c.ID, "child node id")
}

func TestEmptyKeyCannotReferenceNode(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	n := s.Create(trx, 1)
	assert.Panics(t, func() {
		s.SetChild(trx, n, node.EmptyKey, node.Child{ID: 9}, 1)
	})
}

func TestPagedNodes(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore()

	trx, _ := storage.NewDBTransaction()
	s.EnsureRoot(trx, 1)
	for i := 0; i < 5; i += 1 {
		s.Create(trx, 1)
	}
	_ = trx.Commit()

	nodes, err := s.Paged(2, 3)
	assert.Nil(t, err, "paged error")
	assert.Equal(t, 3, len(nodes), "page length")
	assert.Equal(t, node.ID(2), nodes[0].ID, "page start")
}
