// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission_test

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/permission"
	"github.com/bitmark-inc/socialdbd/sharedstorage"
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

type fixture struct {
	nodes       *node.Store
	accounts    *account.Registry
	permissions *permission.Registry
	pricing     chain.Pricing
}

func setupTestRegistry(t *testing.T) *fixture {
	setupTestLogger()
	err := storage.Initialise(testingDirName+"/permissions.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	nodes, err := node.NewStore(node.Handles{
		Globals:    storage.Pool.Globals,
		Nodes:      storage.Pool.Nodes,
		Children:   storage.Pool.Children,
		ChildOrder: storage.Pool.ChildOrder,
	})
	if nil != err {
		t.Fatalf("node store error: %s", err)
	}
	pricing := chain.NewFixedPrice(nil)
	clock := chain.NewTicker(1, 0)
	pools := sharedstorage.New(storage.Pool.SharedStoragePools, pricing)
	accounts := account.New(nodes, storage.Pool.Accounts, pools, clock, pricing)

	return &fixture{
		nodes:       nodes,
		accounts:    accounts,
		permissions: permission.New(nodes, storage.Pool.Permissions, accounts, clock),
		pricing:     pricing,
	}
}

func teardownTestRegistry() {
	storage.Finalise()
	removeFiles()
}

func (f *fixture) register(t *testing.T, identity string) *account.Account {
	trx, _ := storage.NewDBTransaction()
	a, _, err := f.accounts.CreateOrTopup(trx, identity, account.MinimumStorageBalance(f.pricing.StoragePricePerByte()), false)
	if nil != err {
		trx.Abort()
		t.Fatalf("register: %q error: %s", identity, err)
	}
	_ = trx.Commit()
	return a
}

func (f *fixture) grant(t *testing.T, identity string, k permission.Key, paths ...string) {
	trx, _ := storage.NewDBTransaction()
	err := f.permissions.Grant(trx, f.accounts.MustGet(identity), k, paths)
	if nil != err {
		trx.Abort()
		t.Fatalf("grant error: %s", err)
	}
	_ = trx.Commit()
}

func TestParseSignerKey(t *testing.T) {
	public, _, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "generate key")

	s := "ed25519:" + base58.Encode(public)
	k, err := permission.ParseSignerKey(s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, permission.ED25519, k.Curve, "curve")
	assert.Equal(t, []byte(public), k.PublicKey, "public key")
	assert.Equal(t, s, k.String(), "string form")

	secp := make([]byte, 64)
	secp[0] = 1
	k, err = permission.ParseSignerKey("secp256k1:" + base58.Encode(secp))
	assert.Nil(t, err, "secp256k1 parse error")
	assert.Equal(t, permission.SECP256K1, k.Curve, "secp256k1 curve")

	for _, bad := range []string{
		"",
		"ed25519",
		"rsa:" + base58.Encode(public),
		"ed25519:" + base58.Encode(public[:31]),
		"ed25519:0OIl",
	} {
		_, err := permission.ParseSignerKey(bad)
		assert.Equal(t, fault.ErrInvalidPublicKey, err, "accepted: %q", bad)
	}
}

func TestParseKey(t *testing.T) {
	_, err := permission.ParseKey("", "")
	assert.Equal(t, fault.ErrGranteeRequired, err, "neither")

	_, err = permission.ParseKey("bob.near", "ed25519:abc")
	assert.Equal(t, fault.ErrGranteeRequired, err, "both")

	_, err = permission.ParseKey("Bob", "")
	assert.Equal(t, fault.ErrInvalidAccountId, err, "bad identity")

	k, err := permission.ParseKey("bob.near", "")
	assert.Nil(t, err, "account key")
	assert.Equal(t, permission.AccountKey{Identity: "bob.near"}, k, "account key value")
}

func TestGrantContainment(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	f.register(t, "alice.near")
	bob := permission.AccountKey{Identity: "bob.near"}

	f.grant(t, "alice.near", bob, "alice.near/profile/name")

	authorised := func(path string) bool {
		ok, err := f.permissions.IsAuthorized(bob, path)
		assert.Nil(t, err, "is authorised: %q", path)
		return ok
	}

	assert.True(t, authorised("alice.near/profile/name"), "granted node")
	assert.True(t, authorised("alice.near/profile/name/first"), "descendant")
	assert.False(t, authorised("alice.near/profile"), "ancestor")
	assert.False(t, authorised("alice.near"), "root")
	assert.False(t, authorised("alice.near/other"), "sibling")
	assert.False(t, authorised("carol.near/profile/name"), "other account")

	other := permission.AccountKey{Identity: "carol.near"}
	ok, _ := f.permissions.IsAuthorized(other, "alice.near/profile/name")
	assert.False(t, ok, "other grantee")

	_, err := f.permissions.IsAuthorized(bob, "")
	assert.Equal(t, fault.ErrEmptyPath, err, "empty path")
}

func TestGrantOnAccountRoot(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	f.register(t, "alice.near")
	bob := permission.AccountKey{Identity: "bob.near"}
	f.grant(t, "alice.near", bob, "alice.near")

	ok, err := f.permissions.IsAuthorized(bob, "alice.near/anything/at/all")
	assert.Nil(t, err, "is authorised")
	assert.True(t, ok, "root grant")
}

func TestGrantRules(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	a := f.register(t, "alice.near")
	bob := permission.AccountKey{Identity: "bob.near"}

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	assert.Equal(t, fault.ErrGrantOutsideOwnSubtree, f.permissions.Grant(trx, a, bob, []string{"carol.near/x"}), "outside")
	assert.Equal(t, fault.ErrEmptyPath, f.permissions.Grant(trx, a, bob, []string{""}), "empty")
	assert.Equal(t, fault.ErrInvalidKey, f.permissions.Grant(trx, a, bob, []string{"alice.near/a b"}), "bad key")
	assert.Equal(t, fault.ErrInvalidKey, f.permissions.Grant(trx, a, bob, []string{"alice.near/x/"}), "empty segment")
	assert.Equal(t, fault.ErrWildcardInPath, f.permissions.Grant(trx, a, bob, []string{"alice.near/*"}), "match all")
	assert.Equal(t, fault.ErrWildcardInPath, f.permissions.Grant(trx, a, bob, []string{"alice.near/post/**"}), "recursive match")

	_, ok := f.permissions.Get(a, bob)
	assert.False(t, ok, "rejected grant was stored")
}

func TestGrantChargesGranter(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	before := f.register(t, "alice.near").UsedBytes
	f.grant(t, "alice.near", permission.AccountKey{Identity: "bob.near"}, "alice.near/a/b/c")

	after := f.accounts.MustGet("alice.near").UsedBytes
	assert.Greater(t, after, before, "granter not charged")
}

func TestRevokePrunesEmptyGrant(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	f.register(t, "alice.near")
	public, _, _ := ed25519.GenerateKey(rand.Reader)
	signer, _ := permission.ParseSignerKey("ed25519:" + base58.Encode(public))

	beforeGrant := f.accounts.MustGet("alice.near").UsedBytes
	f.grant(t, "alice.near", signer, "alice.near/a", "alice.near/b")

	entries, err := f.permissions.List("alice.near")
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(entries), "entries")
	assert.Equal(t, signer, entries[0].Key, "grantee")
	assert.Equal(t, 2, len(entries[0].Permission.Granted), "granted ids")

	trx, _ := storage.NewDBTransaction()
	a := f.accounts.MustGet("alice.near")
	err = f.permissions.Revoke(trx, a, signer, []string{"alice.near/a", "alice.near/missing"})
	assert.Nil(t, err, "first revoke")
	_ = trx.Commit()

	ok, _ := f.permissions.IsAuthorized(signer, "alice.near/a")
	assert.False(t, ok, "revoked path still authorised")
	ok, _ = f.permissions.IsAuthorized(signer, "alice.near/b")
	assert.True(t, ok, "remaining path lost")

	trx, _ = storage.NewDBTransaction()
	a = f.accounts.MustGet("alice.near")
	err = f.permissions.Revoke(trx, a, signer, []string{"alice.near/b"})
	assert.Nil(t, err, "second revoke")
	_ = trx.Commit()

	entries, err = f.permissions.List("alice.near")
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(entries), "empty grant persisted")

	// only the created nodes remain charged
	a = f.accounts.MustGet("alice.near")
	assert.Greater(t, a.UsedBytes, beforeGrant, "nodes not charged")
	_, ok = f.permissions.Get(a, signer)
	assert.False(t, ok, "grant record remains")
}

func TestWritableRootsUnion(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	f.register(t, "alice.near")
	public, _, _ := ed25519.GenerateKey(rand.Reader)
	signer, _ := permission.ParseSignerKey("ed25519:" + base58.Encode(public))
	bob := permission.AccountKey{Identity: "bob.near"}

	f.grant(t, "alice.near", bob, "alice.near/a")
	f.grant(t, "alice.near", signer, "alice.near/b")

	a := f.accounts.MustGet("alice.near")
	root := f.nodes.MustGet(a.NodeID)
	na, _ := f.nodes.ChildNode(root, "a")
	nb, _ := f.nodes.ChildNode(root, "b")

	roots := f.permissions.WritableRoots(a, "bob.near", &signer)
	assert.Equal(t, map[node.ID]struct{}{na.ID: {}, nb.ID: {}}, roots, "union")

	roots = f.permissions.WritableRoots(a, "bob.near", nil)
	assert.Equal(t, map[node.ID]struct{}{na.ID: {}}, roots, "identity only")

	roots = f.permissions.WritableRoots(a, "carol.near", nil)
	assert.Equal(t, 0, len(roots), "no grant")
}

func TestGrantDemotesLeaf(t *testing.T) {
	f := setupTestRegistry(t)
	defer teardownTestRegistry()

	a := f.register(t, "alice.near")

	// a leaf on the way becomes a node keeping its value
	trx, _ := storage.NewDBTransaction()
	root := f.nodes.MustGet(a.NodeID)
	f.nodes.SetChild(trx, root, "status", node.Leaf{Value: "hi", BlockHeight: 1}, 1)
	_ = trx.Commit()

	f.grant(t, "alice.near", permission.AccountKey{Identity: "bob.near"}, "alice.near/status/detail")

	root = f.nodes.MustGet(a.NodeID)
	status, ok := f.nodes.ChildNode(root, "status")
	assert.True(t, ok, "status not a node")
	v, ok := f.nodes.Child(status, node.EmptyKey)
	assert.True(t, ok, "own value missing")
	assert.Equal(t, node.Leaf{Value: "hi", BlockHeight: 1}, v, "own value")
}
