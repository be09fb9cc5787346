// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"fmt"
	"math/rand"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/counter"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/rpc/admin"
	"github.com/bitmark-inc/socialdbd/rpc/balance"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/fixtures"
	"github.com/bitmark-inc/socialdbd/rpc/grant"
	"github.com/bitmark-inc/socialdbd/rpc/inspect"
	"github.com/bitmark-inc/socialdbd/rpc/pool"
	"github.com/bitmark-inc/socialdbd/rpc/server"
	"github.com/bitmark-inc/socialdbd/rpc/store"
	"github.com/bitmark-inc/socialdbd/socialdb"
	"github.com/bitmark-inc/socialdbd/storage"
)

var port string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	err := storage.Initialise("testing/server.leveldb", storage.ReadWrite)
	if nil != err {
		fmt.Printf("storage initialise error: %s\n", err)
		os.Exit(1)
	}

	db, err := socialdb.New(chain.NewTicker(1, 0), chain.NewFixedPrice(nil), mode.Live)
	if nil != err {
		fmt.Printf("socialdb error: %s\n", err)
		os.Exit(1)
	}

	port = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000) // 30,000 - 60,000
	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, db, []string{"root.near"})
	l, err := net.Listen("tcp", port)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go r.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	storage.Finalise()
	fixtures.TeardownTestLogger()

	os.Exit(rc)
}

// each call fails or succeeds in a way that shows the named method is
// registered against the store

func call(t *testing.T, method string, arguments interface{}, reply interface{}) error {
	conn, err := net.Dial("tcp", port)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	return client.Call(method, arguments, reply)
}

func TestStoreGet(t *testing.T) {
	var reply store.GetReply
	err := call(t, "Store.Get", &store.GetArguments{Keys: []string{"alice.near/**/name"}}, &reply)
	assert.NotNil(t, err, "wrong Store.Get")
	assert.Equal(t, fault.ErrRecursiveMatchNotLast.Error(), err.Error(), "wrong reply")
}

func TestStoreSet(t *testing.T) {
	var reply store.SetReply
	err := call(t, "Store.Set", &store.SetArguments{Arguments: caller.Arguments{Caller: "alice.near"}}, &reply)
	assert.NotNil(t, err, "wrong Store.Set")
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "wrong reply")
}

func TestPermissionGrant(t *testing.T) {
	var reply grant.ChangeReply
	arguments := grant.ChangeArguments{
		Arguments: caller.Arguments{Caller: "alice.near"},
		Grantee:   grant.Grantee{Account: "bob.near"},
		Keys:      []string{"alice.near"},
	}
	err := call(t, "Permission.Grant", &arguments, &reply)
	assert.NotNil(t, err, "wrong Permission.Grant")
	assert.Equal(t, fault.ErrDepositRequired.Error(), err.Error(), "wrong reply")
}

func TestPermissionList(t *testing.T) {
	var reply grant.ListReply
	err := call(t, "Permission.List", &grant.ListArguments{AccountID: "nobody.near"}, &reply)
	assert.NotNil(t, err, "wrong Permission.List")
	assert.Equal(t, fault.ErrAccountNotFound.Error(), err.Error(), "wrong reply")
}

func TestStorageWithdraw(t *testing.T) {
	var reply balance.BalanceReply
	err := call(t, "Storage.Withdraw", &balance.WithdrawArguments{Arguments: caller.Arguments{Caller: "alice.near"}}, &reply)
	assert.NotNil(t, err, "wrong Storage.Withdraw")
	assert.Equal(t, fault.ErrConfirmationRequired.Error(), err.Error(), "wrong reply")
}

func TestStorageBalanceBounds(t *testing.T) {
	var reply balance.BoundsReply
	err := call(t, "Storage.BalanceBounds", &balance.BoundsArguments{}, &reply)
	assert.Nil(t, err, "wrong Storage.BalanceBounds")
	assert.NotEqual(t, "", reply.Min, "missing minimum")
}

func TestPoolDeposit(t *testing.T) {
	var reply pool.PoolReply
	err := call(t, "Pool.Deposit", &pool.DepositArguments{Arguments: caller.Arguments{Caller: "alice.near", Payment: "1"}}, &reply)
	assert.NotNil(t, err, "wrong Pool.Deposit")
	assert.Equal(t, fault.ErrInsufficientPoolDeposit.Error(), err.Error(), "wrong reply")
}

func TestInspectInfo(t *testing.T) {
	var reply inspect.InfoReply
	err := call(t, "Inspect.Info", &inspect.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Inspect.Info")
	assert.Equal(t, mode.Live, reply.Status, "wrong status")
	assert.Equal(t, uint64(1), reply.BlockHeight, "wrong block height")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestAdminSetStatus(t *testing.T) {
	var reply admin.SetStatusReply
	err := call(t, "Admin.SetStatus", &admin.SetStatusArguments{Caller: "alice.near", Status: mode.ReadOnly}, &reply)
	assert.NotNil(t, err, "wrong Admin.SetStatus")
	assert.Equal(t, fault.ErrPermissionDenied.Error(), err.Error(), "wrong reply")
}
