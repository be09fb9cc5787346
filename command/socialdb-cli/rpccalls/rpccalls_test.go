// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialdbd/command/socialdb-cli/rpccalls"
	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/rpc/admin"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/fixtures"
	"github.com/bitmark-inc/socialdbd/rpc/store"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

// records the arguments it receives
type fakeStore struct {
	keys   []string
	caller string
}

func (s *fakeStore) Get(arguments *store.GetArguments, reply *store.GetReply) error {
	s.keys = arguments.Keys
	inner := document.NewObject().Set("name", "Alice")
	reply.Data = document.NewObject().Set("alice.near", document.NewObject().Set("profile", inner))
	return nil
}

func (s *fakeStore) Set(arguments *store.SetArguments, reply *store.SetReply) error {
	s.caller = arguments.Caller
	reply.Refunds = []caller.Refund{{Identity: arguments.Caller, Amount: "5"}}
	return nil
}

type fakeAdmin struct{}

func (fakeAdmin) SetStatus(arguments *admin.SetStatusArguments, reply *admin.SetStatusReply) error {
	if "admin.near" != arguments.Caller {
		return fault.ErrPermissionDenied
	}
	reply.Status = arguments.Status
	return nil
}

func startServer(t *testing.T, s *fakeStore) string {
	cert, key := fixtures.CertificatePair()
	keyPair, err := tls.X509KeyPair([]byte(cert), []byte(key))
	assert.Nil(t, err, "key pair")

	server := rpc.NewServer()
	assert.Nil(t, server.RegisterName("Store", s), "register store")
	assert.Nil(t, server.RegisterName("Admin", fakeAdmin{}), "register admin")

	l, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{keyPair}})
	assert.Nil(t, err, "listen")
	t.Cleanup(func() { l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return l.Addr().(*net.TCPAddr).String()
}

func TestClientGet(t *testing.T) {
	s := &fakeStore{}
	connect := startServer(t, s)

	verbose := &bytes.Buffer{}
	client, err := rpccalls.NewClient(connect, true, verbose)
	assert.Nil(t, err, "connect")
	defer client.Close()

	data, err := client.Get([]string{"alice.near/profile/**"}, document.GetOptions{})
	assert.Nil(t, err, "get")
	assert.Equal(t, []string{"alice.near/profile/**"}, s.keys, "keys")

	b, err := data.MarshalJSON()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"alice.near":{"profile":{"name":"Alice"}}}`, string(b), "data")

	assert.Contains(t, verbose.String(), "Store.Get Request", "verbose request")
	assert.Contains(t, verbose.String(), "Store.Get Reply", "verbose reply")
}

func TestClientSet(t *testing.T) {
	s := &fakeStore{}
	connect := startServer(t, s)

	client, err := rpccalls.NewClient(connect, false, nil)
	assert.Nil(t, err, "connect")
	defer client.Close()

	data := document.NewObject().Set("bob.near", document.NewObject().Set("name", "Bob"))
	reply, err := client.Set(caller.Arguments{Caller: "bob.near", Payment: "10"}, data, socialdb.SetOptions{})
	assert.Nil(t, err, "set")
	assert.Equal(t, "bob.near", s.caller, "caller")
	assert.Equal(t, []caller.Refund{{Identity: "bob.near", Amount: "5"}}, reply.Refunds, "refunds")
}

func TestClientSetStatus(t *testing.T) {
	connect := startServer(t, &fakeStore{})

	client, err := rpccalls.NewClient(connect, false, nil)
	assert.Nil(t, err, "connect")
	defer client.Close()

	status, err := client.SetStatus("admin.near", mode.ReadOnly)
	assert.Nil(t, err, "admin")
	assert.Equal(t, mode.ReadOnly, status, "status")

	_, err = client.SetStatus("mallory.near", mode.Live)
	assert.NotNil(t, err, "non admin")
	assert.Equal(t, fault.ErrPermissionDenied.Error(), err.Error(), "wrong error")
}
