// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/counter"
	"github.com/bitmark-inc/socialdbd/rpc/admin"
	"github.com/bitmark-inc/socialdbd/rpc/balance"
	"github.com/bitmark-inc/socialdbd/rpc/grant"
	"github.com/bitmark-inc/socialdbd/rpc/inspect"
	"github.com/bitmark-inc/socialdbd/rpc/pool"
	"github.com/bitmark-inc/socialdbd/rpc/store"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, db *socialdb.DB, admins []string) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.RegisterName("Store", store.New(log, db))
	_ = server.RegisterName("Permission", grant.New(log, db))
	_ = server.RegisterName("Storage", balance.New(log, db))
	_ = server.RegisterName("Pool", pool.New(log, db))
	_ = server.RegisterName("Inspect", inspect.New(log, start, version, rpcCount, db))
	_ = server.RegisterName("Admin", admin.New(log, db, admins))

	return server
}
