// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through the single Transaction: they are collected in
// a LevelDB batch and an overlay cache (so reads within the
// transaction see them) and either written at once by Commit or
// dropped by Abort.
//
// Every record in a metered pool costs:
//
//   len(prefix ++ key) + len(value) + RecordOverhead
//
// bytes, the running total of which is disclosed by
// Transaction.StorageUsage().
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. node id      = big endian uint32 (4 bytes)
// 4. sequence     = big endian uint32 (4 bytes), insertion position of a child
// 5. identity     = account id as bytes
// 6. count        = big endian uint64 (8 bytes)
// 7. *others*     = byte values of various length
//
// Globals (not metered):
//
//   G ++ "usage"               - committed storage usage
//                                data: count
//   G ++ "nodes"               - next node id to allocate
//                                data: count
//   G ++ "status"              - store status
//                                data: 1 byte
//
// Nodes:
//
//   N ++ node id               - node header
//                                data: version ++ block height(8) ++ child count(4)
//   C ++ node id ++ key        - child entry
//                                data: encoded node value
//   O ++ node id ++ sequence   - child insertion order
//                                data: 0x00 ++ key
//
// Accounts:
//
//   A ++ node id               - account bound to its root node
//                                data: version ++ packed account
//   P ++ node id ++ perm key   - write permission granted by the account
//                                data: varint count ++ node ids
//
// Shared storage:
//
//   S ++ identity              - shared storage pool funded by identity
//                                data: version ++ packed pool
package storage
