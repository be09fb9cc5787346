// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/fault"
)

// Transaction - all-or-nothing set of writes with read-your-writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
	StorageUsage() uint64
}

// TransactionData - the single transaction of the database
type TransactionData struct {
	sync.Mutex
	access    Access
	globals   *PoolHandle
	committed uint64
	pending   int64
}

func newTransaction(access Access, globals *PoolHandle, committed uint64) *TransactionData {
	return &TransactionData{
		access:    access,
		globals:   globals,
		committed: committed,
	}
}

// Begin - start a transaction
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	err := t.access.Begin()
	if nil != err {
		return err
	}
	t.pending = 0
	return nil
}

func (t *TransactionData) mustBeInUse(operation string) {
	if !t.access.InUse() {
		logger.Panicf("transaction.%s: %s", operation, fault.ErrNoTransaction)
	}
}

// Put - store a record, adjusting storage usage by the size difference
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse("Put")

	if handle.Metered() {
		t.Lock()
		if old := handle.Get(key); nil != old {
			t.pending -= int64(handle.RecordSize(key, old))
		}
		t.pending += int64(handle.RecordSize(key, value))
		t.Unlock()
	}
	handle.put(key, value)
}

// PutN - store a big endian uint64
func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

// Delete - remove a record, releasing its storage usage
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	t.mustBeInUse("Delete")

	if handle.Metered() {
		t.Lock()
		if old := handle.Get(key); nil != old {
			t.pending -= int64(handle.RecordSize(key, old))
		}
		t.Unlock()
	}
	handle.remove(key)
}

// Get - read including the pending writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read a big endian uint64 including the pending writes
func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check including the pending writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything and persist the new storage usage
func (t *TransactionData) Commit() error {
	t.mustBeInUse("Commit")

	t.Lock()
	defer t.Unlock()

	usage := t.usage()
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, usage)
	t.globals.put(usageKey, buffer)

	err := t.access.Commit()
	if nil != err {
		t.pending = 0
		return err
	}
	t.committed = usage
	t.pending = 0
	return nil
}

// Abort - discard everything since Begin
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.access.Abort()
	t.pending = 0
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// StorageUsage - committed plus pending usage in bytes
func (t *TransactionData) StorageUsage() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.usage()
}

func (t *TransactionData) usage() uint64 {
	if t.pending < 0 && uint64(-t.pending) > t.committed {
		logger.Panicf("transaction: usage underflow: committed: %d  pending: %d", t.committed, t.pending)
	}
	return uint64(int64(t.committed) + t.pending)
}
