// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName   = "testing"
	databaseFileName = "testing/test.leveldb"
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

func teardownTestLogger() {
	removeFiles()
}

func setupTestStorage(t *testing.T) {
	setupTestLogger()
	err := Initialise(databaseFileName, ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardownTestStorage() {
	Finalise()
	teardownTestLogger()
}

func TestSecondBeginFails(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "first begin")

	_, err = NewDBTransaction()
	assert.NotNil(t, err, "second begin should fail")

	trx.Abort()
	assert.False(t, trx.InUse(), "abort did not release")
}

func TestPutOutsideTransactionPanics(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	assert.Panics(t, func() {
		poolData.trx.Put(Pool.Nodes, []byte{1}, []byte{2})
	})
}

func TestUsageFollowsPutsAndDeletes(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, _ := NewDBTransaction()
	start := trx.StorageUsage()

	key := []byte("k")
	trx.Put(Pool.Nodes, key, []byte("12345"))
	first := uint64(1 + 1 + 5 + RecordOverhead)
	assert.Equal(t, start+first, trx.StorageUsage(), "wrong usage after put")

	// same size value does not change usage
	trx.Put(Pool.Nodes, key, []byte("abcde"))
	assert.Equal(t, start+first, trx.StorageUsage(), "same size rewrite changed usage")

	// larger value only adds the difference
	trx.Put(Pool.Nodes, key, []byte("abcdefg"))
	assert.Equal(t, start+first+2, trx.StorageUsage(), "wrong usage after growth")

	// globals are not metered
	trx.PutN(Pool.Globals, []byte("counter"), 99)
	assert.Equal(t, start+first+2, trx.StorageUsage(), "globals were metered")

	trx.Delete(Pool.Nodes, key)
	assert.Equal(t, start, trx.StorageUsage(), "delete did not release")

	trx.Abort()
}

func TestCommitPersistsDataAndUsage(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, _ := NewDBTransaction()
	trx.Put(Pool.Accounts, []byte("a"), []byte("value"))
	usage := trx.StorageUsage()
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("value"), Pool.Accounts.Get([]byte("a")), "committed value")

	// usage is reloaded from the globals pool
	Finalise()
	err = Initialise(databaseFileName, ReadWrite)
	assert.Nil(t, err, "reopen error")

	trx, _ = NewDBTransaction()
	assert.Equal(t, usage, trx.StorageUsage(), "usage not persisted")
	trx.Abort()
}

func TestAbortRestoresUsage(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, _ := NewDBTransaction()
	start := trx.StorageUsage()
	trx.Put(Pool.Permissions, []byte("p"), []byte("grant"))
	assert.True(t, trx.Has(Pool.Permissions, []byte("p")), "pending put not visible")
	trx.Abort()

	trx, _ = NewDBTransaction()
	assert.Equal(t, start, trx.StorageUsage(), "abort kept usage")
	assert.False(t, trx.Has(Pool.Permissions, []byte("p")), "aborted put visible")
	trx.Abort()
}
