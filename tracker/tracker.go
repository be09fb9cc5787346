// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tracker - meter the bytes an operation adds to or releases
// from the store
package tracker

import (
	"github.com/bitmark-inc/socialdbd/fault"
)

// Usage - anything that discloses a storage usage counter
type Usage interface {
	StorageUsage() uint64
}

// Tracker - accumulated byte deltas of one or more tracked scopes
type Tracker struct {
	BytesAdded    uint64
	BytesReleased uint64

	source  Usage
	initial uint64
}

// New - an empty tracker
func New() *Tracker {
	return &Tracker{}
}

// Start - snapshot the usage counter
func (t *Tracker) Start(source Usage) {
	if nil != t.source {
		fault.Panicf("tracker: start while already started")
	}
	t.source = source
	t.initial = source.StorageUsage()
}

// Stop - add the delta since Start and reset
func (t *Tracker) Stop() {
	if nil == t.source {
		fault.Panicf("tracker: stop without start")
	}
	usage := t.source.StorageUsage()
	if usage >= t.initial {
		t.BytesAdded += usage - t.initial
	} else {
		t.BytesReleased += t.initial - usage
	}
	t.source = nil
	t.initial = 0
}

// Measure - run f inside a tracked scope, the delta is recorded on
// every exit path
func (t *Tracker) Measure(source Usage, f func() error) error {
	t.Start(source)
	defer t.Stop()
	return f()
}

// Consume - take over the deltas of another tracker
func (t *Tracker) Consume(other *Tracker) {
	t.BytesAdded += other.BytesAdded
	t.BytesReleased += other.BytesReleased
	other.Clear()
}

// Clear - forget all accumulated deltas
func (t *Tracker) Clear() {
	t.BytesAdded = 0
	t.BytesReleased = 0
}

// IsEmpty - nothing recorded
func (t *Tracker) IsEmpty() bool {
	return 0 == t.BytesAdded && 0 == t.BytesReleased
}

// IsActive - between Start and Stop
func (t *Tracker) IsActive() bool {
	return nil != t.source
}
