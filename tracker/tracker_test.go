// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tracker_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/tracker"
	"github.com/bitmark-inc/socialdbd/tracker/mocks"
)

func TestStartStopRecordsGrowth(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	u := mocks.NewMockUsage(ctl)
	gomock.InOrder(
		u.EXPECT().StorageUsage().Return(uint64(100)),
		u.EXPECT().StorageUsage().Return(uint64(150)),
	)

	tr := tracker.New()
	tr.Start(u)
	assert.True(t, tr.IsActive(), "not active after start")
	tr.Stop()

	assert.False(t, tr.IsActive(), "active after stop")
	assert.Equal(t, uint64(50), tr.BytesAdded, "wrong bytes added")
	assert.Equal(t, uint64(0), tr.BytesReleased, "wrong bytes released")
}

func TestRepeatedScopesAccumulate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	u := mocks.NewMockUsage(ctl)
	gomock.InOrder(
		u.EXPECT().StorageUsage().Return(uint64(100)),
		u.EXPECT().StorageUsage().Return(uint64(120)),
		u.EXPECT().StorageUsage().Return(uint64(120)),
		u.EXPECT().StorageUsage().Return(uint64(90)),
	)

	tr := tracker.New()
	tr.Start(u)
	tr.Stop()
	tr.Start(u)
	tr.Stop()

	assert.Equal(t, uint64(20), tr.BytesAdded, "wrong bytes added")
	assert.Equal(t, uint64(30), tr.BytesReleased, "wrong bytes released")
}

func TestMeasureStopsOnError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	u := mocks.NewMockUsage(ctl)
	gomock.InOrder(
		u.EXPECT().StorageUsage().Return(uint64(10)),
		u.EXPECT().StorageUsage().Return(uint64(17)),
	)

	tr := tracker.New()
	err := tr.Measure(u, func() error {
		return fault.ErrPermissionDenied
	})
	assert.Equal(t, fault.ErrPermissionDenied, err, "error not returned")
	assert.False(t, tr.IsActive(), "still active")
	assert.Equal(t, uint64(7), tr.BytesAdded, "delta lost")
}

func TestConsumeMovesDeltas(t *testing.T) {
	a := tracker.New()
	b := tracker.New()
	a.BytesAdded = 5
	b.BytesAdded = 7
	b.BytesReleased = 2

	a.Consume(b)
	assert.Equal(t, uint64(12), a.BytesAdded, "added")
	assert.Equal(t, uint64(2), a.BytesReleased, "released")
	assert.True(t, b.IsEmpty(), "consumed tracker not cleared")
}

func TestUnbalancedUsePanics(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	u := mocks.NewMockUsage(ctl)
	u.EXPECT().StorageUsage().Return(uint64(1)).AnyTimes()

	assert.Panics(t, func() {
		tracker.New().Stop()
	})
	assert.Panics(t, func() {
		tr := tracker.New()
		tr.Start(u)
		tr.Start(u)
	})
}
