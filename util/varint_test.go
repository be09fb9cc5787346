// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialdbd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{300, []byte{0xac, 0x02}},
	{10000, []byte{0x90, 0x4e}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: value: %d", i, item.value)
	}
}

func TestFromVarint64WithSuffix(t *testing.T) {
	suffix := []byte{0x55, 0xaa}
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)
		value, count := util.FromVarint64(b)
		assert.Equal(t, item.value, value, "%d: wrong value", i)
		assert.Equal(t, len(item.encoded), count, "%d: wrong count", i)
		assert.Equal(t, suffix, b[count:], "%d: wrong suffix", i)
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}, {0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}} {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}
