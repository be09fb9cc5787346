// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"sort"

	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/util"
)

// Permission - subtree roots a grantee may write below
//
// an empty set is never stored
type Permission struct {
	Granted map[node.ID]struct{}
}

// Entry - one grant of an account
type Entry struct {
	Key        Key
	Permission *Permission
}

func newPermission() *Permission {
	return &Permission{
		Granted: make(map[node.ID]struct{}),
	}
}

// Contains - id is one of the granted roots
func (p *Permission) Contains(id node.ID) bool {
	_, ok := p.Granted[id]
	return ok
}

// IsEmpty - nothing granted
func (p *Permission) IsEmpty() bool {
	return 0 == len(p.Granted)
}

// IDs - granted roots in ascending order
func (p *Permission) IDs() []node.ID {
	ids := make([]node.ID, 0, len(p.Granted))
	for id := range p.Granted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// stored as a varint count followed by varint ids in ascending order
func packPermission(p *Permission) []byte {
	ids := p.IDs()
	buffer := util.ToVarint64(uint64(len(ids)))
	for _, id := range ids {
		buffer = append(buffer, util.ToVarint64(uint64(id))...)
	}
	return buffer
}

func unpackPermission(buffer []byte) *Permission {
	count, n := util.FromVarint64(buffer)
	if 0 == n {
		fault.Panicf("permission: bad count: %x", buffer)
	}
	p := newPermission()
	for i := uint64(0); i < count; i += 1 {
		id, m := util.FromVarint64(buffer[n:])
		if 0 == m {
			fault.Panicf("permission: truncated set: %x", buffer)
		}
		p.Granted[node.ID(id)] = struct{}{}
		n += m
	}
	if n != len(buffer) {
		fault.Panicf("permission: trailing bytes: %x", buffer)
	}
	return p
}
