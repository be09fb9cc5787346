// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/binary"

	"github.com/bitmark-inc/socialdbd/fault"
)

// ID - node identifier, issued once by the store's counter
type ID uint32

// RootID - the document root, its children bind account identities
const RootID ID = 0

// EmptyKey - child key holding a node's own scalar value
const EmptyKey = ""

// Value - one child entry of a node
//
// exactly one of: Leaf, Child, Tombstone
type Value interface {
	isValue()
}

// Leaf - a string and the block height it was written at
type Leaf struct {
	Value       string
	BlockHeight uint64
}

// Child - reference to another node
type Child struct {
	ID ID
}

// Tombstone - a deleted leaf and the block height of deletion
type Tombstone struct {
	BlockHeight uint64
}

func (Leaf) isValue()      {}
func (Child) isValue()     {}
func (Tombstone) isValue() {}

// value tags
const (
	tagLeaf      = 0x00
	tagChild     = 0x01
	tagTombstone = 0x02
)

func packValue(v Value) []byte {
	switch v := v.(type) {
	case Leaf:
		buffer := make([]byte, 9, 9+len(v.Value))
		buffer[0] = tagLeaf
		binary.BigEndian.PutUint64(buffer[1:], v.BlockHeight)
		return append(buffer, v.Value...)
	case Child:
		buffer := make([]byte, 5)
		buffer[0] = tagChild
		binary.BigEndian.PutUint32(buffer[1:], uint32(v.ID))
		return buffer
	case Tombstone:
		buffer := make([]byte, 9)
		buffer[0] = tagTombstone
		binary.BigEndian.PutUint64(buffer[1:], v.BlockHeight)
		return buffer
	default:
		fault.Panicf("node: pack unknown value: %#v", v)
	}
	return nil
}

func unpackValue(buffer []byte) Value {
	if len(buffer) < 1 {
		fault.Panicf("node: empty value record")
	}
	switch buffer[0] {
	case tagLeaf:
		if len(buffer) < 9 {
			fault.Panicf("node: truncated leaf: %x", buffer)
		}
		return Leaf{
			Value:       string(buffer[9:]),
			BlockHeight: binary.BigEndian.Uint64(buffer[1:9]),
		}
	case tagChild:
		if 5 != len(buffer) {
			fault.Panicf("node: bad child: %x", buffer)
		}
		return Child{ID: ID(binary.BigEndian.Uint32(buffer[1:]))}
	case tagTombstone:
		if 9 != len(buffer) {
			fault.Panicf("node: bad tombstone: %x", buffer)
		}
		return Tombstone{BlockHeight: binary.BigEndian.Uint64(buffer[1:])}
	default:
		fault.Panicf("node: unknown value tag: %x", buffer)
	}
	return nil
}

// Bytes - big endian key form of an id
func (id ID) Bytes() []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// IDFromBytes - inverse of Bytes
func IDFromBytes(buffer []byte) ID {
	if len(buffer) < 4 {
		fault.Panicf("node: truncated id: %x", buffer)
	}
	return ID(binary.BigEndian.Uint32(buffer[:4]))
}
