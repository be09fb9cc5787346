// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/binary"

	"github.com/bitmark-inc/socialdbd/fault"
)

// Node - a point of the document tree
//
// the children are stored as separate records, Size is their count
// and the sequence number of the next inserted key
type Node struct {
	ID          ID
	BlockHeight uint64
	Size        uint32
}

// Entry - one child in insertion order
type Entry struct {
	Key   string
	Value Value
}

// header record versions
const (
	nodeVersion1       = 0x01
	currentNodeVersion = nodeVersion1

	nodeVersion1Length = 1 + 8 + 4
)

func packNode(n *Node) []byte {
	buffer := make([]byte, nodeVersion1Length)
	buffer[0] = currentNodeVersion
	binary.BigEndian.PutUint64(buffer[1:9], n.BlockHeight)
	binary.BigEndian.PutUint32(buffer[9:13], n.Size)
	return buffer
}

// decode any known version and upgrade to the current one
func unpackNode(id ID, buffer []byte) *Node {
	if len(buffer) < 1 {
		fault.Panicf("node: %d: empty header", id)
	}
	switch buffer[0] {
	case nodeVersion1:
		if nodeVersion1Length != len(buffer) {
			fault.Panicf("node: %d: bad header: %x", id, buffer)
		}
		return &Node{
			ID:          id,
			BlockHeight: binary.BigEndian.Uint64(buffer[1:9]),
			Size:        binary.BigEndian.Uint32(buffer[9:13]),
		}
	default:
		fault.Panicf("node: %d: unknown header version: %x", id, buffer[0])
	}
	return nil
}

// key of a child record: node id ++ key
func childKey(id ID, key string) []byte {
	return append(id.Bytes(), key...)
}

// key of an order record: node id ++ sequence
func orderKey(id ID, sequence uint32) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint32(buffer[:4], uint32(id))
	binary.BigEndian.PutUint32(buffer[4:], sequence)
	return buffer
}

// order record data, prefixed so an empty key is never an empty record
func packOrder(key string) []byte {
	return append([]byte{0x00}, key...)
}

func unpackOrder(buffer []byte) string {
	if len(buffer) < 1 || 0x00 != buffer[0] {
		fault.Panicf("node: bad order record: %x", buffer)
	}
	return string(buffer[1:])
}
