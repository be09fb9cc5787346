// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inspect

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/counter"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rateLimitInspect = 200
	rateBurstInspect = 100

	// limit for count
	maximumList = 100
)

// Inspector - read only views of the store
type Inspector interface {
	Status() mode.Mode
	BlockHeight() uint64
	AccountCount() uint64
	AccountsPaged(from uint32, limit int) ([]string, error)
	Account(identity string) (*account.Account, bool)
	NodeCount() uint64
	NodesPaged(from node.ID, limit int) ([]*node.Node, error)
	Node(id node.ID) (*socialdb.NodeDetail, bool)
}

// Inspect - type for RPC calls
type Inspect struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Inspector Inspector
	counter   *counter.Counter
}

// New - create the Inspect service
func New(log *logger.L, start time.Time, version string, count *counter.Counter, inspector Inspector) *Inspect {
	return &Inspect{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitInspect, rateBurstInspect),
		Start:     start,
		Version:   version,
		Inspector: inspector,
		counter:   count,
	}
}

// Info
// ----

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Status      mode.Mode `json:"status"`
	BlockHeight uint64    `json:"block_height"`
	Accounts    uint64    `json:"accounts"`
	Nodes       uint64    `json:"nodes"`
	RPCs        uint64    `json:"rpcs"`
	Version     string    `json:"version"`
	Uptime      string    `json:"uptime"`
}

// Info - return some information about this daemon
func (i *Inspect) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	reply.Status = i.Inspector.Status()
	reply.BlockHeight = i.Inspector.BlockHeight()
	reply.Accounts = i.Inspector.AccountCount()
	reply.Nodes = i.Inspector.NodeCount()
	reply.RPCs = i.counter.Uint64()
	reply.Version = i.Version
	reply.Uptime = time.Since(i.Start).String()
	return nil
}

// Accounts
// --------

// ListArguments - start position and count
type ListArguments struct {
	Start uint64 `json:"start"`
	Count int    `json:"count"`
}

// AccountsReply - identities in registration order
type AccountsReply struct {
	Accounts  []string `json:"accounts"`
	NextStart uint64   `json:"next_start"`
}

// Accounts - page through registered identities
func (i *Inspect) Accounts(arguments *ListArguments, reply *AccountsReply) error {
	if err := ratelimit.LimitN(i.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	if arguments.Start > uint64(^uint32(0)) {
		return fault.ErrInvalidCursor
	}

	identities, err := i.Inspector.AccountsPaged(uint32(arguments.Start), arguments.Count)
	if nil != err {
		return err
	}
	reply.Accounts = identities
	reply.NextStart = arguments.Start + uint64(len(identities))
	return nil
}

// AccountArguments - identity to look up
type AccountArguments struct {
	AccountID string `json:"account_id"`
}

// SharedStorage - a donee's link to its pool
type SharedStorage struct {
	PoolID    string `json:"pool_id"`
	MaxBytes  uint64 `json:"max_bytes"`
	UsedBytes uint64 `json:"used_bytes"`
}

// AccountReply - the stored account record
type AccountReply struct {
	NodeID         uint32         `json:"node_id"`
	StorageBalance string         `json:"storage_balance"`
	UsedBytes      uint64         `json:"used_bytes"`
	SharedStorage  *SharedStorage `json:"shared_storage"`
}

// Account - one account record
func (i *Inspect) Account(arguments *AccountArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	a, ok := i.Inspector.Account(arguments.AccountID)
	if !ok {
		return fault.ErrAccountNotFound
	}

	reply.NodeID = uint32(a.NodeID)
	reply.StorageBalance = a.StorageBalance.Dec()
	reply.UsedBytes = a.UsedBytes
	if nil != a.SharedStorage {
		reply.SharedStorage = &SharedStorage{
			PoolID:    a.SharedStorage.PoolID,
			MaxBytes:  a.SharedStorage.MaxBytes,
			UsedBytes: a.SharedStorage.UsedBytes,
		}
	}
	return nil
}

// Nodes
// -----

// NodeHeader - one node without its children
type NodeHeader struct {
	ID          uint32 `json:"id"`
	BlockHeight uint64 `json:"block_height"`
	Size        uint32 `json:"size"`
}

// NodesReply - node headers in id order
type NodesReply struct {
	Nodes     []NodeHeader `json:"nodes"`
	NextStart uint64       `json:"next_start"`
}

// Nodes - page through nodes
func (i *Inspect) Nodes(arguments *ListArguments, reply *NodesReply) error {
	if err := ratelimit.LimitN(i.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	if arguments.Start > uint64(^uint32(0)) {
		return fault.ErrInvalidCursor
	}

	nodes, err := i.Inspector.NodesPaged(node.ID(arguments.Start), arguments.Count)
	if nil != err {
		return err
	}

	reply.Nodes = make([]NodeHeader, len(nodes))
	reply.NextStart = arguments.Start
	for j, n := range nodes {
		reply.Nodes[j] = NodeHeader{
			ID:          uint32(n.ID),
			BlockHeight: n.BlockHeight,
			Size:        n.Size,
		}
		reply.NextStart = uint64(n.ID) + 1
	}
	return nil
}

// NodeArguments - node to look up
type NodeArguments struct {
	ID uint32 `json:"id"`
}

// ChildEntry - one child of a node
//
// Kind is "value", "node" or "deleted"
type ChildEntry struct {
	Key         string  `json:"key"`
	Kind        string  `json:"kind"`
	Value       *string `json:"value,omitempty"`
	NodeID      *uint32 `json:"node_id,omitempty"`
	BlockHeight uint64  `json:"block_height,omitempty"`
}

// NodeReply - a node and its children in insertion order
type NodeReply struct {
	Node     NodeHeader   `json:"node"`
	Children []ChildEntry `json:"children"`
}

// Node - one node with its children
func (i *Inspect) Node(arguments *NodeArguments, reply *NodeReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	detail, ok := i.Inspector.Node(node.ID(arguments.ID))
	if !ok {
		return fault.ErrNodeNotFound
	}

	reply.Node = NodeHeader{
		ID:          uint32(detail.Node.ID),
		BlockHeight: detail.Node.BlockHeight,
		Size:        detail.Node.Size,
	}
	reply.Children = make([]ChildEntry, len(detail.Children))
	for j, e := range detail.Children {
		c := ChildEntry{Key: e.Key}
		switch v := e.Value.(type) {
		case node.Leaf:
			value := v.Value
			c.Kind = "value"
			c.Value = &value
			c.BlockHeight = v.BlockHeight
		case node.Child:
			id := uint32(v.ID)
			c.Kind = "node"
			c.NodeID = &id
		case node.Tombstone:
			c.Kind = "deleted"
			c.BlockHeight = v.BlockHeight
		}
		reply.Children[j] = c
	}
	return nil
}
