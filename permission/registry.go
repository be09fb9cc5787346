// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/chain"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/node"
	"github.com/bitmark-inc/socialdbd/storage"
)

// Separator - between path segments
const Separator = "/"

// Registry - write grants of every account
//
// records are keyed by the granting account's node id and the grantee key
type Registry struct {
	log         *logger.L
	nodes       *node.Store
	permissions *storage.PoolHandle
	accounts    *account.Registry
	clock       chain.Clock
}

// New - create a permission registry
func New(nodes *node.Store, permissions *storage.PoolHandle, accounts *account.Registry, clock chain.Clock) *Registry {
	return &Registry{
		log:         logger.New("permission"),
		nodes:       nodes,
		permissions: permissions,
		accounts:    accounts,
		clock:       clock,
	}
}

func recordKey(id node.ID, k Key) []byte {
	return append(id.Bytes(), k.Bytes()...)
}

// Get - the grant of an account to one key
func (r *Registry) Get(a *account.Account, k Key) (*Permission, bool) {
	buffer := r.permissions.Get(recordKey(a.NodeID, k))
	if nil == buffer {
		return nil, false
	}
	return unpackPermission(buffer), true
}

// store a grant, removing it when empty; the size change is tracked
// against the account
func (r *Registry) put(trx storage.Transaction, a *account.Account, k Key, p *Permission) {
	key := recordKey(a.NodeID, k)
	_ = a.Tracker.Measure(trx, func() error {
		if p.IsEmpty() {
			if trx.Has(r.permissions, key) {
				trx.Delete(r.permissions, key)
			}
		} else {
			trx.Put(r.permissions, key, packPermission(p))
		}
		return nil
	})
}

func splitPath(path string) ([]string, error) {
	if "" == path {
		return nil, fault.ErrEmptyPath
	}
	return strings.Split(path, Separator), nil
}

// Grant - allow k to write below each path of the granter
//
// missing nodes on a path are created and leaves on the way are
// demoted; everything is charged to the granter, which is settled
func (r *Registry) Grant(trx storage.Transaction, granter *account.Account, k Key, paths []string) error {
	p, ok := r.Get(granter, k)
	if !ok {
		p = newPermission()
	}

	h := r.clock.BlockHeight()
	for _, path := range paths {
		segments, err := splitPath(path)
		if nil != err {
			return err
		}
		for _, key := range segments {
			if "*" == key || "**" == key {
				return fault.ErrWildcardInPath
			}
		}
		if segments[0] != granter.Identity {
			return fault.ErrGrantOutsideOwnSubtree
		}

		var id node.ID
		err = granter.Tracker.Measure(trx, func() error {
			n := r.nodes.MustGet(granter.NodeID)
			for _, key := range segments[1:] {
				if node.EmptyKey == key {
					return fault.ErrInvalidKey
				}
				if err := node.ValidateKey(key); nil != err {
					return err
				}

				v, ok := r.nodes.Child(n, key)
				if !ok {
					c := r.nodes.Create(trx, h)
					r.nodes.SetChild(trx, n, key, node.Child{ID: c.ID}, h)
					n = c
					continue
				}
				switch v := v.(type) {
				case node.Child:
					n = r.nodes.MustGet(v.ID)
				case node.Leaf, node.Tombstone:
					n = r.nodes.Demote(trx, n, key, v, h)
				default:
					fault.Panicf("permission: node: %d key: %q unknown value: %#v", n.ID, key, v)
				}
			}
			id = n.ID
			return nil
		})
		if nil != err {
			return err
		}
		p.Granted[id] = struct{}{}
		r.log.Debugf("%q grants: %s  node: %d", granter.Identity, k, id)
	}

	r.put(trx, granter, k, p)
	return r.accounts.Settle(trx, granter)
}

// Revoke - remove the grants of k on each existing path
//
// paths that do not resolve to a node are skipped; the released
// bytes go back to the granter
func (r *Registry) Revoke(trx storage.Transaction, granter *account.Account, k Key, paths []string) error {
	p, ok := r.Get(granter, k)
	if !ok {
		p = newPermission()
	}

	for _, path := range paths {
		segments, err := splitPath(path)
		if nil != err {
			return err
		}
		if segments[0] != granter.Identity {
			return fault.ErrGrantOutsideOwnSubtree
		}
		if n, ok := r.resolve(granter, segments[1:]); ok {
			delete(p.Granted, n.ID)
			r.log.Debugf("%q revokes: %s  node: %d", granter.Identity, k, n.ID)
		}
	}

	if ok {
		r.put(trx, granter, k, p)
	}
	return r.accounts.Settle(trx, granter)
}

// walk the node chain below an account without creating anything
func (r *Registry) resolve(a *account.Account, segments []string) (*node.Node, bool) {
	n := r.nodes.MustGet(a.NodeID)
	for _, key := range segments {
		c, ok := r.nodes.ChildNode(n, key)
		if !ok {
			return nil, false
		}
		n = c
	}
	return n, true
}

// IsAuthorized - k may write at path
//
// true if the grant holds the account root or any node met while
// walking the path; the walk stops at the first segment that is not
// a node
func (r *Registry) IsAuthorized(k Key, path string) (bool, error) {
	segments, err := splitPath(path)
	if nil != err {
		return false, err
	}

	a, ok := r.accounts.Get(segments[0])
	if !ok {
		return false, nil
	}
	p, ok := r.Get(a, k)
	if !ok {
		return false, nil
	}
	if p.Contains(a.NodeID) {
		return true, nil
	}

	n := r.nodes.MustGet(a.NodeID)
	for _, key := range segments[1:] {
		c, ok := r.nodes.ChildNode(n, key)
		if !ok {
			return false, nil
		}
		if p.Contains(c.ID) {
			return true, nil
		}
		n = c
	}
	return false, nil
}

// WritableRoots - nodes of a that the caller identity or its signer
// key may write below
func (r *Registry) WritableRoots(a *account.Account, caller string, signer *SignerKey) map[node.ID]struct{} {
	roots := make(map[node.ID]struct{})
	if "" != caller {
		if p, ok := r.Get(a, AccountKey{Identity: caller}); ok {
			for id := range p.Granted {
				roots[id] = struct{}{}
			}
		}
	}
	if nil != signer {
		if p, ok := r.Get(a, *signer); ok {
			for id := range p.Granted {
				roots[id] = struct{}{}
			}
		}
	}
	return roots
}

// List - every committed grant of an account
func (r *Registry) List(identity string) ([]Entry, error) {
	a, ok := r.accounts.Get(identity)
	if !ok {
		return nil, fault.ErrAccountNotFound
	}

	entries := make([]Entry, 0)
	cursor := r.permissions.NewPrefixFetchCursor(a.NodeID.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		entries = append(entries, Entry{
			Key:        unpackKey(key[4:]),
			Permission: unpackPermission(value),
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return entries, nil
}
