// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grant

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/permission"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rateLimitGrant = 100
	rateBurstGrant = 50

	maximumPaths = 100
)

// Permissions - grant operations of the store
type Permissions interface {
	Grant(req socialdb.Request, grantee permission.Key, paths []string) (*socialdb.Outcome, error)
	Revoke(req socialdb.Request, grantee permission.Key, paths []string) (*socialdb.Outcome, error)
	IsWritePermissionGranted(grantee permission.Key, path string) (bool, error)
	Permissions(identity string) ([]permission.Entry, error)
}

// Grant - type for RPC calls
//
// registered as "Permission"
type Grant struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Permissions Permissions
}

// New - create the Permission service
func New(log *logger.L, permissions Permissions) *Grant {
	return &Grant{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitGrant, rateBurstGrant),
		Permissions: permissions,
	}
}

// Grantee - exactly one of an account or a signer public key
type Grantee struct {
	Account   string `json:"predecessor_id"`
	PublicKey string `json:"public_key"`
}

func (g Grantee) key() (permission.Key, error) {
	return permission.ParseKey(g.Account, g.PublicKey)
}

// ChangeArguments - arguments for grant and revoke
type ChangeArguments struct {
	caller.Arguments
	Grantee
	Keys []string `json:"keys"`
}

// ChangeReply - payments returned to the caller
type ChangeReply struct {
	Refunds []caller.Refund `json:"refunds"`
}

func (g *Grant) change(name string, arguments *ChangeArguments, reply *ChangeReply,
	f func(socialdb.Request, permission.Key, []string) (*socialdb.Outcome, error)) error {

	if err := ratelimit.LimitN(g.Limiter, len(arguments.Keys), maximumPaths); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}
	k, err := arguments.key()
	if nil != err {
		return err
	}

	g.Log.Infof("%s: caller: %q  grantee: %s  keys: %v", name, req.Caller, k, arguments.Keys)

	outcome, err := f(req, k, arguments.Keys)
	if nil != err {
		return err
	}
	reply.Refunds = caller.Refunds(outcome)
	return nil
}

// Grant - allow the grantee to write below the caller's paths
func (g *Grant) Grant(arguments *ChangeArguments, reply *ChangeReply) error {
	return g.change("Permission.Grant", arguments, reply, g.Permissions.Grant)
}

// Revoke - remove earlier grants, needs a one unit confirmation
func (g *Grant) Revoke(arguments *ChangeArguments, reply *ChangeReply) error {
	return g.change("Permission.Revoke", arguments, reply, g.Permissions.Revoke)
}

// IsGrantedArguments - grantee and the full path to check
type IsGrantedArguments struct {
	Grantee
	Key string `json:"key"`
}

// IsGrantedReply - result of the check
type IsGrantedReply struct {
	Granted bool `json:"granted"`
}

// IsGranted - grantee may write at key
func (g *Grant) IsGranted(arguments *IsGrantedArguments, reply *IsGrantedReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	k, err := arguments.key()
	if nil != err {
		return err
	}

	granted, err := g.Permissions.IsWritePermissionGranted(k, arguments.Key)
	if nil != err {
		return err
	}
	reply.Granted = granted
	return nil
}

// ListArguments - the granting account
type ListArguments struct {
	AccountID string `json:"account_id"`
}

// ListEntry - node ids granted to one grantee
type ListEntry struct {
	Grantee string   `json:"grantee"`
	NodeIDs []uint32 `json:"node_ids"`
}

// ListReply - all grants of an account
type ListReply struct {
	Permissions []ListEntry `json:"permissions"`
}

// List - every grant made by an account
func (g *Grant) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	entries, err := g.Permissions.Permissions(arguments.AccountID)
	if nil != err {
		return err
	}

	reply.Permissions = make([]ListEntry, 0, len(entries))
	for _, e := range entries {
		ids := e.Permission.IDs()
		nodeIDs := make([]uint32, len(ids))
		for i, id := range ids {
			nodeIDs[i] = uint32(id)
		}

		reply.Permissions = append(reply.Permissions, ListEntry{
			Grantee: e.Key.String(),
			NodeIDs: nodeIDs,
		})
	}
	return nil
}
