// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rateLimitStore = 200
	rateBurstStore = 100

	// limit for paths in one request
	maximumPaths = 100
)

// Database - document operations of the store
type Database interface {
	Get(paths []string, options document.GetOptions) (*document.Object, error)
	Keys(paths []string, options document.KeysOptions) (*document.Object, error)
	Set(req socialdb.Request, data *document.Object, options socialdb.SetOptions) (*socialdb.Outcome, error)
}

// Store - type for RPC calls
type Store struct {
	Log     *logger.L
	Limiter *rate.Limiter
	DB      Database
}

// New - create the Store service
func New(log *logger.L, db Database) *Store {
	return &Store{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStore, rateBurstStore),
		DB:      db,
	}
}

// Get
// ---

// GetArguments - paths to read, each "/" separated
type GetArguments struct {
	Keys    []string            `json:"keys"`
	Options document.GetOptions `json:"options"`
}

// GetReply - merged values of all paths
type GetReply struct {
	Data *document.Object `json:"data"`
}

// Get - read values
func (s *Store) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.LimitN(s.Limiter, len(arguments.Keys), maximumPaths); nil != err {
		if fault.ErrInvalidCount == err {
			return fault.ErrMissingPaths
		}
		return err
	}

	data, err := s.DB.Get(arguments.Keys, arguments.Options)
	if nil != err {
		return err
	}
	reply.Data = data
	return nil
}

// Keys
// ----

// KeysArguments - paths whose last segment is listed
type KeysArguments struct {
	Keys    []string             `json:"keys"`
	Options document.KeysOptions `json:"options"`
}

// KeysReply - matching keys with their markers
type KeysReply struct {
	Data *document.Object `json:"data"`
}

// Keys - list keys
func (s *Store) Keys(arguments *KeysArguments, reply *KeysReply) error {
	if err := ratelimit.LimitN(s.Limiter, len(arguments.Keys), maximumPaths); nil != err {
		if fault.ErrInvalidCount == err {
			return fault.ErrMissingPaths
		}
		return err
	}

	data, err := s.DB.Keys(arguments.Keys, arguments.Options)
	if nil != err {
		return err
	}
	reply.Data = data
	return nil
}

// Set
// ---

// SetArguments - document keyed by account identity
type SetArguments struct {
	caller.Arguments
	Data    *document.Object    `json:"data"`
	Options socialdb.SetOptions `json:"options"`
}

// SetReply - payments returned to callers
type SetReply struct {
	Refunds []caller.Refund `json:"refunds"`
}

// Set - write a document
func (s *Store) Set(arguments *SetArguments, reply *SetReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments.Data {
		return fault.ErrMissingParameters
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}

	s.Log.Infof("Store.Set: caller: %q  accounts: %v", req.Caller, arguments.Data.Keys())

	outcome, err := s.DB.Set(req, arguments.Data, arguments.Options)
	if nil != err {
		return err
	}
	reply.Refunds = caller.Refunds(outcome)
	return nil
}
