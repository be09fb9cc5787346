// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 5
)

// Controller - status control of the store
type Controller interface {
	Status() mode.Mode
	SetStatus(status mode.Mode) error
}

// Admin - type for RPC calls
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Status  Controller
	admins  map[string]struct{}
}

// New - create the Admin service, only admins may change status
func New(log *logger.L, status Controller, admins []string) *Admin {
	a := &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Status:  status,
		admins:  make(map[string]struct{}),
	}
	for _, identity := range admins {
		a.admins[identity] = struct{}{}
	}
	return a
}

// SetStatusArguments - the calling admin and the new status
type SetStatusArguments struct {
	Caller string    `json:"caller"`
	Status mode.Mode `json:"status"`
}

// SetStatusReply - status after the change
type SetStatusReply struct {
	Status mode.Mode `json:"status"`
}

// SetStatus - move the store to Live or ReadOnly
func (a *Admin) SetStatus(arguments *SetStatusArguments, reply *SetStatusReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if _, ok := a.admins[arguments.Caller]; !ok {
		a.Log.Warnf("Admin.SetStatus: refused caller: %q", arguments.Caller)
		return fault.ErrPermissionDenied
	}

	a.Log.Infof("Admin.SetStatus: caller: %q  status: %s", arguments.Caller, arguments.Status)

	err := a.Status.SetStatus(arguments.Status)
	if nil != err {
		return err
	}
	reply.Status = a.Status.Status()
	return nil
}
