// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
	"github.com/bitmark-inc/socialdbd/rpc/ratelimit"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rateLimitBalance = 100
	rateBurstBalance = 50
)

// Accounts - storage balance operations of the store
type Accounts interface {
	StorageDeposit(req socialdb.Request, identity string, registrationOnly bool) (*account.Balance, *socialdb.Outcome, error)
	StorageWithdraw(req socialdb.Request, amount *uint256.Int) (*account.Balance, *socialdb.Outcome, error)
	StorageUnregister(req socialdb.Request) error
	StorageBalanceOf(identity string) (*account.Balance, bool)
	StorageBalanceBounds() account.Bounds
	AccountStorage(identity string) (*account.StorageView, bool)
}

// Balance - type for RPC calls
//
// registered as "Storage"
type Balance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Accounts Accounts
}

// New - create the Storage service
func New(log *logger.L, accounts Accounts) *Balance {
	return &Balance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Accounts: accounts,
	}
}

// BalanceReply - amounts in decimal units
type BalanceReply struct {
	Total     string          `json:"total"`
	Available string          `json:"available"`
	Refunds   []caller.Refund `json:"refunds,omitempty"`
}

func (reply *BalanceReply) set(b *account.Balance) {
	reply.Total = b.Total.Dec()
	reply.Available = b.Available.Dec()
}

// Deposit
// -------

// DepositArguments - account to fund, the caller when blank
type DepositArguments struct {
	caller.Arguments
	AccountID        string `json:"account_id"`
	RegistrationOnly bool   `json:"registration_only"`
}

// Deposit - register or top up an account
func (b *Balance) Deposit(arguments *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}
	if "" != arguments.AccountID && !account.ValidIdentity(arguments.AccountID) {
		return fault.ErrInvalidAccountId
	}

	b.Log.Infof("Storage.Deposit: caller: %q  account: %q  registration only: %t", req.Caller, arguments.AccountID, arguments.RegistrationOnly)

	balance, outcome, err := b.Accounts.StorageDeposit(req, arguments.AccountID, arguments.RegistrationOnly)
	if nil != err {
		return err
	}
	reply.set(balance)
	reply.Refunds = caller.Refunds(outcome)
	return nil
}

// Withdraw
// --------

// WithdrawArguments - amount to take out, everything available when blank
type WithdrawArguments struct {
	caller.Arguments
	Amount string `json:"amount"`
}

// Withdraw - take out available balance, needs a one unit confirmation
func (b *Balance) Withdraw(arguments *WithdrawArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}
	amount, err := caller.ParseAmount(arguments.Amount)
	if nil != err {
		return err
	}

	b.Log.Infof("Storage.Withdraw: caller: %q  amount: %q", req.Caller, arguments.Amount)

	balance, outcome, err := b.Accounts.StorageWithdraw(req, amount)
	if nil != err {
		return err
	}
	reply.set(balance)
	reply.Refunds = caller.Refunds(outcome)
	return nil
}

// Unregister
// ----------

// UnregisterArguments - the caller and its confirmation
type UnregisterArguments struct {
	caller.Arguments
	Force bool `json:"force"`
}

// UnregisterReply - never set, unregistering is refused
type UnregisterReply struct {
	Unregistered bool `json:"unregistered"`
}

// Unregister - remove the caller's account
func (b *Balance) Unregister(arguments *UnregisterArguments, reply *UnregisterReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	req, err := arguments.Request()
	if nil != err {
		return err
	}

	b.Log.Infof("Storage.Unregister: caller: %q  force: %t", req.Caller, arguments.Force)

	err = b.Accounts.StorageUnregister(req)
	if nil != err {
		return err
	}
	reply.Unregistered = true
	return nil
}

// Queries
// -------

// AccountArguments - account to look up
type AccountArguments struct {
	AccountID string `json:"account_id"`
}

// BalanceOfReply - balance, nil for an unknown account
type BalanceOfReply struct {
	Balance *BalanceReply `json:"balance"`
}

// BalanceOf - balance of one account
func (b *Balance) BalanceOf(arguments *AccountArguments, reply *BalanceOfReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	balance, ok := b.Accounts.StorageBalanceOf(arguments.AccountID)
	if !ok {
		return nil
	}
	reply.Balance = &BalanceReply{}
	reply.Balance.set(balance)
	return nil
}

// BoundsArguments - empty arguments
type BoundsArguments struct{}

// BoundsReply - minimum and maximum balance, blank maximum is unbounded
type BoundsReply struct {
	Min string `json:"min"`
	Max string `json:"max,omitempty"`
}

// BalanceBounds - registration limits
func (b *Balance) BalanceBounds(_ *BoundsArguments, reply *BoundsReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	bounds := b.Accounts.StorageBalanceBounds()
	reply.Min = bounds.Min.Dec()
	if nil != bounds.Max {
		reply.Max = bounds.Max.Dec()
	}
	return nil
}

// ViewReply - storage of one account, nil for an unknown account
type ViewReply struct {
	Storage *StorageView `json:"storage"`
}

// StorageView - bytes used and still writable
type StorageView struct {
	UsedBytes      uint64 `json:"used_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
}

// View - used and available bytes of one account
func (b *Balance) View(arguments *AccountArguments, reply *ViewReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	view, ok := b.Accounts.AccountStorage(arguments.AccountID)
	if !ok {
		return nil
	}
	reply.Storage = &StorageView{
		UsedBytes:      view.UsedBytes,
		AvailableBytes: view.AvailableBytes,
	}
	return nil
}
