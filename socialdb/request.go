// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package socialdb

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/permission"
)

// Request - who is calling and what they attached
//
// nothing here is verified, the host authenticates the caller
type Request struct {
	Caller    string
	SignerKey *permission.SignerKey
	Payment   *uint256.Int
}

// Refund - an amount to return to an identity
type Refund struct {
	Identity string       `json:"identity"`
	Amount   *uint256.Int `json:"amount"`
}

// Outcome - effects requested by a completed operation
type Outcome struct {
	Refunds []Refund `json:"refunds"`
}

func (r Request) payment() *uint256.Int {
	if nil == r.Payment {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(r.Payment)
}

// exactly one unit attached
func (r Request) isConfirmed() bool {
	return nil != r.Payment && r.Payment.IsUint64() && 1 == r.Payment.Uint64()
}

func (o *Outcome) refund(identity string, amount *uint256.Int) {
	if nil == amount || amount.IsZero() {
		return
	}
	o.Refunds = append(o.Refunds, Refund{
		Identity: identity,
		Amount:   new(uint256.Int).Set(amount),
	})
}
