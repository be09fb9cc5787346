// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package caller

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/permission"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

// Arguments - identity and payment carried by every mutating call
//
// Payment is a decimal number of units, blank for none
type Arguments struct {
	Caller    string `json:"caller"`
	SignerKey string `json:"signer_key"`
	Payment   string `json:"payment"`
}

// Request - validate and convert to a store request
func (a Arguments) Request() (socialdb.Request, error) {
	req := socialdb.Request{}

	if !account.ValidIdentity(a.Caller) {
		return req, fault.ErrInvalidAccountId
	}
	req.Caller = a.Caller

	if "" != a.SignerKey {
		k, err := permission.ParseSignerKey(a.SignerKey)
		if nil != err {
			return req, err
		}
		req.SignerKey = &k
	}

	amount, err := ParseAmount(a.Payment)
	if nil != err {
		return req, err
	}
	req.Payment = amount

	return req, nil
}

// ParseAmount - decimal units, nil for blank
func ParseAmount(s string) (*uint256.Int, error) {
	if "" == s {
		return nil, nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fault.ErrInvalidAmount
		}
	}
	amount, err := uint256.FromDecimal(s)
	if nil != err {
		return nil, fault.ErrInvalidAmount
	}
	return amount, nil
}

// Refund - one refund in reply form
type Refund struct {
	Identity string `json:"identity"`
	Amount   string `json:"amount"`
}

// Refunds - convert the refunds of an outcome
func Refunds(outcome *socialdb.Outcome) []Refund {
	refunds := make([]Refund, 0)
	if nil == outcome {
		return refunds
	}
	for _, r := range outcome.Refunds {
		refunds = append(refunds, Refund{
			Identity: r.Identity,
			Amount:   r.Amount.Dec(),
		})
	}
	return refunds
}
