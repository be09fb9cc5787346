// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"math"

	"github.com/holiman/uint256"
)

// DefaultPricePerByte - 10^19 units per byte
var DefaultPricePerByte = uint256.NewInt(10_000_000_000_000_000_000)

// Clock - logical time source, non-decreasing
type Clock interface {
	BlockHeight() uint64
}

// Pricing - storage price source, stable within a request
type Pricing interface {
	StoragePricePerByte() *uint256.Int
}

// FixedPrice - a constant storage price
type FixedPrice struct {
	price uint256.Int
}

// NewFixedPrice - price per byte; zero selects the default
func NewFixedPrice(price *uint256.Int) *FixedPrice {
	p := &FixedPrice{}
	if nil == price || price.IsZero() {
		p.price.Set(DefaultPricePerByte)
	} else {
		p.price.Set(price)
	}
	return p
}

// StoragePricePerByte - implements Pricing
func (p *FixedPrice) StoragePricePerByte() *uint256.Int {
	return new(uint256.Int).Set(&p.price)
}

// CostOf - balance needed to cover a number of bytes
//
// saturates at the maximum value
func CostOf(bytes uint64, price *uint256.Int) *uint256.Int {
	cost, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(bytes), price)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return cost
}

// BytesCovered - number of bytes a balance pays for
//
// saturates at the maximum uint64
func BytesCovered(balance *uint256.Int, price *uint256.Int) uint64 {
	if price.IsZero() {
		return math.MaxUint64
	}
	bytes := new(uint256.Int).Div(balance, price)
	if !bytes.IsUint64() {
		return math.MaxUint64
	}
	return bytes.Uint64()
}
