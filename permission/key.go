// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/socialdbd/account"
	"github.com/bitmark-inc/socialdbd/fault"
)

// Key - who a permission is granted to
//
// exactly one of: AccountKey, SignerKey
type Key interface {
	Bytes() []byte
	String() string
	isKey()
}

// AccountKey - grant to an account identity
type AccountKey struct {
	Identity string
}

// Curve - signer key algorithm
type Curve byte

// supported curves
const (
	ED25519   Curve = 0
	SECP256K1 Curve = 1
)

// raw public key sizes
const (
	secp256k1PublicKeySize = 64
)

// SignerKey - grant to whoever signs with this public key
type SignerKey struct {
	Curve     Curve
	PublicKey []byte
}

func (AccountKey) isKey() {}
func (SignerKey) isKey()  {}

// key tags
const (
	tagAccount = 0x00
	tagSigner  = 0x01
)

// NewAccountKey - validated account key
func NewAccountKey(identity string) (AccountKey, error) {
	if !account.ValidIdentity(identity) {
		return AccountKey{}, fault.ErrInvalidAccountId
	}
	return AccountKey{Identity: identity}, nil
}

// Bytes - stored form
func (k AccountKey) Bytes() []byte {
	return append([]byte{tagAccount}, k.Identity...)
}

// String - the identity
func (k AccountKey) String() string {
	return k.Identity
}

// ParseSignerKey - decode "ed25519:<base58>" or "secp256k1:<base58>"
func ParseSignerKey(s string) (SignerKey, error) {
	parts := strings.SplitN(s, ":", 2)
	if 2 != len(parts) {
		return SignerKey{}, fault.ErrInvalidPublicKey
	}

	k := SignerKey{}
	size := 0
	switch parts[0] {
	case "ed25519":
		k.Curve = ED25519
		size = ed25519.PublicKeySize
	case "secp256k1":
		k.Curve = SECP256K1
		size = secp256k1PublicKeySize
	default:
		return SignerKey{}, fault.ErrInvalidPublicKey
	}

	raw, err := base58.Decode(parts[1])
	if nil != err || size != len(raw) {
		return SignerKey{}, fault.ErrInvalidPublicKey
	}
	k.PublicKey = raw
	return k, nil
}

// Bytes - stored form
func (k SignerKey) Bytes() []byte {
	buffer := make([]byte, 2, 2+len(k.PublicKey))
	buffer[0] = tagSigner
	buffer[1] = byte(k.Curve)
	return append(buffer, k.PublicKey...)
}

// String - curve prefixed base58 form
func (k SignerKey) String() string {
	prefix := "ed25519:"
	if SECP256K1 == k.Curve {
		prefix = "secp256k1:"
	}
	return prefix + base58.Encode(k.PublicKey)
}

// ParseKey - exactly one of an account identity or a signer key
func ParseKey(identity string, signerKey string) (Key, error) {
	switch {
	case "" != identity && "" != signerKey:
		return nil, fault.ErrGranteeRequired
	case "" != identity:
		return NewAccountKey(identity)
	case "" != signerKey:
		return ParseSignerKey(signerKey)
	default:
		return nil, fault.ErrGranteeRequired
	}
}

func unpackKey(buffer []byte) Key {
	if 0 == len(buffer) {
		fault.Panicf("permission: empty key")
	}
	switch buffer[0] {
	case tagAccount:
		return AccountKey{Identity: string(buffer[1:])}
	case tagSigner:
		if len(buffer) < 2 {
			fault.Panicf("permission: truncated signer key: %x", buffer)
		}
		k := SignerKey{
			Curve:     Curve(buffer[1]),
			PublicKey: make([]byte, len(buffer)-2),
		}
		copy(k.PublicKey, buffer[2:])
		return k
	default:
		fault.Panicf("permission: unknown key tag: %x", buffer)
	}
	return nil
}
