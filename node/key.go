// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/socialdbd/fault"
)

// MaxKeyLength - longest child key
const MaxKeyLength = 256

// ValidateKey - check a child key
//
// ASCII letters, digits and "_.-" only; the empty key is valid
func ValidateKey(key string) error {
	if len(key) > MaxKeyLength {
		return fault.ErrKeyTooLong
	}
	for i := 0; i < len(key); i += 1 {
		switch c := key[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '-':
		default:
			return fault.ErrInvalidKey
		}
	}
	return nil
}
