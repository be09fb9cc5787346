// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// limits on an account identity
const (
	minIdentityLength = 2
	maxIdentityLength = 64
)

// ValidIdentity - check an account identity
//
// lower case letters and digits in parts separated by one of "-_.",
// no separator at either end and never two in a row
func ValidIdentity(identity string) bool {
	if len(identity) < minIdentityLength || len(identity) > maxIdentityLength {
		return false
	}

	lastWasSeparator := true
	for i := 0; i < len(identity); i += 1 {
		switch c := identity[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastWasSeparator = false
		case c == '-', c == '_', c == '.':
			if lastWasSeparator {
				return false
			}
			lastWasSeparator = true
		default:
			return false
		}
	}
	return !lastWasSeparator
}
