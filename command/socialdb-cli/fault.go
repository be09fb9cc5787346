// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/socialdbd/fault"
)

// common errors - keep in alphabetic order
var (
	ErrMissingAccount = fault.InvalidError("account is required")
	ErrMissingCaller  = fault.InvalidError("caller is required")
	ErrMissingData    = fault.InvalidError("document data is required")
	ErrMissingKeys    = fault.InvalidError("at least one key is required")
	ErrOneGrantee     = fault.InvalidError("give exactly one of grantee or grantee key")
)
