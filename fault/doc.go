// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors are grouped into classes:
//
//   InvalidError        - malformed request: bad key, bad path, bad document shape
//   AuthorisationError  - write outside any grant and without fresh payment
//   ResourceError       - deposits and storage balances that do not cover the request
//   NotFoundError       - inspection of something that does not exist
//   ProcessError        - host plumbing: transactions, rate limits, status
//   ExistsError         - setup files and double initialisation
//
// InternalError is never returned, it is the value of the panic raised
// by Panicf when a designed-impossible state is reached.
package fault
