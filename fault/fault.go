// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrGrantOutsideOwnSubtree = AuthorisationError("permission can only be granted inside the granter's own subtree")
	ErrPermissionDenied       = AuthorisationError("permission denied")

	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")

	ErrAccountNotRegistered    = InvalidError("account is not registered")
	ErrCannotReturnToGenesis   = InvalidError("status cannot return to genesis")
	ErrCannotUnregister        = InvalidError("account cannot be unregistered")
	ErrConfirmationRequired    = InvalidError("requires an attached deposit of exactly one unit")
	ErrEmptyKeyValueNotString  = InvalidError("the empty key value must be a string or null")
	ErrEmptyPath               = InvalidError("path is empty")
	ErrGranteeRequired         = InvalidError("exactly one of grantee account or public key is required")
	ErrInvalidAccountId        = InvalidError("account id is invalid")
	ErrInvalidAmount           = InvalidError("amount is invalid")
	ErrInvalidConfiguration    = InvalidError("configuration must return a table")
	ErrInvalidCount            = InvalidError("count is invalid")
	ErrInvalidCursor           = InvalidError("cursor is invalid")
	ErrInvalidDocument         = InvalidError("document must be an object")
	ErrInvalidIpAddress        = InvalidError("ip address is invalid")
	ErrInvalidKey              = InvalidError("key is invalid")
	ErrInvalidLoggerChannel    = InvalidError("logger channel is invalid")
	ErrInvalidPublicKey        = InvalidError("public key is invalid")
	ErrInvalidStatus           = InvalidError("status is invalid")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidValue            = InvalidError("value is not a string, null or an object")
	ErrKeyTooLong              = InvalidError("key is too long")
	ErrMaxBytesNotIncreased    = InvalidError("max bytes must be larger than the current max bytes")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrMissingPaths            = InvalidError("no paths given")
	ErrRecursiveMatchInKeys    = InvalidError("recursive match is not allowed in keys")
	ErrRecursiveMatchNotLast   = InvalidError("recursive match must be the last path segment")
	ErrSharedStorageOwnAccount = InvalidError("storage cannot be shared with the pool owner")
	ErrWildcardInPath          = InvalidError("wildcard is not allowed in a permission path")

	ErrAccountNotFound = NotFoundError("account not found")
	ErrNodeNotFound    = NotFoundError("node not found")
	ErrNotInitialised  = NotFoundError("not initialised")
	ErrNotFoundDataDir = NotFoundError("data directory not found")
	ErrPoolNotFound    = NotFoundError("shared storage pool not found")

	ErrNoTransaction    = ProcessError("no transaction in progress")
	ErrNotLive          = ProcessError("the store is not live")
	ErrRateLimiting     = ProcessError("rate limiting")
	ErrTransactionInUse = ProcessError("transaction already in use")

	ErrBalanceOverflow         = ResourceError("balance overflow")
	ErrDepositRequired         = ResourceError("a positive attached deposit is required")
	ErrExceedsAvailableBalance = ResourceError("amount exceeds the available balance")
	ErrInsufficientDeposit     = ResourceError("attached deposit is less than the minimum storage balance")
	ErrInsufficientPoolDeposit = ResourceError("attached deposit is less than the minimum shared storage balance")
	ErrInsufficientStorage     = ResourceError("not enough storage balance")
	ErrMaxBytesTooSmall        = ResourceError("max bytes is too small")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InternalError) Error() string      { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ResourceError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInternal(e error) bool      { _, ok := e.(InternalError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool      { _, ok := e.(ResourceError); return ok }
