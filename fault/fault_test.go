// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialdbd/fault"
)

var (
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrExistsOne        = fault.ExistsError("exists one")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrResourceOne      = fault.ResourceError("resource one")
	ErrResourceTwo      = fault.ResourceError("resource two")
)

// test that the various classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		resource      bool
	}{
		{ErrAuthorisationOne, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrResourceOne, false, false, false, false, false, true},
		{ErrResourceTwo, false, false, false, false, false, true},
		{fault.ErrPermissionDenied, true, false, false, false, false, false},
		{fault.ErrInsufficientStorage, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.authorisation, fault.IsErrAuthorisation(err), "%d: authorisation for: %v", i, err)
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists for: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid for: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found for: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process for: %v", i, err)
		assert.Equal(t, e.resource, fault.IsErrResource(err), "%d: resource for: %v", i, err)
		assert.False(t, fault.IsErrInternal(err), "%d: internal for: %v", i, err)
	}
}

func TestPanicfRaisesInternalError(t *testing.T) {
	assert.PanicsWithValue(t, fault.InternalError("node 7 is missing"), func() {
		fault.Panicf("node %d is missing", 7)
	})
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("nothing", nil)
	})
	assert.Panics(t, func() {
		fault.PanicIfError("read", ErrProcessOne)
	})
}
