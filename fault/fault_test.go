// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/fixtures"
)

// test that each error belongs to exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		balance  bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		rng      bool
		state    bool
	}{
		{fault.ErrInsufficientBalance, true, false, false, false, false, false, false},
		{fault.ErrInsufficientAllowance, true, false, false, false, false, false, false},
		{fault.ErrAlreadyBound, false, true, false, false, false, false, false},
		{fault.ErrAlreadyConfigured, false, true, false, false, false, false, false},
		{fault.ErrInvalidParameters, false, false, true, false, false, false, false},
		{fault.ErrInvalidRecipient, false, false, true, false, false, false, false},
		{fault.ErrOrganizationNotFound, false, false, false, true, false, false, false},
		{fault.ErrNotAuthorised, false, false, false, false, true, false, false},
		{fault.ErrIndexOutOfRange, false, false, false, false, false, true, false},
		{fault.ErrNotConfigured, false, false, false, false, false, false, true},
		{fault.ErrUnbound, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrBalance(err) != e.balance {
			t.Errorf("%d: expected 'balance' == %v for err = %v", i, e.balance, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRange(err) != e.rng {
			t.Errorf("%d: expected 'range' == %v for err = %v", i, e.rng, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

// errors are single instances so can be compared directly
func TestComparison(t *testing.T) {
	var err error = fault.ErrInsufficientBalance
	if err != fault.ErrInsufficientBalance {
		t.Errorf("error instance did not compare equal: %v", err)
	}
	if err == fault.ErrInsufficientAllowance {
		t.Errorf("different errors compared equal: %v", err)
	}
	if "insufficient balance" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestInitialiseTwice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fault.Initialise()
	assert.Nil(t, err, "first initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestPanicf(t *testing.T) {
	// uninitialised: message goes to stdout, panic still happens
	assert.PanicsWithValue(t, "broken: 42", func() {
		fault.Panicf("broken: %d", 42)
	}, "wrong panic value")

	assert.NotPanics(t, func() {
		fault.Criticalf("logged: %d", 42)
	}, "Criticalf must not panic")
}
