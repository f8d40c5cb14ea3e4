// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governancefactory_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/fixtures"
	"github.com/bitmark-inc/daofactoryd/governance"
	"github.com/bitmark-inc/daofactoryd/governancefactory"
)

var (
	daoFactory = address.Derive(fixtures.Operator, 1)
	self       = address.Derive(fixtures.Operator, 2)
	dao        = address.Derive(daoFactory, 1)
)

func newFactory(t *testing.T) *governancefactory.Factory {
	f, err := governancefactory.New(logger.New(fixtures.LogCategory), self, daoFactory, governance.Policy{}, nil)
	assert.Nil(t, err, "new factory")
	return f
}

func TestNewInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := governancefactory.New(nil, self, daoFactory, governance.Policy{}, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	_, err = governancefactory.New(logger.New(fixtures.LogCategory), self, address.Null, governance.Policy{}, nil)
	assert.Equal(t, fault.ErrInvalidParameters, err, "null organization factory")
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f := newFactory(t)
	assert.Equal(t, self, f.Address(), "wrong address")
	assert.Equal(t, daoFactory, f.Authorised(), "wrong authorised factory")

	request := governance.Request{
		DAO:           dao,
		Name:          "OuterCircle DAO",
		Symbol:        "OC",
		TotalSupply:   1000000,
		InitialHolder: fixtures.Holder0,
	}

	l1, err := f.Create(daoFactory, request)
	assert.Nil(t, err, "create")
	assert.Equal(t, dao, l1.DAO(), "wrong dao back reference")
	assert.Equal(t, uint64(1000000), l1.BalanceOf(fixtures.Holder0), "supply not at holder")
	assert.Equal(t, uint64(1000000), l1.TotalSupply(), "wrong supply")

	l2, err := f.Create(daoFactory, request)
	assert.Nil(t, err, "second create")
	assert.NotEqual(t, l1.Address(), l2.Address(), "ledger handles not unique")
}

func TestCreateUnauthorised(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f := newFactory(t)
	_, err := f.Create(fixtures.Holder0, governance.Request{
		DAO:           dao,
		TotalSupply:   1,
		InitialHolder: fixtures.Holder0,
	})
	assert.Equal(t, fault.ErrNotAuthorised, err, "unauthorised caller accepted")
}

func TestCreateInvalidParameters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f := newFactory(t)
	_, err := f.Create(daoFactory, governance.Request{
		DAO:         dao,
		TotalSupply: 1,
	})
	assert.Equal(t, fault.ErrInvalidParameters, err, "null holder accepted")

	_, err = f.Create(daoFactory, governance.Request{
		TotalSupply:   1,
		InitialHolder: fixtures.Holder0,
	})
	assert.Equal(t, fault.ErrInvalidParameters, err, "null dao accepted")
}
