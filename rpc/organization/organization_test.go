// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package organization_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/dao"
	"github.com/bitmark-inc/daofactoryd/daofactory"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/fixtures"
	"github.com/bitmark-inc/daofactoryd/governance"
	"github.com/bitmark-inc/daofactoryd/rpc/mocks"
	"github.com/bitmark-inc/daofactoryd/rpc/organization"
)

var (
	organizationHandle = address.Derive(fixtures.Operator, 1)
	governanceHandle   = address.Derive(fixtures.Operator, 2)
)

func boundController(t *testing.T) *dao.Controller {
	c := dao.New(organizationHandle, dao.Parameters{
		Name:          "OuterCircle",
		Symbol:        "OC",
		TotalSupply:   1000000,
		Quorum:        51,
		SupplyScaling: 1,
	})
	l, err := governance.New(governance.Parameters{
		Address:       governanceHandle,
		DAO:           organizationHandle,
		Name:          "OuterCircle",
		Symbol:        "OC",
		TotalSupply:   1000000,
		InitialHolder: fixtures.Holder0,
	})
	assert.Nil(t, err, "ledger")
	assert.Nil(t, c.Bind(l), "bind")
	return c
}

func TestDeploy(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	expected := daofactory.DeployParameters{
		TotalSupply:   1000000,
		Quorum:        51,
		InitialHolder: fixtures.Holder0,
		Name:          "OuterCircle",
		SupplyScaling: 1,
		Symbol:        "OC",
	}
	r.EXPECT().DeployOrganization(fixtures.Operator, expected).Return(boundController(t), nil).Times(1)

	arg := organization.DeployArguments{
		Caller:        fixtures.Operator,
		TotalSupply:   1000000,
		Quorum:        51,
		InitialHolder: fixtures.Holder0,
		Name:          "OuterCircle",
		SupplyScaling: 1,
		Symbol:        "OC",
	}
	var reply organization.DeployReply
	err := o.Deploy(&arg, &reply)
	assert.Nil(t, err, "wrong Deploy")
	assert.Equal(t, organizationHandle, reply.Organization, "wrong organization")
	assert.Equal(t, governanceHandle, reply.Governance, "wrong governance")
}

func TestDeployNegativeAmounts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	args := []organization.DeployArguments{
		{Caller: fixtures.Operator, TotalSupply: -1},
		{Caller: fixtures.Operator, TotalSupply: 1, Quorum: -1},
		{Caller: fixtures.Operator, TotalSupply: 1, SupplyScaling: -5},
	}
	for i, arg := range args {
		var reply organization.DeployReply
		err := o.Deploy(&arg, &reply)
		assert.Equal(t, fault.ErrInvalidParameters, err, "%d: wrong error", i)
	}
}

func TestDeployNotConfigured(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().DeployOrganization(gomock.Any(), gomock.Any()).Return(nil, fault.ErrNotConfigured).Times(1)

	arg := organization.DeployArguments{Caller: fixtures.Operator, TotalSupply: 10}
	var reply organization.DeployReply
	err := o.Deploy(&arg, &reply)
	assert.Equal(t, fault.ErrNotConfigured, err, "wrong error")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Organizations(uint64(0)).Return(boundController(t), nil).Times(1)
	r.EXPECT().Organizations(uint64(1)).Return(nil, fault.ErrIndexOutOfRange).Times(1)

	var reply organization.GetReply
	err := o.Get(&organization.GetArguments{Index: 0}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, organizationHandle, reply.Organization.Address, "wrong organization")
	assert.Equal(t, governanceHandle, reply.Organization.Governance, "wrong governance")
	assert.Equal(t, uint64(51), reply.Organization.Quorum, "wrong quorum")

	err = o.Get(&organization.GetArguments{Index: 1}, &reply)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "wrong error")
}

func TestCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Count().Return(uint64(3)).Times(1)

	var reply organization.CountReply
	err := o.Count(&organization.CountArguments{}, &reply)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, uint64(3), reply.Count, "wrong count")
}

func TestGovernance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Lookup(organizationHandle).Return(boundController(t), nil).Times(1)
	r.EXPECT().Lookup(fixtures.Holder2).Return(nil, fault.ErrOrganizationNotFound).Times(1)

	var reply organization.GovernanceReply
	err := o.Governance(&organization.GovernanceArguments{Organization: organizationHandle}, &reply)
	assert.Nil(t, err, "wrong Governance")
	assert.Equal(t, governanceHandle, reply.Governance, "wrong governance")

	err = o.Governance(&organization.GovernanceArguments{Organization: fixtures.Holder2}, &reply)
	assert.Equal(t, fault.ErrOrganizationNotFound, err, "wrong error")
}

func TestVotingPower(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)

	unbound := dao.New(fixtures.Holder2, dao.Parameters{})

	r.EXPECT().Lookup(organizationHandle).Return(boundController(t), nil).Times(2)
	r.EXPECT().Lookup(fixtures.Holder2).Return(unbound, nil).Times(1)

	var reply organization.VotingPowerReply
	err := o.VotingPower(&organization.VotingPowerArguments{
		Organization: organizationHandle,
		Account:      fixtures.Holder0,
	}, &reply)
	assert.Nil(t, err, "wrong VotingPower")
	assert.Equal(t, uint64(1000000), reply.VotingPower, "wrong holder power")

	err = o.VotingPower(&organization.VotingPowerArguments{
		Organization: organizationHandle,
		Account:      fixtures.Holder1,
	}, &reply)
	assert.Nil(t, err, "wrong VotingPower")
	assert.Equal(t, uint64(0), reply.VotingPower, "wrong stranger power")

	err = o.VotingPower(&organization.VotingPowerArguments{
		Organization: fixtures.Holder2,
		Account:      fixtures.Holder0,
	}, &reply)
	assert.Equal(t, fault.ErrUnbound, err, "wrong error")
}

func TestDeployLimitedSeparately(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	o := organization.New(logger.New(fixtures.LogCategory), r)
	o.DeployLimiter = rate.NewLimiter(1, 0)

	r.EXPECT().DeployOrganization(gomock.Any(), gomock.Any()).Times(0)
	r.EXPECT().Count().Return(uint64(0)).Times(1)

	arg := organization.DeployArguments{Caller: fixtures.Operator, TotalSupply: 10}
	var reply organization.DeployReply
	err := o.Deploy(&arg, &reply)
	assert.Equal(t, fault.ErrRateLimiting, err, "wrong error")

	var count organization.CountReply
	err = o.Count(&organization.CountArguments{}, &count)
	assert.Nil(t, err, "queries share no budget with deploys")
}
