// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package organization

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/dao"
	"github.com/bitmark-inc/daofactoryd/daofactory"
	"github.com/bitmark-inc/daofactoryd/rpc/amount"
	"github.com/bitmark-inc/daofactoryd/rpc/ratelimit"
)

// Registry - the organization factory as seen by RPC
type Registry interface {
	DeployOrganization(caller address.Address, parameters daofactory.DeployParameters) (*dao.Controller, error)
	Organizations(index uint64) (*dao.Controller, error)
	Count() uint64
	Lookup(handle address.Address) (*dao.Controller, error)
}

// Organization - type for RPC
type Organization struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	DeployLimiter *rate.Limiter
	Registry      Registry
}

// New - create the Organization RPC service
func New(log *logger.L, registry Registry) *Organization {
	return &Organization{
		Log:           log,
		Limiter:       ratelimit.Query.NewLimiter(),
		DeployLimiter: ratelimit.Deploy.NewLimiter(),
		Registry:      registry,
	}
}

// Deploy an organization and its governance token
// -----------------------------------------------

// DeployArguments - amounts are signed so that negative input can be rejected
type DeployArguments struct {
	Caller        address.Address `json:"caller"`
	TotalSupply   int64           `json:"totalSupply"`
	Quorum        int64           `json:"quorum"`
	InitialHolder address.Address `json:"initialHolder"`
	Name          string          `json:"name"`
	SupplyScaling int64           `json:"supplyScaling"`
	Symbol        string          `json:"symbol"`
}

// DeployReply - handles of the new pair
type DeployReply struct {
	Organization address.Address `json:"organization"`
	Governance   address.Address `json:"governance"`
}

// Deploy - create a bound controller and ledger
func (organization *Organization) Deploy(arguments *DeployArguments, reply *DeployReply) error {

	if err := ratelimit.Limit(organization.DeployLimiter); nil != err {
		return err
	}

	organization.Log.Infof("Organization.Deploy: %+v", arguments)

	supply, err := amount.Decode(arguments.TotalSupply)
	if nil != err {
		return err
	}
	quorum, err := amount.Decode(arguments.Quorum)
	if nil != err {
		return err
	}
	scaling, err := amount.Decode(arguments.SupplyScaling)
	if nil != err {
		return err
	}

	parameters := daofactory.DeployParameters{
		TotalSupply:   supply,
		Quorum:        quorum,
		InitialHolder: arguments.InitialHolder,
		Name:          arguments.Name,
		SupplyScaling: scaling,
		Symbol:        arguments.Symbol,
	}

	controller, err := organization.Registry.DeployOrganization(arguments.Caller, parameters)
	if nil != err {
		organization.Log.Errorf("Organization.Deploy: error: %s", err)
		return err
	}

	info := controller.Info()
	reply.Organization = info.Address
	reply.Governance = info.Governance

	return nil
}

// Get an organization by registry position
// ----------------------------------------

// GetArguments - zero based registry index
type GetArguments struct {
	Index uint64 `json:"index,string"`
}

// GetReply - the controller details
type GetReply struct {
	Organization dao.Info `json:"organization"`
}

// Get - registry entry at index
func (organization *Organization) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(organization.Limiter); nil != err {
		return err
	}

	controller, err := organization.Registry.Organizations(arguments.Index)
	if nil != err {
		return err
	}
	reply.Organization = controller.Info()

	return nil
}

// Count the deployed organizations
// --------------------------------

// CountArguments - empty
type CountArguments struct{}

// CountReply - registry size
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - number of deployed organizations
func (organization *Organization) Count(_ *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(organization.Limiter); nil != err {
		return err
	}

	reply.Count = organization.Registry.Count()

	return nil
}

// Governance ledger of an organization
// ------------------------------------

// GovernanceArguments - organization handle
type GovernanceArguments struct {
	Organization address.Address `json:"organization"`
}

// GovernanceReply - ledger handle
type GovernanceReply struct {
	Governance address.Address `json:"governance"`
}

// Governance - the ledger bound to an organization
func (organization *Organization) Governance(arguments *GovernanceArguments, reply *GovernanceReply) error {

	if err := ratelimit.Limit(organization.Limiter); nil != err {
		return err
	}

	controller, err := organization.Registry.Lookup(arguments.Organization)
	if nil != err {
		return err
	}
	ledger, err := controller.Governance()
	if nil != err {
		return err
	}
	reply.Governance = ledger.Address()

	return nil
}

// Voting power of an account
// --------------------------

// VotingPowerArguments - organization and account
type VotingPowerArguments struct {
	Organization address.Address `json:"organization"`
	Account      address.Address `json:"account"`
}

// VotingPowerReply - equal to the account's governance balance
type VotingPowerReply struct {
	VotingPower uint64 `json:"votingPower"`
}

// VotingPower - power of an account within an organization
func (organization *Organization) VotingPower(arguments *VotingPowerArguments, reply *VotingPowerReply) error {

	if err := ratelimit.Limit(organization.Limiter); nil != err {
		return err
	}

	controller, err := organization.Registry.Lookup(arguments.Organization)
	if nil != err {
		return err
	}
	power, err := controller.VotingPowerOf(arguments.Account)
	if nil != err {
		return err
	}
	reply.VotingPower = power

	return nil
}
