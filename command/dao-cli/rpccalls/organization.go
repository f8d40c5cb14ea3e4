// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/rpc/organization"
)

// DeployData - the parameters for a deploy request
type DeployData struct {
	Caller        address.Address
	TotalSupply   int64
	Quorum        int64
	InitialHolder address.Address
	Name          string
	SupplyScaling int64
	Symbol        string
}

// Deploy - create an organization and its governance ledger
func (c *Client) Deploy(data *DeployData) (*organization.DeployReply, error) {
	arguments := organization.DeployArguments{
		Caller:        data.Caller,
		TotalSupply:   data.TotalSupply,
		Quorum:        data.Quorum,
		InitialHolder: data.InitialHolder,
		Name:          data.Name,
		SupplyScaling: data.SupplyScaling,
		Symbol:        data.Symbol,
	}

	reply := &organization.DeployReply{}
	if err := c.call("Organization.Deploy", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetOrganization - registry entry by index
func (c *Client) GetOrganization(index uint64) (*organization.GetReply, error) {
	reply := &organization.GetReply{}
	if err := c.call("Organization.Get", organization.GetArguments{Index: index}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CountOrganizations - size of the registry
func (c *Client) CountOrganizations() (*organization.CountReply, error) {
	reply := &organization.CountReply{}
	if err := c.call("Organization.Count", organization.CountArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GovernanceOf - ledger bound to an organization
func (c *Client) GovernanceOf(org address.Address) (*organization.GovernanceReply, error) {
	reply := &organization.GovernanceReply{}
	if err := c.call("Organization.Governance", organization.GovernanceArguments{Organization: org}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// VotingPower - power of an account in an organization
func (c *Client) VotingPower(org address.Address, account address.Address) (*organization.VotingPowerReply, error) {
	arguments := organization.VotingPowerArguments{
		Organization: org,
		Account:      account,
	}
	reply := &organization.VotingPowerReply{}
	if err := c.call("Organization.VotingPower", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
