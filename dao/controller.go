// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dao - organization controller
//
// a controller owns a write-once reference to one governance ledger
// and reports each account's ledger balance as its voting power
package dao

import (
	"sync"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/governance"
)

// Ledger - the part of a governance ledger a controller needs
type Ledger interface {
	Address() address.Address
	BalanceOf(account address.Address) uint64
}

// Parameters - construction data, quorum and scaling are only carried
type Parameters struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	TotalSupply   uint64 `json:"totalSupply"`
	Quorum        uint64 `json:"quorum"`
	SupplyScaling uint64 `json:"supplyScaling"`
}

// Controller - one organization
type Controller struct {
	address    address.Address
	parameters Parameters

	binding struct {
		sync.RWMutex
		ledger Ledger
	}
}

// Info - static controller data plus its binding
type Info struct {
	Address    address.Address `json:"address"`
	Governance address.Address `json:"governance"`
	Parameters
}

// New - an unbound controller
func New(handle address.Address, parameters Parameters) *Controller {
	return &Controller{
		address:    handle,
		parameters: parameters,
	}
}

// Address - handle of this organization
func (c *Controller) Address() address.Address {
	return c.address
}

// Parameters - construction data
func (c *Controller) Parameters() Parameters {
	return c.parameters
}

// Bind - set the governance ledger, can only be done once
func (c *Controller) Bind(ledger Ledger) error {
	if nil == ledger {
		return fault.ErrInvalidParameters
	}

	c.binding.Lock()
	defer c.binding.Unlock()

	if nil != c.binding.ledger {
		return fault.ErrAlreadyBound
	}
	c.binding.ledger = ledger
	return nil
}

// Governance - the bound ledger
func (c *Controller) Governance() (Ledger, error) {
	c.binding.RLock()
	defer c.binding.RUnlock()

	if nil == c.binding.ledger {
		return nil, fault.ErrUnbound
	}
	return c.binding.ledger, nil
}

// VotingPowerOf - the account's current balance in the bound ledger
func (c *Controller) VotingPowerOf(account address.Address) (uint64, error) {
	ledger, err := c.Governance()
	if nil != err {
		return 0, err
	}
	return ledger.BalanceOf(account), nil
}

// Info - static data, governance is null while unbound
func (c *Controller) Info() Info {
	info := Info{
		Address:    c.address,
		Parameters: c.parameters,
	}
	if ledger, err := c.Governance(); nil == err {
		info.Governance = ledger.Address()
	}
	return info
}

// check that the concrete ledger satisfies the interface
var _ Ledger = (*governance.Ledger)(nil)
