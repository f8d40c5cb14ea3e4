// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package daofactory

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/dao"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/governance"
)

// Creator - a governance factory as seen by the organization factory
type Creator interface {
	Address() address.Address
	Create(caller address.Address, request governance.Request) (*governance.Ledger, error)
}

// Sink - receiver of deployment events
type Sink interface {
	Send(command string, parameters ...[]byte)
}

// DeployParameters - everything needed to create one organization
//
// a null InitialHolder means the caller receives the supply
type DeployParameters struct {
	TotalSupply   uint64          `json:"totalSupply"`
	Quorum        uint64          `json:"quorum"`
	InitialHolder address.Address `json:"initialHolder"`
	Name          string          `json:"name"`
	SupplyScaling uint64          `json:"supplyScaling"`
	Symbol        string          `json:"symbol"`
}

// Factory - organization factory and its registry
type Factory struct {
	sync.RWMutex

	log     *logger.L
	address address.Address
	sink    Sink

	// write once
	governanceFactory Creator

	// registry, only appended to by DeployOrganization
	nonce         uint64
	organizations []entry
	byAddress     map[address.Address]int
	byGovernance  map[address.Address]int
}

type entry struct {
	controller *dao.Controller
	ledger     *governance.Ledger
}

// New - an unconfigured organization factory
func New(log *logger.L, handle address.Address, sink Sink) (*Factory, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if handle.IsNull() {
		return nil, fault.ErrInvalidParameters
	}

	log.Infof("organization factory: %s", handle)

	return &Factory{
		log:           log,
		address:       handle,
		sink:          sink,
		organizations: make([]entry, 0, 16),
		byAddress:     make(map[address.Address]int),
		byGovernance:  make(map[address.Address]int),
	}, nil
}

// Address - handle of this factory
func (f *Factory) Address() address.Address {
	return f.address
}

// SetGovernanceFactory - one-shot authorization binding
func (f *Factory) SetGovernanceFactory(creator Creator) error {
	if nil == creator {
		return fault.ErrInvalidParameters
	}

	f.Lock()
	defer f.Unlock()

	if nil != f.governanceFactory {
		return fault.ErrAlreadyConfigured
	}
	f.governanceFactory = creator

	f.log.Infof("governance factory: %s", creator.Address())
	return nil
}

// IsConfigured - true once a governance factory is set
func (f *Factory) IsConfigured() bool {
	f.RLock()
	defer f.RUnlock()
	return nil != f.governanceFactory
}

// DeployOrganization - create a ledger and a controller bound to it,
// then register the controller
//
// the registry lock is held throughout so no partially built
// organization is ever visible
func (f *Factory) DeployOrganization(caller address.Address, parameters DeployParameters) (*dao.Controller, error) {
	if caller.IsNull() {
		return nil, fault.ErrInvalidParameters
	}

	f.Lock()
	defer f.Unlock()

	if nil == f.governanceFactory {
		return nil, fault.ErrNotConfigured
	}

	holder := parameters.InitialHolder
	if holder.IsNull() {
		holder = caller
	}

	nonce := f.nonce + 1
	handle := address.Derive(f.address, nonce)

	ledger, err := f.governanceFactory.Create(f.address, governance.Request{
		DAO:           handle,
		Name:          parameters.Name,
		Symbol:        parameters.Symbol,
		TotalSupply:   parameters.TotalSupply,
		InitialHolder: holder,
	})
	if nil != err {
		f.log.Errorf("deploy: %q  governance create error: %s", parameters.Name, err)
		return nil, err
	}

	controller := dao.New(handle, dao.Parameters{
		Name:          parameters.Name,
		Symbol:        parameters.Symbol,
		TotalSupply:   parameters.TotalSupply,
		Quorum:        parameters.Quorum,
		SupplyScaling: parameters.SupplyScaling,
	})
	// a fresh controller only refuses a ledger the creator failed to build
	if err := controller.Bind(ledger); nil != err {
		fault.Criticalf("deploy: %s  bind error: %s", handle, err)
		return nil, err
	}

	ledgerHandle := ledger.Address()

	index := len(f.organizations)
	f.nonce = nonce
	f.organizations = append(f.organizations, entry{controller: controller, ledger: ledger})
	f.byAddress[handle] = index
	f.byGovernance[ledgerHandle] = index

	if nil != f.sink {
		f.sink.Send(EventDeploy, f.address[:], handle[:], ledgerHandle[:], caller[:], governance.PackAmount(parameters.TotalSupply))
	}

	f.log.Infof("deployed[%d]: %s  governance: %s  holder: %s", index, handle, ledgerHandle, holder)
	return controller, nil
}

// Organizations - registry lookup by creation order
func (f *Factory) Organizations(index uint64) (*dao.Controller, error) {
	f.RLock()
	defer f.RUnlock()

	if index >= uint64(len(f.organizations)) {
		return nil, fault.ErrIndexOutOfRange
	}
	return f.organizations[index].controller, nil
}

// Count - number of registered organizations
func (f *Factory) Count() uint64 {
	f.RLock()
	defer f.RUnlock()
	return uint64(len(f.organizations))
}

// Lookup - organization by its handle
func (f *Factory) Lookup(handle address.Address) (*dao.Controller, error) {
	f.RLock()
	defer f.RUnlock()

	index, ok := f.byAddress[handle]
	if !ok {
		return nil, fault.ErrOrganizationNotFound
	}
	return f.organizations[index].controller, nil
}

// LookupGovernance - ledger by its handle, only ledgers bound to a
// registered organization can be found
func (f *Factory) LookupGovernance(handle address.Address) (*governance.Ledger, error) {
	f.RLock()
	defer f.RUnlock()

	index, ok := f.byGovernance[handle]
	if !ok {
		return nil, fault.ErrGovernanceNotFound
	}
	return f.organizations[index].ledger, nil
}
