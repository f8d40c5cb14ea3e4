// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governancefactory - constructs governance ledgers on behalf
// of a single authorised organization factory
//
// the factory keeps no record of the ledgers it creates, ownership
// passes to the organization that requested each one
package governancefactory

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/counter"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/governance"
)

// Factory - governance ledger constructor
type Factory struct {
	log        *logger.L
	address    address.Address
	daoFactory address.Address
	policy     governance.Policy
	sink       governance.Sink
	nonce      counter.Counter
}

// New - create a factory that only accepts requests from daoFactory
func New(log *logger.L, handle address.Address, daoFactory address.Address, policy governance.Policy, sink governance.Sink) (*Factory, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if handle.IsNull() || daoFactory.IsNull() {
		return nil, fault.ErrInvalidParameters
	}

	log.Infof("governance factory: %s  authorised: %s", handle, daoFactory)

	return &Factory{
		log:        log,
		address:    handle,
		daoFactory: daoFactory,
		policy:     policy,
		sink:       sink,
	}, nil
}

// Address - handle of this factory
func (f *Factory) Address() address.Address {
	return f.address
}

// Authorised - the organization factory allowed to call Create
func (f *Factory) Authorised() address.Address {
	return f.daoFactory
}

// Create - a new ledger with the whole supply at the initial holder
func (f *Factory) Create(caller address.Address, request governance.Request) (*governance.Ledger, error) {
	if caller != f.daoFactory {
		f.log.Warnf("create: rejected caller: %s", caller)
		return nil, fault.ErrNotAuthorised
	}
	if request.InitialHolder.IsNull() || request.DAO.IsNull() {
		return nil, fault.ErrInvalidParameters
	}

	handle := address.Derive(f.address, f.nonce.Increment())

	ledger, err := governance.New(governance.Parameters{
		Address:       handle,
		DAO:           request.DAO,
		Name:          request.Name,
		Symbol:        request.Symbol,
		Decimals:      request.Decimals,
		TotalSupply:   request.TotalSupply,
		InitialHolder: request.InitialHolder,
		Policy:        f.policy,
		Sink:          f.sink,
		Log:           f.log,
	})
	if nil != err {
		return nil, err
	}

	f.log.Infof("created: %s  for dao: %s", handle, request.DAO)
	return ledger, nil
}
