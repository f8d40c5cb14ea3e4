// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/governance"
	"github.com/bitmark-inc/daofactoryd/rpc/amount"
	"github.com/bitmark-inc/daofactoryd/rpc/ratelimit"
)

// Ledgers - find a governance ledger by its handle
type Ledgers interface {
	LookupGovernance(handle address.Address) (*governance.Ledger, error)
}

// Governance - type for RPC
type Governance struct {
	Log             *logger.L
	Limiter         *rate.Limiter
	TransferLimiter *rate.Limiter
	Ledgers         Ledgers
}

// New - create the Governance RPC service
func New(log *logger.L, ledgers Ledgers) *Governance {
	return &Governance{
		Log:             log,
		Limiter:         ratelimit.Query.NewLimiter(),
		TransferLimiter: ratelimit.Transfer.NewLimiter(),
		Ledgers:         ledgers,
	}
}

// Balance of an account
// ---------------------

// BalanceArguments - ledger and account
type BalanceArguments struct {
	Governance address.Address `json:"governance"`
	Account    address.Address `json:"account"`
}

// BalanceReply - zero for unknown accounts
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - current balance of an account
func (g *Governance) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}
	reply.Balance = ledger.BalanceOf(arguments.Account)

	return nil
}

// Transfer between accounts
// -------------------------

// TransferArguments - amount is signed so negatives can be rejected
type TransferArguments struct {
	Governance address.Address `json:"governance"`
	From       address.Address `json:"from"`
	To         address.Address `json:"to"`
	Amount     int64           `json:"amount"`
}

// SuccessReply - result of any state changing call
type SuccessReply struct {
	Success bool `json:"success"`
}

// Transfer - move tokens from the caller to a recipient
func (g *Governance) Transfer(arguments *TransferArguments, reply *SuccessReply) error {

	if err := ratelimit.Limit(g.TransferLimiter); nil != err {
		return err
	}

	g.Log.Infof("Governance.Transfer: %+v", arguments)

	value, err := amount.Decode(arguments.Amount)
	if nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}

	ok, err := ledger.Transfer(arguments.From, arguments.To, value)
	if nil != err {
		g.Log.Warnf("Governance.Transfer: error: %s", err)
		return err
	}
	reply.Success = ok

	return nil
}

// Approve a spender
// -----------------

// ApproveArguments - allowance to set
type ApproveArguments struct {
	Governance address.Address `json:"governance"`
	Owner      address.Address `json:"owner"`
	Spender    address.Address `json:"spender"`
	Amount     int64           `json:"amount"`
}

// Approve - set the amount a spender may move from the owner
func (g *Governance) Approve(arguments *ApproveArguments, reply *SuccessReply) error {

	if err := ratelimit.Limit(g.TransferLimiter); nil != err {
		return err
	}

	g.Log.Infof("Governance.Approve: %+v", arguments)

	value, err := amount.Decode(arguments.Amount)
	if nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}

	ok, err := ledger.Approve(arguments.Owner, arguments.Spender, value)
	if nil != err {
		return err
	}
	reply.Success = ok

	return nil
}

// Allowance remaining
// -------------------

// AllowanceArguments - owner and spender pair
type AllowanceArguments struct {
	Governance address.Address `json:"governance"`
	Owner      address.Address `json:"owner"`
	Spender    address.Address `json:"spender"`
}

// AllowanceReply - remaining amount
type AllowanceReply struct {
	Allowance uint64 `json:"allowance"`
}

// Allowance - what a spender may still move
func (g *Governance) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {

	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}
	reply.Allowance = ledger.Allowance(arguments.Owner, arguments.Spender)

	return nil
}

// Transfer on behalf of an owner
// ------------------------------

// TransferFromArguments - spender moves from an owner to a recipient
type TransferFromArguments struct {
	Governance address.Address `json:"governance"`
	Spender    address.Address `json:"spender"`
	From       address.Address `json:"from"`
	To         address.Address `json:"to"`
	Amount     int64           `json:"amount"`
}

// TransferFrom - spend part of an allowance
func (g *Governance) TransferFrom(arguments *TransferFromArguments, reply *SuccessReply) error {

	if err := ratelimit.Limit(g.TransferLimiter); nil != err {
		return err
	}

	g.Log.Infof("Governance.TransferFrom: %+v", arguments)

	value, err := amount.Decode(arguments.Amount)
	if nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}

	ok, err := ledger.TransferFrom(arguments.Spender, arguments.From, arguments.To, value)
	if nil != err {
		g.Log.Warnf("Governance.TransferFrom: error: %s", err)
		return err
	}
	reply.Success = ok

	return nil
}

// Info about a ledger
// -------------------

// InfoArguments - ledger handle
type InfoArguments struct {
	Governance address.Address `json:"governance"`
}

// InfoReply - static ledger data and its holders
type InfoReply struct {
	governance.Info
	Holders []governance.Holding `json:"holders"`
}

// Info - describe a ledger
func (g *Governance) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	ledger, err := g.Ledgers.LookupGovernance(arguments.Governance)
	if nil != err {
		return err
	}
	reply.Info = ledger.Info()
	reply.Holders = ledger.Holders()

	return nil
}
