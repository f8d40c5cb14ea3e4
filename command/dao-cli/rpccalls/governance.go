// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/rpc/governance"
)

// Balance - balance of an account on a ledger
func (c *Client) Balance(ledger address.Address, account address.Address) (*governance.BalanceReply, error) {
	arguments := governance.BalanceArguments{
		Governance: ledger,
		Account:    account,
	}
	reply := &governance.BalanceReply{}
	if err := c.call("Governance.Balance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move an amount between accounts
func (c *Client) Transfer(arguments *governance.TransferArguments) (*governance.SuccessReply, error) {
	reply := &governance.SuccessReply{}
	if err := c.call("Governance.Transfer", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Approve - set a spender allowance
func (c *Client) Approve(arguments *governance.ApproveArguments) (*governance.SuccessReply, error) {
	reply := &governance.SuccessReply{}
	if err := c.call("Governance.Approve", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Allowance - remaining allowance
func (c *Client) Allowance(arguments *governance.AllowanceArguments) (*governance.AllowanceReply, error) {
	reply := &governance.AllowanceReply{}
	if err := c.call("Governance.Allowance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferFrom - spend an allowance
func (c *Client) TransferFrom(arguments *governance.TransferFromArguments) (*governance.SuccessReply, error) {
	reply := &governance.SuccessReply{}
	if err := c.call("Governance.TransferFrom", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GovernanceInfo - static ledger data and holders
func (c *Client) GovernanceInfo(ledger address.Address) (*governance.InfoReply, error) {
	reply := &governance.InfoReply{}
	if err := c.call("Governance.Info", governance.InfoArguments{Governance: ledger}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
