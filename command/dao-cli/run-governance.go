// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/daofactoryd/command/dao-cli/rpccalls"
	"github.com/bitmark-inc/daofactoryd/rpc/governance"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkAddress(c, "governance")
	if nil != err {
		return err
	}
	account, err := checkAddress(c, "account")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(ledger, account)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkAddress(c, "governance")
	if nil != err {
		return err
	}
	from, err := checkAddress(c, "from")
	if nil != err {
		return err
	}

	// the null recipient is refused by the ledger with its own error
	to, err := checkOptionalAddress(c, "to")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&governance.TransferArguments{
		Governance: ledger,
		From:       from,
		To:         to,
		Amount:     c.Int64("amount"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkAddress(c, "governance")
	if nil != err {
		return err
	}
	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}
	spender, err := checkAddress(c, "spender")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(&governance.ApproveArguments{
		Governance: ledger,
		Owner:      owner,
		Spender:    spender,
		Amount:     c.Int64("amount"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkAddress(c, "governance")
	if nil != err {
		return err
	}
	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}
	spender, err := checkAddress(c, "spender")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Allowance(&governance.AllowanceArguments{
		Governance: ledger,
		Owner:      owner,
		Spender:    spender,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runTransferFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkAddress(c, "governance")
	if nil != err {
		return err
	}
	spender, err := checkAddress(c, "spender")
	if nil != err {
		return err
	}
	from, err := checkAddress(c, "from")
	if nil != err {
		return err
	}
	to, err := checkOptionalAddress(c, "to")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferFrom(&governance.TransferFromArguments{
		Governance: ledger,
		Spender:    spender,
		From:       from,
		To:         to,
		Amount:     c.Int64("amount"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
