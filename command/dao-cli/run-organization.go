// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daofactoryd/command/dao-cli/rpccalls"
)

func runDeploy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAddress(c, "caller")
	if nil != err {
		return err
	}
	holder, err := checkOptionalAddress(c, "holder")
	if nil != err {
		return err
	}
	name, err := checkName(c, "name")
	if nil != err {
		return err
	}
	symbol, err := checkName(c, "symbol")
	if nil != err {
		return err
	}

	data := &rpccalls.DeployData{
		Caller:        caller,
		TotalSupply:   c.Int64("supply"),
		Quorum:        c.Int64("quorum"),
		InitialHolder: holder,
		Name:          name,
		SupplyScaling: c.Int64("scaling"),
		Symbol:        symbol,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "name: %q  symbol: %q\n", name, symbol)
		fmt.Fprintf(m.e, "supply: %d\n", data.TotalSupply)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deploy(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runOrganization(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	index := c.String("index")

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" == index {
		response, err := client.CountOrganizations()
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	n, err := strconv.ParseUint(index, 10, 64)
	if nil != err {
		return fmt.Errorf("index: %q  error: %s", index, err)
	}

	response, err := client.GetOrganization(n)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runGovernance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	org, err := checkAddress(c, "organization")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	bound, err := client.GovernanceOf(org)
	if nil != err {
		return err
	}

	response, err := client.GovernanceInfo(bound.Governance)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runVotingPower(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	org, err := checkAddress(c, "organization")
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

	response, err := client.VotingPower(org, account)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
