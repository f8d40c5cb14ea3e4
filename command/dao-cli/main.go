// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "dao-cli"
	app.Usage = "deploy and query organizations on a daofactoryd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " daofactoryd RPC `HOST:PORT`",
			EnvVar: "DAO_CLI_CONNECT",
		},
	}

	governanceFlag := cli.StringFlag{
		Name:  "governance, g",
		Value: "",
		Usage: "*governance ledger `ADDRESS`",
	}
	organizationFlag := cli.StringFlag{
		Name:  "organization, o",
		Value: "",
		Usage: "*organization `ADDRESS`",
	}
	amountFlag := cli.Int64Flag{
		Name:  "amount, n",
		Value: 0,
		Usage: "*token `AMOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "deploy",
			Usage:     "deploy an organization with a new governance token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*deploying account `ADDRESS`",
				},
				cli.Int64Flag{
					Name:  "supply, s",
					Value: 0,
					Usage: "*total token supply `AMOUNT`",
				},
				cli.Int64Flag{
					Name:  "quorum, q",
					Value: 0,
					Usage: " quorum `VALUE`",
				},
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: " initial holder `ADDRESS` [default: caller]",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*organization `NAME`",
				},
				cli.Int64Flag{
					Name:  "scaling, x",
					Value: 1,
					Usage: " supply scaling `VALUE`",
				},
				cli.StringFlag{
					Name:  "symbol, S",
					Value: "",
					Usage: "*token `SYMBOL`",
				},
			},
			Action: runDeploy,
		},
		{
			Name:      "organization",
			Usage:     "show an organization by registry index, or the registry size",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "index, i",
					Value: "",
					Usage: " registry `INDEX` [default: show count]",
				},
			},
			Action: runOrganization,
		},
		{
			Name:      "governance",
			Usage:     "show the governance ledger of an organization",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{organizationFlag},
			Action:    runGovernance,
		},
		{
			Name:      "balance",
			Usage:     "show the governance balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				governanceFlag,
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "voting-power",
			Usage:     "show the voting power of an account in an organization",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				organizationFlag,
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runVotingPower,
		},
		{
			Name:      "transfer",
			Usage:     "transfer governance tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				governanceFlag,
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sending `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				amountFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "allow a spender to transfer from an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				governanceFlag,
				cli.StringFlag{
					Name:  "owner, O",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
				amountFlag,
			},
			Action: runApprove,
		},
		{
			Name:      "allowance",
			Usage:     "show the remaining allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				governanceFlag,
				cli.StringFlag{
					Name:  "owner, O",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer governance tokens using an allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				governanceFlag,
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				amountFlag,
			},
			Action: runTransferFrom,
		},
		{
			Name:   "info",
			Usage:  "display daofactoryd info",
			Action: runInfo,
		},
		{
			Name:      "events",
			Usage:     "list journal events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first event `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of events `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display dao-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
