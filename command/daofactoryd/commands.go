// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/journal"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "handles", "dump-journal", "dump":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  handles                             - display the factory handles for the operator\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-journal [S [N]]       (dump)   - dump N events from sequence S as JSON to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	case "handles":
		daoHandle, governanceHandle := factoryHandles(options.operator)
		printJSON(map[string]string{
			"operator":          options.operator.String(),
			"daoFactory":        daoHandle.String(),
			"governanceFactory": governanceHandle.String(),
		})

	case "dump-journal", "dump":
		start := uint64(1)
		count := journal.MaximumFetch
		if len(arguments) > 0 {
			n, err := strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start sequence: %s", err)
			}
			start = n
		}
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
			count = n
		}
		dumpJournal(options, start, count)

	default: // unknown commands fall through to main
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// print stored events
//
// a running daemon holds the database lock so stop it first
func dumpJournal(options *Configuration, start uint64, count int) {

	if err := logger.Initialise(options.Logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	j, err := journal.Open(logger.New("journal"), options.Journal.Name, true)
	if nil != err {
		exitwithstatus.Message("journal: %q  open error: %s", options.Journal.Name, err)
	}
	defer j.Close()

	type event struct {
		journal.Record
		Detail interface{} `json:"detail"`
	}

	for count > 0 {
		n := count
		if n > journal.MaximumFetch {
			n = journal.MaximumFetch
		}
		records, next, err := j.Fetch(start, n)
		if nil != err {
			exitwithstatus.Message("journal fetch error: %s", err)
		}
		if 0 == len(records) {
			break
		}
		for _, r := range records {
			detail, err := r.Decode()
			if nil != err {
				detail = err.Error()
			}
			printJSON(event{Record: r, Detail: detail})
		}
		count -= len(records)
		start = next
	}
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	_, _ = out.WriteTo(os.Stdout)
	_, _ = os.Stdout.WriteString("\n")
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
