// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/background"
	"github.com/bitmark-inc/daofactoryd/daofactory"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/governancefactory"
	"github.com/bitmark-inc/daofactoryd/journal"
	"github.com/bitmark-inc/daofactoryd/messagebus"
	"github.com/bitmark-inc/daofactoryd/rpc"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// panic channel for fault.Panicf
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("operator: %s", theConfiguration.operator)
	log.Infof("journal: %q", theConfiguration.Journal.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the event journal
	log.Info("initialise journal")
	eventJournal, err := journal.Open(logger.New("journal"), theConfiguration.Journal.Name, false)
	if nil != err {
		log.Criticalf("journal open error: %s", err)
		exitwithstatus.Message("journal open error: %s", err)
	}
	defer eventJournal.Close()

	// copy bus events into the journal
	recorder := journal.NewRecorder(logger.New("recorder"), eventJournal, messagebus.Bus.Events.Chan())
	processes := background.Start(background.Processes{recorder}, nil)
	defer processes.Stop()

	// the two factories, organization factory first so that the
	// governance factory can be bound to it
	daoHandle, governanceHandle := factoryHandles(theConfiguration.operator)

	log.Info("initialise organization factory")
	organizations, err := daofactory.New(logger.New("daofactory"), daoHandle, messagebus.Bus.Events)
	if nil != err {
		log.Criticalf("organization factory error: %s", err)
		exitwithstatus.Message("organization factory error: %s", err)
	}

	log.Info("initialise governance factory")
	governanceFactory, err := governancefactory.New(
		logger.New("govfactory"),
		governanceHandle,
		daoHandle,
		theConfiguration.TransferPolicy,
		messagebus.Bus.Events,
	)
	if nil != err {
		log.Criticalf("governance factory error: %s", err)
		exitwithstatus.Message("governance factory error: %s", err)
	}

	err = organizations.SetGovernanceFactory(governanceFactory)
	if nil != err {
		log.Criticalf("set governance factory error: %s", err)
		exitwithstatus.Message("set governance factory error: %s", err)
	}
	log.Infof("organization factory: %s  governance factory: %s", daoHandle, governanceHandle)

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, organizations, eventJournal, messagebus.Bus.Events)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// both factory handles are minted from the operator so they are
// stable across restarts
func factoryHandles(operator address.Address) (address.Address, address.Address) {
	return address.Derive(operator, 0), address.Derive(operator, 1)
}
