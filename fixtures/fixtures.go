// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test data and logger setup
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/address"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known accounts
var (
	Operator = mustAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	Holder0  = mustAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	Holder1  = mustAddress("0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc")
	Holder2  = mustAddress("0x90f79bf6eb2c4f870365e785982e1f101e93b906")
)

// the logger is process global, tests in one package may nest setups
var setup struct {
	sync.Mutex
	count int
}

// SetupTestLogger - start a file logger that only records critical messages
func SetupTestLogger() {
	setup.Lock()
	defer setup.Unlock()

	setup.count += 1
	if setup.count > 1 {
		return
	}

	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	setup.Lock()
	defer setup.Unlock()

	setup.count -= 1
	if setup.count > 0 {
		return
	}

	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

func mustAddress(s string) address.Address {
	a, err := address.FromString(s)
	if nil != err {
		panic(err)
	}
	return a
}

// a self signed pair is slow to make so share one per test binary
var tlsPair struct {
	sync.Once
	certificate string
	key         string
	err         error
}

// TLSPair - PEM certificate and private key for localhost
func TLSPair() (string, string, error) {
	tlsPair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("daofactoryd test", validUntil, false, []string{"127.0.0.1"})
		tlsPair.certificate = string(cert)
		tlsPair.key = string(key)
		tlsPair.err = err
	})
	return tlsPair.certificate, tlsPair.key, tlsPair.err
}
