// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/counter"
	"github.com/bitmark-inc/daofactoryd/rpc/governance"
	"github.com/bitmark-inc/daofactoryd/rpc/node"
	"github.com/bitmark-inc/daofactoryd/rpc/organization"
)

// Backend - the organization factory and its registry
type Backend interface {
	organization.Registry
	governance.Ledgers
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, backend Backend, j node.Journal, queue node.Queue) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(organization.New(log, backend))
	_ = server.Register(governance.New(log, backend))
	_ = server.Register(node.New(log, start, version, rpcCount, backend, j, queue))

	return server
}
