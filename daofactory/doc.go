// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package daofactory - deploys organizations and keeps the ordered
// registry of everything it has deployed
//
// the factory must be given a governance factory exactly once before
// the first deployment:
//
//	Unconfigured --SetGovernanceFactory--> Configured
//
// each deployment asks the governance factory for a new ledger, binds
// a new controller to it and appends the controller to the registry
package daofactory
