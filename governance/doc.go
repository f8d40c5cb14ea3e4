// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance - fixed supply balance ledger
//
// balances held in a ledger are the voting power of the organization
// bound to it; the ledger is the only place a balance can change
package governance
