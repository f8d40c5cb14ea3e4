// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - append only LevelDB audit trail of deployments,
// transfers and approvals
//
// the journal is advisory: it records what happened but the ledgers
// are never rebuilt from it
package journal
