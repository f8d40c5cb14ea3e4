// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - conversion of signed wire amounts
package amount

import (
	"github.com/bitmark-inc/daofactoryd/fault"
)

// Decode - JSON clients send signed integers, negatives never reach a ledger
func Decode(value int64) (uint64, error) {
	if value < 0 {
		return 0, fault.ErrInvalidParameters
	}
	return uint64(value), nil
}
