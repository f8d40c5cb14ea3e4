// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"encoding/binary"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
)

// event commands sent to the sink
const (
	EventTransfer = "transfer"
	EventApproval = "approval"
)

const amountLength = 8

// Event - decoded transfer or approval
//
// for approvals From is the owner and To the spender
type Event struct {
	Command string          `json:"command"`
	Ledger  address.Address `json:"ledger"`
	From    address.Address `json:"from"`
	To      address.Address `json:"to"`
	Amount  uint64          `json:"amount"`
}

// PackAmount - fixed width big endian amount
func PackAmount(amount uint64) []byte {
	b := make([]byte, amountLength)
	binary.BigEndian.PutUint64(b, amount)
	return b
}

// UnpackEvent - reverse of the ledger's sink parameters
func UnpackEvent(command string, parameters [][]byte) (*Event, error) {
	if EventTransfer != command && EventApproval != command {
		return nil, fault.ErrRecordCorrupt
	}
	if 4 != len(parameters) || amountLength != len(parameters[3]) {
		return nil, fault.ErrRecordCorrupt
	}

	e := &Event{
		Command: command,
		Amount:  binary.BigEndian.Uint64(parameters[3]),
	}
	for i, a := range []*address.Address{&e.Ledger, &e.From, &e.To} {
		d, err := address.FromBytes(parameters[i])
		if nil != err {
			return nil, fault.ErrRecordCorrupt
		}
		*a = d
	}
	return e, nil
}
