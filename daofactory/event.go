// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package daofactory

import (
	"encoding/binary"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
)

// EventDeploy - command sent to the sink after each deployment
const EventDeploy = "deploy"

// Deployment - decoded deploy event
type Deployment struct {
	Factory      address.Address `json:"factory"`
	Organization address.Address `json:"organization"`
	Governance   address.Address `json:"governance"`
	Caller       address.Address `json:"caller"`
	TotalSupply  uint64          `json:"totalSupply"`
}

// UnpackDeployment - reverse of the factory's sink parameters
func UnpackDeployment(command string, parameters [][]byte) (*Deployment, error) {
	if EventDeploy != command || 5 != len(parameters) || 8 != len(parameters[4]) {
		return nil, fault.ErrRecordCorrupt
	}

	d := &Deployment{
		TotalSupply: binary.BigEndian.Uint64(parameters[4]),
	}
	for i, a := range []*address.Address{&d.Factory, &d.Organization, &d.Governance, &d.Caller} {
		v, err := address.FromBytes(parameters[i])
		if nil != err {
			return nil, fault.ErrRecordCorrupt
		}
		*a = v
	}
	return d, nil
}
