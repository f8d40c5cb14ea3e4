// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/daofactoryd/rpc/node"
)

// Info - daemon status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := c.call("Node.Info", node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// EventsReply - journal page with undecoded details
type EventsReply struct {
	Events []struct {
		Sequence uint64          `json:"sequence,string"`
		Command  string          `json:"command"`
		Detail   json.RawMessage `json:"detail"`
	} `json:"events"`
	NextStart uint64 `json:"nextStart,string"`
}

// Events - page of journal events
func (c *Client) Events(start uint64, count int) (*EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}
	reply := &EventsReply{}
	if err := c.call("Node.Events", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
