// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/daofactoryd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - one event
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - buffered event channel
//
// senders never block, when the buffer is full the message is
// dropped and counted
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// BusType - the set of queues
type BusType struct {
	Events *Queue
}

// Bus - process wide queues
var Bus = BusType{
	Events: NewQueue(queueSize),
}

// NewQueue - a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, parameters are copied
func (queue *Queue) Send(command string, parameters ...[]byte) {
	p := make([][]byte, len(parameters))
	for i, b := range parameters {
		p[i] = append([]byte(nil), b...)
	}

	select {
	case queue.c <- Message{Command: command, Parameters: p}:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages lost to a full queue
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
