// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daofactoryd/counter"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/journal"
	"github.com/bitmark-inc/daofactoryd/rpc/ratelimit"
)

// limit for count
const maximumEvents = journal.MaximumFetch

// decoded records never change, so they only expire to bound memory
const (
	eventExpiry  = 10 * time.Minute
	eventCleanup = 20 * time.Minute
)

// Journal - read side of the event journal
type Journal interface {
	Fetch(start uint64, count int) ([]journal.Record, uint64, error)
	Next() uint64
}

// Deployments - organization count source
type Deployments interface {
	Count() uint64
}

// Queue - event queue statistics
type Queue interface {
	Dropped() uint64
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Journal  Journal
	Registry Deployments
	Queue    Queue
	counter  *counter.Counter
	decoded  *cache.Cache
}

// New - create the Node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, registry Deployments, j Journal, queue Queue) *Node {
	return &Node{
		Log:      log,
		Limiter:  ratelimit.Query.NewLimiter(),
		Start:    start,
		Version:  version,
		Journal:  j,
		Registry: registry,
		Queue:    queue,
		counter:  counter,
		decoded:  cache.New(eventExpiry, eventCleanup),
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	RPCs          uint64 `json:"rpcs"`
	Organizations uint64 `json:"organizations"`
	NextEvent     uint64 `json:"nextEvent,string"`
	DroppedEvents uint64 `json:"droppedEvents"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Journal {
		return fault.ErrNotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Organizations = node.Registry.Count()
	reply.NextEvent = node.Journal.Next()
	reply.DroppedEvents = node.Queue.Dropped()
	return nil
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// Event - journal record with its decoded form
type Event struct {
	Sequence uint64      `json:"sequence,string"`
	Command  string      `json:"command"`
	Detail   interface{} `json:"detail"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []Event `json:"events"`
	NextStart uint64  `json:"nextStart,string"`
}

// Events - page through the journal
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEvents); nil != err {
		return err
	}

	if nil == node.Journal {
		return fault.ErrNotInitialised
	}

	records, nextStart, err := node.Journal.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	events := make([]Event, len(records))
	for i, r := range records {
		events[i] = Event{
			Sequence: r.Sequence,
			Command:  r.Command,
			Detail:   node.decode(r),
		}
	}
	reply.Events = events
	reply.NextStart = nextStart

	return nil
}

// decode a record, reusing an earlier decode of the same sequence
func (node *Node) decode(r journal.Record) interface{} {
	key := strconv.FormatUint(r.Sequence, 10)
	if nil != node.decoded {
		if detail, found := node.decoded.Get(key); found {
			return detail
		}
	}

	detail, err := r.Decode()
	if nil != err {
		node.Log.Warnf("event: %d  decode error: %s", r.Sequence, err)
		return nil
	}

	if nil != node.decoded {
		node.decoded.SetDefault(key, detail)
	}
	return detail
}

// CachedEvents - number of decoded records held
func (node *Node) CachedEvents() int {
	if nil == node.decoded {
		return 0
	}
	return node.decoded.ItemCount()
}
