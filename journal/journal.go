// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/daofactoryd/daofactory"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/governance"
	"github.com/bitmark-inc/daofactoryd/messagebus"
	"github.com/bitmark-inc/daofactoryd/util"
)

// MaximumFetch - upper limit on records per Fetch
const MaximumFetch = 100

// all records live under this prefix followed by a big endian sequence
var recordPrefix = []byte{'E'}

// Journal - handle to an open database
type Journal struct {
	sync.Mutex
	log  *logger.L
	db   *leveldb.DB
	next uint64
}

// Record - one stored message
type Record struct {
	Sequence   uint64   `json:"sequence"`
	Command    string   `json:"command"`
	Parameters [][]byte `json:"parameters"`
}

// Open - open or create a journal database on disk
func Open(log *logger.L, path string, readOnly bool) (*Journal, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	options := &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	db, err := leveldb.OpenFile(path, options)
	if nil != err {
		log.Errorf("open: %q  error: %s", path, err)
		return nil, err
	}
	return newJournal(log, db)
}

// OpenMemory - a journal that is discarded on close
func OpenMemory(log *logger.L) (*Journal, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newJournal(log, db)
}

func newJournal(log *logger.L, db *leveldb.DB) (*Journal, error) {
	j := &Journal{
		log:  log,
		db:   db,
		next: 1,
	}

	iter := db.NewIterator(ldb_util.BytesPrefix(recordPrefix), nil)
	if iter.Last() {
		j.next = sequenceOf(iter.Key()) + 1
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("journal opened, next sequence: %d", j.next)
	return j, nil
}

// Close - flush and close the database
func (j *Journal) Close() error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// Next - sequence number the next Append will use
func (j *Journal) Next() uint64 {
	j.Lock()
	defer j.Unlock()
	return j.next
}

// Append - store a message, returns its sequence number
func (j *Journal) Append(message messagebus.Message) (uint64, error) {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return 0, fault.ErrNotInitialised
	}

	sequence := j.next
	err := j.db.Put(makeKey(sequence), pack(message), nil)
	if nil != err {
		j.log.Errorf("append: %d  error: %s", sequence, err)
		return 0, err
	}
	j.next += 1
	return sequence, nil
}

// Fetch - up to count records starting at sequence start
//
// also returns the sequence to use to continue
func (j *Journal) Fetch(start uint64, count int) ([]Record, uint64, error) {
	if count <= 0 {
		return nil, start, fault.ErrInvalidCount
	}
	if count > MaximumFetch {
		count = MaximumFetch
	}

	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return nil, start, fault.ErrNotInitialised
	}

	iter := j.db.NewIterator(&ldb_util.Range{Start: makeKey(start), Limit: []byte{recordPrefix[0] + 1}}, nil)
	defer iter.Release()

	records := make([]Record, 0, count)
	next := start
	for len(records) < count && iter.Next() {
		r, err := unpack(iter.Value())
		if nil != err {
			return nil, start, err
		}
		r.Sequence = sequenceOf(iter.Key())
		records = append(records, *r)
		next = r.Sequence + 1
	}
	if err := iter.Error(); nil != err {
		return nil, start, err
	}
	return records, next, nil
}

// Decode - the typed event held in a record
func (r Record) Decode() (interface{}, error) {
	switch r.Command {
	case daofactory.EventDeploy:
		d, err := daofactory.UnpackDeployment(r.Command, r.Parameters)
		if nil != err {
			return nil, err
		}
		return d, nil
	case governance.EventTransfer, governance.EventApproval:
		e, err := governance.UnpackEvent(r.Command, r.Parameters)
		if nil != err {
			return nil, err
		}
		return e, nil
	default:
		return nil, fault.ErrRecordCorrupt
	}
}

func makeKey(sequence uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], sequence)
	return key
}

func sequenceOf(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(recordPrefix):])
}

// value: varint length prefixed command, varint count, then each
// parameter varint length prefixed
func pack(message messagebus.Message) []byte {
	buffer := make([]byte, 0, 128)
	buffer = appendBytes(buffer, []byte(message.Command))
	buffer = append(buffer, util.ToVarint64(uint64(len(message.Parameters)))...)
	for _, p := range message.Parameters {
		buffer = appendBytes(buffer, p)
	}
	return buffer
}

func appendBytes(buffer []byte, b []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(b)))...)
	return append(buffer, b...)
}

func unpack(buffer []byte) (*Record, error) {
	command, n := nextBytes(buffer)
	if n <= 0 {
		return nil, fault.ErrRecordCorrupt
	}
	buffer = buffer[n:]

	count, n := util.FromVarint64(buffer)
	if 0 == n || count > uint64(len(buffer)) {
		return nil, fault.ErrRecordCorrupt
	}
	buffer = buffer[n:]

	r := &Record{
		Command:    string(command),
		Parameters: make([][]byte, count),
	}
	for i := range r.Parameters {
		p, n := nextBytes(buffer)
		if n <= 0 {
			return nil, fault.ErrRecordCorrupt
		}
		r.Parameters[i] = append([]byte(nil), p...)
		buffer = buffer[n:]
	}
	if 0 != len(buffer) {
		return nil, fault.ErrRecordCorrupt
	}
	return r, nil
}

// returns the item and the total bytes consumed, or 0 if truncated
func nextBytes(buffer []byte) ([]byte, int) {
	length, n := util.FromVarint64(buffer)
	if 0 == n || length > uint64(len(buffer)-n) {
		return nil, 0
	}
	end := n + int(length)
	return buffer[n:end], end
}
