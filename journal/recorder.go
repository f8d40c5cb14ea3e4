// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/messagebus"
)

// Recorder - background process copying bus messages into the journal
type Recorder struct {
	log     *logger.L
	journal *Journal
	queue   <-chan messagebus.Message
}

// NewRecorder - create a recorder reading from queue
func NewRecorder(log *logger.L, journal *Journal, queue <-chan messagebus.Message) *Recorder {
	return &Recorder{
		log:     log,
		journal: journal,
		queue:   queue,
	}
}

// Run - store messages until shutdown, then drain what is left
func (r *Recorder) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case message := <-r.queue:
			r.store(message)
		}
	}

drain:
	for {
		select {
		case message := <-r.queue:
			r.store(message)
		default:
			break drain
		}
	}

	r.log.Info("stopped")
}

func (r *Recorder) store(message messagebus.Message) {
	sequence, err := r.journal.Append(message)
	if nil != err {
		r.log.Errorf("store: %q  error: %s", message.Command, err)
		return
	}
	r.log.Debugf("stored: %d  command: %q", sequence, message.Command)
}
