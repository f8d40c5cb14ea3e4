// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/daofactoryd/background"
)

type ticker struct {
	count    int64
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(step):
			atomic.AddInt64(&state.count, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	b := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	b.Stop()

	for i, p := range []*ticker{p1, p2} {
		if 0 == atomic.LoadInt64(&p.count) {
			t.Errorf("%d: process did not run", i)
		}
		if 1 != atomic.LoadInt32(&p.finished) {
			t.Errorf("%d: stop returned before process finished", i)
		}
	}

	// second stop must not panic
	b.Stop()
}
