// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters for nonces and connection counts
package counter

import (
	"sync/atomic"
)

// Counter - 64 bit unsigned value that can be changed concurrently
type Counter struct {
	v atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.v.Add(1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return c.v.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.v.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.v.Load()
}
