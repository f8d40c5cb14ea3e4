// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daofactoryd/fault"
)

// Profile - sustained rate and burst for one class of call
type Profile struct {
	Rate  rate.Limit
	Burst int
}

// request classes
var (
	// balance, allowance, lookups, node status
	Query = Profile{Rate: 200, Burst: 100}

	// transfer, approve, transferFrom
	Transfer = Profile{Rate: 100, Burst: 50}

	// each deploy creates a ledger and a controller that live
	// for the rest of the process
	Deploy = Profile{Rate: 2, Burst: 5}
)

// NewLimiter - limiter for a profile
func (p Profile) NewLimiter() *rate.Limiter {
	return rate.NewLimiter(p.Rate, p.Burst)
}

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - limiting for a multiple request
//
// an out of range count still costs one token
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter.ReserveN(time.Now(), count))
}

func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
