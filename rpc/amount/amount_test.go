// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/rpc/amount"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		value    int64
		expected uint64
		err      error
	}{
		{0, 0, nil},
		{30, 30, nil},
		{math.MaxInt64, math.MaxInt64, nil},
		{-1, 0, fault.ErrInvalidParameters},
		{math.MinInt64, 0, fault.ErrInvalidParameters},
	}

	for i, test := range tests {
		actual, err := amount.Decode(test.value)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		assert.Equal(t, test.expected, actual, "%d: wrong amount", i)
	}
}
