// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/fixtures"
	"github.com/bitmark-inc/daofactoryd/governance"
)

var accounts = []address.Address{
	fixtures.Holder0,
	fixtures.Holder1,
	fixtures.Holder2,
	fixtures.Operator,
}

// any sequence of transfers conserves supply and rejected transfers
// change nothing
func TestPropertySupplyConserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.Uint64Range(0, 1<<40).Draw(t, "supply")
		l, err := governance.New(governance.Parameters{
			Address:       address.Derive(fixtures.Operator, 1),
			TotalSupply:   total,
			InitialHolder: fixtures.Holder0,
		})
		if nil != err {
			t.Fatalf("new: %s", err)
		}

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i += 1 {
			from := rapid.SampledFrom(accounts).Draw(t, "from")
			to := rapid.SampledFrom(accounts).Draw(t, "to")
			before := l.BalanceOf(from)
			amount := rapid.Uint64Range(0, before+10).Draw(t, "amount")

			beforeTo := l.BalanceOf(to)
			ok, err := l.Transfer(from, to, amount)

			switch {
			case amount > before:
				if fault.ErrInsufficientBalance != err || ok {
					t.Fatalf("overdraft of %d from %d: ok: %v  err: %v", amount, before, ok, err)
				}
				if before != l.BalanceOf(from) || beforeTo != l.BalanceOf(to) {
					t.Fatalf("failed transfer changed balances")
				}
			case nil != err:
				t.Fatalf("transfer %d of %d: %s", amount, before, err)
			case from != to:
				if before-amount != l.BalanceOf(from) || beforeTo+amount != l.BalanceOf(to) {
					t.Fatalf("wrong balances after transfer of %d", amount)
				}
			}

			if total != l.Sum() {
				t.Fatalf("supply drift: %d != %d", l.Sum(), total)
			}
		}
	})
}

// zero transfers always succeed and change nothing
func TestPropertyZeroTransfer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, _ := governance.New(governance.Parameters{
			Address:       address.Derive(fixtures.Operator, 2),
			TotalSupply:   rapid.Uint64().Draw(t, "supply"),
			InitialHolder: fixtures.Holder0,
		})
		from := rapid.SampledFrom(accounts).Draw(t, "from")
		to := rapid.SampledFrom(accounts).Draw(t, "to")

		holders := l.Holders()
		ok, err := l.Transfer(from, to, 0)
		if !ok || nil != err {
			t.Fatalf("zero transfer failed: %v", err)
		}

		after := l.Holders()
		if len(after) != len(holders) {
			t.Fatalf("holder count changed")
		}
		for i := range holders {
			if holders[i] != after[i] {
				t.Fatalf("holding changed: %v -> %v", holders[i], after[i])
			}
		}
	})
}
