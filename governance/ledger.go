// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daofactoryd/address"
	"github.com/bitmark-inc/daofactoryd/fault"
)

// Sink - receiver of ledger events, messagebus queues satisfy this
type Sink interface {
	Send(command string, parameters ...[]byte)
}

// Policy - recipient restrictions applied to every transfer
//
// the null address is always rejected
type Policy struct {
	RejectSelfTransfer bool `gluamapper:"reject_self_transfer" json:"reject_self_transfer"`
}

// Parameters - construction data for a ledger
type Parameters struct {
	Address       address.Address
	DAO           address.Address
	Name          string
	Symbol        string
	Decimals      uint8
	TotalSupply   uint64
	InitialHolder address.Address
	Policy        Policy
	Sink          Sink
	Log           *logger.L
}

// Request - what an organization asks a governance factory for
type Request struct {
	DAO           address.Address
	Name          string
	Symbol        string
	Decimals      uint8
	TotalSupply   uint64
	InitialHolder address.Address
}

type allowanceKey struct {
	owner   address.Address
	spender address.Address
}

// Ledger - balances of a single governance token
type Ledger struct {
	sync.RWMutex

	log    *logger.L
	policy Policy
	sink   Sink

	// fixed at construction
	address     address.Address
	dao         address.Address
	name        string
	symbol      string
	decimals    uint8
	totalSupply uint64

	balances   map[address.Address]uint64
	allowances map[allowanceKey]uint64
}

// Info - static description of a ledger
type Info struct {
	Address     address.Address `json:"address"`
	DAO         address.Address `json:"dao"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Decimals    uint8           `json:"decimals"`
	TotalSupply uint64          `json:"totalSupply"`
}

// Holding - one non-zero balance
type Holding struct {
	Account address.Address `json:"account"`
	Balance uint64          `json:"balance"`
}

// New - create a ledger with the entire supply at the initial holder
func New(parameters Parameters) (*Ledger, error) {
	if parameters.InitialHolder.IsNull() || parameters.Address.IsNull() {
		return nil, fault.ErrInvalidParameters
	}

	l := &Ledger{
		log:         parameters.Log,
		policy:      parameters.Policy,
		sink:        parameters.Sink,
		address:     parameters.Address,
		dao:         parameters.DAO,
		name:        parameters.Name,
		symbol:      parameters.Symbol,
		decimals:    parameters.Decimals,
		totalSupply: parameters.TotalSupply,
		balances:    make(map[address.Address]uint64),
		allowances:  make(map[allowanceKey]uint64),
	}
	if 0 != parameters.TotalSupply {
		l.balances[parameters.InitialHolder] = parameters.TotalSupply
	}

	if nil != l.log {
		l.log.Infof("ledger: %s  symbol: %q  supply: %d  holder: %s", l.address, l.symbol, l.totalSupply, parameters.InitialHolder)
	}
	return l, nil
}

// Address - handle of this ledger
func (l *Ledger) Address() address.Address {
	return l.address
}

// DAO - handle of the organization that requested this ledger
func (l *Ledger) DAO() address.Address {
	return l.dao
}

// TotalSupply - fixed at construction
func (l *Ledger) TotalSupply() uint64 {
	return l.totalSupply
}

// Info - static ledger data
func (l *Ledger) Info() Info {
	return Info{
		Address:     l.address,
		DAO:         l.dao,
		Name:        l.name,
		Symbol:      l.symbol,
		Decimals:    l.decimals,
		TotalSupply: l.totalSupply,
	}
}

// BalanceOf - current balance, zero if never credited
func (l *Ledger) BalanceOf(account address.Address) uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.balances[account]
}

// Allowance - amount spender may still move from owner
func (l *Ledger) Allowance(owner address.Address, spender address.Address) uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.allowances[allowanceKey{owner: owner, spender: spender}]
}

// Transfer - move amount from one account to another
//
// a zero amount succeeds without changing any balance
func (l *Ledger) Transfer(from address.Address, to address.Address, amount uint64) (bool, error) {
	l.Lock()
	defer l.Unlock()

	if err := l.move(from, to, amount); nil != err {
		l.debugf("transfer: %s -> %s  amount: %d  error: %s", from, to, amount, err)
		return false, err
	}
	return true, nil
}

// Approve - set the amount spender may move on behalf of owner
func (l *Ledger) Approve(owner address.Address, spender address.Address, amount uint64) (bool, error) {
	if owner.IsNull() || spender.IsNull() {
		return false, fault.ErrInvalidParameters
	}

	l.Lock()
	defer l.Unlock()

	key := allowanceKey{owner: owner, spender: spender}
	if 0 == amount {
		delete(l.allowances, key)
	} else {
		l.allowances[key] = amount
	}
	l.emit(EventApproval, owner, spender, amount)
	return true, nil
}

// TransferFrom - spend part of an allowance
//
// balance and allowance are checked before either is changed
func (l *Ledger) TransferFrom(spender address.Address, from address.Address, to address.Address, amount uint64) (bool, error) {
	l.Lock()
	defer l.Unlock()

	key := allowanceKey{owner: from, spender: spender}
	allowed := l.allowances[key]
	if amount > allowed {
		return false, fault.ErrInsufficientAllowance
	}

	if err := l.move(from, to, amount); nil != err {
		l.debugf("transfer from: %s -> %s  spender: %s  amount: %d  error: %s", from, to, spender, amount, err)
		return false, err
	}

	if allowed == amount {
		delete(l.allowances, key)
	} else {
		l.allowances[key] = allowed - amount
	}
	return true, nil
}

// Holders - sorted snapshot of all non-zero balances
func (l *Ledger) Holders() []Holding {
	l.RLock()
	defer l.RUnlock()

	holdings := make([]Holding, 0, len(l.balances))
	for account, balance := range l.balances {
		holdings = append(holdings, Holding{Account: account, Balance: balance})
	}
	sort.Slice(holdings, func(i, j int) bool {
		return bytes.Compare(holdings[i].Account[:], holdings[j].Account[:]) < 0
	})
	return holdings
}

// Sum - total of all balances, always equal to TotalSupply
func (l *Ledger) Sum() uint64 {
	l.RLock()
	defer l.RUnlock()

	sum := uint64(0)
	for _, balance := range l.balances {
		sum += balance
	}
	return sum
}

// must hold the write lock
func (l *Ledger) move(from address.Address, to address.Address, amount uint64) error {
	if to.IsNull() {
		return fault.ErrInvalidRecipient
	}
	if l.policy.RejectSelfTransfer && from == to {
		return fault.ErrInvalidRecipient
	}

	balance := l.balances[from]
	if amount > balance {
		return fault.ErrInsufficientBalance
	}

	if 0 != amount && from != to {
		if balance == amount {
			delete(l.balances, from)
		} else {
			l.balances[from] = balance - amount
		}
		// the sum of all balances is the total supply
		if l.balances[to] > l.totalSupply-amount {
			fault.Panicf("ledger: %s  credit: %s  amount: %d  exceeds supply: %d", l.address, to, amount, l.totalSupply)
		}
		l.balances[to] += amount
	}

	l.emit(EventTransfer, from, to, amount)
	return nil
}

func (l *Ledger) emit(command string, a address.Address, b address.Address, amount uint64) {
	if nil == l.sink {
		return
	}
	l.sink.Send(command, l.address[:], a[:], b[:], PackAmount(amount))
}

func (l *Ledger) debugf(format string, arguments ...interface{}) {
	if nil != l.log {
		l.log.Debugf(format, arguments...)
	}
}
