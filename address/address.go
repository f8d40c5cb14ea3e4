// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/daofactoryd/fault"
	"github.com/bitmark-inc/daofactoryd/util"
)

// Length - number of bytes in an address
const Length = 20

const hexPrefix = "0x"

// Address - opaque fixed width identifier for accounts, ledgers,
// organizations and factories
type Address [Length]byte

// Null - the zero address
var Null Address

// FromString - decode either "0x"+hex (any case) or base58 text
func FromString(s string) (Address, error) {
	var a Address

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, hexPrefix) || strings.HasPrefix(s, "0X") {
		h := s[len(hexPrefix):]
		if 2*Length != len(h) {
			return Null, fault.ErrInvalidAddress
		}
		b, err := hex.DecodeString(strings.ToLower(h))
		if nil != err {
			return Null, fault.ErrInvalidAddress
		}
		copy(a[:], b)
		return a, nil
	}

	b, err := base58.Decode(s)
	if nil != err || Length != len(b) {
		return Null, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// FromBytes - copy an exact length byte slice into an address
func FromBytes(b []byte) (Address, error) {
	var a Address
	if Length != len(b) {
		return Null, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// Derive - compute a new address from its creator and a per-creator nonce
//
// keccak256(creator || varint(nonce)) truncated to the low 20 bytes
func Derive(creator Address, nonce uint64) Address {
	h := sha3.NewLegacyKeccak256()
	h.Write(creator[:])
	h.Write(util.ToVarint64(nonce))
	sum := h.Sum(nil)

	var a Address
	copy(a[:], sum[len(sum)-Length:])
	return a
}

// IsNull - true for the zero address
func (a Address) IsNull() bool {
	return Null == a
}

// String - canonical lower case hex form
func (a Address) String() string {
	return hexPrefix + hex.EncodeToString(a[:])
}

// Base58 - alternate compact text form
func (a Address) Base58() string {
	return base58.Encode(a[:])
}

// MarshalText - convert to canonical text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert from either text form
func (a *Address) UnmarshalText(s []byte) error {
	d, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = d
	return nil
}

// MarshalJSON - quoted canonical text
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON - quoted text in either form, null leaves the value unchanged
func (a *Address) UnmarshalJSON(s []byte) error {
	if "null" == string(s) {
		return nil
	}
	var text string
	if err := json.Unmarshal(s, &text); nil != err {
		return fault.ErrInvalidAddress
	}
	return a.UnmarshalText([]byte(text))
}
