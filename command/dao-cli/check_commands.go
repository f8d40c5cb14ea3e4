// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daofactoryd/address"
)

// a required account, organization or ledger flag
func checkAddress(c *cli.Context, flag string) (address.Address, error) {
	s := c.String(flag)
	if "" == s {
		return address.Null, fmt.Errorf("missing %s", flag)
	}
	a, err := address.FromString(s)
	if nil != err {
		return address.Null, fmt.Errorf("%s: %q  error: %s", flag, s, err)
	}
	return a, nil
}

// an optional address flag, blank is the null address
func checkOptionalAddress(c *cli.Context, flag string) (address.Address, error) {
	if "" == c.String(flag) {
		return address.Null, nil
	}
	return checkAddress(c, flag)
}

func checkName(c *cli.Context, flag string) (string, error) {
	s := c.String(flag)
	if "" == s {
		return "", fmt.Errorf("missing %s", flag)
	}
	return s, nil
}
