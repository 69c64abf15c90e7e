// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainkey/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := keypair.NewSeed()
	if nil != err {
		return err
	}

	rawKeyPair, _, err := m.scheme.KeyPair(seed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", rawKeyPair.Address)
	}
	m.infof("generated address: %s", rawKeyPair.Address)

	return printJson(m.w, rawKeyPair)
}
