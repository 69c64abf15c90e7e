// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainkey/transactionrecord"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("privateKey"))
	if nil != err {
		return err
	}

	to, err := checkTo(c.String("to"))
	if nil != err {
		return err
	}

	timestamp := c.Uint64("timestamp")
	if 0 == timestamp {
		timestamp = uint64(time.Now().UnixNano() / 1000)
	}

	raw := transactionrecord.RawTransaction{
		Nonce:     c.String("nonce"),
		To:        to,
		Amount:    c.String("amount"),
		Data:      c.String("data"),
		Timestamp: timestamp,
		GasLimit:  c.String("gasLimit"),
		GasPrice:  c.String("gasPrice"),
		Type:      c.String("type"),
	}

	tx, err := raw.Transaction()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %+v\n", tx.Raw())
	}

	// a public key is needed for the seed+public key form
	var signed string
	if publicKey := c.String("publicKey"); "" != publicKey {
		signed, err = m.scheme.SignWithKeys(tx, privateKey, publicKey)
	} else {
		_, keys, e := m.scheme.KeyPair(privateKey)
		if nil != e {
			return e
		}
		signed, err = m.scheme.Sign(tx, keys)
	}
	if nil != err {
		return err
	}

	stx, err := m.scheme.Unsign(signed)
	if nil != err {
		return err
	}
	sender, err := stx.Sender()
	if nil != err {
		return err
	}

	m.infof("signed from: %s  to: %s", sender, tx.To)

	out := struct {
		Transaction transactionrecord.RawTransaction `json:"transaction"`
		Sender      string                           `json:"sender"`
		Signed      string                           `json:"signed"`
	}{
		Transaction: tx.Raw(),
		Sender:      sender.String(),
		Signed:      signed,
	}
	return printJson(m.w, out)
}
