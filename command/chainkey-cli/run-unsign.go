// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/transactionrecord"
)

type unsignedDisplay struct {
	Transaction transactionrecord.RawTransaction `json:"transaction"`
	PublicKey   string                           `json:"public_key,omitempty"`
	Signature   account.Signature                `json:"signature,omitempty"`
	Sender      string                           `json:"sender,omitempty"`
	Verified    *bool                            `json:"verified,omitempty"`
}

func runUnsign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	stx, err := m.scheme.Unsign(signed)
	if nil != err {
		return err
	}

	out := unsignedDisplay{
		Transaction: stx.Raw(),
	}
	if nil != stx.PublicKey {
		out.PublicKey = hex.EncodeToString(stx.PublicKey)
		out.Signature = stx.Signature
		sender, err := stx.Sender()
		if nil != err {
			return err
		}
		out.Sender = sender.String()
	}

	if c.Bool("verify") {
		if err := stx.Verify(); nil != err {
			m.infof("verify failed: %s", err)
			return err
		}
		verified := true
		out.Verified = &verified
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signed by: %q\n", out.Sender)
	}
	m.infof("decoded transaction from: %q", out.Sender)

	return printJson(m.w, out)
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	stx, err := m.scheme.Unsign(signed)
	if nil != err {
		return err
	}

	err = stx.Verify()
	ok := nil == err
	if m.verbose {
		fmt.Fprintf(m.e, "verified: %t  error: %v\n", ok, err)
	}
	m.infof("verified: %t", ok)

	out := struct {
		Sender   string `json:"sender,omitempty"`
		Verified bool   `json:"verified"`
		Reason   string `json:"reason,omitempty"`
	}{
		Verified: ok,
	}
	if sender, err := stx.Sender(); nil == err {
		out.Sender = sender.String()
	}
	if !ok {
		out.Reason = err.Error()
	}
	return printJson(m.w, out)
}
