// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/digest"
	"github.com/bitmark-inc/chainkey/fault"
)

// Verify - check the embedded signature against the payload hash
func (stx *SignedTransaction) Verify() error {
	if nil == stx.PublicKey || nil == stx.Signature {
		return fault.ErrMissingSignature
	}
	d := digest.NewDigest(stx.Payload)
	return account.CheckSignature(stx.PublicKey, d[:], stx.Signature)
}

// Sender - address of the embedded public key
func (stx *SignedTransaction) Sender() (account.Address, error) {
	if nil == stx.PublicKey {
		return account.Address{}, fault.ErrMissingSignature
	}
	return account.AddressFromPublicKey(stx.PublicKey)
}
