// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

import (
	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/keypair"
	"github.com/bitmark-inc/chainkey/transactionrecord"
)

// KeyPair - derive keys and address from a hex seed
func (scheme Scheme) KeyPair(privateKey string) (*keypair.RawKeyPair, *account.KeyMaterial, error) {
	switch scheme {
	case Aion:
		return keypair.FromPrivateKey(privateKey)
	default:
		return nil, nil, fault.ErrUnsupportedScheme
	}
}

// Sign - sign a transaction with derived key material
func (scheme Scheme) Sign(tx *transactionrecord.Transaction, keys *account.KeyMaterial) (string, error) {
	switch scheme {
	case Aion:
		return transactionrecord.Sign(tx, keys)
	default:
		return "", fault.ErrUnsupportedScheme
	}
}

// SignWithKeys - sign a transaction with hex private and public keys
func (scheme Scheme) SignWithKeys(tx *transactionrecord.Transaction, privateKey string, publicKey string) (string, error) {
	switch scheme {
	case Aion:
		return transactionrecord.SignWithKeys(tx, privateKey, publicKey)
	default:
		return "", fault.ErrUnsupportedScheme
	}
}

// Unsign - decode a hex envelope
func (scheme Scheme) Unsign(signed string) (*transactionrecord.SignedTransaction, error) {
	switch scheme {
	case Aion:
		return transactionrecord.Unsign(signed)
	default:
		return nil, fault.ErrUnsupportedScheme
	}
}
