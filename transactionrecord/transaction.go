// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/codec"
	"github.com/bitmark-inc/chainkey/digest"
)

// field counts of the encoded list
const (
	FieldCount       = 8              // unsigned payload
	SignedFieldCount = FieldCount + 1 // payload followed by signature block
)

// SignatureBlockLength - public key followed by signature
const SignatureBlockLength = account.PublicKeyLength + account.SignatureLength

// byte sizes for the integer fields
const (
	maxIntegerLength   = 32
	maxTimestampLength = 8
)

// Transaction - the unsigned transaction fields
//
// a nil integer is zero; Timestamp is in microseconds
type Transaction struct {
	Nonce     *uint256.Int
	To        account.Address
	Amount    *uint256.Int
	Data      []byte
	Timestamp uint64
	GasLimit  *uint256.Int
	GasPrice  *uint256.Int
	Type      *uint256.Int
}

// SignedTransaction - a decoded envelope
//
// Payload is the encoding of the first eight fields as received, the
// bytes that were hashed and signed.  PublicKey and Signature are nil
// for an unsigned payload.
type SignedTransaction struct {
	Transaction
	Payload   codec.Packed
	PublicKey []byte
	Signature account.Signature
}

// Signer - anything that can produce a detached signature for its
// public key
//
//go:generate mockgen -destination=mocks/signer.go -package=mocks github.com/bitmark-inc/chainkey/transactionrecord Signer
type Signer interface {
	PublicKeyBytes() []byte
	Sign(d digest.Digest) (account.Signature, error)
}

// nil is zero
func integer(i *uint256.Int) *uint256.Int {
	if nil == i {
		return uint256.NewInt(0)
	}
	return i
}
