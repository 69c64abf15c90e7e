// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/codec"
	"github.com/bitmark-inc/chainkey/digest"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/util"
)

// Pack - encode the eight unsigned fields
//
// nonce, amount and timestamp are minimal integers; gas limit, gas
// price and type always take the eight byte long form
func (tx *Transaction) Pack() (codec.Packed, error) {
	data := tx.Data
	if nil == data {
		data = []byte{}
	}
	return codec.Encode(
		integer(tx.Nonce),
		tx.To[:],
		integer(tx.Amount),
		data,
		tx.Timestamp,
		codec.NewLong(tx.GasLimit),
		codec.NewLong(tx.GasPrice),
		codec.NewLong(tx.Type),
	)
}

// Digest - the hash that is signed
func (tx *Transaction) Digest() (digest.Digest, error) {
	payload, err := tx.Pack()
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(payload), nil
}

// SignWith - encode, hash and sign, then append the signature block
// as a ninth item
func (tx *Transaction) SignWith(signer Signer) (codec.Packed, error) {
	payload, err := tx.Pack()
	if nil != err {
		return nil, err
	}

	signature, err := signer.Sign(digest.NewDigest(payload))
	if nil != err {
		return nil, err
	}

	publicKey := signer.PublicKeyBytes()
	if account.PublicKeyLength != len(publicKey) || account.SignatureLength != len(signature) {
		return nil, fault.ErrInvalidSignatureLength
	}

	block := make([]byte, 0, SignatureBlockLength)
	block = append(block, publicKey...)
	block = append(block, signature...)

	items, err := codec.Decode(payload)
	if nil != err {
		return nil, err
	}
	return codec.EncodeBytes(append(items, block))
}

// Sign - sign with key material and return the hex envelope
func Sign(tx *Transaction, keys *account.KeyMaterial) (string, error) {
	if nil == keys {
		return "", fault.ErrInvalidKeyLength
	}
	packed, err := tx.SignWith(keys)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}

// SignWithKeys - sign using hex keys
//
// the private key is either the 32 byte seed or the 64 byte
// seed+public key form
func SignWithKeys(tx *Transaction, privateKey string, publicKey string) (string, error) {
	private, err := util.DecodeHex(privateKey)
	if nil != err {
		return "", fault.ErrCannotDecodePrivateKey
	}
	public, err := util.DecodeHex(publicKey)
	if nil != err {
		return "", fault.ErrCannotDecodePublicKey
	}

	keys, err := account.KeyMaterialFromKeys(private, public)
	if nil != err {
		return "", err
	}
	return Sign(tx, keys)
}
