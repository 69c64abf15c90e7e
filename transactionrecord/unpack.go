// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/codec"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/util"
)

// Unsign - decode a hex envelope
func Unsign(signed string) (*SignedTransaction, error) {
	packed, err := util.DecodeHex(signed)
	if nil != err {
		return nil, err
	}
	return Unpack(packed)
}

// Unpack - turn a byte slice into a signed transaction
//
// an eight item payload is accepted and has no signature; nothing is
// returned on error
func Unpack(packed codec.Packed) (*SignedTransaction, error) {
	items, err := codec.Decode(packed)
	if nil != err {
		return nil, err
	}

	if len(items) < FieldCount || len(items) > SignedFieldCount {
		return nil, fault.ErrWrongFieldCount
	}

	nonce, err := unpackInteger(items[0])
	if nil != err {
		return nil, err
	}

	if len(items[1]) > account.AddressLength {
		return nil, fault.ErrFieldTooLong
	}
	to, err := account.AddressFromBytes(items[1])
	if nil != err {
		return nil, err
	}

	amount, err := unpackInteger(items[2])
	if nil != err {
		return nil, err
	}

	data := make([]byte, len(items[3]))
	copy(data, items[3])

	timestamp, err := unpackTimestamp(items[4])
	if nil != err {
		return nil, err
	}

	gasLimit, err := unpackLong(items[5])
	if nil != err {
		return nil, err
	}
	gasPrice, err := unpackLong(items[6])
	if nil != err {
		return nil, err
	}
	txType, err := unpackLong(items[7])
	if nil != err {
		return nil, err
	}

	payload, err := codec.EncodeBytes(items[:FieldCount])
	if nil != err {
		return nil, fault.ErrMalformedEncoding
	}

	stx := &SignedTransaction{
		Transaction: Transaction{
			Nonce:     nonce,
			To:        to,
			Amount:    amount,
			Data:      data,
			Timestamp: timestamp,
			GasLimit:  gasLimit,
			GasPrice:  gasPrice,
			Type:      txType,
		},
		Payload: payload,
	}

	if SignedFieldCount == len(items) {
		block := items[FieldCount]
		if SignatureBlockLength != len(block) {
			return nil, fault.ErrInvalidSignatureBlock
		}
		stx.PublicKey = make([]byte, account.PublicKeyLength)
		copy(stx.PublicKey, block[:account.PublicKeyLength])
		stx.Signature = make(account.Signature, account.SignatureLength)
		copy(stx.Signature, block[account.PublicKeyLength:])
	}

	return stx, nil
}

// minimal big endian integer
func unpackInteger(buffer []byte) (*uint256.Int, error) {
	if len(buffer) > maxIntegerLength {
		return nil, fault.ErrFieldTooLong
	}
	if len(buffer) > 0 && 0 == buffer[0] {
		return nil, fault.ErrNonCanonicalInteger
	}
	return new(uint256.Int).SetBytes(buffer), nil
}

// minimal big endian integer that fits in 64 bits
func unpackTimestamp(buffer []byte) (uint64, error) {
	if len(buffer) > maxTimestampLength {
		return 0, fault.ErrFieldTooLong
	}
	if len(buffer) > 0 && 0 == buffer[0] {
		return 0, fault.ErrNonCanonicalInteger
	}
	var b [maxTimestampLength]byte
	copy(b[maxTimestampLength-len(buffer):], buffer)
	return binary.BigEndian.Uint64(b[:]), nil
}

// long form, leading zeros are expected
func unpackLong(buffer []byte) (*uint256.Int, error) {
	if len(buffer) > codec.LongLength {
		return nil, fault.ErrFieldTooLong
	}
	return new(uint256.Int).SetBytes(buffer), nil
}
