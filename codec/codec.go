// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/bitmark-inc/chainkey/fault"
)

// Packed - an encoded list is just a byte slice
type Packed []byte

// Encode - encode the items as a single list
func Encode(items ...interface{}) (Packed, error) {
	if nil == items {
		items = []interface{}{}
	}
	buffer, err := rlp.EncodeToBytes(items)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// EncodeBytes - encode a list of byte strings, the inverse of Decode
func EncodeBytes(items [][]byte) (Packed, error) {
	list := make([]interface{}, len(items))
	for i, item := range items {
		list[i] = item
	}
	return Encode(list...)
}

// Decode - split an encoded list into its byte string items
//
// the whole buffer must be consumed by exactly one list
func Decode(packed Packed) ([][]byte, error) {
	items := [][]byte{}
	if err := rlp.DecodeBytes(packed, &items); nil != err {
		return nil, fault.ErrMalformedEncoding
	}
	return items, nil
}

// String - hex text for the fmt package (%s)
func (packed Packed) String() string {
	return hex.EncodeToString(packed)
}

// MarshalText - convert to hex text
func (packed Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(packed)))
	hex.Encode(buffer, packed)
	return buffer, nil
}
