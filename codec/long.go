// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/chainkey/fault"
)

// LongLength - bytes in the fixed width long form
const LongLength = 8

// Long - an integer that must be encoded in the fixed width form
// rather than as a minimal big endian string
type Long struct {
	value *uint256.Int
}

// NewLong - wrap a value, nil is zero
func NewLong(value *uint256.Int) Long {
	return Long{value: value}
}

// EncodeRLP - implements rlp.Encoder
func (l Long) EncodeRLP(w io.Writer) error {
	var buffer [LongLength]byte
	if nil != l.value {
		if !l.value.IsUint64() {
			return fault.ErrLongOverflow
		}
		binary.BigEndian.PutUint64(buffer[:], l.value.Uint64())
	}
	return rlp.Encode(w, buffer[:])
}
