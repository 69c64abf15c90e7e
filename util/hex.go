// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bitmark-inc/chainkey/fault"
)

// Has0xPrefix - check for a leading "0x" or "0X"
func Has0xPrefix(s string) bool {
	return len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1])
}

// DecodeHex - convert hex text with or without a 0x prefix to bytes
//
// an empty string is valid and gives an empty byte slice
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !Has0xPrefix(s) {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeHex
	}
	return b, nil
}

// FormatHex - canonical fixed width hex form: 0x followed by
// 2*width lowercase digits, left-padded with zeros
//
// data longer than width is returned unpadded
func FormatHex(data []byte, width int) string {
	if len(data) >= width {
		return hexutil.Encode(data)
	}
	padded := make([]byte, width)
	copy(padded[width-len(data):], data)
	return hexutil.Encode(padded)
}
