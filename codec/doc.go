// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - canonical length-prefixed list encoding
//
// Wraps RLP so that every semantic value has exactly one encoding:
//   *uint256.Int, uint64  - minimal big endian, zero is the empty string
//   []byte                - byte string as is
//   Long                  - always an 8 byte big endian string
//
// Decoding only returns byte strings; the caller reinterprets each
// item according to its position.
package codec
