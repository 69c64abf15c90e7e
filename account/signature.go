// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/chainkey/fault"
)

// SignatureLength - bytes in a detached ed25519 signature
const SignatureLength = ed25519.SignatureSize

// Signature - the type for a signature
type Signature []byte

// String - convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Scan - convert a text representation to a signature for use by the format package scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexOrPrefix)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return fault.ErrCannotDecodeHex
	}
	*signature = sig[:byteCount]
	return nil
}
