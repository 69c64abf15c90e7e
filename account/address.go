// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/chainkey/digest"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/util"
)

// miscellaneous constants
const (
	AddressLength = 32

	// replaces the first byte of the public key digest
	SchemeTag = 0xa0
)

// Address - blake2b digest of a public key with the scheme tag as
// its first byte
type Address [AddressLength]byte

// AddressFromPublicKey - derive the address for an ed25519 public key
func AddressFromPublicKey(publicKey []byte) (Address, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return Address{}, fault.ErrInvalidKeyLength
	}
	address := Address(digest.NewDigest(publicKey))
	address[0] = SchemeTag
	return address, nil
}

// AddressFromBytes - convert a byte slice to an address
//
// short values are left-padded with zeros
func AddressFromBytes(buffer []byte) (Address, error) {
	var address Address
	if len(buffer) > AddressLength {
		return address, fault.ErrInvalidAddress
	}
	copy(address[AddressLength-len(buffer):], buffer)
	return address, nil
}

// AddressFromHex - convert hex text, with optional 0x prefix, to an address
func AddressFromHex(s string) (Address, error) {
	buffer, err := util.DecodeHex(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return AddressFromBytes(buffer)
}

// HasSchemeTag - true if the first byte is the scheme tag
func (address Address) HasSchemeTag() bool {
	return SchemeTag == address[0]
}

// Bytes - the address as a byte slice
func (address Address) Bytes() []byte {
	return address[:]
}

// String - hex encoding for the fmt package (%s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// GoString - hex encoding for the fmt package (%#v)
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// Scan - read hex text, for the fmt package scan routines
func (address *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexOrPrefix)
	if nil != err {
		return err
	}
	return address.UnmarshalText(token)
}

// MarshalText - convert an address to its hex JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert hex text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromHex(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// accept hex digits and the x of a 0x prefix
func isHexOrPrefix(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
	case c >= 'A' && c <= 'F':
	case c >= 'a' && c <= 'f':
	case 'x' == c || 'X' == c:
	default:
		return false
	}
	return true
}
