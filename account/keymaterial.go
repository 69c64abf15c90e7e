// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/chainkey/digest"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/util"
)

// sizes of the key parts
const (
	SeedLength       = ed25519.SeedSize
	PublicKeyLength  = ed25519.PublicKeySize
	PrivateKeyLength = ed25519.PrivateKeySize // seed followed by public key
)

// KeyMaterial - an ed25519 key pair and its address
//
// never modified after creation so a single value may be shared by
// concurrent signers
type KeyMaterial struct {
	privateKey ed25519.PrivateKey
	address    Address
}

// KeyMaterialFromSeed - derive the key pair and address from a 32 byte seed
func KeyMaterialFromSeed(seed []byte) (*KeyMaterial, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	privateKey := ed25519.NewKeyFromSeed(seed)

	address, err := AddressFromPublicKey(privateKey[SeedLength:])
	if nil != err {
		return nil, err
	}

	keys := &KeyMaterial{
		privateKey: privateKey,
		address:    address,
	}
	return keys, nil
}

// KeyMaterialFromHexSeed - as KeyMaterialFromSeed for hex text
func KeyMaterialFromHexSeed(s string) (*KeyMaterial, error) {
	seed, err := util.DecodeHex(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeSeed
	}
	return KeyMaterialFromSeed(seed)
}

// KeyMaterialFromKeys - rebuild key material from separate keys
//
// the private key may be the 32 byte seed or the 64 byte seed+public
// form; in either case the public key must be the one the seed
// generates
func KeyMaterialFromKeys(privateKey []byte, publicKey []byte) (*KeyMaterial, error) {
	if PublicKeyLength != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	var seed []byte
	switch len(privateKey) {
	case SeedLength:
		seed = privateKey
	case PrivateKeyLength:
		seed = privateKey[:SeedLength]
		if !bytes.Equal(privateKey[SeedLength:], publicKey) {
			return nil, fault.ErrKeyMismatch
		}
	default:
		return nil, fault.ErrInvalidKeyLength
	}

	keys, err := KeyMaterialFromSeed(seed)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(keys.privateKey[SeedLength:], publicKey) {
		return nil, fault.ErrKeyMismatch
	}
	return keys, nil
}

// Seed - copy of the 32 byte seed
func (keys *KeyMaterial) Seed() []byte {
	return clone(keys.privateKey[:SeedLength])
}

// PublicKeyBytes - copy of the 32 byte public key
func (keys *KeyMaterial) PublicKeyBytes() []byte {
	return clone(keys.privateKey[SeedLength:])
}

// PrivateKeyBytes - copy of the 64 byte seed+public key
func (keys *KeyMaterial) PrivateKeyBytes() []byte {
	return clone(keys.privateKey)
}

// Address - the address of the public key
func (keys *KeyMaterial) Address() Address {
	return keys.address
}

// Sign - detached signature of a digest
func (keys *KeyMaterial) Sign(d digest.Digest) (Signature, error) {
	if nil == keys || PrivateKeyLength != len(keys.privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	// expanded key is seed followed by public key
	expanded := make([]byte, 0, PrivateKeyLength)
	expanded = append(expanded, keys.privateKey[:SeedLength]...)
	expanded = append(expanded, keys.privateKey[SeedLength:]...)

	return ed25519.Sign(expanded, d[:]), nil
}

// CheckSignature - verify a detached signature over a message
func CheckSignature(publicKey []byte, message []byte, signature Signature) error {
	if PublicKeyLength != len(publicKey) {
		return fault.ErrInvalidKeyLength
	}
	if SignatureLength != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(publicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
