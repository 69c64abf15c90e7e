// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/fault"
)

// RawKeyPair - text version of the seed, public key and address
type RawKeyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
}

// NewSeed - create a new hex seed from secure random data
func NewSeed() (string, error) {
	seed := make([]byte, account.SeedLength)
	n, err := rand.Read(seed)
	if nil != err {
		return "", err
	}
	if account.SeedLength != n {
		panic("too few random bytes")
	}
	return hex.EncodeToString(seed), nil
}

// MakeRawKeyPair - create a new seed and derive its keys
func MakeRawKeyPair() (*RawKeyPair, *account.KeyMaterial, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, nil, err
	}
	return FromPrivateKey(seed)
}

// FromPrivateKey - derive the public key and address from a hex seed
//
// the private key text is returned as given
func FromPrivateKey(seed string) (*RawKeyPair, *account.KeyMaterial, error) {
	keys, err := account.KeyMaterialFromHexSeed(seed)
	if nil != err {
		return nil, nil, err
	}

	rawKeyPair := RawKeyPair{
		PrivateKey: seed,
		PublicKey:  hex.EncodeToString(keys.PublicKeyBytes()),
		Address:    keys.Address().String(),
	}
	return &rawKeyPair, keys, nil
}

// PublicKeyFromHex - decode and check a hex public key
func PublicKeyFromHex(publicKey string) ([]byte, error) {
	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, fault.ErrCannotDecodePublicKey
	}
	if account.PublicKeyLength != len(k) {
		return nil, fault.ErrInvalidKeyLength
	}
	return k, nil
}
