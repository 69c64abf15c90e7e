// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/codec"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/transactionrecord"
	"github.com/bitmark-inc/chainkey/transactionrecord/mocks"
)

type signItem struct {
	seed      string
	publicKey string
	tx        transactionrecord.Transaction
	payload   string
	digest    string
	signed    string
}

var signItems = []signItem{
	{
		seed:      "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		publicKey: "76a1592044a6e4f511265bca73a604d90b0529d1df602be30a19a9257660d1f5",
		tx: transactionrecord.Transaction{
			Nonce:     uint256.NewInt(10),
			To:        account.Address{0xa0},
			Amount:    uint256.NewInt(10),
			Data:      nil,
			Timestamp: 1546300800000000,
			GasLimit:  uint256.NewInt(2000000),
			GasPrice:  uint256.NewInt(10000000000),
			Type:      uint256.NewInt(1),
		},
		payload: "f8470aa0a0000000000000000000000000000000000000000000000000000000000000000a80" +
			"87057e5a35e66000" +
			"8800000000001e8480" +
			"8800000002540be400" +
			"880000000000000001",
		digest: "97291e51dac3c50afa3c3fdedd0b5df5fe07a225c94e9eee871160ec7eff21ca",
		signed: "f8a90aa0a0000000000000000000000000000000000000000000000000000000000000000a80" +
			"87057e5a35e66000" +
			"8800000000001e8480" +
			"8800000002540be400" +
			"880000000000000001" +
			"b860" +
			"76a1592044a6e4f511265bca73a604d90b0529d1df602be30a19a9257660d1f5" +
			"bb2d4ce91f1a07d7d465fec7e6c94d48e80eb7bf451b804b3becfc2ac9b78d3c" +
			"ebd67497aad1df4216ebad782bce7a58f8505a390111c8dee17d792be5869607",
	},
	{
		seed:      "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		publicKey: "03a107bff3ce10be1d70dd18e74bc09967e4d6309ba50d5f1ddc8664125531b8",
		tx: transactionrecord.Transaction{
			To: account.Address{
				0xa0, 0x95, 0x54, 0x11, 0x86, 0xb2, 0xe5, 0x36,
				0x98, 0x24, 0x4e, 0x23, 0x12, 0x74, 0xa0, 0x75,
				0x46, 0x78, 0x66, 0x4d, 0x26, 0x55, 0xd0, 0xe2,
				0x33, 0xaa, 0x3b, 0x9a, 0x03, 0xd2, 0x1e, 0xf4,
			},
			Amount: new(uint256.Int).Mul(uint256.NewInt(1000000000000), uint256.NewInt(1000000000)),
			Data:   []byte{1, 2, 3, 4},
		},
		payload: "f84d80a0a095541186b2e53698244e231274a0754678664d2655d0e233aa3b9a03d21ef4" +
			"893635c9adc5dea00000" +
			"8401020304" +
			"80" +
			"880000000000000000" +
			"880000000000000000" +
			"880000000000000000",
		digest: "c5764e8a5c324dbac3edf5a33b101b4a8f9481d5eaaa06b1023b36f20f44389e",
		signed: "f8af80a0a095541186b2e53698244e231274a0754678664d2655d0e233aa3b9a03d21ef4" +
			"893635c9adc5dea00000" +
			"8401020304" +
			"80" +
			"880000000000000000" +
			"880000000000000000" +
			"880000000000000000" +
			"b860" +
			"03a107bff3ce10be1d70dd18e74bc09967e4d6309ba50d5f1ddc8664125531b8" +
			"88fbcfe7ad332de4df1834ce81bf439039948c693b183dc8ee97dc6e8851554d" +
			"e2bd5e8f9cbc3d5eddcd2d1c90bb34f36e32b35fc69eb3c84ff5434aa46f940b",
	},
}

func TestPack(t *testing.T) {
	for i, item := range signItems {
		packed, err := item.tx.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		if packed.String() != item.payload {
			t.Errorf("%d: payload: %s  expected: %s", i, packed, item.payload)
		}

		d, err := item.tx.Digest()
		if nil != err {
			t.Fatalf("%d: digest error: %s", i, err)
		}
		if d.String() != item.digest {
			t.Errorf("%d: digest: %s  expected: %s", i, d, item.digest)
		}
	}
}

func TestSign(t *testing.T) {
	for i, item := range signItems {
		keys, err := account.KeyMaterialFromHexSeed(item.seed)
		if nil != err {
			t.Fatalf("%d: key error: %s", i, err)
		}

		tx := item.tx
		signed, err := transactionrecord.Sign(&tx, keys)
		if nil != err {
			t.Fatalf("%d: sign error: %s", i, err)
		}
		if signed != item.signed {
			t.Errorf("%d: signed: %s  expected: %s", i, signed, item.signed)
		}

		signed, err = transactionrecord.SignWithKeys(&tx, item.seed, item.publicKey)
		if nil != err {
			t.Fatalf("%d: sign with seed error: %s", i, err)
		}
		if signed != item.signed {
			t.Errorf("%d: sign with seed: %s  expected: %s", i, signed, item.signed)
		}

		signed, err = transactionrecord.SignWithKeys(&tx, "0x"+item.seed+item.publicKey, item.publicKey)
		if nil != err {
			t.Fatalf("%d: sign with expanded key error: %s", i, err)
		}
		if signed != item.signed {
			t.Errorf("%d: sign with expanded key: %s  expected: %s", i, signed, item.signed)
		}
	}
}

func TestLongFieldWidth(t *testing.T) {
	values := []*uint256.Int{
		nil,
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(0xffffffff),
		uint256.NewInt(^uint64(0)),
	}

	for i, v := range values {
		tx := transactionrecord.Transaction{
			GasLimit: v,
			GasPrice: v,
			Type:     v,
		}
		packed, err := tx.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		items, err := codec.Decode(packed)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		for j := 5; j < transactionrecord.FieldCount; j += 1 {
			if codec.LongLength != len(items[j]) {
				t.Errorf("%d: item[%d]: %x  not %d bytes", i, j, items[j], codec.LongLength)
			}
		}
	}
}

func TestSignErrors(t *testing.T) {
	item := signItems[0]
	keys, _ := account.KeyMaterialFromHexSeed(item.seed)

	tx := item.tx
	tx.GasPrice = new(uint256.Int).Lsh(uint256.NewInt(1), 64)
	_, err := transactionrecord.Sign(&tx, keys)
	assert.Equal(t, fault.ErrLongOverflow, err, "oversize long field")

	tx = item.tx
	_, err = transactionrecord.Sign(&tx, nil)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "nil key material")

	_, err = transactionrecord.SignWithKeys(&tx, "xx", item.publicKey)
	assert.Equal(t, fault.ErrCannotDecodePrivateKey, err, "bad private key")

	_, err = transactionrecord.SignWithKeys(&tx, item.seed, "xx")
	assert.Equal(t, fault.ErrCannotDecodePublicKey, err, "bad public key")

	_, err = transactionrecord.SignWithKeys(&tx, item.seed, signItems[1].publicKey)
	assert.Equal(t, fault.ErrKeyMismatch, err, "wrong public key")

	_, err = transactionrecord.SignWithKeys(&tx, item.seed[:32], item.publicKey)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short private key")
}

func TestSignWithSigner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	item := signItems[0]
	tx := item.tx

	d, err := tx.Digest()
	assert.Nil(t, err, "digest error")

	publicKey, _ := hex.DecodeString(item.publicKey)
	signed, _ := hex.DecodeString(item.signed)
	signature := signed[len(signed)-account.SignatureLength:]

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(d).Return(account.Signature(signature), nil).Times(1)
	signer.EXPECT().PublicKeyBytes().Return(publicKey).Times(1)

	packed, err := tx.SignWith(signer)
	assert.Nil(t, err, "sign error")
	assert.True(t, bytes.Equal(signed, packed), "signed: %x", packed)
}

func TestSignerFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx := signItems[0].tx

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(gomock.Any()).Return(nil, fault.ErrInvalidKeyLength).Times(1)

	packed, err := tx.SignWith(signer)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "signer error not propagated")
	assert.Nil(t, packed, "output on error")
}

func TestSignerBadLengths(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx := signItems[0].tx

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(gomock.Any()).Return(make(account.Signature, 63), nil).Times(1)
	signer.EXPECT().PublicKeyBytes().Return(make([]byte, 32)).Times(1)

	_, err := tx.SignWith(signer)
	assert.Equal(t, fault.ErrInvalidSignatureLength, err, "short signature")

	signer.EXPECT().Sign(gomock.Any()).Return(make(account.Signature, 64), nil).Times(1)
	signer.EXPECT().PublicKeyBytes().Return(make([]byte, 31)).Times(1)

	_, err = tx.SignWith(signer)
	assert.Equal(t, fault.ErrInvalidSignatureLength, err, "short public key")
}
