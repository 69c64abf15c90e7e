// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/codec"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/transactionrecord"
)

func TestUnsign(t *testing.T) {
	for i, item := range signItems {
		stx, err := transactionrecord.Unsign(item.signed)
		if nil != err {
			t.Fatalf("%d: unsign error: %s", i, err)
		}

		expected := item.tx.Raw()
		if actual := stx.Raw(); actual != expected {
			t.Errorf("%d: transaction: %+v  expected: %+v", i, actual, expected)
		}

		if stx.Payload.String() != item.payload {
			t.Errorf("%d: payload: %s  expected: %s", i, stx.Payload, item.payload)
		}
		if pub := hex.EncodeToString(stx.PublicKey); pub != item.publicKey {
			t.Errorf("%d: public key: %s  expected: %s", i, pub, item.publicKey)
		}
		if !bytes.HasSuffix([]byte(item.signed), []byte(stx.Signature.String())) {
			t.Errorf("%d: signature: %s  not at end of: %s", i, stx.Signature, item.signed)
		}

		if err := stx.Verify(); nil != err {
			t.Errorf("%d: verify error: %s", i, err)
		}

		keys, _ := account.KeyMaterialFromHexSeed(item.seed)
		sender, err := stx.Sender()
		if nil != err {
			t.Fatalf("%d: sender error: %s", i, err)
		}
		if sender != keys.Address() {
			t.Errorf("%d: sender: %s  expected: %s", i, sender, keys.Address())
		}

		// signing the decoded fields reproduces the envelope
		signed, err := transactionrecord.Sign(&stx.Transaction, keys)
		if nil != err {
			t.Fatalf("%d: re-sign error: %s", i, err)
		}
		if signed != item.signed {
			t.Errorf("%d: re-signed: %s  expected: %s", i, signed, item.signed)
		}
	}
}

func TestUnsignPrefixed(t *testing.T) {
	stx, err := transactionrecord.Unsign("0x" + signItems[0].signed)
	assert.Nil(t, err, "unsign error")
	assert.Equal(t, "10", stx.Nonce.Dec(), "nonce")
	assert.Equal(t, uint64(1546300800000000), stx.Timestamp, "timestamp")
	assert.Equal(t, "2000000", stx.GasLimit.Dec(), "gas limit")
	assert.Equal(t, "10000000000", stx.GasPrice.Dec(), "gas price")
	assert.Equal(t, "1", stx.Type.Dec(), "type")
}

func TestUnpackUnsigned(t *testing.T) {
	packed, err := signItems[0].tx.Pack()
	assert.Nil(t, err, "pack error")

	stx, err := transactionrecord.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, signItems[0].tx.Raw(), stx.Raw(), "transaction")
	assert.Nil(t, stx.PublicKey, "public key present")
	assert.Nil(t, stx.Signature, "signature present")

	assert.Equal(t, fault.ErrMissingSignature, stx.Verify(), "verify unsigned")
	_, err = stx.Sender()
	assert.Equal(t, fault.ErrMissingSignature, err, "sender unsigned")
}

func TestVerifyTampered(t *testing.T) {
	packed, _ := hex.DecodeString(signItems[0].signed)
	items, err := codec.Decode(packed)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}

	// change the amount
	items[2] = []byte{0x0b}
	tampered, err := codec.EncodeBytes(items)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}

	stx, err := transactionrecord.Unpack(tampered)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if "11" != stx.Amount.Dec() {
		t.Errorf("amount: %s  expected: 11", stx.Amount.Dec())
	}
	if err := stx.Verify(); fault.ErrInvalidSignature != err {
		t.Errorf("verify: %v  expected: %s", err, fault.ErrInvalidSignature)
	}
}

// replace one item of the valid signed envelope
func modified(t *testing.T, index int, value []byte) string {
	packed, _ := hex.DecodeString(signItems[0].signed)
	items, err := codec.Decode(packed)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	items[index] = value
	buffer, err := codec.EncodeBytes(items)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	return buffer.String()
}

func TestUnsignMalformed(t *testing.T) {
	signed := signItems[0].signed
	packed, _ := hex.DecodeString(signed)
	items, _ := codec.Decode(packed)

	tooMany, _ := codec.EncodeBytes(append(items, []byte{1}))
	tooFew, _ := codec.EncodeBytes(items[:7])

	testItems := []struct {
		name     string
		signed   string
		expected error
	}{
		{"empty", "", fault.ErrMalformedEncoding},
		{"non hex", "zzzz", fault.ErrCannotDecodeHex},
		{"odd length", signed[1:], fault.ErrCannotDecodeHex},
		{"truncated", signed[:len(signed)-2], fault.ErrMalformedEncoding},
		{"trailing", signed + "00", fault.ErrMalformedEncoding},
		{"not a list", "8401020304", fault.ErrMalformedEncoding},
		{"seven items", tooFew.String(), fault.ErrWrongFieldCount},
		{"ten items", tooMany.String(), fault.ErrWrongFieldCount},
		{"short block", modified(t, 8, make([]byte, 95)), fault.ErrInvalidSignatureBlock},
		{"long block", modified(t, 8, make([]byte, 97)), fault.ErrInvalidSignatureBlock},
		{"nonce leading zero", modified(t, 0, []byte{0, 1}), fault.ErrNonCanonicalInteger},
		{"nonce zero byte", modified(t, 0, []byte{0}), fault.ErrNonCanonicalInteger},
		{"nonce too long", modified(t, 0, bytes.Repeat([]byte{1}, 33)), fault.ErrFieldTooLong},
		{"to too long", modified(t, 1, make([]byte, 33)), fault.ErrFieldTooLong},
		{"amount leading zero", modified(t, 2, []byte{0, 10}), fault.ErrNonCanonicalInteger},
		{"timestamp too long", modified(t, 4, bytes.Repeat([]byte{1}, 9)), fault.ErrFieldTooLong},
		{"timestamp leading zero", modified(t, 4, []byte{0, 1}), fault.ErrNonCanonicalInteger},
		{"gas limit too long", modified(t, 5, make([]byte, 9)), fault.ErrFieldTooLong},
		{"gas price too long", modified(t, 6, make([]byte, 9)), fault.ErrFieldTooLong},
		{"type too long", modified(t, 7, make([]byte, 9)), fault.ErrFieldTooLong},
	}

	for _, item := range testItems {
		stx, err := transactionrecord.Unsign(item.signed)
		if item.expected != err {
			t.Errorf("%s: error: %v  expected: %s", item.name, err, item.expected)
		}
		if !fault.IsErrMalformed(err) {
			t.Errorf("%s: error: %v  is not malformed", item.name, err)
		}
		if nil != stx {
			t.Errorf("%s: partial result: %+v", item.name, stx)
		}
	}
}

func TestUnpackShortFields(t *testing.T) {
	// a short address is left-padded and short longs are accepted
	s := modified(t, 1, []byte{0xa0, 0x01})
	stx, err := transactionrecord.Unsign(s)
	if nil != err {
		t.Fatalf("unsign error: %s", err)
	}
	expected := "0x" + "0000000000000000000000000000000000000000000000000000000000000000"[:60] + "a001"
	if stx.Raw().To != expected {
		t.Errorf("to: %s  expected: %s", stx.Raw().To, expected)
	}

	s = modified(t, 5, []byte{0x1e, 0x84, 0x80})
	stx, err = transactionrecord.Unsign(s)
	if nil != err {
		t.Fatalf("unsign error: %s", err)
	}
	if "2000000" != stx.GasLimit.Dec() {
		t.Errorf("gas limit: %s  expected: 2000000", stx.GasLimit.Dec())
	}

	// payload is what was received, so the signature no longer matches
	if err := stx.Verify(); fault.ErrInvalidSignature != err {
		t.Errorf("verify: %v  expected: %s", err, fault.ErrInvalidSignature)
	}
}
