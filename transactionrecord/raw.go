// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/util"
)

// RawTransaction - text version of a transaction
//
// integers are decimal strings, to is 0x and 64 hex digits and data
// is unprefixed hex
type RawTransaction struct {
	Nonce     string `gluamapper:"nonce" json:"nonce"`
	To        string `gluamapper:"to" json:"to"`
	Amount    string `gluamapper:"amount" json:"amount"`
	Data      string `gluamapper:"data" json:"data"`
	Timestamp uint64 `gluamapper:"timestamp" json:"timestamp"`
	GasLimit  string `gluamapper:"gas_limit" json:"gasLimit"`
	GasPrice  string `gluamapper:"gas_price" json:"gasPrice"`
	Type      string `gluamapper:"type" json:"type"`
}

// Raw - convert to the text form
func (tx *Transaction) Raw() RawTransaction {
	return RawTransaction{
		Nonce:     integer(tx.Nonce).Dec(),
		To:        util.FormatHex(tx.To[:], account.AddressLength),
		Amount:    integer(tx.Amount).Dec(),
		Data:      hex.EncodeToString(tx.Data),
		Timestamp: tx.Timestamp,
		GasLimit:  integer(tx.GasLimit).Dec(),
		GasPrice:  integer(tx.GasPrice).Dec(),
		Type:      integer(tx.Type).Dec(),
	}
}

// Transaction - convert from the text form
//
// empty integers are zero, the address and data may carry a 0x prefix
func (raw *RawTransaction) Transaction() (*Transaction, error) {
	nonce, err := parseInteger(raw.Nonce)
	if nil != err {
		return nil, err
	}
	to, err := account.AddressFromHex(raw.To)
	if nil != err {
		return nil, err
	}
	amount, err := parseInteger(raw.Amount)
	if nil != err {
		return nil, err
	}
	data, err := util.DecodeHex(raw.Data)
	if nil != err {
		return nil, err
	}
	gasLimit, err := parseInteger(raw.GasLimit)
	if nil != err {
		return nil, err
	}
	gasPrice, err := parseInteger(raw.GasPrice)
	if nil != err {
		return nil, err
	}
	txType, err := parseInteger(raw.Type)
	if nil != err {
		return nil, err
	}

	tx := &Transaction{
		Nonce:     nonce,
		To:        to,
		Amount:    amount,
		Data:      data,
		Timestamp: raw.Timestamp,
		GasLimit:  gasLimit,
		GasPrice:  gasPrice,
		Type:      txType,
	}
	return tx, nil
}

func parseInteger(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return uint256.NewInt(0), nil
	}
	i, err := uint256.FromDecimal(s)
	if nil != err {
		return nil, fault.ErrInvalidInteger
	}
	return i, nil
}
