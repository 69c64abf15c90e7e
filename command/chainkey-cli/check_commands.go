// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/chainkey/fault"
)

var (
	ErrRequiredPrivateKey  = fault.InvalidError("private key is required")
	ErrRequiredTo          = fault.InvalidError("recipient address is required")
	ErrRequiredTransaction = fault.InvalidError("signed transaction is required")
)

// private key is required
func checkPrivateKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if "" == key {
		return "", ErrRequiredPrivateKey
	}
	return key, nil
}

// recipient is required
func checkTo(to string) (string, error) {
	to = strings.TrimSpace(to)
	if "" == to {
		return "", ErrRequiredTo
	}
	return to, nil
}

// signed hex is required
func checkTransaction(tx string) (string, error) {
	tx = strings.TrimSpace(tx)
	if "" == tx {
		return "", ErrRequiredTransaction
	}
	return tx, nil
}
