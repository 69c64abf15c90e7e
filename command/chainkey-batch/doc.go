// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainkey-batch - sign every transaction listed in a Lua
// configuration file with one key
//
// transactions are signed concurrently; the output is a JSON array
// in configuration order
package main
