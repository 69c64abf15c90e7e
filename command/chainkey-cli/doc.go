// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainkey-cli - derive keys, sign and decode transactions from the
// command line
//
// all output is JSON on stdout, diagnostics go to stderr with
// --verbose; an optional Lua file given by --config selects the
// default scheme and enables logging
package main
