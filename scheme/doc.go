// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scheme - route key derivation, signing and parsing to the
// implementation for a named address scheme
//
// only "aion" is implemented; any other name gives
// fault.ErrUnsupportedScheme rather than an empty result
package scheme
