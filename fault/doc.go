// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Error classes:
//   InvalidError   - a caller supplied value cannot be used
//   KeyError       - seed or key material of the wrong size or form
//   MalformedError - an encoded transaction cannot be interpreted
//   NotFoundError  - no implementation for a requested scheme
//   ProcessError   - internal setup problems
package fault
