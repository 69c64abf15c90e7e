// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type KeyError GenericError
type MalformedError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrCannotDecodeHex           = MalformedError("cannot decode hex")
	ErrCannotDecodePrivateKey    = KeyError("cannot decode private key")
	ErrCannotDecodePublicKey     = KeyError("cannot decode public key")
	ErrCannotDecodeSeed          = KeyError("cannot decode seed")
	ErrConfigurationFileNotFound = NotFoundError("configuration file not found")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrFieldTooLong              = MalformedError("field too long")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidInteger            = InvalidError("invalid integer")
	ErrInvalidKeyLength          = KeyError("invalid key length")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidSeedLength         = KeyError("invalid seed length")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidSignatureBlock     = MalformedError("invalid signature block")
	ErrInvalidSignatureLength    = InvalidError("invalid signature length")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrKeyMismatch               = KeyError("public key does not match private key")
	ErrLongOverflow              = InvalidError("value does not fit long encoding")
	ErrMalformedEncoding         = MalformedError("malformed encoding")
	ErrMissingSignature          = InvalidError("missing signature")
	ErrNoTransactions            = ProcessError("no transactions")
	ErrNonCanonicalInteger       = MalformedError("non-canonical integer")
	ErrUnsupportedScheme         = NotFoundError("unsupported scheme")
	ErrWrongFieldCount           = MalformedError("wrong number of fields")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string   { return string(e) }
func (e KeyError) Error() string       { return string(e) }
func (e MalformedError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrKey(e error) bool       { _, ok := e.(KeyError); return ok }
func IsErrMalformed(e error) bool { _, ok := e.(MalformedError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
