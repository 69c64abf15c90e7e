// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chainkey/fault"
)

// Scheme - scheme enumeration
type Scheme uint64

// possible scheme values
const (
	Nothing      Scheme = iota // this must be the first value
	Aion         Scheme = iota
	maximumValue Scheme = iota // this must be the last value
	First        Scheme = Nothing + 1
	Last         Scheme = maximumValue - 1
	Count        int    = int(Last) // count of schemes
)

// internal conversion
func toString(s Scheme) ([]byte, error) {
	switch s {
	case Nothing:
		return []byte{}, nil
	case Aion:
		return []byte("aion"), nil
	default:
		return []byte{}, fault.ErrUnsupportedScheme
	}
}

// convert a string to a scheme
func fromString(in string) (Scheme, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "aion":
		return Aion, nil
	default:
		return Nothing, fault.ErrUnsupportedScheme
	}
}

// FromString - a scheme that can be used, the empty name is rejected
func FromString(in string) (Scheme, error) {
	s, err := fromString(strings.TrimSpace(in))
	if nil != err {
		return Nothing, err
	}
	if !s.IsValid() {
		return Nothing, fault.ErrUnsupportedScheme
	}
	return s, nil
}

// Names - all usable scheme names
func Names() []string {
	names := make([]string, 0, Count)
	for s := First; s <= Last; s += 1 {
		names = append(names, s.String())
	}
	return names
}

// String - convert a scheme to its name
func (scheme Scheme) String() string {
	s, err := toString(scheme)
	if nil != err {
		logger.Panicf("invalid scheme enumeration: %d", scheme)
	}
	return string(s)
}

// GoString - enum value and name, for debugging
func (scheme Scheme) GoString() string {
	return fmt.Sprintf("<Scheme#%d:%q>", scheme, scheme.String())
}

// Scan - convert a scheme name
func (scheme *Scheme) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*scheme = parsed
	return nil
}

// IsValid - valid scheme if in range of First to Last
// Nothing is not considered as valid
func (scheme Scheme) IsValid() bool {
	return scheme >= First && scheme <= Last
}
