// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

// MarshalText - convert a scheme into JSON
func (scheme Scheme) MarshalText() ([]byte, error) {
	return []byte(scheme.String()), nil
}

// UnmarshalText - convert a scheme name to an enumeration value from JSON
func (scheme *Scheme) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*scheme = c
	return nil
}
