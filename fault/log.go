// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// last resort logger channel
var log *logger.L

// Initialise - open the critical log channel
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a message prefixed by the caller's location
func Critical(message string) {
	criticalAt(2, "%s", message)
}

// Criticalf - log a formatted message prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalAt(2, format, arguments...)
}

// PanicIfError - log and panic on a non-nil error
//
// only for conditions that cannot occur with correct code
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalAt(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // allow log output to complete
	panic(s)
}

func criticalAt(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		format = fmt.Sprintf("(%q:%d) ", file, line) + format
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
