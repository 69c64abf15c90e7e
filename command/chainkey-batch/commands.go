// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/chainkey/scheme"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "schemes":
		for _, name := range scheme.Names() {
			fmt.Printf("%s\n", name)
		}
		return true

	case "help", "h", "?":
		usage(program)
		return true

	default:
		return false
	}
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		err := printJson(os.Stdout, options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}

	case "sign":
		return false

	default:
		fmt.Printf("error: no such command: %q\n", command)
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE [[command|help] arguments...]\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version sting\n\n")
	fmt.Printf("  schemes                             - list supported schemes\n\n")
	fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
	fmt.Printf("  sign                                - sign all transactions (default)\n\n")
}
