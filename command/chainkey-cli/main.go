// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainkey/scheme"
)

type metadata struct {
	scheme  scheme.Scheme
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "chainkey-cli"
	app.Usage = "derive keys, sign and decode transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "scheme, s",
			Value: scheme.Aion.String(),
			Usage: " address `SCHEME` [aion]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` for default scheme and logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a random seed and its key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "keypair",
			Usage:     "derive public key and address from a seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "*hex seed `KEY`",
				},
			},
			Action: runKeyPair,
		},
		{
			Name:      "sign",
			Usage:     "sign a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "*hex seed or seed+public key `KEY`",
				},
				cli.StringFlag{
					Name:  "publicKey, p",
					Value: "",
					Usage: " hex public key to check against the private key `KEY`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "0",
					Usage: " decimal `NONCE`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "0",
					Usage: " decimal `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " hex `DATA`",
				},
				cli.Uint64Flag{
					Name:  "timestamp",
					Value: 0,
					Usage: " microseconds since the epoch, default is now `TIME`",
				},
				cli.StringFlag{
					Name:  "gasLimit",
					Value: "0",
					Usage: " decimal gas limit `COUNT`",
				},
				cli.StringFlag{
					Name:  "gasPrice",
					Value: "0",
					Usage: " decimal gas price `PRICE`",
				},
				cli.StringFlag{
					Name:  "type",
					Value: "0",
					Usage: " decimal transaction `TYPE`",
				},
			},
			Action: runSign,
		},
		{
			Name:      "unsign",
			Usage:     "decode a signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*signed transaction `HEX`",
				},
				cli.BoolFlag{
					Name:  "verify, V",
					Usage: " fail unless the signature is valid",
				},
			},
			Action: runUnsign,
		},
		{
			Name:      "verify",
			Usage:     "check the signature of a signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*signed transaction `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// select the scheme and start optional logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		name := c.GlobalString("scheme")

		var configuration *Configuration
		configFile := c.GlobalString("config")
		if "" != configFile {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", configFile)
			}
			var err error
			configuration, err = getConfiguration(configFile)
			if nil != err {
				return err
			}
			if !c.GlobalIsSet("scheme") && "" != configuration.Scheme {
				name = configuration.Scheme
			}
		}

		s, err := scheme.FromString(name)
		if nil != err {
			return fmt.Errorf("scheme: %q: %s", name, err)
		}

		var log *logger.L
		if nil != configuration {
			if err := logger.Initialise(configuration.Logging); nil != err {
				return err
			}
			log = logger.New("cli")
			log.Infof("version: %s  command: %q", version, command)
		}

		if verbose {
			fmt.Fprintf(e, "scheme: %s\n", s)
		}

		c.App.Metadata["config"] = &metadata{
			scheme:  s,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	// flush logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	return app
}

// log only when a configuration enabled logging
func (m *metadata) infof(format string, arguments ...interface{}) {
	if nil != m.log {
		m.log.Infof(format, arguments...)
	}
}
