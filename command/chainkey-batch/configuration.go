// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chainkey/configuration"
	"github.com/bitmark-inc/chainkey/fault"
	"github.com/bitmark-inc/chainkey/scheme"
	"github.com/bitmark-inc/chainkey/transactionrecord"
	"github.com/bitmark-inc/chainkey/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultScheme = "aion"

	defaultLogDirectory = "log"
	defaultLogFile      = "chainkey-batch.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

var (
	ErrRequiredPrivateKey = fault.InvalidError("private key is required")
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"signer":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the batch to sign
type Configuration struct {
	Scheme       string                             `gluamapper:"scheme" json:"scheme"`
	PrivateKey   string                             `gluamapper:"private_key" json:"-"`
	PublicKey    string                             `gluamapper:"public_key" json:"public_key"`
	Concurrency  int                                `gluamapper:"concurrency" json:"concurrency"`
	Transactions []transactionrecord.RawTransaction `gluamapper:"transactions" json:"transactions"`
	Logging      logger.Configuration               `gluamapper:"logging" json:"logging"`

	scheme scheme.Scheme
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Scheme:      defaultScheme,
		Concurrency: runtime.NumCPU(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.scheme, err = scheme.FromString(options.Scheme)
	if nil != err {
		return nil, err
	}

	if "" == options.PrivateKey {
		return nil, ErrRequiredPrivateKey
	}

	if 0 == len(options.Transactions) {
		return nil, fault.ErrNoTransactions
	}

	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(dataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}
