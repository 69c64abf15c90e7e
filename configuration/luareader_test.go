// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainkey/configuration"
	"github.com/bitmark-inc/chainkey/fault"
)

type entry struct {
	Name  string `gluamapper:"name"`
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	Scheme     string            `gluamapper:"scheme"`
	PrivateKey string            `gluamapper:"private_key"`
	Count      int               `gluamapper:"count"`
	Levels     map[string]string `gluamapper:"levels"`
	Entries    []entry           `gluamapper:"entries"`
	Untouched  string            `gluamapper:"untouched"`
}

const testFile = `
local M = {}

local key = "ff"
M.scheme = "aion"
M.private_key = string.rep(key, 32)
M.count = 3
M.levels = {
    main = "info",
    DEFAULT = "critical",
}
M.entries = {
    { name = "one", value = "1" },
    { name = "two", value = arg[0] },
}

return M
`

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, testFile)

	options := &testConfiguration{
		Count:     1,
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, options)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	assert.Equal(t, "aion", options.Scheme, "scheme")
	assert.Equal(t, 64, len(options.PrivateKey), "private key")
	assert.Equal(t, 3, options.Count, "count")
	assert.Equal(t, "info", options.Levels["main"], "main level")
	assert.Equal(t, "critical", options.Levels["DEFAULT"], "default level")
	assert.Equal(t, 2, len(options.Entries), "entries")
	assert.Equal(t, entry{Name: "one", Value: "1"}, options.Entries[0], "first entry")
	assert.Equal(t, fileName, options.Entries[1].Value, "arg[0]")
	assert.Equal(t, "default", options.Untouched, "default overwritten")
}

func TestParseErrors(t *testing.T) {
	fileName := writeFile(t, testFile)

	var notStruct string
	err := configuration.ParseConfigurationFile(fileName, &notStruct)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "string pointer")

	err = configuration.ParseConfigurationFile(fileName, testConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationFile(writeFile(t, "x = 1\n"), &testConfiguration{})
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "no table returned")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {\n"), &testConfiguration{})
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &testConfiguration{})
	assert.Equal(t, fault.ErrConfigurationFileNotFound, err, "missing file")
}
