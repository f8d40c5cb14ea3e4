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

	"github.com/bitmark-inc/daofactoryd/configuration"
	"github.com/bitmark-inc/daofactoryd/fault"
)

type journalType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Operator      string            `gluamapper:"operator"`
	Journal       journalType       `gluamapper:"journal"`
	Listen        []string          `gluamapper:"listen"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testFile = `
local M = {}

M.data_directory = "."
M.operator = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
M.journal = {
    directory = "data",
    name = "events-" .. "local",
}
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.levels = { main = "info" }

return M
`

func writeFile(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(name, []byte(content), 0600)
	assert.Nil(t, err, "write")
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := writeFile(t, testFile)

	options := &testConfiguration{
		Journal: journalType{Name: "default"},
	}
	err := configuration.ParseConfigurationFile(name, options)
	assert.Nil(t, err, "parse")

	assert.Equal(t, ".", options.DataDirectory, "data directory")
	assert.Equal(t, "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", options.Operator, "operator")
	assert.Equal(t, "data", options.Journal.Directory, "journal directory")
	assert.Equal(t, "events-local", options.Journal.Name, "journal name")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.Listen, "listen")
	assert.Equal(t, "info", options.Levels["main"], "level")
}

func TestParseNotStructPointer(t *testing.T) {
	name := writeFile(t, testFile)

	var options testConfiguration
	err := configuration.ParseConfigurationFile(name, options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	s := "string"
	err = configuration.ParseConfigurationFile(name, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")
}

func TestParseNoReturn(t *testing.T) {
	name := writeFile(t, "x = 1\n")

	err := configuration.ParseConfigurationFile(name, &testConfiguration{})
	assert.Equal(t, fault.ErrMissingParameters, err, "no table returned")
}

func TestParseSyntaxError(t *testing.T) {
	name := writeFile(t, "return {\n")

	err := configuration.ParseConfigurationFile(name, &testConfiguration{})
	assert.NotNil(t, err, "syntax error")
}
