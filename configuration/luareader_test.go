// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialdbd/configuration"
	"github.com/bitmark-inc/socialdbd/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	PidFile       string            `gluamapper:"pidfile"`
	Database      databaseType      `gluamapper:"database"`
	Listen        []string          `gluamapper:"listen"`
	Levels        map[string]string `gluamapper:"levels"`
	Interval      uint64            `gluamapper:"interval"`
}

const luaConfiguration = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.database = {
   name = "socialdb.leveldb",
}
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.levels = {
   ["*"] = "info",
   rpc = "debug",
}
M.interval = 2 * 30

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	assert.Nil(t, err, "write configuration")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "socialdbd-configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "socialdbd.conf", luaConfiguration)

	options := &testConfiguration{
		PidFile: "socialdbd.pid",
		Database: databaseType{
			Directory: "data",
			Name:      "default.leveldb",
		},
	}
	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, dir+"/", options.DataDirectory, "data directory")
	assert.Equal(t, "socialdbd.pid", options.PidFile, "default should be kept")
	assert.Equal(t, "data", options.Database.Directory, "nested default should be kept")
	assert.Equal(t, "socialdb.leveldb", options.Database.Name, "database name")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.Listen, "listen")
	assert.Equal(t, map[string]string{"*": "info", "rpc": "debug"}, options.Levels, "levels")
	assert.Equal(t, uint64(60), options.Interval, "interval")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "socialdbd-configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	options := testConfiguration{}

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "socialdbd.conf"), options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &options)
	assert.NotNil(t, err, "missing file")

	fileName := writeFile(t, dir, "syntax.conf", "return {")
	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.NotNil(t, err, "syntax error")

	fileName = writeFile(t, dir, "string.conf", `return "data"`)
	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non-table")
}
