// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/socialdbd/configuration"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/mode"
	"github.com/bitmark-inc/socialdbd/rpc"
	"github.com/bitmark-inc/socialdbd/rpc/listeners"
	"github.com/bitmark-inc/socialdbd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "socialdb.leveldb"

	defaultStatus        = "genesis"
	defaultBlockInterval = "1s"

	defaultLogDirectory = "log"
	defaultLogFile      = "socialdbd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB files live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ChainType - block clock and storage price
//
// the price is a decimal string since Lua numbers cannot hold it
type ChainType struct {
	PricePerByte  string `gluamapper:"price_per_byte" json:"price_per_byte"`
	BlockInterval string `gluamapper:"block_interval" json:"block_interval"`
	InitialHeight uint64 `gluamapper:"initial_height" json:"initial_height"`

	// decoded values
	price    *uint256.Int
	interval time.Duration
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Status        string       `gluamapper:"status" json:"status"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Chain         ChainType    `gluamapper:"chain" json:"chain"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Admins    []string                     `gluamapper:"admins" json:"admins"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`

	// decoded initial status
	initialStatus mode.Mode
}

// RPC - the listener part of the configuration
func (c *Configuration) RPC() *rpc.Configuration {
	return &rpc.Configuration{
		ClientRPC: c.ClientRPC,
		HTTPSRPC:  c.HttpsRPC,
		Admins:    c.Admins,
	}
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

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Status:        defaultStatus,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Chain: ChainType{
			PricePerByte:  "", // zero selects the built in price
			BlockInterval: defaultBlockInterval,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

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

	options.initialStatus, err = mode.Parse(options.Status)
	if nil != err {
		return nil, fmt.Errorf("status: %q is not supported", options.Status)
	}

	options.Chain.price = new(uint256.Int)
	if "" != options.Chain.PricePerByte {
		options.Chain.price, err = uint256.FromDecimal(options.Chain.PricePerByte)
		if nil != err {
			return nil, fmt.Errorf("price per byte: %q error: %s", options.Chain.PricePerByte, err)
		}
	}

	options.Chain.interval, err = time.ParseDuration(options.Chain.BlockInterval)
	if nil != err {
		return nil, fmt.Errorf("block interval: %q error: %s", options.Chain.BlockInterval, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundDataDir
		}
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
