// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the rpc tests
package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger channel of the tests
const LogCategory = "testing"

const testingDirName = "testing"

// SetupTestLogger - log criticals only into the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

var pair struct {
	sync.Once
	certificate string
	key         string
}

// CertificatePair - a self signed PEM certificate and key for
// localhost, made once per test binary
func CertificatePair() (string, string) {
	pair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		certificate, key, err := certgen.NewTLSCertPair("socialdbd test", validUntil, false, []string{"localhost", "127.0.0.1"})
		if nil != err {
			panic(err)
		}
		pair.certificate = string(certificate)
		pair.key = string(key)
	})
	return pair.certificate, pair.key
}
