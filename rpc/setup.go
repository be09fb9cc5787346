// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"io/ioutil"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/counter"
	"github.com/bitmark-inc/socialdbd/fault"
	"github.com/bitmark-inc/socialdbd/rpc/certificate"
	"github.com/bitmark-inc/socialdbd/rpc/handler"
	"github.com/bitmark-inc/socialdbd/rpc/listeners"
	"github.com/bitmark-inc/socialdbd/rpc/server"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// Configuration - both listeners and the identities allowed to
// change the store status
type Configuration struct {
	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HTTPSRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Admins    []string                     `gluamapper:"admins" json:"admins"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// shared by both listeners
var connectionCount counter.Counter

// Initialise - start the JSON RPC and HTTPS listeners
func Initialise(configuration *Configuration, db *socialdb.DB, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	s := server.Create(log, version, &connectionCount, db, configuration.Admins)

	rpcConfiguration := &configuration.ClientRPC
	tlsConfig, err := loadCertificate(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCount, s, tlsConfig)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsConfiguration := &configuration.HTTPSRPC
	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, err := loadCertificate(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			stopListeners()
			return err
		}

		h := handler.New(log, s, time.Now(), version, httpsConfiguration.MaximumConnections, &connectionCount, db)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, h)
		if nil != err {
			stopListeners()
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			stopListeners()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopListeners()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// must hold the lock
func stopListeners() {
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
}

// certificate and key are PEM file names
func loadCertificate(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, error) {
	cert, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFile, err)
		return nil, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read private key: %q  error: %s", name, keyFile, err)
		return nil, err
	}

	tlsConfig, _, err := certificate.Get(log, name, string(cert), string(key))
	return tlsConfig, err
}
