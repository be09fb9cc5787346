// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"
)

// JSON data to output after generate completes
type generateReply struct {
	SignerKey  string `json:"signer_key"`
	PrivateKey string `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		SignerKey:  "ed25519:" + base58.Encode(publicKey),
		PrivateKey: "ed25519:" + base58.Encode(privateKey),
	})
	return nil
}
