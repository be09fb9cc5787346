// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialdbd/document"
	"github.com/bitmark-inc/socialdbd/socialdb"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := []string(c.Args())
	if 0 == len(keys) {
		return ErrMissingKeys
	}

	options := document.GetOptions{
		WithBlockHeight: c.Bool("with-block-height"),
		WithNodeID:      c.Bool("with-node-id"),
		ReturnDeleted:   c.Bool("return-deleted"),
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	data, err := client.Get(keys, options)
	if nil != err {
		return err
	}

	printJson(m.w, data)
	return nil
}

func runKeys(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := []string(c.Args())
	if 0 == len(keys) {
		return ErrMissingKeys
	}

	options := document.KeysOptions{
		ValuesOnly:    c.Bool("values-only"),
		ReturnDeleted: c.Bool("return-deleted"),
	}
	returnType, _ := json.Marshal(strings.TrimSpace(c.String("return-type")))
	if err := options.ReturnType.UnmarshalJSON(returnType); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	data, err := client.Keys(keys, options)
	if nil != err {
		return err
	}

	printJson(m.w, data)
	return nil
}

func runSet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	text := c.String("data")
	if "-" == text {
		b, err := ioutil.ReadAll(os.Stdin)
		if nil != err {
			return err
		}
		text = string(b)
	}
	if "" == strings.TrimSpace(text) {
		return ErrMissingData
	}

	data, err := document.Parse([]byte(text))
	if nil != err {
		return err
	}

	options := socialdb.SetOptions{
		RefundUnusedDeposit: c.Bool("refund-unused-deposit"),
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Set(m.arguments(), data, options)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
