// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialdbd/mode"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Accounts(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	accountID := c.Args().First()
	if "" == accountID {
		return ErrMissingAccount
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Account(accountID)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runNodes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Nodes(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runNode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := strconv.ParseUint(c.Args().First(), 10, 32)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Node(uint32(id))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runSetStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	status, err := mode.Parse(c.Args().First())
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	status, err = client.SetStatus(m.caller, status)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]mode.Mode{"status": status})
	return nil
}
