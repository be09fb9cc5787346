// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	accountID := c.String("account")
	if "" == accountID {
		accountID = m.caller
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Deposit(m.arguments(), accountID, c.Bool("registration-only"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Withdraw(m.arguments(), c.Args().First())
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runUnregister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	unregistered, err := client.Unregister(m.arguments(), c.Bool("force"))
	if nil != err {
		return err
	}

	printJson(m.w, map[string]bool{"unregistered": unregistered})
	return nil
}

func runBalance(c *cli.Context) error {

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

	reply, err := client.BalanceOf(accountID)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runBounds(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.BalanceBounds()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runView(c *cli.Context) error {

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

	reply, err := client.View(accountID)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
