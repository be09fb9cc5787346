// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runPoolDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	owner := c.String("owner")
	if "" == owner {
		owner = m.caller
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PoolDeposit(m.arguments(), owner)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runShare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	accountID := c.String("account")
	if "" == accountID {
		return ErrMissingAccount
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	maxBytes := c.Uint64("max-bytes")
	err = client.Share(m.arguments(), accountID, maxBytes)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"account_id": accountID,
		"max_bytes":  maxBytes,
	})
	return nil
}

func runPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.Args().First()
	if "" == owner {
		return ErrMissingAccount
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Pool(owner)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
