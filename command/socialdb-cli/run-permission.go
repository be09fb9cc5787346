// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialdbd/rpc/grant"
)

// exactly one of the grantee flags
func grantee(c *cli.Context) (grant.Grantee, error) {
	g := grant.Grantee{
		Account:   c.String("grantee"),
		PublicKey: c.String("grantee-key"),
	}
	if ("" == g.Account) == ("" == g.PublicKey) {
		return g, ErrOneGrantee
	}
	return g, nil
}

func runGrant(c *cli.Context) error {
	return runChange(c, true)
}

func runRevoke(c *cli.Context) error {
	return runChange(c, false)
}

func runChange(c *cli.Context, isGrant bool) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.caller {
		return ErrMissingCaller
	}

	g, err := grantee(c)
	if nil != err {
		return err
	}

	keys := []string(c.Args())
	if 0 == len(keys) {
		return ErrMissingKeys
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *grant.ChangeReply
	if isGrant {
		reply, err = client.Grant(m.arguments(), g, keys)
	} else {
		reply, err = client.Revoke(m.arguments(), g, keys)
	}
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runIsGranted(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	g, err := grantee(c)
	if nil != err {
		return err
	}

	key := c.Args().First()
	if "" == key {
		return ErrMissingKeys
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	granted, err := client.IsGranted(g, key)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]bool{"granted": granted})
	return nil
}

func runPermissions(c *cli.Context) error {

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

	reply, err := client.Permissions(accountID)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
