// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialdbd/command/socialdb-cli/rpccalls"
	"github.com/bitmark-inc/socialdbd/rpc/caller"
)

type metadata struct {
	connect   string
	caller    string
	signerKey string
	deposit   string
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// identity and payment of a mutating call
func (m *metadata) arguments() caller.Arguments {
	return caller.Arguments{
		Caller:    m.caller,
		SignerKey: m.signerKey,
		Payment:   m.deposit,
	}
}

func (m *metadata) client() (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %q\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "socialdb-cli"
	app.Usage = "client for the socialdbd document store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " socialdbd host/IP and port, `HOST:PORT`",
			EnvVar: "SOCIALDB_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " calling account `ID`",
			EnvVar: "SOCIALDB_CALLER",
		},
		cli.StringFlag{
			Name:   "signer-key, k",
			Value:  "",
			Usage:  " public key signing the call `CURVE:BASE58`",
			EnvVar: "SOCIALDB_SIGNER_KEY",
		},
		cli.StringFlag{
			Name:  "deposit, d",
			Value: "",
			Usage: " attached payment in units `AMOUNT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an ed25519 signer key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "get",
			Usage:     "read values matching paths",
			ArgsUsage: "PATH...\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "with-block-height, b",
					Usage: " return values with their block height",
				},
				cli.BoolFlag{
					Name:  "with-node-id, n",
					Usage: " return node ids of matched nodes",
				},
				cli.BoolFlag{
					Name:  "return-deleted, D",
					Usage: " include deleted values as null",
				},
			},
			Action: runGet,
		},
		{
			Name:      "keys",
			Usage:     "list keys matching paths",
			ArgsUsage: "PATH...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "return-type, r",
					Value: "true",
					Usage: " marker for each key `TYPE` [true|block_height|node_id]",
				},
				cli.BoolFlag{
					Name:  "values-only, V",
					Usage: " only keys holding values",
				},
				cli.BoolFlag{
					Name:  "return-deleted, D",
					Usage: " include deleted keys",
				},
			},
			Action: runKeys,
		},
		{
			Name:      "set",
			Usage:     "write a JSON document keyed by account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, j",
					Value: "",
					Usage: "*document `JSON` or - to read stdin",
				},
				cli.BoolFlag{
					Name:  "refund-unused-deposit, R",
					Usage: " return the part of the deposit not used for storage",
				},
			},
			Action: runSet,
		},
		{
			Name:      "grant",
			Usage:     "allow a grantee to write below keys",
			ArgsUsage: "KEY...\n   (* = required, + = select one)",
			Flags:     granteeFlags(),
			Action:    runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "remove write permission below keys",
			ArgsUsage: "KEY...\n   (* = required, + = select one)",
			Flags:     granteeFlags(),
			Action:    runRevoke,
		},
		{
			Name:      "is-granted",
			Usage:     "check write permission of a grantee for a key",
			ArgsUsage: "KEY\n   (* = required, + = select one)",
			Flags:     granteeFlags(),
			Action:    runIsGranted,
		},
		{
			Name:      "permissions",
			Usage:     "list the grants of an account",
			ArgsUsage: "ACCOUNT",
			Action:    runPermissions,
		},
		{
			Name:      "deposit",
			Usage:     "add the attached deposit to a storage balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: " receiving account `ID` [default: caller]",
				},
				cli.BoolFlag{
					Name:  "registration-only, r",
					Usage: " only register, refund anything above the minimum",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "withdraw available storage balance",
			ArgsUsage: "[AMOUNT]",
			Action:    runWithdraw,
		},
		{
			Name:      "unregister",
			Usage:     "remove the caller account and return its balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force, f",
					Usage: " unregister even with stored data",
				},
			},
			Action: runUnregister,
		},
		{
			Name:      "balance",
			Usage:     "storage balance of an account",
			ArgsUsage: "ACCOUNT",
			Action:    runBalance,
		},
		{
			Name:   "bounds",
			Usage:  "storage balance bounds",
			Action: runBounds,
		},
		{
			Name:      "view",
			Usage:     "used and available storage bytes of an account",
			ArgsUsage: "ACCOUNT",
			Action:    runView,
		},
		{
			Name:      "pool-deposit",
			Usage:     "add the attached deposit to a shared storage pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " pool owner `ID` [default: caller]",
				},
			},
			Action: runPoolDeposit,
		},
		{
			Name:      "share",
			Usage:     "share bytes of the caller's pool with an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*receiving account `ID`",
				},
				cli.Uint64Flag{
					Name:  "max-bytes, m",
					Value: 0,
					Usage: "*bytes the account may use `COUNT`",
				},
			},
			Action: runShare,
		},
		{
			Name:      "pool",
			Usage:     "shared storage pool of an owner",
			ArgsUsage: "OWNER",
			Action:    runPool,
		},
		{
			Name:   "info",
			Usage:  "display socialdbd status",
			Action: runInfo,
		},
		{
			Name:      "accounts",
			Usage:     "list registered accounts",
			ArgsUsage: "\n   (* = required)",
			Flags:     pageFlags(),
			Action:    runAccounts,
		},
		{
			Name:      "account",
			Usage:     "display an account record",
			ArgsUsage: "ACCOUNT",
			Action:    runAccount,
		},
		{
			Name:      "nodes",
			Usage:     "list nodes",
			ArgsUsage: "\n   (* = required)",
			Flags:     pageFlags(),
			Action:    runNodes,
		},
		{
			Name:      "node",
			Usage:     "display a node and its children",
			ArgsUsage: "ID",
			Action:    runNode,
		},
		{
			Name:      "set-status",
			Usage:     "change the store status (admins only)",
			ArgsUsage: "STATUS [genesis|live|readonly]",
			Action:    runSetStatus,
		},
		{
			Name:   "version",
			Usage:  "display socialdb-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		c.App.Metadata["config"] = &metadata{
			connect:   c.GlobalString("connect"),
			caller:    c.GlobalString("caller"),
			signerKey: c.GlobalString("signer-key"),
			deposit:   c.GlobalString("deposit"),
			verbose:   c.GlobalBool("verbose"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func granteeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "grantee, g",
			Value: "",
			Usage: "+grantee account `ID`",
		},
		cli.StringFlag{
			Name:  "grantee-key, G",
			Value: "",
			Usage: "+grantee public key `CURVE:BASE58`",
		},
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "start, s",
			Value: 0,
			Usage: " first position `START`",
		},
		cli.IntFlag{
			Name:  "count, n",
			Value: 20,
			Usage: " number of entries `COUNT`",
		},
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
