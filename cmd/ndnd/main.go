/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"os"

	"github.com/paNjii/NFD/cmd"
	"github.com/paNjii/NFD/executor"
	"github.com/paNjii/NFD/tools"
)

func main() {
	// create a command tree
	tree := cmd.CmdTree{
		Name: "ndnd",
		Help: "Named Data Networking Daemon",
		Sub: []*cmd.CmdTree{{
			Name: "fw",
			Help: "NDN Forwarding Daemon",
			Sub: []*cmd.CmdTree{{
				Name: "run",
				Help: "Start the NDN Forwarding Daemon",
				Fun:  executor.Main,
			}},
		}, {
			// tools separator
		}, {
			Name: "fib",
			Help: "Inspect and modify the FIB of a running forwarder",
			Sub: []*cmd.CmdTree{{
				Name: "list",
				Help: "Print all FIB entries",
				Fun:  tools.RunFibList,
			}, {
				Name: "add",
				Help: "Add a next hop to a prefix",
				Fun:  tools.RunFibAdd,
			}, {
				Name: "remove",
				Help: "Remove a next hop from a prefix",
				Fun:  tools.RunFibRemove,
			}},
		}},
	}

	// Parse the command line arguments
	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
