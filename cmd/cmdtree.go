/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/paNjii/NFD/utils/comparison"
)

const banner = `
  _   _ ____  _   _     _
 | \ | |  _ \| \ | | __| |
 |  \| | | | |  \| |/ _  |
 | |\  | |_| | |\  | (_| |
 |_| \_|____/|_| \_|\____|
`

// CmdTree is a node of the command line: either a group of subcommands or a command run by Fun.
// A subcommand with an empty name prints as a blank separator line.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

// Usage prints the subcommands and exits.
func (c *CmdTree) Usage(args []string) {
	fmt.Fprintln(os.Stderr, banner[1:])
	fmt.Fprintf(os.Stderr, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		if sub.Name == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		padding := comparison.Max(16-len(sub.Name), 1)
		fmt.Fprintf(os.Stderr, "  %s%s%s\n", sub.Name, strings.Repeat(" ", padding), sub.Help)
	}
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}

// Execute runs the command named by args, where args[0] is the path of this node.
func (c *CmdTree) Execute(args []string) {
	// eagerly execute command if found
	if c.Fun != nil {
		c.Fun(args)
		return
	}

	if len(args) <= 1 {
		c.Usage(args)
		return
	}

	// recursively search for subcommand
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			sargs := append([]string{name}, args[2:]...)
			sub.Execute(sargs)
			return
		}
	}

	// command not found
	c.Usage(args)
}
