/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
)

// FibCli is the command line client of FIB management.
type FibCli struct {
	args  []string
	flags *flag.FlagSet
	out   io.Writer

	server  string
	prefix  string
	timeout time.Duration
	faceID  uint64
	cost    uint64
}

func newFibCli(args []string, usage string) *FibCli {
	c := &FibCli{args: args, out: os.Stdout}
	c.flags = flag.NewFlagSet(args[0], flag.ExitOnError)
	c.flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] %s\n", args[0], usage)
		c.flags.PrintDefaults()
	}
	c.flags.StringVar(&c.server, "server", "ws://localhost:9696", "WebSocket URL of the forwarder")
	c.flags.StringVar(&c.prefix, "prefix", "/localhost/nfd", "Management prefix of the forwarder")
	c.flags.DurationVar(&c.timeout, "timeout", DefaultSegmentTimeout, "Time to wait for each response")
	return c
}

func (c *FibCli) connect() (face.Transport, *ndn.Name) {
	prefix, err := ndn.NameFromString(c.prefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid management prefix: "+err.Error())
		os.Exit(3)
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	transport, err := face.DialWebSocket(ctx, c.server)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to connect to forwarder: "+err.Error())
		os.Exit(1)
	}
	return transport, prefix
}

// RunFibList prints the FIB of the forwarder.
func RunFibList(args []string) {
	c := newFibCli(args, "")
	c.flags.Parse(args[1:])

	transport, prefix := c.connect()
	defer transport.Close()

	lister := NewFibLister(transport, prefix)
	lister.SegmentTimeout = c.timeout
	entries, err := lister.List(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to retrieve FIB: "+err.Error())
		os.Exit(1)
	}
	PrintFibEntries(c.out, entries)
}

// PrintFibEntries writes one line per entry, in the form "/prefix nexthops={faceid=1 (cost=0), ...}".
func PrintFibEntries(out io.Writer, entries []*mgmt.FibEntry) {
	for _, entry := range entries {
		nexthops := make([]string, 0, len(entry.NextHops))
		for _, nexthop := range entry.NextHops {
			nexthops = append(nexthops, fmt.Sprintf("faceid=%d (cost=%d)", nexthop.FaceID, nexthop.Cost))
		}
		fmt.Fprintf(out, "%s nexthops={%s}\n", entry.Name, strings.Join(nexthops, ", "))
	}
}

// RunFibAdd adds a next hop to the FIB of the forwarder.
func RunFibAdd(args []string) {
	c := newFibCli(args, "<prefix>")
	c.flags.Uint64Var(&c.faceID, "face", 0, "FaceID of the next hop (default: the requesting face)")
	c.flags.Uint64Var(&c.cost, "cost", 0, "Cost of the next hop")
	c.run("add-nexthop", true)
}

// RunFibRemove removes a next hop from the FIB of the forwarder.
func RunFibRemove(args []string) {
	c := newFibCli(args, "<prefix>")
	c.flags.Uint64Var(&c.faceID, "face", 0, "FaceID of the next hop (default: the requesting face)")
	c.run("remove-nexthop", false)
}

func (c *FibCli) run(verb string, withCost bool) {
	c.flags.Parse(c.args[1:])
	if c.flags.NArg() != 1 {
		c.flags.Usage()
		os.Exit(3)
	}
	name, err := ndn.NameFromString(c.flags.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid prefix: "+err.Error())
		os.Exit(3)
	}

	params := mgmt.MakeControlParameters()
	params.Name = name
	if c.faceID != 0 {
		params.FaceID = &c.faceID
	}
	if withCost {
		params.Cost = &c.cost
	}

	transport, prefix := c.connect()
	defer transport.Close()

	response, err := ExecuteFibCommand(context.Background(), transport, prefix, verb, params, c.timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, verb+" failed: "+err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(c.out, "%s: %d %s\n", verb, response.StatusCode, response.StatusText)
}
