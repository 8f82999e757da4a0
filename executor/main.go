/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paNjii/NFD/core"
)

// Version of the forwarder, set at build time.
var Version string

// Main runs the forwarder until interrupted.
func Main(args []string) {
	config := &NDNDConfig{Version: Version}

	flagset := flag.NewFlagSet("ndnd", flag.ExitOnError)
	flagset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [config-file]\n", args[0])
		flagset.PrintDefaults()
	}

	var printVersion bool
	flagset.BoolVar(&printVersion, "version", false, "Print version and exit")
	flagset.StringVar(&config.LogFile, "log-file", "", "Write logs to the specified file instead of stdout")
	flagset.StringVar(&config.CpuProfile, "cpu-profile", "", "Enable CPU profiling (output to specified file)")
	flagset.StringVar(&config.MemProfile, "mem-profile", "", "Enable memory profiling (output to specified file)")
	flagset.StringVar(&config.BlockProfile, "block-profile", "", "Enable block profiling (output to specified file)")
	flagset.Parse(args[1:])

	if printVersion {
		fmt.Fprintln(os.Stderr, "NDND: NDN Forwarding Daemon")
		fmt.Fprintln(os.Stderr, "Version: ", Version)
		fmt.Fprintln(os.Stderr, "Released under the terms of the MIT License")
		return
	}
	config.ConfigFileName = flagset.Arg(0)

	ndnd, err := NewNDND(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to initialize forwarder: "+err.Error())
		os.Exit(3)
	}
	ndnd.Start()

	// set up signal handler channel and wait for interrupt
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-sigChannel
	core.LogInfo("Main", "Received signal ", receivedSig, " - exiting")

	ndnd.Stop()
}
