/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import "errors"

// FIB dataset validation failures.
var (
	ErrEntryCountMismatch = errors.New("number of FibEntry blocks differs from expected")
	ErrUnexpectedBlock    = errors.New("block is not a FibEntry")
	ErrUnmatchedPrefix    = errors.New("no expected entry for prefix")
	ErrNextHopMismatch    = errors.New("next hops differ from expected")
	ErrMissingEntries     = errors.New("expected entries not present in dataset")
	ErrTrailingBytes      = errors.New("undecoded bytes in FibEntry")
)

// Client failures.
var (
	ErrNoResponse  = errors.New("no response from forwarder")
	ErrCommandFail = errors.New("command failed")
)
