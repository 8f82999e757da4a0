/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"errors"
	"strconv"
)

// TLV errors.
var (
	ErrBufferTooShort       = errors.New("TLV length exceeds buffer size")
	ErrMissingLength        = errors.New("missing TLV length")
	ErrUnexpected           = errors.New("unexpected TLV type")
	ErrUnrecognizedCritical = errors.New("unrecognized critical TLV type")
	ErrPrematureEnd         = errors.New("unexpected end of block")
	ErrTrailingElements     = errors.New("junk after end of TLV")
)

// DecodeError describes a failure to read a typed sub-element from a block.
// It wraps ErrPrematureEnd when the block ran out of elements, and ErrUnexpected
// when an element of a different type was found.
type DecodeError struct {
	Expected  uint32
	Actual    uint32
	Truncated bool
}

func (e *DecodeError) Error() string {
	if e.Truncated {
		return "unexpected end of block while attempting to read type " + TypeString(e.Expected)
	}
	return "expected type " + TypeString(e.Expected) + " got " + TypeString(e.Actual)
}

// Unwrap returns the sentinel error classifying this failure.
func (e *DecodeError) Unwrap() error {
	if e.Truncated {
		return ErrPrematureEnd
	}
	return ErrUnexpected
}

// TrailingError reports elements left unread at the end of a block.
type TrailingError struct {
	Outer     uint32
	Remaining int
}

func (e *TrailingError) Error() string {
	return strconv.Itoa(e.Remaining) + " unread element(s) at end of block " + TypeString(e.Outer)
}

// Unwrap returns ErrTrailingElements.
func (e *TrailingError) Unwrap() error {
	return ErrTrailingElements
}
