/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "strconv"

// TLV types for Management.
const (
	// Core
	ControlParameters = 0x68
	FaceID            = 0x69
	Origin            = 0x6F
	Cost              = 0x6A
	Flags             = 0x6C
	Mask              = 0x70
	ExpirationPeriod  = 0x6D
	ControlResponse   = 0x65
	StatusCode        = 0x66
	StatusText        = 0x67

	// ForwarderStatus
	NfdVersion       = 0x80
	StartTimestamp   = 0x81
	CurrentTimestamp = 0x82
	NNameTreeEntries = 0x83
	NFibEntries      = 0x84

	// FibMgmt
	FibEntry      = 0x80
	NextHopRecord = 0x81
)

// typeNames holds human readable names for the TLV types decoded by the FIB dataset codec.
// Management types reuse numbers across datasets, so only the FIB dataset is listed.
var typeNames = map[uint32]string{
	Name:                 "Name",
	GenericNameComponent: "GenericNameComponent",
	Content:              "Content",
	ControlParameters:    "ControlParameters",
	FaceID:               "FaceId",
	Cost:                 "Cost",
	FibEntry:             "FibEntry",
	NextHopRecord:        "NextHopRecord",
}

// TypeString returns the TLV type number followed by its name, if known.
func TypeString(tlvType uint32) string {
	if name, ok := typeNames[tlvType]; ok {
		return "#" + strconv.FormatUint(uint64(tlvType), 10) + " (" + name + ")"
	}
	return "#" + strconv.FormatUint(uint64(tlvType), 10)
}
