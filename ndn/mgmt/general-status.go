/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/paNjii/NFD/ndn/tlv"
)

// GeneralStatus contains status information about the forwarder's overall status.
type GeneralStatus struct {
	NfdVersion       string
	StartTimestamp   uint64
	CurrentTimestamp uint64
	NNameTreeEntries uint64
	NFibEntries      uint64
}

// Encode encodes a GeneralStatus as a sequence of blocks, to be carried in a Data content field.
func (g *GeneralStatus) Encode() [][]byte {
	return [][]byte{
		tlv.NewBlock(tlv.NfdVersion, []byte(g.NfdVersion)).Wire(),
		tlv.EncodeNNIBlock(tlv.StartTimestamp, g.StartTimestamp).Wire(),
		tlv.EncodeNNIBlock(tlv.CurrentTimestamp, g.CurrentTimestamp).Wire(),
		tlv.EncodeNNIBlock(tlv.NNameTreeEntries, g.NNameTreeEntries).Wire(),
		tlv.EncodeNNIBlock(tlv.NFibEntries, g.NFibEntries).Wire(),
	}
}

// DecodeGeneralStatus decodes a GeneralStatus from the value of a Content block.
func DecodeGeneralStatus(content *tlv.Block) (*GeneralStatus, error) {
	it, err := tlv.NewElementIterator(content)
	if err != nil {
		return nil, err
	}

	g := new(GeneralStatus)
	version, err := it.Next(tlv.NfdVersion)
	if err != nil {
		return nil, err
	}
	g.NfdVersion = string(version.Value())
	if g.StartTimestamp, err = it.ReadNNI(tlv.StartTimestamp); err != nil {
		return nil, err
	}
	if g.CurrentTimestamp, err = it.ReadNNI(tlv.CurrentTimestamp); err != nil {
		return nil, err
	}
	if g.NNameTreeEntries, err = it.ReadNNI(tlv.NNameTreeEntries); err != nil {
		return nil, err
	}
	if g.NFibEntries, err = it.ReadNNI(tlv.NFibEntries); err != nil {
		return nil, err
	}
	return g, nil
}
