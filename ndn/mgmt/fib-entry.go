/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
)

// FibEntry contains status information about a FIB entry.
type FibEntry struct {
	Name     *ndn.Name
	NextHops []NextHopRecord
}

// NextHopRecord represents a next hop record in a FibEntry.
type NextHopRecord struct {
	FaceID uint64
	Cost   uint64
}

// MakeFibEntry creates an empty FibEntry.
func MakeFibEntry(name *ndn.Name) *FibEntry {
	f := new(FibEntry)
	f.Name = name
	f.NextHops = make([]NextHopRecord, 0)
	return f
}

// Encode encodes a NextHopRecord.
func (r NextHopRecord) Encode() *tlv.Block {
	wire := tlv.NewEmptyBlock(tlv.NextHopRecord)
	wire.Append(tlv.EncodeNNIBlock(tlv.FaceID, r.FaceID))
	wire.Append(tlv.EncodeNNIBlock(tlv.Cost, r.Cost))
	return wire
}

// Encode encodes a FibEntry.
func (f *FibEntry) Encode() *tlv.Block {
	wire := tlv.NewEmptyBlock(tlv.FibEntry)
	wire.Append(f.Name.Encode())
	for _, record := range f.NextHops {
		wire.Append(record.Encode())
	}
	return wire
}

// DecodeNextHopRecord decodes a NextHopRecord, which must contain exactly a FaceId followed by a Cost.
func DecodeNextHopRecord(wire *tlv.Block) (NextHopRecord, error) {
	if wire.Type() != tlv.NextHopRecord {
		return NextHopRecord{}, &tlv.DecodeError{Expected: tlv.NextHopRecord, Actual: wire.Type()}
	}
	it, err := tlv.NewElementIterator(wire)
	if err != nil {
		return NextHopRecord{}, err
	}

	var r NextHopRecord
	if r.FaceID, err = it.ReadNNI(tlv.FaceID); err != nil {
		return NextHopRecord{}, err
	}
	if r.Cost, err = it.ReadNNI(tlv.Cost); err != nil {
		return NextHopRecord{}, err
	}
	return r, it.ErrUnlessEnd()
}

// DecodeFibEntry decodes a FibEntry: a Name followed by zero or more NextHopRecords.
func DecodeFibEntry(wire *tlv.Block) (*FibEntry, error) {
	if wire.Type() != tlv.FibEntry {
		return nil, &tlv.DecodeError{Expected: tlv.FibEntry, Actual: wire.Type()}
	}
	it, err := tlv.NewElementIterator(wire)
	if err != nil {
		return nil, err
	}

	nameWire, err := it.Next(tlv.Name)
	if err != nil {
		return nil, err
	}
	name, err := ndn.DecodeName(nameWire)
	if err != nil {
		return nil, err
	}

	f := MakeFibEntry(name)
	for !it.AtEnd() {
		recordWire, err := it.Next(tlv.NextHopRecord)
		if err != nil {
			return nil, err
		}
		record, err := DecodeNextHopRecord(recordWire)
		if err != nil {
			return nil, err
		}
		f.NextHops = append(f.NextHops, record)
	}
	return f, nil
}

// DecodeFibDataset decodes the FibEntry blocks carried in the value of a Content block.
func DecodeFibDataset(content *tlv.Block) ([]*FibEntry, error) {
	if err := content.Parse(); err != nil {
		return nil, err
	}
	entries := make([]*FibEntry, 0, len(content.Elements()))
	for _, elem := range content.Elements() {
		entry, err := DecodeFibEntry(elem)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
