/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt_test

import (
	"testing"

	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	ndnmgmt "github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestFibAddNextHop(t *testing.T) {
	f := newFixture(t, "")
	other, _ := face.MakeInternalTransportPair()
	otherFace := f.faces.Add(other)

	params := ndnmgmt.MakeControlParameters()
	params.Name = mustName(t, "/example/prefix")
	params.FaceID = uint64Ptr(otherFace)
	params.Cost = uint64Ptr(25)
	f.express(commandName(t, "/localhost/nfd/fib/add-nexthop", params))

	response := f.receiveResponse(t)
	assert.Equal(t, uint64(200), response.StatusCode)
	echoed, err := ndnmgmt.DecodeControlParameters(response.Body)
	require.NoError(t, err)
	assert.True(t, echoed.Name.Equals(params.Name))
	assert.Equal(t, otherFace, *echoed.FaceID)
	assert.Equal(t, uint64(25), *echoed.Cost)

	entry := f.fib.FindExactMatch(params.Name)
	require.NotNil(t, entry)
	assert.Equal(t, []table.NextHop{{FaceID: otherFace, Cost: 25}}, entry.NextHops)
}

func TestFibAddNextHopDefaults(t *testing.T) {
	f := newFixture(t, "")

	params := ndnmgmt.MakeControlParameters()
	params.Name = mustName(t, "/example")
	f.express(commandName(t, "/localhost/nfd/fib/add-nexthop", params))

	response := f.receiveResponse(t)
	assert.Equal(t, uint64(200), response.StatusCode)
	entry := f.fib.FindExactMatch(params.Name)
	require.NotNil(t, entry)
	assert.Equal(t, []table.NextHop{{FaceID: f.clientFace, Cost: 0}}, entry.NextHops)
}

func TestFibAddNextHopNonExistentFace(t *testing.T) {
	f := newFixture(t, "")

	params := ndnmgmt.MakeControlParameters()
	params.Name = mustName(t, "/example")
	params.FaceID = uint64Ptr(999)
	f.express(commandName(t, "/localhost/nfd/fib/add-nexthop", params))

	response := f.receiveResponse(t)
	assert.Equal(t, uint64(410), response.StatusCode)
	assert.Equal(t, 0, f.fib.Size())
}

func TestFibIncorrectParameters(t *testing.T) {
	f := newFixture(t, "")

	// Missing ControlParameters
	f.express(mustName(t, "/localhost/nfd/fib/add-nexthop"))
	assert.Equal(t, uint64(400), f.receiveResponse(t).StatusCode)

	// Missing Name
	params := ndnmgmt.MakeControlParameters()
	params.Cost = uint64Ptr(1)
	f.express(commandName(t, "/localhost/nfd/fib/add-nexthop", params))
	assert.Equal(t, uint64(400), f.receiveResponse(t).StatusCode)

	// Not a ControlParameters block
	garbage := mustName(t, "/localhost/nfd/fib/remove-nexthop").Append(ndn.NewGenericNameComponent([]byte{0x15, 0x00}))
	f.express(garbage)
	assert.Equal(t, uint64(400), f.receiveResponse(t).StatusCode)

	assert.Equal(t, 0, f.fib.Size())
}

func TestFibUnknownVerb(t *testing.T) {
	f := newFixture(t, "")
	f.express(mustName(t, "/localhost/nfd/fib/update"))
	response := f.receiveResponse(t)
	assert.Equal(t, uint64(501), response.StatusCode)
	assert.Nil(t, response.Body)
}

func TestFibRemoveNextHop(t *testing.T) {
	f := newFixture(t, "")
	prefix := mustName(t, "/example")
	f.fib.Insert(prefix, f.clientFace, 1)
	f.fib.Insert(prefix, 300, 2)

	params := ndnmgmt.MakeControlParameters()
	params.Name = prefix
	f.express(commandName(t, "/localhost/nfd/fib/remove-nexthop", params))
	response := f.receiveResponse(t)
	assert.Equal(t, uint64(200), response.StatusCode)
	echoed, err := ndnmgmt.DecodeControlParameters(response.Body)
	require.NoError(t, err)
	assert.Equal(t, f.clientFace, *echoed.FaceID)
	assert.Nil(t, echoed.Cost)

	entry := f.fib.FindExactMatch(prefix)
	require.NotNil(t, entry)
	assert.Equal(t, []table.NextHop{{FaceID: 300, Cost: 2}}, entry.NextHops)

	// Removing the last next hop erases the entry; removing again still succeeds
	params.FaceID = uint64Ptr(300)
	f.express(commandName(t, "/localhost/nfd/fib/remove-nexthop", params))
	assert.Equal(t, uint64(200), f.receiveResponse(t).StatusCode)
	f.express(commandName(t, "/localhost/nfd/fib/remove-nexthop", params))
	assert.Equal(t, uint64(200), f.receiveResponse(t).StatusCode)
	assert.Nil(t, f.fib.FindExactMatch(prefix))
}

// fetchFibDataset retrieves every segment of the FIB dataset, starting with an Interest for the unversioned name.
func fetchFibDataset(t *testing.T, f *fixture) (*ndnmgmt.DatasetReassembler, [][]byte) {
	reassembler := new(ndnmgmt.DatasetReassembler)
	var wires [][]byte

	f.express(mustName(t, "/localhost/nfd/fib/list"))
	for {
		wire := f.receiveRaw(t)
		wires = append(wires, wire)
		block, _, err := tlv.DecodeBlock(wire)
		require.NoError(t, err)
		data, err := ndn.DecodeData(block, false)
		require.NoError(t, err)

		complete, err := reassembler.Add(data)
		require.NoError(t, err)
		if complete {
			return reassembler, wires
		}
		f.express(reassembler.VersionedName().Append(ndn.NewSegmentNameComponent(reassembler.NextSegment())))
	}
}

func TestFibListEmpty(t *testing.T) {
	f := newFixture(t, "")
	reassembler, _ := fetchFibDataset(t, f)
	assert.Equal(t, 1, reassembler.SegmentCount())
	entries, err := reassembler.FibEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFibListSegmented(t *testing.T) {
	// Each encoded entry takes 18 bytes, so two fit in a segment
	f := newFixture(t, "[mgmt]\nmax_segment_size = 40\n")
	f.fib.Insert(mustName(t, "/c/c"), 3, 30)
	f.fib.Insert(mustName(t, "/a/a"), 1, 10)
	f.fib.Insert(mustName(t, "/b/b"), 2, 20)

	reassembler, _ := fetchFibDataset(t, f)
	assert.Equal(t, 2, reassembler.SegmentCount())
	version, err := reassembler.VersionedName().At(-1).NumberValue()
	require.NoError(t, err)
	assert.Equal(t, f.fib.Generation(), version)

	entries, err := reassembler.FibEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, uri := range []string{"/a/a", "/b/b", "/c/c"} {
		assert.Equal(t, uri, entries[i].Name.String())
		assert.Equal(t, []ndnmgmt.NextHopRecord{{FaceID: uint64(i + 1), Cost: uint64(10 * (i + 1))}}, entries[i].NextHops)
	}
}

func TestFibListReRequestIsStable(t *testing.T) {
	f := newFixture(t, "[mgmt]\nmax_segment_size = 40\n")
	f.fib.Insert(mustName(t, "/a/a"), 1, 10)
	f.fib.Insert(mustName(t, "/b/b"), 2, 20)
	f.fib.Insert(mustName(t, "/c/c"), 3, 30)

	reassembler, wires := fetchFibDataset(t, f)
	versioned := reassembler.VersionedName()

	// A mutation publishes a new version, but the old one remains retrievable
	f.fib.Insert(mustName(t, "/d/d"), 4, 40)
	f.express(versioned.Append(ndn.NewSegmentNameComponent(1)))
	assert.Equal(t, wires[1], f.receiveRaw(t))
	f.express(versioned)
	assert.Equal(t, wires[0], f.receiveRaw(t))

	// An unchanged FIB serves the same version
	reassembler, _ = fetchFibDataset(t, f)
	again, _ := fetchFibDataset(t, f)
	assert.True(t, reassembler.VersionedName().Equals(again.VersionedName()))
	assert.False(t, reassembler.VersionedName().Equals(versioned))
}

func TestFibListUnavailable(t *testing.T) {
	f := newFixture(t, "")
	f.fib.Insert(mustName(t, "/a"), 1, 10)

	// Unpublished version
	f.express(mustName(t, "/localhost/nfd/fib/list").Append(ndn.NewVersionNameComponent(1000), ndn.NewSegmentNameComponent(0)))
	f.assertSilent(t)

	// Segment beyond the last
	reassembler, _ := fetchFibDataset(t, f)
	f.express(reassembler.VersionedName().Append(ndn.NewSegmentNameComponent(1)))
	f.assertSilent(t)

	// Not a version
	f.express(mustName(t, "/localhost/nfd/fib/list/extra"))
	f.assertSilent(t)
}

func TestFibListEntryTooLarge(t *testing.T) {
	f := newFixture(t, "[mgmt]\nmax_segment_size = 10\n")
	f.fib.Insert(mustName(t, "/a/a"), 1, 10)

	f.express(mustName(t, "/localhost/nfd/fib/list"))
	f.assertSilent(t)
}
