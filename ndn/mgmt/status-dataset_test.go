/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt_test

import (
	"testing"
	"time"

	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(t *testing.T, uris ...string) ([]*mgmt.FibEntry, [][]byte) {
	entries := make([]*mgmt.FibEntry, 0, len(uris))
	blocks := make([][]byte, 0, len(uris))
	for i, uri := range uris {
		entry := mgmt.MakeFibEntry(mustName(t, uri))
		entry.NextHops = append(entry.NextHops, mgmt.NextHopRecord{FaceID: uint64(256 + i), Cost: uint64(i)})
		entries = append(entries, entry)
		blocks = append(blocks, entry.Encode().Wire())
	}
	return entries, blocks
}

func TestSegmentDatasetGreedy(t *testing.T) {
	blocks := [][]byte{make([]byte, 40), make([]byte, 50), make([]byte, 30), make([]byte, 100)}

	segments, err := mgmt.SegmentDataset(blocks, 100)
	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Len(t, segments[0], 90)
	assert.Len(t, segments[1], 30)
	assert.Len(t, segments[2], 100)

	segments, err = mgmt.SegmentDataset(blocks, 1000)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0], 220)
}

func TestSegmentDatasetEmpty(t *testing.T) {
	segments, err := mgmt.SegmentDataset(nil, 100)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Empty(t, segments[0])
}

func TestSegmentDatasetEntryTooLarge(t *testing.T) {
	_, err := mgmt.SegmentDataset([][]byte{make([]byte, 10), make([]byte, 101)}, 100)
	assert.ErrorIs(t, err, mgmt.ErrEntryTooLarge)
}

func TestSegmentDatasetWithBufferDoesNotAlias(t *testing.T) {
	scratch := make([]byte, 0, 4)
	segments, err := mgmt.SegmentDatasetWithBuffer([][]byte{{1, 2, 3}, {4, 5}}, scratch)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, []byte{1, 2, 3}, segments[0])
	assert.Equal(t, []byte{4, 5}, segments[1])
}

func TestMakeStatusDataset(t *testing.T) {
	prefix := mustName(t, "/localhost/nfd/fib/list")
	packets := mgmt.MakeStatusDataset(prefix, 7, [][]byte{{1}, {2}, {3}}, time.Second)
	require.Len(t, packets, 3)
	for i, data := range packets {
		assert.Equal(t, "/localhost/nfd/fib/list/v=7/seg="+string(rune('0'+i)), data.Name().String())
		assert.Equal(t, "seg=2", data.MetaInfo().FinalBlockID().String())
		assert.Equal(t, time.Second, *data.MetaInfo().FreshnessPeriod())
		assert.Equal(t, i == 2, data.IsFinalBlock())
	}

	packets = mgmt.MakeStatusDataset(prefix, 8, nil, time.Second)
	require.Len(t, packets, 1)
	assert.True(t, packets[0].IsFinalBlock())
	assert.Empty(t, packets[0].Content())
}

func reassemble(t *testing.T, packets []*ndn.Data) *mgmt.DatasetReassembler {
	r := new(mgmt.DatasetReassembler)
	for i, data := range packets {
		// Decode from the wire to exercise the consumer path
		block, _, err := tlv.DecodeBlock(data.Encode().Wire())
		require.NoError(t, err)
		decoded, err := ndn.DecodeData(block, true)
		require.NoError(t, err)
		done, err := r.Add(decoded)
		require.NoError(t, err)
		assert.Equal(t, i == len(packets)-1, done)
	}
	return r
}

func TestReassembleOneEntryPerSegment(t *testing.T) {
	entries, blocks := makeEntries(t, "/a", "/a/b", "/c")
	segments, err := mgmt.SegmentDataset(blocks, len(blocks[1]))
	require.NoError(t, err)
	require.Len(t, segments, 3)

	r := reassemble(t, mgmt.MakeStatusDataset(mustName(t, "/localhost/nfd/fib/list"), 1, segments, time.Second))
	assert.Equal(t, 3, r.SegmentCount())
	assert.Equal(t, "/localhost/nfd/fib/list/v=1", r.VersionedName().String())
	decoded, err := r.FibEntries()
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	for i := range entries {
		assert.True(t, entries[i].Name.Equals(decoded[i].Name))
		assert.Equal(t, entries[i].NextHops, decoded[i].NextHops)
	}
}

func TestReassembleSingleSegment(t *testing.T) {
	_, blocks := makeEntries(t, "/a", "/a/b", "/c")
	segments, err := mgmt.SegmentDataset(blocks, mgmt.DefaultMaxSegmentSize)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	r := reassemble(t, mgmt.MakeStatusDataset(mustName(t, "/localhost/nfd/fib/list"), 1, segments, time.Second))
	decoded, err := r.FibEntries()
	require.NoError(t, err)
	assert.Len(t, decoded, 3)
}

func TestReassemblerErrors(t *testing.T) {
	packets := mgmt.MakeStatusDataset(mustName(t, "/d"), 1, [][]byte{{}, {}}, time.Second)

	r := new(mgmt.DatasetReassembler)
	_, err := r.Add(packets[1])
	assert.ErrorIs(t, err, mgmt.ErrSegmentOutOfOrder)
	_, err = r.Content()
	assert.ErrorIs(t, err, mgmt.ErrDatasetIncomplete)

	_, err = r.Add(ndn.NewData(mustName(t, "/d/v=1"), nil))
	assert.ErrorIs(t, err, mgmt.ErrNotSegment)

	done, err := r.Add(packets[0])
	require.NoError(t, err)
	assert.False(t, done)
	other := mgmt.MakeStatusDataset(mustName(t, "/d"), 2, [][]byte{{}, {}}, time.Second)
	_, err = r.Add(other[1])
	assert.ErrorIs(t, err, mgmt.ErrSegmentNameChanged)

	done, err = r.Add(packets[1])
	require.NoError(t, err)
	assert.True(t, done)
	_, err = r.Add(packets[1])
	assert.ErrorIs(t, err, mgmt.ErrDatasetComplete)

	content, err := r.Content()
	require.NoError(t, err)
	assert.Empty(t, content.Value())
}
