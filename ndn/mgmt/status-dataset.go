/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"fmt"
	"time"

	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
)

// DefaultMaxSegmentSize is the default budget for the content of a single dataset segment.
const DefaultMaxSegmentSize = 8000

// SegmentDataset greedily packs encoded blocks into segments of at most maxSize octets.
// Blocks are never split, so segment boundaries always fall on block boundaries.
// An empty dataset yields a single empty segment.
func SegmentDataset(blocks [][]byte, maxSize int) ([][]byte, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: segment size budget is %d", ErrEntryTooLarge, maxSize)
	}
	return SegmentDatasetWithBuffer(blocks, make([]byte, 0, maxSize))
}

// SegmentDatasetWithBuffer is like SegmentDataset, but accumulates each segment in scratch,
// whose capacity is the segment size budget. Returned segments do not alias scratch.
func SegmentDatasetWithBuffer(blocks [][]byte, scratch []byte) ([][]byte, error) {
	maxSize := cap(scratch)
	current := scratch[:0]
	segments := make([][]byte, 0, 1)
	closeSegment := func() {
		segment := make([]byte, len(current))
		copy(segment, current)
		segments = append(segments, segment)
		current = current[:0]
	}

	for i, block := range blocks {
		if len(block) > maxSize {
			return nil, fmt.Errorf("%w: entry %d is %d octets, budget is %d", ErrEntryTooLarge, i, len(block), maxSize)
		}
		if len(current)+len(block) > maxSize {
			closeSegment()
		}
		current = append(current, block...)
	}
	if len(current) > 0 || len(segments) == 0 {
		closeSegment()
	}
	return segments, nil
}

// MakeStatusDataset creates a set of status dataset packets based upon the specified prefix, version, and segment contents.
// Segment n is named <prefix>/v=<version>/seg=<n> and every segment carries the FinalBlockId of the last one.
func MakeStatusDataset(prefix *ndn.Name, version uint64, segments [][]byte, freshness time.Duration) []*ndn.Data {
	if len(segments) == 0 {
		segments = [][]byte{{}}
	}
	versioned := prefix.Append(ndn.NewVersionNameComponent(version))
	finalBlockID := ndn.NewSegmentNameComponent(uint64(len(segments) - 1))

	packets := make([]*ndn.Data, len(segments))
	for segment, content := range segments {
		data := ndn.NewData(versioned.Append(ndn.NewSegmentNameComponent(uint64(segment))), content)
		metaInfo := ndn.NewMetaInfo()
		metaInfo.SetFreshnessPeriod(freshness)
		metaInfo.SetFinalBlockID(finalBlockID)
		data.SetMetaInfo(metaInfo)
		packets[segment] = data
	}
	return packets
}

// DatasetReassembler accumulates the segments of one status dataset response, which must be added in order.
type DatasetReassembler struct {
	prefix   *ndn.Name
	next     uint64
	buffer   []byte
	complete bool
}

// Add appends the content of the next segment. It returns true once the final segment has been consumed.
func (r *DatasetReassembler) Add(data *ndn.Data) (bool, error) {
	if r.complete {
		return true, ErrDatasetComplete
	}

	name := data.Name()
	if name.Size() == 0 || !name.At(-1).IsSegment() {
		return false, ErrNotSegment
	}
	segment, err := name.At(-1).NumberValue()
	if err != nil {
		return false, ErrNotSegment
	}
	if segment != r.next {
		return false, fmt.Errorf("%w: expected segment %d, got %d", ErrSegmentOutOfOrder, r.next, segment)
	}
	if r.prefix == nil {
		r.prefix = name.Prefix(-1)
	} else if !r.prefix.Equals(name.Prefix(-1)) {
		return false, fmt.Errorf("%w: %s is not under %s", ErrSegmentNameChanged, name, r.prefix)
	}

	r.buffer = append(r.buffer, data.Content()...)
	r.next++
	r.complete = data.IsFinalBlock()
	return r.complete, nil
}

// NextSegment returns the number of the segment expected next.
func (r *DatasetReassembler) NextSegment() uint64 {
	return r.next
}

// SegmentCount returns the number of segments consumed so far.
func (r *DatasetReassembler) SegmentCount() int {
	return int(r.next)
}

// VersionedName returns the name shared by all segments, including the version component, or nil before the first segment.
func (r *DatasetReassembler) VersionedName() *ndn.Name {
	return r.prefix
}

// Complete returns whether the final segment has been consumed.
func (r *DatasetReassembler) Complete() bool {
	return r.complete
}

// Content returns the reassembled payload wrapped in a single Content block.
func (r *DatasetReassembler) Content() (*tlv.Block, error) {
	if !r.complete {
		return nil, ErrDatasetIncomplete
	}
	return tlv.NewBlock(tlv.Content, r.buffer), nil
}

// FibEntries decodes the reassembled payload as a FIB dataset.
func (r *DatasetReassembler) FibEntries() ([]*FibEntry, error) {
	content, err := r.Content()
	if err != nil {
		return nil, err
	}
	return DecodeFibDataset(content)
}
