/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/Link512/stealthpool"
	lru "github.com/hashicorp/golang-lru"
	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
)

// scratchBlockCnt is the number of segment scratch buffers kept by the FIB module.
const scratchBlockCnt = 2

// FIBModule is the module that handles FIB Management.
type FIBModule struct {
	manager *Thread

	// datasets holds encoded segments of recently published FIB datasets, keyed by version.
	datasets *lru.Cache
	// scratch holds buffers a segment is packed in before it is copied out.
	scratch *stealthpool.Pool
}

// MakeFIBModule creates a FIB management module.
func MakeFIBModule() *FIBModule {
	return new(FIBModule)
}

func (f *FIBModule) String() string {
	return "FIBMgmt"
}

func (f *FIBModule) registerManager(manager *Thread) {
	f.manager = manager

	var err error
	f.datasets, err = lru.New(manager.datasetCacheSize)
	if err != nil {
		core.LogFatal(f, "Unable to create dataset cache: ", err)
	}
	f.scratch, err = stealthpool.New(scratchBlockCnt, stealthpool.WithBlockSize(manager.maxSegmentSize))
	if err != nil {
		core.LogError(f, "Failed to allocate stealthpool, segments will be packed in heap buffers: ", err)
		f.scratch = nil
	}
}

func (f *FIBModule) getManager() *Thread {
	return f.manager
}

func (f *FIBModule) close() {
	if f.scratch != nil {
		f.scratch.Close()
		f.scratch = nil
	}
}

func (f *FIBModule) handleIncomingInterest(interest *ndn.Interest, inFace uint64) {
	// Dispatch by verb
	verb := interest.Name().At(f.manager.prefixLength() + 1).String()
	switch verb {
	case "add-nexthop":
		f.add(interest, inFace)
	case "remove-nexthop":
		f.remove(interest, inFace)
	case "list":
		f.list(interest, inFace)
	default:
		core.LogWarn(f, "Received Interest for non-existent verb '", verb, "'")
		response := makeControlResponse(501, "Unknown verb", nil)
		f.manager.sendResponse(response, interest, inFace)
	}
}

// commandParameters extracts the ControlParameters of a command, answering with 400 if they are missing or malformed.
func (f *FIBModule) commandParameters(interest *ndn.Interest, inFace uint64) *mgmt.ControlParameters {
	if interest.Name().Size() < f.manager.prefixLength()+3 {
		// Name not long enough to contain ControlParameters
		core.LogWarn(f, "Missing ControlParameters in ", interest.Name())
		f.manager.sendResponse(makeControlResponse(400, "ControlParameters is incorrect", nil), interest, inFace)
		return nil
	}

	params := decodeControlParameters(f, interest)
	if params == nil {
		f.manager.sendResponse(makeControlResponse(400, "ControlParameters is incorrect", nil), interest, inFace)
		return nil
	}

	if params.Name == nil {
		core.LogWarn(f, "Missing Name in ControlParameters for ", interest.Name())
		f.manager.sendResponse(makeControlResponse(400, "ControlParameters is incorrect", nil), interest, inFace)
		return nil
	}
	return params
}

func (f *FIBModule) add(interest *ndn.Interest, inFace uint64) {
	params := f.commandParameters(interest, inFace)
	if params == nil {
		return
	}

	faceID := inFace
	if params.FaceID != nil && *params.FaceID != 0 {
		faceID = *params.FaceID
	}
	if f.manager.faces.Get(faceID) == nil {
		response := makeControlResponse(410, "Face does not exist", nil)
		f.manager.sendResponse(response, interest, inFace)
		return
	}

	cost := uint64(0)
	if params.Cost != nil {
		cost = *params.Cost
	}
	f.manager.fib.Insert(params.Name, faceID, cost)

	core.LogInfo(f, "Created nexthop for ", params.Name, " to FaceID=", faceID, " with Cost=", cost)
	responseParams := mgmt.MakeControlParameters()
	responseParams.Name = params.Name
	responseParams.FaceID = &faceID
	responseParams.Cost = &cost
	f.manager.sendResponse(makeControlResponse(200, "OK", responseParams), interest, inFace)
}

func (f *FIBModule) remove(interest *ndn.Interest, inFace uint64) {
	params := f.commandParameters(interest, inFace)
	if params == nil {
		return
	}

	faceID := inFace
	if params.FaceID != nil && *params.FaceID != 0 {
		faceID = *params.FaceID
	}
	f.manager.fib.RemoveNextHop(params.Name, faceID)

	core.LogInfo(f, "Removed nexthop for ", params.Name, " to FaceID=", faceID)
	responseParams := mgmt.MakeControlParameters()
	responseParams.Name = params.Name
	responseParams.FaceID = &faceID
	f.manager.sendResponse(makeControlResponse(200, "OK", responseParams), interest, inFace)
}

// list serves the FIB dataset. An Interest for the dataset name publishes the current version, if not
// already published, and returns its first segment. An Interest naming a version and segment is answered
// from the published versions, so re-requesting a segment yields the same bytes.
func (f *FIBModule) list(interest *ndn.Interest, inFace uint64) {
	name := interest.Name()
	datasetLength := f.manager.prefixLength() + 2
	switch {
	case name.Size() == datasetLength:
		segments, ok := f.published(f.manager.fib.Generation())
		if !ok {
			segments, ok = f.publish()
			if !ok {
				return
			}
		}
		f.manager.sendData(segments[0], inFace)
	case name.Size() <= datasetLength+2 && name.At(datasetLength).IsVersion():
		version, _ := name.At(datasetLength).NumberValue()
		segment := uint64(0)
		if name.Size() == datasetLength+2 {
			if !name.At(datasetLength + 1).IsSegment() {
				core.LogDebug(f, "Dataset Interest ", name, " has no segment number - DROP")
				return
			}
			segment, _ = name.At(datasetLength + 1).NumberValue()
		}
		segments, ok := f.published(version)
		if !ok || segment >= uint64(len(segments)) {
			core.LogDebug(f, "FIB dataset ", name, " is not available - DROP")
			return
		}
		f.manager.sendData(segments[segment], inFace)
	default:
		core.LogDebug(f, "Unexpected FIB dataset Interest ", name, " - DROP")
	}
}

func (f *FIBModule) published(version uint64) ([][]byte, bool) {
	cached, ok := f.datasets.Get(version)
	if !ok {
		return nil, false
	}
	return cached.([][]byte), true
}

// publish snapshots the FIB, encodes it as a segmented dataset and caches the encoded segments.
func (f *FIBModule) publish() ([][]byte, bool) {
	entries, version := f.manager.fib.Snapshot()
	blocks := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		fibEntry := mgmt.MakeFibEntry(entry.Name)
		for _, nexthop := range entry.NextHops {
			fibEntry.NextHops = append(fibEntry.NextHops, mgmt.NextHopRecord{FaceID: nexthop.FaceID, Cost: nexthop.Cost})
		}
		blocks = append(blocks, fibEntry.Encode().Wire())
	}

	contents, err := f.segment(blocks)
	if err != nil {
		core.LogError(f, "Unable to publish FIB dataset version=", version, ": ", err)
		return nil, false
	}

	name := f.manager.prefix.Append(ndn.NewGenericNameComponent([]byte("fib")), ndn.NewGenericNameComponent([]byte("list")))
	packets := mgmt.MakeStatusDataset(name, version, contents, f.manager.datasetFreshness)
	segments := make([][]byte, len(packets))
	for i, data := range packets {
		segments[i] = data.Encode().Wire()
	}
	f.datasets.Add(version, segments)

	core.LogTrace(f, "Published FIB dataset version=", version, ", containing ", len(segments), " segments")
	return segments, true
}

func (f *FIBModule) segment(blocks [][]byte) ([][]byte, error) {
	maxSize := f.manager.maxSegmentSize
	if f.scratch == nil {
		return mgmt.SegmentDataset(blocks, maxSize)
	}
	scratch, err := f.scratch.Get()
	if err != nil {
		return mgmt.SegmentDataset(blocks, maxSize)
	}
	defer f.scratch.Return(scratch)
	if cap(scratch) < maxSize {
		return mgmt.SegmentDataset(blocks, maxSize)
	}
	return mgmt.SegmentDatasetWithBuffer(blocks, scratch[:0:maxSize])
}
