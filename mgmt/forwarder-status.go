/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"time"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
)

// ForwarderStatusModule is the module that provide forwarder status information.
type ForwarderStatusModule struct {
	manager                   *Thread
	nextGeneralDatasetVersion uint64
}

func (f *ForwarderStatusModule) String() string {
	return "ForwarderStatusMgmt"
}

func (f *ForwarderStatusModule) registerManager(manager *Thread) {
	f.manager = manager
}

func (f *ForwarderStatusModule) getManager() *Thread {
	return f.manager
}

func (f *ForwarderStatusModule) handleIncomingInterest(interest *ndn.Interest, inFace uint64) {
	// Dispatch by verb
	verb := interest.Name().At(f.manager.prefixLength() + 1).String()
	switch verb {
	case "general":
		f.general(interest, inFace)
	default:
		core.LogWarn(f, "Received Interest for non-existent verb '", verb, "'")
		response := makeControlResponse(501, "Unknown verb", nil)
		f.manager.sendResponse(response, interest, inFace)
	}
}

func (f *ForwarderStatusModule) general(interest *ndn.Interest, inFace uint64) {
	if interest.Name().Size() > f.manager.prefixLength()+2 {
		// Ignore because contains version and/or segment components
		return
	}

	// Generate new dataset
	status := &mgmt.GeneralStatus{
		NfdVersion:       core.Version,
		StartTimestamp:   uint64(core.StartTimestamp.UnixNano() / 1000 / 1000),
		CurrentTimestamp: uint64(time.Now().UnixNano() / 1000 / 1000),
		NNameTreeEntries: uint64(f.manager.fib.NameTreeSize()),
		NFibEntries:      uint64(f.manager.fib.Size()),
	}
	contents, err := mgmt.SegmentDataset(status.Encode(), f.manager.maxSegmentSize)
	if err != nil {
		core.LogError(f, "Unable to encode forwarder status dataset: ", err)
		return
	}

	name := f.manager.prefix.Append(ndn.NewGenericNameComponent([]byte("status")), ndn.NewGenericNameComponent([]byte("general")))
	segments := mgmt.MakeStatusDataset(name, f.nextGeneralDatasetVersion, contents, f.manager.datasetFreshness)
	for _, segment := range segments {
		f.manager.sendData(segment.Encode().Wire(), inFace)
	}

	core.LogTrace(f, "Published forwarder status dataset version=", f.nextGeneralDatasetVersion,
		", containing ", len(segments), " segments")
	f.nextGeneralDatasetVersion++
}
