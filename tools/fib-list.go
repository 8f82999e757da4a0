/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
)

// DefaultSegmentTimeout is how long FibLister waits for each segment before retrying.
const DefaultSegmentTimeout = time.Second

// DefaultRetries is the number of times FibLister re-requests a segment that did not arrive.
const DefaultRetries = 2

// FibLister retrieves the FIB dataset from a forwarder.
type FibLister struct {
	transport face.Transport
	prefix    *ndn.Name

	// SegmentTimeout bounds the wait for each segment.
	SegmentTimeout time.Duration
	// Retries is the number of re-requests of a segment before giving up.
	Retries int
}

// NewFibLister creates a lister that expresses Interests on the transport, under the management prefix.
func NewFibLister(transport face.Transport, prefix *ndn.Name) *FibLister {
	return &FibLister{
		transport:      transport,
		prefix:         prefix,
		SegmentTimeout: DefaultSegmentTimeout,
		Retries:        DefaultRetries,
	}
}

func (l *FibLister) String() string {
	return "FibLister"
}

// Fetch requests every segment of one version of the dataset, in order, and returns the reassembler holding them.
func (l *FibLister) Fetch(ctx context.Context) (*mgmt.DatasetReassembler, error) {
	reassembler := new(mgmt.DatasetReassembler)
	name := l.prefix.Append(ndn.NewGenericNameComponent([]byte("fib")), ndn.NewGenericNameComponent([]byte("list")))
	for {
		data, err := expressWithRetries(ctx, l.transport, name, l.SegmentTimeout, l.Retries)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", reassembler.NextSegment(), err)
		}
		complete, err := reassembler.Add(data)
		if err != nil {
			return nil, err
		}
		core.LogTrace(l, "Received segment ", data.Name())
		if complete {
			return reassembler, nil
		}
		name = reassembler.VersionedName().Append(ndn.NewSegmentNameComponent(reassembler.NextSegment()))
	}
}

// List retrieves and decodes the FIB dataset.
func (l *FibLister) List(ctx context.Context) ([]*mgmt.FibEntry, error) {
	reassembler, err := l.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return reassembler.FibEntries()
}

// expressWithRetries sends an Interest and waits for Data under its name, re-sending it after each timeout.
func expressWithRetries(ctx context.Context, transport face.Transport, name *ndn.Name, timeout time.Duration, retries int) (*ndn.Data, error) {
	for attempt := 0; ; attempt++ {
		data, err := express(ctx, transport, name, timeout)
		if err == nil || !errors.Is(err, ErrNoResponse) || attempt >= retries {
			return data, err
		}
		core.LogDebug(transport, "Timed out waiting for ", name, ", retrying")
	}
}

// express sends an Interest and waits up to timeout for Data whose name it is a prefix of, skipping other packets.
func express(ctx context.Context, transport face.Transport, name *ndn.Name, timeout time.Duration) (*ndn.Data, error) {
	interest := ndn.NewInterest(name)
	interest.SetCanBePrefix(true)
	interest.SetMustBeFresh(true)
	interest.SetLifetime(timeout)
	if err := transport.Send(interest.Encode().Wire()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	for {
		wire, err := transport.Receive(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrNoResponse, name)
		} else if err != nil {
			return nil, err
		}

		block, _, err := tlv.DecodeBlock(wire)
		if err != nil || block.Type() != tlv.Data {
			continue
		}
		data, err := ndn.DecodeData(block, false)
		if err != nil {
			core.LogDebug(transport, "Unable to decode received Data: ", err, " - DROP")
			continue
		}
		if name.PrefixOf(data.Name()) {
			return data, nil
		}
	}
}
