/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"strconv"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
)

// InternalTransport is one end of an in-process pair of transports, used to attach applications
// (such as management clients) running inside the forwarder process.
type InternalTransport struct {
	transportBase
	peer *InternalTransport
}

var _ Transport = &InternalTransport{}

// MakeInternalTransportPair creates two connected internal transports. A packet sent on one is received on the other.
func MakeInternalTransportPair() (*InternalTransport, *InternalTransport) {
	a := new(InternalTransport)
	a.makeTransportBase(ndn.MakeInternalFaceURI(), ndn.MakeInternalFaceURI(), ndn.Local, tlv.MaxNDNPacketSize)
	b := new(InternalTransport)
	b.makeTransportBase(ndn.MakeInternalFaceURI(), ndn.MakeInternalFaceURI(), ndn.Local, tlv.MaxNDNPacketSize)
	a.peer = b
	b.peer = a
	return a, b
}

func (t *InternalTransport) String() string {
	return "InternalTransport, FaceID=" + strconv.FormatUint(t.FaceID(), 10)
}

// Send delivers a copy of the packet to the peer transport.
func (t *InternalTransport) Send(frame []byte) error {
	if t.State() != Up || t.peer.State() != Up {
		return ErrFaceDown
	}
	if len(frame) > t.MTU() {
		core.LogWarn(t, "Attempted to send frame larger than MTU - DROP")
		return ErrFrameTooLarge
	}

	core.LogTrace(t, "Sending frame of size ", len(frame))
	copied := make([]byte, len(frame))
	copy(copied, frame)
	t.nOutBytes.Add(uint64(len(frame)))
	t.peer.deliver(copied)
	return nil
}

// Close brings down both ends of the pair.
func (t *InternalTransport) Close() error {
	t.goDown(t)
	t.peer.goDown(t.peer)
	return nil
}
