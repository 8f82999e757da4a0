/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"context"
	"sync"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"go.uber.org/atomic"
)

// Transport is the request/response channel of a face: it sends and receives whole TLV packets.
type Transport interface {
	String() string
	FaceID() uint64
	setFaceID(faceID uint64)
	setTable(table *Table)

	RemoteURI() *ndn.URI
	LocalURI() *ndn.URI
	Scope() ndn.Scope
	MTU() int
	State() State

	// Send transmits a single packet.
	Send(frame []byte) error
	// Receive blocks until a packet arrives, the face goes down, or the context is done.
	Receive(ctx context.Context) ([]byte, error)
	Close() error

	// Counters
	NInBytes() uint64
	NOutBytes() uint64
}

// transportBase provides logic common types between transport types
type transportBase struct {
	faceID    atomic.Uint64
	remoteURI *ndn.URI
	localURI  *ndn.URI
	scope     ndn.Scope
	mtu       int

	tableMutex sync.Mutex
	table      *Table

	state    atomic.Int32
	incoming chan []byte
	hasQuit  chan struct{}
	quitOnce sync.Once

	// Counters
	nInBytes  atomic.Uint64
	nOutBytes atomic.Uint64
}

func (t *transportBase) makeTransportBase(remoteURI *ndn.URI, localURI *ndn.URI, scope ndn.Scope, mtu int) {
	t.remoteURI = remoteURI
	t.localURI = localURI
	t.scope = scope
	t.mtu = mtu
	t.state.Store(int32(Up))
	t.incoming = make(chan []byte, faceQueueSize)
	t.hasQuit = make(chan struct{})
}

func (t *transportBase) setFaceID(faceID uint64) {
	t.faceID.Store(faceID)
}

func (t *transportBase) setTable(table *Table) {
	t.tableMutex.Lock()
	defer t.tableMutex.Unlock()
	t.table = table
}

//
// Getters
//

// FaceID returns the FaceID assigned by the face table, or 0 if not yet registered.
func (t *transportBase) FaceID() uint64 {
	return t.faceID.Load()
}

// LocalURI returns the local URI of the transport.
func (t *transportBase) LocalURI() *ndn.URI {
	return t.localURI
}

// RemoteURI returns the remote URI of the transport.
func (t *transportBase) RemoteURI() *ndn.URI {
	return t.remoteURI
}

// Scope returns the scope of the transport.
func (t *transportBase) Scope() ndn.Scope {
	return t.scope
}

// MTU returns the maximum transmission unit (MTU) of the Transport.
func (t *transportBase) MTU() int {
	return t.mtu
}

// State returns the state of the transport.
func (t *transportBase) State() State {
	return State(t.state.Load())
}

//
// Counters
//

// NInBytes returns the number of link-layer bytes received on this transport.
func (t *transportBase) NInBytes() uint64 {
	return t.nInBytes.Load()
}

// NOutBytes returns the number of link-layer bytes sent on this transport.
func (t *transportBase) NOutBytes() uint64 {
	return t.nOutBytes.Load()
}

//
// Packet queue
//

// Receive blocks until a packet arrives, the face goes down, or the context is done.
func (t *transportBase) Receive(ctx context.Context) ([]byte, error) {
	select {
	case frame := <-t.incoming:
		return frame, nil
	case <-t.hasQuit:
		return nil, ErrFaceDown
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// deliver queues a received frame, blocking while the queue is full.
func (t *transportBase) deliver(frame []byte) {
	t.nInBytes.Add(uint64(len(frame)))
	select {
	case t.incoming <- frame:
	case <-t.hasQuit:
	}
}

// goDown marks the transport down and unregisters it from its face table. It returns false if already down.
func (t *transportBase) goDown(self Transport) bool {
	wentDown := false
	t.quitOnce.Do(func() {
		core.LogInfo(self, "state: ", Up, " -> ", Down)
		t.state.Store(int32(Down))
		close(t.hasQuit)
		wentDown = true
	})
	if !wentDown {
		return false
	}

	t.tableMutex.Lock()
	table := t.table
	t.tableMutex.Unlock()
	if table != nil {
		table.Remove(t.FaceID())
	}
	return true
}
