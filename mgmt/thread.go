/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"context"
	"sync"
	"time"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/table"
	"github.com/paNjii/NFD/utils/comparison"
	"go.uber.org/atomic"
)

type incomingPacket struct {
	wire   []byte
	inFace uint64
}

// Thread Represents the management thread
type Thread struct {
	prefix  *ndn.Name
	fib     *table.Fib
	faces   *face.Table
	modules map[string]Module
	fibMgmt *FIBModule

	queue  chan incomingPacket
	ctx    context.Context
	cancel context.CancelFunc

	// started is claimed by whichever of Run and Stop comes first; done is closed once Run has returned
	started atomic.Bool
	done    chan struct{}

	pumpMutex sync.Mutex
	stopped   bool
	pumps     sync.WaitGroup
	stopOnce  sync.Once

	maxSegmentSize   int
	datasetFreshness time.Duration
	datasetCacheSize int
}

// MakeMgmtThread creates a new management thread serving the specified FIB to faces of the specified face table.
func MakeMgmtThread(fib *table.Fib, faces *face.Table) *Thread {
	m := new(Thread)
	var err error
	m.prefix, err = ndn.NameFromString(core.GetConfigStringDefault("mgmt.prefix", "/localhost/nfd"))
	if err != nil {
		core.LogFatal(m, "Unable to create name for management prefix: ", err)
	}
	m.fib = fib
	m.faces = faces
	m.queue = make(chan incomingPacket, core.GetConfigIntDefault("faces.queue_size", 1024))
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.done = make(chan struct{})
	// Segments must fit in a packet along with their name and MetaInfo
	m.maxSegmentSize = comparison.Clamp(core.GetConfigIntDefault("mgmt.max_segment_size", mgmt.DefaultMaxSegmentSize),
		1, mgmt.DefaultMaxSegmentSize)
	m.datasetFreshness = time.Duration(core.GetConfigIntDefault("mgmt.dataset_freshness", 1000)) * time.Millisecond
	m.datasetCacheSize = comparison.Max(core.GetConfigIntDefault("mgmt.dataset_cache_size", 16), 1)

	m.modules = make(map[string]Module)
	m.fibMgmt = MakeFIBModule()
	m.registerModule("fib", m.fibMgmt)
	m.registerModule("status", new(ForwarderStatusModule))
	return m
}

func (m *Thread) String() string {
	return "Management"
}

func (m *Thread) registerModule(name string, module Module) {
	m.modules[name] = module
	module.registerManager(m)
}

func (m *Thread) prefixLength() int {
	return m.prefix.Size()
}

// Prefix returns the management prefix.
func (m *Thread) Prefix() *ndn.Name {
	return m.prefix
}

// AttachFace starts delivering packets received on the face to the management thread.
func (m *Thread) AttachFace(t face.Transport) {
	m.pumpMutex.Lock()
	defer m.pumpMutex.Unlock()
	if m.stopped {
		return
	}
	m.pumps.Add(1)
	go func() {
		defer m.pumps.Done()
		for {
			frame, err := t.Receive(m.ctx)
			if err != nil {
				core.LogTrace(m, "Stopped receiving on FaceID=", t.FaceID(), ": ", err)
				return
			}
			select {
			case m.queue <- incomingPacket{wire: frame, inFace: t.FaceID()}:
			case <-m.ctx.Done():
				return
			}
		}
	}()
}

// Run management thread. It returns once Stop is called, or immediately if Stop was called before.
func (m *Thread) Run() {
	if !m.started.CAS(false, true) {
		return
	}
	defer close(m.done)

	core.LogInfo(m, "Starting management on ", m.prefix)
	for {
		select {
		case packet := <-m.queue:
			m.HandleFrame(packet.wire, packet.inFace)
		case <-m.ctx.Done():
			core.LogInfo(m, "Management quitting")
			return
		}
	}
}

// Stop stops the management thread and the delivery of packets to it.
// It returns after Run and all packet delivery goroutines have exited.
func (m *Thread) Stop() {
	m.stopOnce.Do(func() {
		m.cancel()
		if m.started.CAS(false, true) {
			// Run never started and now never will
			close(m.done)
		}
		<-m.done

		m.pumpMutex.Lock()
		m.stopped = true
		m.pumpMutex.Unlock()
		m.pumps.Wait()

		m.fibMgmt.close()
	})
}

// HandleFrame processes a single packet received on the specified face.
// Malformed packets are logged and dropped.
func (m *Thread) HandleFrame(wire []byte, inFace uint64) {
	core.LogTrace(m, "Received block on face, IncomingFaceID=", inFace)
	block, _, err := tlv.DecodeBlock(wire)
	if err != nil {
		core.LogWarn(m, "Unable to decode received block: ", err, " - DROP")
		return
	}

	// We only expect Interests, so drop Data packets
	if block.Type() != tlv.Interest {
		core.LogWarn(m, "Dropping received non-Interest packet of type ", tlv.TypeString(block.Type()))
		return
	}
	interest, err := ndn.DecodeInterest(block)
	if err != nil {
		core.LogWarn(m, "Unable to decode received Interest: ", err, " - DROP")
		return
	}

	// Ensure Interest name matches expectations
	if interest.Name().Size() < m.prefixLength()+2 { // Module + Verb
		core.LogInfo(m, "Control command name ", interest.Name(), " has unexpected number of components - DROP")
		return
	}
	if !m.prefix.PrefixOf(interest.Name()) {
		core.LogInfo(m, "Control command name ", interest.Name(), " has unexpected prefix - DROP")
		return
	}

	// Only allow from local faces
	inTransport := m.faces.Get(inFace)
	if inTransport == nil || inTransport.Scope() != ndn.Local {
		core.LogWarn(m, "Received management Interest from non-local FaceID=", inFace, " - DROP")
		return
	}

	core.LogTrace(m, "Received management Interest ", interest.Name())

	moduleName := interest.Name().At(m.prefixLength()).String()
	module, ok := m.modules[moduleName]
	if !ok {
		core.LogWarn(m, "Received management Interest for unknown module ", moduleName, " - DROP")
		return
	}
	module.handleIncomingInterest(interest, inFace)
}

// sendResponse answers the command Interest with a ControlResponse.
func (m *Thread) sendResponse(response *mgmt.ControlResponse, interest *ndn.Interest, inFace uint64) {
	data := ndn.NewData(interest.Name(), response.Encode().Wire())
	m.sendData(data.Encode().Wire(), inFace)
}

func (m *Thread) sendData(wire []byte, inFace uint64) {
	outTransport := m.faces.Get(inFace)
	if outTransport == nil {
		core.LogWarn(m, "Unable to send response: FaceID=", inFace, " does not exist - DROP")
		return
	}
	if err := outTransport.Send(wire); err != nil {
		core.LogWarn(m, "Unable to send response on FaceID=", inFace, ": ", err)
	}
}
