/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"time"

	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/mgmt"
	"github.com/paNjii/NFD/table"
)

// NDNDConfig is the configuration of the forwarder process.
type NDNDConfig struct {
	Version        string
	ConfigFileName string
	LogFile        string
	CpuProfile     string
	MemProfile     string
	BlockProfile   string
}

// NDND is the wrapper class for the forwarding daemon.
type NDND struct {
	config   *NDNDConfig
	profiler *Profiler

	fib        *table.Fib
	faces      *face.Table
	management *mgmt.Thread

	internalClient *face.InternalTransport
	wsListener     *face.WebSocketListener
}

// NewNDND creates an NDND, loading its configuration file (if any) and initializing the logger.
func NewNDND(config *NDNDConfig) (*NDND, error) {
	// Provide metadata to other threads.
	core.Version = config.Version
	core.StartTimestamp = time.Now()

	if config.ConfigFileName != "" {
		if err := core.LoadConfig(config.ConfigFileName); err != nil {
			return nil, err
		}
	}
	if err := core.InitializeLogger(config.LogFile); err != nil {
		return nil, err
	}
	face.Configure()

	return &NDND{
		config:   config,
		profiler: NewProfiler(config),
	}, nil
}

// Start runs the forwarder. This function is non-blocking.
func (n *NDND) Start() {
	core.LogInfo("Main", "Starting NDND")
	n.profiler.Start()

	n.fib = table.NewFib()
	n.faces = face.NewTable()
	n.management = mgmt.MakeMgmtThread(n.fib, n.faces)
	n.faces.OnFaceAdded(n.management.AttachFace)
	n.faces.OnFaceRemoved(func(faceID uint64) {
		if removed := n.fib.RemoveNextHopsForFace(faceID); removed > 0 {
			core.LogInfo("Main", "Removed ", removed, " next hops of FaceID=", faceID)
		}
	})
	go n.management.Run()

	// Internal face for in-process applications
	internalForwarder, internalClient := face.MakeInternalTransportPair()
	n.faces.Add(internalForwarder)
	n.internalClient = internalClient

	if face.WebSocketConfig.Enabled {
		cfg := face.WebSocketConfig
		var err error
		n.wsListener, err = face.NewWebSocketListener(cfg, n.faces)
		if err != nil {
			core.LogError("Main", "Unable to create ", cfg, ": ", err)
		} else {
			go n.wsListener.Run()
			core.LogInfo("Main", "Created ", cfg)
		}
	}
}

// Stop shuts down the forwarder.
func (n *NDND) Stop() {
	core.LogInfo("Main", "Forwarder shutting down ...")

	if n.wsListener != nil {
		n.wsListener.Close()
	}

	// Tell all faces to quit
	for _, f := range n.faces.GetAll() {
		f.Close()
	}

	n.management.Stop()
	n.profiler.Stop()
	core.ShutdownLogger()
}

// Fib returns the forwarding table of the running forwarder.
func (n *NDND) Fib() *table.Fib {
	return n.fib
}

// Faces returns the face table of the running forwarder.
func (n *NDND) Faces() *face.Table {
	return n.faces
}

// InternalClient returns the application end of the internal face.
func (n *NDND) InternalClient() face.Transport {
	return n.internalClient
}
