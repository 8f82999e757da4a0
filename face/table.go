/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"sync"

	"github.com/cornelk/hashmap"
	"github.com/paNjii/NFD/core"
	"go.uber.org/atomic"
)

// Table holds all faces used by the forwarder.
type Table struct {
	faces      *hashmap.HashMap
	nextFaceID atomic.Uint64

	// removeMutex makes removal happen once per face
	removeMutex sync.Mutex

	callbackMutex sync.RWMutex
	onAdded       []func(face Transport)
	onRemoved     []func(faceID uint64)
}

// NewTable creates an empty face table. FaceIDs are assigned starting at 1.
func NewTable() *Table {
	t := new(Table)
	t.faces = hashmap.New(64)
	return t
}

func (t *Table) String() string {
	return "FaceTable"
}

// OnFaceAdded registers a callback invoked after a face is added.
func (t *Table) OnFaceAdded(callback func(face Transport)) {
	t.callbackMutex.Lock()
	defer t.callbackMutex.Unlock()
	t.onAdded = append(t.onAdded, callback)
}

// OnFaceRemoved registers a callback invoked after a face is removed, such as when it goes down.
func (t *Table) OnFaceRemoved(callback func(faceID uint64)) {
	t.callbackMutex.Lock()
	defer t.callbackMutex.Unlock()
	t.onRemoved = append(t.onRemoved, callback)
}

// Add adds a face to the face table and returns its assigned FaceID.
func (t *Table) Add(face Transport) uint64 {
	faceID := t.nextFaceID.Inc()
	face.setFaceID(faceID)
	t.faces.Set(faceID, face)
	face.setTable(t)
	core.LogDebug(t, "Registered FaceID=", faceID)

	t.callbackMutex.RLock()
	callbacks := t.onAdded
	t.callbackMutex.RUnlock()
	for _, callback := range callbacks {
		callback(face)
	}

	// The face may have gone down before it was registered
	if face.State() != Up {
		t.Remove(faceID)
	}
	return faceID
}

// Get gets the face with the specified ID (if any) from the face table.
func (t *Table) Get(id uint64) Transport {
	face, ok := t.faces.Get(id)
	if ok {
		return face.(Transport)
	}
	return nil
}

// GetAll returns all faces.
func (t *Table) GetAll() []Transport {
	faces := make([]Transport, 0, t.faces.Len())
	for kv := range t.faces.Iter() {
		faces = append(faces, kv.Value.(Transport))
	}
	return faces
}

// Len returns the number of faces in the table.
func (t *Table) Len() int {
	return t.faces.Len()
}

// Remove removes a face from the face table and closes it.
func (t *Table) Remove(id uint64) {
	t.removeMutex.Lock()
	face := t.Get(id)
	if face == nil {
		t.removeMutex.Unlock()
		return
	}
	t.faces.Del(id)
	t.removeMutex.Unlock()
	core.LogDebug(t, "Unregistered FaceID=", id)
	face.Close()

	t.callbackMutex.RLock()
	callbacks := t.onRemoved
	t.callbackMutex.RUnlock()
	for _, callback := range callbacks {
		callback(id)
	}
}
