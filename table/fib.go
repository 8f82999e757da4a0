/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"sync"

	"github.com/cespare/xxhash"
	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"golang.org/x/exp/slices"
)

// NextHop represents a nexthop in a FIB entry.
type NextHop struct {
	FaceID uint64
	Cost   uint64
}

// Entry is a point-in-time copy of a FIB entry. Nexthops are ordered by ascending cost, most preferred first.
type Entry struct {
	Name     *ndn.Name
	NextHops []NextHop
}

type fibEntry struct {
	name     *ndn.Name
	hash     uint64
	node     NodeID
	nexthops []NextHop
}

func (e *fibEntry) snapshot() *Entry {
	nexthops := make([]NextHop, len(e.nexthops))
	copy(nexthops, e.nexthops)
	return &Entry{Name: e.name, NextHops: nexthops}
}

// Fib is the Forwarding Information Base. It owns its entries, which are attached to a NameTree by handle.
// Fib is safe for concurrent use.
type Fib struct {
	mutex sync.RWMutex
	tree  *NameTree

	entries []*fibEntry
	free    []int
	// prefixes indexes entries by the hash of their encoded name
	prefixes map[uint64][]int

	size       int
	generation uint64
}

// NewFib creates an empty FIB.
func NewFib() *Fib {
	f := new(Fib)
	f.tree = NewNameTree()
	f.prefixes = make(map[uint64][]int)
	return f
}

func (f *Fib) String() string {
	return "FIB"
}

func hashName(name *ndn.Name) uint64 {
	return xxhash.Sum64(name.Encode().Wire())
}

func (f *Fib) findExactMatchEntry(name *ndn.Name) int {
	for _, id := range f.prefixes[hashName(name)] {
		if f.entries[id].name.Equals(name) {
			return id
		}
	}
	return NoPayload
}

func (f *Fib) createEntry(name *ndn.Name, node NodeID) int {
	entry := &fibEntry{name: name, hash: hashName(name), node: node}
	var id int
	if len(f.free) > 0 {
		id = f.free[len(f.free)-1]
		f.free = f.free[:len(f.free)-1]
		f.entries[id] = entry
	} else {
		f.entries = append(f.entries, entry)
		id = len(f.entries) - 1
	}
	f.prefixes[entry.hash] = append(f.prefixes[entry.hash], id)
	f.tree.SetPayload(node, id)
	f.size++
	return id
}

func (f *Fib) destroyEntry(id int) {
	entry := f.entries[id]
	bucket := f.prefixes[entry.hash]
	for i, candidate := range bucket {
		if candidate == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(f.prefixes, entry.hash)
	} else {
		f.prefixes[entry.hash] = bucket
	}

	f.tree.ClearPayload(entry.node)
	f.tree.Prune(entry.node)
	f.entries[id] = nil
	f.free = append(f.free, id)
	f.size--
}

// removeNextHop removes the nexthop from the entry, destroying the entry if it becomes empty.
func (f *Fib) removeNextHop(id int, faceID uint64) bool {
	entry := f.entries[id]
	for i, nexthop := range entry.nexthops {
		if nexthop.FaceID == faceID {
			entry.nexthops = append(entry.nexthops[:i], entry.nexthops[i+1:]...)
			if len(entry.nexthops) == 0 {
				f.destroyEntry(id)
			}
			return true
		}
	}
	return false
}

// Insert adds or updates a nexthop for the specified prefix, creating the entry if needed.
// An existing nexthop for the same face has its cost replaced.
// FaceIDs are positive: FaceID 0 is rejected, leaving the FIB unchanged, and nil is returned.
func (f *Fib) Insert(prefix *ndn.Name, faceID uint64, cost uint64) *Entry {
	if faceID == 0 {
		core.LogWarn(f, "Refusing nexthop with FaceID=0 for ", prefix)
		return nil
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	id := f.findExactMatchEntry(prefix)
	if id == NoPayload {
		// Fill the cached encodings under the write lock
		_ = prefix.String()
		id = f.createEntry(prefix, f.tree.GetOrCreate(prefix))
		core.LogDebug(f, "Created entry for ", prefix)
	}

	entry := f.entries[id]
	changed := true
	replaced := false
	for i := range entry.nexthops {
		if entry.nexthops[i].FaceID == faceID {
			changed = entry.nexthops[i].Cost != cost
			entry.nexthops[i].Cost = cost
			replaced = true
			break
		}
	}
	if !replaced {
		entry.nexthops = append(entry.nexthops, NextHop{FaceID: faceID, Cost: cost})
	}
	slices.SortStableFunc(entry.nexthops, func(a, b NextHop) bool {
		return a.Cost < b.Cost
	})
	if changed {
		f.generation++
	}
	return entry.snapshot()
}

// FindExactMatch returns the entry for exactly the specified prefix, or nil if none exists.
func (f *Fib) FindExactMatch(prefix *ndn.Name) *Entry {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	id := f.findExactMatchEntry(prefix)
	if id == NoPayload {
		return nil
	}
	return f.entries[id].snapshot()
}

// FindLongestPrefixMatch returns the entry with the longest prefix of the specified name, or nil if none exists.
func (f *Fib) FindLongestPrefixMatch(name *ndn.Name) *Entry {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	node, ok := f.tree.LookupLongestPrefixMatch(name)
	if !ok {
		return nil
	}
	id, _ := f.tree.Payload(node)
	return f.entries[id].snapshot()
}

// RemoveNextHop removes the nexthop for the specified face from the prefix. The entry is removed once it has no nexthops.
// Removing a nexthop that does not exist does nothing. It returns whether a nexthop was removed.
func (f *Fib) RemoveNextHop(prefix *ndn.Name, faceID uint64) bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	id := f.findExactMatchEntry(prefix)
	if id == NoPayload || !f.removeNextHop(id, faceID) {
		return false
	}
	f.generation++
	return true
}

// RemoveNextHopsForFace removes every nexthop bound to the specified face. It returns the number of entries affected.
func (f *Fib) RemoveNextHopsForFace(faceID uint64) int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	affected := 0
	for id, entry := range f.entries {
		if entry != nil && f.removeNextHop(id, faceID) {
			affected++
		}
	}
	if affected > 0 {
		f.generation++
		core.LogDebug(f, "Removed nexthops for FaceID=", faceID, " from ", affected, " entries")
	}
	return affected
}

// ClearNextHops removes the entry for the specified prefix along with all of its nexthops.
func (f *Fib) ClearNextHops(prefix *ndn.Name) bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	id := f.findExactMatchEntry(prefix)
	if id == NoPayload {
		return false
	}
	f.destroyEntry(id)
	f.generation++
	return true
}

// EnumerateAll returns a snapshot of every entry, in pre-order of the name tree.
func (f *Fib) EnumerateAll() []*Entry {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.enumerateAll()
}

func (f *Fib) enumerateAll() []*Entry {
	entries := make([]*Entry, 0, f.size)
	f.tree.Walk(func(node NodeID) bool {
		if id, ok := f.tree.Payload(node); ok {
			entries = append(entries, f.entries[id].snapshot())
		}
		return true
	})
	return entries
}

// Snapshot returns every entry along with the generation they were read at.
func (f *Fib) Snapshot() ([]*Entry, uint64) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.enumerateAll(), f.generation
}

// Size returns the number of entries in the FIB.
func (f *Fib) Size() int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.size
}

// NameTreeSize returns the number of nodes in the underlying name tree.
func (f *Fib) NameTreeSize() int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.tree.Size()
}

// Generation returns a counter that is incremented by every mutation of the FIB.
func (f *Fib) Generation() uint64 {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.generation
}
