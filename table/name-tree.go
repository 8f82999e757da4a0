/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"github.com/paNjii/NFD/ndn"
	"golang.org/x/exp/slices"
)

// NodeID is a handle to a node of a NameTree. It remains valid until the node is pruned.
type NodeID int

// RootNode is the handle of the node for the empty name, which is never pruned.
const RootNode NodeID = 0

// NoPayload marks a node that carries no table entry.
const NoPayload = -1

type nameTreeNode struct {
	name     *ndn.Name
	parent   NodeID
	children map[string]NodeID
	payload  int
	inUse    bool
}

// NameTree is a name trie whose nodes live in an arena and refer to their parents by handle.
// A node exists only if it is the root, carries a payload, or has children.
// NameTree is not safe for concurrent use.
type NameTree struct {
	nodes []nameTreeNode
	free  []NodeID
	size  int
}

// NewNameTree creates a name tree containing only the root node.
func NewNameTree() *NameTree {
	t := new(NameTree)
	root := new(ndn.Name)
	t.nodes = append(t.nodes, nameTreeNode{name: root, parent: RootNode, payload: NoPayload, inUse: true})
	t.size = 1
	return t
}

func (t *NameTree) child(id NodeID, component ndn.NameComponent) (NodeID, bool) {
	children := t.nodes[id].children
	if children == nil {
		return 0, false
	}
	childID, ok := children[component.Key()]
	return childID, ok
}

// LookupExact returns the node for exactly the specified name.
func (t *NameTree) LookupExact(name *ndn.Name) (NodeID, bool) {
	curNode := RootNode
	for i := 0; i < name.Size(); i++ {
		next, ok := t.child(curNode, name.At(i))
		if !ok {
			return 0, false
		}
		curNode = next
	}
	return curNode, true
}

// LookupLongestPrefixMatch returns the deepest node carrying a payload whose name is a prefix of the specified name.
func (t *NameTree) LookupLongestPrefixMatch(name *ndn.Name) (NodeID, bool) {
	curNode := RootNode
	match, found := RootNode, t.nodes[RootNode].payload != NoPayload
	for i := 0; i < name.Size(); i++ {
		next, ok := t.child(curNode, name.At(i))
		if !ok {
			break
		}
		curNode = next
		if t.nodes[curNode].payload != NoPayload {
			match, found = curNode, true
		}
	}
	return match, found
}

// GetOrCreate returns the node for the specified name, creating it and any missing ancestors.
func (t *NameTree) GetOrCreate(name *ndn.Name) NodeID {
	curNode := RootNode
	for depth := 0; depth < name.Size(); depth++ {
		component := name.At(depth)
		next, ok := t.child(curNode, component)
		if !ok {
			next = t.allocate(name.Prefix(depth+1), curNode)
			if t.nodes[curNode].children == nil {
				t.nodes[curNode].children = make(map[string]NodeID)
			}
			t.nodes[curNode].children[component.Key()] = next
		}
		curNode = next
	}
	return curNode
}

func (t *NameTree) allocate(name *ndn.Name, parent NodeID) NodeID {
	node := nameTreeNode{name: name, parent: parent, payload: NoPayload, inUse: true}
	t.size++
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id] = node
		return id
	}
	t.nodes = append(t.nodes, node)
	return NodeID(len(t.nodes) - 1)
}

// Prune removes the node and then its ancestors for as long as they carry no payload and have no children.
func (t *NameTree) Prune(id NodeID) {
	for curNode := id; curNode != RootNode; {
		node := &t.nodes[curNode]
		if !node.inUse || node.payload != NoPayload || len(node.children) > 0 {
			return
		}
		parent := node.parent
		delete(t.nodes[parent].children, node.name.At(-1).Key())
		*node = nameTreeNode{payload: NoPayload}
		t.free = append(t.free, curNode)
		t.size--
		curNode = parent
	}
}

// Name returns the name of the node.
func (t *NameTree) Name(id NodeID) *ndn.Name {
	return t.nodes[id].name
}

// Parent returns the parent of the node. The root is its own parent.
func (t *NameTree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Payload returns the payload attached to the node.
func (t *NameTree) Payload(id NodeID) (int, bool) {
	payload := t.nodes[id].payload
	return payload, payload != NoPayload
}

// SetPayload attaches a payload to the node.
func (t *NameTree) SetPayload(id NodeID, payload int) {
	t.nodes[id].payload = payload
}

// ClearPayload detaches the payload from the node. The caller is responsible for pruning.
func (t *NameTree) ClearPayload(id NodeID) {
	t.nodes[id].payload = NoPayload
}

// Size returns the number of nodes in the tree, including the root.
func (t *NameTree) Size() int {
	return t.size
}

// Walk visits every node in pre-order, children in canonical name order, until visit returns false.
func (t *NameTree) Walk(visit func(id NodeID) bool) {
	t.walk(RootNode, visit)
}

func (t *NameTree) walk(id NodeID, visit func(id NodeID) bool) bool {
	if !visit(id) {
		return false
	}
	children := make([]NodeID, 0, len(t.nodes[id].children))
	for _, child := range t.nodes[id].children {
		children = append(children, child)
	}
	slices.SortFunc(children, func(a, b NodeID) bool {
		return t.nodes[a].name.At(-1).Compare(t.nodes[b].name.At(-1)) < 0
	})
	for _, child := range children {
		if !t.walk(child, visit) {
			return false
		}
	}
	return true
}
