/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table_test

import (
	"testing"

	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, uri string) *ndn.Name {
	n, err := ndn.NameFromString(uri)
	require.NoError(t, err)
	return n
}

func TestNameTreeGetOrCreate(t *testing.T) {
	tree := table.NewNameTree()
	assert.Equal(t, 1, tree.Size())

	abc := tree.GetOrCreate(mustName(t, "/a/b/c"))
	assert.Equal(t, 4, tree.Size())
	assert.Equal(t, "/a/b/c", tree.Name(abc).String())
	assert.Equal(t, abc, tree.GetOrCreate(mustName(t, "/a/b/c")))
	assert.Equal(t, 4, tree.Size())

	ab, ok := tree.LookupExact(mustName(t, "/a/b"))
	require.True(t, ok)
	assert.Equal(t, ab, tree.Parent(abc))
	root, ok := tree.LookupExact(mustName(t, "/"))
	require.True(t, ok)
	assert.Equal(t, table.RootNode, root)

	_, ok = tree.LookupExact(mustName(t, "/a/x"))
	assert.False(t, ok)
	_, ok = tree.LookupExact(mustName(t, "/a/b/c/d"))
	assert.False(t, ok)
}

func TestNameTreeLongestPrefixMatch(t *testing.T) {
	tree := table.NewNameTree()
	_, ok := tree.LookupLongestPrefixMatch(mustName(t, "/a/b"))
	assert.False(t, ok)

	a := tree.GetOrCreate(mustName(t, "/a"))
	tree.SetPayload(a, 1)
	abcd := tree.GetOrCreate(mustName(t, "/a/b/c/d"))
	tree.SetPayload(abcd, 2)

	match, ok := tree.LookupLongestPrefixMatch(mustName(t, "/a/b/c"))
	require.True(t, ok)
	assert.Equal(t, a, match)
	match, ok = tree.LookupLongestPrefixMatch(mustName(t, "/a/b/c/d/e"))
	require.True(t, ok)
	assert.Equal(t, abcd, match)
	_, ok = tree.LookupLongestPrefixMatch(mustName(t, "/b"))
	assert.False(t, ok)

	tree.SetPayload(table.RootNode, 3)
	match, ok = tree.LookupLongestPrefixMatch(mustName(t, "/b"))
	require.True(t, ok)
	assert.Equal(t, table.RootNode, match)
}

func TestNameTreePrune(t *testing.T) {
	tree := table.NewNameTree()
	a := tree.GetOrCreate(mustName(t, "/a"))
	tree.SetPayload(a, 1)
	abc := tree.GetOrCreate(mustName(t, "/a/b/c"))
	tree.GetOrCreate(mustName(t, "/a/x"))
	assert.Equal(t, 5, tree.Size())

	// /a/b/c and /a/b go, /a stays because it carries a payload and has /a/x
	tree.Prune(abc)
	assert.Equal(t, 3, tree.Size())
	_, ok := tree.LookupExact(mustName(t, "/a/b"))
	assert.False(t, ok)

	ax, ok := tree.LookupExact(mustName(t, "/a/x"))
	require.True(t, ok)
	tree.Prune(ax)
	assert.Equal(t, 2, tree.Size())

	tree.ClearPayload(a)
	tree.Prune(a)
	assert.Equal(t, 1, tree.Size())
	tree.Prune(table.RootNode)
	assert.Equal(t, 1, tree.Size())

	// Freed nodes are reused
	d := tree.GetOrCreate(mustName(t, "/d"))
	assert.Equal(t, "/d", tree.Name(d).String())
	assert.Equal(t, 2, tree.Size())
}

func TestNameTreeWalk(t *testing.T) {
	tree := table.NewNameTree()
	for _, uri := range []string{"/b", "/a/c", "/a/b", "/aa"} {
		tree.GetOrCreate(mustName(t, uri))
	}

	var names []string
	tree.Walk(func(id table.NodeID) bool {
		names = append(names, tree.Name(id).String())
		return true
	})
	assert.Equal(t, []string{"/", "/a", "/a/b", "/a/c", "/b", "/aa"}, names)

	visited := 0
	tree.Walk(func(id table.NodeID) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}
