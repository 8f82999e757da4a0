/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"strings"

	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
)

// Name represents an NDN name. A Name is immutable once constructed; operations
// that derive a different name return a new value.
type Name struct {
	components   []NameComponent
	wire         *tlv.Block
	cachedString string
}

// NewName constructs a name from the given components. Components with an empty value are rejected.
func NewName(components ...NameComponent) (*Name, error) {
	for _, c := range components {
		if c.IsEmpty() {
			return nil, util.ErrEmptyNameComponent
		}
	}
	n := new(Name)
	n.components = make([]NameComponent, len(components))
	copy(n.components, components)
	return n, nil
}

// NameFromString decodes a name from its URI representation.
func NameFromString(str string) (*Name, error) {
	str = strings.TrimPrefix(str, "ndn:")
	str = strings.TrimPrefix(str, "/")
	str = strings.TrimSuffix(str, "/")
	if len(str) == 0 {
		return new(Name), nil
	}

	parts := strings.Split(str, "/")
	components := make([]NameComponent, 0, len(parts))
	for _, part := range parts {
		if len(part) == 0 {
			return nil, util.ErrEmptyNameComponent
		}
		c, err := componentFromString(part)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return NewName(components...)
}

// DecodeName decodes a name from wire encoding.
func DecodeName(b *tlv.Block) (*Name, error) {
	if b == nil {
		return nil, util.ErrNonExistent
	}
	if b.Type() != tlv.Name {
		return nil, &tlv.DecodeError{Expected: tlv.Name, Actual: b.Type()}
	}
	if err := b.Parse(); err != nil {
		return nil, err
	}

	components := make([]NameComponent, 0, len(b.Elements()))
	for _, elem := range b.Elements() {
		component, err := DecodeNameComponent(elem)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	n, err := NewName(components...)
	if err != nil {
		return nil, err
	}
	n.wire = b
	return n, nil
}

func (n *Name) String() string {
	if n.Size() == 0 {
		return "/"
	}
	if len(n.cachedString) > 0 {
		return n.cachedString
	}

	var out strings.Builder
	for _, component := range n.components {
		out.WriteByte('/')
		out.WriteString(component.String())
	}
	n.cachedString = out.String()
	return n.cachedString
}

// Append returns a new name with the specified components added to the end.
// It panics if a component is empty, since such a name could not have been constructed.
func (n *Name) Append(components ...NameComponent) *Name {
	appended := new(Name)
	appended.components = make([]NameComponent, 0, len(n.components)+len(components))
	appended.components = append(appended.components, n.components...)
	for _, c := range components {
		if c.IsEmpty() {
			panic(util.ErrEmptyNameComponent)
		}
		appended.components = append(appended.components, c)
	}
	return appended
}

// At returns the name component at the specified index. Negative indices count from the end.
// If out of range, an empty component is returned.
func (n *Name) At(index int) NameComponent {
	if index < -len(n.components) || index >= len(n.components) {
		return NameComponent{}
	}

	if index < 0 {
		return n.components[len(n.components)+index]
	}
	return n.components[index]
}

// Compare returns the canonical order of this name against the the specified other name.
func (n *Name) Compare(other *Name) int {
	for i := 0; i < n.Size() && i < other.Size(); i++ {
		if cmp := n.components[i].Compare(other.components[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case n.Size() < other.Size():
		return -1
	case n.Size() > other.Size():
		return 1
	default:
		return 0
	}
}

// Equals returns whether the specified name is equal to this name.
func (n *Name) Equals(other *Name) bool {
	return other != nil && n.Size() == other.Size() && n.PrefixOf(other)
}

// Prefix returns a name prefix of the specified number of components. Negative sizes count from the end.
// If greater than or equal to the size of the name, this returns the name itself.
func (n *Name) Prefix(size int) *Name {
	if size < 0 {
		size += n.Size()
	}
	if size >= n.Size() {
		return n
	}
	if size < 0 {
		size = 0
	}
	prefix := new(Name)
	prefix.components = n.components[:size:size]
	return prefix
}

// PrefixOf returns whether this name is a prefix of the specified name.
func (n *Name) PrefixOf(other *Name) bool {
	if other == nil || n.Size() > other.Size() {
		return false
	}

	for i := 0; i < n.Size(); i++ {
		if !n.components[i].Equals(other.components[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	return len(n.components)
}

// Encode encodes the name into a block.
func (n *Name) Encode() *tlv.Block {
	if n.wire == nil {
		wire := tlv.NewEmptyBlock(tlv.Name)
		for _, component := range n.components {
			wire.Append(component.Encode())
		}
		n.wire = wire
	}
	return n.wire
}
