/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// ElementIterator reads the sub-elements of a block in order, checking the type of each one.
type ElementIterator struct {
	outer    uint32
	elements []*Block
	pos      int
}

// NewElementIterator parses the block and positions the iterator at its first sub-element.
func NewElementIterator(b *Block) (*ElementIterator, error) {
	if err := b.Parse(); err != nil {
		return nil, err
	}
	return &ElementIterator{outer: b.Type(), elements: b.Elements()}, nil
}

// AtEnd returns whether all sub-elements have been consumed.
func (it *ElementIterator) AtEnd() bool {
	return it.pos >= len(it.elements)
}

// Peek returns the next sub-element without consuming it, or nil at the end.
func (it *ElementIterator) Peek() *Block {
	if it.AtEnd() {
		return nil
	}
	return it.elements[it.pos]
}

// Next consumes the next sub-element, which must be of the expected type.
func (it *ElementIterator) Next(expected uint32) (*Block, error) {
	if it.AtEnd() {
		return nil, &DecodeError{Expected: expected, Truncated: true}
	}
	elem := it.elements[it.pos]
	it.pos++
	if elem.Type() != expected {
		return nil, &DecodeError{Expected: expected, Actual: elem.Type()}
	}
	return elem, nil
}

// ReadNNI consumes the next sub-element as a NonNegativeInteger of the expected type.
func (it *ElementIterator) ReadNNI(expected uint32) (uint64, error) {
	elem, err := it.Next(expected)
	if err != nil {
		return 0, err
	}
	return DecodeNNIBlock(elem)
}

// ErrUnlessEnd returns an error if there are unconsumed sub-elements.
func (it *ElementIterator) ErrUnlessEnd() error {
	if it.AtEnd() {
		return nil
	}
	return &TrailingError{Outer: it.outer, Remaining: len(it.elements) - it.pos}
}
