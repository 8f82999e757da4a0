/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Block contains an encoded block.
//
// A block is built either from a raw value (NewBlock) or from sub-elements
// (NewEmptyBlock followed by Append). Decoded blocks carry both their value and,
// after Parse, their sub-elements.
type Block struct {
	tlvType  uint32
	value    []byte
	elements []*Block

	// wire caches the full type-length-value encoding
	wire []byte
}

///////////////
// Constructors
///////////////

// NewEmptyBlock creates an empty encoded block.
func NewEmptyBlock(tlvType uint32) *Block {
	return &Block{tlvType: tlvType}
}

// NewBlock creates a block containing the specified type and value.
func NewBlock(tlvType uint32, value []byte) *Block {
	b := &Block{tlvType: tlvType}
	b.value = make([]byte, len(value))
	copy(b.value, value)
	return b
}

//////////
// Getters
//////////

// Type returns the type of the block.
func (b *Block) Type() uint32 {
	return b.tlvType
}

// Value returns the value contained in the block.
// For a block assembled from sub-elements, this is their concatenated encoding.
func (b *Block) Value() []byte {
	if b.value == nil && len(b.elements) > 0 {
		size := 0
		for _, elem := range b.elements {
			size += elem.Size()
		}
		value := make([]byte, 0, size)
		for _, elem := range b.elements {
			value = append(value, elem.Wire()...)
		}
		b.value = value
	}
	return b.value
}

// Elements returns the sub-elements of the block. Decoded blocks must be parsed first.
func (b *Block) Elements() []*Block {
	return b.elements
}

// Find returns the first sub-element of the specified type, or nil if none exists.
func (b *Block) Find(tlvType uint32) *Block {
	for _, elem := range b.elements {
		if elem.Type() == tlvType {
			return elem
		}
	}
	return nil
}

//////////////
// Subelements
//////////////

// Append appends a sub-element onto the end of the block's value.
// The block must not be modified afterwards through the appended element.
func (b *Block) Append(elem *Block) *Block {
	b.elements = append(b.elements, elem)
	b.value = nil
	b.wire = nil
	return b
}

// Parse parses the block value into sub-elements.
func (b *Block) Parse() error {
	value := b.Value()
	elements := make([]*Block, 0)
	for pos := 0; pos < len(value); {
		elem, elemLen, err := DecodeBlock(value[pos:])
		if err != nil {
			return err
		}
		elements = append(elements, elem)
		pos += int(elemLen)
	}
	b.elements = elements
	return nil
}

////////////////////
// Encoding/Decoding
////////////////////

// Wire returns the wire-encoded block.
func (b *Block) Wire() []byte {
	if b.wire == nil {
		value := b.Value()
		wire := make([]byte, 0, VarNumSize(uint64(b.tlvType))+VarNumSize(uint64(len(value)))+len(value))
		wire = AppendVarNum(wire, uint64(b.tlvType))
		wire = AppendVarNum(wire, uint64(len(value)))
		b.wire = append(wire, value...)
	}
	return b.wire
}

// Size returns the size of the wire.
func (b *Block) Size() int {
	if b.wire != nil {
		return len(b.wire)
	}
	valueLen := 0
	if b.value != nil || len(b.elements) == 0 {
		valueLen = len(b.value)
	} else {
		for _, elem := range b.elements {
			valueLen += elem.Size()
		}
	}
	return VarNumSize(uint64(b.tlvType)) + VarNumSize(uint64(valueLen)) + valueLen
}

// DecodeBlock decodes a block from the wire. It returns the block and the number of octets consumed.
func DecodeBlock(wire []byte) (*Block, uint64, error) {
	tlvType, tlvLength, total, err := DecodeTypeLength(wire)
	if err != nil {
		return nil, 0, err
	}

	b := new(Block)
	b.tlvType = tlvType
	b.wire = make([]byte, total)
	copy(b.wire, wire)
	b.value = b.wire[total-tlvLength:]
	return b, uint64(total), nil
}
