/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"

	"github.com/paNjii/NFD/ndn/util"
)

// VarNumSize returns the number of octets needed to encode the value as a VAR-NUMBER.
func VarNumSize(in uint64) int {
	switch {
	case in <= 0xFC:
		return 1
	case in <= 0xFFFF:
		return 3
	case in <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// AppendVarNum appends the VAR-NUMBER encoding of the value to buf.
func AppendVarNum(buf []byte, in uint64) []byte {
	switch {
	case in <= 0xFC:
		return append(buf, byte(in))
	case in <= 0xFFFF:
		buf = append(buf, 0xFD, 0, 0)
		binary.BigEndian.PutUint16(buf[len(buf)-2:], uint16(in))
	case in <= 0xFFFFFFFF:
		buf = append(buf, 0xFE, 0, 0, 0, 0)
		binary.BigEndian.PutUint32(buf[len(buf)-4:], uint32(in))
	default:
		buf = append(buf, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0)
		binary.BigEndian.PutUint64(buf[len(buf)-8:], in)
	}
	return buf
}

// EncodeVarNum encodes a non-negative integer value for encoding.
func EncodeVarNum(in uint64) []byte {
	return AppendVarNum(make([]byte, 0, VarNumSize(in)), in)
}

// DecodeVarNum decodes a non-negative integer value from a wire value.
func DecodeVarNum(in []byte) (uint64, int, error) {
	if len(in) < 1 {
		return 0, 0, util.ErrTooShort
	}

	switch in[0] {
	case 0xFD:
		if len(in) < 3 {
			return 0, 0, util.ErrTooShort
		}
		return uint64(binary.BigEndian.Uint16(in[1:3])), 3, nil
	case 0xFE:
		if len(in) < 5 {
			return 0, 0, util.ErrTooShort
		}
		return uint64(binary.BigEndian.Uint32(in[1:5])), 5, nil
	case 0xFF:
		if len(in) < 9 {
			return 0, 0, util.ErrTooShort
		}
		return binary.BigEndian.Uint64(in[1:9]), 9, nil
	default:
		return uint64(in[0]), 1, nil
	}
}

// NNISize returns the length of the shortest NonNegativeInteger encoding of the value.
func NNISize(v uint64) int {
	switch {
	case v <= math.MaxUint8:
		return 1
	case v <= math.MaxUint16:
		return 2
	case v <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// EncodeNNI encodes a non-negative integer value into a TLV value slice.
func EncodeNNI(v uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, v)
	return value[8-NNISize(v):]
}

// EncodeNNIBlock encodes a non-negative integer value in a block of the specified type.
func EncodeNNIBlock(t uint32, v uint64) *Block {
	return &Block{tlvType: t, value: EncodeNNI(v)}
}

// DecodeNNI decodes a non-negative integer value from a TLV value slice.
func DecodeNNI(value []byte) (uint64, error) {
	switch len(value) {
	case 1:
		return uint64(value[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(value)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(value)), nil
	case 8:
		return binary.BigEndian.Uint64(value), nil
	case 0:
		return 0, util.ErrTooShort
	}
	if len(value) > 8 {
		return 0, util.ErrTooLong
	}
	return 0, util.ErrOutOfRange
}

// DecodeNNIBlock decodes a non-negative integer value from a block.
func DecodeNNIBlock(wire *Block) (uint64, error) {
	if wire == nil {
		return 0, util.ErrNonExistent
	}
	return DecodeNNI(wire.Value())
}

// DecodeTypeLength decodes the TLV type, TLV length, and total size of the block from a byte slice.
func DecodeTypeLength(bytes []byte) (uint32, int, int, error) {
	tlvType, tlvTypeSize, err := DecodeVarNum(bytes)
	if err != nil {
		return 0, 0, 0, err
	} else if tlvType > math.MaxUint32 || tlvType == 0 {
		return 0, 0, 0, util.ErrOutOfRange
	}
	if tlvTypeSize == len(bytes) {
		return 0, 0, 0, ErrMissingLength
	}

	tlvLength, tlvLengthSize, err := DecodeVarNum(bytes[tlvTypeSize:])
	if err != nil {
		return 0, 0, 0, err
	}
	// Compared against the remaining bytes so that a huge length cannot overflow the total
	if tlvLength > uint64(len(bytes)-tlvTypeSize-tlvLengthSize) {
		return 0, 0, 0, ErrBufferTooShort
	}
	total := tlvTypeSize + tlvLengthSize + int(tlvLength)

	return uint32(tlvType), int(tlvLength), total, nil
}
