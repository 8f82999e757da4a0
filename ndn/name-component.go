/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
)

// NameComponent represents an NDN name component: a TLV type and an opaque value.
// Components are values; their contents must not be modified after construction.
type NameComponent struct {
	tlvType uint16
	value   []byte
}

// NewBaseNameComponent creates a name component of an arbitrary type.
func NewBaseNameComponent(tlvType uint16, value []byte) NameComponent {
	v := make([]byte, len(value))
	copy(v, value)
	return NameComponent{tlvType: tlvType, value: v}
}

// NewGenericNameComponent creates a GenericNameComponent.
func NewGenericNameComponent(value []byte) NameComponent {
	return NewBaseNameComponent(tlv.GenericNameComponent, value)
}

// NewSegmentNameComponent creates a SegmentNameComponent.
func NewSegmentNameComponent(seg uint64) NameComponent {
	return NameComponent{tlvType: tlv.SegmentNameComponent, value: tlv.EncodeNNI(seg)}
}

// NewVersionNameComponent creates a VersionNameComponent.
func NewVersionNameComponent(version uint64) NameComponent {
	return NameComponent{tlvType: tlv.VersionNameComponent, value: tlv.EncodeNNI(version)}
}

// DecodeNameComponent decodes a name component from the wire.
func DecodeNameComponent(wire *tlv.Block) (NameComponent, error) {
	if wire == nil {
		return NameComponent{}, util.ErrNonExistent
	}
	if wire.Type() > math.MaxUint16 || wire.Type() == 0 {
		return NameComponent{}, util.ErrOutOfRange
	}
	c := NewBaseNameComponent(uint16(wire.Type()), wire.Value())
	switch c.tlvType {
	case tlv.SegmentNameComponent, tlv.VersionNameComponent:
		if _, err := tlv.DecodeNNI(c.value); err != nil {
			return NameComponent{}, util.ErrDecodeNameComponent
		}
	case tlv.ImplicitSha256DigestComponent, tlv.ParametersSha256DigestComponent:
		if len(c.value) != 32 {
			return NameComponent{}, util.ErrDecodeNameComponent
		}
	}
	return c, nil
}

// Type returns the TLV type of the name component.
func (c NameComponent) Type() uint16 {
	return c.tlvType
}

// Value returns the TLV value of the name component.
func (c NameComponent) Value() []byte {
	return c.value
}

// IsEmpty returns whether the component value has zero length.
func (c NameComponent) IsEmpty() bool {
	return len(c.value) == 0
}

// NumberValue returns the NonNegativeInteger carried by a segment or version component.
func (c NameComponent) NumberValue() (uint64, error) {
	return tlv.DecodeNNI(c.value)
}

// IsSegment returns whether this is a SegmentNameComponent.
func (c NameComponent) IsSegment() bool {
	return c.tlvType == tlv.SegmentNameComponent
}

// IsVersion returns whether this is a VersionNameComponent.
func (c NameComponent) IsVersion() bool {
	return c.tlvType == tlv.VersionNameComponent
}

// Equals returns whether the two name components match.
func (c NameComponent) Equals(other NameComponent) bool {
	return c.tlvType == other.tlvType && bytes.Equal(c.value, other.value)
}

// Compare returns the canonical order of this component against the specified other component.
func (c NameComponent) Compare(other NameComponent) int {
	if c.tlvType != other.tlvType {
		if c.tlvType < other.tlvType {
			return -1
		}
		return 1
	}
	if len(c.value) != len(other.value) {
		if len(c.value) < len(other.value) {
			return -1
		}
		return 1
	}
	return bytes.Compare(c.value, other.value)
}

// Key returns the TLV encoding of the component as a string, suitable as a map key.
func (c NameComponent) Key() string {
	return string(c.Encode().Wire())
}

// Encode encodes the name component into a block.
func (c NameComponent) Encode() *tlv.Block {
	return tlv.NewBlock(uint32(c.tlvType), c.value)
}

func (c NameComponent) String() string {
	switch c.tlvType {
	case tlv.GenericNameComponent:
		return escapeComponent(c.value)
	case tlv.SegmentNameComponent, tlv.VersionNameComponent:
		if v, err := c.NumberValue(); err == nil {
			if c.tlvType == tlv.SegmentNameComponent {
				return "seg=" + strconv.FormatUint(v, 10)
			}
			return "v=" + strconv.FormatUint(v, 10)
		}
	case tlv.ImplicitSha256DigestComponent:
		return "sha256digest=" + hex.EncodeToString(c.value)
	case tlv.ParametersSha256DigestComponent:
		return "params-sha256=" + hex.EncodeToString(c.value)
	}
	return strconv.FormatUint(uint64(c.tlvType), 10) + "=" + escapeComponent(c.value)
}

// componentFromString decodes a single name component from its URI representation.
func componentFromString(component string) (NameComponent, error) {
	typ, value, typed := strings.Cut(component, "=")
	if !typed {
		unescaped, err := unescapeComponent(component)
		if err != nil {
			return NameComponent{}, err
		}
		return NewGenericNameComponent(unescaped), nil
	}
	if strings.Contains(value, "=") {
		return NameComponent{}, errors.New("name component has extraneous =")
	}

	unescaped, err := unescapeComponent(value)
	if err != nil {
		return NameComponent{}, err
	}
	switch typ {
	case "seg", "v":
		num, err := strconv.ParseUint(string(unescaped), 10, 64)
		if err != nil {
			return NameComponent{}, errors.New("component " + component + " is not a decimal number")
		}
		if typ == "seg" {
			return NewSegmentNameComponent(num), nil
		}
		return NewVersionNameComponent(num), nil
	case "sha256digest", "params-sha256":
		digest, err := hex.DecodeString(string(unescaped))
		if err != nil || len(digest) != 32 {
			return NameComponent{}, errors.New("component " + component + " is not a SHA-256 digest")
		}
		if typ == "sha256digest" {
			return NewBaseNameComponent(tlv.ImplicitSha256DigestComponent, digest), nil
		}
		return NewBaseNameComponent(tlv.ParametersSha256DigestComponent, digest), nil
	default:
		t, err := strconv.ParseUint(typ, 10, 16)
		if err != nil || t == 0 {
			return NameComponent{}, errors.New("unable to decode component type \"" + typ + "\"")
		}
		return NewBaseNameComponent(uint16(t), unescaped), nil
	}
}

func escapeComponent(in []byte) string {
	out := make([]byte, 0, 3*len(in)) // Capacity of 3 * len is worst case if every character has to be escaped
	nPeriods := 0
	for _, b := range in {
		switch {
		case b == '.':
			nPeriods++
			fallthrough
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == '~':
			out = append(out, b)
		default:
			out = append(out, '%', 0, 0)
			hex.Encode(out[len(out)-2:], []byte{b})
		}
	}
	if nPeriods == len(in) {
		out = append(out, '.', '.', '.')
	}
	return string(out)
}

func unescapeComponent(in string) ([]byte, error) {
	if len(in) >= 3 && strings.Trim(in, ".") == "" {
		// "..." is the escaped form of an empty value, "...." of ".", and so on
		return []byte(in[3:]), nil
	}
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i] == '%' {
			if len(in) <= i+2 {
				return nil, errors.New("incomplete escape sequence")
			}
			unescaped, err := hex.DecodeString(in[i+1 : i+3])
			if err != nil {
				return nil, errors.New("could not decode escape sequence")
			}
			out = append(out, unescaped...)
			i += 2
		} else {
			out = append(out, in[i])
		}
	}
	return out, nil
}
