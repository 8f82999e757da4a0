/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"errors"

	"github.com/paNjii/NFD/ndn/security"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
)

// Data errors.
var (
	ErrMissingField      = errors.New("Data missing required field")
	ErrSignatureMismatch = errors.New("DigestSha256 signature does not match")
)

// Data represents an NDN Data packet signed with DigestSha256.
type Data struct {
	name     *Name
	metaInfo *MetaInfo
	content  []byte
	sigValue []byte
	wire     *tlv.Block
}

// NewData creates a new Data packet with the given name and content.
func NewData(name *Name, content []byte) *Data {
	if name == nil {
		return nil
	}

	d := new(Data)
	d.name = name
	d.metaInfo = NewMetaInfo()
	d.content = make([]byte, len(content))
	copy(d.content, content)
	return d
}

// DecodeData decodes a Data packet from the wire.
func DecodeData(wire *tlv.Block, shouldValidateSignature bool) (*Data, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}
	if wire.Type() != tlv.Data {
		return nil, &tlv.DecodeError{Expected: tlv.Data, Actual: wire.Type()}
	}
	if err := wire.Parse(); err != nil {
		return nil, err
	}

	d := new(Data)
	d.metaInfo = NewMetaInfo()
	hasSigInfo := false
	signedPortion := make([]byte, 0, len(wire.Value()))
	mostRecentElem := 0
	var err error
	for _, elem := range wire.Elements() {
		switch elem.Type() {
		case tlv.Name:
			if mostRecentElem >= 1 {
				return nil, errors.New("Name is duplicate or out-of-order")
			}
			mostRecentElem = 1
			d.name, err = DecodeName(elem)
			if err != nil {
				return nil, err
			}
		case tlv.MetaInfo:
			if mostRecentElem >= 2 {
				return nil, errors.New("MetaInfo is duplicate or out-of-order")
			}
			mostRecentElem = 2
			d.metaInfo, err = DecodeMetaInfo(elem)
			if err != nil {
				return nil, err
			}
		case tlv.Content:
			if mostRecentElem >= 3 {
				return nil, errors.New("Content is duplicate or out-of-order")
			}
			mostRecentElem = 3
			d.content = append([]byte{}, elem.Value()...)
		case tlv.SignatureInfo:
			if mostRecentElem >= 4 {
				return nil, errors.New("SignatureInfo is duplicate or out-of-order")
			}
			mostRecentElem = 4
			it, err := tlv.NewElementIterator(elem)
			if err != nil {
				return nil, err
			}
			sigType, err := it.ReadNNI(tlv.SignatureType)
			if err != nil {
				return nil, err
			}
			if security.SignatureType(sigType) != security.DigestSha256Type {
				return nil, security.ErrUnsupportedSignatureType
			}
			hasSigInfo = true
		case tlv.SignatureValue:
			if mostRecentElem >= 5 {
				return nil, errors.New("SignatureValue is duplicate or out-of-order")
			}
			mostRecentElem = 5
			d.sigValue = append([]byte{}, elem.Value()...)
			continue
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
		}
		if mostRecentElem < 5 {
			signedPortion = append(signedPortion, elem.Wire()...)
		}
	}

	if d.name == nil || !hasSigInfo || len(d.sigValue) == 0 {
		return nil, ErrMissingField
	}
	if shouldValidateSignature {
		valid, err := security.Verify(security.DigestSha256Type, signedPortion, d.sigValue)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, ErrSignatureMismatch
		}
	}
	d.wire = wire
	return d, nil
}

// Name returns the name of the Data packet.
func (d *Data) Name() *Name {
	return d.name
}

// MetaInfo returns the MetaInfo of the Data packet.
func (d *Data) MetaInfo() *MetaInfo {
	return d.metaInfo
}

// SetMetaInfo sets the MetaInfo of the Data packet.
func (d *Data) SetMetaInfo(metaInfo *MetaInfo) {
	d.metaInfo = metaInfo
	d.wire = nil
}

// Content returns the content of the Data packet.
func (d *Data) Content() []byte {
	return d.content
}

// SignatureValue returns the SignatureValue of the Data packet.
func (d *Data) SignatureValue() []byte {
	return d.sigValue
}

// IsFinalBlock returns whether the last name component equals the FinalBlockId.
func (d *Data) IsFinalBlock() bool {
	finalBlockID := d.metaInfo.FinalBlockID()
	return finalBlockID != nil && d.name.Size() > 0 && d.name.At(-1).Equals(*finalBlockID)
}

// Encode encodes the Data into a block, computing its DigestSha256 signature.
func (d *Data) Encode() *tlv.Block {
	if d.wire == nil {
		wire := tlv.NewEmptyBlock(tlv.Data)
		wire.Append(d.name.Encode())
		if !d.metaInfo.IsEmpty() {
			wire.Append(d.metaInfo.Encode())
		}
		wire.Append(tlv.NewBlock(tlv.Content, d.content))
		wire.Append(tlv.NewEmptyBlock(tlv.SignatureInfo).Append(tlv.EncodeNNIBlock(tlv.SignatureType, uint64(security.DigestSha256Type))))

		signedPortion := make([]byte, 0, 512)
		for _, elem := range wire.Elements() {
			signedPortion = append(signedPortion, elem.Wire()...)
		}
		d.sigValue, _ = security.Sign(security.DigestSha256Type, signedPortion)
		wire.Append(tlv.NewBlock(tlv.SignatureValue, d.sigValue))
		d.wire = wire
	}
	return d.wire
}
