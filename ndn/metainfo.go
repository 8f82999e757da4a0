/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"errors"
	"time"

	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
)

// MetaInfo represents the MetaInfo in a Data packet.
type MetaInfo struct {
	contentType     *uint64
	freshnessPeriod *time.Duration
	finalBlockID    *NameComponent
}

// NewMetaInfo creates a new MetaInfo structure.
func NewMetaInfo() *MetaInfo {
	return new(MetaInfo)
}

// DecodeMetaInfo decodes a MetaInfo from the wire.
func DecodeMetaInfo(wire *tlv.Block) (*MetaInfo, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}
	if err := wire.Parse(); err != nil {
		return nil, err
	}

	m := new(MetaInfo)
	mostRecentElem := 0
	for _, elem := range wire.Elements() {
		switch elem.Type() {
		case tlv.ContentType:
			if mostRecentElem >= 1 {
				return nil, errors.New("ContentType is duplicate or out-of-order")
			}
			mostRecentElem = 1
			contentType, err := tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, err
			}
			m.contentType = &contentType
		case tlv.FreshnessPeriod:
			if mostRecentElem >= 2 {
				return nil, errors.New("FreshnessPeriod is duplicate or out-of-order")
			}
			mostRecentElem = 2
			freshness, err := tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, err
			}
			freshnessPeriod := time.Duration(freshness) * time.Millisecond
			m.freshnessPeriod = &freshnessPeriod
		case tlv.FinalBlockID:
			if mostRecentElem >= 3 {
				return nil, errors.New("FinalBlockId is duplicate or out-of-order")
			}
			mostRecentElem = 3
			if err := elem.Parse(); err != nil {
				return nil, err
			}
			if len(elem.Elements()) != 1 {
				return nil, errors.New("FinalBlockId must contain exactly one name component")
			}
			finalBlockID, err := DecodeNameComponent(elem.Elements()[0])
			if err != nil {
				return nil, err
			}
			m.finalBlockID = &finalBlockID
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
		}
	}
	return m, nil
}

// ContentType returns the ContentType set in the MetaInfo.
func (m *MetaInfo) ContentType() *uint64 {
	return m.contentType
}

// SetContentType sets the ContentType.
func (m *MetaInfo) SetContentType(contentType uint64) {
	m.contentType = &contentType
}

// FreshnessPeriod returns the FreshnessPeriod set in the MetaInfo.
func (m *MetaInfo) FreshnessPeriod() *time.Duration {
	return m.freshnessPeriod
}

// SetFreshnessPeriod sets the FreshnessPeriod.
func (m *MetaInfo) SetFreshnessPeriod(freshnessPeriod time.Duration) {
	m.freshnessPeriod = &freshnessPeriod
}

// FinalBlockID returns the FinalBlockId set in the MetaInfo.
func (m *MetaInfo) FinalBlockID() *NameComponent {
	return m.finalBlockID
}

// SetFinalBlockID sets the FinalBlockId.
func (m *MetaInfo) SetFinalBlockID(finalBlockID NameComponent) {
	m.finalBlockID = &finalBlockID
}

// IsEmpty returns whether no field of the MetaInfo is set.
func (m *MetaInfo) IsEmpty() bool {
	return m.contentType == nil && m.freshnessPeriod == nil && m.finalBlockID == nil
}

// Encode encodes the MetaInfo into a block.
func (m *MetaInfo) Encode() *tlv.Block {
	wire := tlv.NewEmptyBlock(tlv.MetaInfo)
	if m.contentType != nil {
		wire.Append(tlv.EncodeNNIBlock(tlv.ContentType, *m.contentType))
	}
	if m.freshnessPeriod != nil {
		wire.Append(tlv.EncodeNNIBlock(tlv.FreshnessPeriod, uint64(m.freshnessPeriod.Milliseconds())))
	}
	if m.finalBlockID != nil {
		wire.Append(tlv.NewEmptyBlock(tlv.FinalBlockID).Append(m.finalBlockID.Encode()))
	}
	return wire
}
