/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"errors"

	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
)

// ControlParameters represents the parameters of a FIB management command.
type ControlParameters struct {
	Name   *ndn.Name
	FaceID *uint64
	Cost   *uint64
}

// MakeControlParameters creates an empty ControlParameters.
func MakeControlParameters() *ControlParameters {
	c := new(ControlParameters)
	return c
}

// DecodeControlParameters decodes a ControlParameters from the wire.
func DecodeControlParameters(wire *tlv.Block) (*ControlParameters, error) {
	if wire == nil {
		return nil, errors.New("Wire is unset")
	}
	if wire.Type() != tlv.ControlParameters {
		return nil, &tlv.DecodeError{Expected: tlv.ControlParameters, Actual: wire.Type()}
	}
	if err := wire.Parse(); err != nil {
		return nil, err
	}

	c := new(ControlParameters)
	var err error
	for _, elem := range wire.Elements() {
		switch elem.Type() {
		case tlv.Name:
			if c.Name != nil {
				return nil, errors.New("Duplicate Name")
			}
			c.Name, err = ndn.DecodeName(elem)
			if err != nil {
				return nil, errors.New("Unable to decode Name: " + err.Error())
			}
		case tlv.FaceID:
			if c.FaceID != nil {
				return nil, errors.New("Duplicate FaceId")
			}
			c.FaceID = new(uint64)
			*c.FaceID, err = tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, errors.New("Unable to decode FaceId: " + err.Error())
			}
		case tlv.Cost:
			if c.Cost != nil {
				return nil, errors.New("Duplicate Cost")
			}
			c.Cost = new(uint64)
			*c.Cost, err = tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, errors.New("Unable to decode Cost: " + err.Error())
			}
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
		}
	}
	return c, nil
}

// Encode encodes a ControlParameters.
func (c *ControlParameters) Encode() *tlv.Block {
	wire := tlv.NewEmptyBlock(tlv.ControlParameters)
	if c.Name != nil {
		wire.Append(c.Name.Encode())
	}
	if c.FaceID != nil {
		wire.Append(tlv.EncodeNNIBlock(tlv.FaceID, *c.FaceID))
	}
	if c.Cost != nil {
		wire.Append(tlv.EncodeNNIBlock(tlv.Cost, *c.Cost))
	}
	return wire
}
