/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"errors"
	"math/rand"
	"time"

	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
)

// DefaultInterestLifetime is the InterestLifetime assumed when none is encoded.
const DefaultInterestLifetime = 4000 * time.Millisecond

// Interest represents an NDN Interest packet.
type Interest struct {
	name        *Name
	canBePrefix bool
	mustBeFresh bool
	nonce       []byte
	lifetime    time.Duration
	wire        *tlv.Block
}

// NewInterest creates a new Interest with the specified name and default values.
func NewInterest(name *Name) *Interest {
	i := new(Interest)
	i.name = name
	i.lifetime = DefaultInterestLifetime
	i.ResetNonce()
	return i
}

// DecodeInterest decodes an Interest from the wire.
func DecodeInterest(wire *tlv.Block) (*Interest, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}
	if wire.Type() != tlv.Interest {
		return nil, &tlv.DecodeError{Expected: tlv.Interest, Actual: wire.Type()}
	}
	if err := wire.Parse(); err != nil {
		return nil, err
	}

	i := new(Interest)
	i.lifetime = DefaultInterestLifetime
	mostRecentElem := 0
	for _, elem := range wire.Elements() {
		switch elem.Type() {
		case tlv.Name:
			if mostRecentElem >= 1 {
				return nil, errors.New("Name is duplicate or out-of-order")
			}
			mostRecentElem = 1
			name, err := DecodeName(elem)
			if err != nil {
				return nil, err
			}
			i.name = name
		case tlv.CanBePrefix:
			if mostRecentElem >= 2 {
				return nil, errors.New("CanBePrefix is duplicate or out-of-order")
			}
			mostRecentElem = 2
			i.canBePrefix = true
		case tlv.MustBeFresh:
			if mostRecentElem >= 3 {
				return nil, errors.New("MustBeFresh is duplicate or out-of-order")
			}
			mostRecentElem = 3
			i.mustBeFresh = true
		case tlv.Nonce:
			if mostRecentElem >= 4 {
				return nil, errors.New("Nonce is duplicate or out-of-order")
			}
			mostRecentElem = 4
			if len(elem.Value()) != 4 {
				return nil, errors.New("Nonce must be 4 octets")
			}
			i.nonce = append([]byte{}, elem.Value()...)
		case tlv.InterestLifetime:
			if mostRecentElem >= 5 {
				return nil, errors.New("InterestLifetime is duplicate or out-of-order")
			}
			mostRecentElem = 5
			lifetime, err := tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, err
			}
			i.lifetime = time.Duration(lifetime) * time.Millisecond
		case tlv.HopLimit, tlv.ApplicationParameters:
			// Not used by management
			mostRecentElem = 6
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
		}
	}

	if i.name == nil {
		return nil, errors.New("Interest missing Name")
	}
	i.wire = wire
	return i, nil
}

// Name returns the name of the Interest.
func (i *Interest) Name() *Name {
	return i.name
}

// CanBePrefix returns whether the Interest can be satisfied by a Data packet whose name the Interest name is a prefix of.
func (i *Interest) CanBePrefix() bool {
	return i.canBePrefix
}

// SetCanBePrefix sets the CanBePrefix flag.
func (i *Interest) SetCanBePrefix(canBePrefix bool) {
	i.canBePrefix = canBePrefix
	i.wire = nil
}

// MustBeFresh returns whether the Interest can only be satisfied by fresh Data packets.
func (i *Interest) MustBeFresh() bool {
	return i.mustBeFresh
}

// SetMustBeFresh sets the MustBeFresh flag.
func (i *Interest) SetMustBeFresh(mustBeFresh bool) {
	i.mustBeFresh = mustBeFresh
	i.wire = nil
}

// Nonce returns the nonce of the Interest.
func (i *Interest) Nonce() []byte {
	return i.nonce
}

// ResetNonce regenerates the nonce of the Interest.
func (i *Interest) ResetNonce() {
	i.nonce = make([]byte, 4)
	rand.Read(i.nonce)
	i.wire = nil
}

// Lifetime returns the lifetime of the Interest.
func (i *Interest) Lifetime() time.Duration {
	return i.lifetime
}

// SetLifetime sets the lifetime of the Interest.
func (i *Interest) SetLifetime(lifetime time.Duration) {
	i.lifetime = lifetime
	i.wire = nil
}

// Encode encodes the Interest into a block.
func (i *Interest) Encode() *tlv.Block {
	if i.wire == nil {
		wire := tlv.NewEmptyBlock(tlv.Interest)
		wire.Append(i.name.Encode())
		if i.canBePrefix {
			wire.Append(tlv.NewEmptyBlock(tlv.CanBePrefix))
		}
		if i.mustBeFresh {
			wire.Append(tlv.NewEmptyBlock(tlv.MustBeFresh))
		}
		if len(i.nonce) == 4 {
			wire.Append(tlv.NewBlock(tlv.Nonce, i.nonce))
		}
		if i.lifetime != DefaultInterestLifetime {
			wire.Append(tlv.EncodeNNIBlock(tlv.InterestLifetime, uint64(i.lifetime.Milliseconds())))
		}
		i.wire = wire
	}
	return i.wire
}
