/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// MaxNDNPacketSize is the maximum allowed NDN packet size.
const MaxNDNPacketSize = 8800

// TLV types for NDN packets.
const (
	// Packets
	Interest = 0x05
	Data     = 0x06

	// Name
	Name                            = 0x07
	ImplicitSha256DigestComponent   = 0x01
	ParametersSha256DigestComponent = 0x02
	GenericNameComponent            = 0x08
	KeywordNameComponent            = 0x20
	SegmentNameComponent            = 0x32
	ByteOffsetNameComponent         = 0x34
	VersionNameComponent            = 0x36
	TimestampNameComponent          = 0x38
	SequenceNumNameComponent        = 0x3A

	// Interest
	CanBePrefix           = 0x21
	MustBeFresh           = 0x12
	Nonce                 = 0x0A
	InterestLifetime      = 0x0C
	HopLimit              = 0x22
	ApplicationParameters = 0x24

	// Data
	MetaInfo        = 0x14
	Content         = 0x15
	SignatureInfo   = 0x16
	SignatureValue  = 0x17
	ContentType     = 0x18
	FreshnessPeriod = 0x19
	FinalBlockID    = 0x1A
	SignatureType   = 0x1B
)

// IsCritical returns whether the TLV type is critical.
func IsCritical(tlvType uint32) bool {
	return tlvType <= 31 || tlvType%2 == 1
}
