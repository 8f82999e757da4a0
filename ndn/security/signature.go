/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"errors"
)

// SignatureType represents the type of a signature.
type SignatureType uint64

// The various possible values of SignatureType.
const (
	DigestSha256Type             SignatureType = 0
	SignatureSha256WithRsaType   SignatureType = 1
	SignatureSha256WithEcdsaType SignatureType = 3
	SignatureHmacWithSha256Type  SignatureType = 4
)

// ErrUnsupportedSignatureType is returned for signature types management does not produce.
var ErrUnsupportedSignatureType = errors.New("unsupported SignatureType")

// Signer represents an implementation of a signature type.
type Signer interface {
	Sign(buffer []byte) []byte
	Validate(buffer []byte, signature []byte) bool
}

func signerOf(signatureType SignatureType) (Signer, error) {
	switch signatureType {
	case DigestSha256Type:
		return DigestSha256{}, nil
	default:
		return nil, ErrUnsupportedSignatureType
	}
}

// Sign signs the provided buffer using the appropriate signer.
func Sign(signatureType SignatureType, buffer []byte) ([]byte, error) {
	signer, err := signerOf(signatureType)
	if err != nil {
		return nil, err
	}
	return signer.Sign(buffer), nil
}

// Verify verifies the provided signature against the provided buffer using the appropriate signer.
func Verify(signatureType SignatureType, buffer []byte, signature []byte) (bool, error) {
	signer, err := signerOf(signatureType)
	if err != nil {
		return false, err
	}
	return signer.Validate(buffer, signature), nil
}
