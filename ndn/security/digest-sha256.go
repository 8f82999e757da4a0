/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"bytes"
	"crypto/sha256"
)

// DigestSha256 is a signer that produces a plain SHA-256 digest of the signed portion.
type DigestSha256 struct{}

// Sign returns the SHA-256 digest of the buffer.
func (DigestSha256) Sign(buffer []byte) []byte {
	digest := sha256.Sum256(buffer)
	return digest[:]
}

// Validate returns whether the signature is the SHA-256 digest of the buffer.
func (DigestSha256) Validate(buffer []byte, signature []byte) bool {
	digest := sha256.Sum256(buffer)
	return bytes.Equal(digest[:], signature)
}
