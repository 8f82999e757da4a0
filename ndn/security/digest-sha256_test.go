/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security_test

import (
	"encoding/hex"
	"testing"

	"github.com/paNjii/NFD/ndn/security"
	"github.com/stretchr/testify/assert"
)

func TestDigestSha256(t *testing.T) {
	signature, err := security.Sign(security.DigestSha256Type, []byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(signature))

	ok, err := security.Verify(security.DigestSha256Type, []byte("abc"), signature)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = security.Verify(security.DigestSha256Type, []byte("abd"), signature)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = security.Sign(security.SignatureSha256WithRsaType, []byte("abc"))
	assert.ErrorIs(t, err, security.ErrUnsupportedSignatureType)
}
