/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"
	"time"

	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestEncodeDecode(t *testing.T) {
	i := ndn.NewInterest(mustName(t, "/localhost/nfd/fib/list"))
	i.SetCanBePrefix(true)
	i.SetMustBeFresh(true)
	i.SetLifetime(2 * time.Second)
	assert.Len(t, i.Nonce(), 4)

	block, _, err := tlv.DecodeBlock(i.Encode().Wire())
	require.NoError(t, err)
	decoded, err := ndn.DecodeInterest(block)
	require.NoError(t, err)
	assert.Equal(t, "/localhost/nfd/fib/list", decoded.Name().String())
	assert.True(t, decoded.CanBePrefix())
	assert.True(t, decoded.MustBeFresh())
	assert.Equal(t, 2*time.Second, decoded.Lifetime())
	assert.Equal(t, i.Nonce(), decoded.Nonce())
}

func TestInterestDefaults(t *testing.T) {
	i := ndn.NewInterest(mustName(t, "/a"))
	block, _, err := tlv.DecodeBlock(i.Encode().Wire())
	require.NoError(t, err)
	assert.Nil(t, block.Find(tlv.InterestLifetime))

	decoded, err := ndn.DecodeInterest(block)
	require.NoError(t, err)
	assert.False(t, decoded.CanBePrefix())
	assert.False(t, decoded.MustBeFresh())
	assert.Equal(t, ndn.DefaultInterestLifetime, decoded.Lifetime())
}

func TestInterestDecodeErrors(t *testing.T) {
	missingName := tlv.NewEmptyBlock(tlv.Interest).Append(tlv.NewBlock(tlv.Nonce, []byte{1, 2, 3, 4}))
	block, _, err := tlv.DecodeBlock(missingName.Wire())
	require.NoError(t, err)
	_, err = ndn.DecodeInterest(block)
	assert.Error(t, err)

	outOfOrder := tlv.NewEmptyBlock(tlv.Interest).
		Append(mustName(t, "/a").Encode()).
		Append(tlv.NewEmptyBlock(tlv.MustBeFresh)).
		Append(tlv.NewEmptyBlock(tlv.CanBePrefix))
	block, _, err = tlv.DecodeBlock(outOfOrder.Wire())
	require.NoError(t, err)
	_, err = ndn.DecodeInterest(block)
	assert.Error(t, err)

	_, err = ndn.DecodeInterest(tlv.NewBlock(tlv.Data, nil))
	assert.ErrorIs(t, err, tlv.ErrUnexpected)
}
