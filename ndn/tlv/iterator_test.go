/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"errors"
	"testing"

	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(elems ...*tlv.Block) *tlv.Block {
	b := tlv.NewEmptyBlock(tlv.NextHopRecord)
	for _, elem := range elems {
		b.Append(elem)
	}
	decoded, _, _ := tlv.DecodeBlock(b.Wire())
	return decoded
}

func TestElementIteratorReadsInOrder(t *testing.T) {
	it, err := tlv.NewElementIterator(makeRecord(
		tlv.EncodeNNIBlock(tlv.FaceID, 7),
		tlv.EncodeNNIBlock(tlv.Cost, 20)))
	require.NoError(t, err)

	faceID, err := it.ReadNNI(tlv.FaceID)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), faceID)
	assert.False(t, it.AtEnd())
	assert.Equal(t, uint32(tlv.Cost), it.Peek().Type())
	cost, err := it.ReadNNI(tlv.Cost)
	assert.NoError(t, err)
	assert.Equal(t, uint64(20), cost)
	assert.True(t, it.AtEnd())
	assert.Nil(t, it.Peek())
	assert.NoError(t, it.ErrUnlessEnd())
}

func TestElementIteratorTypeMismatch(t *testing.T) {
	it, err := tlv.NewElementIterator(makeRecord(tlv.EncodeNNIBlock(tlv.Cost, 20)))
	require.NoError(t, err)

	_, err = it.ReadNNI(tlv.FaceID)
	assert.ErrorIs(t, err, tlv.ErrUnexpected)
	var decodeErr *tlv.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, uint32(tlv.FaceID), decodeErr.Expected)
	assert.Equal(t, uint32(tlv.Cost), decodeErr.Actual)
	assert.False(t, decodeErr.Truncated)
	assert.Contains(t, err.Error(), "FaceId")
	assert.Contains(t, err.Error(), "Cost")
}

func TestElementIteratorPrematureEnd(t *testing.T) {
	it, err := tlv.NewElementIterator(makeRecord(tlv.EncodeNNIBlock(tlv.FaceID, 1)))
	require.NoError(t, err)

	_, err = it.ReadNNI(tlv.FaceID)
	require.NoError(t, err)
	_, err = it.ReadNNI(tlv.Cost)
	assert.ErrorIs(t, err, tlv.ErrPrematureEnd)
	var decodeErr *tlv.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, decodeErr.Truncated)
	assert.Equal(t, uint32(tlv.Cost), decodeErr.Expected)
	assert.Contains(t, err.Error(), "#106")
}

func TestElementIteratorTrailing(t *testing.T) {
	it, err := tlv.NewElementIterator(makeRecord(
		tlv.EncodeNNIBlock(tlv.FaceID, 1),
		tlv.EncodeNNIBlock(tlv.Cost, 2),
		tlv.EncodeNNIBlock(tlv.Cost, 3)))
	require.NoError(t, err)
	_, _ = it.ReadNNI(tlv.FaceID)
	_, _ = it.ReadNNI(tlv.Cost)
	err = it.ErrUnlessEnd()
	assert.ErrorIs(t, err, tlv.ErrTrailingElements)
	var trailing *tlv.TrailingError
	require.True(t, errors.As(err, &trailing))
	assert.Equal(t, 1, trailing.Remaining)
	assert.Equal(t, uint32(tlv.NextHopRecord), trailing.Outer)
}
