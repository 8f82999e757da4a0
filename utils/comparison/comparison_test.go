/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package comparison_test

import (
	"testing"

	"github.com/paNjii/NFD/utils/comparison"
	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, comparison.Min(1, 2))
	assert.Equal(t, 2, comparison.Max(1, 2))
	assert.Equal(t, "a", comparison.Min("b", "a"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, comparison.Clamp(3, 5, 10))
	assert.Equal(t, 10, comparison.Clamp(30, 5, 10))
	assert.Equal(t, uint64(7), comparison.Clamp(uint64(7), 5, 10))
}
