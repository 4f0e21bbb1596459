// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlendMode(t *testing.T) {
	expected := []BlendMode{
		BlendModeNormal, BlendModeNormal, BlendModeLayer, BlendModeMultiply, BlendModeScreen,
		BlendModeLighten, BlendModeDarken, BlendModeDifference, BlendModeAdd, BlendModeSubtract,
		BlendModeInvert, BlendModeAlpha, BlendModeErase, BlendModeOverlay, BlendModeHardlight,
	}
	dec := NewDecoder(nil)

	for code, mode := range expected {
		got, n, err := dec.DecodeBlendMode([]byte{uint8(code), 0xaa})
		require.NoError(t, err, "code %d", code)
		assert.Equal(t, mode, got, "code %d", code)
		assert.Equal(t, 1, n)
	}
}

func TestDecodeBlendMode_Unmapped(t *testing.T) {
	t.Run("Reject", func(t *testing.T) {
		_, n, err := NewDecoder(nil).DecodeBlendMode([]byte{15})
		require.ErrorIs(t, err, ErrUnmappedDiscriminant)
		assert.False(t, IsIncomplete(err))
		assert.Zero(t, n)

		var discErr *DiscriminantError
		require.ErrorAs(t, err, &discErr)
		assert.Equal(t, "blend mode", discErr.Field)
		assert.Equal(t, uint8(15), discErr.Value)
	})

	t.Run("Permissive", func(t *testing.T) {
		dec := NewDecoder(nil, WithPolicy(PolicyPermissive))
		mode, n, err := dec.DecodeBlendMode([]byte{0xff})
		require.NoError(t, err)
		assert.Equal(t, BlendModeNormal, mode)
		assert.Equal(t, 1, n)
	})
}

func TestDecodeBlendMode_Incomplete(t *testing.T) {
	_, _, err := NewDecoder(nil).DecodeBlendMode(nil)
	assert.True(t, IsIncomplete(err))
}

func TestBlendModeString(t *testing.T) {
	assert.Equal(t, "hardlight", BlendModeHardlight.String())
	assert.Equal(t, "BlendMode(42)", BlendMode(42).String())
}
