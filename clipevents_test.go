// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipEventFlags_SingleBits(t *testing.T) {
	for bit := 0; bit < clipEventCount; bit++ {
		flags := ClipEventFlagsFromBits(1 << bit)

		set := 0
		for i, ptr := range flags.fields() {
			if *ptr {
				set++
				assert.Equal(t, bit, i, "bit %d set field %s", bit, clipEventFields[i].name)
			}
		}
		assert.Equal(t, 1, set, "bit %d", bit)
	}
}

func TestClipEventFlags_NamedBits(t *testing.T) {
	assert.Equal(t, ClipEventFlags{Load: true}, ClipEventFlagsFromBits(1<<0))
	assert.Equal(t, ClipEventFlags{KeyUp: true}, ClipEventFlagsFromBits(1<<7))
	assert.Equal(t, ClipEventFlags{Press: true}, ClipEventFlagsFromBits(0x0400))
	assert.Equal(t, ClipEventFlags{DragOver: true}, ClipEventFlagsFromBits(1<<15))
	assert.Equal(t, ClipEventFlags{KeyPress: true}, ClipEventFlagsFromBits(1<<17))
	assert.Equal(t, ClipEventFlags{Construct: true}, ClipEventFlagsFromBits(1<<18))
}

func TestClipEventFlags_RoundTrip(t *testing.T) {
	// every 97th combination plus the boundaries
	words := []uint32{0, 0x7ffff}
	for w := uint32(1); w < 1<<clipEventCount; w += 97 {
		words = append(words, w)
	}

	for _, word := range words {
		assert.Equal(t, word, ClipEventFlagsFromBits(word).Bits(), "word %#x", word)
	}
}

func TestClipEventFlags_IgnoresUnassignedBits(t *testing.T) {
	flags := ClipEventFlagsFromBits(0xfff80000)
	assert.Equal(t, ClipEventFlags{}, flags)
}

func TestDecodeClipEventFlags(t *testing.T) {
	dec := NewDecoder(nil)

	t.Run("Narrow", func(t *testing.T) {
		flags, n, err := dec.DecodeClipEventFlags([]byte{0x01, 0x80}, false)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, ClipEventFlags{Load: true, DragOver: true}, flags)
	})

	t.Run("Extended", func(t *testing.T) {
		flags, n, err := dec.DecodeClipEventFlags([]byte{0x00, 0x00, 0x06, 0x00}, true)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, ClipEventFlags{KeyPress: true, Construct: true}, flags)
	})

	t.Run("Incomplete", func(t *testing.T) {
		_, _, err := dec.DecodeClipEventFlags([]byte{0x00, 0x00, 0x06}, true)
		assert.True(t, IsIncomplete(err))
		_, _, err = dec.DecodeClipEventFlags([]byte{0x01}, false)
		assert.True(t, IsIncomplete(err))
	})
}
