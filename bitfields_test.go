// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagLayoutsDoNotOverlap(t *testing.T) {
	for name, layout := range flagLayouts {
		t.Run(name, func(t *testing.T) {
			var seen uint32
			for _, field := range layout {
				assert.Zero(t, seen&field.bits(), "field %s overlaps another field", field.name)
				seen |= field.bits()
			}
		})
	}
}

func TestFlagLayoutsCoverage(t *testing.T) {
	// reserved bits are the only gaps
	expected := map[string]uint32{
		"shadow":      0xff,
		"bevel":       0xff,
		"blur":        0xf8,
		"convolution": 0x03,
		"gradient":    0xff,
		"clip_events": 0x7ffff,
	}

	for name, layout := range flagLayouts {
		var covered uint32
		for _, field := range layout {
			covered |= field.bits()
		}
		assert.Equal(t, expected[name], covered, "layout %s", name)
	}
}

func TestParseShadowFlags(t *testing.T) {
	flags := parseShadowFlags(0b1010_0011)
	assert.Equal(t, uint8(3), flags.passes)
	assert.True(t, flags.compositeSource)
	assert.False(t, flags.knockout)
	assert.True(t, flags.inner)

	flags = parseShadowFlags(0b0101_1111)
	assert.Equal(t, uint8(31), flags.passes)
	assert.False(t, flags.compositeSource)
	assert.True(t, flags.knockout)
	assert.False(t, flags.inner)
}

func TestParseBevelFlags(t *testing.T) {
	flags := parseBevelFlags(0b0001_1111)
	assert.Equal(t, uint8(15), flags.passes)
	assert.True(t, flags.onTop)
	assert.False(t, flags.compositeSource)

	flags = parseBevelFlags(0b1110_0001)
	assert.Equal(t, uint8(1), flags.passes)
	assert.False(t, flags.onTop)
	assert.True(t, flags.compositeSource)
	assert.True(t, flags.knockout)
	assert.True(t, flags.inner)
}
