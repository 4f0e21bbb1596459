// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

// bitField describes one sub-field of a packed flags word.
type bitField struct {
	name  string
	shift uint
	mask  uint32
}

func (f bitField) extract(word uint32) uint32 {
	return (word >> f.shift) & f.mask
}

func (f bitField) isSet(word uint32) bool {
	return f.extract(word) != 0
}

// bits returns the word mask covered by the field.
func (f bitField) bits() uint32 {
	return f.mask << f.shift
}

func flag(name string, bit uint) bitField {
	return bitField{name: name, shift: bit, mask: 1}
}

// Flags byte layouts, bit 0 is the least significant bit.
var (
	// DropShadow and Glow
	shadowFlagPasses          = bitField{name: "passes", shift: 0, mask: 0b1_1111}
	shadowFlagCompositeSource = flag("composite_source", 5)
	shadowFlagKnockout        = flag("knockout", 6)
	shadowFlagInner           = flag("inner", 7)

	// Bevel, GradientBevel and GradientGlow
	bevelFlagPasses          = bitField{name: "passes", shift: 0, mask: 0b1111}
	bevelFlagOnTop           = flag("on_top", 4)
	bevelFlagCompositeSource = flag("composite_source", 5)
	bevelFlagKnockout        = flag("knockout", 6)
	bevelFlagInner           = flag("inner", 7)

	// Blur, bits [0,2] are reserved
	blurFlagPasses = bitField{name: "passes", shift: 3, mask: 0b1_1111}

	// Convolution, bits [2,7] are reserved
	convolutionFlagPreserveAlpha = flag("preserve_alpha", 0)
	convolutionFlagClamp         = flag("clamp", 1)

	// Gradient record header
	gradientFlagSpread     = bitField{name: "spread", shift: 6, mask: 0b11}
	gradientFlagColorSpace = bitField{name: "color_space", shift: 4, mask: 0b11}
	gradientFlagColorCount = bitField{name: "color_count", shift: 0, mask: 0b1111}
)

// flagLayouts lists every byte layout so the tables can be audited together.
var flagLayouts = map[string][]bitField{
	"shadow": {
		shadowFlagPasses, shadowFlagCompositeSource, shadowFlagKnockout, shadowFlagInner,
	},
	"bevel": {
		bevelFlagPasses, bevelFlagOnTop, bevelFlagCompositeSource, bevelFlagKnockout, bevelFlagInner,
	},
	"blur":        {blurFlagPasses},
	"convolution": {convolutionFlagPreserveAlpha, convolutionFlagClamp},
	"gradient":    {gradientFlagSpread, gradientFlagColorSpace, gradientFlagColorCount},
	"clip_events": clipEventFields[:],
}
