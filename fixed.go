// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"math"

	"github.com/pk910/swf-display/swfutils"
)

// Sfixed16P16 is a signed 16.16 fixed-point number stored as raw epsilons.
type Sfixed16P16 int32

// Sfixed8P8 is a signed 8.8 fixed-point number stored as raw epsilons.
type Sfixed8P8 int16

func (f Sfixed16P16) Float64() float64 {
	return float64(f) / (1 << 16)
}

func (f Sfixed8P8) Float64() float64 {
	return float64(f) / (1 << 8)
}

// Sfixed16P16FromFloat rounds v to the nearest representable 16.16 value.
func Sfixed16P16FromFloat(v float64) Sfixed16P16 {
	return Sfixed16P16(math.Round(v * (1 << 16)))
}

// Sfixed8P8FromFloat rounds v to the nearest representable 8.8 value.
func Sfixed8P8FromFloat(v float64) Sfixed8P8 {
	return Sfixed8P8(math.Round(v * (1 << 8)))
}

// StraightSRgba8 is an sRGB color with a non-premultiplied alpha channel.
type StraightSRgba8 struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func decodeSfixed16P16(dec swfutils.Decoder) (Sfixed16P16, error) {
	v, err := dec.DecodeFixed16P16()
	return Sfixed16P16(v), err
}

func decodeSfixed8P8(dec swfutils.Decoder) (Sfixed8P8, error) {
	v, err := dec.DecodeFixed8P8()
	return Sfixed8P8(v), err
}

// decodeStraightSRgba8 reads the 4-byte RGBA form.
func decodeStraightSRgba8(dec swfutils.Decoder) (StraightSRgba8, error) {
	raw, err := dec.DecodeBytesBuf(4)
	if err != nil {
		return StraightSRgba8{}, err
	}
	return StraightSRgba8{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
}

// decodeSRgb8 reads the 3-byte RGB form, alpha is fully opaque.
func decodeSRgb8(dec swfutils.Decoder) (StraightSRgba8, error) {
	raw, err := dec.DecodeBytesBuf(3)
	if err != nil {
		return StraightSRgba8{}, err
	}
	return StraightSRgba8{R: raw[0], G: raw[1], B: raw[2], A: 0xff}, nil
}

func decodeColor(dec swfutils.Decoder, withAlpha bool) (StraightSRgba8, error) {
	if withAlpha {
		return decodeStraightSRgba8(dec)
	}
	return decodeSRgb8(dec)
}
