// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"github.com/pk910/swf-display/swfutils"
	"go.uber.org/zap"
)

type GradientSpread uint8

const (
	GradientSpreadPad GradientSpread = iota
	GradientSpreadReflect
	GradientSpreadRepeat
)

func (s GradientSpread) String() string {
	switch s {
	case GradientSpreadPad:
		return "pad"
	case GradientSpreadReflect:
		return "reflect"
	case GradientSpreadRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

type ColorSpace uint8

const (
	ColorSpaceSRgb ColorSpace = iota
	ColorSpaceLinearRgb
)

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceSRgb:
		return "srgb"
	case ColorSpaceLinearRgb:
		return "linear_rgb"
	default:
		return "unknown"
	}
}

// ColorStop is one gradient stop. Stops keep their on-disk order.
type ColorStop struct {
	Ratio uint8
	Color StraightSRgba8
}

// MorphColorStop pairs the start and end state of a stop.
type MorphColorStop struct {
	Ratio      uint8
	Color      StraightSRgba8
	MorphRatio uint8
	MorphColor StraightSRgba8
}

type Gradient struct {
	Spread     GradientSpread
	ColorSpace ColorSpace
	Colors     []ColorStop
}

type MorphGradient struct {
	Spread     GradientSpread
	ColorSpace ColorSpace
	Colors     []MorphColorStop
}

func decodeColorStop(dec swfutils.Decoder, withAlpha bool) (ColorStop, error) {
	ratio, err := dec.DecodeUint8()
	if err != nil {
		return ColorStop{}, err
	}
	color, err := decodeColor(dec, withAlpha)
	if err != nil {
		return ColorStop{}, err
	}
	return ColorStop{Ratio: ratio, Color: color}, nil
}

func decodeMorphColorStop(dec swfutils.Decoder, withAlpha bool) (MorphColorStop, error) {
	start, err := decodeColorStop(dec, withAlpha)
	if err != nil {
		return MorphColorStop{}, err
	}
	end, err := decodeColorStop(dec, withAlpha)
	if err != nil {
		return MorphColorStop{}, err
	}
	return MorphColorStop{
		Ratio:      start.Ratio,
		Color:      start.Color,
		MorphRatio: end.Ratio,
		MorphColor: end.Color,
	}, nil
}

// decodeGradientHeader splits the gradient flags byte into spread, color
// space and stop count.
func (d *Decoder) decodeGradientHeader(dec swfutils.Decoder) (GradientSpread, ColorSpace, int, error) {
	start := dec.GetPosition()
	flags, err := dec.DecodeUint8()
	if err != nil {
		return 0, 0, 0, err
	}
	word := uint32(flags)

	spreadID := uint8(gradientFlagSpread.extract(word))
	var spread GradientSpread
	switch spreadID {
	case 0:
		spread = GradientSpreadPad
	case 1:
		spread = GradientSpreadReflect
	case 2:
		spread = GradientSpreadRepeat
	default:
		if d.policy != PolicyPermissive {
			return 0, 0, 0, &DiscriminantError{Field: "gradient spread", Value: spreadID, Offset: start}
		}
		d.logger.Warn("unmapped gradient spread, using pad", zap.Uint8("spread", spreadID), zap.Int("offset", start))
		spread = GradientSpreadPad
	}

	colorSpaceID := uint8(gradientFlagColorSpace.extract(word))
	var colorSpace ColorSpace
	switch colorSpaceID {
	case 0:
		colorSpace = ColorSpaceSRgb
	case 1:
		colorSpace = ColorSpaceLinearRgb
	default:
		if d.policy != PolicyPermissive {
			return 0, 0, 0, &DiscriminantError{Field: "gradient color space", Value: colorSpaceID, Offset: start}
		}
		d.logger.Warn("unmapped gradient color space, using srgb", zap.Uint8("color_space", colorSpaceID), zap.Int("offset", start))
		colorSpace = ColorSpaceSRgb
	}

	return spread, colorSpace, int(gradientFlagColorCount.extract(word)), nil
}

// DecodeGradientFrom decodes a gradient record using the interleaved stop
// layout: ratio and color are read together for each stop.
func (d *Decoder) DecodeGradientFrom(dec swfutils.Decoder, withAlpha bool) (*Gradient, error) {
	start := dec.GetPosition()
	spread, colorSpace, colorCount, err := d.decodeGradientHeader(dec)
	if err != nil {
		return nil, err
	}

	colors := make([]ColorStop, 0, colorCount)
	for i := 0; i < colorCount; i++ {
		stop, err := decodeColorStop(dec, withAlpha)
		if err != nil {
			return nil, err
		}
		colors = append(colors, stop)
	}

	d.trace("gradient", start, dec)
	return &Gradient{
		Spread:     spread,
		ColorSpace: colorSpace,
		Colors:     colors,
	}, nil
}

// DecodeMorphGradientFrom decodes a morph gradient record, each stop is two
// ordinary stops back to back.
func (d *Decoder) DecodeMorphGradientFrom(dec swfutils.Decoder, withAlpha bool) (*MorphGradient, error) {
	start := dec.GetPosition()
	spread, colorSpace, colorCount, err := d.decodeGradientHeader(dec)
	if err != nil {
		return nil, err
	}

	colors := make([]MorphColorStop, 0, colorCount)
	for i := 0; i < colorCount; i++ {
		stop, err := decodeMorphColorStop(dec, withAlpha)
		if err != nil {
			return nil, err
		}
		colors = append(colors, stop)
	}

	d.trace("morph_gradient", start, dec)
	return &MorphGradient{
		Spread:     spread,
		ColorSpace: colorSpace,
		Colors:     colors,
	}, nil
}

// decodeFilterGradient reads the batched stop layout of the gradient glow and
// gradient bevel filters: all RGBA colors first, then all ratios.
func decodeFilterGradient(dec swfutils.Decoder, colorCount int) ([]ColorStop, error) {
	stops := make([]ColorStop, colorCount)
	for i := range stops {
		color, err := decodeStraightSRgba8(dec)
		if err != nil {
			return nil, err
		}
		stops[i].Color = color
	}
	for i := range stops {
		ratio, err := dec.DecodeUint8()
		if err != nil {
			return nil, err
		}
		stops[i].Ratio = ratio
	}
	return stops, nil
}
