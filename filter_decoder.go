// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"github.com/pk910/swf-display/swfutils"
)

const colorMatrixSize = 20

// DecodeFilterFrom decodes one filter record at the cursor.
func (d *Decoder) DecodeFilterFrom(dec swfutils.Decoder) (Filter, error) {
	start := dec.GetPosition()
	code, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}

	var filter Filter
	kind := FilterKind(code)
	switch kind {
	case FilterKindDropShadow:
		filter, err = decodeDropShadowFilter(dec)
	case FilterKindBlur:
		filter, err = decodeBlurFilter(dec)
	case FilterKindGlow:
		filter, err = decodeGlowFilter(dec)
	case FilterKindBevel:
		filter, err = decodeBevelFilter(dec)
	case FilterKindGradientGlow:
		filter, err = decodeGradientGlowFilter(dec)
	case FilterKindConvolution:
		filter, err = decodeConvolutionFilter(dec)
	case FilterKindColorMatrix:
		filter, err = decodeColorMatrixFilter(dec)
	case FilterKindGradientBevel:
		filter, err = decodeGradientBevelFilter(dec)
	default:
		// the payload size of an unknown kind is unknown, so there is no
		// permissive fallback here
		return nil, &DiscriminantError{Field: "filter kind", Value: code, Offset: start}
	}
	if err != nil {
		return nil, err
	}

	d.trace(kind.String(), start, dec)
	return filter, nil
}

// DecodeFilterListFrom decodes a one byte count followed by that many filters.
func (d *Decoder) DecodeFilterListFrom(dec swfutils.Decoder) ([]Filter, error) {
	count, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	if err := d.checkLimit("max_filters", d.limits.MaxFilters, uint64(count)); err != nil {
		return nil, err
	}

	filters := make([]Filter, 0, count)
	for i := 0; i < int(count); i++ {
		filter, err := d.DecodeFilterFrom(dec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// shadowParams are the shared blur, angle, distance and strength fields.
type shadowParams struct {
	blurX    Sfixed16P16
	blurY    Sfixed16P16
	angle    Sfixed16P16
	distance Sfixed16P16
	strength Sfixed8P8
}

func decodeShadowParams(dec swfutils.Decoder) (shadowParams, error) {
	var p shadowParams
	var err error
	if p.blurX, err = decodeSfixed16P16(dec); err != nil {
		return p, err
	}
	if p.blurY, err = decodeSfixed16P16(dec); err != nil {
		return p, err
	}
	if p.angle, err = decodeSfixed16P16(dec); err != nil {
		return p, err
	}
	if p.distance, err = decodeSfixed16P16(dec); err != nil {
		return p, err
	}
	if p.strength, err = decodeSfixed8P8(dec); err != nil {
		return p, err
	}
	return p, nil
}

type shadowFlags struct {
	passes          uint8
	compositeSource bool
	knockout        bool
	inner           bool
}

func parseShadowFlags(flags uint8) shadowFlags {
	word := uint32(flags)
	return shadowFlags{
		passes:          uint8(shadowFlagPasses.extract(word)),
		compositeSource: shadowFlagCompositeSource.isSet(word),
		knockout:        shadowFlagKnockout.isSet(word),
		inner:           shadowFlagInner.isSet(word),
	}
}

type bevelFlags struct {
	passes          uint8
	onTop           bool
	compositeSource bool
	knockout        bool
	inner           bool
}

func parseBevelFlags(flags uint8) bevelFlags {
	word := uint32(flags)
	return bevelFlags{
		passes:          uint8(bevelFlagPasses.extract(word)),
		onTop:           bevelFlagOnTop.isSet(word),
		compositeSource: bevelFlagCompositeSource.isSet(word),
		knockout:        bevelFlagKnockout.isSet(word),
		inner:           bevelFlagInner.isSet(word),
	}
}

func decodeDropShadowFilter(dec swfutils.Decoder) (*DropShadowFilter, error) {
	color, err := decodeStraightSRgba8(dec)
	if err != nil {
		return nil, err
	}
	params, err := decodeShadowParams(dec)
	if err != nil {
		return nil, err
	}
	rawFlags, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	flags := parseShadowFlags(rawFlags)

	return &DropShadowFilter{
		Color:           color,
		BlurX:           params.blurX,
		BlurY:           params.blurY,
		Angle:           params.angle,
		Distance:        params.distance,
		Strength:        params.strength,
		Inner:           flags.inner,
		Knockout:        flags.knockout,
		CompositeSource: flags.compositeSource,
		Passes:          flags.passes,
	}, nil
}

func decodeBlurFilter(dec swfutils.Decoder) (*BlurFilter, error) {
	blurX, err := decodeSfixed16P16(dec)
	if err != nil {
		return nil, err
	}
	blurY, err := decodeSfixed16P16(dec)
	if err != nil {
		return nil, err
	}
	flags, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}

	return &BlurFilter{
		BlurX:  blurX,
		BlurY:  blurY,
		Passes: uint8(blurFlagPasses.extract(uint32(flags))),
	}, nil
}

func decodeGlowFilter(dec swfutils.Decoder) (*GlowFilter, error) {
	color, err := decodeStraightSRgba8(dec)
	if err != nil {
		return nil, err
	}
	blurX, err := decodeSfixed16P16(dec)
	if err != nil {
		return nil, err
	}
	blurY, err := decodeSfixed16P16(dec)
	if err != nil {
		return nil, err
	}
	strength, err := decodeSfixed8P8(dec)
	if err != nil {
		return nil, err
	}
	rawFlags, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	flags := parseShadowFlags(rawFlags)

	return &GlowFilter{
		Color:           color,
		BlurX:           blurX,
		BlurY:           blurY,
		Strength:        strength,
		Inner:           flags.inner,
		Knockout:        flags.knockout,
		CompositeSource: flags.compositeSource,
		Passes:          flags.passes,
	}, nil
}

func decodeBevelFilter(dec swfutils.Decoder) (*BevelFilter, error) {
	shadowColor, err := decodeStraightSRgba8(dec)
	if err != nil {
		return nil, err
	}
	highlightColor, err := decodeStraightSRgba8(dec)
	if err != nil {
		return nil, err
	}
	params, err := decodeShadowParams(dec)
	if err != nil {
		return nil, err
	}
	rawFlags, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	flags := parseBevelFlags(rawFlags)

	return &BevelFilter{
		ShadowColor:     shadowColor,
		HighlightColor:  highlightColor,
		BlurX:           params.blurX,
		BlurY:           params.blurY,
		Angle:           params.angle,
		Distance:        params.distance,
		Strength:        params.strength,
		Inner:           flags.inner,
		Knockout:        flags.knockout,
		CompositeSource: flags.compositeSource,
		OnTop:           flags.onTop,
		Passes:          flags.passes,
	}, nil
}

// decodeGradientFilterBody reads the part shared by gradient glow and
// gradient bevel: count, batched stops, shadow params and bevel flags.
func decodeGradientFilterBody(dec swfutils.Decoder) ([]ColorStop, shadowParams, bevelFlags, error) {
	colorCount, err := dec.DecodeUint8()
	if err != nil {
		return nil, shadowParams{}, bevelFlags{}, err
	}
	gradient, err := decodeFilterGradient(dec, int(colorCount))
	if err != nil {
		return nil, shadowParams{}, bevelFlags{}, err
	}
	params, err := decodeShadowParams(dec)
	if err != nil {
		return nil, shadowParams{}, bevelFlags{}, err
	}
	rawFlags, err := dec.DecodeUint8()
	if err != nil {
		return nil, shadowParams{}, bevelFlags{}, err
	}
	return gradient, params, parseBevelFlags(rawFlags), nil
}

func decodeGradientGlowFilter(dec swfutils.Decoder) (*GradientGlowFilter, error) {
	gradient, params, flags, err := decodeGradientFilterBody(dec)
	if err != nil {
		return nil, err
	}

	return &GradientGlowFilter{
		Gradient:        gradient,
		BlurX:           params.blurX,
		BlurY:           params.blurY,
		Angle:           params.angle,
		Distance:        params.distance,
		Strength:        params.strength,
		Inner:           flags.inner,
		Knockout:        flags.knockout,
		CompositeSource: flags.compositeSource,
		OnTop:           flags.onTop,
		Passes:          flags.passes,
	}, nil
}

func decodeGradientBevelFilter(dec swfutils.Decoder) (*GradientBevelFilter, error) {
	gradient, params, flags, err := decodeGradientFilterBody(dec)
	if err != nil {
		return nil, err
	}

	return &GradientBevelFilter{
		Gradient:        gradient,
		BlurX:           params.blurX,
		BlurY:           params.blurY,
		Angle:           params.angle,
		Distance:        params.distance,
		Strength:        params.strength,
		Inner:           flags.inner,
		Knockout:        flags.knockout,
		CompositeSource: flags.compositeSource,
		OnTop:           flags.onTop,
		Passes:          flags.passes,
	}, nil
}

func decodeConvolutionFilter(dec swfutils.Decoder) (*ConvolutionFilter, error) {
	matrixWidth, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	matrixHeight, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}
	divisor, err := dec.DecodeFloat32()
	if err != nil {
		return nil, err
	}
	bias, err := dec.DecodeFloat32()
	if err != nil {
		return nil, err
	}

	matrix := make([]float32, int(matrixWidth)*int(matrixHeight))
	for i := range matrix {
		if matrix[i], err = dec.DecodeFloat32(); err != nil {
			return nil, err
		}
	}

	defaultColor, err := decodeStraightSRgba8(dec)
	if err != nil {
		return nil, err
	}
	flags, err := dec.DecodeUint8()
	if err != nil {
		return nil, err
	}

	return &ConvolutionFilter{
		MatrixWidth:   int(matrixWidth),
		MatrixHeight:  int(matrixHeight),
		Divisor:       divisor,
		Bias:          bias,
		Matrix:        matrix,
		DefaultColor:  defaultColor,
		Clamp:         convolutionFlagClamp.isSet(uint32(flags)),
		PreserveAlpha: convolutionFlagPreserveAlpha.isSet(uint32(flags)),
	}, nil
}

func decodeColorMatrixFilter(dec swfutils.Decoder) (*ColorMatrixFilter, error) {
	filter := &ColorMatrixFilter{}
	for i := 0; i < colorMatrixSize; i++ {
		v, err := dec.DecodeFloat32()
		if err != nil {
			return nil, err
		}
		filter.Matrix[i] = v
	}
	return filter, nil
}
