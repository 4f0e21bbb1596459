// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import "fmt"

// FilterKind is the discriminant byte of a filter record.
type FilterKind uint8

const (
	FilterKindDropShadow FilterKind = iota
	FilterKindBlur
	FilterKindGlow
	FilterKindBevel
	FilterKindGradientGlow
	FilterKindConvolution
	FilterKindColorMatrix
	FilterKindGradientBevel
)

func (k FilterKind) String() string {
	switch k {
	case FilterKindDropShadow:
		return "drop_shadow"
	case FilterKindBlur:
		return "blur"
	case FilterKindGlow:
		return "glow"
	case FilterKindBevel:
		return "bevel"
	case FilterKindGradientGlow:
		return "gradient_glow"
	case FilterKindConvolution:
		return "convolution"
	case FilterKindColorMatrix:
		return "color_matrix"
	case FilterKindGradientBevel:
		return "gradient_bevel"
	default:
		return fmt.Sprintf("FilterKind(%d)", uint8(k))
	}
}

// Filter is one of the eight filter records. The concrete type is a pointer
// to the struct matching Kind().
type Filter interface {
	Kind() FilterKind
}

type DropShadowFilter struct {
	Color           StraightSRgba8
	BlurX           Sfixed16P16
	BlurY           Sfixed16P16
	Angle           Sfixed16P16
	Distance        Sfixed16P16
	Strength        Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

type BlurFilter struct {
	BlurX  Sfixed16P16
	BlurY  Sfixed16P16
	Passes uint8
}

type GlowFilter struct {
	Color           StraightSRgba8
	BlurX           Sfixed16P16
	BlurY           Sfixed16P16
	Strength        Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

type BevelFilter struct {
	ShadowColor     StraightSRgba8
	HighlightColor  StraightSRgba8
	BlurX           Sfixed16P16
	BlurY           Sfixed16P16
	Angle           Sfixed16P16
	Distance        Sfixed16P16
	Strength        Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

type GradientGlowFilter struct {
	Gradient        []ColorStop
	BlurX           Sfixed16P16
	BlurY           Sfixed16P16
	Angle           Sfixed16P16
	Distance        Sfixed16P16
	Strength        Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

type GradientBevelFilter struct {
	Gradient        []ColorStop
	BlurX           Sfixed16P16
	BlurY           Sfixed16P16
	Angle           Sfixed16P16
	Distance        Sfixed16P16
	Strength        Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

// ConvolutionFilter holds a MatrixWidth x MatrixHeight kernel in row order.
type ConvolutionFilter struct {
	MatrixWidth   int
	MatrixHeight  int
	Divisor       float32
	Bias          float32
	Matrix        []float32
	DefaultColor  StraightSRgba8
	Clamp         bool
	PreserveAlpha bool
}

// ColorMatrixFilter holds a 4x5 matrix in row order.
type ColorMatrixFilter struct {
	Matrix [20]float32
}

func (*DropShadowFilter) Kind() FilterKind    { return FilterKindDropShadow }
func (*BlurFilter) Kind() FilterKind          { return FilterKindBlur }
func (*GlowFilter) Kind() FilterKind          { return FilterKindGlow }
func (*BevelFilter) Kind() FilterKind         { return FilterKindBevel }
func (*GradientGlowFilter) Kind() FilterKind  { return FilterKindGradientGlow }
func (*ConvolutionFilter) Kind() FilterKind   { return FilterKindConvolution }
func (*ColorMatrixFilter) Kind() FilterKind   { return FilterKindColorMatrix }
func (*GradientBevelFilter) Kind() FilterKind { return FilterKindGradientBevel }
