// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"fmt"

	"github.com/pk910/swf-display/swfutils"
	"go.uber.org/zap"
)

type BlendMode uint8

const (
	BlendModeNormal BlendMode = iota
	BlendModeLayer
	BlendModeMultiply
	BlendModeScreen
	BlendModeLighten
	BlendModeDarken
	BlendModeDifference
	BlendModeAdd
	BlendModeSubtract
	BlendModeInvert
	BlendModeAlpha
	BlendModeErase
	BlendModeOverlay
	BlendModeHardlight
)

var blendModeNames = [...]string{
	BlendModeNormal:     "normal",
	BlendModeLayer:      "layer",
	BlendModeMultiply:   "multiply",
	BlendModeScreen:     "screen",
	BlendModeLighten:    "lighten",
	BlendModeDarken:     "darken",
	BlendModeDifference: "difference",
	BlendModeAdd:        "add",
	BlendModeSubtract:   "subtract",
	BlendModeInvert:     "invert",
	BlendModeAlpha:      "alpha",
	BlendModeErase:      "erase",
	BlendModeOverlay:    "overlay",
	BlendModeHardlight:  "hardlight",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// blendModeCodes maps the on-disk byte to a mode. 0 and 1 are both Normal.
var blendModeCodes = map[uint8]BlendMode{
	0:  BlendModeNormal,
	1:  BlendModeNormal,
	2:  BlendModeLayer,
	3:  BlendModeMultiply,
	4:  BlendModeScreen,
	5:  BlendModeLighten,
	6:  BlendModeDarken,
	7:  BlendModeDifference,
	8:  BlendModeAdd,
	9:  BlendModeSubtract,
	10: BlendModeInvert,
	11: BlendModeAlpha,
	12: BlendModeErase,
	13: BlendModeOverlay,
	14: BlendModeHardlight,
}

// DecodeBlendModeFrom decodes a one byte blend mode at the cursor.
func (d *Decoder) DecodeBlendModeFrom(dec swfutils.Decoder) (BlendMode, error) {
	start := dec.GetPosition()
	code, err := dec.DecodeUint8()
	if err != nil {
		return 0, err
	}

	mode, ok := blendModeCodes[code]
	if !ok {
		if d.policy != PolicyPermissive {
			return 0, &DiscriminantError{Field: "blend mode", Value: code, Offset: start}
		}
		d.logger.Warn("unmapped blend mode, using normal", zap.Uint8("code", code), zap.Int("offset", start))
		mode = BlendModeNormal
	}

	d.trace("blend_mode", start, dec)
	return mode, nil
}
