// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfutils

import (
	"encoding/binary"
	"math"
)

// ---- Unmarshal functions ----

// UnmarshalUint32 unmarshals a little endian uint32 from the src input
func UnmarshalUint32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src[:4])
}

// UnmarshalUint16 unmarshals a little endian uint16 from the src input
func UnmarshalUint16(src []byte) uint16 {
	return binary.LittleEndian.Uint16(src[:2])
}

// UnmarshalFloat32 unmarshals a little endian IEEE-754 single from the src input
func UnmarshalFloat32(src []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src[:4]))
}

// UnmarshalFixed16P16 unmarshals a signed 16.16 fixed-point number as raw epsilons
func UnmarshalFixed16P16(src []byte) int32 {
	return int32(binary.LittleEndian.Uint32(src[:4]))
}

// UnmarshalFixed8P8 unmarshals a signed 8.8 fixed-point number as raw epsilons
func UnmarshalFixed8P8(src []byte) int16 {
	return int16(binary.LittleEndian.Uint16(src[:2]))
}
