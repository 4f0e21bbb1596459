// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfutils

// Decoder is a little-endian byte cursor. Every fixed-width read either
// succeeds or returns ErrIncomplete without consuming input.
type Decoder interface {
	GetPosition() int // return current position
	GetLength() int   // return remaining length
	PushLimit(limit int)
	PopLimit() int
	DecodeUint8() (uint8, error)
	DecodeUint16() (uint16, error)
	DecodeUint32() (uint32, error)
	DecodeFloat32() (float32, error)
	DecodeFixed16P16() (int32, error)
	DecodeFixed8P8() (int16, error)
	DecodeBytesBuf(len int) ([]byte, error)
	SkipBytes(n int) error
}
