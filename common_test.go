// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pk910/swf-display/swfutils"
)

// recordBuilder assembles little-endian test payloads.
type recordBuilder struct {
	buf bytes.Buffer
}

func newRecord() *recordBuilder {
	return &recordBuilder{}
}

func (b *recordBuilder) u8(v ...uint8) *recordBuilder {
	b.buf.Write(v)
	return b
}

func (b *recordBuilder) u16(v uint16) *recordBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *recordBuilder) u32(v uint32) *recordBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *recordBuilder) f32(v ...float32) *recordBuilder {
	for _, f := range v {
		b.u32(math.Float32bits(f))
	}
	return b
}

func (b *recordBuilder) fixed16(v float64) *recordBuilder {
	return b.u32(uint32(Sfixed16P16FromFloat(v)))
}

func (b *recordBuilder) fixed8(v float64) *recordBuilder {
	return b.u16(uint16(Sfixed8P8FromFloat(v)))
}

func (b *recordBuilder) rgba(c StraightSRgba8) *recordBuilder {
	return b.u8(c.R, c.G, c.B, c.A)
}

func (b *recordBuilder) bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

var (
	red   = StraightSRgba8{R: 0xff, G: 0x00, B: 0x00, A: 0x80}
	green = StraightSRgba8{R: 0x00, G: 0xff, B: 0x00, A: 0xc0}
	blue  = StraightSRgba8{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
)

func bufferOf(raw []byte) *swfutils.BufferDecoder {
	return swfutils.NewBufferDecoder(raw)
}
