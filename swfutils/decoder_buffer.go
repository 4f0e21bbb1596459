// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfutils

type BufferDecoder struct {
	buffer    []byte
	limits    []int
	lastLimit int
	bufferLen int
	position  int
}

var _ Decoder = (*BufferDecoder)(nil)

func NewBufferDecoder(buffer []byte) *BufferDecoder {
	return &BufferDecoder{
		buffer:    buffer,
		limits:    make([]int, 0, 4),
		lastLimit: len(buffer),
		bufferLen: len(buffer),
		position:  0,
	}
}

func (e *BufferDecoder) GetPosition() int {
	return e.position
}

func (e *BufferDecoder) GetLength() int {
	return e.lastLimit - e.position
}

func (e *BufferDecoder) PushLimit(limit int) {
	limitPos := e.position + limit
	if limitPos > e.lastLimit {
		limitPos = e.lastLimit
	}

	e.limits = append(e.limits, limitPos)
	e.lastLimit = limitPos
}

func (e *BufferDecoder) PopLimit() int {
	limitsLen := len(e.limits)
	if limitsLen == 0 {
		return 0
	}
	limit := e.limits[limitsLen-1]
	if limitsLen <= 1 {
		e.lastLimit = e.bufferLen
	} else {
		e.lastLimit = e.limits[limitsLen-2]
	}
	e.limits = e.limits[:limitsLen-1]
	return limit - e.position
}

// take returns the next n bytes and advances the cursor, or ErrIncomplete
// leaving the cursor untouched.
func (e *BufferDecoder) take(n int) ([]byte, error) {
	if e.GetLength() < n {
		return nil, ErrIncomplete
	}
	buf := e.buffer[e.position : e.position+n]
	e.position += n
	return buf, nil
}

func (e *BufferDecoder) DecodeUint8() (uint8, error) {
	buf, err := e.take(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (e *BufferDecoder) DecodeUint16() (uint16, error) {
	buf, err := e.take(2)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint16(buf), nil
}

func (e *BufferDecoder) DecodeUint32() (uint32, error) {
	buf, err := e.take(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint32(buf), nil
}

func (e *BufferDecoder) DecodeFloat32() (float32, error) {
	buf, err := e.take(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalFloat32(buf), nil
}

func (e *BufferDecoder) DecodeFixed16P16() (int32, error) {
	buf, err := e.take(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalFixed16P16(buf), nil
}

func (e *BufferDecoder) DecodeFixed8P8() (int16, error) {
	buf, err := e.take(2)
	if err != nil {
		return 0, err
	}
	return UnmarshalFixed8P8(buf), nil
}

// DecodeBytesBuf returns a sub-slice of the underlying buffer. Callers that
// retain the bytes past the lifetime of the input must copy them.
func (e *BufferDecoder) DecodeBytesBuf(len int) ([]byte, error) {
	if len < 0 {
		return nil, ErrNegativeLength
	}
	return e.take(len)
}

func (e *BufferDecoder) SkipBytes(n int) error {
	_, err := e.DecodeBytesBuf(n)
	return err
}
