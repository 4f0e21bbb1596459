// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfutils

import (
	"io"
)

const (
	// maxDecoderBufferSize is the maximum buffer size for streaming decode
	maxDecoderBufferSize = 2 * 1024 // 2KB
)

// StreamDecoder reads records from an io.Reader holding totalLen bytes.
// Unlike BufferDecoder it cannot rewind: bytes pulled from the reader before
// an ErrIncomplete are gone, so a retry needs a fresh reader.
type StreamDecoder struct {
	reader    io.Reader
	limits    []int
	lastLimit int
	streamLen int
	position  int

	// Internal buffer for reading from stream
	buffer    []byte
	bufferPos int // Current read position within buffer
	bufferLen int // Amount of valid data in buffer
}

var _ Decoder = (*StreamDecoder)(nil)

func NewStreamDecoder(reader io.Reader, totalLen int) *StreamDecoder {
	// Use smaller buffer for small streams
	bufferSize := maxDecoderBufferSize
	if totalLen < bufferSize {
		bufferSize = totalLen
	}
	if bufferSize < 4 {
		bufferSize = 4 // Minimum size to hold a uint32
	}

	return &StreamDecoder{
		reader:    reader,
		limits:    make([]int, 0, 4),
		lastLimit: totalLen,
		streamLen: totalLen,
		position:  0,
		buffer:    make([]byte, bufferSize),
	}
}

func (e *StreamDecoder) GetPosition() int {
	return e.position
}

func (e *StreamDecoder) GetLength() int {
	return e.lastLimit - e.position
}

func (e *StreamDecoder) PushLimit(limit int) {
	limitPos := e.position + limit
	if limitPos > e.lastLimit {
		limitPos = e.lastLimit
	}

	e.limits = append(e.limits, limitPos)
	e.lastLimit = limitPos
}

func (e *StreamDecoder) PopLimit() int {
	limitsLen := len(e.limits)
	if limitsLen == 0 {
		return 0
	}
	limit := e.limits[limitsLen-1]
	if limitsLen <= 1 {
		e.lastLimit = e.streamLen
	} else {
		e.lastLimit = e.limits[limitsLen-2]
	}
	e.limits = e.limits[:limitsLen-1]
	return limit - e.position
}

// ensureBuffered ensures at least n bytes are available in the buffer.
// Returns error if not enough data can be read from the stream.
func (e *StreamDecoder) ensureBuffered(n int) error {
	if e.GetLength() < n {
		return ErrIncomplete
	}

	available := e.bufferLen - e.bufferPos
	if available >= n {
		return nil
	}

	needed := n - available

	if len(e.buffer) < n {
		newSize := len(e.buffer) * 2
		if newSize < n {
			newSize = n
		}
		newBuf := make([]byte, newSize)
		copy(newBuf, e.buffer[e.bufferPos:e.bufferLen])
		e.buffer = newBuf
	} else if e.bufferPos > 0 {
		// Shift remaining data to start of buffer
		copy(e.buffer, e.buffer[e.bufferPos:e.bufferLen])
	}
	e.bufferLen = available
	e.bufferPos = 0

	// Calculate how much to read - at least needed, but prefer larger chunks
	toRead := len(e.buffer) - e.bufferLen

	// Don't read more than remaining in stream
	remaining := e.streamLen - e.position - available
	if toRead > remaining {
		toRead = remaining
	}

	if toRead < needed {
		return ErrIncomplete
	}

	readBuf := e.buffer[e.bufferLen : e.bufferLen+toRead]
	totalRead := 0
	for totalRead < needed {
		n, err := e.reader.Read(readBuf[totalRead:])
		totalRead += n
		e.bufferLen += n

		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				if totalRead >= needed {
					return nil
				}
				return ErrIncomplete
			}
			return err
		}

		// reader returned 0 bytes without error
		if n == 0 {
			return ErrIncomplete
		}
	}

	return nil
}

// readBytesRef returns a slice reference to n bytes in the buffer.
// The returned slice is only valid until the next read operation.
func (e *StreamDecoder) readBytesRef(n int) ([]byte, error) {
	if err := e.ensureBuffered(n); err != nil {
		return nil, err
	}
	buf := e.buffer[e.bufferPos : e.bufferPos+n]
	e.bufferPos += n
	e.position += n
	return buf, nil
}

func (e *StreamDecoder) DecodeUint8() (uint8, error) {
	buf, err := e.readBytesRef(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (e *StreamDecoder) DecodeUint16() (uint16, error) {
	buf, err := e.readBytesRef(2)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint16(buf), nil
}

func (e *StreamDecoder) DecodeUint32() (uint32, error) {
	buf, err := e.readBytesRef(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint32(buf), nil
}

func (e *StreamDecoder) DecodeFloat32() (float32, error) {
	buf, err := e.readBytesRef(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalFloat32(buf), nil
}

func (e *StreamDecoder) DecodeFixed16P16() (int32, error) {
	buf, err := e.readBytesRef(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalFixed16P16(buf), nil
}

func (e *StreamDecoder) DecodeFixed8P8() (int16, error) {
	buf, err := e.readBytesRef(2)
	if err != nil {
		return 0, err
	}
	return UnmarshalFixed8P8(buf), nil
}

// DecodeBytesBuf returns a copy of the next l bytes. Unlike the buffer
// variant the result is owned by the caller.
func (e *StreamDecoder) DecodeBytesBuf(l int) ([]byte, error) {
	if l < 0 {
		return nil, ErrNegativeLength
	}
	buf, err := e.readBytesRef(l)
	if err != nil {
		return nil, err
	}
	out := make([]byte, l)
	copy(out, buf)
	return out, nil
}

func (e *StreamDecoder) SkipBytes(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	_, err := e.readBytesRef(n)
	return err
}
