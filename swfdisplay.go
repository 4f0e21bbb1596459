// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

// Package swfdisplay decodes the display records of SWF tag payloads: filter
// effects, gradients, clip event actions and blend modes.
//
// Every decode call either returns a value together with the number of bytes
// it consumed, fails with ErrIncomplete when the input ends inside the record,
// or fails with a structural error that more input cannot fix. Decoding is
// stateless: after ErrIncomplete, call again from the same start offset with
// a longer buffer.
//
// Example usage:
//
//	dec := swfdisplay.NewDecoder(nil)
//
//	filter, n, err := dec.DecodeFilter(payload)
//	switch {
//	case swfdisplay.IsIncomplete(err):
//	    // wait for more data
//	case err != nil:
//	    return err
//	}
//	payload = payload[n:]
package swfdisplay

import (
	"io"
	"sync"

	"github.com/pk910/swf-display/swfutils"
	"go.uber.org/zap"
)

// Decoder holds the decode policy and limits. It keeps no per-record state
// and can be shared between goroutines.
type Decoder struct {
	specValues     map[string]any
	specValueCache map[string]*cachedSpecValue
	specValueMutex sync.Mutex

	policy  UnknownValuePolicy
	limits  Limits
	verbose bool
	logger  *zap.Logger
}

// NewDecoder creates a decoder. The specs map provides the named values
// limit expressions can refer to and may be nil.
func NewDecoder(specs map[string]any, options ...DecoderOption) *Decoder {
	opts := &DecoderOptions{}
	for _, option := range options {
		option(opts)
	}

	if specs == nil {
		specs = map[string]any{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Decoder{
		specValues:     specs,
		specValueCache: map[string]*cachedSpecValue{},
		policy:         opts.Policy,
		limits:         opts.Limits,
		verbose:        opts.Verbose,
		logger:         logger,
	}
}

// Policy returns the unknown value policy of the decoder.
func (d *Decoder) Policy() UnknownValuePolicy {
	return d.policy
}

func (d *Decoder) trace(record string, start int, dec swfutils.Decoder) {
	if !d.verbose {
		return
	}
	d.logger.Debug("decoded record",
		zap.String("record", record),
		zap.Int("offset", start),
		zap.Int("consumed", dec.GetPosition()-start))
}

// runBuffer decodes one value from buf and reports the consumed byte count.
// Nothing but the error is returned when decoding fails.
func runBuffer[T any](buf []byte, decode func(dec swfutils.Decoder) (T, error)) (T, int, error) {
	dec := swfutils.NewBufferDecoder(buf)
	value, err := decode(dec)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return value, dec.GetPosition(), nil
}

// DecodeFilter decodes one filter record.
func (d *Decoder) DecodeFilter(buf []byte) (Filter, int, error) {
	return runBuffer(buf, d.DecodeFilterFrom)
}

// DecodeFilterReader decodes one filter record from a reader holding size bytes.
func (d *Decoder) DecodeFilterReader(r io.Reader, size int) (Filter, error) {
	return d.DecodeFilterFrom(swfutils.NewStreamDecoder(r, size))
}

// DecodeFilterList decodes a count-prefixed list of filter records.
func (d *Decoder) DecodeFilterList(buf []byte) ([]Filter, int, error) {
	return runBuffer(buf, d.DecodeFilterListFrom)
}

// DecodeGradient decodes a gradient record with interleaved color stops.
func (d *Decoder) DecodeGradient(buf []byte, withAlpha bool) (*Gradient, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (*Gradient, error) {
		return d.DecodeGradientFrom(dec, withAlpha)
	})
}

// DecodeMorphGradient decodes a morph gradient record.
func (d *Decoder) DecodeMorphGradient(buf []byte, withAlpha bool) (*MorphGradient, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (*MorphGradient, error) {
		return d.DecodeMorphGradientFrom(dec, withAlpha)
	})
}

// DecodeColorStop decodes a single (ratio, color) stop.
func (d *Decoder) DecodeColorStop(buf []byte, withAlpha bool) (ColorStop, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (ColorStop, error) {
		return decodeColorStop(dec, withAlpha)
	})
}

// DecodeMorphColorStop decodes a start/end stop pair.
func (d *Decoder) DecodeMorphColorStop(buf []byte, withAlpha bool) (MorphColorStop, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (MorphColorStop, error) {
		return decodeMorphColorStop(dec, withAlpha)
	})
}

// DecodeClipActionsString decodes the clip action list of a PlaceObject
// record including its header and zero terminator.
func (d *Decoder) DecodeClipActionsString(buf []byte, extendedEvents bool) ([]ClipAction, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) ([]ClipAction, error) {
		return d.DecodeClipActionsStringFrom(dec, extendedEvents)
	})
}

// DecodeClipAction decodes one clip action record including its event flags.
func (d *Decoder) DecodeClipAction(buf []byte, extendedEvents bool) (*ClipAction, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (*ClipAction, error) {
		return d.DecodeClipActionFrom(dec, extendedEvents)
	})
}

// DecodeClipEventFlags decodes a 2 or 4 byte clip event flags word.
func (d *Decoder) DecodeClipEventFlags(buf []byte, extendedEvents bool) (ClipEventFlags, int, error) {
	return runBuffer(buf, func(dec swfutils.Decoder) (ClipEventFlags, error) {
		return decodeClipEventFlags(dec, extendedEvents)
	})
}

// DecodeBlendMode decodes a one byte blend mode.
func (d *Decoder) DecodeBlendMode(buf []byte) (BlendMode, int, error) {
	return runBuffer(buf, d.DecodeBlendModeFrom)
}
