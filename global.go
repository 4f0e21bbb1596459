// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import "sync"

var (
	globalDecoder      *Decoder
	globalDecoderMutex sync.Mutex
)

func GetGlobalDecoder() *Decoder {
	globalDecoderMutex.Lock()
	defer globalDecoderMutex.Unlock()

	if globalDecoder == nil {
		globalDecoder = NewDecoder(nil)
	}
	return globalDecoder
}

func SetGlobalDecoder(decoder *Decoder) {
	globalDecoderMutex.Lock()
	defer globalDecoderMutex.Unlock()

	globalDecoder = decoder
}

func SetGlobalSpecs(specs map[string]any, options ...DecoderOption) {
	SetGlobalDecoder(NewDecoder(specs, options...))
}

// DecodeFilter decodes one filter record with the global decoder.
func DecodeFilter(buf []byte) (Filter, int, error) {
	return GetGlobalDecoder().DecodeFilter(buf)
}

// DecodeFilterList decodes a count-prefixed filter list with the global decoder.
func DecodeFilterList(buf []byte) ([]Filter, int, error) {
	return GetGlobalDecoder().DecodeFilterList(buf)
}

// DecodeGradient decodes a gradient record with the global decoder.
func DecodeGradient(buf []byte, withAlpha bool) (*Gradient, int, error) {
	return GetGlobalDecoder().DecodeGradient(buf, withAlpha)
}

// DecodeMorphGradient decodes a morph gradient record with the global decoder.
func DecodeMorphGradient(buf []byte, withAlpha bool) (*MorphGradient, int, error) {
	return GetGlobalDecoder().DecodeMorphGradient(buf, withAlpha)
}

// DecodeClipActionsString decodes a clip actions list with the global decoder.
func DecodeClipActionsString(buf []byte, extendedEvents bool) ([]ClipAction, int, error) {
	return GetGlobalDecoder().DecodeClipActionsString(buf, extendedEvents)
}

// DecodeBlendMode decodes a blend mode with the global decoder.
func DecodeBlendMode(buf []byte) (BlendMode, int, error) {
	return GetGlobalDecoder().DecodeBlendMode(buf)
}
