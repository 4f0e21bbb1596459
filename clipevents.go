// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"github.com/pk910/swf-display/swfutils"
)

// ClipEventFlags is the set of events a clip action reacts to.
type ClipEventFlags struct {
	Load           bool
	EnterFrame     bool
	Unload         bool
	MouseMove      bool
	MouseDown      bool
	MouseUp        bool
	KeyDown        bool
	KeyUp          bool
	Data           bool
	Initialize     bool
	Press          bool
	Release        bool
	ReleaseOutside bool
	RollOver       bool
	RollOut        bool
	DragOver       bool
	DragOut        bool
	KeyPress       bool
	Construct      bool
}

const clipEventCount = 19

// clipEventFields is indexed in the order of ClipEventFlags.fields.
var clipEventFields = [clipEventCount]bitField{
	flag("load", 0),
	flag("enter_frame", 1),
	flag("unload", 2),
	flag("mouse_move", 3),
	flag("mouse_down", 4),
	flag("mouse_up", 5),
	flag("key_down", 6),
	flag("key_up", 7),
	flag("data", 8),
	flag("initialize", 9),
	flag("press", 10),
	flag("release", 11),
	flag("release_outside", 12),
	flag("roll_over", 13),
	flag("roll_out", 14),
	flag("drag_over", 15),
	flag("drag_out", 16),
	flag("key_press", 17),
	flag("construct", 18),
}

func (f *ClipEventFlags) fields() [clipEventCount]*bool {
	return [clipEventCount]*bool{
		&f.Load, &f.EnterFrame, &f.Unload, &f.MouseMove, &f.MouseDown, &f.MouseUp,
		&f.KeyDown, &f.KeyUp, &f.Data, &f.Initialize, &f.Press, &f.Release,
		&f.ReleaseOutside, &f.RollOver, &f.RollOut, &f.DragOver, &f.DragOut,
		&f.KeyPress, &f.Construct,
	}
}

// ClipEventFlagsFromBits maps a widened flags word to the named events.
// Bits above 18 are ignored.
func ClipEventFlagsFromBits(word uint32) ClipEventFlags {
	var flags ClipEventFlags
	for i, ptr := range flags.fields() {
		*ptr = clipEventFields[i].isSet(word)
	}
	return flags
}

// Bits returns the flags word for the set events.
func (f ClipEventFlags) Bits() uint32 {
	var word uint32
	for i, ptr := range f.fields() {
		if *ptr {
			word |= clipEventFields[i].bits()
		}
	}
	return word
}

// decodeClipEventWord reads the 4 byte flags word, or the 2 byte form
// widened without sign extension.
func decodeClipEventWord(dec swfutils.Decoder, extendedEvents bool) (uint32, error) {
	if extendedEvents {
		return dec.DecodeUint32()
	}
	word, err := dec.DecodeUint16()
	return uint32(word), err
}

func decodeClipEventFlags(dec swfutils.Decoder, extendedEvents bool) (ClipEventFlags, error) {
	word, err := decodeClipEventWord(dec, extendedEvents)
	if err != nil {
		return ClipEventFlags{}, err
	}
	return ClipEventFlagsFromBits(word), nil
}
