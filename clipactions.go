// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"github.com/pk910/swf-display/swfutils"
)

// ClipAction binds an action bytecode blob to a set of clip events.
type ClipAction struct {
	Events ClipEventFlags
	// KeyCode is set iff Events.KeyPress is set.
	KeyCode *uint8
	// Actions is the undecoded action bytecode.
	Actions []byte
}

// DecodeClipActionsStringFrom decodes the reserved field, the all-events
// summary and the zero terminated list of clip action records.
func (d *Decoder) DecodeClipActionsStringFrom(dec swfutils.Decoder, extendedEvents bool) ([]ClipAction, error) {
	start := dec.GetPosition()

	// reserved
	if err := dec.SkipBytes(2); err != nil {
		return nil, err
	}
	// all events summary, not needed to decode the records
	summaryWidth := 2
	if extendedEvents {
		summaryWidth = 4
	}
	if err := dec.SkipBytes(summaryWidth); err != nil {
		return nil, err
	}

	actions := []ClipAction{}
	for {
		word, err := decodeClipEventWord(dec, extendedEvents)
		if err != nil {
			return nil, err
		}
		if word == 0 {
			break
		}

		if err := d.checkLimit("max_clip_actions", d.limits.MaxClipActions, uint64(len(actions)+1)); err != nil {
			return nil, err
		}

		action, err := d.decodeClipActionBody(dec, ClipEventFlagsFromBits(word))
		if err != nil {
			return nil, err
		}
		actions = append(actions, *action)
	}

	d.trace("clip_actions", start, dec)
	return actions, nil
}

// DecodeClipActionFrom decodes one clip action record including its event flags.
func (d *Decoder) DecodeClipActionFrom(dec swfutils.Decoder, extendedEvents bool) (*ClipAction, error) {
	events, err := decodeClipEventFlags(dec, extendedEvents)
	if err != nil {
		return nil, err
	}
	return d.decodeClipActionBody(dec, events)
}

// decodeClipActionBody decodes the record fields following the event flags.
func (d *Decoder) decodeClipActionBody(dec swfutils.Decoder, events ClipEventFlags) (*ClipAction, error) {
	actionsSize, err := dec.DecodeUint32()
	if err != nil {
		return nil, err
	}

	var keyCode *uint8
	if events.KeyPress {
		code, err := dec.DecodeUint8()
		if err != nil {
			return nil, err
		}
		keyCode = &code
		// the size covers the key code byte
		if actionsSize > 0 {
			actionsSize--
		}
	}

	if err := d.checkLimit("max_actions_size", d.limits.MaxActionsSize, uint64(actionsSize)); err != nil {
		return nil, err
	}
	if uint64(actionsSize) > uint64(dec.GetLength()) {
		return nil, ErrIncomplete
	}

	raw, err := dec.DecodeBytesBuf(int(actionsSize))
	if err != nil {
		return nil, err
	}
	// do not alias the caller's buffer
	blob := make([]byte, len(raw))
	copy(blob, raw)

	return &ClipAction{
		Events:  events,
		KeyCode: keyCode,
		Actions: blob,
	}, nil
}
