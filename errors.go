// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"errors"
	"fmt"

	"github.com/pk910/swf-display/swfutils"
)

var (
	// ErrIncomplete reports that the input ended inside a record. It is not a
	// data error: retry from the same start offset once more bytes arrived.
	ErrIncomplete = swfutils.ErrIncomplete

	ErrUnmappedDiscriminant = fmt.Errorf("unmapped discriminant")
	ErrLimitExceeded        = fmt.Errorf("decode limit exceeded")
	ErrInvalidExpression    = fmt.Errorf("invalid limit expression")
)

// IsIncomplete reports whether err only signals missing trailing bytes.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// DiscriminantError is returned when a tag byte selects no known variant.
type DiscriminantError struct {
	Field  string // e.g. "filter kind", "blend mode"
	Value  uint8
	Offset int
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("%s: unmapped value %d at offset %d", e.Field, e.Value, e.Offset)
}

func (e *DiscriminantError) Unwrap() error {
	return ErrUnmappedDiscriminant
}

// LimitError is returned when a declared size is above a configured limit.
type LimitError struct {
	Limit    string // expression name, e.g. "max_actions_size"
	Declared uint64
	Max      uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: declared %d exceeds limit %d", e.Limit, e.Declared, e.Max)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitExceeded
}
