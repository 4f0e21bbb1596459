// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"fmt"

	"go.uber.org/zap"
)

// UnknownValuePolicy controls what happens with discriminants outside the
// mapping tables.
type UnknownValuePolicy uint8

const (
	// PolicyReject fails with a *DiscriminantError.
	PolicyReject UnknownValuePolicy = iota
	// PolicyPermissive maps unknown blend modes to Normal, spread id 3 to Pad
	// and color space ids 2 and 3 to SRgb. Unknown filter kinds are still
	// rejected because their payload length cannot be known.
	PolicyPermissive
)

func (p UnknownValuePolicy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyPermissive:
		return "permissive"
	default:
		return fmt.Sprintf("UnknownValuePolicy(%d)", uint8(p))
	}
}

// ParseUnknownValuePolicy parses the names returned by String.
func ParseUnknownValuePolicy(name string) (UnknownValuePolicy, error) {
	switch name {
	case "", "reject":
		return PolicyReject, nil
	case "permissive":
		return PolicyPermissive, nil
	default:
		return PolicyReject, fmt.Errorf("unknown value policy %q", name)
	}
}

// Limits bounds declared sizes before any allocation. Each entry is an
// expression over the decoder spec values, empty means unlimited.
type Limits struct {
	MaxActionsSize string `yaml:"max_actions_size"`
	MaxClipActions string `yaml:"max_clip_actions"`
	MaxFilters     string `yaml:"max_filters"`
}

type DecoderOption func(*DecoderOptions)

type DecoderOptions struct {
	Policy  UnknownValuePolicy
	Limits  Limits
	Verbose bool
	Logger  *zap.Logger
}

func WithPolicy(policy UnknownValuePolicy) DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Policy = policy
	}
}

func WithLimits(limits Limits) DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Limits = limits
	}
}

func WithVerbose() DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Verbose = true
	}
}

func WithLogger(logger *zap.Logger) DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Logger = logger
	}
}
