// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the yaml form of the decoder settings.
//
//	policy: permissive
//	verbose: false
//	specs:
//	  MAX_ACTION_BYTES: 65536
//	limits:
//	  max_actions_size: MAX_ACTION_BYTES
//	  max_clip_actions: "64"
type Config struct {
	Policy  string         `yaml:"policy"`
	Verbose bool           `yaml:"verbose"`
	Specs   map[string]any `yaml:"specs"`
	Limits  Limits         `yaml:"limits"`
}

// ParseConfig parses a yaml document into a Config.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse decoder config: %w", err)
	}
	if _, err := ParseUnknownValuePolicy(config.Policy); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig reads and parses a yaml config.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoder config: %w", err)
	}
	return ParseConfig(data)
}

// NewDecoder builds a decoder from the config. Options are applied after the
// config values.
func (c *Config) NewDecoder(logger *zap.Logger, options ...DecoderOption) (*Decoder, error) {
	policy, err := ParseUnknownValuePolicy(c.Policy)
	if err != nil {
		return nil, err
	}

	opts := []DecoderOption{
		WithPolicy(policy),
		WithLimits(c.Limits),
		WithLogger(logger),
	}
	if c.Verbose {
		opts = append(opts, WithVerbose())
	}
	opts = append(opts, options...)

	return NewDecoder(c.Specs, opts...), nil
}
