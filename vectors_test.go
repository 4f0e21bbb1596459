// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testVector struct {
	Name           string `yaml:"name"`
	Record         string `yaml:"record"`
	WithAlpha      bool   `yaml:"with_alpha"`
	ExtendedEvents bool   `yaml:"extended_events"`
	Hex            string `yaml:"hex"`
	Consumed       int    `yaml:"consumed"`
	Kind           string `yaml:"kind"`
	Count          int    `yaml:"count"`
}

func (v *testVector) payload(t *testing.T) []byte {
	raw, err := hex.DecodeString(strings.ReplaceAll(v.Hex, " ", ""))
	require.NoError(t, err, "vector %q", v.Name)
	return raw
}

// decode runs the vector's record decoder and returns a kind or element
// count describing the result.
func (v *testVector) decode(dec *Decoder, raw []byte) (string, int, int, error) {
	switch v.Record {
	case "filter":
		filter, n, err := dec.DecodeFilter(raw)
		if err != nil {
			return "", 0, 0, err
		}
		return filter.Kind().String(), 0, n, nil
	case "filter_list":
		filters, n, err := dec.DecodeFilterList(raw)
		return "", len(filters), n, err
	case "gradient":
		gradient, n, err := dec.DecodeGradient(raw, v.WithAlpha)
		if err != nil {
			return "", 0, 0, err
		}
		return "", len(gradient.Colors), n, nil
	case "morph_gradient":
		gradient, n, err := dec.DecodeMorphGradient(raw, v.WithAlpha)
		if err != nil {
			return "", 0, 0, err
		}
		return "", len(gradient.Colors), n, nil
	case "clip_actions":
		actions, n, err := dec.DecodeClipActionsString(raw, v.ExtendedEvents)
		return "", len(actions), n, err
	case "blend_mode":
		mode, n, err := dec.DecodeBlendMode(raw)
		return mode.String(), 0, n, err
	}
	panic("unknown record type " + v.Record)
}

func loadTestVectors(t *testing.T) []testVector {
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	vectors := []testVector{}
	require.NoError(t, yaml.Unmarshal(data, &vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

func TestGoldenVectors(t *testing.T) {
	dec := NewDecoder(nil)

	for _, vector := range loadTestVectors(t) {
		t.Run(vector.Name, func(t *testing.T) {
			raw := vector.payload(t)
			// trailing byte must be left alone
			withTrailer := append(append([]byte{}, raw...), 0x5a)

			kind, count, n, err := vector.decode(dec, withTrailer)
			require.NoError(t, err)
			assert.Equal(t, vector.Consumed, n)
			assert.Equal(t, len(raw), n)
			if vector.Kind != "" {
				assert.Equal(t, vector.Kind, kind)
			}
			if vector.Count != 0 {
				assert.Equal(t, vector.Count, count)
			}
		})
	}
}

func TestGoldenVectorsTruncated(t *testing.T) {
	dec := NewDecoder(nil)

	for _, vector := range loadTestVectors(t) {
		t.Run(vector.Name, func(t *testing.T) {
			raw := vector.payload(t)
			for cut := 0; cut < len(raw); cut++ {
				_, _, n, err := vector.decode(dec, raw[:cut])
				require.True(t, IsIncomplete(err), "cut at %d: %v", cut, err)
				assert.Zero(t, n)
			}
		})
	}
}
