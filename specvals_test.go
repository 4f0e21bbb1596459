// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the swf-display library.

package swfdisplay

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpecValue(t *testing.T) {
	dec := NewDecoder(map[string]any{
		"MAX_ACTION_BYTES": uint64(1024),
		"FACTOR":           float64(1.5),
	})

	t.Run("Literal", func(t *testing.T) {
		value, err := dec.getSpecValue("64")
		require.NoError(t, err)
		assert.Equal(t, uint64(64), value)
	})

	t.Run("Expression", func(t *testing.T) {
		value, err := dec.getSpecValue("MAX_ACTION_BYTES * FACTOR")
		require.NoError(t, err)
		assert.Equal(t, uint64(1536), value)
	})

	t.Run("FractionRoundsDown", func(t *testing.T) {
		value, err := dec.getSpecValue("FACTOR")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), value)
	})

	t.Run("MissingParameter", func(t *testing.T) {
		_, err := dec.getSpecValue("UNKNOWN_VALUE")
		assert.ErrorIs(t, err, ErrInvalidExpression)
	})

	t.Run("ParseError", func(t *testing.T) {
		_, err := dec.getSpecValue("1 +* 2")
		assert.ErrorIs(t, err, ErrInvalidExpression)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := dec.getSpecValue("0 - MAX_ACTION_BYTES")
		assert.ErrorIs(t, err, ErrInvalidExpression)
	})

	t.Run("Cached", func(t *testing.T) {
		_, err := dec.getSpecValue("MAX_ACTION_BYTES")
		require.NoError(t, err)
		assert.Contains(t, dec.specValueCache, "MAX_ACTION_BYTES")
	})
}

func TestCheckLimit(t *testing.T) {
	dec := NewDecoder(map[string]any{"LIMIT": 10})

	assert.NoError(t, dec.checkLimit("test", "", 1<<40))
	assert.NoError(t, dec.checkLimit("test", "LIMIT", 10))

	err := dec.checkLimit("test", "LIMIT", 11)
	var limitErr *LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "test: declared 11 exceeds limit 10", limitErr.Error())
}

func TestDecoderConcurrentUse(t *testing.T) {
	dec := NewDecoder(map[string]any{"LIMIT": 64}, WithLimits(Limits{MaxActionsSize: "LIMIT"}))
	raw := newRecord().u16(0).u16(1).u16(1).u32(3).u8(1, 2, 3).u16(0).bytes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				actions, n, err := dec.DecodeClipActionsString(raw, false)
				assert.NoError(t, err)
				assert.Equal(t, len(raw), n)
				assert.Len(t, actions, 1)
			}
		}()
	}
	wg.Wait()
}
