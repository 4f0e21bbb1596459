// swfdisplay: SWF display record decoding for filters, gradients and clip actions.
// This file is part of the swfdisplay package.
// Copyright (c) 2025 by pk910. Refer to LICENSE for more information.

package swfdisplay

import (
	"fmt"
	"math"

	"github.com/casbin/govaluate"
)

type cachedSpecValue struct {
	value uint64
	err   error
}

// getSpecValue evaluates a limit expression against the spec values.
func (d *Decoder) getSpecValue(expr string) (uint64, error) {
	d.specValueMutex.Lock()
	defer d.specValueMutex.Unlock()

	if cachedValue := d.specValueCache[expr]; cachedValue != nil {
		return cachedValue.value, cachedValue.err
	}

	cachedValue := &cachedSpecValue{}
	d.specValueCache[expr] = cachedValue

	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		cachedValue.err = fmt.Errorf("%w %q: %v", ErrInvalidExpression, expr, err)
		return 0, cachedValue.err
	}

	result, err := expression.Evaluate(d.specValues)
	if err != nil {
		cachedValue.err = fmt.Errorf("%w %q: %v", ErrInvalidExpression, expr, err)
		return 0, cachedValue.err
	}

	value, ok := result.(float64)
	if !ok || value < 0 || math.IsNaN(value) {
		cachedValue.err = fmt.Errorf("%w %q: result %v is not a non-negative number", ErrInvalidExpression, expr, result)
		return 0, cachedValue.err
	}

	// limits are inclusive, round fractional results down
	cachedValue.value = uint64(math.Floor(value))
	return cachedValue.value, nil
}

// checkLimit fails with a *LimitError when declared is above the limit
// described by expr. An empty expression never fails.
func (d *Decoder) checkLimit(name string, expr string, declared uint64) error {
	if expr == "" {
		return nil
	}
	limit, err := d.getSpecValue(expr)
	if err != nil {
		return err
	}
	if declared > limit {
		return &LimitError{Limit: name, Declared: declared, Max: limit}
	}
	return nil
}
