// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp_test

import (
	"code.hybscloud.com/comp"
)

// Shared step implementations for tests.

// countStep increments the state by one per poll and completes once the
// context target is reached.
type countStep struct{}

func (countStep) Step(target *int, n *int) (int, error) {
	*n++
	if *n < *target {
		return 0, comp.ErrSuspended
	}
	return *n, nil
}

// sumStep walks the context slice one index per poll, then totals it.
type sumStep struct{}

func (sumStep) Step(numbers *[]int, index *int) (int, error) {
	if *index < len(*numbers) {
		*index++
		return 0, comp.ErrSuspended
	}
	total := 0
	for _, n := range *numbers {
		total += n
	}
	return total, nil
}

// rangeStep emits successive integers up to the context bound.
type rangeStep struct{}

func (rangeStep) Step(bound *int, current *int) (int, bool, error) {
	if *current >= *bound {
		return 0, false, nil
	}
	*current++
	return *current, true, nil
}

// stutterState is the working state of a generator that suspends once
// before each element.
type stutterState struct {
	Primed bool
	N      int
}

// stutterRangeStep emits successive integers up to the context bound,
// suspending on every other poll.
type stutterRangeStep struct{}

func (stutterRangeStep) Step(bound *int, s *stutterState) (int, bool, error) {
	if s.N >= *bound {
		return 0, false, nil
	}
	if !s.Primed {
		s.Primed = true
		return 0, false, comp.ErrSuspended
	}
	s.Primed = false
	s.N++
	return s.N, true, nil
}
