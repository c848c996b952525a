// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Collector is a [Computable] that gathers every element of a [Generatable]
// into a slice.
//
// Each poll advances the source by exactly one poll: a produced element is
// appended and reported as [ErrSuspended], so a scheduler interleaving the
// collector pays the same per-poll bound as any other computation. When the
// source is exhausted, the collected slice becomes the final value.
// Cancellation propagates without discarding elements collected so far.
type Collector[T any] struct {
	source Generatable[T]
	items  []T
	done   bool
}

// NewCollector creates a collector over the given source.
func NewCollector[T any](source Generatable[T]) *Collector[T] {
	return &Collector[T]{source: source}
}

// TryCompute implements [Computable].
func (c *Collector[T]) TryCompute() ([]T, error) {
	if c.done {
		return nil, ErrExhausted
	}
	v, err := c.source.TryNext()
	switch {
	case err == nil:
		c.items = append(c.items, v)
		return nil, ErrSuspended
	case IsExhausted(err):
		c.done = true
		items := c.items
		c.items = nil
		return items, nil
	default:
		return nil, err
	}
}

// Compute drives the collector to a terminal outcome, absorbing
// suspensions.
func (c *Collector[T]) Compute() ([]T, error) {
	return Compute[[]T](c)
}
