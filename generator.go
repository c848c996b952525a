// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "iter"

// Generator drives a [GenStepper] to a sequence of values, one element per
// successful poll.
//
// Ownership and resumption rules are those of [Computation]: the context is
// immutable, the state is the sole unit of resumability, and every poll is
// one bounded step invocation. The extra outcome relative to a computation
// is end-of-sequence, which is final for the instance and distinct from both
// suspension ("no element yet") and cancellation ("cooperative stop
// requested") — a scheduler reschedules on the former and retires on the
// latter two.
//
// A Generator is not safe for concurrent use.
type Generator[C, S, T any, STEP GenStepper[C, S, T]] struct {
	context   C
	state     S
	step      STEP
	cancel    Canceller
	exhausted bool
}

// NewGenerator creates a generator from a step implementation and an
// explicit (context, initial state) pair.
func NewGenerator[C, S, T any, STEP GenStepper[C, S, T]](step STEP, context C, initial S) *Generator[C, S, T, STEP] {
	return &Generator[C, S, T, STEP]{
		context: context,
		state:   initial,
		step:    step,
		cancel:  never{},
	}
}

// GeneratorOf creates a generator from a step function. Unlike
// [NewGenerator], all type parameters are inferred from the arguments.
func GeneratorOf[C, S, T any](step GenStepFunc[C, S, T], context C, initial S) *Generator[C, S, T, GenStepFunc[C, S, T]] {
	return NewGenerator(step, context, initial)
}

// WithCanceller installs the cancellation signal polled before each step
// invocation. Returns the receiver.
func (g *Generator[C, S, T, STEP]) WithCanceller(cancel Canceller) *Generator[C, S, T, STEP] {
	g.cancel = cancel
	return g
}

// TryNext invokes the step exactly once. It returns (element, nil) when an
// element was produced, [ErrSuspended] or [ErrCancelled] when this poll made
// no element-producing progress, and [ErrExhausted] once the step has
// signalled end-of-sequence. Exhaustion is monotonic: after the first
// [ErrExhausted], every further call returns it without invoking the step.
func (g *Generator[C, S, T, STEP]) TryNext() (T, error) {
	var zero T
	if g.exhausted {
		return zero, ErrExhausted
	}
	if g.cancel.Cancelled() {
		return zero, ErrCancelled
	}
	v, ok, err := g.step.Step(&g.context, &g.state)
	if err != nil {
		return zero, err
	}
	if !ok {
		g.exhausted = true
		return zero, ErrExhausted
	}
	return v, nil
}

// Next drives the generator until an element, cancellation, or exhaustion,
// absorbing suspensions.
func (g *Generator[C, S, T, STEP]) Next() (T, error) {
	return Next[T](g)
}

// All returns an iterator over the remaining elements, absorbing
// suspensions. Iteration stops at end-of-sequence; if cancellation is
// observed, the final pair yielded is (zero, [ErrCancelled]) and iteration
// stops with the generator still resumable.
func (g *Generator[C, S, T, STEP]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := g.TryNext()
			if IsSuspended(err) {
				continue
			}
			if IsExhausted(err) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Collector adapts the generator into a computation over all remaining
// elements; see [Collector].
func (g *Generator[C, S, T, STEP]) Collector() *Collector[T] {
	return NewCollector[T](g)
}

// Context returns the immutable context. Callers must not mutate it.
func (g *Generator[C, S, T, STEP]) Context() *C { return &g.context }

// State returns the mutable working state. Mutating it is safe only
// between polls.
func (g *Generator[C, S, T, STEP]) State() *S { return &g.state }

// SetState replaces the working state.
func (g *Generator[C, S, T, STEP]) SetState(state S) { g.state = state }

// Parts returns copies of the context and state.
func (g *Generator[C, S, T, STEP]) Parts() (C, S) { return g.context, g.state }
