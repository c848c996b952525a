// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Computation drives a [Stepper] to one final value.
//
// An instance owns the tuple (context, state, step). The context is set once
// at construction and never mutated; the state is mutated in place by each
// poll and is always a valid resume point between polls. The engine adds
// nothing to the step's logic — its value is making the suspend boundary
// explicit so external code can interleave polls with other work.
//
// A Computation is not safe for concurrent use; exactly one goroutine may
// advance it at a time.
type Computation[C, S, T any, STEP Stepper[C, S, T]] struct {
	context C
	state   S
	step    STEP
	cancel  Canceller
	done    bool
}

// NewComputation creates a computation from a step implementation and an
// explicit (context, initial state) pair. There is no hidden default state.
func NewComputation[C, S, T any, STEP Stepper[C, S, T]](step STEP, context C, initial S) *Computation[C, S, T, STEP] {
	return &Computation[C, S, T, STEP]{
		context: context,
		state:   initial,
		step:    step,
		cancel:  never{},
	}
}

// WithCanceller installs the cancellation signal polled before each step
// invocation. Returns the receiver.
func (c *Computation[C, S, T, STEP]) WithCanceller(cancel Canceller) *Computation[C, S, T, STEP] {
	c.cancel = cancel
	return c
}

// TryCompute invokes the step exactly once against the current state and
// returns its outcome unchanged. This is the atomic suspend-safe unit
// exposed to an external scheduler; no looping happens inside.
//
// Once the final value has been produced the instance is exhausted and
// every further call returns [ErrExhausted]. A cancelled poll mutates
// nothing; calling TryCompute again re-evaluates the cancellation signal
// and proceeds if it has been cleared.
func (c *Computation[C, S, T, STEP]) TryCompute() (T, error) {
	var zero T
	if c.done {
		return zero, ErrExhausted
	}
	if c.cancel.Cancelled() {
		return zero, ErrCancelled
	}
	v, err := c.step.Step(&c.context, &c.state)
	if err != nil {
		return zero, err
	}
	c.done = true
	return v, nil
}

// Compute drives the computation to a terminal outcome, absorbing
// suspensions. Loops forever if the step suspends indefinitely.
func (c *Computation[C, S, T, STEP]) Compute() (T, error) {
	return Compute[T](c)
}

// Context returns the immutable context. Callers must not mutate it.
func (c *Computation[C, S, T, STEP]) Context() *C { return &c.context }

// State returns the mutable working state. Mutating it is safe only
// between polls; a consistent state is required for correct resumption.
func (c *Computation[C, S, T, STEP]) State() *S { return &c.state }

// SetState replaces the working state, e.g. with one restored from a
// previously captured suspend point.
func (c *Computation[C, S, T, STEP]) SetState(state S) { c.state = state }

// Parts returns copies of the context and state.
func (c *Computation[C, S, T, STEP]) Parts() (C, S) { return c.context, c.state }

// ComputationOf creates a computation from a step function. Unlike
// [NewComputation], all type parameters are inferred from the arguments.
func ComputationOf[C, S, T any](step StepFunc[C, S, T], context C, initial S) *Computation[C, S, T, StepFunc[C, S, T]] {
	return NewComputation(step, context, initial)
}

// Run constructs a computation and immediately drives it to a terminal
// outcome, skipping over all suspensions.
func Run[C, S, T any, STEP Stepper[C, S, T]](step STEP, context C, initial S) (T, error) {
	return NewComputation(step, context, initial).Compute()
}
