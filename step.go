// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Step protocols. A step is one bounded unit of algorithmic progress over an
// immutable context and a mutable state. The step author, not the engine,
// chooses the granularity; the engine guarantees only that each poll invokes
// the step exactly once, so the boundary between two invocations is the sole
// place state may be observed or transplanted.
//
// Step contract:
//   - Perform bounded work; never block indefinitely.
//   - Confine side effects to state; treat context as read-only.
//   - Leave state fully applied on every return, including suspensions.
//   - Observe cancellation by returning [ErrCancelled], never by panicking.

// Stepper defines a single step of a [Computation].
//
// Step returns (value, nil) when the computation is complete,
// (zero, [ErrSuspended]) after partial progress, or (zero, [ErrCancelled])
// when a cancellation check inside the step fired.
type Stepper[C, S, T any] interface {
	Step(context *C, state *S) (T, error)
}

// StepFunc adapts an ordinary function to the [Stepper] interface.
type StepFunc[C, S, T any] func(context *C, state *S) (T, error)

// Step implements [Stepper].
func (f StepFunc[C, S, T]) Step(context *C, state *S) (T, error) {
	return f(context, state)
}

// GenStepper defines a single step of a [Generator].
//
// Step returns (value, true, nil) when an element was produced,
// (zero, false, nil) when the sequence has ended, and the suspension or
// cancellation outcomes as in [Stepper]. End-of-sequence is distinct from
// suspension: it is final for the instance.
type GenStepper[C, S, T any] interface {
	Step(context *C, state *S) (T, bool, error)
}

// GenStepFunc adapts an ordinary function to the [GenStepper] interface.
type GenStepFunc[C, S, T any] func(context *C, state *S) (T, bool, error)

// Step implements [GenStepper].
func (f GenStepFunc[C, S, T]) Step(context *C, state *S) (T, bool, error) {
	return f(context, state)
}
