// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package comp provides a minimal execution model for CPU-bound algorithms
// with cooperative cancellation, explicit suspend/resume points, and safe
// interleaving of independent computations on a single goroutine.
//
// A computation is the tuple (context, state, step): an immutable context,
// a mutable state that is the sole unit of resumability, and a step that
// performs one bounded unit of progress per invocation. Callers drive the
// computation from outside — a UI event loop, a proactor, a priority
// scheduler — by polling it at suspend points, without dedicating a worker
// goroutine per computation.
//
// # Design Philosophy
//
// comp provides:
//   - A three-outcome poll vocabulary shared by all engines
//   - Step protocols that make the suspend boundary the only contract
//   - Default engines whose state is a plain, transplantable value
//
// The package contains no scheduler, thread pool, or event loop. Every poll
// is a single bounded step invocation that leaves state self-consistent, so
// an external owner may hold any collection of instances and advance them in
// any order — round-robin, priority-weighted by inspecting state, or
// event-driven — with no instance's correctness depending on poll ordering
// or inter-poll delay.
//
// # Outcome Vocabulary
//
// Every poll returns (value, nil) on completion, or one of:
//
//   - [ErrSuspended]: bounded progress was made; poll again later
//   - [ErrCancelled]: cancellation observed at a step boundary; state is
//     intact and resumption is the caller's explicit choice
//   - [ErrExhausted]: the instance already produced its final value, or the
//     stream has ended; monotonic once reported
//
// [IsSuspended], [IsCancelled] and [IsExhausted] test outcomes through
// wrapped errors. There is no further error channel: an algorithm's domain
// errors belong in its produced value type.
//
// # Step Protocols
//
// Steps receive the context read-only and the state mutably, and must leave
// the state fully applied on every return. The step author defines the
// suspend granularity; the engine never batches, times, or counts steps.
//
//   - [Stepper]: one step of a single-value computation
//   - [GenStepper]: one step of a stream computation, with a distinct
//     end-of-sequence signal
//   - [StepFunc], [GenStepFunc]: function adapters
//
// # Computations
//
// [Computation] drives a [Stepper] to one final value:
//
//   - [NewComputation]: construct from step + (context, initial state)
//   - [ComputationOf]: construct from a step function with full inference
//   - [Computation.TryCompute]: exactly one step invocation, the atomic
//     suspend-safe unit for external schedulers
//   - [Computation.Compute]: drive to a terminal outcome, absorbing
//     suspensions
//   - [Run]: construct and compute in one call
//
// # Generators
//
// [Generator] drives a [GenStepper] to a sequence of values:
//
//   - [NewGenerator]: construct from step + (context, initial state)
//   - [GeneratorOf]: construct from a step function with full inference
//   - [Generator.TryNext]: one step invocation; element, suspension,
//     cancellation, or exhaustion
//   - [Generator.Next]: next element, absorbing suspensions
//   - [Generator.All]: range-over-func iteration over remaining elements
//   - [Generator.Collector]: collect the remainder as a computation
//
// # Uniform Interfaces
//
// Schedulers treat heterogeneous instances uniformly through:
//
//   - [Computable], [Generatable]: the poll interfaces
//   - [Stateful]: context/state access for priority scoring and persistence
//   - [Compute], [Next]: suspension-absorbing drivers for any implementation
//
// Wrappers composing on those interfaces:
//
//   - [Collector]: gather a [Generatable] into a slice, one element per poll
//   - [Memo]: cache a final value for repeated access
//   - [Identity]: lift an already-computed value into [Computable]
//
// # Cancellation
//
// Cancellation is cooperative and value-shaped — observed by explicit check
// at step boundaries, never by unwinding, never preemptively:
//
//   - [Canceller]: the externally-owned signal, cheap to poll
//   - [Token]: atomic flag, settable and clearable from any goroutine
//   - [Canceled]: adapt a [context.Context]
//
// Engines poll their [Canceller] before each step invocation; a cancelled
// poll mutates nothing, so progress already committed to state is never
// rolled back or recomputed. Clearing the signal and polling again resumes
// exactly where the computation paused.
//
// # Snapshots
//
// Context plus state is always sufficient to resume. [Snapshot] captures
// both as a plain value; [ResumeComputation] and [ResumeGenerator] rebuild
// an engine behaviorally indistinguishable from one paused in place. The
// package mandates no codec — a Snapshot is ordinary data.
//
// # Interleaving
//
// Interleaving many computations needs nothing beyond the poll primitives:
//
//	a := comp.NewComputation(stepA, ctxA, 0)
//	b := comp.NewGenerator(stepB, ctxB, 0)
//	for !aDone || !bDone {
//		if !aDone {
//			if v, err := a.TryCompute(); err == nil {
//				useA(v)
//				aDone = true
//			} else if !comp.IsSuspended(err) {
//				aDone = true // cancelled: retire or resume later
//			}
//		}
//		if !bDone {
//			if v, err := b.TryNext(); err == nil {
//				useB(v)
//			} else if comp.IsExhausted(err) {
//				bDone = true
//			}
//		}
//	}
//
// Each instance is advanced by exactly one goroutine at a time; instances
// may be distributed across goroutines by an external pool, and a context
// value may be shared read-only by many instances.
package comp
