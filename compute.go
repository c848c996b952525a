// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Uniform polling interfaces. Schedulers hold heterogeneous instances behind
// these and advance them in any order; because every poll is one bounded
// step that leaves state self-consistent, no instance's correctness depends
// on poll ordering or inter-poll delay.

// Computable is implemented by values that advance a single-result
// computation one poll at a time. TryCompute follows the outcome vocabulary
// of [Computation.TryCompute].
type Computable[T any] interface {
	TryCompute() (T, error)
}

// Generatable is implemented by values that advance a stream computation one
// poll at a time. TryNext follows the outcome vocabulary of
// [Generator.TryNext].
type Generatable[T any] interface {
	TryNext() (T, error)
}

// Stateful is implemented by engine instances that expose their immutable
// context and mutable state. External owners use it to score priorities,
// inspect progress, and capture state for persistence or transfer.
//
// The context must not be mutated through the returned pointer. Mutating
// state is safe only between polls, at a suspend point.
type Stateful[C, S any] interface {
	Context() *C
	State() *S
}

// Compute drives any [Computable] until a terminal outcome, absorbing
// suspensions. Equivalent to "run to completion without interleaving";
// loops forever if the computable suspends indefinitely.
func Compute[T any](c Computable[T]) (T, error) {
	for {
		v, err := c.TryCompute()
		if IsSuspended(err) {
			continue
		}
		return v, err
	}
}

// Next drives any [Generatable] until an element, cancellation, or
// exhaustion, absorbing suspensions.
func Next[T any](g Generatable[T]) (T, error) {
	for {
		v, err := g.TryNext()
		if IsSuspended(err) {
			continue
		}
		return v, err
	}
}
