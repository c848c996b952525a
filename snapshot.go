// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Snapshot captures the resumable half of an engine instance at a suspend
// point. Context plus state is always sufficient to resume: a Snapshot is a
// plain value with no reference to engine machinery, so it can be encoded
// with any codec, moved across processes, and turned back into an engine
// whose behavior is indistinguishable from one that was paused in place.
//
// Take snapshots between polls only; a snapshot of an exhausted instance
// resumes as if the final step had not yet run.
type Snapshot[C, S any] struct {
	Context C
	State   S
}

// Snapshot captures the computation's context and current state.
func (c *Computation[C, S, T, STEP]) Snapshot() Snapshot[C, S] {
	return Snapshot[C, S]{Context: c.context, State: c.state}
}

// Snapshot captures the generator's context and current state.
func (g *Generator[C, S, T, STEP]) Snapshot() Snapshot[C, S] {
	return Snapshot[C, S]{Context: g.context, State: g.state}
}

// ResumeComputation reconstructs a computation from a previously captured
// snapshot.
func ResumeComputation[C, S, T any, STEP Stepper[C, S, T]](step STEP, snap Snapshot[C, S]) *Computation[C, S, T, STEP] {
	return NewComputation(step, snap.Context, snap.State)
}

// ResumeGenerator reconstructs a generator from a previously captured
// snapshot.
func ResumeGenerator[C, S, T any, STEP GenStepper[C, S, T]](step STEP, snap Snapshot[C, S]) *Generator[C, S, T, STEP] {
	return NewGenerator(step, snap.Context, snap.State)
}
