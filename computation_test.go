// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/comp"
)

func TestComputationCountingScenario(t *testing.T) {
	// Counting to 5 from 0: four suspensions, then the final value.
	c := comp.NewComputation[int, int, int](countStep{}, 5, 0)
	for i := 1; i <= 4; i++ {
		_, err := c.TryCompute()
		if !comp.IsSuspended(err) {
			t.Fatalf("poll %d: got %v, want ErrSuspended", i, err)
		}
		if *c.State() != i {
			t.Fatalf("poll %d: state = %d, want %d", i, *c.State(), i)
		}
	}
	v, err := c.TryCompute()
	if err != nil {
		t.Fatalf("final poll: unexpected %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestComputationExhaustedAfterDone(t *testing.T) {
	c := comp.NewComputation[int, int, int](countStep{}, 1, 0)
	if _, err := c.TryCompute(); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	for range 3 {
		_, err := c.TryCompute()
		if !comp.IsExhausted(err) {
			t.Fatalf("got %v, want ErrExhausted", err)
		}
	}
}

func TestComputationCompute(t *testing.T) {
	c := comp.NewComputation[[]int, int, int](sumStep{}, []int{1, 2, 3, 4, 5}, 0)
	v, err := c.Compute()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if v != 15 {
		t.Fatalf("got %d, want 15", v)
	}
}

func TestComputationAccessors(t *testing.T) {
	c := comp.NewComputation[int, int, int](countStep{}, 42, 7)
	if *c.Context() != 42 {
		t.Fatalf("context = %d, want 42", *c.Context())
	}
	if *c.State() != 7 {
		t.Fatalf("state = %d, want 7", *c.State())
	}
	c.SetState(10)
	if *c.State() != 10 {
		t.Fatalf("state = %d, want 10 after SetState", *c.State())
	}
	ctx, state := c.Parts()
	if ctx != 42 || state != 10 {
		t.Fatalf("parts = (%d, %d), want (42, 10)", ctx, state)
	}
}

func TestRun(t *testing.T) {
	v, err := comp.Run[int, int, int](countStep{}, 3, 0)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
}

func TestComputationOf(t *testing.T) {
	c := comp.ComputationOf(func(target *int, n *int) (int, error) {
		*n++
		if *n < *target {
			return 0, comp.ErrSuspended
		}
		return *n, nil
	}, 4, 0)
	v, err := c.Compute()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
}

func TestComputationCancelDoesNotAdvanceState(t *testing.T) {
	var tok comp.Token
	c := comp.NewComputation[int, int, int](countStep{}, 5, 0).WithCanceller(&tok)

	if _, err := c.TryCompute(); !comp.IsSuspended(err) {
		t.Fatalf("got %v, want ErrSuspended", err)
	}
	tok.Cancel()
	for range 3 {
		if _, err := c.TryCompute(); !comp.IsCancelled(err) {
			t.Fatalf("got %v, want ErrCancelled", err)
		}
		if *c.State() != 1 {
			t.Fatalf("state = %d, want 1 after cancelled poll", *c.State())
		}
	}
}

func TestComputationResumeAfterClear(t *testing.T) {
	var tok comp.Token
	c := comp.NewComputation[int, int, int](countStep{}, 5, 0).WithCanceller(&tok)

	_, _ = c.TryCompute()
	_, _ = c.TryCompute()
	tok.Cancel()
	if _, err := c.TryCompute(); !comp.IsCancelled(err) {
		t.Fatal("expected ErrCancelled")
	}
	tok.Clear()
	v, err := c.Compute()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	// Progress committed before the cancellation is never recomputed.
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestComputationComputeReportsCancellation(t *testing.T) {
	var tok comp.Token
	tok.Cancel()
	c := comp.NewComputation[int, int, int](countStep{}, 5, 0).WithCanceller(&tok)
	_, err := c.Compute()
	if !comp.IsCancelled(err) {
		t.Fatalf("got %v, want ErrCancelled", err)
	}
}

func TestComputationContextCanceller(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := comp.NewComputation[int, int, int](countStep{}, 5, 0).
		WithCanceller(comp.Canceled(ctx))

	if _, err := c.TryCompute(); !comp.IsSuspended(err) {
		t.Fatalf("got %v, want ErrSuspended", err)
	}
	cancel()
	if _, err := c.TryCompute(); !comp.IsCancelled(err) {
		t.Fatalf("got %v, want ErrCancelled", err)
	}
}

func TestComputationStepErrorPassesThrough(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	c := comp.ComputationOf(func(_ *struct{}, _ *struct{}) (int, error) {
		calls++
		if calls == 1 {
			return 0, errBoom
		}
		return 42, nil
	}, struct{}{}, struct{}{})

	if _, err := c.TryCompute(); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want boom", err)
	}
	// A non-taxonomy error is terminal for the call only; the instance
	// stays pollable.
	v, err := c.TryCompute()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestComputationImmediateCompletion(t *testing.T) {
	c := comp.ComputationOf(func(_ *struct{}, _ *struct{}) (int, error) {
		return 42, nil
	}, struct{}{}, struct{}{})
	v, err := c.TryCompute()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if _, err := c.TryCompute(); !comp.IsExhausted(err) {
		t.Fatalf("got %v, want ErrExhausted", err)
	}
}
