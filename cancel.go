// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"context"
	"sync/atomic"
)

// Cooperative cancellation. A Canceller is an externally-owned signal that
// engines poll at step boundaries; signalling is safe from any goroutine,
// but its effect is only observed at the next poll. There is no preemption.

// Canceller reports whether cancellation has been requested.
// Implementations must be cheap to poll and safe to query from the
// goroutine driving the engine.
type Canceller interface {
	Cancelled() bool
}

// Token is a settable, clearable cancellation flag.
// The zero value is an uncancelled token ready for use.
// Cancel and Clear may be called from any goroutine.
type Token struct {
	flag atomic.Bool
}

// Cancel requests cancellation. Engines sharing this token report
// [ErrCancelled] on their next poll.
func (t *Token) Cancel() { t.flag.Store(true) }

// Clear withdraws a cancellation request. A subsequent poll on an engine
// holding this token proceeds as if cancellation had never been signalled;
// progress already committed to state is never recomputed.
func (t *Token) Clear() { t.flag.Store(false) }

// Cancelled implements [Canceller].
func (t *Token) Cancelled() bool { return t.flag.Load() }

// Canceled adapts a [context.Context] to the [Canceller] interface, so a
// context's cancellation propagates to engines at their step boundaries.
func Canceled(ctx context.Context) Canceller { return contextCanceller{ctx} }

type contextCanceller struct{ ctx context.Context }

func (c contextCanceller) Cancelled() bool { return c.ctx.Err() != nil }

// never is the default Canceller of an engine with no token installed.
type never struct{}

func (never) Cancelled() bool { return false }
