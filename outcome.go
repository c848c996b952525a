// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "errors"

// Outcome vocabulary shared by computations and generators.
// Every poll returns (value, nil) on completion of this poll, or one of the
// sentinel errors below. There is no other outcome: an algorithm's domain
// errors are part of its produced value type, not a separate channel.

// ErrSuspended reports that a step made bounded progress and reached a
// suspend point. The state is fully applied; poll again to continue.
var ErrSuspended = errors.New("comp: suspended")

// ErrCancelled reports that a cancellation request was observed at a step
// boundary. The state reflects the last fully-applied step and remains a
// valid input to the next poll; resuming is the caller's explicit choice.
var ErrCancelled = errors.New("comp: cancelled")

// ErrExhausted reports a poll on an instance that has already produced its
// final value, or a generator whose sequence has ended. Exhaustion is
// monotonic: once reported, every further poll reports it again.
var ErrExhausted = errors.New("comp: exhausted")

// IsSuspended reports whether err is a suspension outcome.
func IsSuspended(err error) bool { return errors.Is(err, ErrSuspended) }

// IsCancelled reports whether err is a cancellation outcome.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }

// IsExhausted reports whether err is an exhaustion outcome.
func IsExhausted(err error) bool { return errors.Is(err, ErrExhausted) }
