// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Memo caches the final value of a [Computable] for repeated access.
//
// Until the underlying computable completes, TryCompute forwards its
// outcomes unchanged. Once a final value has been produced, every further
// TryCompute returns the cached value instead of [ErrExhausted].
type Memo[T any, C Computable[T]] struct {
	computable C
	result     T
	done       bool
}

// Memoize wraps a computable in a [Memo].
func Memoize[T any, C Computable[T]](computable C) *Memo[T, C] {
	return &Memo[T, C]{computable: computable}
}

// TryCompute implements [Computable].
func (m *Memo[T, C]) TryCompute() (T, error) {
	if m.done {
		return m.result, nil
	}
	v, err := m.computable.TryCompute()
	if err != nil {
		var zero T
		return zero, err
	}
	m.result = v
	m.done = true
	return v, nil
}

// Result returns the cached final value, if already available.
func (m *Memo[T, C]) Result() (T, bool) {
	return m.result, m.done
}

// Unwrap returns the underlying computable.
func (m *Memo[T, C]) Unwrap() C {
	return m.computable
}
