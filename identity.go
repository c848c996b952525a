// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Identity is a trivial [Computable] that immediately yields a pre-computed
// value. It wraps an already-available value in the polling interface so it
// can be scheduled next to real computations. After the value has been
// returned once, further polls report [ErrExhausted].
type Identity[T any] struct {
	value T
	used  bool
}

// Precomputed creates an [Identity] holding the given value.
func Precomputed[T any](value T) *Identity[T] {
	return &Identity[T]{value: value}
}

// TryCompute implements [Computable].
func (i *Identity[T]) TryCompute() (T, error) {
	if i.used {
		var zero T
		return zero, ErrExhausted
	}
	i.used = true
	return i.value, nil
}
