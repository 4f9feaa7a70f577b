// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Identity is the trivial base computation: a plain value.
// Identity[Erased] is the default for parsers that need no effects.
type Identity[A any] struct {
	value A
}

// Get returns the wrapped value.
func (m Identity[A]) Get() A {
	return m.value
}

// Return implements Monad.
func (Identity[A]) Return(a A) Identity[A] {
	return Identity[A]{value: a}
}

// Bind implements Monad.
func (m Identity[A]) Bind(f func(A) Identity[A]) Identity[A] {
	return f(m.value)
}

// Loop implements Looper.
func (Identity[A]) Loop(x Erased, step func(Erased) Identity[A]) Identity[A] {
	for {
		it := any(step(x).value).(Iteration)
		if it.Done {
			return Identity[A]{value: cast[A](it.Value)}
		}
		x = it.Value
	}
}
