// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Maybe is an optional value: Nothing or Just(a).
//
// Maybe[Erased] is the minimal base computation. It has no side channel
// beyond presence, so parsers over it behave as ordinary pure parsers and
// a run reports only success (Just) or failure (Nothing).
type Maybe[A any] struct {
	ok    bool
	value A
}

// Nothing creates an absent value.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Just creates a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{ok: true, value: a}
}

// IsJust returns true if a value is present.
func (m Maybe[A]) IsJust() bool {
	return m.ok
}

// IsNothing returns true if no value is present.
func (m Maybe[A]) IsNothing() bool {
	return !m.ok
}

// Get returns the value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

// Return implements Monad: Return(a) = Just(a).
func (Maybe[A]) Return(a A) Maybe[A] {
	return Just(a)
}

// Bind implements Monad: Bind(Nothing, f) = Nothing, Bind(Just(a), f) = f(a).
func (m Maybe[A]) Bind(f func(A) Maybe[A]) Maybe[A] {
	if !m.ok {
		return m
	}
	return f(m.value)
}

// MatchMaybe pattern matches on the Maybe, calling onNothing or onJust.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies a function to a present value.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[B]()
}

// FlatMapMaybe sequences two Maybe computations with a change of type.
func FlatMapMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if m.ok {
		return f(m.value)
	}
	return Nothing[B]()
}

// Loop implements Looper. A round that yields Nothing ends the loop.
func (Maybe[A]) Loop(x Erased, step func(Erased) Maybe[A]) Maybe[A] {
	for {
		m := step(x)
		if !m.ok {
			return m
		}
		it := any(m.value).(Iteration)
		if it.Done {
			return Just(cast[A](it.Value))
		}
		x = it.Value
	}
}
