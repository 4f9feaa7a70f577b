// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Either[E, Erased] is the base computation for parses that can be aborted
// with a typed error. Lifting Left(e) into a parser stops the run at once;
// the abort is not a parse failure, so neither Alt nor Try recovers it.
// A run that is not aborted yields Right(Result).
type Either[E, A any] struct {
	right bool
	err   E
	value A
}

// Left builds an aborted computation carrying e.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{err: e}
}

// Right builds a computation that produced a.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: true, value: a}
}

// IsLeft reports whether the computation was aborted.
func (e Either[E, A]) IsLeft() bool {
	return !e.right
}

// GetRight returns the produced value, if any.
func (e Either[E, A]) GetRight() (A, bool) {
	return e.value, e.right
}

// GetLeft returns the abort error, if any.
func (e Either[E, A]) GetLeft() (E, bool) {
	return e.err, !e.right
}

// Return implements Monad.
func (Either[E, A]) Return(a A) Either[E, A] {
	return Right[E](a)
}

// Bind implements Monad. Left skips f.
func (e Either[E, A]) Bind(f func(A) Either[E, A]) Either[E, A] {
	if !e.right {
		return e
	}
	return f(e.value)
}

// Loop implements Looper. A round that yields Left ends the loop.
func (Either[E, A]) Loop(x Erased, step func(Erased) Either[E, A]) Either[E, A] {
	for {
		m := step(x)
		if !m.right {
			return m
		}
		it := any(m.value).(Iteration)
		if it.Done {
			return Right[E](cast[A](it.Value))
		}
		x = it.Value
	}
}

// MapEither converts the produced value with f; Left passes through.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.right {
		return Left[E, B](e.err)
	}
	return Right[E](f(e.value))
}
