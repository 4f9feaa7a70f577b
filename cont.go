// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Cont[R, Erased] is a base computation whose
// sequencing is delegated to the continuation: the engine imposes no ordering
// of its own, so a host can suspend, resume or abandon a parse from inside k.
type Cont[R, A any] func(k func(A) R) R

// Return implements Monad.
// The resulting computation immediately passes the value to its continuation.
func (Cont[R, A]) Return(a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Bind implements Monad.
// It runs m, then passes the result to f to get the next computation.
func (m Cont[R, A]) Bind(f func(A) Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Escape creates a computation that discards its continuation and finishes
// with r. Lifted into a parser, it abandons the rest of the parse.
func Escape[R, A any](r R) Cont[R, A] {
	return func(func(A) R) R {
		return r
	}
}

// Loop implements Looper as a trampoline. Each round is run with a
// continuation that records the next seed and unwinds, so the stack does not
// grow with the number of rounds. A round's continuation is one-shot: calling
// it twice panics. A round that resumes after it has already returned, as a
// host that suspended the parse would, continues the loop from that call.
// A round that never calls its continuation ends the loop with its result.
func (Cont[R, A]) Loop(x Erased, step func(Erased) Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		for {
			var next Erased
			pending, active, used := false, true, false
			r := step(x)(func(a A) R {
				if used {
					panic("parsec: loop continuation resumed twice")
				}
				used = true
				it := any(a).(Iteration)
				if it.Done {
					return k(cast[A](it.Value))
				}
				if !active {
					return Cont[R, A](nil).Loop(it.Value, step)(k)
				}
				next, pending = it.Value, true
				var zero R
				return zero
			})
			active = false
			if !pending {
				return r
			}
			x = next
		}
	}
}

// identity is the identity continuation for RunCont.
func identity[A any](a A) A { return a }
