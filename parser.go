// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "sync"

// Parser is a parsing action over input S with user state U, producing A
// inside the base computation M.
//
// Running a parser yields an outer M whose payload is a Consumption[M];
// the tagged inner M carries the Reply[S, U, A]. The outer effect happens
// before it is known whether input will be consumed, the inner effect after.
//
// Parsers are immutable. The same Parser may be reused inside many larger
// parsers and run concurrently from independent states.
type Parser[S, U any, M Monad[M], A any] func(State[S, U]) M

// Pure succeeds with a without consuming input.
func Pure[S, U any, M Monad[M], A any](a A) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return emit[S, U, M](false, Ok(a, s, unknownError(positionOf(s.Input))))
	}
}

// Fail fails with msg without consuming input.
func Fail[S, U any, M Monad[M], A any](msg string) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return emit[S, U, M](false, Error[S, U, A](newError(positionOf(s.Input), Info, msg)))
	}
}

// Unexpected fails without consuming input, reporting msg as unexpected.
func Unexpected[S, U any, M Monad[M], A any](msg string) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return emit[S, U, M](false, Error[S, U, A](newError(positionOf(s.Input), Unexpect, msg)))
	}
}

// Lift embeds a base computation whose payload is an A.
// The result consumes nothing. Effects of m short-circuit the parse the
// way they short-circuit M itself: Lift(Nothing()) aborts a Maybe run.
func Lift[S, U, A any, M Monad[M]](m M) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return m.Bind(func(x Erased) M {
			return emit[S, U, M](false, Ok(x.(A), s, unknownError(positionOf(s.Input))))
		})
	}
}

// Bind sequences p and f (monadic bind).
//
// The result is Consumed if either p or f's parser consumed input. When p
// consumed, the continuation runs in the inner layer: the result is already
// committed, so a later failure stays a Consumed failure that Alt will not
// recover from. When a side succeeded without consuming, its hint is merged
// into what follows.
func Bind[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], f func(A) Parser[S, U, M, B]) Parser[S, U, M, B] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			first := c.(Consumption[M])
			return first.Get().Bind(func(r Erased) M {
				reply := r.(Reply[S, U, A])
				switch {
				case first.IsEmpty() && reply.IsError():
					return emit[S, U, M](false, failed[B](reply))
				case first.IsEmpty():
					return mergeEmpty[S, U, M, B](f(reply.value)(reply.state), reply.hint)
				case reply.IsError():
					return emit[S, U, M](true, failed[B](reply))
				}
				return unit[M](Consumed(settle[S, U, M, B](f(reply.value)(reply.state), reply.hint)))
			})
		})
	}
}

// mergeEmpty merges earlier into the reply of next if next consumed nothing.
func mergeEmpty[S, U any, M Monad[M], A any](next M, earlier ParseError) M {
	return next.Bind(func(c Erased) M {
		cons := c.(Consumption[M])
		if cons.IsConsumed() {
			return unit[M](cons)
		}
		return unit[M](Empty(cons.Get().Bind(func(r Erased) M {
			return unit[M](r.(Reply[S, U, A]).mergeHint(earlier))
		})))
	})
}

// settle flattens both layers of next into a single reply computation,
// merging earlier when next consumed nothing.
func settle[S, U any, M Monad[M], A any](next M, earlier ParseError) M {
	return next.Bind(func(c Erased) M {
		cons := c.(Consumption[M])
		if cons.IsConsumed() {
			return cons.Get()
		}
		return cons.Get().Bind(func(r Erased) M {
			return unit[M](r.(Reply[S, U, A]).mergeHint(earlier))
		})
	})
}

// Map applies a pure function to the result of p.
// Equivalent to Bind(p, func(a) Pure(f(a))) without the intermediate parser.
func Map[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], f func(A) B) Parser[S, U, M, B] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			return unit[M](MapConsumption(c.(Consumption[M]), func(inner M) M {
				return inner.Bind(func(r Erased) M {
					reply := r.(Reply[S, U, A])
					if reply.IsError() {
						return unit[M](failed[B](reply))
					}
					return unit[M](Ok(f(reply.value), reply.state, reply.hint))
				})
			}))
		})
	}
}

// Then sequences p and q, keeping the result of q.
func Then[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], q Parser[S, U, M, B]) Parser[S, U, M, B] {
	return Bind(p, func(A) Parser[S, U, M, B] { return q })
}

// Skip sequences p and q, keeping the result of p.
func Skip[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], q Parser[S, U, M, B]) Parser[S, U, M, A] {
	return Bind(p, func(a A) Parser[S, U, M, A] {
		return Map(q, func(B) A { return a })
	})
}

// Lazy defers construction of a parser until its first run.
// Use it for grammar rules that refer to themselves or to rules defined later.
// Construction happens once, even under concurrent runs.
func Lazy[S, U any, M Monad[M], A any](f func() Parser[S, U, M, A]) Parser[S, U, M, A] {
	var (
		once sync.Once
		p    Parser[S, U, M, A]
	)
	return func(s State[S, U]) M {
		once.Do(func() { p = f() })
		return p(s)
	}
}

// Fix builds a recursive parser. f receives a reference to the parser being
// defined; it must not run it during construction.
//
// Example:
//
//	parens := Fix(func(self P[int]) P[int] {
//	    return Option(0, Map(Between(Char('('), Char(')'), self), func(n int) int { return n + 1 }))
//	})
func Fix[S, U any, M Monad[M], A any](f func(self Parser[S, U, M, A]) Parser[S, U, M, A]) Parser[S, U, M, A] {
	var p Parser[S, U, M, A]
	p = f(func(s State[S, U]) M { return p(s) })
	return p
}
