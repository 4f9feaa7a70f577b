// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "github.com/pkg/errors"

// ErrEmptyLoop is the panic value (wrapped with a stack trace) raised when a
// repetition combinator is applied to a parser that succeeds without
// consuming input. Such a loop would never terminate; the condition is a
// programming error in the grammar, not a parse failure.
var ErrEmptyLoop = errors.New("parsec: many is applied to a parser that accepts an empty input")

//go:noinline
func emptyLoop() {
	panic(errors.WithStack(ErrEmptyLoop))
}

// list is a persistent stack of results. Repetition pushes onto it without
// sharing mutable backing arrays between branches of a computation that may
// resume more than once (see Cont).
type list[A any] struct {
	head A
	tail *list[A]
	n    int
}

func (l *list[A]) push(a A) *list[A] {
	return &list[A]{head: a, tail: l, n: l.len() + 1}
}

func (l *list[A]) len() int {
	if l == nil {
		return 0
	}
	return l.n
}

func (l *list[A]) slice() []A {
	out := make([]A, l.len())
	for i, c := len(out)-1, l; c != nil; i, c = i-1, c.tail {
		out[i] = c.head
	}
	return out
}

// repeat sets how a repetition treats the reply of each round.
type repeat struct {
	limit    int  // rounds to collect; 0 runs until a round stops or fails
	lenient  bool // an Empty failure ends the repetition with the results so far
	progress bool // a round that collects a value must consume input
}

// item is what one round yields: a value to collect, or the signal to stop.
type item[A any] struct {
	value A
	stop  bool
}

func collect[A any](a A) item[A] { return item[A]{value: a} }

// sweep is the loop state carried from round to round.
type sweep[S, U, A any] struct {
	acc   *list[A]
	state State[S, U]
	hint  ParseError
	n     int
}

// advance folds the reply of one round into st. It returns the final reply
// and true when the repetition is over.
func advance[S, U, A any](rule repeat, st sweep[S, U, A], reply Reply[S, U, item[A]], consumed bool) (sweep[S, U, A], Reply[S, U, []A], bool) {
	switch {
	case reply.IsError() && rule.lenient && !consumed:
		return st, Ok(st.acc.slice(), st.state, reply.hint), true
	case reply.IsError() && consumed:
		return st, failed[[]A](reply), true
	case reply.IsError():
		return st, failed[[]A](reply.mergeHint(st.hint)), true
	}
	hint := reply.hint
	if !consumed {
		hint = MergeError(st.hint, hint)
	}
	if reply.value.stop {
		return st, Ok(st.acc.slice(), reply.state, hint), true
	}
	if rule.progress && !consumed {
		emptyLoop()
	}
	st = sweep[S, U, A]{acc: st.acc.push(reply.value.value), state: reply.state, hint: hint, n: st.n + 1}
	if st.n == rule.limit {
		return st, Ok(st.acc.slice(), st.state, st.hint), true
	}
	return st, Reply[S, U, []A]{}, false
}

// repeated runs p round after round under rule, in constant stack space when
// M implements Looper. Rounds that consume nothing run in the outer layer;
// the first round that consumes input commits the repetition, and the rest
// runs in the inner layer.
func repeated[S, U any, M Monad[M], A any](rule repeat, p Parser[S, U, M, item[A]]) Parser[S, U, M, []A] {
	return func(s State[S, U]) M {
		start := sweep[S, U, A]{state: s, hint: unknownError(positionOf(s.Input))}
		return iterate(start, func(x Erased) M {
			st := x.(sweep[S, U, A])
			return p(st.state).Bind(func(c Erased) M {
				cons := c.(Consumption[M])
				if cons.IsConsumed() {
					return unit[M](Break(Consumed(cons.Get().Bind(func(r Erased) M {
						return committed(rule, p, st, r.(Reply[S, U, item[A]]))
					}))))
				}
				return cons.Get().Bind(func(r Erased) M {
					next, final, done := advance(rule, st, r.(Reply[S, U, item[A]]), false)
					if done {
						return unit[M](Break(Empty(unit[M](final))))
					}
					return unit[M](Continue(next))
				})
			})
		})
	}
}

// committed continues a repetition whose round just consumed input and
// returns the inner reply computation.
func committed[S, U any, M Monad[M], A any](rule repeat, p Parser[S, U, M, item[A]], st sweep[S, U, A], reply Reply[S, U, item[A]]) M {
	st, final, done := advance(rule, st, reply, true)
	if done {
		return unit[M](final)
	}
	return iterate(st, func(x Erased) M {
		st := x.(sweep[S, U, A])
		return p(st.state).Bind(func(c Erased) M {
			cons := c.(Consumption[M])
			return cons.Get().Bind(func(r Erased) M {
				next, final, done := advance(rule, st, r.(Reply[S, U, item[A]]), cons.IsConsumed())
				if done {
					return unit[M](Break(final))
				}
				return unit[M](Continue(next))
			})
		})
	})
}

// Many applies p zero or more times and collects the results in order.
//
// Repetition stops at the first failure of p that consumed nothing; a
// failure after consuming input is returned as is. Many panics with
// ErrEmptyLoop if p succeeds without consuming input.
func Many[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, []A] {
	return repeated(repeat{lenient: true, progress: true}, Map(p, collect[A]))
}

// Some applies p one or more times.
func Some[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, []A] {
	return Bind(p, func(a A) Parser[S, U, M, []A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{a}, rest...)
		})
	})
}

// SkipMany applies p zero or more times, discarding the results.
func SkipMany[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, None] {
	return Map(Many(p), func([]A) None { return None{} })
}

// SepBy parses zero or more occurrences of p separated by sep.
func SepBy[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], sep Parser[S, U, M, B]) Parser[S, U, M, []A] {
	return Alt(SepBy1(p, sep), Pure[S, U, M]([]A{}))
}

// SepBy1 parses one or more occurrences of p separated by sep.
func SepBy1[S, U any, M Monad[M], A, B any](p Parser[S, U, M, A], sep Parser[S, U, M, B]) Parser[S, U, M, []A] {
	return Bind(p, func(a A) Parser[S, U, M, []A] {
		return Map(Many(Then(sep, p)), func(rest []A) []A {
			return append([]A{a}, rest...)
		})
	})
}

// Between parses open, then p, then closing, returning the result of p.
func Between[S, U any, M Monad[M], O, C, A any](open Parser[S, U, M, O], closing Parser[S, U, M, C], p Parser[S, U, M, A]) Parser[S, U, M, A] {
	return Then(open, Skip(p, closing))
}

// Count applies p exactly n times. With n <= 0 it succeeds with an empty slice.
func Count[S, U any, M Monad[M], A any](n int, p Parser[S, U, M, A]) Parser[S, U, M, []A] {
	if n <= 0 {
		return Pure[S, U, M]([]A{})
	}
	return repeated(repeat{limit: n}, Map(p, collect[A]))
}

// ManyTill applies p zero or more times until end succeeds, returning the
// results of p. The result of end is discarded.
//
// end is tried before each application of p; wrap it in Try if it may fail
// after consuming input. ManyTill panics with ErrEmptyLoop if p succeeds
// without consuming input.
func ManyTill[S, U any, M Monad[M], A, E any](p Parser[S, U, M, A], end Parser[S, U, M, E]) Parser[S, U, M, []A] {
	stop := Map(end, func(E) item[A] { return item[A]{stop: true} })
	return repeated(repeat{progress: true}, Alt(stop, Map(p, collect[A])))
}

// ChainL1 parses one or more occurrences of p separated by op and folds the
// results left-associatively with the functions returned by op.
// It is the usual way to parse left-associative binary operators.
func ChainL1[S, U any, M Monad[M], A any](p Parser[S, U, M, A], op Parser[S, U, M, func(A, A) A]) Parser[S, U, M, A] {
	next := Bind(op, func(f func(A, A) A) Parser[S, U, M, chainStep[A]] {
		return Map(p, func(y A) chainStep[A] { return chainStep[A]{f: f, y: y} })
	})
	return Bind(p, func(x A) Parser[S, U, M, A] {
		return Map(Many(next), func(steps []chainStep[A]) A {
			acc := x
			for _, st := range steps {
				acc = st.f(acc, st.y)
			}
			return acc
		})
	})
}

// chainStep is an operator paired with its right operand.
type chainStep[A any] struct {
	f func(A, A) A
	y A
}
