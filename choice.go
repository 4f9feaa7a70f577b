// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Alt is ordered, predictive choice.
//
// q runs only if p failed without consuming input. A Consumed result of p,
// success or failure, is returned unchanged, as is an Empty success. When
// both sides consumed nothing their hints are merged, so the error lists the
// alternatives expected at that position.
func Alt[S, U any, M Monad[M], A any](p, q Parser[S, U, M, A]) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			first := c.(Consumption[M])
			if first.IsConsumed() {
				return unit[M](first)
			}
			return first.Get().Bind(func(r Erased) M {
				reply := r.(Reply[S, U, A])
				if reply.IsOk() {
					return emit[S, U, M](false, reply)
				}
				return mergeEmpty[S, U, M, A](q(s), reply.hint)
			})
		})
	}
}

// Choice tries each parser in order with Alt.
// With no parsers it fails with an unknown error.
func Choice[S, U any, M Monad[M], A any](ps ...Parser[S, U, M, A]) Parser[S, U, M, A] {
	if len(ps) == 0 {
		return func(s State[S, U]) M {
			return emit[S, U, M](false, Error[S, U, A](unknownError(positionOf(s.Input))))
		}
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = Alt(ps[i], p)
	}
	return p
}

// Try makes p backtrack: a failure after consuming input is reported as a
// failure that consumed nothing, so an enclosing Alt may try its next
// alternative. Successes are untouched.
//
// Try defeats predictive parsing for the input p covers; keep p short.
func Try[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			cons := c.(Consumption[M])
			if cons.IsEmpty() {
				return unit[M](cons)
			}
			return cons.Get().Bind(func(r Erased) M {
				reply := r.(Reply[S, U, A])
				return emit[S, U, M](reply.IsOk(), reply)
			})
		})
	}
}

// Label names what p accepts. If p fails without consuming input, the
// expected messages of its hint are replaced by msg; the position is kept.
// Consumed failures keep their original, more specific hint.
func Label[S, U any, M Monad[M], A any](p Parser[S, U, M, A], msg string) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			cons := c.(Consumption[M])
			if cons.IsConsumed() {
				return unit[M](cons)
			}
			return unit[M](Empty(cons.Get().Bind(func(r Erased) M {
				reply := r.(Reply[S, U, A])
				if reply.IsError() {
					reply.hint = reply.hint.withExpect(msg)
				}
				return unit[M](reply)
			})))
		})
	}
}

// Option runs p, returning x if p fails without consuming input.
func Option[S, U any, M Monad[M], A any](x A, p Parser[S, U, M, A]) Parser[S, U, M, A] {
	return Alt(p, Pure[S, U, M](x))
}

// Optional runs p, discarding its result, and succeeds if p fails without
// consuming input.
func Optional[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, None] {
	return Alt(Map(p, func(A) None { return None{} }), Pure[S, U, M](None{}))
}

// LookAhead runs p and, on success, restores the input as if nothing was
// consumed. Failures are returned unchanged.
func LookAhead[S, U any, M Monad[M], A any](p Parser[S, U, M, A]) Parser[S, U, M, A] {
	return func(s State[S, U]) M {
		return p(s).Bind(func(c Erased) M {
			cons := c.(Consumption[M])
			return cons.Get().Bind(func(r Erased) M {
				reply := r.(Reply[S, U, A])
				if reply.IsError() {
					return emit[S, U, M](cons.IsConsumed(), reply)
				}
				return emit[S, U, M](false, Ok(reply.value, s, unknownError(positionOf(s.Input))))
			})
		})
	}
}
