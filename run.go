// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "github.com/pkg/errors"

// Result is the outcome of a complete parse: the value with the final state,
// or the error hint.
type Result[S, U, A any] struct {
	ok    bool
	value A
	state State[S, U]
	err   ParseError
}

// IsOk returns true if the parse succeeded.
func (r Result[S, U, A]) IsOk() bool {
	return r.ok
}

// Get returns the value and final state with true, or zeros and false.
func (r Result[S, U, A]) Get() (A, State[S, U], bool) {
	return r.value, r.state, r.ok
}

// Hint returns the error hint. On success it is the nearest recovered failure.
func (r Result[S, U, A]) Hint() ParseError {
	return r.err
}

// Err returns nil on success, or the ParseError.
func (r Result[S, U, A]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

func resultOf[S, U, A any](r Reply[S, U, A]) Result[S, U, A] {
	return Result[S, U, A]{ok: r.ok, value: r.value, state: r.state, err: r.hint}
}

// Run executes p from s and unwraps both computation layers.
// The payload of the returned computation is a Result[S, U, A].
func Run[S, U any, M Monad[M], A any](p Parser[S, U, M, A], s State[S, U]) M {
	return p(s).Bind(func(c Erased) M {
		return c.(Consumption[M]).Get().Bind(func(r Erased) M {
			return unit[M](resultOf(r.(Reply[S, U, A])))
		})
	})
}

// Observe executes p from s and flattens both layers into a single
// computation whose payload is a Consumption[Reply[S, U, A]]. It exposes the
// consumption tag that Run discards.
func Observe[S, U any, M Monad[M], A any](p Parser[S, U, M, A], s State[S, U]) M {
	return p(s).Bind(func(c Erased) M {
		cons := c.(Consumption[M])
		return cons.Get().Bind(func(r Erased) M {
			return unit[M](MapConsumption(cons, func(M) Reply[S, U, A] { return r.(Reply[S, U, A]) }))
		})
	})
}

// RunMaybe runs p over the Maybe computation.
// It returns Just(value) on success and Nothing on parse failure or when the
// base computation itself produced Nothing.
func RunMaybe[S, U, A any](p Parser[S, U, Maybe[Erased], A], s State[S, U]) Maybe[A] {
	out, ok := Run(p, s).Get()
	if !ok {
		return Nothing[A]()
	}
	v, _, ok := out.(Result[S, U, A]).Get()
	if !ok {
		return Nothing[A]()
	}
	return Just(v)
}

// RunIdentity runs p over the Identity computation.
func RunIdentity[S, U, A any](p Parser[S, U, Identity[Erased], A], s State[S, U]) Result[S, U, A] {
	return Run(p, s).Get().(Result[S, U, A])
}

// RunEither runs p over the Either computation. A Left lifted into the parse
// aborts it and is returned as is; otherwise the Result is on the Right.
func RunEither[E, S, U, A any](p Parser[S, U, Either[E, Erased], A], s State[S, U]) Either[E, Result[S, U, A]] {
	return MapEither(Run(p, s), func(x Erased) Result[S, U, A] {
		return x.(Result[S, U, A])
	})
}

// RunCont runs p over the Cont computation with the identity continuation.
// It reports false when a lifted Escape ended the computation before a
// Result was produced.
func RunCont[S, U, A any](p Parser[S, U, Cont[Erased, Erased], A], s State[S, U]) (Result[S, U, A], bool) {
	res, ok := Run(p, s)(identity[Erased]).(Result[S, U, A])
	return res, ok
}

// Parse runs p over src and returns its value. A parse failure is returned
// as an error with a stack trace wrapping the ParseError; use errors.As to
// recover it. The name labels positions in error messages.
func Parse[A any](p Parser[Text, None, Identity[Erased], A], name, src string) (A, error) {
	res := RunIdentity(p, NewState(NewText(name, src), None{}))
	v, _, ok := res.Get()
	if !ok {
		return v, errors.WithStack(res.err)
	}
	return v, nil
}
