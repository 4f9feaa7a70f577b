// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Erased represents a type-erased payload carried by a base computation.
// Parsers stack two layers of the same computation type, so payload types
// vary by layer: the outer layer carries a Consumption[M], the inner layer a
// Reply[S, U, A]. Concrete types are recovered via type assertions at layer
// boundaries.
type Erased = any

// Monad is the F-bounded interface for base computations.
// The self-referencing constraint M Monad[M] gives the compiler knowledge of
// the concrete computation type, standing in for higher-kinded polymorphism.
//
// Return ignores its receiver; the engine calls it on the zero value of M.
// Implementations must satisfy the monad laws:
//
//   - left identity:  m.Return(a).Bind(f) ≡ f(a)
//   - right identity: m.Bind(m.Return) ≡ m
//   - associativity:  m.Bind(f).Bind(g) ≡ m.Bind(func(x) { return f(x).Bind(g) })
type Monad[M Monad[M]] interface {
	Return(Erased) M
	Bind(func(Erased) M) M
}

// unit lifts a payload into M using the zero value as the instance witness.
func unit[M Monad[M]](x Erased) M {
	var m M
	return m.Return(x)
}

// emit wraps a reply in both computation layers under the given consumption tag.
func emit[S, U any, M Monad[M], A any](consumed bool, r Reply[S, U, A]) M {
	inner := unit[M](r)
	if consumed {
		return unit[M](Consumed(inner))
	}
	return unit[M](Empty(inner))
}

// Iteration is the payload of one round of a loop run by Looper.Loop.
// A round either continues with the next seed or ends with the result.
type Iteration struct {
	Value Erased
	Done  bool
}

// Continue starts another round seeded with x.
func Continue(x Erased) Iteration {
	return Iteration{Value: x}
}

// Break ends the loop with x as its result.
func Break(x Erased) Iteration {
	return Iteration{Value: x, Done: true}
}

// Looper is implemented by base computations that run a loop of rounds in
// constant stack space. Repetition combinators check for it with a
// structural assertion on the zero value of M.
//
// Loop(x, step) must be equivalent to
//
//	step(x).Bind(func(it) { if it.Done { return Return(it.Value) }; return Loop(it.Value, step) })
//
// where the payload of every step result is an Iteration.
type Looper[M any] interface {
	Loop(x Erased, step func(Erased) M) M
}

// iterate runs a loop of rounds in M. Base computations that do not
// implement Looper fall back to nested binds.
func iterate[M Monad[M]](x Erased, step func(Erased) M) M {
	var m M
	if l, ok := any(m).(Looper[M]); ok {
		return l.Loop(x, step)
	}
	return step(x).Bind(func(v Erased) M {
		it := v.(Iteration)
		if it.Done {
			return unit[M](it.Value)
		}
		return iterate(it.Value, step)
	})
}

// cast recovers an A from an erased payload; nil yields the zero A.
func cast[A any](x Erased) A {
	a, _ := x.(A)
	return a
}
