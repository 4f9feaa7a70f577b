// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "github.com/go-logr/logr"

// TraceKind distinguishes the two events of a traced parser.
type TraceKind uint8

const (
	// TraceEnter is told in the outer layer, before consumption is known.
	TraceEnter TraceKind = iota
	// TraceExit is told in the inner layer, with the outcome.
	TraceExit
)

// String returns "enter" or "exit".
func (k TraceKind) String() string {
	if k == TraceEnter {
		return "enter"
	}
	return "exit"
}

// TraceEvent records one step of a traced parser.
// Ok and Consumed are meaningful for TraceExit only. Pos is the position at
// entry, after success, or of the failure.
type TraceEvent struct {
	Kind     TraceKind
	Name     string
	Pos      Position
	Ok       bool
	Consumed bool
}

// Teller is implemented by base computations that can record trace events.
// Traced checks for it with a structural assertion on the zero value of M.
type Teller[M any] interface {
	Tell(TraceEvent) M
}

// Trace is a writer computation accumulating trace events.
// Trace[Erased] is a base computation implementing Teller.
type Trace[A any] struct {
	value A
	log   *eventLog
}

// eventLog is a persistent sequence of events. A nil log is empty; joining
// two logs allocates one node and never copies events.
type eventLog struct {
	event       TraceEvent
	left, right *eventLog
	n           int
}

func joinLogs(a, b *eventLog) *eventLog {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return &eventLog{left: a, right: b, n: a.n + b.n}
}

// flatten lists the events of l in order, walking the tree with an explicit
// stack.
func (l *eventLog) flatten() []TraceEvent {
	if l == nil {
		return nil
	}
	out := make([]TraceEvent, 0, l.n)
	stack := []*eventLog{l}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.left == nil {
			out = append(out, node.event)
			continue
		}
		stack = append(stack, node.right, node.left)
	}
	return out
}

// Get returns the computed value.
func (m Trace[A]) Get() A {
	return m.value
}

// Events returns the recorded events in order.
func (m Trace[A]) Events() []TraceEvent {
	return m.log.flatten()
}

// Return implements Monad.
func (Trace[A]) Return(a A) Trace[A] {
	return Trace[A]{value: a}
}

// Bind implements Monad. Events of m precede events of f's result.
func (m Trace[A]) Bind(f func(A) Trace[A]) Trace[A] {
	n := f(m.value)
	return Trace[A]{value: n.value, log: joinLogs(m.log, n.log)}
}

// Loop implements Looper.
func (Trace[A]) Loop(x Erased, step func(Erased) Trace[A]) Trace[A] {
	var log *eventLog
	for {
		m := step(x)
		log = joinLogs(log, m.log)
		it := any(m.value).(Iteration)
		if it.Done {
			return Trace[A]{value: cast[A](it.Value), log: log}
		}
		x = it.Value
	}
}

// Tell implements Teller.
func (Trace[A]) Tell(e TraceEvent) Trace[A] {
	return Trace[A]{log: &eventLog{event: e, n: 1}}
}

// Traced wraps p so that base computations implementing Teller record an
// enter event before p runs and an exit event with its outcome.
// For other base computations Traced returns p itself.
func Traced[S, U any, M Monad[M], A any](name string, p Parser[S, U, M, A]) Parser[S, U, M, A] {
	var zero M
	t, ok := any(zero).(Teller[M])
	if !ok {
		return p
	}
	return func(s State[S, U]) M {
		enter := TraceEvent{Kind: TraceEnter, Name: name, Pos: positionOf(s.Input)}
		return t.Tell(enter).Bind(func(Erased) M {
			return p(s).Bind(func(c Erased) M {
				cons := c.(Consumption[M])
				return unit[M](MapConsumption(cons, func(inner M) M {
					return inner.Bind(func(r Erased) M {
						reply := r.(Reply[S, U, A])
						exit := TraceEvent{Kind: TraceExit, Name: name, Ok: reply.IsOk(), Consumed: cons.IsConsumed()}
						if reply.IsOk() {
							exit.Pos = positionOf(reply.state.Input)
						} else {
							exit.Pos = reply.hint.Pos
						}
						return t.Tell(exit).Bind(func(Erased) M { return unit[M](reply) })
					})
				}))
			})
		})
	}
}

// RunTrace runs p over the Trace computation and replays the recorded events
// into log at verbosity 1.
func RunTrace[S, U, A any](p Parser[S, U, Trace[Erased], A], s State[S, U], log logr.Logger) Result[S, U, A] {
	m := Run(p, s)
	replay(log, m.Events())
	return m.Get().(Result[S, U, A])
}

func replay(log logr.Logger, events []TraceEvent) {
	v := log.V(1)
	if !v.Enabled() {
		return
	}
	for _, e := range events {
		if e.Kind == TraceEnter {
			v.Info(e.Kind.String(), "parser", e.Name, "pos", e.Pos.String())
			continue
		}
		v.Info(e.Kind.String(), "parser", e.Name, "pos", e.Pos.String(), "ok", e.Ok, "consumed", e.Consumed)
	}
}
