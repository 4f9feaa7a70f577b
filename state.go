// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "strconv"

// None is the user state type for parsers that carry no side state.
type None = struct{}

// State is an immutable snapshot of parse progress.
// Input is the remaining input; User is caller-defined auxiliary state
// (e.g. an indentation level). Every transition produces a new State.
type State[S, U any] struct {
	Input S
	User  U
}

// NewState creates the initial state for a parse.
func NewState[S, U any](input S, user U) State[S, U] {
	return State[S, U]{Input: input, User: user}
}

// WithInput returns a copy of s positioned at input.
func (s State[S, U]) WithInput(input S) State[S, U] {
	return State[S, U]{Input: input, User: s.User}
}

// WithUser returns a copy of s carrying user state u.
func (s State[S, U]) WithUser(u U) State[S, U] {
	return State[S, U]{Input: s.Input, User: u}
}

// Position locates a point in the input.
// Offset counts input elements from the start; Line and Column are 1-based
// and meaningful only for streams that track them.
type Position struct {
	Name   string
	Offset int
	Line   int
	Column int
}

// String formats the position as name:line:column, omitting an empty name.
func (p Position) String() string {
	lc := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.Name == "" {
		return lc
	}
	return p.Name + ":" + lc
}

// Stream is the F-bounded interface for parser input.
// The self-referencing constraint lets Uncons return the concrete stream type,
// so primitives advance the cursor without boxing.
//
// Uncons returns the next element and the stream after it, or ok == false at
// the end of input. Streams are values: Uncons never mutates the receiver.
type Stream[S Stream[S, T], T any] interface {
	Uncons() (t T, rest S, ok bool)
	Pos() Position
}

// positionOf reports the position of an input that may or may not be a Stream.
// Combinators that are generic over any input type use it for error hints.
func positionOf(input any) Position {
	if p, ok := input.(interface{ Pos() Position }); ok {
		return p.Pos()
	}
	return Position{}
}
