// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Reply is the outcome of one parser step: Ok with a value and the state
// after it, or Error. Both variants carry a hint.
type Reply[S, U, A any] struct {
	ok    bool
	value A
	state State[S, U]
	hint  ParseError
}

// Ok creates a successful reply.
func Ok[S, U, A any](a A, s State[S, U], hint ParseError) Reply[S, U, A] {
	return Reply[S, U, A]{ok: true, value: a, state: s, hint: hint}
}

// Error creates a failed reply.
func Error[S, U, A any](hint ParseError) Reply[S, U, A] {
	return Reply[S, U, A]{hint: hint}
}

// IsOk returns true for a successful reply.
func (r Reply[S, U, A]) IsOk() bool {
	return r.ok
}

// IsError returns true for a failed reply.
func (r Reply[S, U, A]) IsError() bool {
	return !r.ok
}

// Value returns the parsed value and true, or zero and false.
func (r Reply[S, U, A]) Value() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// State returns the state after a successful reply.
// For a failed reply it returns the zero State.
func (r Reply[S, U, A]) State() State[S, U] {
	return r.state
}

// Hint returns the error hint.
func (r Reply[S, U, A]) Hint() ParseError {
	return r.hint
}

// MatchReply pattern matches on the reply, calling onOk or onError.
func MatchReply[S, U, A, T any](r Reply[S, U, A], onOk func(A, State[S, U], ParseError) T, onError func(ParseError) T) T {
	if r.ok {
		return onOk(r.value, r.state, r.hint)
	}
	return onError(r.hint)
}

// mergeHint merges an earlier hint into r.
func (r Reply[S, U, A]) mergeHint(earlier ParseError) Reply[S, U, A] {
	r.hint = MergeError(earlier, r.hint)
	return r
}

// failed retypes a failed reply.
func failed[B, S, U, A any](r Reply[S, U, A]) Reply[S, U, B] {
	return Reply[S, U, B]{hint: r.hint}
}
